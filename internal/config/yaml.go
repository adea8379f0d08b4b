package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ReadYaml unmarshals YAML from file path, or stdin if path is -.
func ReadYaml(path string) (values any, err error) {
	var fo io.ReadCloser
	if path == "-" {
		slog.Info("Reading dimensions from standard input.")
		fo = os.Stdin
	} else {
		fo, err = os.Open(path)
		if err != nil {
			return
		}
	}
	defer fo.Close()
	dec := yaml.NewDecoder(fo)
	err = dec.Decode(&values)
	return
}

// DecodeYaml wraps mapstructure for the config object. Input must be
// normalized first.
func (c *Config) DecodeYaml(root map[string]any) (err error) {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata: &mapstructure.Metadata{},
		Result:   c,
	})
	if err != nil {
		return
	}
	err = d.Decode(root)
	return
}
