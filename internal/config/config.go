// Package config loads the YAML dimensions file driving a generation run.
package config

import (
	"fmt"
	"log/slog"

	"github.com/combigen/combigen/internal/cartesian"
	"github.com/combigen/combigen/internal/errorlist"
	mapset "github.com/deckarep/golang-set/v2"
)

// Config holds the YAML dimensions file. Not the flags.
type Config struct {
	Version    int
	Dimensions []DimensionSpec
}

// DimensionSpec names one ordered list of values. Declaration order is
// enumeration order: the first dimension varies slowest.
type DimensionSpec struct {
	Name   string
	Values []any
}

// New initiates a config structure with defaults.
func New() Config {
	return Config{Version: 1}
}

func Load(path string) (Config, error) {
	c := New()
	err := c.Load(path)
	return c, err
}

func (c *Config) Load(path string) (err error) {
	slog.Debug("Loading YAML dimensions file.")

	yamlData, err := ReadYaml(path)
	if err != nil {
		return
	}
	root, err := NormalizeRoot(yamlData)
	if err != nil {
		return fmt.Errorf("YAML error: %w", err)
	}
	err = c.checkVersion(root)
	if err != nil {
		return
	}
	err = c.DecodeYaml(root)
	if err != nil {
		return
	}
	err = c.Validate()
	if err != nil {
		return
	}

	slog.Debug("Loaded dimensions file.", "version", c.Version, "dimensions", len(c.Dimensions))
	return
}

func (c *Config) checkVersion(root map[string]any) error {
	raw, found := root["version"]
	if !found {
		return nil
	}
	version, ok := raw.(int)
	if !ok {
		return fmt.Errorf("bad version: %v", raw)
	}
	if version != 1 {
		return fmt.Errorf("unsupported version: %d", version)
	}
	return nil
}

// Validate rejects nameless and duplicate dimensions, accumulating errors
// instead of failing on the first.
func (c *Config) Validate() error {
	list := errorlist.New("invalid dimensions")
	if 0 == len(c.Dimensions) {
		_ = list.Append(fmt.Errorf("at least one dimension required"))
	}
	names := mapset.NewSet[string]()
	for i, dim := range c.Dimensions {
		if "" == dim.Name {
			_ = list.Append(fmt.Errorf("dimension %d: missing name", i))
			continue
		}
		if !names.Add(dim.Name) {
			_ = list.Append(fmt.Errorf("dimension %q: duplicate name", dim.Name))
		}
		if 0 == len(dim.Values) {
			slog.Warn("Empty dimension zeroes the product.", "name", dim.Name)
		}
	}
	if 0 < list.Len() {
		return list
	}
	return nil
}

// Names returns dimension names in declaration order.
func (c Config) Names() (names []string) {
	for _, dim := range c.Dimensions {
		names = append(names, dim.Name)
	}
	return
}

// Builder assembles the configured dimensions into a product builder.
func (c Config) Builder() cartesian.Builder {
	dims := make([]cartesian.Dimension, 0, len(c.Dimensions))
	for _, dim := range c.Dimensions {
		dims = append(dims, cartesian.NewDimension(dim.Values...))
	}
	return cartesian.OfDimensions(dims...)
}
