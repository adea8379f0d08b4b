package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/combigen/combigen/internal/cartesian"
	"github.com/combigen/combigen/internal/config"
	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "combigen.yml")
	err := os.WriteFile(path, []byte(dedent.Dedent(content)), 0o644)
	require.NoError(t, err)
	return path
}

func TestLoad(t *testing.T) {
	r := require.New(t)

	path := writeTemp(t, `
	version: 1
	dimensions:
	- name: browser
	  values: [firefox, chrome]
	- retries: [1, 2, 3]
	- name: secure
	  value: true
	`)

	c, err := config.Load(path)
	r.NoError(err)
	r.Equal(1, c.Version)
	r.Equal([]string{"browser", "retries", "secure"}, c.Names())

	b := c.Builder()
	r.Equal(uint64(2*3*1), b.Size())

	combination, ok := b.Product().Next()
	r.True(ok)
	values, err := cartesian.AllRemaining[any](combination)
	r.NoError(err)
	r.Equal([]any{"firefox", 1, true}, values)
}

func TestLoadBadVersion(t *testing.T) {
	r := require.New(t)

	path := writeTemp(t, `
	version: 2
	dimensions:
	- a: [1]
	`)
	_, err := config.Load(path)
	r.ErrorContains(err, "unsupported version")
}

func TestLoadMissingDimensions(t *testing.T) {
	r := require.New(t)

	path := writeTemp(t, `
	version: 1
	`)
	_, err := config.Load(path)
	r.ErrorContains(err, "missing dimensions")
}

func TestValidateDuplicates(t *testing.T) {
	r := require.New(t)

	c := config.Config{
		Version: 1,
		Dimensions: []config.DimensionSpec{
			{Name: "a", Values: []any{1}},
			{Name: "a", Values: []any{2}},
			{Values: []any{3}},
		},
	}
	err := c.Validate()
	r.ErrorContains(err, "invalid dimensions")
}

func TestValidateEmptyConfig(t *testing.T) {
	r := require.New(t)

	c := config.New()
	r.Error(c.Validate())
}

func TestFindFileUserValue(t *testing.T) {
	r := require.New(t)

	r.Equal("custom.yml", config.FindFile("custom.yml"))
}
