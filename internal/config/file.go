package config

import (
	"log/slog"
	"os"
	"path"
)

// FindFile returns the dimensions file to load, honoring the user value
// first, then standard locations.
func FindFile(userValue string) (configpath string) {
	if "" != userValue {
		return userValue
	}

	slog.Debug("Searching dimensions file in standard locations.")
	home, _ := os.UserHomeDir()
	candidates := []string{
		"./combigen.yml",
		"./combigen.yaml",
		path.Join(home, "/.config/combigen.yml"),
		path.Join(home, "/.config/combigen.yaml"),
		"/etc/combigen.yml",
		"/etc/combigen.yaml",
	}

	for _, candidate := range candidates {
		_, err := os.Stat(candidate)
		if err == nil {
			slog.Debug("Found dimensions file.",
				"path", candidate)

			return candidate
		}
		slog.Debug("Ignoring dimensions file.",
			"path", candidate,
			"error", err)
	}

	return ""
}
