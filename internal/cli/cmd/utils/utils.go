package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tidwall/pretty"

	"github.com/varkala/fbslide"
)

// CanonicalPath expands a leading ~ to the user's home directory. Anything
// else passes through untouched.
func CanonicalPath(path string) string {
	home := os.Getenv("HOME")
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	}
	return path
}

// PrintJSONColored logs data as syntax-colored, indented JSON.
func PrintJSONColored(data any) {
	j, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Errorf("Error marshalling JSON: %v", err)
		return
	}
	log.Info(string(pretty.Color(j, nil)))
}

// InstallDefaultConfig writes the embedded default config into the user's
// config directory. An existing file is never overwritten.
func InstallDefaultConfig() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("Cannot determine config directory: %v", err)
	}
	configPath := filepath.Join(configDir, "fbslide", "fbslide.toml")

	if _, err := os.Stat(configPath); err == nil {
		log.Warnf("Config file already exists at %v", configPath)
		return
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		log.Fatalf("Error creating config directory: %v", err)
	}

	if err := os.WriteFile(configPath, []byte(fbslide.DefaultConfig), 0644); err != nil {
		log.Fatalf("Error writing config file: %v", err)
	}

	log.Infof("Installed default config file at %v", configPath)
}
