package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the stored wakalyze settings. All fields are optional; empty
// strings mean "unset" and are omitted from the file.
type Config struct {
	Key     string `json:"key,omitempty"`
	User    string `json:"user,omitempty"`
	BaseURL string `json:"base_url,omitempty"`
}

// Path returns the config file location: $XDG_CONFIG_HOME/wakalyze/config.json,
// falling back to ~/.config/wakalyze/config.json.
func Path() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wakalyze", "config.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "wakalyze", "config.json")
}

// Load reads the config from the default path.
func Load() Config {
	return LoadFrom(Path())
}

// LoadFrom reads the config from path. A missing, malformed, or non-object
// file loads as the zero config rather than failing: a broken config file
// should never block an analyze run. Non-string and blank values are
// treated as unset.
func LoadFrom(path string) Config {
	text, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var raw map[string]any
	if err := json.Unmarshal(text, &raw); err != nil {
		return Config{}
	}

	strField := func(key string) string {
		val, ok := raw[key].(string)
		if !ok || strings.TrimSpace(val) == "" {
			return ""
		}
		return val
	}

	return Config{
		Key:     strField("key"),
		User:    strField("user"),
		BaseURL: strField("base_url"),
	}
}

// SaveTo writes the config to path, creating parent directories as needed.
// The file is written to a temp sibling with 0600 permissions and renamed
// into place so a crash never leaves a partial config.
func SaveTo(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing config: %w", err)
	}
	return nil
}

// MaskSecret hides all but the last four characters of a secret for display.
func MaskSecret(value string) string {
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}
