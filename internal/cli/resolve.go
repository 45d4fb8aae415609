package cli

import (
	"fmt"
	"os"

	"github.com/masaishi/wakalyze/internal/config"
	"github.com/masaishi/wakalyze/internal/domain"
	"github.com/masaishi/wakalyze/internal/wakapi"
)

// Credential resolution order is flag, then config file, then environment.
// The base URL additionally falls back to the hosted Wakapi instance.

func resolveKey(flag string, cfg config.Config) (string, error) {
	switch {
	case flag != "":
		return flag, nil
	case cfg.Key != "":
		return cfg.Key, nil
	}
	if env := os.Getenv("WAKAPI_KEY"); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("%w: missing API key: set WAKAPI_KEY or run `wakalyze config set --key <token>`", domain.ErrInvalidInput)
}

func resolveUser(flag string, cfg config.Config) (string, error) {
	switch {
	case flag != "":
		return flag, nil
	case cfg.User != "":
		return cfg.User, nil
	}
	if env := os.Getenv("WAKAPI_USER"); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("%w: missing user: set WAKAPI_USER or run `wakalyze config set --user <name>`", domain.ErrInvalidInput)
}

func resolveBaseURL(flag string, cfg config.Config) string {
	switch {
	case flag != "":
		return flag
	case cfg.BaseURL != "":
		return cfg.BaseURL
	}
	if env := os.Getenv("WAKAPI_BASE_URL"); env != "" {
		return env
	}
	return wakapi.DefaultBaseURL
}
