package cli

import (
	"strings"
	"time"

	"github.com/masaishi/wakalyze/internal/config"
	"github.com/masaishi/wakalyze/internal/repository"
	"github.com/masaishi/wakalyze/internal/service"
	"github.com/masaishi/wakalyze/internal/wakapi"
	"github.com/spf13/cobra"
)

// App holds the external dependencies CLI commands are wired against. Every
// field is optional; zero values fall back to the production defaults, which
// keeps tests free to swap in fakes.
type App struct {
	// ConfigPath overrides the config file location.
	ConfigPath string

	// Cache is the local heartbeat cache; nil disables caching.
	Cache repository.HeartbeatCacheRepo

	// NewSource builds the heartbeat source for resolved credentials. Nil
	// means a real Wakapi client.
	NewSource func(baseURL, user, auth string, timeout time.Duration) service.HeartbeatSource

	// Observer receives fetch telemetry from the default Wakapi client.
	Observer wakapi.Observer

	// IsTerminal reports whether stderr is an interactive terminal, which
	// gates the progress bar. Nil means non-interactive.
	IsTerminal func() bool
}

func (a *App) configPath() string {
	if a.ConfigPath != "" {
		return a.ConfigPath
	}
	return config.Path()
}

func (a *App) source(baseURL, user, auth string, timeout time.Duration) service.HeartbeatSource {
	if a.NewSource != nil {
		return a.NewSource(baseURL, user, auth, timeout)
	}
	return wakapi.NewClient(baseURL, user, auth, timeout, a.Observer)
}

func (a *App) interactive() bool {
	return a.IsTerminal != nil && a.IsTerminal()
}

// NewRootCmd creates the top-level "wakalyze" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "wakalyze",
		Short:         "Reconstruct working sessions from Wakapi heartbeats",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAnalyzeCmd(app),
		newConfigCmd(app),
		newCacheCmd(app),
	)

	return root
}

// NormalizeArgs inserts the implicit "analyze" subcommand so that
// "wakalyze 2026/02 3" works the same as "wakalyze analyze 2026/02 3".
// Known subcommands, flags, and an empty argument list pass through
// untouched.
func NormalizeArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	switch args[0] {
	case "analyze", "config", "cache", "help", "completion", "__complete", "__completeNoDesc":
		return args
	}
	if strings.HasPrefix(args[0], "-") {
		return args
	}
	return append([]string{"analyze"}, args...)
}
