package cli

import (
	"fmt"

	"github.com/masaishi/wakalyze/internal/config"
	"github.com/masaishi/wakalyze/internal/domain"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage stored Wakapi credentials",
	}

	cmd.AddCommand(
		newConfigPathCmd(app),
		newConfigShowCmd(app),
		newConfigSetCmd(app),
	)

	return cmd
}

func newConfigPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), app.configPath())
			return nil
		},
	}
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored settings, with the API key masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadFrom(app.configPath())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "key:      %s\n", orUnset(config.MaskSecret(cfg.Key)))
			fmt.Fprintf(out, "user:     %s\n", orUnset(cfg.User))
			fmt.Fprintf(out, "base_url: %s\n", orUnset(cfg.BaseURL))
			return nil
		},
	}
}

func orUnset(value string) string {
	if value == "" {
		return "(unset)"
	}
	return value
}

func newConfigSetCmd(app *App) *cobra.Command {
	var (
		key, user, baseURL             string
		clearKey, clearUser, clearBase bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update stored settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if key != "" && clearKey {
				return fmt.Errorf("%w: --key conflicts with --clear-key", domain.ErrInvalidInput)
			}
			if user != "" && clearUser {
				return fmt.Errorf("%w: --user conflicts with --clear-user", domain.ErrInvalidInput)
			}
			if baseURL != "" && clearBase {
				return fmt.Errorf("%w: --base-url conflicts with --clear-base-url", domain.ErrInvalidInput)
			}
			if key == "" && user == "" && baseURL == "" && !clearKey && !clearUser && !clearBase {
				return fmt.Errorf("%w: nothing to update", domain.ErrInvalidInput)
			}

			path := app.configPath()
			cfg := config.LoadFrom(path)
			if key != "" {
				cfg.Key = key
			}
			if user != "" {
				cfg.User = user
			}
			if baseURL != "" {
				cfg.BaseURL = baseURL
			}
			if clearKey {
				cfg.Key = ""
			}
			if clearUser {
				cfg.User = ""
			}
			if clearBase {
				cfg.BaseURL = ""
			}

			if err := config.SaveTo(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Wakapi API token")
	cmd.Flags().StringVar(&user, "user", "", "Wakapi user name")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Wakapi server base URL")
	cmd.Flags().BoolVar(&clearKey, "clear-key", false, "Remove the stored API token")
	cmd.Flags().BoolVar(&clearUser, "clear-user", false, "Remove the stored user")
	cmd.Flags().BoolVar(&clearBase, "clear-base-url", false, "Remove the stored base URL")

	return cmd
}
