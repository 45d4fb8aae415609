package cli

import (
	"fmt"
	"time"

	"github.com/masaishi/wakalyze/internal/domain"
	"github.com/spf13/cobra"
)

func newCacheCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local heartbeat cache",
	}

	cmd.AddCommand(newCacheClearCmd(app))

	return cmd
}

func newCacheClearCmd(app *App) *cobra.Command {
	var before string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete cached heartbeat days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Cache == nil {
				return fmt.Errorf("no cache configured")
			}

			// No cached date can be tomorrow or later, so the default
			// cutoff clears everything.
			cutoff := time.Now().UTC().AddDate(0, 0, 1)
			if before != "" {
				parsed, err := time.Parse("2006-01-02", before)
				if err != nil {
					return fmt.Errorf("%w: --before must be in YYYY-MM-DD format, got %q", domain.ErrInvalidInput, before)
				}
				cutoff = parsed
			}

			deleted, err := app.Cache.Purge(cmd.Context(), cutoff)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached day(s)\n", deleted)
			return nil
		},
	}

	cmd.Flags().StringVar(&before, "before", "", "Only delete days before this date (YYYY-MM-DD)")

	return cmd
}
