package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/masaishi/wakalyze/internal/cli/formatter"
	"github.com/masaishi/wakalyze/internal/config"
	"github.com/masaishi/wakalyze/internal/contract"
	"github.com/masaishi/wakalyze/internal/domain"
	"github.com/masaishi/wakalyze/internal/service"
	"github.com/masaishi/wakalyze/internal/wakapi"
	"github.com/spf13/cobra"
)

const progressBarWidth = 20

func newAnalyzeCmd(app *App) *cobra.Command {
	var (
		filter         string
		userFlag       string
		keyFlag        string
		baseURLFlag    string
		timeoutSeconds int
		maxGapMinutes  int
	)

	cmd := &cobra.Command{
		Use:   "analyze YYYY/MM [WEEK]",
		Short: "Report working sessions for a month or a single week",
		Long: `Fetches the heartbeats for every day of the given month (or of one
Monday-start week row, 1-6) and prints the reconstructed sessions grouped
by week and day.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := domain.ParseMonth(args[0])
			if err != nil {
				return err
			}

			week := 0
			if len(args) == 2 {
				week, err = strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("%w: week must be a number, got %q", domain.ErrInvalidInput, args[1])
				}
			}

			cfg := config.LoadFrom(app.configPath())
			key, err := resolveKey(keyFlag, cfg)
			if err != nil {
				return err
			}
			user, err := resolveUser(userFlag, cfg)
			if err != nil {
				return err
			}
			baseURL := resolveBaseURL(baseURLFlag, cfg)

			if timeoutSeconds <= 0 {
				return fmt.Errorf("%w: timeout must be greater than 0", domain.ErrInvalidInput)
			}
			if maxGapMinutes <= 0 {
				return fmt.Errorf("%w: max gap must be greater than 0", domain.ErrInvalidInput)
			}

			source := app.source(baseURL, user, wakapi.EncodeAPIKey(key), time.Duration(timeoutSeconds)*time.Second)

			var progress func(done, total int)
			if app.interactive() {
				errOut := cmd.ErrOrStderr()
				progress = func(done, total int) {
					fmt.Fprintf(errOut, "\r%s", formatter.RenderFetchProgress(done, total, progressBarWidth))
					if done == total {
						fmt.Fprint(errOut, "\r\033[K")
					}
				}
			}

			svc := service.NewAnalyzeService(source, app.Cache, progress)
			resp, err := svc.Analyze(cmd.Context(), contract.AnalyzeRequest{
				Month:         month,
				Week:          week,
				Filter:        filter,
				MaxGapSeconds: int64(maxGapMinutes) * 60,
				User:          user,
			})
			if err != nil {
				return err
			}

			if app.interactive() {
				report, err := formatter.RenderReport(resp.Label, resp.Weeks)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), report)
				return nil
			}

			lines, err := formatter.BuildReportLines(resp.Label, resp.Weeks)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Comma-separated project substrings to keep")
	cmd.Flags().StringVar(&userFlag, "user", "", "Wakapi user (overrides config and WAKAPI_USER)")
	cmd.Flags().StringVar(&keyFlag, "key", "", "Wakapi API token (overrides config and WAKAPI_KEY)")
	cmd.Flags().StringVar(&baseURLFlag, "base-url", "", "Wakapi server base URL")
	cmd.Flags().IntVar(&timeoutSeconds, "timeout", 15, "Per-request timeout in seconds")
	cmd.Flags().IntVar(&maxGapMinutes, "max-gap-minutes", 15, "Largest idle gap still counted inside one session")

	return cmd
}
