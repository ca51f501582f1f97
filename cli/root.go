package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/omatviiv/appstore-ratings/cli/config"
	"github.com/omatviiv/appstore-ratings/internal/appstore"
)

func newRootCmd(baseURL string) *cobra.Command {
	var (
		country string
		pretty  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:     "extract <app_id>",
		Short:   "Extract App Store rating histogram",
		Long:    `Extract the App Store rating histogram (5-star first) from the publicly available product page HTML.`,
		Args:    cobra.ExactArgs(1),
		Version: "1.0.0",

		// Pipeline failures are reported by Run as a single stderr line.
		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			storefront := country
			if !cmd.Flags().Changed("country") && cfg.Extract.Country != "" {
				storefront = cfg.Extract.Country
			}

			log := newLogger(debugEnabled(cfg, verbose))
			defer log.Sync()

			client := appstore.NewClient(baseURL, log)
			summary, err := client.FetchProductRatings(cmd.Context(), args[0], storefront)
			if err != nil {
				return err
			}

			render := appstore.RenderCompact
			if pretty {
				render = appstore.RenderPretty
			}
			out, err := render(summary)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&country, "country", config.DefaultCountry,
		"Two-letter storefront code. Examples: us, ua, gb.")
	cmd.Flags().BoolVar(&pretty, "pretty", false,
		"Pretty-print JSON output (indentation + trailing newline).")
	cmd.Flags().BoolVar(&verbose, "verbose", false,
		"Log request diagnostics to stderr.")

	return cmd
}

var rootCmd = newRootCmd("")

// debugEnabled reports whether request diagnostics go to stderr. LOG_LEVEL
// reaches the environment either directly or through the .env file loaded at
// startup.
func debugEnabled(cfg *config.Config, verbose bool) bool {
	if verbose || cfg.Logging.Level == "debug" {
		return true
	}
	return os.Getenv("LOG_LEVEL") == "debug"
}

func newLogger(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func run(cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// Run executes the extract command, reporting any pipeline failure as a
// single "error: " line on stderr, and returns the process exit code.
func Run(stderr io.Writer) int {
	return run(rootCmd, stderr)
}
