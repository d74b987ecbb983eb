// Package cli implements the termnews terminal client: thin cobra
// commands that fetch pre-rendered tables from a termnews server.
package cli

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/me/termnews/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagServer    string
	flagWidth     int
	flagPlain     bool
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
	client *Client
)

// defaultServer returns the default server URL, checking the
// TERMNEWS_SERVER env var first.
func defaultServer() string {
	if s := os.Getenv("TERMNEWS_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

// NewRootCmd creates the root cobra command for the termnews CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "termnews",
		Short: "termnews — headlines in your terminal",
		Long:  "termnews fetches news tables rendered by a termnews server.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.New(logging.Config{
				Level:  logging.ParseLevel(flagLogLevel),
				Format: flagLogFormat,
			})
			// ANSI escapes only make sense on a terminal.
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				flagPlain = true
			}
			client = NewClient(flagServer, logger)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "termnews server URL (or TERMNEWS_SERVER env)")
	root.PersistentFlags().IntVar(&flagWidth, "width", 0, "Table width in columns (0 uses the server default)")
	root.PersistentFlags().BoolVar(&flagPlain, "plain", false, "Disable ANSI styling")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newHeadlinesCmd(),
		newSourcesCmd(),
		newHelpTableCmd(),
	)

	return root
}
