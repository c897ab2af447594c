package commands

import (
	"github.com/spf13/cobra"

	"bigsum/internal/app"
	"bigsum/internal/log"
)

var (
	appCtx *app.Wire

	home      string
	relayURL  string
	logLevel  string
	noHistory bool
	strict    bool
)

// Execute runs the root command against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bigsum",
		Short:         "Add arbitrarily large decimal numbers",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("home") {
				cfg.Home = home
			}
			if flags.Changed("relay") {
				cfg.RelayURL = relayURL
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if noHistory {
				cfg.History = false
			}
			if strict {
				cfg.StrictGrouping = true
			}

			log.Configure(log.Config{Level: cfg.LogLevel, Output: cmd.ErrOrStderr(), Service: "bigsum"})

			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.bigsum)")
	root.PersistentFlags().StringVar(&relayURL, "relay", "", "bigsumd base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&noHistory, "no-history", false, "do not record computations")

	root.AddCommand(addCmd(), historyCmd())
	return root
}
