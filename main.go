package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/envelope-zero/expenses/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=<version>"
var version = "0.0.0"

// @title						Expenses
// @description				The backend of the expense tracker. It stores categories and expenses and aggregates them into monthly summaries.
// @license.name				AGPL-3.0
// @license.url				https://www.gnu.org/licenses/agpl-3.0.en.html
// @BasePath					/api
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		log.Error().Err(err).Msg("expenses")
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var cfgFile string
	var cfg config.Config

	cmd := &cobra.Command{
		Use:           "expenses",
		Short:         "Expense tracker backend",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}

			setupLogging(cfg)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, values from the environment take precedence")

	serve := serveCmd(&cfg)
	cmd.RunE = serve.RunE
	cmd.AddCommand(serve, seedCmd(&cfg), repairCmd(&cfg))

	return cmd
}

// setupLogging configures gin and the global zerolog logger.
func setupLogging(cfg config.Config) {
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}

// closeStore closes the store and adds a failure to err.
func closeStore(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil {
		*err = errors.Join(*err, fmt.Errorf("closing store: %w", cerr))
	}
}
