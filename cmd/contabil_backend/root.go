package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/contabil_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	port           string
	migrationsPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "contabil_backend",
		Short:         "Title posting and ledger balance service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.port, "port", "", "HTTP port (overrides PORT)")
	cmd.PersistentFlags().StringVar(&opts.migrationsPath, "migrations", "", "migrations directory (overrides MIGRATIONS_PATH)")

	cmd.AddCommand(newServeCmd(opts), newMigrateCmd(opts))
	return cmd
}

// load reads the configuration, applies flag overrides and installs the JSON logger
// as the default.
func (o *rootOptions) load() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if o.port != "" {
		cfg.Port = o.port
	}
	if o.migrationsPath != "" {
		cfg.MigrationsPath = o.migrationsPath
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
