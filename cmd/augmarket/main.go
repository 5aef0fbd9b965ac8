package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/udisondev/augmarket/internal/config"
)

const ConfigPath = "config/augmarket.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// cliState is filled by the root command before any subcommand runs.
type cliState struct {
	configPath string
	cfg        config.Engine
	app        *app
}

func newRootCmd() *cobra.Command {
	st := &cliState{}

	root := &cobra.Command{
		Use:   "augmarket",
		Short: "Augmentation catalog and pricing engine",
		Long: `Lists the augmentation catalog, quotes prices for a player state,
and runs purchases and installs against persisted character records.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.init()
		},
	}

	defaultPath := ConfigPath
	if p := os.Getenv("AUGMARKET_CONFIG"); p != "" {
		defaultPath = p
	}
	root.PersistentFlags().StringVarP(&st.configPath, "config", "c", defaultPath, "Path to YAML config file")

	root.AddCommand(
		newCatalogCmd(st),
		newPriceCmd(st),
		newFactionsCmd(st),
		newBuyCmd(st),
		newInstallCmd(st),
		newMigrateCmd(st),
	)
	return root
}

func (st *cliState) init() error {
	cfg, err := config.LoadEngine(st.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	st.cfg = cfg

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Debug("config loaded", "path", st.configPath, "log_level", cfg.LogLevel)

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	st.app = a
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
