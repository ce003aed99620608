// Package main is the entry point for the dice companion CLI
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dice-companion/internal/config"
	"github.com/KirkDiggler/dice-companion/internal/errors"
)

var (
	dataDir   string
	store     string
	redisAddr string
	logLevel  string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dice-companion",
	Short: "D&D 5e dice companion",
	Long: `Dice companion stores simple character sheets and rolls attacks, saving throws,
ability and skill checks, damage and custom dice with the right modifiers.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory for character files and backups")
	rootCmd.PersistentFlags().StringVar(&store, "store", "", "profile store: file or redis")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "", "redis address for the redis store")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(motionCmd)
}

// loadConfig reads the environment, applies flag overrides and installs the logger
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		loaded.DataDir = dataDir
	}
	if flags.Changed("store") {
		loaded.Store = store
	}
	if flags.Changed("redis-addr") {
		loaded.RedisAddr = redisAddr
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	level, err := config.ParseLogLevel(loaded.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	cfg = loaded
	return nil
}
