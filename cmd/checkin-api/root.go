package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/checkin/backend/internal/config"
	"github.com/JonnyWalker81/checkin/backend/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:          "checkin-api",
	Short:        "Check-in analytics API server",
	Long:         `A REST API that records daily mood, craving and stress check-ins and serves analytics over them.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func newLogger(cfg *config.Config) logger.Logger {
	logCfg := logger.ConfigFrom(cfg.Log.Level, cfg.Log.Format)
	logCfg.Service = rootCmd.Name()
	return logger.NewSlogLogger(logCfg)
}
