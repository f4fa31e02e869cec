package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/printwise/stlweight/internal/config"
	"github.com/printwise/stlweight/internal/logger"
	"github.com/printwise/stlweight/internal/server"
	"github.com/printwise/stlweight/version"
)

var (
	serveAddr   string
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the weight estimation HTTP API",
	Long: `Start an HTTP server exposing POST /calculate_weight. The endpoint accepts
a multipart STL upload with the target dimensions, infill percentage and
material as query parameters, and responds with the estimated weight as JSON.`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "path to a YAML config file")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(serveConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	log := logger.New(cfg.Logging.Level, logger.DefaultFileConfig(cfg.Logging.LogFile))
	defer func() { _ = log.Sync() }()

	log.Info("starting stlweight api", zap.String("version", version.GetVersion()))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg.Server, log).Run(ctx); err != nil {
		log.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
