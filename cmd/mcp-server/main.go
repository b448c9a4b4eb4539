// cmd/mcp-server/main.go — Standalone HTTP MCP server for goalgebra
//
// Exposes the algebra tools as an HTTP endpoint for AI agent frameworks.
//
// Usage:
//
//	go run ./cmd/mcp-server -config goalgebra.yaml -port 8080
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/njchilds90/goalgebra"
	"github.com/njchilds90/goalgebra/internal/config"
	"github.com/njchilds90/goalgebra/internal/logging"
	"github.com/njchilds90/goalgebra/internal/mcp"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config")
	port := flag.Int("port", 0, "Port to listen on (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.JSON)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	algebra.SetParallelThreshold(cfg.Kernel.ParallelThreshold)
	algebra.SetMaxExponent(cfg.Kernel.MaxExponent)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcp.Serve(ctx, cfg, logger); err != nil {
		logger.Error("server failed", zap.Error(err))
		os.Exit(1)
	}
}
