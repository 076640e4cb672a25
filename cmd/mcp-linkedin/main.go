package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/TuliEscobar/mcp-linkedin/internal/config"
	"github.com/TuliEscobar/mcp-linkedin/internal/linkedin"
	serverPkg "github.com/TuliEscobar/mcp-linkedin/internal/server"
	"github.com/TuliEscobar/mcp-linkedin/internal/tool"
)

const version = "0.1.0"

func main() {
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	// Set up logging. Stdout carries the MCP stream, so logs go to stderr.
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.Debug && logLevel != slog.LevelDebug {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if cfg.LinkedIn.Email == "" || cfg.LinkedIn.Password == "" {
		logger.Warn("LINKEDIN_EMAIL/LINKEDIN_PASSWORD not set; tool calls will fail to authenticate")
	}

	var store *linkedin.SessionStore
	if cfg.LinkedIn.SessionDB != "" {
		store, err = linkedin.NewSessionStore(cfg.LinkedIn.SessionDB)
		if err != nil {
			logger.Error("failed to open session store", "path", cfg.LinkedIn.SessionDB, "error", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	dial := clientFactory(cfg.LinkedIn, store, logger)

	reg := tool.NewRegistry()
	tool.RegisterLinkedIn(reg, dial, logger)
	logger.Info("mcp-linkedin starting", "version", version, "tools", reg.Len())

	srv := serverPkg.New(reg, version, logger)
	if err := serverPkg.ServeStdio(srv); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// clientFactory dials a fresh LinkedIn client per tool invocation.
// Credentials are sourced once here; the tools never touch the
// environment themselves.
func clientFactory(cfg config.LinkedInConfig, store *linkedin.SessionStore, logger *slog.Logger) tool.Factory {
	return func(ctx context.Context) (tool.Client, error) {
		opts := []linkedin.Option{linkedin.WithLogger(logger)}
		if cfg.BaseURL != "" {
			opts = append(opts, linkedin.WithBaseURL(cfg.BaseURL))
		}
		if cfg.Timeout > 0 {
			opts = append(opts, linkedin.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
		}
		if store != nil {
			opts = append(opts, linkedin.WithSessionStore(store))
		}
		return linkedin.Dial(ctx, cfg.Email, cfg.Password, opts...)
	}
}
