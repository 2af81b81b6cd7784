package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/cache"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/metrics"
	"github.com/jonathan/resume-matcher/internal/server"
)

func newServeCmd(global *globalOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  `Start an HTTP server that exposes POST /analyze, POST /analyze/batch, GET /health and GET /metrics.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := global.load()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return runServe(cmd.Context(), cfg, log)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (overrides config)")
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	opts := server.Options{Logger: log}

	if cfg.Metrics.Enabled {
		opts.Metrics = metrics.New()
	}

	if cfg.Cache.Enabled {
		dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		rc, err := cache.Dial(dialCtx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to connect to cache: %w", err)
		}
		defer func() { _ = rc.Close() }()
		opts.Cache = rc
		log.Info("result cache enabled", zap.String("redis_addr", cfg.Cache.RedisAddr), zap.Duration("ttl", cfg.Cache.TTL))
	}

	return server.New(cfg, opts).Start()
}
