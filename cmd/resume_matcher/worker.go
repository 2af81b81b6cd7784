package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/metrics"
	"github.com/jonathan/resume-matcher/internal/worker"
)

func newWorkerCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Consume analysis requests from RabbitMQ",
		Long: `Consume {id, resume_text, job_description} messages from the configured AMQP queue and publish one reply per message.

When metrics are enabled the worker serves GET /metrics on the configured server port.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := global.load()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var m *metrics.Metrics
			if cfg.Metrics.Enabled {
				m = metrics.New()
				shutdown := serveMetrics(cfg.Address(), m, log)
				defer shutdown(cfg.Server.ShutdownTimeout)
			}

			proc := worker.NewProcessor(cfg.Limits, log, m)
			return worker.Serve(ctx, cfg.Worker.AMQPURL, cfg.Worker, proc, log)
		},
	}
}

// serveMetrics exposes m on addr in the background and returns its shutdown function.
func serveMetrics(addr string, m *metrics.Metrics, log *zap.Logger) func(time.Duration) {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info("metrics listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", zap.Error(err))
		}
	}()

	return func(timeout time.Duration) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
