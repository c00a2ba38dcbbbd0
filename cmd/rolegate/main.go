package main

import (
	"context"
	"os/signal"
	"syscall"

	"rolegate/internal/platform/config"
	"rolegate/internal/platform/logger"
	phttp "rolegate/internal/platform/net/http"

	"rolegate/internal/services/api"
)

func main() {
	// all process config lives under ROLEGATE_*
	cfg := config.New().Prefix("ROLEGATE_")

	// bring up logging early
	l := logger.Get()

	// http server (reads ROLEGATE_PORT)
	srv := phttp.NewServer(cfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config: cfg,
			Logger: l,
		},
	)

	// run until SIGINT/SIGTERM (the PaaS sends SIGTERM on redeploy)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
