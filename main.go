package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/fileserve/auth"
	"github.com/rise-and-shine/fileserve/cfgloader"
	"github.com/rise-and-shine/fileserve/config"
	"github.com/rise-and-shine/fileserve/filestore/localfs"
	"github.com/rise-and-shine/fileserve/http/handler"
	"github.com/rise-and-shine/fileserve/http/server"
	"github.com/rise-and-shine/fileserve/http/server/middleware"
	"github.com/rise-and-shine/fileserve/meta"
	"github.com/rise-and-shine/fileserve/observability/logger"
	"github.com/rise-and-shine/fileserve/observability/tracing"
)

func main() {
	cfg := cfgloader.MustLoad[config.Config]()

	meta.SetServiceInfo(cfg.ServiceName, cfg.ServiceVersion)

	logger.SetGlobal(cfg.Logger)
	log := logger.Named("main")
	defer func() { _ = logger.Sync() }()

	shutdownTracer, err := tracing.InitGlobalTracer(cfg.Tracing)
	if err != nil {
		log.Fatalx(errx.Wrap(err))
	}
	defer func() { _ = shutdownTracer() }()

	store, err := localfs.NewService(cfg.Storage, logger.Named("filestore"))
	if err != nil {
		log.Fatalx(errx.Wrap(err))
	}

	authSvc, err := auth.NewService(cfg.Auth, logger.Named("auth"))
	if err != nil {
		log.Fatalx(errx.Wrap(err))
	}
	defer authSvc.Close()

	srv := server.NewHTTPServer(cfg.Server, []server.Middleware{
		middleware.NewRecoveryMW(logger.Named("http")),
		middleware.NewTracingMW(),
		middleware.NewTimeoutMW(cfg.Server.HandleTimeout),
		middleware.NewMetaInjectMW(cfg.ServiceName, cfg.ServiceVersion),
		middleware.NewRateLimitMW(cfg.RateLimit),
		middleware.NewLoggerMW(logger.Named("http")),
		middleware.NewErrorHandlerMW(cfg.Server.HideErrorDetails),
	})

	h := handler.New(cfg.Handler, store, authSvc, logger.Named("http"))
	srv.RegisterRouter(h.RegisterRoutes)

	errCh := make(chan error, 1)
	go func() {
		log.With("address", cfg.Server.Address()).Info("starting http server")
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err = <-errCh:
		log.Errorx(errx.Wrap(err))
	case sig := <-sigCh:
		log.With("signal", sig.String()).Info("shutting down")
	}

	if err = srv.Stop(); err != nil {
		log.Errorx(errx.Wrap(err))
	}

	log.Info("server stopped")
}
