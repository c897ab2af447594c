package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bigsum/internal/app"
	"bigsum/internal/log"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Configure(log.Config{Service: "bigsumd"})
		l := log.Base()
		l.Fatal().Err(err).Msg("load config")
	}
	flag.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "listen address")
	flag.Parse()

	log.Configure(log.Config{Level: cfg.LogLevel, Output: os.Stdout, Service: "bigsumd"})
	logger := log.WithComponent("main")

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           app.NewServer(cfg).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.RequestTimeout,
		WriteTimeout:      cfg.RequestTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.ListenAddr).Bool("strict_grouping", cfg.StrictGrouping).Msg("bigsumd listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("serve")
		}
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}
}
