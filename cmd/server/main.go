package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/saulo-duarte/devops-exam/internal/config"
	"github.com/saulo-duarte/devops-exam/internal/container"
)

func main() {
	c := container.New()

	srv := &http.Server{
		Addr:              c.Config.HTTPAddr,
		Handler:           c.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		config.Log.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	config.Log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Log.WithError(err).Error("Graceful shutdown failed")
	}
}
