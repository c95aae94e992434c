package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"medlink/internal/di"
	"medlink/internal/media"
)

func main() {
	app, cleanup, err := di.InitMediaApp("media-server")
	if err != nil {
		log.Fatalf("failed to initialize media server: %v", err)
	}
	defer cleanup()

	srv := &http.Server{
		Addr:    ":" + app.Config.Server.MediaServicePort,
		Handler: media.NewHTTPServer(app.Storage, app.Logger),
	}

	go func() {
		app.Logger.Info("media server listening",
			zap.String("port", app.Config.Server.MediaServicePort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Logger.Info("shutting down media server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		app.Logger.Error("shutdown error", zap.Error(err))
	}
	app.Logger.Info("media server stopped")
}
