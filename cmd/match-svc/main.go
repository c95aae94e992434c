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

	"medlink/internal/api"
	"medlink/internal/dbmysql"
	"medlink/internal/di"
)

func main() {
	app, cleanup, err := di.InitMatchApp("match-svc")
	if err != nil {
		log.Fatalf("failed to initialize match service: %v", err)
	}
	defer cleanup()

	if err := dbmysql.Migrate(app.DB); err != nil {
		app.Logger.Fatal("database migration failed", zap.Error(err))
	}

	router := api.NewRouter(app.Logger)
	protected := api.Protected(router)
	api.NewBottleHandler(app.Bottles, app.Logger).Register(protected)

	srv := &http.Server{
		Addr:    ":" + app.Config.Server.MatchServicePort,
		Handler: router,
	}

	go func() {
		app.Logger.Info("match service listening",
			zap.String("port", app.Config.Server.MatchServicePort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Logger.Info("shutting down match service")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		app.Logger.Error("shutdown error", zap.Error(err))
	}

	// Stop pending match checks before the workers go away.
	app.Bottles.Close()
	app.Logger.Info("match service stopped")
}
