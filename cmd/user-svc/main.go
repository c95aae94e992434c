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
	app, cleanup, err := di.InitUserApp("user-svc")
	if err != nil {
		log.Fatalf("failed to initialize user service: %v", err)
	}
	defer cleanup()

	if err := dbmysql.Migrate(app.DB); err != nil {
		app.Logger.Fatal("database migration failed", zap.Error(err))
	}

	router := api.NewRouter(app.Logger)
	userHandler := api.NewUserHandler(app.Users, app.Logger)
	userHandler.RegisterPublic(router)
	userHandler.RegisterProtected(api.Protected(router))
	api.NewVerifyHandler(app.Verify, app.Logger).Register(api.Public(router))

	srv := &http.Server{
		Addr:    ":" + app.Config.Server.UserServicePort,
		Handler: router,
	}

	go func() {
		app.Logger.Info("user service listening",
			zap.String("port", app.Config.Server.UserServicePort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Logger.Info("shutting down user service")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		app.Logger.Error("shutdown error", zap.Error(err))
	}
	app.Logger.Info("user service stopped")
}
