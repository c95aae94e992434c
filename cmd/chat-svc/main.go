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
	app, cleanup, err := di.InitChatApp("chat-svc")
	if err != nil {
		log.Fatalf("failed to initialize chat service: %v", err)
	}
	defer cleanup()

	if err := dbmysql.Migrate(app.DB); err != nil {
		app.Logger.Fatal("database migration failed", zap.Error(err))
	}

	router := api.NewRouter(app.Logger)
	protected := api.Protected(router)
	api.NewChatHandler(app.Chat, app.Logger).Register(protected)
	api.NewAssistantHandler(app.Assistant, app.Logger).Register(protected)
	api.NewFeedHandler(app.Feed, app.Logger).Register(protected)
	api.NewNotifHandler(app.Notifications, app.Hub, app.Logger).Register(protected)

	srv := &http.Server{
		Addr:    ":" + app.Config.Server.ChatServicePort,
		Handler: router,
	}

	go func() {
		app.Logger.Info("chat service listening",
			zap.String("port", app.Config.Server.ChatServicePort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Logger.Info("shutting down chat service")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		app.Logger.Error("shutdown error", zap.Error(err))
	}
	app.Logger.Info("chat service stopped")
}
