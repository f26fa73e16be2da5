package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/jtng3/taskade/internal/config"
	"github.com/jtng3/taskade/internal/graph"
	"github.com/jtng3/taskade/internal/handler"
	"github.com/jtng3/taskade/internal/repository/mongodb"
	"github.com/jtng3/taskade/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load configuration", "error", err)
		os.Exit(1)
	}

	db, err := mongodb.Connect(context.Background(), cfg.MongoURI, cfg.Database)
	if err != nil {
		slog.Error("connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close(context.Background())
	slog.Info("database connected", "database", cfg.Database)

	authService := service.NewAuthService(db.Users(), cfg.JWTSecret, bcrypt.DefaultCost)
	taskListService := service.NewTaskListService(db.TaskLists(), db.Users())

	schema := graphql.MustParseSchema(graph.Schema, graph.NewResolver(authService, taskListService))

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, schema, db)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
