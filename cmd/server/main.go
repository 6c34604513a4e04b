package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/biolababs/serverless-trivia-game/internal/handler"
	"github.com/biolababs/serverless-trivia-game/pkg/config"
	"github.com/biolababs/serverless-trivia-game/pkg/logger"
	"github.com/biolababs/serverless-trivia-game/pkg/server"
	"github.com/biolababs/serverless-trivia-game/pkg/store"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Optional config file")
	flag.Parse()

	// 1. Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logger
	l, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer l.Sync()

	l.Info("progression server initializing", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open the progression store
	s, err := store.Open(ctx, cfg, l)
	if err != nil {
		l.Error("failed to open progression store", err)
		os.Exit(1)
	}
	defer s.Close(context.Background())

	// 4. Start HTTP server
	srv := server.New(cfg.Server.Addr, l, handler.Route, handler.New(s, l), s)
	go func() {
		if err := srv.Start(); err != nil {
			l.Error("progression server failed", err)
			stop()
		}
	}()

	<-ctx.Done()
	l.Info("progression server stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error("progression server shutdown failed", err)
	}
}
