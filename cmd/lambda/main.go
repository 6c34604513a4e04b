package main

import (
	"context"
	"fmt"
	"os"

	"github.com/biolababs/serverless-trivia-game/internal/handler"
	"github.com/biolababs/serverless-trivia-game/pkg/config"
	"github.com/biolababs/serverless-trivia-game/pkg/logger"
	"github.com/biolababs/serverless-trivia-game/pkg/store"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

func main() {
	// 1. Load config once per cold start
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
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

	l.Info("playerprogression_get initializing",
		zap.String("env", cfg.Environment),
		zap.String("driver", cfg.Store.Driver),
	)

	// 3. Open the progression store
	s, err := store.Open(context.Background(), cfg, l)
	if err != nil {
		l.Error("failed to open progression store", err)
		os.Exit(1)
	}

	// 4. Hand the handler to the Lambda runtime
	lambda.Start(handler.LambdaHandler(handler.New(s, l)))
}
