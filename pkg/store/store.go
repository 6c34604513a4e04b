package store

import (
	"context"
	"fmt"
	"time"

	"github.com/biolababs/serverless-trivia-game/pkg/config"
	"github.com/biolababs/serverless-trivia-game/pkg/logger"
	"github.com/biolababs/serverless-trivia-game/pkg/metrics"
	"github.com/biolababs/serverless-trivia-game/pkg/progress"

	"go.uber.org/zap"
)

// Store defines read access to persisted player progression
type Store interface {
	// Get performs a point lookup by player name.
	// It returns found=false with a nil error when no record exists, and a
	// *progress.LookupError when the backend call itself fails.
	Get(ctx context.Context, playerName string) (rec progress.Record, found bool, err error)

	// Ping reports whether the backend is reachable
	Ping(ctx context.Context) error

	// Close releases the backend client
	Close(ctx context.Context) error
}

// Open connects to the backend selected by cfg.Store.Driver
func Open(ctx context.Context, cfg *config.AppConfig, l *logger.Logger) (Store, error) {
	var (
		s   Store
		err error
	)

	switch cfg.Store.Driver {
	case config.DriverDynamoDB:
		s, err = OpenDynamo(ctx, cfg.Store)
	case config.DriverMongoDB:
		s, err = OpenMongo(ctx, cfg.MongoDB, cfg.Store.TableName)
	case config.DriverRedis:
		s, err = OpenRedis(ctx, cfg.Redis)
	case config.DriverPostgres:
		s, err = OpenPostgres(ctx, cfg.Postgres, cfg.Store.TableName)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
	}

	l.Info("progression store opened",
		zap.String("driver", cfg.Store.Driver),
		zap.String("table", cfg.Store.TableName),
	)
	return Instrument(s, cfg.Store.Driver), nil
}

type instrumented struct {
	Store
	driver string
}

// Instrument records lookup latency for s under the given driver label
func Instrument(s Store, driver string) Store {
	return &instrumented{Store: s, driver: driver}
}

func (i *instrumented) Get(ctx context.Context, playerName string) (progress.Record, bool, error) {
	start := time.Now()
	defer func() {
		metrics.LookupDuration.WithLabelValues(i.driver).Observe(time.Since(start).Seconds())
	}()
	return i.Store.Get(ctx, playerName)
}
