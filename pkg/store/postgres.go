package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/biolababs/serverless-trivia-game/pkg/config"
	"github.com/biolababs/serverless-trivia-game/pkg/progress"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RowQuerier is the subset of *pgxpool.Pool used by PostgresStore
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// PostgresStore reads progression rows keyed by player_name
type PostgresStore struct {
	db    RowQuerier
	pool  *pgxpool.Pool
	query string
}

func NewPostgresStore(db RowQuerier, table string) *PostgresStore {
	return &PostgresStore{
		db:    db,
		query: "SELECT player_name, experience, wins, level FROM " + pgx.Identifier{table}.Sanitize() + " WHERE player_name = $1",
	}
}

// OpenPostgres creates a connection pool and verifies connectivity
func OpenPostgres(ctx context.Context, cfg config.PostgresConfig, table string) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := NewPostgresStore(pool, table)
	s.pool = pool
	return s, nil
}

func (s *PostgresStore) Get(ctx context.Context, playerName string) (progress.Record, bool, error) {
	var rec progress.Record
	err := s.db.QueryRow(ctx, s.query, playerName).Scan(&rec.PlayerName, &rec.Experience, &rec.Wins, &rec.Level)
	if errors.Is(err, pgx.ErrNoRows) {
		return progress.Record{}, false, nil
	}
	if err != nil {
		return progress.Record{}, false, progress.NewLookupError(playerName, err)
	}
	return rec, true, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *PostgresStore) Close(ctx context.Context) error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
