package store

import (
	"context"
	"testing"

	"github.com/biolababs/serverless-trivia-game/pkg/config"
	"github.com/biolababs/serverless-trivia-game/pkg/logger"
	"github.com/biolababs/serverless-trivia-game/pkg/metrics"
	"github.com/biolababs/serverless-trivia-game/pkg/progress"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticStore struct {
	rec progress.Record
}

func (s staticStore) Get(ctx context.Context, playerName string) (progress.Record, bool, error) {
	return s.rec, true, nil
}
func (s staticStore) Ping(ctx context.Context) error  { return nil }
func (s staticStore) Close(ctx context.Context) error { return nil }

func TestInstrumentPassesThrough(t *testing.T) {
	want := progress.Record{PlayerName: "alice", Experience: 150, Wins: 3, Level: 2}
	s := Instrument(staticStore{rec: want}, "static")

	rec, found, err := s.Get(context.Background(), "alice")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, rec)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(metrics.LookupDuration), 1)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestOpenUnknownDriver(t *testing.T) {
	cfg := &config.AppConfig{Store: config.StoreConfig{Driver: "cassandra", TableName: "t"}}
	_, err := Open(context.Background(), cfg, logger.NewNop())
	assert.Error(t, err)
}

func TestOpenRedisDriver(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cfg := &config.AppConfig{
		Store: config.StoreConfig{Driver: config.DriverRedis, TableName: "PlayerProgress"},
		Redis: config.RedisConfig{Addr: mr.Addr(), KeyPrefix: "playerprogress:"},
	}
	s, err := Open(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	defer s.Close(context.Background())

	_, found, err := s.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, found)
}
