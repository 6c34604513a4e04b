package store

import (
	"context"
	"testing"

	"github.com/biolababs/serverless-trivia-game/pkg/config"
	"github.com/biolababs/serverless-trivia-game/pkg/progress"

	"github.com/alicebob/miniredis/v2"
	"github.com/goccy/go-json"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client, "playerprogress:"), mr
}

func TestRedisStoreProperties(t *testing.T) {
	s, mr := newRedisStore(t)
	defer s.Close(context.Background())

	properties := gopter.NewProperties(nil)

	properties.Property("stored records are returned verbatim", prop.ForAll(
		func(name string, experience, wins, level int64) bool {
			want := progress.Record{PlayerName: name, Experience: experience, Wins: wins, Level: level}
			data, err := json.Marshal(want)
			if err != nil {
				return false
			}
			if err := mr.Set("playerprogress:"+name, string(data)); err != nil {
				return false
			}

			got, found, err := s.Get(context.Background(), name)
			return err == nil && found && got == want
		},
		gen.Identifier(),
		gen.Int64Range(0, 1<<40),
		gen.Int64Range(0, 1<<20),
		gen.Int64Range(0, 1000),
	))

	properties.Property("unknown players are reported as absent", prop.ForAll(
		func(name string) bool {
			mr.Del("playerprogress:missing-" + name)
			_, found, err := s.Get(context.Background(), "missing-"+name)
			return err == nil && !found
		},
		gen.Identifier(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRedisStoreCorruptValue(t *testing.T) {
	s, mr := newRedisStore(t)
	require.NoError(t, mr.Set("playerprogress:alice", "not-json"))

	_, found, err := s.Get(context.Background(), "alice")
	assert.False(t, found)
	var lookupErr *progress.LookupError
	assert.ErrorAs(t, err, &lookupErr)
}

func TestRedisStoreUnreachable(t *testing.T) {
	s, mr := newRedisStore(t)
	mr.Close()

	_, found, err := s.Get(context.Background(), "alice")
	assert.False(t, found)
	var lookupErr *progress.LookupError
	assert.ErrorAs(t, err, &lookupErr)
	assert.Error(t, s.Ping(context.Background()))
}

func TestOpenRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	s, err := OpenRedis(context.Background(), config.RedisConfig{Addr: mr.Addr(), KeyPrefix: "pp:"})
	require.NoError(t, err)
	defer s.Close(context.Background())

	require.NoError(t, mr.Set("pp:alice", `{"playerName":"alice","experience":150,"wins":3,"level":2}`))
	rec, found, err := s.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(150), rec.Experience)
}
