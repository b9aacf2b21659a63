package cache

import (
	"context"
	"errors"
	"estate/infras/otel/mocks"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachable returns a cache whose client cannot connect, so every command fails fast.
func unreachable(t *testing.T) RedisCache {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache(client, mocks.NewOtel())
}

func TestEncode(t *testing.T) {
	raw, err := encode("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", string(raw))

	raw, err = encode(map[string]int{"count": 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"count": 2}`, string(raw))

	_, err = encode(make(chan int))
	assert.Error(t, err)
}

func TestSaveRejectsUnencodableValue(t *testing.T) {
	err := unreachable(t).Save(context.Background(), "key", make(chan int), 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoding cache value")
}

func TestConnectionFailuresAreNotMisses(t *testing.T) {
	c := unreachable(t)
	ctx := context.Background()

	var count int
	err := c.Get(ctx, "limiter:203.0.113.7:unknown", &count)
	require.Error(t, err)
	assert.False(t, errors.Is(err, Nil))

	assert.Error(t, c.Save(ctx, "key", 1, 10))
	assert.Error(t, c.Delete(ctx, "key"))
	assert.Error(t, c.Clear(ctx, "viewing:*"))
}
