package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"arctic-chronicler/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)
	ctx := context.Background()
	key := "chronicler:expedition:state:1"

	t.Run("hit", func(t *testing.T) {
		mock.ExpectGet(key).SetVal(`{"id":"1"}`)
		val, err := cache.Get(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, `{"id":"1"}`, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(redis.Nil)
		val, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure", func(t *testing.T) {
		boom := errors.New("connection reset")
		mock.ExpectGet(key).SetErr(boom)
		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, domain.ErrCacheMiss)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_SetDeletePing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectSet("k", "v", time.Hour).SetVal("OK")
	assert.NoError(t, cache.Set(ctx, "k", "v", time.Hour))

	boom := errors.New("readonly replica")
	mock.ExpectSet("k", "v", time.Hour).SetErr(boom)
	assert.ErrorIs(t, cache.Set(ctx, "k", "v", time.Hour), boom)

	mock.ExpectDel("k").SetVal(0)
	assert.NoError(t, cache.Delete(ctx, "k"))

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, cache.Ping(ctx))

	mock.ExpectPing().SetErr(boom)
	assert.ErrorIs(t, cache.Ping(ctx), boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}
