package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/AlexShukel/kdp-pdvrp/internal/domain"
)

func newTestRedisCache(t *testing.T) *RedisSolutionCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisSolutionCache(client, time.Minute)
}

func TestRedisSolutionCacheMissReturnsNotOK(t *testing.T) {
	c := newTestRedisCache(t)

	_, ok, err := c.Get(context.Background(), "unknown-hash")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisSolutionCachePutThenGetRoundTrips(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	sol := domain.AlgorithmSolution{
		BestDistanceSolution: domain.ProblemSolution{TotalDistance: 42.5, TotalPrice: 10, EmptyDistance: 1},
	}

	require.NoError(t, c.Put(ctx, "abc123", sol))

	got, ok, err := c.Get(ctx, "abc123")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, sol.BestDistanceSolution.TotalDistance, got.BestDistanceSolution.TotalDistance)
	require.Equal(t, sol.BestDistanceSolution.TotalPrice, got.BestDistanceSolution.TotalPrice)
}

func TestRedisSolutionCacheRejectsNilClient(t *testing.T) {
	c := &RedisSolutionCache{}

	_, _, err := c.Get(context.Background(), "x")
	require.Error(t, err)

	err = c.Put(context.Background(), "x", domain.AlgorithmSolution{})
	require.Error(t, err)
}

func TestRedisSolutionCacheRejectsEmptyKey(t *testing.T) {
	c := newTestRedisCache(t)

	_, _, err := c.Get(context.Background(), "")
	require.Error(t, err)

	err = c.Put(context.Background(), "", domain.AlgorithmSolution{})
	require.Error(t, err)
}
