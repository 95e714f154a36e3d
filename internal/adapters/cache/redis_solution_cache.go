package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AlexShukel/kdp-pdvrp/internal/domain"
	"github.com/AlexShukel/kdp-pdvrp/internal/platform/obs"
)

// RedisSolutionCache is a Redis-backed lookaside cache for solved
// AlgorithmSolutions, keyed by problem hash under a fixed prefix. Entries
// expire after TTL so a stale cache self-heals without manual eviction.
type RedisSolutionCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSolutionCache(client *redis.Client, ttl time.Duration) *RedisSolutionCache {
	return &RedisSolutionCache{Client: client, TTL: ttl}
}

func redisSolutionKey(hash string) string {
	return "pdvrp:solution:" + hash
}

func (r *RedisSolutionCache) Get(ctx context.Context, key string) (_ domain.AlgorithmSolution, _ bool, err error) {
	defer obs.Time(ctx, "solution.cache.redis.Get")(&err)

	if r.Client == nil {
		return domain.AlgorithmSolution{}, false, errors.New("redis solution cache: client is nil")
	}
	if key == "" {
		return domain.AlgorithmSolution{}, false, errors.New("get redis solution cache: key must not be empty")
	}

	payload, err := r.Client.Get(ctx, redisSolutionKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.AlgorithmSolution{}, false, nil
	}
	if err != nil {
		return domain.AlgorithmSolution{}, false, fmt.Errorf("get redis solution cache: %w", err)
	}

	var sol domain.AlgorithmSolution
	if err := json.Unmarshal(payload, &sol); err != nil {
		return domain.AlgorithmSolution{}, false, fmt.Errorf("get redis solution cache: decode payload: %w", err)
	}

	return sol, true, nil
}

func (r *RedisSolutionCache) Put(ctx context.Context, key string, solution domain.AlgorithmSolution) (err error) {
	defer obs.Time(ctx, "solution.cache.redis.Put")(&err)

	if r.Client == nil {
		return errors.New("redis solution cache: client is nil")
	}
	if key == "" {
		return errors.New("put redis solution cache: key must not be empty")
	}

	payload, err := json.Marshal(solution)
	if err != nil {
		return fmt.Errorf("put redis solution cache: encode payload: %w", err)
	}

	if err := r.Client.Set(ctx, redisSolutionKey(key), payload, r.TTL).Err(); err != nil {
		return fmt.Errorf("put redis solution cache: %w", err)
	}

	return nil
}
