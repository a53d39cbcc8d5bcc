// Package suite starts a throwaway redis container and hands tests a game
// repository bound to it.
package suite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/hasamishogi-backend/internal/repository"
)

const (
	expireDuration  = 120
	maxWaitDuration = 120 * time.Second
	scanBatch       = 100
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

type Suite struct {
	*testing.T

	Client *redis.Client
	Games  repository.GameRepository
}

type options struct {
	ttl time.Duration
}

type Option func(*options)

// WithTTL makes the suite's repository expire games after ttl.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.ttl = ttl
	}
}

// New skips the test under -short or when docker is unreachable.
func New(t *testing.T, opts ...Option) (context.Context, *Suite) {
	t.Helper()

	if testing.Short() {
		t.Skip("redis suite needs docker, skipped in short mode")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	client := startRedis(ctx, t)

	if err := FlushGames(ctx, client); err != nil {
		t.Fatalf("could not flush games: %v", err)
	}

	t.Cleanup(func() {
		if err := FlushGames(context.Background(), client); err != nil {
			t.Logf("could not flush games: %v", err)
		}
		_ = client.Close()
	})

	return ctx, &Suite{
		T:      t,
		Client: client,
		Games:  repository.NewGameRepository(client, o.ttl),
	}
}

// FlushGames deletes every stored game and leaves other keys alone.
func FlushGames(ctx context.Context, client *redis.Client) error {
	iter := client.Scan(ctx, 0, repository.GameKey("*"), scanBatch).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan games: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete games: %w", err)
	}

	return nil
}

func startRedis(ctx context.Context, t *testing.T) *redis.Client {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not reachable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis: %v", err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("could not purge redis: %v", err)
		}
	})

	// hard kill in case the cleanup never runs
	_ = resource.Expire(expireDuration)

	pool.MaxWait = maxWaitDuration

	client := redis.NewClient(&redis.Options{Addr: resource.GetHostPort(redisPort)})
	if err = pool.Retry(func() error {
		return client.Ping(ctx).Err()
	}); err != nil {
		t.Fatalf("could not connect to redis: %v", err)
	}

	return client
}
