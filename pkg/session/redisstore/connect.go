package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds the redis connection settings, loadable from the
// environment.
type Config struct {
	ConnectionURL  string        `env:"INFLUMATCH_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"INFLUMATCH_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"INFLUMATCH_REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"INFLUMATCH_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

var (
	// ErrInvalidConnectionURL means the redis URL could not be parsed.
	ErrInvalidConnectionURL = errors.New("redisstore: invalid redis connection URL")
	// ErrNotReady means redis did not answer a ping within the budget.
	ErrNotReady = errors.New("redisstore: redis did not become ready")
)

// Connect dials redis and verifies the connection with a ping, retrying up
// to cfg.RetryAttempts times within cfg.ConnectTimeout.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidConnectionURL, err)
	}

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}
	return nil, ErrNotReady
}
