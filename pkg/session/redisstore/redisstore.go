// Package redisstore provides a redis-backed session storage backend for
// headless deployments where several workers share one authenticated
// session.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/influmatch/influmatch-go/pkg/session"
)

const defaultKeyPrefix = "influmatch:session:"

// Storage implements session.Storage over a redis client. Each session key
// becomes one redis string under the configured prefix.
type Storage struct {
	client *redis.Client
	prefix string
}

var _ session.Storage = (*Storage)(nil)

// Option configures a Storage.
type Option func(*Storage)

// WithKeyPrefix overrides the redis key prefix. Use distinct prefixes when
// several independent sessions share one redis instance.
func WithKeyPrefix(prefix string) Option {
	return func(s *Storage) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// New returns a Storage over an existing redis client.
func New(client *redis.Client, opts ...Option) *Storage {
	s := &Storage{
		client: client,
		prefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", session.ErrKeyNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", session.ErrStorageUnavailable, err)
	}
	return value, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: %w", session.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("%w: %w", session.ErrStorageUnavailable, err)
	}
	return nil
}
