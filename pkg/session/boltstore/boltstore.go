// Package boltstore provides a bbolt-backed session storage backend.
package boltstore

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/influmatch/influmatch-go/pkg/session"
)

var bucketName = []byte("session")

// Storage implements session.Storage over a bbolt database.
type Storage struct {
	db *bbolt.DB
}

var _ session.Storage = (*Storage)(nil)

// New returns a Storage over an already opened bbolt database.
func New(db *bbolt.DB) *Storage {
	return &Storage{db: db}
}

// Open opens (creating if needed) a bbolt database at path and returns a
// Storage over it. The caller owns the returned storage and must Close it.
func Open(path string) (*Storage, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", session.ErrStorageUnavailable, err)
	}
	return New(db), nil
}

// Close closes the underlying database.
func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return fmt.Errorf("%w: %s", session.ErrKeyNotFound, key)
		}
		data := b.Get([]byte(key))
		if data == nil {
			return fmt.Errorf("%w: %s", session.ErrKeyNotFound, key)
		}
		value = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("%w: %w", session.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("%w: %w", session.ErrStorageUnavailable, err)
	}
	return nil
}
