package session

import "errors"

var (
	// ErrKeyNotFound indicates the storage backend has no value for the key.
	ErrKeyNotFound = errors.New("session: key not found")

	// ErrStorageUnavailable indicates the storage backend could not be reached.
	ErrStorageUnavailable = errors.New("session: storage unavailable")
)
