// Package session is the single source of truth for the current
// authenticated identity of an influmatch client process.
//
// A Store holds the backend-issued session ID, a bearer token carried for
// backward compatibility with token-based auth, and a cached user profile.
// All three are mirrored to a pluggable Storage backend on every mutation and
// read back exactly once, at construction. The store is authenticated while
// either credential is present.
//
// Storage failures never propagate: a backend that cannot be read or written
// degrades to a logged warning and an in-memory-only store. Losing a
// persisted session is recoverable (the user logs in again); crashing the
// caller is not.
//
// Backends:
//
//   - MemoryStorage: process-local, used in tests and as a safe default.
//   - FileStorage: a JSON file on disk, suitable for CLI usage.
//   - boltstore.Storage: a bbolt bucket (see pkg/session/boltstore).
//   - redisstore.Storage: prefixed redis keys for headless deployments
//     (see pkg/session/redisstore).
//
// Usage:
//
//	store := session.New(session.NewFileStorage(path))
//	if store.IsAuthenticated() {
//	    user := store.User(ctx)
//	    ...
//	}
package session
