package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store owns the in-memory session state and keeps the Storage backend in
// sync on every mutation. The backend is read back only once, at
// construction; User is the exception and re-reads on each call so an update
// written by another process sharing the same backend is not missed.
type Store struct {
	mu      sync.RWMutex
	storage Storage
	log     *slog.Logger

	sessionID   string
	bearerToken string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for storage-failure warnings.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a Store over the given storage backend and loads any persisted
// credentials. A nil storage falls back to in-memory only. Load failures are
// logged and leave the store unauthenticated; New never fails.
func New(storage Storage, opts ...Option) *Store {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	s := &Store{
		storage: storage,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

// load is the only place durable storage is read back into memory.
func (s *Store) load() {
	ctx := context.Background()
	s.sessionID = s.readKey(ctx, KeySessionID)
	s.bearerToken = s.readKey(ctx, KeyToken)
}

func (s *Store) readKey(ctx context.Context, key string) string {
	value, err := s.storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.log.Warn("failed to load session from storage", "key", key, "error", err)
		}
		return ""
	}
	return value
}

// SetAuthenticated stores the credentials issued by a successful login or
// registration response. All three fields are overwritten in memory and
// persisted; after it returns, requests built from this store carry the new
// credentials.
func (s *Store) SetAuthenticated(ctx context.Context, sessionID, bearerToken string, user *User) {
	s.mu.Lock()
	s.sessionID = sessionID
	s.bearerToken = bearerToken
	s.mu.Unlock()

	s.persist(ctx, KeySessionID, sessionID)
	s.persist(ctx, KeyToken, bearerToken)
	if user != nil {
		data, err := json.Marshal(user)
		if err != nil {
			s.log.Warn("failed to serialize user for storage", "error", err)
			return
		}
		s.persist(ctx, KeyUser, string(data))
	}
}

// Clear removes all credentials from memory and storage. Idempotent; called
// on logout and whenever the backend rejects the session with a 401.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.sessionID = ""
	s.bearerToken = ""
	s.mu.Unlock()

	for _, key := range []string{KeySessionID, KeyToken, KeyUser} {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.log.Warn("failed to clear session key from storage", "key", key, "error", err)
		}
	}
}

func (s *Store) persist(ctx context.Context, key, value string) {
	if err := s.storage.Set(ctx, key, value); err != nil {
		s.log.Warn("failed to persist session to storage", "key", key, "error", err)
	}
}

// SessionID returns the backend-issued session token, or "" when unset.
func (s *Store) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// BearerToken returns the JWT carried for token-based auth, or "" when unset.
func (s *Store) BearerToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bearerToken
}

// IsAuthenticated reports whether either credential is present. A cached
// user alone does not make the store authenticated.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID != "" || s.bearerToken != ""
}

// User returns the cached profile, re-read from storage on every call.
// Returns nil when nothing is stored or the stored value is malformed.
func (s *Store) User(ctx context.Context) *User {
	raw, err := s.storage.Get(ctx, KeyUser)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.log.Warn("failed to read user from storage", "error", err)
		}
		return nil
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn("stored user record is malformed", "error", err)
		return nil
	}
	return &user
}

// PatchUser merges the non-zero fields of partial onto the stored user and
// persists the result. No-op when no user is stored. Authentication status
// is unaffected.
func (s *Store) PatchUser(ctx context.Context, partial User) {
	current := s.User(ctx)
	if current == nil {
		return
	}

	merged := current.merge(partial)
	data, err := json.Marshal(merged)
	if err != nil {
		s.log.Warn("failed to serialize patched user", "error", err)
		return
	}
	s.persist(ctx, KeyUser, string(data))
}

// TokenExpiresAt returns the expiry of the bearer token, read from its exp
// claim without signature verification. The zero time means no token is set,
// the token is not a JWT, or it carries no expiry.
func (s *Store) TokenExpiresAt() time.Time {
	token := s.BearerToken()
	if token == "" {
		return time.Time{}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
