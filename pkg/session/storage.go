package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Fixed storage keys, shared by every backend. The layout is three
// independent string-valued entries.
const (
	KeySessionID = "sessionId"
	KeyToken     = "token"
	KeyUser      = "user"
)

// Storage is the durable key-value mirror behind a Store. Implementations
// must be safe for concurrent use. Get returns ErrKeyNotFound for absent
// keys so callers can distinguish "not stored" from a backend failure.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MemoryStorage implements Storage in process memory. Values do not survive
// a restart; it exists for tests and for callers that opt out of
// persistence.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage creates an empty in-memory storage backend.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

func (m *MemoryStorage) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// FileStorage implements Storage as a single JSON object on disk, written
// with 0600 permissions since it holds live credentials. Every mutation
// rewrites the whole file; the entries are tiny and mutations are rare
// (login, logout), so there is no write coalescing.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

// NewFileStorage creates a file-backed storage at path. The file and its
// parent directory are created lazily on first write.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return "", err
	}
	value, ok := values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

func (f *FileStorage) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return err
	}
	values[key] = value
	return f.write(values)
}

func (f *FileStorage) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return f.write(values)
}

func (f *FileStorage) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		// A corrupted file is treated as empty rather than poisoning every
		// subsequent read.
		return make(map[string]string), nil
	}
	return values, nil
}

func (f *FileStorage) write(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
