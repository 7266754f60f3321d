package persist

import (
	"context"
	"maps"
	"sync"
)

// Backend stores canvas blobs by key.
//
// Load reports found=false with a nil error when nothing is stored under
// the key. Remove of a missing key is not an error.
type Backend interface {
	// Name identifies the backend in logs and hooks.
	Name() string

	Load(ctx context.Context, key string) (data []byte, found bool, err error)
	Save(ctx context.Context, key string, data []byte) error
	Remove(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// =============================================================================
// Null Backend
// =============================================================================

// NullBackend never stores anything. Useful when persistence is disabled.
type NullBackend struct{}

// NewNullBackend creates a null backend.
func NewNullBackend() Backend {
	return &NullBackend{}
}

func (b *NullBackend) Name() string { return "null" }

// Load always reports nothing stored.
func (b *NullBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Save does nothing.
func (b *NullBackend) Save(ctx context.Context, key string, data []byte) error {
	return nil
}

// Remove does nothing.
func (b *NullBackend) Remove(ctx context.Context, key string) error {
	return nil
}

func (b *NullBackend) Close() error { return nil }

// =============================================================================
// Memory Backend
// =============================================================================

// MemoryBackend keeps blobs in process memory.
type MemoryBackend struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{blobs: make(map[string][]byte)}
}

func (b *MemoryBackend) Name() string { return "memory" }

func (b *MemoryBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

func (b *MemoryBackend) Save(ctx context.Context, key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blobs[key] = append([]byte(nil), data...)
	return nil
}

func (b *MemoryBackend) Remove(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.blobs, key)
	return nil
}

// Keys returns a snapshot of the stored keys.
func (b *MemoryBackend) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([]string, 0, len(b.blobs))
	for k := range maps.Keys(b.blobs) {
		keys = append(keys, k)
	}
	return keys
}

func (b *MemoryBackend) Close() error { return nil }

// =============================================================================
// Scoped Backend
// =============================================================================

// ScopedBackend prefixes every key before handing it to an inner backend,
// so several canvases or users can share one store.
//
//	team := NewScopedBackend(redisBackend, "team:design:")
//	adapter := NewAdapter(team)
type ScopedBackend struct {
	inner  Backend
	prefix string
}

// NewScopedBackend wraps inner with a key prefix. A nil inner becomes a
// null backend.
func NewScopedBackend(inner Backend, prefix string) Backend {
	if inner == nil {
		inner = NewNullBackend()
	}
	return &ScopedBackend{inner: inner, prefix: prefix}
}

func (b *ScopedBackend) Name() string { return b.inner.Name() }

func (b *ScopedBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	return b.inner.Load(ctx, b.prefix+key)
}

func (b *ScopedBackend) Save(ctx context.Context, key string, data []byte) error {
	return b.inner.Save(ctx, b.prefix+key, data)
}

func (b *ScopedBackend) Remove(ctx context.Context, key string) error {
	return b.inner.Remove(ctx, b.prefix+key)
}

func (b *ScopedBackend) Close() error { return b.inner.Close() }

var (
	_ Backend = (*NullBackend)(nil)
	_ Backend = (*MemoryBackend)(nil)
	_ Backend = (*ScopedBackend)(nil)
)
