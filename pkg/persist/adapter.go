package persist

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/observability"
)

// DefaultKey is the key a canvas is saved under unless configured otherwise.
const DefaultKey = "visualDesignerCanvasState"

// Adapter saves and restores a store through a backend. Failures are
// logged and swallowed: a failed Load behaves like "no saved state" and a
// failed Save leaves the previous blob in place.
type Adapter struct {
	backend Backend
	key     string
	logger  *log.Logger
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithKey sets the key the canvas is stored under.
func WithKey(key string) AdapterOption {
	return func(a *Adapter) {
		if key != "" {
			a.key = key
		}
	}
}

// WithLogger sets the logger failures are reported to.
func WithLogger(l *log.Logger) AdapterOption {
	return func(a *Adapter) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAdapter creates an adapter over backend. A nil backend never stores.
func NewAdapter(backend Backend, opts ...AdapterOption) *Adapter {
	if backend == nil {
		backend = NewNullBackend()
	}
	a := &Adapter{backend: backend, key: DefaultKey, logger: log.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Key returns the storage key.
func (a *Adapter) Key() string { return a.key }

// Backend returns the underlying backend.
func (a *Adapter) Backend() Backend { return a.backend }

// Save writes the store's elements and counter. It reports whether the
// write succeeded.
func (a *Adapter) Save(ctx context.Context, store *canvas.Store) bool {
	start := time.Now()
	data, err := Encode(FromStore(store))
	if err == nil {
		err = a.backend.Save(ctx, a.key, data)
	}
	observability.Persistence().OnSave(ctx, a.backend.Name(), a.key, len(data), time.Since(start), err)
	if err != nil {
		a.logger.Error("failed to save canvas", "backend", a.backend.Name(), "key", a.key, "error", err)
		return false
	}
	a.logger.Debug("canvas saved", "backend", a.backend.Name(), "key", a.key, "elements", store.Len(), "bytes", len(data))
	return true
}

// Load reads the saved state. It returns false when nothing is stored,
// the backend fails, or the blob cannot be decoded.
func (a *Adapter) Load(ctx context.Context) (State, bool) {
	data, found, err := a.backend.Load(ctx, a.key)
	observability.Persistence().OnLoad(ctx, a.backend.Name(), a.key, found, len(data), err)
	if err != nil {
		a.logger.Error("failed to load canvas", "backend", a.backend.Name(), "key", a.key, "error", err)
		return State{}, false
	}
	if !found {
		return State{}, false
	}
	st, err := Decode(data)
	if err != nil {
		a.logger.Warn("ignoring unreadable canvas state", "key", a.key, "error", err)
		return State{}, false
	}
	return st, true
}

// Restore loads the saved state into store. When there is nothing usable
// to load the store is left untouched and Restore returns false.
func (a *Adapter) Restore(ctx context.Context, store *canvas.Store) bool {
	st, ok := a.Load(ctx)
	if !ok {
		return false
	}
	store.Restore(st.ToElements(), st.Counter)
	a.logger.Debug("canvas restored", "key", a.key, "elements", store.Len(), "counter", store.Counter())
	return true
}

// Remove deletes the saved state.
func (a *Adapter) Remove(ctx context.Context) bool {
	err := a.backend.Remove(ctx, a.key)
	observability.Persistence().OnRemove(ctx, a.backend.Name(), a.key, err)
	if err != nil {
		a.logger.Error("failed to remove canvas", "backend", a.backend.Name(), "key", a.key, "error", err)
		return false
	}
	return true
}

// Close closes the backend.
func (a *Adapter) Close() error { return a.backend.Close() }
