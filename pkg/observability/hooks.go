// Package observability provides hooks for metrics, tracing, and logging.
//
// Library packages (canvas, interact, persist) call the registered hooks
// at interesting points; main or a test installs implementations at
// startup. Nothing in the engine depends on a specific backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGestureHooks(&myGestureHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Gesture().OnGestureStart(id, "drag", selected)
//	// ... pointer moves ...
//	observability.Gesture().OnGestureEnd(id, "drag", frames, false, elapsed)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives element store mutations. Store calls are synchronous
// and in-memory, so these hooks carry no context.
type StoreHooks interface {
	// OnAdd records a newly created element.
	OnAdd(id, elementType string)

	// OnUpdate records a batch of patched elements.
	OnUpdate(ids []string)

	// OnRemove records deleted elements. It is never called with an empty slice.
	OnRemove(ids []string)

	// OnClear records a full reset of the store.
	OnClear(removed int)

	// OnSelectionChange records the selection after it changed.
	OnSelectionChange(ids []string)
}

// =============================================================================
// Gesture Hooks
// =============================================================================

// GestureHooks receives events from the interaction engine.
type GestureHooks interface {
	// OnGestureStart records a drag, resize or marquee gesture starting.
	OnGestureStart(gestureID, kind string, ids []string)

	// OnSnap records a snap firing during a drag frame.
	OnSnap(gestureID, axis string, line float64)

	// OnGestureEnd records the end of a gesture. cancelled is true when the
	// gesture was reverted instead of committed.
	OnGestureEnd(gestureID, kind string, frames int, cancelled bool, duration time.Duration)
}

// =============================================================================
// Persistence Hooks
// =============================================================================

// PersistenceHooks receives events from the persistence adapter.
type PersistenceHooks interface {
	// OnLoad records a load attempt. found is false for a miss or a
	// malformed blob.
	OnLoad(ctx context.Context, backend, key string, found bool, size int, err error)

	// OnSave records a save attempt.
	OnSave(ctx context.Context, backend, key string, size int, duration time.Duration, err error)

	// OnRemove records a remove attempt.
	OnRemove(ctx context.Context, backend, key string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnAdd(string, string)       {}
func (NoopStoreHooks) OnUpdate([]string)          {}
func (NoopStoreHooks) OnRemove([]string)          {}
func (NoopStoreHooks) OnClear(int)                {}
func (NoopStoreHooks) OnSelectionChange([]string) {}

// NoopGestureHooks is a no-op implementation of GestureHooks.
type NoopGestureHooks struct{}

func (NoopGestureHooks) OnGestureStart(string, string, []string)                    {}
func (NoopGestureHooks) OnSnap(string, string, float64)                             {}
func (NoopGestureHooks) OnGestureEnd(string, string, int, bool, time.Duration) {}

// NoopPersistenceHooks is a no-op implementation of PersistenceHooks.
type NoopPersistenceHooks struct{}

func (NoopPersistenceHooks) OnLoad(context.Context, string, string, bool, int, error) {}
func (NoopPersistenceHooks) OnSave(context.Context, string, string, int, time.Duration, error) {
}
func (NoopPersistenceHooks) OnRemove(context.Context, string, string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	storeHooks       StoreHooks       = NoopStoreHooks{}
	gestureHooks     GestureHooks     = NoopGestureHooks{}
	persistenceHooks PersistenceHooks = NoopPersistenceHooks{}
	hooksMu          sync.RWMutex
)

// SetStoreHooks registers custom store hooks.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// SetGestureHooks registers custom gesture hooks.
func SetGestureHooks(h GestureHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gestureHooks = h
	}
}

// SetPersistenceHooks registers custom persistence hooks.
func SetPersistenceHooks(h PersistenceHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		persistenceHooks = h
	}
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Gesture returns the registered gesture hooks.
func Gesture() GestureHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gestureHooks
}

// Persistence returns the registered persistence hooks.
func Persistence() PersistenceHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return persistenceHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	storeHooks = NoopStoreHooks{}
	gestureHooks = NoopGestureHooks{}
	persistenceHooks = NoopPersistenceHooks{}
}
