package persist

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/canvasflow/designer/pkg/errors"
)

// exerciseBackend runs the contract every backend must satisfy.
func exerciseBackend(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()

	data, found, err := b.Load(ctx, "missing")
	if err != nil {
		t.Fatalf("Load(missing) error: %v", err)
	}
	if found || data != nil {
		t.Errorf("Load(missing) = %q, %v, want nil, false", data, found)
	}

	if err := b.Save(ctx, "canvas", []byte("one")); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := b.Save(ctx, "canvas", []byte("two")); err != nil {
		t.Fatalf("Save overwrite error: %v", err)
	}
	data, found, err = b.Load(ctx, "canvas")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !found || string(data) != "two" {
		t.Errorf("Load() = %q, %v, want two, true", data, found)
	}

	if err := b.Remove(ctx, "canvas"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if _, found, _ := b.Load(ctx, "canvas"); found {
		t.Error("Load after Remove should miss")
	}
	if err := b.Remove(ctx, "canvas"); err != nil {
		t.Errorf("Remove(missing) error: %v", err)
	}
}

func TestNullBackend(t *testing.T) {
	ctx := context.Background()
	b := NewNullBackend()
	defer b.Close()

	if err := b.Save(ctx, "key", []byte("value")); err != nil {
		t.Errorf("Save error: %v", err)
	}
	if _, found, _ := b.Load(ctx, "key"); found {
		t.Error("NullBackend should not store data")
	}
	if err := b.Remove(ctx, "key"); err != nil {
		t.Errorf("Remove error: %v", err)
	}
}

func TestMemoryBackend(t *testing.T) {
	b := NewMemoryBackend()
	exerciseBackend(t, b)

	ctx := context.Background()
	buf := []byte("abc")
	_ = b.Save(ctx, "k", buf)
	buf[0] = 'z'
	data, _, _ := b.Load(ctx, "k")
	if string(data) != "abc" {
		t.Errorf("stored data aliased caller buffer: %q", data)
	}
	if keys := b.Keys(); len(keys) != 1 || keys[0] != "k" {
		t.Errorf("Keys() = %v, want [k]", keys)
	}
}

func TestFileBackend(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "canvases")
	b, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	exerciseBackend(t, b)

	ctx := context.Background()
	_ = b.Save(ctx, "a", []byte("{}"))
	_ = b.Save(ctx, "b", []byte("{}"))

	info, err := os.Stat(b.Path("a"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 600", perm)
	}

	keys, err := b.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("List() = %v, want [a b]", keys)
	}
}

func TestFileBackendRejectsBadKeys(t *testing.T) {
	b, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	ctx := context.Background()
	for _, key := range []string{"", "../escape", "a/b"} {
		if err := b.Save(ctx, key, []byte("x")); !errors.Is(err, errors.ErrCodeInvalidKey) {
			t.Errorf("Save(%q) error = %v, want INVALID_KEY", key, err)
		}
		if _, _, err := b.Load(ctx, key); !errors.Is(err, errors.ErrCodeInvalidKey) {
			t.Errorf("Load(%q) error = %v, want INVALID_KEY", key, err)
		}
	}
}

func TestScopedBackend(t *testing.T) {
	inner := NewMemoryBackend()
	b := NewScopedBackend(inner, "team:")
	exerciseBackend(t, b)

	ctx := context.Background()
	_ = b.Save(ctx, "canvas", []byte("x"))
	if _, found, _ := inner.Load(ctx, "team:canvas"); !found {
		t.Error("scoped save should land under the prefixed key")
	}
	if _, found, _ := inner.Load(ctx, "canvas"); found {
		t.Error("scoped save should not touch the bare key")
	}
	if b.Name() != "memory" {
		t.Errorf("Name() = %q, want memory", b.Name())
	}
}

func TestSQLiteBackend(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "designer.sqlite")
	b, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer b.Close()

	exerciseBackend(t, b)

	_ = b.Save(ctx, "first", []byte("1"))
	_ = b.Save(ctx, "second", []byte("2"))
	keys, err := b.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("Keys() = %v, want 2 keys", keys)
	}

	// Reopening sees the saved data.
	b.Close()
	b2, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer b2.Close()
	data, found, err := b2.Load(ctx, "first")
	if err != nil || !found || string(data) != "1" {
		t.Errorf("Load after reopen = %q, %v, %v", data, found, err)
	}
}
