package persist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/canvasflow/designer/pkg/errors"
)

// FileBackend stores each blob as <key>.json in a directory.
type FileBackend struct {
	mu  sync.RWMutex
	dir string
}

// NewFileBackend creates a file backend rooted at dir, creating it if
// needed. An empty dir defaults to ~/.config/designer/canvases.
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		dir = filepath.Join(home, ".config", "designer", "canvases")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrap(errors.ErrCodePersistence, err, "create canvas dir")
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) Name() string { return "file" }

// Dir returns the directory blobs are written to.
func (b *FileBackend) Dir() string { return b.dir }

// Path returns the file a key is stored in.
func (b *FileBackend) Path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *FileBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if err := errors.ValidateKey(key); err != nil {
		return nil, false, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, err := os.ReadFile(b.Path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodePersistence, err, "read canvas file")
	}
	return data, true, nil
}

// Save writes the blob through a temporary file so a crash never leaves a
// half-written canvas behind.
func (b *FileBackend) Save(ctx context.Context, key string, data []byte) error {
	if err := errors.ValidateKey(key); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	path := b.Path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodePersistence, err, "write canvas file")
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(errors.ErrCodePersistence, err, "write canvas file")
	}
	return nil
}

func (b *FileBackend) Remove(ctx context.Context, key string) error {
	if err := errors.ValidateKey(key); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	err := os.Remove(b.Path(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodePersistence, err, "remove canvas file")
	}
	return nil
}

// List returns the keys stored in the directory.
func (b *FileBackend) List() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	entries, err := os.ReadDir(b.dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodePersistence, err, "list canvas dir")
	}
	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	return keys, nil
}

func (b *FileBackend) Close() error { return nil }

var _ Backend = (*FileBackend)(nil)
