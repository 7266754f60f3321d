package cli

import (
	"context"
	"strings"
	"time"

	"github.com/canvasflow/designer/internal/config"
	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/errors"
	"github.com/canvasflow/designer/pkg/interact"
	"github.com/canvasflow/designer/pkg/persist"
)

// connectTimeout bounds connecting to a remote backend.
const connectTimeout = 10 * time.Second

type backendOpener func(ctx context.Context, cfg config.Config) (persist.Backend, error)

// openBackend opens the backend named in the config.
func openBackend(ctx context.Context, cfg config.Config) (persist.Backend, error) {
	st := cfg.Storage
	var (
		b   persist.Backend
		err error
	)
	switch st.Backend {
	case config.BackendNull:
		b = persist.NewNullBackend()
	case config.BackendMemory:
		b = persist.NewMemoryBackend()
	case config.BackendFile:
		dir, derr := cfg.DataDir()
		if derr != nil {
			return nil, derr
		}
		b, err = persist.NewFileBackend(dir)
	case config.BackendSQLite:
		path, perr := cfg.SQLitePath()
		if perr != nil {
			return nil, perr
		}
		b, err = persist.OpenSQLite(ctx, path)
	case config.BackendRedis:
		b, err = connect(ctx, "Connecting to redis...", func(ctx context.Context) (persist.Backend, error) {
			return persist.NewRedisBackend(ctx, persist.RedisOptions{Addr: st.RedisAddr, Password: st.RedisPassword, DB: st.RedisDB})
		})
	case config.BackendMongo:
		b, err = connect(ctx, "Connecting to mongodb...", func(ctx context.Context) (persist.Backend, error) {
			return persist.NewMongoBackend(ctx, st.MongoURI, st.MongoDatabase, "")
		})
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown storage backend %q", st.Backend)
	}
	if err != nil {
		return nil, err
	}
	if st.Prefix != "" {
		b = persist.NewScopedBackend(b, st.Prefix)
	}
	return b, nil
}

// connect runs dial under a spinner and a timeout.
func connect(ctx context.Context, msg string, dial func(context.Context) (persist.Backend, error)) (persist.Backend, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	sw := startStopwatch(loggerFromContext(ctx), "backend dial")
	sp := newSpinner(ctx, msg)
	sp.Start()
	b, err := dial(ctx)
	if err != nil {
		sp.Fail(errors.UserMessage(err))
		sw.stop("error", err)
		return nil, err
	}
	sp.Stop()
	sw.stop("backend", b.Name())
	return b, nil
}

// =============================================================================
// Workspace
// =============================================================================

// workspace is one loaded canvas.
type workspace struct {
	store   *canvas.Store
	view    *canvas.Viewport
	adapter *persist.Adapter
	cfg     config.Config
	found   bool
}

// open loads the canvas under the configured key. A canvas that was never
// saved loads empty.
func (c *CLI) open(ctx context.Context) (*workspace, error) {
	opener := c.opener
	if opener == nil {
		opener = openBackend
	}
	backend, err := opener(ctx, c.cfg)
	if err != nil {
		return nil, err
	}

	w := &workspace{
		store:   canvas.NewStore(),
		view:    canvas.NewViewportWithBounds(c.cfg.ZoomMin, c.cfg.ZoomMax),
		adapter: persist.NewAdapter(backend, persist.WithKey(c.cfg.Storage.Key), persist.WithLogger(c.Logger)),
		cfg:     c.cfg,
	}
	w.found = w.adapter.Restore(ctx, w.store)
	c.Logger.Debug("canvas opened", "backend", backend.Name(), "key", w.adapter.Key(), "found", w.found, "elements", w.store.Len())
	return w, nil
}

// view runs fn against the canvas without saving.
func (c *CLI) view(ctx context.Context, fn func(w *workspace) error) error {
	w, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer w.adapter.Close()
	return fn(w)
}

// edit runs fn against the canvas and saves the result. A degenerate
// selection is reported as a warning and nothing is saved.
func (c *CLI) edit(ctx context.Context, fn func(w *workspace) error) error {
	w, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer w.adapter.Close()

	if err := fn(w); err != nil {
		if errors.Is(err, errors.ErrCodeDegenerateSelection) {
			c.Logger.Debug("degenerate selection", "error", err)
			printWarning("%s", errors.UserMessage(err))
			return nil
		}
		return err
	}

	sw := startStopwatch(c.Logger, "canvas saved")
	if !w.adapter.Save(ctx, w.store) {
		return errors.New(errors.ErrCodePersistence, "canvas %q was not saved", w.adapter.Key())
	}
	sw.stop("key", w.adapter.Key(), "elements", w.store.Len())
	return nil
}

// engine returns an interaction engine over the workspace.
func (c *CLI) engine(w *workspace) *interact.Engine {
	return interact.New(w.store, w.view,
		interact.WithConfig(w.cfg.Interaction()),
		interact.WithLogger(c.Logger))
}

// selectIDs replaces the selection with ids, failing on any unknown id.
func (w *workspace) selectIDs(ids []string) error {
	for _, id := range ids {
		if !w.store.Has(id) {
			return errors.Unknown(id)
		}
	}
	w.store.SelectMany(ids)
	return nil
}

// get returns the element with id or an INVALID_REFERENCE error.
func (w *workspace) get(id string) (canvas.Element, error) {
	el, ok := w.store.Get(id)
	if !ok {
		return canvas.Element{}, errors.Unknown(id)
	}
	return el, nil
}

// splitIDs splits a comma-separated id list, dropping blanks.
func splitIDs(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
