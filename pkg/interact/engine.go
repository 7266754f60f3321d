package interact

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/errors"
	"github.com/canvasflow/designer/pkg/geom"
	"github.com/canvasflow/designer/pkg/observability"
)

// State is the gesture the engine is running.
type State int

const (
	Idle State = iota
	Dragging
	Resizing
	Marquee
)

// String returns the state name used in logs and hooks.
func (s State) String() string {
	switch s {
	case Dragging:
		return "drag"
	case Resizing:
		return "resize"
	case Marquee:
		return "marquee"
	default:
		return "idle"
	}
}

// DefaultMinSize is the smallest width or height a resize can produce.
const DefaultMinSize = 30.0

// Config holds the tunable constants of the engine.
type Config struct {
	// SnapThreshold is the canvas distance under which lines snap.
	SnapThreshold float64
	// MinSize is the floor a resized dimension must stay above.
	MinSize float64
}

// DefaultConfig returns the standard snap threshold and size floor.
func DefaultConfig() Config {
	return Config{SnapThreshold: geom.DefaultSnapThreshold, MinSize: DefaultMinSize}
}

// Guide is a snap line to display, in canvas coordinates. A Horizontal
// guide is a vertical line at x = Line; a Vertical guide is a horizontal
// line at y = Line.
type Guide struct {
	Axis geom.Axis
	Line float64
}

// Frame describes the outcome of one gesture step.
type Frame struct {
	State   State
	Primary string
	// Geometry of the primary element after the step. Zero for marquee.
	Geometry canvas.Geometry
	Guides   []Guide
	// Band is the marquee rectangle in canvas space.
	Band geom.Rect
	// Selected lists the selection after a marquee step.
	Selected []string
}

// Engine drives gestures against a store and viewport.
// It is not safe for concurrent use.
type Engine struct {
	store  *canvas.Store
	view   *canvas.Viewport
	cfg    Config
	logger *log.Logger

	editing string
	g       *gesture
	guides  []Guide
}

// Option configures an [Engine].
type Option func(*Engine)

// WithConfig replaces the default constants. Non-positive fields keep their
// defaults.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		if cfg.SnapThreshold > 0 {
			e.cfg.SnapThreshold = cfg.SnapThreshold
		}
		if cfg.MinSize > 0 {
			e.cfg.MinSize = cfg.MinSize
		}
	}
}

// WithLogger sets the logger used for gesture diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an idle engine.
func New(store *canvas.Store, view *canvas.Viewport, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		view:   view,
		cfg:    DefaultConfig(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// gesture is the state captured when a gesture begins.
type gesture struct {
	id      string
	kind    State
	primary string
	began   time.Time
	frames  int

	// pointer is the canvas-space start for drag and marquee, the
	// screen-space start for resize.
	pointer geom.Point
	start   map[string]canvas.Geometry
	order   []string

	// resize
	startMeta map[string]string

	// marquee
	additive      bool
	prevSelection []string
	band          geom.Rect
	selected      []string
}

// State returns the active gesture, or Idle.
func (e *Engine) State() State {
	if e.g == nil {
		return Idle
	}
	return e.g.kind
}

// Config returns the constants the engine uses.
func (e *Engine) Config() Config { return e.cfg }

// Guides returns the snap guides of the last drag frame.
func (e *Engine) Guides() []Guide { return e.guides }

// GuideScreen returns the screen coordinate of a guide for the current
// viewport.
func (e *Engine) GuideScreen(g Guide) float64 {
	p := e.view.ToScreen(geom.Point{X: g.Line, Y: g.Line})
	if g.Axis == geom.Vertical {
		return p.Y
	}
	return p.X
}

// SetEditing marks id as being text-edited; it cannot be dragged and the
// delete key is ignored until [Engine.StopEditing].
func (e *Engine) SetEditing(id string) { e.editing = id }

// StopEditing leaves text-edit mode.
func (e *Engine) StopEditing() { e.editing = "" }

// Editing returns the id in text-edit mode, or "".
func (e *Engine) Editing() string { return e.editing }

// DeleteSelected handles the delete key: it removes the unlocked selected
// elements unless an element is being edited.
func (e *Engine) DeleteSelected() int {
	if e.editing != "" {
		return 0
	}
	if e.g != nil {
		e.End()
	}
	return e.store.RemoveSelected()
}

// Move advances the active gesture to pointer (screen space).
func (e *Engine) Move(pointer geom.Point) (Frame, error) {
	if e.g == nil {
		return Frame{}, errors.New(errors.ErrCodeGestureState, "no active gesture")
	}
	e.g.frames++
	switch e.g.kind {
	case Dragging:
		return e.dragTo(pointer), nil
	case Resizing:
		return e.resizeTo(pointer), nil
	default:
		return e.marqueeTo(pointer), nil
	}
}

// End commits the active gesture and returns the engine to Idle. Geometry
// already written by Move stays in the store. Calling End while idle
// returns a GESTURE_STATE error.
func (e *Engine) End() (Frame, error) {
	g := e.g
	if g == nil {
		return Frame{}, errors.New(errors.ErrCodeGestureState, "no active gesture")
	}
	f := e.frame()
	if g.kind == Marquee {
		e.finishMarquee()
		f.Selected = e.store.SelectedIDs()
	}
	e.finish(false)
	f.State = Idle
	f.Guides = nil
	return f, nil
}

// Cancel reverts the active gesture: dragged or resized elements return to
// their starting geometry, a marquee restores the prior selection.
func (e *Engine) Cancel() error {
	g := e.g
	if g == nil {
		return errors.New(errors.ErrCodeGestureState, "no active gesture")
	}
	switch g.kind {
	case Dragging, Resizing:
		patches := make(map[string]canvas.Patch, len(g.start))
		for id, geo := range g.start {
			p := canvas.MoveTo(geo.Left, geo.Top).Merge(canvas.ResizeTo(geo.Width, geo.Height))
			if g.kind == Resizing && g.startMeta != nil {
				p.Metadata = g.startMeta
			}
			patches[id] = p
		}
		e.store.Apply(patches)
	case Marquee:
		e.store.SelectMany(g.prevSelection)
	}
	e.finish(true)
	return nil
}

// begin ends any active gesture and records a new one.
func (e *Engine) begin(kind State, primary string) *gesture {
	if e.g != nil {
		e.End()
	}
	e.g = &gesture{
		id:      uuid.NewString(),
		kind:    kind,
		primary: primary,
		began:   time.Now(),
		start:   map[string]canvas.Geometry{},
	}
	e.guides = nil
	return e.g
}

func (e *Engine) started() {
	g := e.g
	observability.Gesture().OnGestureStart(g.id, g.kind.String(), g.order)
	e.logger.Debug("gesture started", "gesture", g.id, "kind", g.kind, "primary", g.primary, "elements", len(g.order))
}

func (e *Engine) finish(cancelled bool) {
	g := e.g
	e.g = nil
	e.guides = nil
	elapsed := time.Since(g.began)
	observability.Gesture().OnGestureEnd(g.id, g.kind.String(), g.frames, cancelled, elapsed)
	e.logger.Debug("gesture ended", "gesture", g.id, "kind", g.kind, "frames", g.frames, "cancelled", cancelled)
}

// frame reports the current state of the active gesture.
func (e *Engine) frame() Frame {
	g := e.g
	f := Frame{State: g.kind, Primary: g.primary, Guides: e.guides}
	if g.kind == Marquee {
		f.Band = g.band
		f.Selected = g.selected
		return f
	}
	if el, ok := e.store.Get(g.primary); ok {
		f.Geometry = el.Geometry
	}
	return f
}
