package canvas

import (
	"maps"
	"slices"

	"github.com/canvasflow/designer/pkg/geom"
)

// Metadata keys with meaning to the engine. Other keys are carried opaquely.
const (
	MetaType       = "type"
	MetaName       = "name"
	MetaScreenName = "screenName"
	MetaSrc        = "src"
	MetaCaption    = "caption"
)

// ReservedStyleKeys are the style keys owned by [Geometry]. Elements are
// always absolutely positioned, so these keys are written from geometry
// when a canvas is saved. [WithStyle] and [Patch] style updates ignore them.
var ReservedStyleKeys = []string{"left", "top", "width", "height", "zIndex", "position"}

// IsReservedStyle reports whether key is one of [ReservedStyleKeys].
func IsReservedStyle(key string) bool {
	return slices.Contains(ReservedStyleKeys, key)
}

// Geometry is an element's position, size and stacking in canvas units.
type Geometry struct {
	Left   float64 `json:"left" bson:"left"`
	Top    float64 `json:"top" bson:"top"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	ZIndex int     `json:"zIndex" bson:"zIndex"`
}

// Rect returns the bounding rectangle of g.
func (g Geometry) Rect() geom.Rect {
	return geom.Rect{Left: g.Left, Top: g.Top, Width: g.Width, Height: g.Height}
}

// Element is a single positioned item on the canvas.
//
// Tag, ClassName, Content and Style are presentation payload: the engine
// stores them and hands them back, but never interprets them.
type Element struct {
	ID        string            `json:"id" bson:"id"`
	Tag       string            `json:"tag" bson:"tag"`
	Type      Type              `json:"type" bson:"type"`
	ClassName string            `json:"className,omitempty" bson:"className,omitempty"`
	Content   string            `json:"content,omitempty" bson:"content,omitempty"`
	Style     map[string]string `json:"style,omitempty" bson:"style,omitempty"`
	Geometry  Geometry          `json:"geometry" bson:"geometry"`
	Metadata  map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
	IsLocked  bool              `json:"isLocked" bson:"isLocked"`
}

// Rect returns the element's bounding rectangle.
func (e Element) Rect() geom.Rect { return e.Geometry.Rect() }

// Meta returns a metadata value or "".
func (e Element) Meta(key string) string {
	return e.Metadata[key]
}

// Clone returns a deep copy of e, so maps can be modified independently.
func (e Element) Clone() Element {
	e.Style = maps.Clone(e.Style)
	e.Metadata = maps.Clone(e.Metadata)
	return e
}

// Patch is a partial update applied by [Store.Update]. Nil fields are left
// untouched. In Metadata and Style an empty value deletes the key. Reserved
// style keys in Style are ignored; set geometry through the geometry fields.
type Patch struct {
	Left, Top     *float64
	Width, Height *float64
	ZIndex        *int
	Content       *string
	ClassName     *string
	Locked        *bool
	Metadata      map[string]string
	Style         map[string]string
}

// MoveTo returns a patch setting the top-left corner.
func MoveTo(left, top float64) Patch {
	return Patch{Left: &left, Top: &top}
}

// ResizeTo returns a patch setting width and height.
func ResizeTo(width, height float64) Patch {
	return Patch{Width: &width, Height: &height}
}

// SetZ returns a patch setting the stacking index.
func SetZ(z int) Patch {
	return Patch{ZIndex: &z}
}

// SetLocked returns a patch setting the lock flag.
func SetLocked(locked bool) Patch {
	return Patch{Locked: &locked}
}

// SetMeta returns a patch setting a single metadata key.
func SetMeta(key, value string) Patch {
	return Patch{Metadata: map[string]string{key: value}}
}

// SetContent returns a patch replacing the element content.
func SetContent(content string) Patch {
	return Patch{Content: &content}
}

// SetClassName returns a patch replacing the element class list.
func SetClassName(className string) Patch {
	return Patch{ClassName: &className}
}

// Merge combines p with q; fields set in q win.
func (p Patch) Merge(q Patch) Patch {
	if q.Left != nil {
		p.Left = q.Left
	}
	if q.Top != nil {
		p.Top = q.Top
	}
	if q.Width != nil {
		p.Width = q.Width
	}
	if q.Height != nil {
		p.Height = q.Height
	}
	if q.ZIndex != nil {
		p.ZIndex = q.ZIndex
	}
	if q.Content != nil {
		p.Content = q.Content
	}
	if q.ClassName != nil {
		p.ClassName = q.ClassName
	}
	if q.Locked != nil {
		p.Locked = q.Locked
	}
	p.Metadata = mergeStrings(p.Metadata, q.Metadata)
	p.Style = mergeStrings(p.Style, q.Style)
	return p
}

// apply returns a copy of e with p applied.
func (p Patch) apply(e Element) Element {
	e = e.Clone()
	if p.Left != nil {
		e.Geometry.Left = *p.Left
	}
	if p.Top != nil {
		e.Geometry.Top = *p.Top
	}
	if p.Width != nil {
		e.Geometry.Width = *p.Width
	}
	if p.Height != nil {
		e.Geometry.Height = *p.Height
	}
	if p.ZIndex != nil {
		e.Geometry.ZIndex = *p.ZIndex
	}
	if p.Content != nil {
		e.Content = *p.Content
	}
	if p.ClassName != nil {
		e.ClassName = *p.ClassName
	}
	if p.Locked != nil {
		e.IsLocked = *p.Locked
	}
	e.Metadata = applyStrings(e.Metadata, p.Metadata)
	e.Style = applyStrings(e.Style, withoutReserved(p.Style))
	return e
}

func mergeStrings(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	out := maps.Clone(dst)
	if out == nil {
		out = make(map[string]string, len(src))
	}
	maps.Copy(out, src)
	return out
}

func applyStrings(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		if v == "" {
			delete(dst, k)
		} else {
			dst[k] = v
		}
	}
	return dst
}

func withoutReserved(style map[string]string) map[string]string {
	for k := range style {
		if IsReservedStyle(k) {
			out := maps.Clone(style)
			maps.DeleteFunc(out, func(k, _ string) bool { return IsReservedStyle(k) })
			return out
		}
	}
	return style
}
