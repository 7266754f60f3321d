package canvas

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Type is the kind of an element. It drives the defaults applied on
// creation and the display name shown in layer lists.
type Type string

// Element types.
const (
	Box    Type = "Box"
	Title  Type = "Title"
	Text   Type = "Text"
	Button Type = "Button"
	Image  Type = "Image"
	Screen Type = "Screen"
)

// legacyScreen is the label older saved canvases use for screen frames.
const legacyScreen = "Pantalla"

// Types lists every element type that can be created directly.
var Types = []Type{Box, Title, Text, Button, Image, Screen}

// ParseType resolves a type name, case-insensitively. The legacy screen
// label is accepted as [Screen].
func ParseType(s string) (Type, bool) {
	if strings.EqualFold(s, legacyScreen) {
		return Screen, true
	}
	for _, t := range Types {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

// IsTextual reports whether the element's content is user-visible text,
// in which case layer lists name it after its content.
func (t Type) IsTextual() bool {
	return t == Text || t == Title || t == Button
}

// Preset is the set of defaults applied when an element of a type is added.
type Preset struct {
	Tag       string
	ClassName string
	Content   string
	Width     float64
	Height    float64
	Metadata  map[string]string
}

// maxAutoName is the number of content runes used for an automatic name.
const maxAutoName = 15

// ImagePlaceholder returns the placeholder image URL for a width/height,
// rounded to whole pixels.
func ImagePlaceholder(width, height float64) string {
	return fmt.Sprintf("https://placehold.co/%dx%d/e0e0e0/333?text=Image", roundInt(width), roundInt(height))
}

// PresetFor returns the creation defaults for t.
func PresetFor(t Type) Preset {
	switch t {
	case Button:
		return Preset{Tag: "button", ClassName: "bg-blue-500 text-white py-2 px-4 rounded-lg shadow-md", Content: "Click me", Width: 120, Height: 40}
	case Title:
		return Preset{Tag: "h1", ClassName: "text-4xl font-bold text-gray-800 p-2", Content: "Title", Width: 200, Height: 56}
	case Text:
		return Preset{Tag: "p", ClassName: "text-gray-700 p-2 w-64", Content: "Example paragraph.", Width: 256, Height: 40}
	case Image:
		return Preset{
			Tag:       "div",
			ClassName: "p-0 overflow-hidden bg-gray-300 rounded-lg shadow-md relative",
			Width:     200,
			Height:    150,
			Metadata: map[string]string{
				MetaSrc:     ImagePlaceholder(200, 150),
				MetaCaption: "Caption",
			},
		}
	case Screen:
		return Preset{Tag: "div", ClassName: "bg-white border-2 border-gray-400 rounded-lg screen-box", Width: 375, Height: 667}
	default:
		return Preset{Tag: "div", ClassName: "bg-white border-2 border-gray-400 rounded-lg", Width: 200, Height: 200}
	}
}

// AutoName returns the name an element of type t gets when the caller does
// not provide one: textual elements use their content, others their type.
func AutoName(t Type, content string) string {
	if !t.IsTextual() {
		return string(t)
	}
	text := strings.TrimSpace(content)
	if utf8.RuneCountInString(text) <= maxAutoName {
		return text
	}
	r := []rune(text)
	return string(r[:maxAutoName]) + "..."
}

// ScreenName returns the display name of a screen frame of the given size.
func ScreenName(width, height float64) string {
	return fmt.Sprintf("Screen %gx%g", width, height)
}

func roundInt(f float64) int {
	if f < 0 {
		return -int(-f + 0.5)
	}
	return int(f + 0.5)
}

// =============================================================================
// Creation Options
// =============================================================================

// draft is an element under construction by [Store.Add].
type draft struct {
	el      Element
	stacked bool
}

// Option customizes an element created by [Store.Add].
type Option func(*draft)

// At places the element's top-left corner. Without it the element lands at
// the default position (50, 50).
func At(left, top float64) Option {
	return func(d *draft) {
		d.el.Geometry.Left = left
		d.el.Geometry.Top = top
	}
}

// Sized overrides the preset width and height.
func Sized(width, height float64) Option {
	return func(d *draft) {
		d.el.Geometry.Width = width
		d.el.Geometry.Height = height
	}
}

// WithZIndex gives the element an explicit stacking index instead of
// placing it on top.
func WithZIndex(z int) Option {
	return func(d *draft) {
		d.el.Geometry.ZIndex = z
		d.stacked = true
	}
}

// WithContent overrides the preset content.
func WithContent(content string) Option {
	return func(d *draft) { d.el.Content = content }
}

// WithClassName overrides the preset class name.
func WithClassName(className string) Option {
	return func(d *draft) { d.el.ClassName = className }
}

// WithTag overrides the preset tag.
func WithTag(tag string) Option {
	return func(d *draft) { d.el.Tag = tag }
}

// WithStyle adds an opaque style pair. Keys in [ReservedStyleKeys] are
// ignored; use [At] and [Sized] for geometry.
func WithStyle(key, value string) Option {
	return func(d *draft) {
		if IsReservedStyle(key) {
			return
		}
		if d.el.Style == nil {
			d.el.Style = map[string]string{}
		}
		d.el.Style[key] = value
	}
}

// WithMeta sets a metadata pair. Use it with [MetaName] to give an element
// an explicit name.
func WithMeta(key, value string) Option {
	return func(d *draft) {
		if d.el.Metadata == nil {
			d.el.Metadata = map[string]string{}
		}
		d.el.Metadata[key] = value
	}
}

// newDraft applies the preset for t and then opts.
func newDraft(t Type, opts []Option) *draft {
	p := PresetFor(t)
	d := &draft{el: Element{
		Tag:       p.Tag,
		Type:      t,
		ClassName: p.ClassName,
		Content:   p.Content,
		Geometry:  Geometry{Left: DefaultLeft, Top: DefaultTop, Width: p.Width, Height: p.Height},
		Metadata:  map[string]string{},
	}}
	for k, v := range p.Metadata {
		d.el.Metadata[k] = v
	}
	for _, opt := range opts {
		opt(d)
	}
	if t == Image && d.el.Metadata[MetaSrc] == p.Metadata[MetaSrc] {
		d.el.Metadata[MetaSrc] = ImagePlaceholder(d.el.Geometry.Width, d.el.Geometry.Height)
	}
	d.el.Metadata[MetaType] = string(t)
	if d.el.Metadata[MetaName] == "" {
		d.el.Metadata[MetaName] = AutoName(t, d.el.Content)
	}
	return d
}
