package persist

import (
	"bytes"
	"encoding/json"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/errors"
)

// Style keys holding geometry, matching [canvas.ReservedStyleKeys]. They
// are split out of the style map on decode and written back on encode.
const (
	styleLeft     = "left"
	styleTop      = "top"
	styleWidth    = "width"
	styleHeight   = "height"
	styleZIndex   = "zIndex"
	stylePosition = "position"
)

// State is the persisted form of a canvas.
type State struct {
	Elements []Record `json:"elements"`
	Counter  int      `json:"counter"`
}

// Record is one persisted element.
type Record struct {
	ID        string            `json:"id,omitempty"`
	Tag       string            `json:"tag"`
	ClassName string            `json:"className"`
	Style     Style             `json:"style"`
	InnerHTML string            `json:"innerHTML"`
	Dataset   map[string]string `json:"dataset"`
	IsLocked  bool              `json:"isLocked,omitempty"`
}

// Style is a set of style pairs. It decodes from either a JSON object or a
// CSS declaration string such as "left: 50px; z-index: 3".
type Style map[string]string

// UnmarshalJSON accepts an object or a CSS declaration string.
func (s *Style) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var css string
		if err := json.Unmarshal(data, &css); err != nil {
			return err
		}
		*s = parseCSS(css)
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*s = m
	return nil
}

// parseCSS splits "a: b; c: d" into pairs. Kebab-case property names are
// converted to camelCase so "z-index" lands on zIndex.
func parseCSS(css string) Style {
	out := Style{}
	for _, decl := range strings.Split(css, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" {
			continue
		}
		out[camel(k)] = v
	}
	return out
}

func camel(s string) string {
	parts := strings.Split(s, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// Encode serializes a state. Map keys are written in sorted order, so the
// output depends only on the state's contents.
func Encode(st State) ([]byte, error) {
	if st.Elements == nil {
		st.Elements = []Record{}
	}
	data, err := json.Marshal(st)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode canvas state")
	}
	return data, nil
}

// Decode parses a blob. It returns a MALFORMED_STATE error for anything
// that is not a state object.
func Decode(data []byte) (State, error) {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, errors.Wrap(errors.ErrCodeMalformedState, err, "decode canvas state")
	}
	if st.Counter < 0 {
		return State{}, errors.New(errors.ErrCodeMalformedState, "negative counter %d", st.Counter)
	}
	return st, nil
}

// =============================================================================
// Element Conversion
// =============================================================================

// FromStore captures the elements and counter of a store.
func FromStore(store *canvas.Store) State {
	elements := store.Elements()
	st := State{Elements: make([]Record, len(elements)), Counter: store.Counter()}
	for i, el := range elements {
		st.Elements[i] = ToRecord(el)
	}
	return st
}

// ToElements converts the state's records back to elements.
func (st State) ToElements() []canvas.Element {
	out := make([]canvas.Element, len(st.Elements))
	for i, r := range st.Elements {
		out[i] = FromRecord(r)
	}
	return out
}

// ToRecord converts an element to its persisted form.
func ToRecord(el canvas.Element) Record {
	style := Style(maps.Clone(el.Style))
	if style == nil {
		style = Style{}
	}
	g := el.Geometry
	style[stylePosition] = "absolute"
	style[styleLeft] = px(g.Left)
	style[styleTop] = px(g.Top)
	style[styleWidth] = px(g.Width)
	style[styleHeight] = px(g.Height)
	style[styleZIndex] = strconv.Itoa(g.ZIndex)

	dataset := maps.Clone(el.Metadata)
	if dataset == nil {
		dataset = map[string]string{}
	}
	dataset[canvas.MetaType] = string(el.Type)

	return Record{
		ID:        el.ID,
		Tag:       el.Tag,
		ClassName: el.ClassName,
		Style:     style,
		InnerHTML: el.Content,
		Dataset:   dataset,
		IsLocked:  el.IsLocked,
	}
}

// imgSrc finds the image source in markup saved by older canvases, which
// kept the <img> tag inside the element.
var imgSrc = regexp.MustCompile(`<img[^>]*\ssrc="([^"]*)"`)

// FromRecord converts a persisted record to an element. Missing or
// unparsable geometry values become 0, and a missing type becomes Box.
func FromRecord(r Record) canvas.Element {
	style := maps.Clone(map[string]string(r.Style))
	g := canvas.Geometry{
		Left:   parsePx(style[styleLeft]),
		Top:    parsePx(style[styleTop]),
		Width:  parsePx(style[styleWidth]),
		Height: parsePx(style[styleHeight]),
		ZIndex: parseZ(style[styleZIndex]),
	}
	for _, k := range canvas.ReservedStyleKeys {
		delete(style, k)
	}
	if len(style) == 0 {
		style = nil
	}

	meta := maps.Clone(r.Dataset)
	if meta == nil {
		meta = map[string]string{}
	}
	typ, ok := canvas.ParseType(meta[canvas.MetaType])
	if !ok {
		typ = canvas.Box
	}
	meta[canvas.MetaType] = string(typ)

	content := r.InnerHTML
	if typ == canvas.Image && meta[canvas.MetaSrc] == "" {
		if m := imgSrc.FindStringSubmatch(content); m != nil {
			meta[canvas.MetaSrc] = m[1]
			content = ""
		}
	}

	return canvas.Element{
		ID:        r.ID,
		Tag:       strings.ToLower(r.Tag),
		Type:      typ,
		ClassName: r.ClassName,
		Content:   content,
		Style:     style,
		Geometry:  g,
		Metadata:  meta,
		IsLocked:  r.IsLocked,
	}
}

// px formats a length the shortest way that parses back to the same value.
func px(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64) + "px"
}

func parsePx(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseZ(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}
