package layers

import (
	"slices"
	"testing"

	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/errors"
)

func ids(elements []canvas.Element) []string {
	out := make([]string, len(elements))
	for i, el := range elements {
		out[i] = el.ID
	}
	return out
}

func zOf(t *testing.T, s *canvas.Store, id string) int {
	t.Helper()
	el, ok := s.Get(id)
	if !ok {
		t.Fatalf("element %s missing", id)
	}
	return el.Geometry.ZIndex
}

func TestPaintOrderAndList(t *testing.T) {
	elements := []canvas.Element{
		{ID: "a", Geometry: canvas.Geometry{ZIndex: 3}},
		{ID: "b", Geometry: canvas.Geometry{ZIndex: 1}},
		{ID: "c", Geometry: canvas.Geometry{ZIndex: 2}},
		{ID: "d", Geometry: canvas.Geometry{ZIndex: 1}},
	}

	if got, want := ids(PaintOrder(elements)), []string{"b", "d", "c", "a"}; !slices.Equal(got, want) {
		t.Errorf("PaintOrder() = %v, want %v", got, want)
	}
	if got, want := ids(List(elements)), []string{"a", "c", "d", "b"}; !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
	if elements[0].ID != "a" {
		t.Error("PaintOrder() reordered its input")
	}
}

func TestReorderRenumbers(t *testing.T) {
	s := canvas.NewStore()
	a := s.Add(canvas.Box).ID
	b := s.Add(canvas.Box).ID
	c := s.Add(canvas.Box).ID

	if unknown := Reorder(s, []string{a, c, b}); len(unknown) != 0 {
		t.Fatalf("Reorder() unknown = %v, want none", unknown)
	}
	for id, want := range map[string]int{a: 3, c: 2, b: 1} {
		if got := zOf(t, s, id); got != want {
			t.Errorf("zIndex(%s) = %d, want %d", id, got, want)
		}
	}
	if got := FrontToBack(s); !slices.Equal(got, []string{a, c, b}) {
		t.Errorf("FrontToBack() = %v", got)
	}
}

func TestReorderPartialList(t *testing.T) {
	s := canvas.NewStore()
	a := s.Add(canvas.Box).ID // z 1
	b := s.Add(canvas.Box).ID // z 2
	c := s.Add(canvas.Box).ID // z 3

	Reorder(s, []string{a})
	if got, want := FrontToBack(s), []string{a, c, b}; !slices.Equal(got, want) {
		t.Errorf("FrontToBack() = %v, want %v", got, want)
	}
}

func TestReorderIgnoresUnknownIDs(t *testing.T) {
	s := canvas.NewStore()
	a := s.Add(canvas.Box).ID // z 1
	b := s.Add(canvas.Box).ID // z 2

	unknown := Reorder(s, []string{"el-42", a, "el-7"})
	if !slices.Equal(unknown, []string{"el-42", "el-7"}) {
		t.Errorf("Reorder() unknown = %v, want [el-42 el-7]", unknown)
	}
	if got, want := FrontToBack(s), []string{a, b}; !slices.Equal(got, want) {
		t.Errorf("FrontToBack() = %v, want %v", got, want)
	}
	if zOf(t, s, a) != 2 || zOf(t, s, b) != 1 {
		t.Errorf("zIndex = %d,%d, want 2,1", zOf(t, s, a), zOf(t, s, b))
	}
}

func TestMove(t *testing.T) {
	s := canvas.NewStore()
	a := s.Add(canvas.Box).ID
	b := s.Add(canvas.Box).ID
	c := s.Add(canvas.Box).ID

	if err := BringToFront(s, a); err != nil {
		t.Fatal(err)
	}
	if got, want := FrontToBack(s), []string{a, c, b}; !slices.Equal(got, want) {
		t.Errorf("after BringToFront: %v, want %v", got, want)
	}
	if err := SendToBack(s, c); err != nil {
		t.Fatal(err)
	}
	if got, want := FrontToBack(s), []string{a, b, c}; !slices.Equal(got, want) {
		t.Errorf("after SendToBack: %v, want %v", got, want)
	}
	if err := Move(s, b, -1); err != nil {
		t.Fatal(err)
	}
	if got, want := FrontToBack(s), []string{b, a, c}; !slices.Equal(got, want) {
		t.Errorf("after Move(-1): %v, want %v", got, want)
	}
	if err := Move(s, "el-9", 1); !errors.Is(err, errors.ErrCodeInvalidReference) {
		t.Errorf("Move(unknown) error = %v", err)
	}
}

func TestColliding(t *testing.T) {
	s := canvas.NewStore()
	target := s.Add(canvas.Box, canvas.At(0, 0), canvas.Sized(100, 100)).ID
	overlap := s.Add(canvas.Box, canvas.At(50, 50), canvas.Sized(100, 100)).ID
	s.Add(canvas.Box, canvas.At(500, 500), canvas.Sized(10, 10))
	touching := s.Add(canvas.Box, canvas.At(100, 0), canvas.Sized(10, 10)).ID
	s.ClearSelection()

	if _, ok := Colliding(s); ok {
		t.Fatal("Colliding() should need exactly one selected element")
	}

	s.Select(target, false)
	got, ok := Colliding(s)
	if !ok {
		t.Fatal("Colliding() reported false")
	}
	if want := []string{touching, overlap, target}; !slices.Equal(ids(got), want) {
		t.Errorf("Colliding() = %v, want %v", ids(got), want)
	}
}

func TestEntries(t *testing.T) {
	s := canvas.NewStore()
	box := s.Add(canvas.Box).ID
	title := s.Add(canvas.Title).ID
	s.Select(box, false)

	entries := Entries(s, s.Elements())
	if len(entries) != 2 {
		t.Fatalf("len(Entries()) = %d, want 2", len(entries))
	}
	if entries[0].ID != title || entries[0].Label() != "Layer 1: Title" {
		t.Errorf("first entry = %+v (%q)", entries[0], entries[0].Label())
	}
	if entries[1].ID != box || entries[1].Label() != "Layer 0: Box" || !entries[1].Selected {
		t.Errorf("second entry = %+v (%q)", entries[1], entries[1].Label())
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		el   canvas.Element
		want string
	}{
		{
			name: "explicit name",
			el:   canvas.Element{Type: canvas.Box, Metadata: map[string]string{canvas.MetaName: "Hero"}},
			want: "Hero",
		},
		{
			name: "stale truncation recomputed",
			el: canvas.Element{Type: canvas.Text, Content: "A much longer paragraph now",
				Metadata: map[string]string{canvas.MetaName: "Old text..."}},
			want: "A much longer p...",
		},
		{
			name: "text without name",
			el:   canvas.Element{Type: canvas.Button, Content: " Buy "},
			want: "Buy",
		},
		{
			name: "screen name fallback",
			el:   canvas.Element{Type: canvas.Screen, Metadata: map[string]string{canvas.MetaScreenName: "Screen 375x812"}},
			want: "Screen 375x812",
		},
		{
			name: "type fallback",
			el:   canvas.Element{Type: canvas.Image},
			want: "Image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.el); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
