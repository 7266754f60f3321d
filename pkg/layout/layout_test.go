package layout

import (
	"math"
	"testing"

	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/errors"
	"github.com/canvasflow/designer/pkg/geom"
)

type box struct{ left, top, width, height float64 }

func newStore(boxes ...box) (*canvas.Store, []string) {
	s := canvas.NewStore()
	ids := make([]string, len(boxes))
	for i, b := range boxes {
		ids[i] = s.Add(canvas.Box, canvas.At(b.left, b.top), canvas.Sized(b.width, b.height)).ID
	}
	s.SelectMany(ids)
	return s, ids
}

func get(t *testing.T, s *canvas.Store, id string) canvas.Geometry {
	t.Helper()
	el, ok := s.Get(id)
	if !ok {
		t.Fatalf("element %s missing", id)
	}
	return el.Geometry
}

func TestAlignVertical(t *testing.T) {
	s, ids := newStore(
		box{0, 0, 10, 10},
		box{30, 20, 10, 10},
		box{60, 100, 10, 10},
	)
	if err := Align(s, geom.Vertical); err != nil {
		t.Fatalf("Align() error: %v", err)
	}
	for i, id := range ids {
		g := get(t, s, id)
		if g.Top != 40 {
			t.Errorf("element %d top = %v, want 40", i, g.Top)
		}
		if g.Height != 10 || g.Width != 10 {
			t.Errorf("element %d size changed: %vx%v", i, g.Width, g.Height)
		}
	}
	if g := get(t, s, ids[1]); g.Left != 30 {
		t.Errorf("vertical align moved left to %v", g.Left)
	}
}

func TestAlignHorizontalMixedSizes(t *testing.T) {
	s, ids := newStore(
		box{0, 0, 100, 10},  // center 50
		box{200, 50, 20, 10}, // center 210
	)
	if err := Align(s, geom.Horizontal); err != nil {
		t.Fatalf("Align() error: %v", err)
	}
	// mean center 130
	if g := get(t, s, ids[0]); g.Left != 80 {
		t.Errorf("first left = %v, want 80", g.Left)
	}
	if g := get(t, s, ids[1]); g.Left != 120 {
		t.Errorf("second left = %v, want 120", g.Left)
	}
}

func TestDistributeHorizontal(t *testing.T) {
	s, ids := newStore(
		box{100, 0, 10, 10}, // last
		box{0, 0, 10, 10},   // first
		box{5, 0, 10, 10},   // middle
	)
	if err := Distribute(s, geom.Horizontal); err != nil {
		t.Fatalf("Distribute() error: %v", err)
	}
	if g := get(t, s, ids[2]); g.Left != 55 {
		t.Errorf("middle left = %v, want 55", g.Left)
	}
	if g := get(t, s, ids[0]); g.Left != 100 {
		t.Errorf("last moved to %v", g.Left)
	}
	if g := get(t, s, ids[1]); g.Left != 0 {
		t.Errorf("first moved to %v", g.Left)
	}
}

func TestDistributeVerticalNegativeGap(t *testing.T) {
	s, ids := newStore(
		box{0, 0, 10, 50},
		box{0, 10, 10, 50},
		box{0, 20, 10, 50},
	)
	if err := Distribute(s, geom.Vertical); err != nil {
		t.Fatalf("Distribute() error: %v", err)
	}
	// span 70, occupied 100, gap -15, middle top = 0 + 50 - 15
	if g := get(t, s, ids[1]); g.Top != 35 {
		t.Errorf("middle top = %v, want 35", g.Top)
	}
}

func TestDistributeFourElements(t *testing.T) {
	s, ids := newStore(
		box{0, 0, 10, 10},
		box{30, 0, 10, 10},
		box{60, 0, 10, 10},
		box{100, 0, 10, 10},
	)
	if err := Distribute(s, geom.Horizontal); err != nil {
		t.Fatalf("Distribute() error: %v", err)
	}
	// span 110, occupied 30, gap 80/3
	gap := 80.0 / 3
	lead := make([]float64, len(ids))
	for i, id := range ids {
		lead[i] = get(t, s, id).Left
	}
	if lead[0] != 0 || lead[3] != 100 {
		t.Errorf("ends moved to %v and %v", lead[0], lead[3])
	}
	if d := lead[1] - 10 - lead[0]; math.Abs(d-gap) > 1e-9 {
		t.Errorf("first gap = %v, want %v", d, gap)
	}
	if d := lead[2] - 10 - lead[1]; math.Abs(d-gap) > 1e-9 {
		t.Errorf("second gap = %v, want %v", d, gap)
	}
	if d := lead[3] - 10 - lead[2]; math.Abs(d-50.0/3) > 1e-9 {
		t.Errorf("space before last = %v, want %v", d, 50.0/3)
	}
}

func TestDegenerateSelection(t *testing.T) {
	tests := []struct {
		name string
		n    int
		run  func(*canvas.Store) error
	}{
		{"align one", 1, func(s *canvas.Store) error { return Align(s, geom.Vertical) }},
		{"distribute two", 2, func(s *canvas.Store) error { return Distribute(s, geom.Horizontal) }},
		{"group one", 1, func(s *canvas.Store) error { _, err := Group(s, DefaultGroupPadding); return err }},
		{"align none", 0, func(s *canvas.Store) error { return Align(s, geom.Horizontal) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var boxes []box
			for i := 0; i < tt.n; i++ {
				boxes = append(boxes, box{float64(i * 7), float64(i * 3), 10, 10})
			}
			s, _ := newStore(boxes...)
			if tt.n == 0 {
				s.Add(canvas.Box)
				s.ClearSelection()
			}
			before := s.Elements()

			err := tt.run(s)
			if !errors.Is(err, errors.ErrCodeDegenerateSelection) {
				t.Fatalf("error = %v, want DEGENERATE_SELECTION", err)
			}
			after := s.Elements()
			if len(after) != len(before) {
				t.Fatalf("element count changed %d -> %d", len(before), len(after))
			}
			for i := range before {
				if before[i].Geometry != after[i].Geometry {
					t.Errorf("element %d mutated: %+v -> %+v", i, before[i].Geometry, after[i].Geometry)
				}
			}
		})
	}
}

func TestGroup(t *testing.T) {
	s, ids := newStore(
		box{50, 50, 100, 50},
		box{200, 80, 50, 50},
	)
	_ = s.Update(ids[0], canvas.SetZ(3))
	_ = s.Update(ids[1], canvas.SetZ(5))

	group, err := Group(s, DefaultGroupPadding)
	if err != nil {
		t.Fatalf("Group() error: %v", err)
	}

	want := canvas.Geometry{Left: 30, Top: 30, Width: 240, Height: 120, ZIndex: 2}
	if group.Geometry != want {
		t.Errorf("group geometry = %+v, want %+v", group.Geometry, want)
	}
	if group.Type != canvas.Box || group.ClassName != GroupClassName {
		t.Errorf("group type/class = %v / %q", group.Type, group.ClassName)
	}
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != group.ID {
		t.Errorf("selection = %v, want only the group", got)
	}
	for _, id := range ids {
		if !s.Has(id) {
			t.Errorf("grouped element %s removed", id)
		}
	}
}
