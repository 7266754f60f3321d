package canvas

import (
	"testing"

	"github.com/canvasflow/designer/pkg/errors"
	"github.com/canvasflow/designer/pkg/observability"
)

func TestAddDefaults(t *testing.T) {
	s := NewStore()
	el := s.Add(Box)

	if el.ID != "el-0" {
		t.Errorf("ID = %q, want %q", el.ID, "el-0")
	}
	if el.Geometry.Left != DefaultLeft || el.Geometry.Top != DefaultTop {
		t.Errorf("position = (%v, %v), want (50, 50)", el.Geometry.Left, el.Geometry.Top)
	}
	if el.Geometry.Width != 200 || el.Geometry.Height != 200 {
		t.Errorf("size = %vx%v, want 200x200", el.Geometry.Width, el.Geometry.Height)
	}
	if el.Geometry.ZIndex != 1 {
		t.Errorf("ZIndex = %d, want 1", el.Geometry.ZIndex)
	}
	if el.IsLocked {
		t.Error("new element should not be locked")
	}
	if el.Meta(MetaType) != "Box" {
		t.Errorf("type metadata = %q, want Box", el.Meta(MetaType))
	}
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != el.ID {
		t.Errorf("selection after Add = %v, want [%s]", got, el.ID)
	}
}

func TestAddExplicitPositionAtOrigin(t *testing.T) {
	s := NewStore()
	el := s.Add(Text, At(0, 0))
	if el.Geometry.Left != 0 || el.Geometry.Top != 0 {
		t.Errorf("position = (%v, %v), want (0, 0)", el.Geometry.Left, el.Geometry.Top)
	}
	if el.Tag != "p" || el.Content != "Example paragraph." {
		t.Errorf("preset not applied: tag=%q content=%q", el.Tag, el.Content)
	}
}

func TestAddZIndexCountsElements(t *testing.T) {
	s := NewStore()
	s.Add(Box)
	s.Add(Box)
	third := s.Add(Button)
	if third.Geometry.ZIndex != 3 {
		t.Errorf("ZIndex = %d, want 3", third.Geometry.ZIndex)
	}

	explicit := s.Add(Box, WithZIndex(-4))
	if explicit.Geometry.ZIndex != -4 {
		t.Errorf("explicit ZIndex = %d, want -4", explicit.Geometry.ZIndex)
	}
}

func TestIDsMonotonicAcrossRemove(t *testing.T) {
	s := NewStore()
	var ids []string
	for i := 0; i < 3; i++ {
		ids = append(ids, s.Add(Box).ID)
	}
	s.Remove(ids[1], ids[2])
	for i := 0; i < 2; i++ {
		ids = append(ids, s.Add(Box).ID)
	}

	last := -1
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("id %s reused", id)
		}
		seen[id] = true
		n, ok := ParseID(id)
		if !ok {
			t.Fatalf("ParseID(%q) failed", id)
		}
		if n <= last {
			t.Errorf("id %s not increasing after %d", id, last)
		}
		last = n
	}
}

func TestUpdate(t *testing.T) {
	s := NewStore()
	el := s.Add(Box)
	before := s.Elements()

	if err := s.Update(el.ID, MoveTo(10, 20).Merge(SetMeta(MetaName, "Hero"))); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	got, _ := s.Get(el.ID)
	if got.Geometry.Left != 10 || got.Geometry.Top != 20 {
		t.Errorf("position = (%v, %v), want (10, 20)", got.Geometry.Left, got.Geometry.Top)
	}
	if got.Meta(MetaName) != "Hero" {
		t.Errorf("name = %q, want Hero", got.Meta(MetaName))
	}
	if got.Geometry.Width != 200 {
		t.Errorf("width changed to %v", got.Geometry.Width)
	}

	// Earlier snapshots are never mutated.
	if before[0].Geometry.Left != DefaultLeft || before[0].Meta(MetaName) != "Box" {
		t.Errorf("previous snapshot mutated: %+v", before[0])
	}
}

func TestUpdateUnknownID(t *testing.T) {
	s := NewStore()
	s.Add(Box)
	err := s.Update("el-99", MoveTo(1, 1))
	if !errors.Is(err, errors.ErrCodeInvalidReference) {
		t.Errorf("Update(unknown) error = %v, want INVALID_REFERENCE", err)
	}
}

func TestUpdateDeletesEmptyMetadata(t *testing.T) {
	s := NewStore()
	el := s.Add(Box, WithMeta("note", "x"))
	_ = s.Update(el.ID, SetMeta("note", ""))
	got, _ := s.Get(el.ID)
	if _, ok := got.Metadata["note"]; ok {
		t.Error("empty metadata value should delete the key")
	}
}

func TestUpdateContentAndClassName(t *testing.T) {
	s := NewStore()
	el := s.Add(Image)
	if err := s.Update(el.ID, SetContent("Hero shot").Merge(SetClassName("p-0 rounded-full"))); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	got, _ := s.Get(el.ID)
	if got.Content != "Hero shot" {
		t.Errorf("Content = %q, want %q", got.Content, "Hero shot")
	}
	if got.ClassName != "p-0 rounded-full" {
		t.Errorf("ClassName = %q, want %q", got.ClassName, "p-0 rounded-full")
	}
	if got.Geometry != el.Geometry {
		t.Errorf("Geometry = %+v, want unchanged %+v", got.Geometry, el.Geometry)
	}
}

func TestRemovePrunesSelection(t *testing.T) {
	s := NewStore()
	a := s.Add(Box)
	b := s.Add(Box)
	s.Select(a.ID, true)

	if n := s.Remove(a.ID); n != 1 {
		t.Fatalf("Remove() = %d, want 1", n)
	}
	if s.IsSelected(a.ID) {
		t.Error("removed element still selected")
	}
	if !s.IsSelected(b.ID) {
		t.Error("unrelated selection lost")
	}
	if n := s.Remove(a.ID); n != 0 {
		t.Errorf("second Remove() = %d, want 0", n)
	}
	for _, id := range s.Selection().IDs() {
		if !s.Has(id) {
			t.Errorf("selection references dead id %s", id)
		}
	}
}

func TestRemoveSelectedSkipsLocked(t *testing.T) {
	s := NewStore()
	a := s.Add(Box)
	b := s.Add(Box)
	_ = s.Update(a.ID, SetLocked(true))
	s.SelectMany([]string{a.ID, b.ID})

	if n := s.RemoveSelected(); n != 1 {
		t.Fatalf("RemoveSelected() = %d, want 1", n)
	}
	if !s.Has(a.ID) {
		t.Error("locked element was deleted")
	}
	if s.Has(b.ID) {
		t.Error("unlocked element survived")
	}
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != a.ID {
		t.Errorf("selection = %v, want [%s]", got, a.ID)
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Add(Box)
	s.Add(Box)
	s.Clear()

	if s.Len() != 0 || s.Counter() != 0 || s.Selection().Len() != 0 {
		t.Errorf("Clear() left len=%d counter=%d selected=%d", s.Len(), s.Counter(), s.Selection().Len())
	}
	if el := s.Add(Box); el.ID != "el-0" {
		t.Errorf("first id after Clear = %q, want el-0", el.ID)
	}
}

// selectionRecorder collects OnSelectionChange calls.
type selectionRecorder struct {
	observability.NoopStoreHooks
	changes [][]string
}

func (r *selectionRecorder) OnSelectionChange(ids []string) {
	r.changes = append(r.changes, ids)
}

func recordSelection(t *testing.T) *selectionRecorder {
	t.Helper()
	r := &selectionRecorder{}
	observability.SetStoreHooks(r)
	t.Cleanup(observability.Reset)
	return r
}

func TestClearReportsSelectionChange(t *testing.T) {
	tests := []struct {
		name     string
		selected bool
		want     int
	}{
		{"selected", true, 1},
		{"nothing selected", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.Add(Box)
			if !tt.selected {
				s.ClearSelection()
			}
			r := recordSelection(t)
			s.Clear()
			if len(r.changes) != tt.want {
				t.Fatalf("OnSelectionChange calls = %d, want %d", len(r.changes), tt.want)
			}
			if tt.want > 0 && len(r.changes[0]) != 0 {
				t.Errorf("selection after Clear = %v, want empty", r.changes[0])
			}
		})
	}
}

func TestRestoreReportsSelectionChange(t *testing.T) {
	s := NewStore()
	s.Add(Box)
	r := recordSelection(t)
	s.Restore([]Element{{ID: "el-3", Type: Text}}, 0)
	if len(r.changes) != 1 || len(r.changes[0]) != 0 {
		t.Errorf("OnSelectionChange calls = %v, want one empty selection", r.changes)
	}
}

func TestReservedStyleKeysIgnored(t *testing.T) {
	s := NewStore()
	el := s.Add(Box, WithStyle("position", "relative"), WithStyle("left", "3px"), WithStyle("opacity", "0.5"))
	if len(el.Style) != 1 || el.Style["opacity"] != "0.5" {
		t.Errorf("Style after Add = %v, want only opacity", el.Style)
	}

	p := Patch{Style: map[string]string{"zIndex": "9", "position": "static", "color": "red"}}
	if err := s.Update(el.ID, p); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Get(el.ID)
	if _, ok := got.Style["position"]; ok || got.Style["color"] != "red" {
		t.Errorf("Style after Update = %v", got.Style)
	}
	if got.Geometry.ZIndex != 1 {
		t.Errorf("style zIndex changed geometry to %d", got.Geometry.ZIndex)
	}
}

func TestRestore(t *testing.T) {
	tests := []struct {
		name        string
		elements    []Element
		counter     int
		wantCounter int
		wantIDs     []string
	}{
		{
			name:        "counter kept",
			elements:    []Element{{ID: "el-0", Type: Box}, {ID: "el-3", Type: Text}},
			counter:     7,
			wantCounter: 7,
			wantIDs:     []string{"el-0", "el-3"},
		},
		{
			name:        "counter raised above ids",
			elements:    []Element{{ID: "el-4", Type: Box}},
			counter:     2,
			wantCounter: 5,
			wantIDs:     []string{"el-4"},
		},
		{
			name:        "missing ids assigned",
			elements:    []Element{{Type: Box}, {ID: "el-1", Type: Box}, {Type: Image}},
			counter:     0,
			wantCounter: 4,
			wantIDs:     []string{"el-2", "el-1", "el-3"},
		},
		{
			name:        "duplicates dropped",
			elements:    []Element{{ID: "el-0", Type: Box}, {ID: "el-0", Type: Text}},
			counter:     1,
			wantCounter: 1,
			wantIDs:     []string{"el-0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.Add(Box)
			s.Restore(tt.elements, tt.counter)

			if s.Counter() != tt.wantCounter {
				t.Errorf("Counter() = %d, want %d", s.Counter(), tt.wantCounter)
			}
			got := s.Elements()
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("element %d id = %q, want %q", i, got[i].ID, id)
				}
			}
			if s.Selection().Len() != 0 {
				t.Error("Restore should empty the selection")
			}
		})
	}
}

func TestAddScreen(t *testing.T) {
	s := NewStore()
	el := s.AddScreen(1280, 720)
	if el.Type != Screen {
		t.Errorf("Type = %v, want Screen", el.Type)
	}
	if el.Geometry.Width != 1280 || el.Geometry.Height != 720 {
		t.Errorf("size = %vx%v", el.Geometry.Width, el.Geometry.Height)
	}
	if el.Meta(MetaName) != "Screen 1280x720" || el.Meta(MetaScreenName) != "Screen 1280x720" {
		t.Errorf("names = %q / %q", el.Meta(MetaName), el.Meta(MetaScreenName))
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		id   string
		want int
		ok   bool
	}{
		{"el-0", 0, true},
		{"el-42", 42, true},
		{"el-", 0, false},
		{"el--1", 0, false},
		{"box-1", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseID(tt.id)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseID(%q) = %d, %v, want %d, %v", tt.id, got, ok, tt.want, tt.ok)
		}
	}
}
