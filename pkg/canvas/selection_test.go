package canvas

import (
	"slices"
	"testing"
)

func newStoreWith(n int) (*Store, []string) {
	s := NewStore()
	ids := make([]string, n)
	for i := range ids {
		ids[i] = s.Add(Box).ID
	}
	s.ClearSelection()
	return s, ids
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		initial  []int
		click    int
		additive bool
		want     []int
		changed  bool
	}{
		{"plain click on empty", nil, 0, false, []int{0}, true},
		{"plain click collapses", []int{0, 1}, 2, false, []int{2}, true},
		{"plain click on sole selection", []int{1}, 1, false, []int{1}, false},
		{"plain click on member of group", []int{0, 1}, 1, false, []int{1}, true},
		{"additive adds", []int{0}, 1, true, []int{0, 1}, true},
		{"additive toggles off", []int{0, 1}, 1, true, []int{0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ids := newStoreWith(3)
			var initial []string
			for _, i := range tt.initial {
				initial = append(initial, ids[i])
			}
			s.SelectMany(initial)

			changed := s.Select(ids[tt.click], tt.additive)
			if changed != tt.changed {
				t.Errorf("Select() changed = %v, want %v", changed, tt.changed)
			}
			var want []string
			for _, i := range tt.want {
				want = append(want, ids[i])
			}
			if got := s.SelectedIDs(); !slices.Equal(got, want) {
				t.Errorf("SelectedIDs() = %v, want %v", got, want)
			}
		})
	}
}

func TestSelectUnknownIgnored(t *testing.T) {
	s, ids := newStoreWith(2)
	s.Select(ids[0], false)
	if s.Select("el-77", false) {
		t.Error("Select(unknown) reported a change")
	}
	if got := s.SelectedIDs(); !slices.Equal(got, []string{ids[0]}) {
		t.Errorf("SelectedIDs() = %v", got)
	}
}

func TestSelectManyDropsDeadIDs(t *testing.T) {
	s, ids := newStoreWith(2)
	s.SelectMany([]string{ids[1], "el-9", ids[0]})
	if got := s.SelectedIDs(); !slices.Equal(got, ids) {
		t.Errorf("SelectedIDs() = %v, want %v", got, ids)
	}
}

func TestSelectionSole(t *testing.T) {
	s, ids := newStoreWith(2)
	if _, ok := s.Selection().Sole(); ok {
		t.Error("empty selection has no sole element")
	}
	s.Select(ids[1], false)
	if id, ok := s.Selection().Sole(); !ok || id != ids[1] {
		t.Errorf("Sole() = %q, %v", id, ok)
	}
	s.Select(ids[0], true)
	if _, ok := s.Selection().Sole(); ok {
		t.Error("two selected elements have no sole element")
	}
}

func TestSelectionCopyIsIndependent(t *testing.T) {
	s, ids := newStoreWith(2)
	s.Select(ids[0], false)
	snap := s.Selection()
	s.Select(ids[1], true)
	if snap.Len() != 1 {
		t.Errorf("copied selection changed to %d ids", snap.Len())
	}
}
