package interact

import (
	"slices"
	"testing"

	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/geom"
)

func TestMarqueeSelectsIntersecting(t *testing.T) {
	s, _, e := setup()
	a := s.Add(canvas.Box, canvas.At(0, 0), canvas.Sized(50, 50)).ID
	b := s.Add(canvas.Box, canvas.At(100, 100), canvas.Sized(50, 50)).ID
	s.Add(canvas.Box, canvas.At(400, 400), canvas.Sized(50, 50))

	if err := e.BeginMarquee(pt(120, 120), false); err != nil {
		t.Fatal(err)
	}
	f, _ := e.Move(pt(40, 40))
	if f.Band != (geom.Rect{Left: 40, Top: 40, Width: 80, Height: 80}) {
		t.Errorf("Band = %+v", f.Band)
	}
	if want := []string{a, b}; !slices.Equal(f.Selected, want) {
		t.Errorf("Selected = %v, want %v", f.Selected, want)
	}

	end, _ := e.End()
	if want := []string{a, b}; !slices.Equal(end.Selected, want) {
		t.Errorf("selection after End = %v, want %v", end.Selected, want)
	}
}

func TestMarqueeAdditive(t *testing.T) {
	s, _, e := setup()
	a := s.Add(canvas.Box, canvas.At(0, 0), canvas.Sized(50, 50)).ID
	far := s.Add(canvas.Box, canvas.At(400, 400), canvas.Sized(50, 50)).ID
	s.Select(far, false)

	_ = e.BeginMarquee(pt(-10, -10), true)
	_, _ = e.Move(pt(10, 10))
	_, _ = e.End()

	if got, want := s.SelectedIDs(), []string{a, far}; !slices.Equal(got, want) {
		t.Errorf("selection = %v, want %v", got, want)
	}
}

func TestMarqueeClickClearsSelection(t *testing.T) {
	s, _, e := setup()
	s.Add(canvas.Box, canvas.At(0, 0), canvas.Sized(50, 50))

	_ = e.BeginMarquee(pt(300, 300), false)
	_, _ = e.End()
	if s.Selection().Len() != 0 {
		t.Errorf("empty-canvas click left %v selected", s.SelectedIDs())
	}
}

func TestMarqueeCancelRestoresSelection(t *testing.T) {
	s, _, e := setup()
	a := s.Add(canvas.Box, canvas.At(0, 0), canvas.Sized(50, 50)).ID
	b := s.Add(canvas.Box, canvas.At(400, 400), canvas.Sized(50, 50)).ID

	_ = e.BeginMarquee(pt(-10, -10), false)
	_, _ = e.Move(pt(10, 10))
	if got := s.SelectedIDs(); !slices.Equal(got, []string{a}) {
		t.Fatalf("live selection = %v", got)
	}
	_ = e.Cancel()
	if got := s.SelectedIDs(); !slices.Equal(got, []string{b}) {
		t.Errorf("selection after Cancel = %v, want [%s]", got, b)
	}
}
