package geom

import "math"

// DefaultSnapThreshold is the canvas distance below which a reference line
// snaps to another element's line.
const DefaultSnapThreshold = 6.0

// Snap is the best alignment match found on one axis during a drag frame.
type Snap struct {
	Axis Axis
	// Line is the coordinate of the other element's reference line; the
	// guide is drawn there.
	Line float64
	// Position is the leading edge the dragged rectangle must take so its
	// matching line sits exactly on Line.
	Position float64
	// Distance is the absolute gap between the two lines before snapping.
	Distance float64
}

// Nearest finds the closest pair of reference lines between candidate and
// every rectangle in others along axis. Only a pair strictly closer than
// threshold qualifies; ties keep the first pair found. The second return
// value is false when nothing qualifies.
func Nearest(candidate Rect, others []Rect, axis Axis, threshold float64) (Snap, bool) {
	best := Snap{Axis: axis, Distance: math.Inf(1)}
	found := false
	own := candidate.Lines(axis)
	lead := candidate.Lead(axis)

	for _, o := range others {
		theirs := o.Lines(axis)
		for _, mine := range own {
			for _, line := range theirs {
				d := math.Abs(mine - line)
				if d < threshold && d < best.Distance {
					best.Distance = d
					best.Line = line
					best.Position = lead - (mine - line)
					found = true
				}
			}
		}
	}
	if !found {
		return Snap{}, false
	}
	return best, true
}

// SnapRect snaps candidate on both axes independently and returns the
// adjusted rectangle together with the snaps that fired (zero, one or two).
func SnapRect(candidate Rect, others []Rect, threshold float64) (Rect, []Snap) {
	var snaps []Snap
	out := candidate
	for _, axis := range []Axis{Horizontal, Vertical} {
		if s, ok := Nearest(candidate, others, axis, threshold); ok {
			out = out.Moved(axis, s.Position)
			snaps = append(snaps, s)
		}
	}
	return out, snaps
}
