package geom

import "math"

// Axis selects the direction a geometric operation works along.
type Axis int

const (
	// Horizontal works on x: left, horizontal center, right.
	Horizontal Axis = iota
	// Vertical works on y: top, vertical center, bottom.
	Vertical
)

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseAxis accepts "h", "horizontal", "v" or "vertical".
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "h", "horizontal", "x":
		return Horizontal, true
	case "v", "vertical", "y":
		return Vertical, true
	}
	return Horizontal, false
}

// Point is a position in either screen or canvas space.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p with both coordinates multiplied by f.
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.Left + r.Width/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Top + r.Height/2 }

// Lead returns the leading edge along axis (left or top).
func (r Rect) Lead(axis Axis) float64 {
	if axis == Vertical {
		return r.Top
	}
	return r.Left
}

// Size returns the extent along axis (width or height).
func (r Rect) Size(axis Axis) float64 {
	if axis == Vertical {
		return r.Height
	}
	return r.Width
}

// Center returns the center along axis.
func (r Rect) Center(axis Axis) float64 {
	return r.Lead(axis) + r.Size(axis)/2
}

// Lines returns the three reference lines along axis in the order
// leading edge, center, trailing edge.
func (r Rect) Lines(axis Axis) [3]float64 {
	lead, size := r.Lead(axis), r.Size(axis)
	return [3]float64{lead, lead + size/2, lead + size}
}

// Moved returns r with its leading edge along axis set to pos.
func (r Rect) Moved(axis Axis, pos float64) Rect {
	if axis == Vertical {
		r.Top = pos
	} else {
		r.Left = pos
	}
	return r
}

// Intersects reports whether r and o overlap. Rectangles that only touch
// along an edge count as overlapping.
func (r Rect) Intersects(o Rect) bool {
	return !(r.Right() < o.Left || r.Left > o.Right() || r.Bottom() < o.Top || r.Top > o.Bottom())
}

// Contains reports whether o lies completely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.Left >= r.Left && o.Top >= r.Top && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Expand grows r by d on every side (shrinks it for negative d).
func (r Rect) Expand(d float64) Rect {
	return Rect{Left: r.Left - d, Top: r.Top - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// FromPoints returns the rectangle spanned by two corners in any order.
func FromPoints(a, b Point) Rect {
	left, right := math.Min(a.X, b.X), math.Max(a.X, b.X)
	top, bottom := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

// Union returns the smallest rectangle containing every rect.
// It returns the zero Rect and false when rects is empty.
func Union(rects ...Rect) (Rect, bool) {
	if len(rects) == 0 {
		return Rect{}, false
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, r := range rects {
		minX = math.Min(minX, r.Left)
		minY = math.Min(minY, r.Top)
		maxX = math.Max(maxX, r.Right())
		maxY = math.Max(maxY, r.Bottom())
	}
	return Rect{Left: minX, Top: minY, Width: maxX - minX, Height: maxY - minY}, true
}
