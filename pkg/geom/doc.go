// Package geom provides the pure geometry used by the canvas engine.
//
// Everything here is stateless and works in canvas units. A [Rect] is an
// axis-aligned box with its origin at the top-left corner, the same
// convention the stored element geometry uses. [Axis] names the direction
// an operation works along:
//
//   - [Horizontal] operations move elements left or right (they compare
//     vertical reference lines: left edge, center, right edge)
//   - [Vertical] operations move elements up or down (they compare
//     horizontal reference lines: top edge, center, bottom edge)
//
// Snap candidate search lives in snap.go. [Nearest] scans every pair of
// reference lines and keeps the closest match per axis.
package geom
