// Package interact implements pointer gestures on a canvas as an explicit
// state machine.
//
// An [Engine] is either idle or running exactly one gesture:
//
//	Idle ──BeginDrag──▶ Dragging ──End/Cancel──▶ Idle
//	Idle ──BeginResize─▶ Resizing ──End/Cancel──▶ Idle
//	Idle ──BeginMarquee▶ Marquee  ──End/Cancel──▶ Idle
//
// Pointer positions passed to the engine are in screen space; the engine
// converts them with the [canvas.Viewport]. Every [Engine.Move] writes the
// new geometry to the store immediately so a renderer can project it, and
// [Engine.End] leaves it there. [Engine.Cancel] restores the geometry (or
// selection) captured when the gesture began.
//
// Beginning a gesture while another is active ends the active one first,
// as a pointer-up would.
//
// # Snapping
//
// While a single element is dragged, its six reference lines are compared
// with those of every unselected element. On each axis the closest pair
// strictly within the snap threshold wins; the element is shifted so the
// lines coincide and a [Guide] is reported at that coordinate. Multi-element
// drags never snap.
package interact
