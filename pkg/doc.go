// Package pkg provides the core libraries of the designer canvas editor.
//
// # Overview
//
// A canvas is a flat collection of absolutely positioned elements (boxes,
// titles, text, buttons, images and screen frames) that the user places,
// drags, resizes, aligns, groups and restacks. The pkg directory is
// organized into three areas:
//
//  1. [canvas] and [geom] - The element store, selection, viewport and the
//     rectangle math everything else is built on
//  2. [interact], [layout] and [layers] - Gestures (drag with snapping,
//     resize, marquee), alignment and grouping, and layer ordering
//  3. [persist] and [export] - Saving canvases to a storage backend and
//     rendering them as SVG, PNG or JSON
//
// # Architecture
//
// The typical data flow through an edit:
//
//	Storage backend (file, sqlite, redis, mongo)
//	         ↓
//	    [persist] package (decode the saved blob into a store)
//	         ↓
//	    [interact] / [layout] / [layers] (apply one edit)
//	         ↓
//	    [persist] package (encode and save)
//
// # Quick Start
//
// Add two elements and drag one next to the other:
//
//	import (
//	    "github.com/canvasflow/designer/pkg/canvas"
//	    "github.com/canvasflow/designer/pkg/geom"
//	    "github.com/canvasflow/designer/pkg/interact"
//	)
//
//	store := canvas.NewStore()
//	store.Add(canvas.Box, canvas.At(0, 0))
//	box := store.Add(canvas.Box, canvas.At(300, 0))
//
//	e := interact.New(store, canvas.NewViewport())
//	_ = e.BeginDrag(box.ID, geom.Point{}, false)
//	frame, _ := e.Move(geom.Point{X: -97})
//	_, _ = e.End()
//	// frame.Guides holds the snap line at x=200
//
// Save and restore:
//
//	backend, _ := persist.NewFileBackend("")
//	adapter := persist.NewAdapter(backend)
//	adapter.Save(ctx, store)
//	adapter.Restore(ctx, canvas.NewStore())
//
// # Supporting Packages
//
// [errors] - Coded errors (INVALID_REFERENCE, LOCKED, DEGENERATE_SELECTION,
// PERSISTENCE, ...) and input validation.
//
// [observability] - Hook interfaces for gesture and persistence events.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test -tags integration ./pkg/...  # Include redis and mongo tests
//
// [canvas]: https://pkg.go.dev/github.com/canvasflow/designer/pkg/canvas
// [geom]: https://pkg.go.dev/github.com/canvasflow/designer/pkg/geom
// [interact]: https://pkg.go.dev/github.com/canvasflow/designer/pkg/interact
// [layout]: https://pkg.go.dev/github.com/canvasflow/designer/pkg/layout
// [layers]: https://pkg.go.dev/github.com/canvasflow/designer/pkg/layers
// [persist]: https://pkg.go.dev/github.com/canvasflow/designer/pkg/persist
// [export]: https://pkg.go.dev/github.com/canvasflow/designer/pkg/export
// [errors]: https://pkg.go.dev/github.com/canvasflow/designer/pkg/errors
// [observability]: https://pkg.go.dev/github.com/canvasflow/designer/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/canvasflow/designer/pkg/buildinfo
package pkg
