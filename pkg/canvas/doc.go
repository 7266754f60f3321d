// Package canvas holds the authoritative state of a design canvas.
//
// A [Store] owns an ordered collection of [Element] records, the id counter,
// and the current [Selection]. Rendering is a projection of the Store and
// never the other way around: geometry lives in [Geometry] as plain numbers,
// and every component (interaction, layout, layering, persistence) reads
// and writes it through the Store.
//
// # Ids
//
// Element ids have the form "el-<n>" where n comes from a counter that only
// grows during the lifetime of a Store. Removing elements never frees ids;
// only [Store.Clear] resets the counter.
//
// # Selection
//
// The selection is a set of ids that always resolves to live elements. Any
// mutation that deletes an element prunes it from the selection before
// returning.
//
// # Concurrency
//
// Store and [Viewport] are not safe for concurrent use. A canvas is a
// single-writer structure driven by one event loop.
package canvas
