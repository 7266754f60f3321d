// Package persist saves and restores a canvas as a single blob.
//
// The [Adapter] translates between a [canvas.Store] and the blob schema
//
//	{
//	  "elements": [
//	    {"id", "tag", "className", "style", "innerHTML", "dataset", "isLocked"}, ...
//	  ],
//	  "counter": n
//	}
//
// where "style" carries the geometry as CSS-like strings ("left": "50px",
// "zIndex": "3") alongside any opaque style pairs, and "dataset" carries
// element metadata including its type. Elements are stored in insertion
// order. Encoding is deterministic, so saving a freshly loaded blob
// reproduces it byte for byte.
//
// Storage is pluggable through [Backend]. The package ships file, memory,
// null, SQLite, Redis and MongoDB backends, and [ScopedBackend] for key
// namespacing.
//
// Storage and decoding failures never reach the caller of [Adapter.Load]
// or [Adapter.Save]: they are logged and treated as "no saved state" or
// "not saved". The editor keeps working on a fresh or unsaved canvas.
package persist
