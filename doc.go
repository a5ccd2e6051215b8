// Package handle provides typed, comparable, hashable handles for
// objects stored elsewhere.
//
// A Handle is a small copyable identifier (a Key plus an optional
// shared ownership counter) that callers pass around instead of the
// resource itself. An external store (an asset table, a resource pool)
// keys its entries by the handle's Key and may watch the counter to
// learn when no live copies of a handle remain. This package supplies
// only the identity and lifetime-tracking primitive; it performs no
// lookup, no eviction and no I/O.
//
// # Keys
//
// A Key is one of three variants:
//
//	StaticKey("missing")  - label fixed for the program's lifetime
//	StringKey("grass")    - label constructed at runtime
//	IndexKey(42)          - dense numeric identifier
//
// The variant is part of the identity: StaticKey("x") and StringKey("x")
// are different keys even though the text matches. The static space is
// for identifiers baked into the program, the string space for ones made
// at runtime, and the two never collide. Key is comparable, so it works
// directly as a Go map key, and Hash() serves consumers that build their
// own hashed structures.
//
// # Tracked and Untracked Handles
//
// New creates a tracked handle whose counter starts at live-strength 1.
// Clone shares the counter and raises the strength; Release lowers it
// and reports when the last copy is gone:
//
//	h := handle.New[Texture]("grass")
//	h2 := h.Clone()          // strength 2
//	_ = h2.Release()         // strength 1
//	last := h.Release()      // strength 0, last == true
//
// Static creates an untracked handle: no counter, regardless of how
// often it is cloned. Use it for eternal identifiers in var blocks:
//
//	var MissingTexture = handle.Static[Texture]("missing")
//
// Go copies handles on plain assignment without touching the counter.
// Code that relies on live-strength must copy via Clone and pair every
// Clone (and the New itself) with a Release.
//
// # Markers
//
// The type parameter on Handle carries no data. It tags the handle with
// a resource category so that Handle[Texture] and Handle[Mesh] are
// different types and cannot be mixed; the mistake is rejected by the
// compiler, not at runtime:
//
//	type Texture struct{}
//	type Mesh struct{}
//
//	th := handle.New[Texture]("grass")
//	mh := handle.New[Mesh]("grass")
//	th.Equal(mh) // does not compile
//
// # Equality and Maps
//
// Equal and Hash depend only on the key; the counter and the marker
// never influence the value. Handles themselves are not comparable with
// == (it would compare counter identity and disagree with Equal), so
// stores key their maps by Key:
//
//	table := map[handle.Key]*Texture{}
//	table[h.Key()] = tex
//
// # Logging
//
// Key and Handle implement zapcore.ObjectMarshaler and fmt.Stringer, so
// they render structurally in zap logs for debugging and leak tracing:
//
//	logger.Info("texture retained", zap.Object("handle", h))
//
// # Thread Safety
//
// The counter is atomic: Clone and Release may be called from any
// goroutine without locks. Everything else is immutable after
// construction.
package handle
