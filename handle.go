package handle

import (
	"fmt"
	"reflect"

	"go.uber.org/zap/zapcore"
)

// noCompare makes the enclosing struct non-comparable without adding
// runtime data.
type noCompare [0]func()

// Handle is a cheap, copyable identifier for an object stored elsewhere,
// for example an entry in an asset table. The marker type M carries no
// data; it exists so handles to different resource categories are
// distinct types, and mixing them is a compile error rather than a bug.
//
// Equality and hashing depend only on the key. Handles themselves are
// not comparable with ==; == would compare counter identity and disagree
// with Equal. Key maps by Key() instead.
type Handle[M any] struct {
	key   Key
	count *RefCount
	_     noCompare
}

// New returns a tracked handle for anything Keyable. The handle starts
// with a fresh counter at live-strength 1.
func New[M any, K Keyable](k K) Handle[M] {
	return Handle[M]{key: MakeKey(k), count: NewRefCount()}
}

// Static returns an untracked handle with a KindStatic key. It carries
// no counter no matter how often it is cloned, behaving as an eternal
// identity; use it for handles baked into program data.
func Static[M any](label string) Handle[M] {
	return Handle[M]{key: StaticKey(label)}
}

// Key returns the identity value. Consumers key their tables with it:
// a map[Key]V lookup agrees with Equal.
func (h Handle[M]) Key() Key {
	return h.key
}

// Clone returns a copy sharing the counter. For tracked handles the
// live-strength grows by one; untracked handles stay untracked.
//
// Plain assignment also copies a handle but does not touch the counter.
// Code that relies on live-strength must copy via Clone and pair every
// Clone (and the New itself) with a Release.
func (h Handle[M]) Clone() Handle[M] {
	if h.count != nil {
		h.count.Acquire()
	}
	return Handle[M]{key: h.key, count: h.count}
}

// Release drops this copy's stake in the counter and reports whether it
// was the last one. Untracked handles have no stake; Release is a no-op
// returning false.
func (h Handle[M]) Release() bool {
	if h.count == nil {
		return false
	}
	return h.count.Release()
}

// Equal reports whether both handles refer to the same identity. The
// counter never participates: two independently created handles with
// equal keys are equal.
func (h Handle[M]) Equal(other Handle[M]) bool {
	return h.key == other.key
}

// Hash returns the key's hash; equal handles hash identically.
func (h Handle[M]) Hash() uint64 {
	return h.key.Hash()
}

// Refs returns the current live-strength. ok is false for untracked
// handles, which have no counter to read.
func (h Handle[M]) Refs() (refs int64, ok bool) {
	if h.count == nil {
		return 0, false
	}
	return h.count.Refs(), true
}

// Counter returns the shared counter cell, or nil for untracked handles.
// An external owner may hold it, or Acquire a stake of its own; the
// counter is jointly owned by everyone holding it.
func (h Handle[M]) Counter() *RefCount {
	return h.count
}

func markerName[M any]() string {
	return reflect.TypeFor[M]().String()
}

// String renders the marker type, the key and the live-strength, e.g.
// Handle[game.Texture](string:"grass", refs=3). Untracked handles render
// as untracked.
func (h Handle[M]) String() string {
	if h.count == nil {
		return fmt.Sprintf("Handle[%s](%s, untracked)", markerName[M](), h.key)
	}
	return fmt.Sprintf("Handle[%s](%s, refs=%d)", markerName[M](), h.key, h.count.Refs())
}

// MarshalLogObject implements zapcore.ObjectMarshaler so handles render
// as structured fields under zap.Object, for debugging and leak tracing.
func (h Handle[M]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("marker", markerName[M]())
	if err := enc.AddObject("key", h.key); err != nil {
		return err
	}
	if h.count != nil {
		enc.AddInt64("refs", h.count.Refs())
	} else {
		enc.AddBool("tracked", false)
	}
	return nil
}
