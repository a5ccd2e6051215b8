package handle

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"

	"go.uber.org/zap/zapcore"
)

// Kind discriminates the three key variants.
type Kind uint8

const (
	// KindStatic is a textual label fixed for the program's lifetime.
	KindStatic Kind = iota
	// KindString is a textual label constructed at runtime.
	KindString
	// KindIndex is a dense numeric identifier.
	KindIndex
)

var kindNames = [...]string{
	KindStatic: "static",
	KindString: "string",
	KindIndex:  "index",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Key is the identity value a Handle carries. It is comparable, so it can
// be used directly as a Go map key; == is exactly variant-and-payload
// equality. A static label and a runtime label with identical text are
// distinct identities: the variant participates in equality and hashing.
//
// The zero Key equals StaticKey("").
type Key struct {
	kind  Kind
	label string
	index uint64
}

// StaticKey returns a KindStatic key. Intended for identifiers known at
// compile time and alive for the whole program, typically in var blocks.
func StaticKey(label string) Key {
	return Key{kind: KindStatic, label: label}
}

// StringKey returns a KindString key for a runtime-constructed label.
func StringKey(label string) Key {
	return Key{kind: KindString, label: label}
}

// IndexKey returns a KindIndex key.
func IndexKey(index uint64) Key {
	return Key{kind: KindIndex, index: index}
}

// Keyable enumerates the types MakeKey converts into a Key: textual
// values become KindString keys, unsigned integers become KindIndex keys,
// and a Key passes through unchanged.
type Keyable interface {
	string | []byte | uint | uint8 | uint16 | uint32 | uint64 | Key
}

// MakeKey converts k into a Key. Byte slices are copied, so later
// mutation of the slice does not affect the key.
func MakeKey[K Keyable](k K) Key {
	switch v := any(k).(type) {
	case string:
		return StringKey(v)
	case []byte:
		return StringKey(string(v))
	case uint:
		return IndexKey(uint64(v))
	case uint8:
		return IndexKey(uint64(v))
	case uint16:
		return IndexKey(uint64(v))
	case uint32:
		return IndexKey(uint64(v))
	case uint64:
		return IndexKey(v)
	case Key:
		return v
	}
	panic("handle: unreachable")
}

// Kind returns the key's variant.
func (k Key) Kind() Kind {
	return k.kind
}

// Label returns the textual payload. It is empty for index keys.
func (k Key) Label() string {
	return k.label
}

// Index returns the numeric payload. It is zero for label keys.
func (k Key) Index() uint64 {
	return k.index
}

// hashSeed is shared by every Key so hashes agree within one process.
// Values are not stable across processes.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the key, consistent with ==: equal keys
// always hash identically, unequal keys rarely collide. The variant is
// hashed before the payload, so a static and a runtime label with the
// same text hash independently.
func (k Key) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(k.kind))
	switch k.kind {
	case KindStatic, KindString:
		h.WriteString(k.label)
	case KindIndex:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], k.index)
		h.Write(b[:])
	}
	return h.Sum64()
}

// String renders the key with its variant tag, e.g. static:"missing",
// string:"grass", index:42.
func (k Key) String() string {
	if k.kind == KindIndex {
		return fmt.Sprintf("index:%d", k.index)
	}
	return fmt.Sprintf("%s:%q", k.kind, k.label)
}

// MarshalLogObject implements zapcore.ObjectMarshaler so keys render as
// structured fields under zap.Object.
func (k Key) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("kind", k.kind.String())
	if k.kind == KindIndex {
		enc.AddUint64("index", k.index)
	} else {
		enc.AddString("label", k.label)
	}
	return nil
}
