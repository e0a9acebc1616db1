package value

import (
	"crypto/sha256"
	"encoding/binary"
)

// StructuralHash produces a stable 64-bit digest of a Value's readable
// representation. The persistent Map and Set use it to bucket entries so
// that Get/assoc/disj do not have to fall back to a full Eql scan of every
// entry — the same content-addressing idiom used elsewhere to turn a
// stable input into a content hash (crypto/sha256 over a
// canonical byte encoding), repurposed here to key the collection layer
// instead of a build artifact.
//
// Two Eql values always hash identically; two non-Eql values may still
// collide, so callers must still confirm a candidate with Eql before
// treating it as a match.
func StructuralHash(v Value) uint64 {
	sum := sha256.Sum256([]byte(Repr(v)))

	return binary.BigEndian.Uint64(sum[:8])
}
