package pluralkit

import "encoding/json"

// Patchable marks a field of a partial update as either unmodified (the
// zero value) or explicitly set. It is deliberately not a pointer or
// option type: "not part of this patch" and "explicitly set to empty"
// are different instructions to the server, and every call site has to
// handle both.
type Patchable[T any] struct {
	value    T
	modified bool
}

// Patch marks v as an explicit modification. For optional fields T is a
// pointer type, and a patched nil clears the field on the server.
func Patch[T any](v T) Patchable[T] {
	return Patchable[T]{value: v, modified: true}
}

// IsZero reports whether the field is unmodified. encoding/json consults
// it for every field tagged omitzero, which keeps unmodified fields out
// of a serialized patch entirely.
func (p Patchable[T]) IsZero() bool { return !p.modified }

// Value returns the pending modification and whether one is set.
func (p Patchable[T]) Value() (T, bool) { return p.value, p.modified }

// MarshalJSON encodes the modification using T's own encoding; a patched
// nil pointer encodes as an explicit null. Marshaling an unmodified
// field panics: omitzero suppression makes that call unreachable, so
// reaching it means a patch struct field is missing its omitzero tag.
func (p Patchable[T]) MarshalJSON() ([]byte, error) {
	if !p.modified {
		panic("pluralkit: marshal of unmodified patch field")
	}
	return json.Marshal(p.value)
}
