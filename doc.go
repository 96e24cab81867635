// Package pluralkit defines validated value types and partial-update
// models for the PluralKit API's resource schemas.
//
// The package guarantees that values are correct before any request is
// made: length-limited text and URL fields are represented by bounded
// types that cannot be constructed over their limit, and resource
// identifiers are represented by types that cannot hold a malformed id.
//
// # Bounded Values
//
// The remote service enforces a per-field maximum length on most text
// fields. [BoundedString] and [BoundedURL] carry that limit in the type
// system via a [Bound] type parameter:
//
//	name, err := pluralkit.ParseBoundedString[pluralkit.Max100]("Alice")
//
// Construction fails with [*LengthError] when the input exceeds the
// bound. Values the server itself returned are implicitly trusted and
// can skip re-validation through [BoundedStringUnchecked].
//
// # Identifiers
//
// Systems, members, and groups carry two identifiers: a five-letter
// [ShortID] for user-facing interaction, and a [uuid.UUID] that is the
// stable identity for storage. [Ref] and [SystemRef] are the closed sets
// of forms a request may use to address a resource; [SystemRefCurrent]
// addresses the system of the authenticated caller.
//
// # Patches
//
// Partial updates distinguish a field that is not part of the patch
// from a field explicitly set, including set to null to clear it on the
// server. [Patchable] carries that distinction; its zero value means
// "leave as-is" and is omitted from the serialized patch entirely:
//
//	patch := pluralkit.MemberPatch{
//	    Name:        pluralkit.Patch(name),
//	    DisplayName: pluralkit.Patch[*pluralkit.BoundedString[pluralkit.Max100]](nil), // clear
//	}
//
// All types in this package are immutable after construction and safe
// for concurrent reads; the package performs no I/O.
package pluralkit
