package pluralkit

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/google/uuid"
)

// Sentinel errors for short id parsing. Length is checked before the
// character set; a value that violates both reports ErrShortIDLength.
var (
	// ErrShortIDLength indicates the input was not exactly 5 characters.
	ErrShortIDLength = errors.New("short id must be exactly 5 characters")

	// ErrShortIDCharacters indicates a character outside a-z.
	ErrShortIDCharacters = errors.New("short id must contain only lowercase letters a-z")
)

// ShortID is the five-lowercase-letter identifier the service assigns to
// systems, members, and groups (example: "ptckn"). It is meant for
// user-facing interaction; the service may reassign it, so it must not
// be treated as a primary key. Use the resource's UUID for storage.
type ShortID struct {
	value string
}

// ParseShortID validates s as a short id. The length check runs first,
// then the character-set check; that order is fixed.
func ParseShortID(s string) (ShortID, error) {
	if len(s) != 5 {
		return ShortID{}, ErrShortIDLength
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return ShortID{}, ErrShortIDCharacters
		}
	}
	return ShortID{value: s}, nil
}

// ShortIDUnchecked wraps s without validation, for ids the server itself
// returned. See [BoundedStringUnchecked] for the trust boundary this
// implies.
func ShortIDUnchecked(s string) ShortID { return ShortID{value: s} }

func (id ShortID) String() string { return id.value }

func (id ShortID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

func (id *ShortID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseShortID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type refKind uint8

const (
	refShortID refKind = iota + 1
	refUUID
)

// Ref identifies a member or group, by short id or by UUID. Systems
// have additional reference forms; see [SystemRef].
type Ref struct {
	kind  refKind
	short ShortID
	uuid  uuid.UUID
}

// RefFromShortID references a member or group by its short id.
func RefFromShortID(id ShortID) Ref { return Ref{kind: refShortID, short: id} }

// RefFromUUID references a member or group by its stable UUID.
func RefFromUUID(u uuid.UUID) Ref { return Ref{kind: refUUID, uuid: u} }

// ParseRef reads a bare string as a short id reference. UUID references
// are built with [RefFromUUID] after parsing through the uuid package.
func ParseRef(s string) (Ref, error) {
	id, err := ParseShortID(s)
	if err != nil {
		return Ref{}, err
	}
	return RefFromShortID(id), nil
}

// String renders the canonical request form of the reference. The zero
// Ref renders as the empty string; constructors never produce it.
func (r Ref) String() string {
	switch r.kind {
	case refShortID:
		return r.short.String()
	case refUUID:
		return r.uuid.String()
	default:
		return ""
	}
}

// systemRefCurrentToken is the fixed token for the authenticated
// caller's own system. No textual input parses to it.
const systemRefCurrentToken = "@me"

type systemRefKind uint8

const (
	systemRefShortID systemRefKind = iota + 1
	systemRefUUID
	systemRefAccount
	systemRefSelf
)

// SystemRef identifies a system: by short id, by stable UUID, by the id
// of a linked Discord account, or as the system of the authenticated
// caller.
type SystemRef struct {
	kind    systemRefKind
	short   ShortID
	uuid    uuid.UUID
	account uint64
}

// SystemRefFromShortID references a system by its short id.
func SystemRefFromShortID(id ShortID) SystemRef {
	return SystemRef{kind: systemRefShortID, short: id}
}

// SystemRefFromUUID references a system by its stable UUID.
func SystemRefFromUUID(u uuid.UUID) SystemRef {
	return SystemRef{kind: systemRefUUID, uuid: u}
}

// SystemRefFromAccount references a system by the snowflake id of a
// Discord account linked to it (example: 521031433972744193).
func SystemRefFromAccount(id uint64) SystemRef {
	return SystemRef{kind: systemRefAccount, account: id}
}

// SystemRefCurrent references the system of the authenticated caller.
// It renders as "@me" and is only ever constructed directly; parsing
// never produces it.
func SystemRefCurrent() SystemRef {
	return SystemRef{kind: systemRefSelf}
}

// ParseSystemRef reads a bare string as a short id reference. UUID and
// account references are built from their typed values, which carry no
// parsing ambiguity.
func ParseSystemRef(s string) (SystemRef, error) {
	id, err := ParseShortID(s)
	if err != nil {
		return SystemRef{}, err
	}
	return SystemRefFromShortID(id), nil
}

// String renders the canonical request form of the reference: the short
// id, the UUID, the decimal account id, or "@me".
func (r SystemRef) String() string {
	switch r.kind {
	case systemRefShortID:
		return r.short.String()
	case systemRefUUID:
		return r.uuid.String()
	case systemRefAccount:
		return strconv.FormatUint(r.account, 10)
	case systemRefSelf:
		return systemRefCurrentToken
	default:
		return ""
	}
}
