package pluralkit

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Bound carries a field's maximum byte length in the type system, so
// that fields with different limits are different types. Implementations
// are zero-size marker types; the ones the remote schema defines are
// declared below, and callers may declare their own for other limits.
type Bound interface {
	Limit() int
}

// Bounds used by the remote schema.
type (
	// Max100 bounds names, display names, and pronouns.
	Max100 struct{}
	// Max256 bounds avatar, webhook avatar, and banner URLs.
	Max256 struct{}
	// Max1000 bounds descriptions.
	Max1000 struct{}
)

func (Max100) Limit() int  { return 100 }
func (Max256) Limit() int  { return 256 }
func (Max1000) Limit() int { return 1000 }

// LengthError reports an input that exceeds a field's declared bound.
type LengthError struct {
	Value string // the offending input
	Limit int    // the bound that was exceeded
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%q should not exceed length %d", e.Value, e.Limit)
}

// BoundedString is an immutable string whose byte length never exceeds
// the bound B when built through [ParseBoundedString]. It mirrors the
// remote service's per-field length limits so a request that would
// obviously be rejected never gets sent. The zero value is the empty
// string; instances compare with ==.
type BoundedString[B Bound] struct {
	value string
}

// ParseBoundedString returns s as a bounded string, or a [*LengthError]
// carrying s and the limit when s is longer than B allows.
func ParseBoundedString[B Bound](s string) (BoundedString[B], error) {
	var b B
	if len(s) > b.Limit() {
		return BoundedString[B]{}, &LengthError{Value: s, Limit: b.Limit()}
	}
	return BoundedString[B]{value: s}, nil
}

// BoundedStringUnchecked wraps s without checking the bound. It exists
// for values whose length has already been established by other means,
// typically values returned by the server itself. An out-of-bound value
// built this way is rejected later by the remote API, not by this type;
// that trust boundary is the caller's responsibility.
func BoundedStringUnchecked[B Bound](s string) BoundedString[B] {
	return BoundedString[B]{value: s}
}

func (b BoundedString[B]) String() string { return b.value }

func (b BoundedString[B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.value)
}

// UnmarshalJSON routes through [ParseBoundedString]: a too-long wire
// value fails the field's decode rather than being truncated.
func (b *BoundedString[B]) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseBoundedString[B](s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// BoundedURL is a parsed, structurally valid URL whose textual form
// never exceeds the bound B when built through [ParseBoundedURL].
type BoundedURL[B Bound] struct {
	u *url.URL
}

// ParseBoundedURL checks the length bound against the raw text first,
// then parses the URL. The two failure modes are distinguishable: a
// [*LengthError] for the bound, or the parse error from [url.Parse].
func ParseBoundedURL[B Bound](s string) (BoundedURL[B], error) {
	var b B
	if len(s) > b.Limit() {
		return BoundedURL[B]{}, &LengthError{Value: s, Limit: b.Limit()}
	}
	u, err := url.Parse(s)
	if err != nil {
		return BoundedURL[B]{}, err
	}
	return BoundedURL[B]{u: u}, nil
}

// BoundedURLUnchecked wraps an already-parsed URL without checking the
// bound, for URLs the server itself returned. See
// [BoundedStringUnchecked] for the trust boundary this implies.
func BoundedURLUnchecked[B Bound](u *url.URL) BoundedURL[B] {
	return BoundedURL[B]{u: u}
}

// URL exposes the parsed URL for read-only use. The zero value returns
// nil.
func (b BoundedURL[B]) URL() *url.URL { return b.u }

func (b BoundedURL[B]) String() string {
	if b.u == nil {
		return ""
	}
	return b.u.String()
}

func (b BoundedURL[B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *BoundedURL[B]) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseBoundedURL[B](s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
