package pluralkit

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Color is a 24-bit RGB color. The remote schema carries colors as six
// lowercase hex digits with no leading "#" (example: "ff0000").
type Color struct {
	R, G, B uint8
}

// ParseColor reads exactly six hex digits.
func ParseColor(s string) (Color, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Color{}, err
	}
	if len(raw) != 3 {
		return Color{}, fmt.Errorf("color must be 6 hex digits, got %d", len(s))
	}
	return Color{R: raw[0], G: raw[1], B: raw[2]}, nil
}

// Hex renders the six-digit lowercase form.
func (c Color) Hex() string {
	return hex.EncodeToString([]byte{c.R, c.G, c.B})
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
