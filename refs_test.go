package pluralkit

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShortID(t *testing.T) {
	t.Parallel()

	t.Run("accepts five lowercase letters", func(t *testing.T) {
		id, err := ParseShortID("ptckn")
		require.NoError(t, err)
		assert.Equal(t, "ptckn", id.String())
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		for _, input := range []string{"", "ptck", "ptcknn"} {
			_, err := ParseShortID(input)
			assert.ErrorIs(t, err, ErrShortIDLength, "input %q", input)
		}
	})

	t.Run("rejects characters outside a-z", func(t *testing.T) {
		for _, input := range []string{"Ptckn", "ptck1", "ptck-", "ptck!"} {
			_, err := ParseShortID(input)
			assert.ErrorIs(t, err, ErrShortIDCharacters, "input %q", input)
		}
	})

	t.Run("length is checked before the character set", func(t *testing.T) {
		// Wrong length and invalid characters: length wins.
		_, err := ParseShortID("!!!!!!")
		assert.ErrorIs(t, err, ErrShortIDLength)
	})
}

func TestShortIDUnchecked(t *testing.T) {
	t.Parallel()

	id := ShortIDUnchecked("PTCKN")
	assert.Equal(t, "PTCKN", id.String())
}

func TestShortIDJSON(t *testing.T) {
	t.Parallel()

	t.Run("round-trips", func(t *testing.T) {
		var id ShortID
		require.NoError(t, json.Unmarshal([]byte(`"ptckn"`), &id))
		assert.Equal(t, "ptckn", id.String())

		data, err := json.Marshal(id)
		require.NoError(t, err)
		assert.Equal(t, `"ptckn"`, string(data))
	})

	t.Run("decode rejects invalid ids", func(t *testing.T) {
		var id ShortID
		assert.ErrorIs(t, json.Unmarshal([]byte(`"Ptckn"`), &id), ErrShortIDCharacters)
		assert.ErrorIs(t, json.Unmarshal([]byte(`"ptck"`), &id), ErrShortIDLength)
	})
}

func TestRef(t *testing.T) {
	t.Parallel()

	t.Run("renders a short id", func(t *testing.T) {
		id, err := ParseShortID("ptckn")
		require.NoError(t, err)
		assert.Equal(t, "ptckn", RefFromShortID(id).String())
	})

	t.Run("renders a UUID", func(t *testing.T) {
		u := uuid.MustParse("30523e4f-dd68-4b91-8ee0-59c7598db16c")
		assert.Equal(t, "30523e4f-dd68-4b91-8ee0-59c7598db16c", RefFromUUID(u).String())
	})

	t.Run("parses only the short id form", func(t *testing.T) {
		ref, err := ParseRef("ptckn")
		require.NoError(t, err)
		assert.Equal(t, "ptckn", ref.String())

		_, err = ParseRef("30523e4f-dd68-4b91-8ee0-59c7598db16c")
		assert.ErrorIs(t, err, ErrShortIDLength)
	})
}

func TestSystemRef(t *testing.T) {
	t.Parallel()

	t.Run("renders every variant", func(t *testing.T) {
		id, err := ParseShortID("rwqjp")
		require.NoError(t, err)
		u := uuid.MustParse("deb31677-c36c-41db-bef5-5d1e8e2f3ad7")

		assert.Equal(t, "rwqjp", SystemRefFromShortID(id).String())
		assert.Equal(t, "deb31677-c36c-41db-bef5-5d1e8e2f3ad7", SystemRefFromUUID(u).String())
		assert.Equal(t, "521031433972744193", SystemRefFromAccount(521031433972744193).String())
		assert.Equal(t, "@me", SystemRefCurrent().String())
	})

	t.Run("parses only the short id form", func(t *testing.T) {
		ref, err := ParseSystemRef("rwqjp")
		require.NoError(t, err)
		assert.Equal(t, "rwqjp", ref.String())
	})

	t.Run("no textual input parses to the current system", func(t *testing.T) {
		_, err := ParseSystemRef("@me")
		assert.ErrorIs(t, err, ErrShortIDLength)

		_, err = ParseSystemRef("@meee")
		assert.ErrorIs(t, err, ErrShortIDCharacters)
	})
}

// FuzzParseShortID checks that parsing arbitrary input never panics and
// that accepted values round-trip through their canonical form.
func FuzzParseShortID(f *testing.F) {
	f.Add("ptckn")
	f.Add("Ptckn")
	f.Add("")
	f.Add("@me")
	f.Add("!!!!!!")
	f.Add(string([]byte{0x00, 0x01, 0x02, 0x03, 0x04}))

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseShortID(input)
		if err != nil {
			return
		}
		roundTrip, err := ParseShortID(id.String())
		if err != nil {
			t.Fatalf("accepted id %q failed round-trip: %v", id.String(), err)
		}
		if roundTrip != id {
			t.Fatalf("round-trip changed id: %q != %q", roundTrip.String(), id.String())
		}
	})
}
