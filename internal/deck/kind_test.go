package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	testCases := []struct {
		name     string
		expected Kind
	}{
		{name: "", expected: KindStandard},
		{name: "standard", expected: KindStandard},
		{name: " Jokers ", expected: KindJokers},
		{name: "MULTIPLE", expected: KindMultiple},
	}

	for _, tc := range testCases {
		kind, err := ParseKind(tc.name)
		require.NoError(t, err, "kind %q", tc.name)
		assert.Equal(t, tc.expected, kind)
	}

	_, err := ParseKind("tarot")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestNewByKind(t *testing.T) {
	d, err := New(KindStandard, 4)
	require.NoError(t, err)
	assert.Equal(t, 52, d.Len(), "decks is ignored for standard")

	d, err = New(KindJokers, 0)
	require.NoError(t, err)
	assert.Equal(t, 54, d.Len())

	d, err = New(KindMultiple, 3)
	require.NoError(t, err)
	assert.Equal(t, 156, d.Len())

	_, err = New(Kind("pinochle"), 1)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
