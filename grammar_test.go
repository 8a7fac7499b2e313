package llpsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCasus(t *testing.T) {
	for _, c := range AllCases {
		got, err := ParseCasus(c.Abbrev())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	got, err := ParseCasus("Ablātīvus")
	require.NoError(t, err)
	assert.Equal(t, Ablative, got)
	_, err = ParseCasus("instrumental")
	assert.Error(t, err)
}

func TestParseNumerusAndGenus(t *testing.T) {
	for _, s := range []string{"sg", "Sg", "singular"} {
		n, err := ParseNumerus(s)
		require.NoError(t, err, s)
		assert.Equal(t, Singular, n, s)
	}
	n, err := ParseNumerus("pl")
	require.NoError(t, err)
	assert.Equal(t, Plural, n)

	g, err := ParseGenus("m/f")
	require.NoError(t, err)
	assert.Equal(t, Masculine, g)
	for _, g := range AllGenera {
		got, err := ParseGenus(g.Code())
		require.NoError(t, err)
		assert.Equal(t, g, got)
	}
	_, err = ParseGenus("c")
	assert.Error(t, err)
}

func TestWordTypeIsValid(t *testing.T) {
	for _, wt := range WordTypes {
		assert.True(t, wt.IsValid(), string(wt))
	}
	assert.False(t, WordType("participle").IsValid())
}
