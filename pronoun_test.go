package llpsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPronounForms(t *testing.T) {
	db := openDB(t)
	tests := []struct {
		lemma string
		g     Genus
		c     Casus
		n     Numerus
		want  string
	}{
		{"hic", Feminine, Accusative, Singular, "hanc"},
		{"hic", Neuter, Nominative, Plural, "haec"},
		{"is", Neuter, Genitive, Singular, "eius"},
		{"is", Masculine, Dative, Plural, "iīs"},
		{"ille", Masculine, Genitive, Singular, "illīus"},
		{"īdem", Masculine, Accusative, Singular, "eundem"},
		{"ego", Feminine, Nominative, Plural, "nōs"},
		{"nōs", Masculine, Dative, Plural, "nōbīs"},
		{"vōs", Feminine, Vocative, Plural, "vōs"},
		{"tū", Masculine, Dative, Singular, "tibi"},
		{"quis", Neuter, Nominative, Singular, "quid"},
		{"quīdam", Feminine, Accusative, Singular, "quamdam"},
		{"quisque", Masculine, Ablative, Singular, "quōque"},
	}
	for _, tt := range tests {
		p, err := db.Pronoun(tt.lemma)
		require.NoError(t, err)
		got, ok := p.Decline(tt.g, tt.c, tt.n)
		assert.True(t, ok, "%s %s %s %s", tt.lemma, tt.g.Code(), tt.c.Abbrev(), tt.n.Abbrev())
		assert.Equal(t, tt.want, got, "%s %s %s %s", tt.lemma, tt.g.Code(), tt.c.Abbrev(), tt.n.Abbrev())
	}
}

func TestPronounGaps(t *testing.T) {
	db := openDB(t)

	se, err := db.Pronoun("sē")
	require.NoError(t, err)
	_, ok := se.Decline(Masculine, Nominative, Singular)
	assert.False(t, ok)

	nemo, err := db.Pronoun("nēmō")
	require.NoError(t, err)
	_, ok = nemo.Decline(Masculine, Genitive, Plural)
	assert.False(t, ok)

	for _, lemma := range []string{"nōs", "vōs"} {
		p, err := db.Pronoun(lemma)
		require.NoError(t, err)
		for _, c := range AllCases {
			_, ok := p.Decline(Masculine, c, Singular)
			assert.False(t, ok, "%s %s Sg", lemma, c.Abbrev())
		}
	}

	ego, err := db.Pronoun("ego")
	require.NoError(t, err)
	_, ok = ego.Decline(Masculine, Vocative, Singular)
	assert.False(t, ok)
}

func TestUnknownPronoun(t *testing.T) {
	_, err := NewPronoun(&Entry{WordType: TypePronoun, Latin: "quidquid"})
	assert.ErrorIs(t, err, ErrUnknownPronoun)
	assert.ErrorIs(t, err, ErrDataIntegrity)

	known := KnownPronouns()
	assert.Len(t, known, 21)
	assert.Contains(t, known, "quis")
	assert.IsNonDecreasing(t, normalizeAll(known))
}

func normalizeAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = StripMacrons(s)
	}
	return out
}
