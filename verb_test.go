package llpsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itmo/llpsi-net/internal/laverb"
)

func conjugate(t *testing.T, db *WordDB, lemma string) *VerbConjugation {
	t.Helper()
	v, err := db.Verb(lemma)
	require.NoError(t, err)
	c, err := v.Conjugate()
	require.NoError(t, err, "Conjugate(%s)", lemma)
	return c
}

func TestTitleParts(t *testing.T) {
	db := openDB(t)
	tests := []struct {
		lemma string
		want  []string
	}{
		{"amāre", []string{"amō", "amāre", "amāvī", "amātum"}},
		{"habēre", []string{"habeō", "habēre", "habuī", "habitum"}},
		{"dūcere", []string{"dūcō", "dūcere", "dūxī", "ductum"}},
		{"audīre", []string{"audiō", "audīre", "audīvī", "audītum"}},
		{"hortārī", []string{"hortor", "hortārī", "hortātus sum"}},
		{"audēre", []string{"audeō", "audēre", "ausus sum"}},
		{"esse", []string{"sum", "esse", "fuī", "no supine stem"}},
		{"īre", []string{"eō", "īre", "iī", "itum"}},
	}
	for _, tt := range tests {
		c := conjugate(t, db, tt.lemma)
		assert.Equal(t, tt.want, c.TitleParts, tt.lemma)
	}
}

func TestConjugate(t *testing.T) {
	db := openDB(t)

	c := conjugate(t, db, "amāre")
	assert.Equal(t, NotDeponent, c.Deponent)
	assert.Equal(t, laverb.First, c.Conjugation)
	assert.Equal(t, "amat", c.Active.Indicative[Present].S3)
	assert.Equal(t, "amāre", c.Active.Indicative[Present].Infinitive)
	assert.Equal(t, "amābant", c.Active.Indicative[Imperfect].P3)
	assert.Equal(t, "amātur", c.Passive.Indicative[Present].S3)
	assert.Equal(t, "amātum", c.Supine.Accusative)

	c = conjugate(t, db, "loquī")
	assert.Equal(t, Deponent, c.Deponent)
	assert.Equal(t, "loquitur", c.Passive.Indicative[Present].S3)
	assert.NotContains(t, c.Active.Indicative, Present)

	c = conjugate(t, db, "audēre")
	assert.Equal(t, SemiDeponent, c.Deponent)
	assert.Equal(t, "semi-deponent", c.Deponent.String())

	c = conjugate(t, db, "necesse esse")
	assert.Equal(t, "necesse erit", c.Active.Indicative[Future].S3)

	c = conjugate(t, db, "posse")
	assert.Equal(t, "potest", c.Active.Indicative[Present].S3)
}

func TestVerbStemChapter(t *testing.T) {
	db := openDB(t)
	v, err := db.Verb("habēre")
	require.NoError(t, err)
	assert.Equal(t, 5, v.StemChapter())
	assert.Equal(t, "{{la-conj|2|habeō|habu|habit}}", v.Template())
}

func TestBadTemplate(t *testing.T) {
	_, err := NewVerb(&Entry{WordType: TypeVerb, Latin: "amāre", Conjugation: "amō"})
	assert.ErrorIs(t, err, ErrDataIntegrity)

	v, err := NewVerb(&Entry{WordType: TypeVerb, Latin: "ferre", Conjugation: "{{la-conj|irreg|ferō}}"})
	require.NoError(t, err)
	_, err = v.Conjugate()
	assert.ErrorIs(t, err, ErrDataIntegrity)
}
