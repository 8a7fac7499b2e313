package llpsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnowledgeThresholds(t *testing.T) {
	assert.Empty(t, KnowledgeAt(0).KnownCases())

	k := KnowledgeAt(1)
	assert.Equal(t, []Casus{Nominative, Ablative}, k.KnownCases())
	assert.True(t, k.KnowsCase(Ablative, Neuter, Singular))
	assert.False(t, k.KnowsCase(Ablative, Neuter, Plural))
	assert.ElementsMatch(t, []NounDeclension{DeclensionA, DeclensionO, DeclensionIndeclinable}, k.KnownNounDeclensions())
	assert.True(t, k.KnowsAdjectiveDeclension(AdjectiveAO))
	assert.False(t, k.KnowsAdjectiveDeclension(AdjectiveThird))

	k = KnowledgeAt(3)
	assert.True(t, k.KnowsCase(Accusative, Feminine, Singular))
	assert.False(t, k.KnowsCase(Accusative, Neuter, Singular))
	assert.False(t, k.KnowsCase(Accusative, Masculine, Plural))
	assert.Equal(t, []Genus{Masculine, Feminine}, k.CaseGenera(Accusative))
	assert.Equal(t, []Numerus{Singular}, k.CaseNumeri(Accusative))

	// genders and numbers combine, so neuter plural also opens the
	// masculine plural and the neuter singular
	k = KnowledgeAt(5)
	assert.True(t, k.KnowsCase(Accusative, Neuter, Plural))
	assert.True(t, k.KnowsCase(Accusative, Masculine, Plural))
	assert.True(t, k.KnowsCase(Accusative, Neuter, Singular))
	assert.True(t, k.AblativePrepositions)
	assert.False(t, k.AccusativePrepositions)

	k = KnowledgeAt(9)
	assert.True(t, k.KnowsNounDeclension(DeclensionThird, Feminine))
	assert.False(t, k.KnowsNounDeclension(DeclensionThird, Neuter))
	assert.True(t, KnowledgeAt(11).KnowsNounDeclension(DeclensionThird, Neuter))

	k = KnowledgeAt(12)
	assert.True(t, k.Comparative)
	assert.False(t, k.Superlative)
	assert.False(t, k.KnowsNounDeclension(DeclensionU, Neuter))
	assert.True(t, KnowledgeAt(21).KnowsNounDeclension(DeclensionU, Neuter))
	assert.Equal(t, AllCases, KnowledgeAt(21).KnownCases())
}

func TestKnowledgeIsMonotonic(t *testing.T) {
	for ch := 0; ch < 60; ch++ {
		prev, next := KnowledgeAt(ch), KnowledgeAt(ch+1)
		for _, c := range AllCases {
			for _, g := range AllGenera {
				for _, n := range AllNumeri {
					if prev.KnowsCase(c, g, n) {
						assert.True(t, next.KnowsCase(c, g, n), "ch %d: %s %s %s", ch+1, c, g, n)
					}
				}
			}
		}
		for _, d := range AllNounDeclensions {
			for _, g := range AllGenera {
				if prev.KnowsNounDeclension(d, g) {
					assert.True(t, next.KnowsNounDeclension(d, g), "ch %d: %s %s", ch+1, d, g)
				}
			}
		}
		for _, d := range []AdjectiveDeclension{AdjectiveAO, AdjectiveThird} {
			if prev.KnowsAdjectiveDeclension(d) {
				assert.True(t, next.KnowsAdjectiveDeclension(d), "ch %d: %s", ch+1, d)
			}
		}
		if prev.KnowsAnyPronoun() {
			assert.True(t, next.KnowsAnyPronoun(), "ch %d", ch+1)
		}
	}
}

func TestKnowsPronoun(t *testing.T) {
	k := KnowledgeAt(7)
	assert.False(t, k.KnowsPronoun("hic"))
	assert.False(t, k.KnowsPronoun("ille"))
	assert.False(t, k.KnowsPronoun("is"))
	assert.True(t, k.KnowsPronoun("quīdam"))
	assert.False(t, k.KnowsAnyPronoun())

	k = KnowledgeAt(8)
	assert.True(t, k.KnowsPronoun("hic"))
	assert.True(t, k.KnowsAnyPronoun())
	assert.Equal(t, 8, k.Chapter())
}
