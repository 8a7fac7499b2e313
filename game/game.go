// Package game builds declension drills from the word catalog: multi-word
// declension challenges and single-noun flash cards.
package game

import (
	"errors"
	"math/rand/v2"

	llpsi "github.com/itmo/llpsi-net"
)

// ErrNoCandidate is returned when no word satisfies the constraints of a
// challenge, typically because the vocabulary chapter is too low for the
// grammar chapter.
var ErrNoCandidate = errors.New("no candidate word")

// Rand is the random source challenges draw from. *rand.Rand of
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// Options constrain a challenge.
type Options struct {
	// Knowledge is the grammar the player knows.
	Knowledge *llpsi.GrammarKnowledge
	// VocabChapter is the last chapter whose words may appear.
	VocabChapter int
	// Rand defaults to the global source.
	Rand Rand
}

func (o Options) rng() Rand {
	if o.Rand == nil {
		return globalRand{}
	}
	return o.Rand
}

// pick returns a random element of items accepted by keep.
func pick[T any](r Rand, items []T, keep func(T) bool) (T, bool) {
	var candidates []T
	for _, it := range items {
		if keep == nil || keep(it) {
			candidates = append(candidates, it)
		}
	}
	if len(candidates) == 0 {
		var zero T
		return zero, false
	}
	return candidates[r.IntN(len(candidates))], true
}

// nounFilter accepts nouns the player can decline in case c.
func nounFilter(o Options, c llpsi.Casus) func(*llpsi.Noun) bool {
	k := o.Knowledge
	return func(n *llpsi.Noun) bool {
		if n.Chapter() > o.VocabChapter || n.IsGrammaticalTerm() {
			return false
		}
		if !k.KnowsNounDeclension(n.Declension(), n.Genus()) {
			return false
		}
		if !k.KnowsCase(c, n.Genus(), llpsi.Singular) && !k.KnowsCase(c, n.Genus(), llpsi.Plural) {
			return false
		}
		if n.PluraleTantum() && !k.KnowsCase(c, n.Genus(), llpsi.Plural) {
			return false
		}
		return true
	}
}

// randomNoun tries to balance declensions: it draws a known declension
// first and falls back to any candidate.
func randomNoun(db *llpsi.WordDB, o Options, c llpsi.Casus) (*llpsi.Noun, error) {
	r := o.rng()
	filter := nounFilter(o, c)
	if decl, ok := pick(r, o.Knowledge.KnownNounDeclensions(), nil); ok {
		if n, ok := pick(r, db.Nouns(), func(n *llpsi.Noun) bool {
			return n.Declension() == decl && filter(n)
		}); ok {
			return n, nil
		}
	}
	if n, ok := pick(r, db.Nouns(), filter); ok {
		return n, nil
	}
	return nil, ErrNoCandidate
}

// randomNumerus chooses the number of a drill.
func randomNumerus(o Options, c llpsi.Casus, g llpsi.Genus, pluraleTantum bool) llpsi.Numerus {
	k := o.Knowledge
	switch {
	case pluraleTantum:
		return llpsi.Plural
	case !k.KnowsCase(c, g, llpsi.Plural):
		return llpsi.Singular
	case !k.KnowsCase(c, g, llpsi.Singular):
		return llpsi.Plural
	case c == llpsi.Nominative:
		return llpsi.Plural
	case o.rng().Float64() < 0.5:
		return llpsi.Singular
	}
	return llpsi.Plural
}
