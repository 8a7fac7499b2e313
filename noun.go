package llpsi

import (
	"fmt"
	"strings"
)

// Noun is a noun with its declension.
type Noun struct {
	baseWord
	genitive        string
	genus           Genus
	grammaticalTerm bool
	declension      *Declension
}

// NewNoun builds a noun from a dataset entry, picking the stem class from
// the genitive construction.
func NewNoun(e *Entry) (*Noun, error) {
	genus, err := ParseGenus(e.Genus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataIntegrity, err)
	}
	ovr, err := ParseOverrides(e.Overrides)
	if err != nil {
		return nil, err
	}
	class, err := nounStemClass(e)
	if err != nil {
		return nil, err
	}
	decl, err := NewDeclension(class, DeclensionInput{
		Genus:         genus,
		Nominative:    e.LatinNominative,
		Construction:  e.LatinGenitive,
		PluraleTantum: e.PluraleTantum,
		Overrides:     ovr,
	})
	if err != nil {
		return nil, err
	}
	return &Noun{
		baseWord:        newBaseWord(TypeNoun, e.LatinNominative, e),
		genitive:        e.LatinGenitive,
		genus:           genus,
		grammaticalTerm: e.GrammaticalTerm,
		declension:      decl,
	}, nil
}

func nounStemClass(e *Entry) (StemClass, error) {
	gen := e.LatinGenitive
	third := StemConsonant
	switch e.IStemType {
	case "pure":
		third = StemIPure
	case "mixed":
		third = StemIMixed
	}

	if e.PluraleTantum {
		switch {
		case strings.HasSuffix(gen, "ārum"):
			return StemA, nil
		case strings.HasSuffix(gen, "ōrum"):
			return StemO, nil
		case strings.HasSuffix(gen, "uum"):
			return StemU, nil
		case strings.HasSuffix(gen, "um"):
			return third, nil
		}
	} else {
		switch {
		case gen == "":
			return StemIndeclinable, nil
		case strings.HasSuffix(gen, "ae"):
			return StemA, nil
		case strings.HasSuffix(e.LatinNominative, "ēs") &&
			(strings.HasSuffix(gen, "ēī") || strings.HasSuffix(gen, "eī")):
			return StemE, nil
		case strings.HasSuffix(gen, "is"), strings.HasSuffix(gen, "īs"):
			return third, nil
		case strings.HasSuffix(gen, "ūs"), strings.HasSuffix(gen, "ū"):
			return StemU, nil
		case strings.HasSuffix(gen, "ī"):
			return StemO, nil
		}
	}
	return 0, fmt.Errorf("%w: %s, %s", ErrUnknownDeclension, e.LatinNominative, gen)
}

// Decline returns the form for (c, n).
func (n *Noun) Decline(c Casus, num Numerus) (string, bool) {
	return n.declension.Decline(c, num)
}

// Genus returns the noun's gender.
func (n *Noun) Genus() Genus { return n.genus }

// Genitive returns the genitive construction as given in the dictionary.
func (n *Noun) Genitive() string { return n.genitive }

// PluraleTantum reports whether the noun has plural forms only.
func (n *Noun) PluraleTantum() bool { return n.declension.PluraleTantum() }

// IsGrammaticalTerm reports whether the noun is one of the book's
// grammatical terms (cāsus, genetīvus, ...), which drills skip.
func (n *Noun) IsGrammaticalTerm() bool { return n.grammaticalTerm }

// StemClass returns the stem class of the noun's declension.
func (n *Noun) StemClass() StemClass { return n.declension.Class() }

// Declension returns the declension the noun is taught under.
func (n *Noun) Declension() NounDeclension { return n.declension.Class().NounDeclension() }

// Stem returns the derived stem.
func (n *Noun) Stem() string { return n.declension.Stem() }
