package llpsi

import (
	"fmt"
	"strings"
)

// Adverb is an indeclinable adverb.
type Adverb struct {
	baseWord
}

// Conjunction is a conjunction.
type Conjunction struct {
	baseWord
}

// Interrogative is an interrogative particle or adverb (ubi, cūr, -ne).
type Interrogative struct {
	baseWord
}

// Interjection has a form for addressing one person and one for several.
type Interjection struct {
	baseWord
	singular string
	plural   string
}

// Decline returns the interjection form for n.
func (i *Interjection) Decline(n Numerus) string {
	if n == Plural && i.plural != "" {
		return i.plural
	}
	return i.singular
}

// Numeral is a cardinal or ordinal numeral.
type Numeral struct {
	baseWord
	nominativePlural string
	genitivePlural   string
}

// NominativePlural returns the nominative plural, if the dataset gives one.
func (n *Numeral) NominativePlural() string { return n.nominativePlural }

// GenitivePlural returns the genitive plural, if the dataset gives one.
func (n *Numeral) GenitivePlural() string { return n.genitivePlural }

// Preposition governs one or two cases.
type Preposition struct {
	baseWord
	cases []Casus
}

// Cases returns the cases the preposition governs.
func (p *Preposition) Cases() []Casus {
	return append([]Casus(nil), p.cases...)
}

// Governs reports whether p takes c.
func (p *Preposition) Governs(c Casus) bool {
	for _, pc := range p.cases {
		if pc == c {
			return true
		}
	}
	return false
}

// NewAdverb builds an adverb.
func NewAdverb(e *Entry) (*Adverb, error) {
	return &Adverb{baseWord: newBaseWord(TypeAdverb, e.Latin, e)}, nil
}

// NewConjunction builds a conjunction.
func NewConjunction(e *Entry) (*Conjunction, error) {
	return &Conjunction{baseWord: newBaseWord(TypeConjunction, e.Latin, e)}, nil
}

// NewInterrogative builds an interrogative.
func NewInterrogative(e *Entry) (*Interrogative, error) {
	return &Interrogative{baseWord: newBaseWord(TypeInterrogative, e.Latin, e)}, nil
}

// NewInterjection builds an interjection.
func NewInterjection(e *Entry) (*Interjection, error) {
	return &Interjection{
		baseWord: newBaseWord(TypeInterjection, e.LatinSingular, e),
		singular: e.LatinSingular,
		plural:   e.LatinPlural,
	}, nil
}

// NewNumeral builds a numeral.
func NewNumeral(e *Entry) (*Numeral, error) {
	return &Numeral{
		baseWord:         newBaseWord(TypeNumeral, e.Latin, e),
		nominativePlural: e.NominativePlural,
		genitivePlural:   e.GenitivePlural,
	}, nil
}

// NewPreposition builds a preposition; the case field lists the governed
// cases separated by "/" or ",".
func NewPreposition(e *Entry) (*Preposition, error) {
	p := &Preposition{baseWord: newBaseWord(TypePreposition, e.Latin, e)}
	for _, part := range strings.FieldsFunc(e.Case, func(r rune) bool { return r == '/' || r == ',' }) {
		c, err := ParseCasus(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataIntegrity, err)
		}
		p.cases = append(p.cases, c)
	}
	if len(p.cases) == 0 {
		return nil, fmt.Errorf("%w: preposition %s governs no case", ErrDataIntegrity, e.Latin)
	}
	return p, nil
}
