package llpsi

import "fmt"

// Pronoun is a pronoun with a fixed paradigm for each gender.
type Pronoun struct {
	baseWord
	genera [3]*Declension
}

// NewPronoun looks the lemma up in the pronoun paradigms.
func NewPronoun(e *Entry) (*Pronoun, error) {
	forms, ok := pronounTable[e.Latin]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPronoun, e.Latin)
	}
	p := &Pronoun{baseWord: newBaseWord(TypePronoun, e.Latin, e)}
	for _, g := range AllGenera {
		nom, ok := forms[g].Lookup(Nominative, Singular)
		if !ok {
			nom = e.Latin
		}
		d, err := NewDeclension(StemIrregular, DeclensionInput{
			Genus:      g,
			Nominative: nom,
			Overrides:  forms[g],
		})
		if err != nil {
			return nil, err
		}
		p.genera[g] = d
	}
	return p, nil
}

// Decline returns the form for gender g, case c and number n.
func (p *Pronoun) Decline(g Genus, c Casus, n Numerus) (string, bool) {
	if !g.IsValid() {
		return "", false
	}
	return p.genera[g].Decline(c, n)
}

// KnownPronouns lists every lemma NewPronoun accepts.
func KnownPronouns() []string {
	out := make([]string, 0, len(pronounTable))
	for lemma := range pronounTable {
		out = append(out, lemma)
	}
	MacronSort(out)
	return out
}
