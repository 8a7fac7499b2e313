package llpsi

import (
	"errors"
	"fmt"
)

// ErrNotDeclinable is returned by DeclensionTable for words without cases.
var ErrNotDeclinable = errors.New("word is not declinable")

// DeclensionTable computes the full declension of a noun, adjective or
// pronoun. Rows follow AllSlots: the singular cases, then the plural ones.
func DeclensionTable(w Word) (*InflectionTable, error) {
	table := &InflectionTable{Word: w}
	var decline func(g Genus, c Casus, n Numerus) (string, bool)

	switch v := w.(type) {
	case *Noun:
		table.Genera = []Genus{v.Genus()}
		decline = func(_ Genus, c Casus, n Numerus) (string, bool) { return v.Decline(c, n) }
	case GenderDecliner:
		table.Genera = AllGenera
		decline = v.Decline
	default:
		return nil, fmt.Errorf("%s %s: %w", w.Type(), w.Lemma(), ErrNotDeclinable)
	}

	for _, s := range AllSlots {
		row := InflectionRow{Casus: s.Casus, Numerus: s.Numerus, Forms: make([]string, len(table.Genera))}
		for i, g := range table.Genera {
			if form, ok := decline(g, s.Casus, s.Numerus); ok {
				row.Forms[i] = form
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// unique returns a deduplicated slice preserving order.
func unique(ss []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
