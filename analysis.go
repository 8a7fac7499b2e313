package llpsi

import "fmt"

// Analysis holds a single reading of a word form.
type Analysis struct {
	// Word is the catalog entry the form belongs to.
	Word Word
	// Form is the generated form with macrons, enclitic excluded.
	Form string
	// Declined is set when Casus, Numerus and Genus are meaningful.
	Declined bool
	Casus    Casus
	Numerus  Numerus
	Genus    Genus
	// Slot is the paradigm key of a verb form, e.g. "3s_pres_actv_indc".
	Slot string
	// Enclitic is the stripped -que, -ne or -ve, if any.
	Enclitic string
}

// Description is a short human-readable label, e.g. "gen Sg f".
func (a Analysis) Description() string {
	switch {
	case a.Declined && a.Word.Type() == TypeNoun:
		return fmt.Sprintf("%s %s", a.Casus.Abbrev(), a.Numerus.Abbrev())
	case a.Declined:
		return fmt.Sprintf("%s %s %s", a.Casus.Abbrev(), a.Numerus.Abbrev(), a.Genus.Code())
	case a.Slot != "":
		return a.Slot
	}
	return string(a.Word.Type())
}

// LemmatizationResult holds the lemmatization result for a single token.
type LemmatizationResult struct {
	// Token is the original word form from the text.
	Token string
	// SentenceStart is set for the first word of a sentence.
	SentenceStart bool
	Analyses      []Analysis
}

// InflectionRow is one case and number of an inflection table. Forms has
// one entry per column of the table; "" marks a gap.
type InflectionRow struct {
	Casus   Casus
	Numerus Numerus
	Forms   []string
}

// InflectionTable holds the full declension of a word.
type InflectionTable struct {
	Word Word
	// Genera are the columns: the noun's gender, or all three.
	Genera []Genus
	Rows   []InflectionRow
}

// Form returns the form of gender g, case c and number n.
func (t *InflectionTable) Form(g Genus, c Casus, n Numerus) (string, bool) {
	col := -1
	for i, tg := range t.Genera {
		if tg == g {
			col = i
		}
	}
	if col < 0 {
		return "", false
	}
	for _, r := range t.Rows {
		if r.Casus == c && r.Numerus == n {
			return r.Forms[col], r.Forms[col] != ""
		}
	}
	return "", false
}
