package llpsi

import (
	"strings"
)

// Lemmatizer maps word forms back to catalog words. It indexes every form
// the engine can generate, so it only knows what the catalog can decline
// or conjugate.
type Lemmatizer struct {
	db *WordDB

	// forms maps StripMacrons(form) → analyses. Case is kept so proper
	// nouns stay distinct from common words.
	forms map[string][]Analysis
}

// NewLemmatizer indexes all forms of db.
func NewLemmatizer(db *WordDB) (*Lemmatizer, error) {
	l := &Lemmatizer{
		db:    db,
		forms: make(map[string][]Analysis),
	}
	for _, n := range db.nouns {
		for _, s := range AllSlots {
			if form, ok := n.Decline(s.Casus, s.Numerus); ok {
				l.addDeclined(n, form, s, n.Genus())
			}
		}
	}
	for _, a := range db.adjectives {
		l.addGendered(a)
	}
	for _, p := range db.pronouns {
		l.addGendered(p)
	}
	for _, v := range db.verbs {
		p, err := v.Paradigm()
		if err != nil {
			return nil, err
		}
		for slot, forms := range p.Forms {
			for _, form := range forms {
				// periphrastic forms are two tokens in a text
				if strings.Contains(form, " ") {
					continue
				}
				l.add(Analysis{Word: v, Form: form, Slot: slot})
			}
		}
	}
	for _, w := range db.adverbs {
		l.add(Analysis{Word: w, Form: w.Lemma()})
	}
	for _, w := range db.conjunctions {
		l.add(Analysis{Word: w, Form: w.Lemma()})
	}
	for _, w := range db.interrogatives {
		l.add(Analysis{Word: w, Form: w.Lemma()})
	}
	for _, w := range db.prepositions {
		l.add(Analysis{Word: w, Form: w.Lemma()})
	}
	for _, w := range db.numerals {
		for _, form := range unique([]string{w.Lemma(), w.NominativePlural(), w.GenitivePlural()}) {
			if form != "" {
				l.add(Analysis{Word: w, Form: form})
			}
		}
	}
	for _, w := range db.interjections {
		for _, form := range unique([]string{w.Decline(Singular), w.Decline(Plural)}) {
			l.add(Analysis{Word: w, Form: form})
		}
	}
	return l, nil
}

func (l *Lemmatizer) addGendered(w GenderDecliner) {
	for _, g := range AllGenera {
		for _, s := range AllSlots {
			if form, ok := w.Decline(g, s.Casus, s.Numerus); ok {
				l.addDeclined(w, form, s, g)
			}
		}
	}
}

func (l *Lemmatizer) addDeclined(w Word, form string, s Slot, g Genus) {
	l.add(Analysis{
		Word:     w,
		Form:     form,
		Declined: true,
		Casus:    s.Casus,
		Numerus:  s.Numerus,
		Genus:    g,
	})
}

func (l *Lemmatizer) add(a Analysis) {
	key := StripMacrons(a.Form)
	l.forms[key] = append(l.forms[key], a)
}

// Size returns the number of distinct indexed forms.
func (l *Lemmatizer) Size() int { return len(l.forms) }

// LemmatizeWord lemmatizes a single Latin word form.
// If sentenceStart is true the word may be capitalized because it
// is the first word of a sentence (not necessarily a proper noun).
func (l *Lemmatizer) LemmatizeWord(form string, sentenceStart bool) []Analysis {
	return l.lemmatize(form, sentenceStart, true)
}

// LemmatizeText splits text into tokens and lemmatizes each word.
func (l *Lemmatizer) LemmatizeText(text string) []LemmatizationResult {
	return l.lemmatizeText(text)
}
