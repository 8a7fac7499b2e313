package game

import (
	"fmt"

	"github.com/google/uuid"

	llpsi "github.com/itmo/llpsi-net"
)

// pronounPool are the pronouns that may precede a drilled phrase.
var pronounPool = []string{"aliquis", "hic", "īdem", "ille", "ipse", "is", "iste", "quīdam"}

// pronounChance is the probability of prepending a pronoun.
const pronounChance = 0.6

// DeclensionChallenge asks for a phrase of pronoun, noun and adjective in
// one case and number, cued by an indicator word.
type DeclensionChallenge struct {
	ID uuid.UUID
	// Indicator cues the case: the interrogative quis, a preposition or
	// the interjection ō.
	Indicator llpsi.Word
	Casus     llpsi.Casus
	Numerus   llpsi.Numerus
	Genus     llpsi.Genus
	// Words are the words to decline, in display order.
	Words []llpsi.Word
}

// DeclensionGame creates declension challenges.
type DeclensionGame struct {
	db       *llpsi.WordDB
	pronouns []*llpsi.Pronoun
	quis     *llpsi.Pronoun
	in       *llpsi.Preposition
	o        *llpsi.Interjection
}

// NewDeclensionGame resolves the fixed words the game needs.
func NewDeclensionGame(db *llpsi.WordDB) (*DeclensionGame, error) {
	g := &DeclensionGame{db: db}
	for _, lemma := range pronounPool {
		p, err := db.Pronoun(lemma)
		if err != nil {
			return nil, err
		}
		g.pronouns = append(g.pronouns, p)
	}
	var err error
	if g.quis, err = db.Pronoun("quis"); err != nil {
		return nil, err
	}
	if g.in, err = db.Preposition("in"); err != nil {
		return nil, err
	}
	if g.o, err = db.Interjection("ō"); err != nil {
		return nil, err
	}
	return g, nil
}

// CreateChallenge draws a new challenge.
func (g *DeclensionGame) CreateChallenge(o Options) (*DeclensionChallenge, error) {
	r := o.rng()
	c, ok := pick(r, o.Knowledge.KnownCases(), nil)
	if !ok {
		return nil, fmt.Errorf("%w: no case known at chapter %d", ErrNoCandidate, o.Knowledge.Chapter())
	}
	return g.createFor(o, c)
}

func (g *DeclensionGame) createFor(o Options, c llpsi.Casus) (*DeclensionChallenge, error) {
	indicator := g.indicator(o, c)

	noun, err := randomNoun(g.db, o, c)
	if err != nil {
		return nil, fmt.Errorf("noun for %s: %w", c, err)
	}
	adj, err := g.randomAdjective(o, c, noun.Genus())
	if err != nil {
		return nil, fmt.Errorf("adjective for %s: %w", c, err)
	}

	ch := &DeclensionChallenge{
		ID:        uuid.New(),
		Indicator: indicator,
		Casus:     c,
		Genus:     noun.Genus(),
		Numerus:   randomNumerus(o, c, noun.Genus(), noun.PluraleTantum() || adj.PluraleTantum()),
		Words:     []llpsi.Word{noun, adj},
	}

	if c != llpsi.Vocative && o.Knowledge.KnowsAnyPronoun() && o.rng().Float64() < pronounChance {
		if p, ok := g.randomPronoun(o, ch); ok {
			ch.Words = append([]llpsi.Word{p}, ch.Words...)
		}
	}
	return ch, nil
}

func (g *DeclensionGame) indicator(o Options, c llpsi.Casus) llpsi.Word {
	k := o.Knowledge
	switch c {
	case llpsi.Accusative:
		if k.AccusativePrepositions {
			if p, ok := g.randomPreposition(o, c); ok {
				return p
			}
		}
	case llpsi.Ablative:
		if k.AblativePrepositions {
			if p, ok := g.randomPreposition(o, c); ok {
				return p
			}
		}
		return g.in
	case llpsi.Vocative:
		return g.o
	}
	return g.quis
}

// randomPreposition picks a preposition governing only c.
func (g *DeclensionGame) randomPreposition(o Options, c llpsi.Casus) (*llpsi.Preposition, bool) {
	return pick(o.rng(), g.db.Prepositions(), func(p *llpsi.Preposition) bool {
		return p.Chapter() <= o.VocabChapter && len(p.Cases()) == 1 && p.Governs(c)
	})
}

func (g *DeclensionGame) adjectiveFilter(o Options, c llpsi.Casus, genus llpsi.Genus) func(*llpsi.Adjective) bool {
	k := o.Knowledge
	return func(a *llpsi.Adjective) bool {
		if a.Chapter() > o.VocabChapter {
			return false
		}
		if !k.KnowsAdjectiveDeclension(a.Declension()) {
			return false
		}
		if a.IsComparative() && !k.Comparative {
			return false
		}
		if a.IsSuperlative() && !k.Superlative {
			return false
		}
		if a.PluraleTantum() && !k.KnowsCase(c, genus, llpsi.Plural) {
			return false
		}
		for _, n := range llpsi.AllNumeri {
			if n == llpsi.Singular && a.PluraleTantum() {
				continue
			}
			if _, ok := a.Decline(genus, c, n); k.KnowsCase(c, genus, n) && !ok {
				return false
			}
		}
		return true
	}
}

func (g *DeclensionGame) randomAdjective(o Options, c llpsi.Casus, genus llpsi.Genus) (*llpsi.Adjective, error) {
	r := o.rng()
	filter := g.adjectiveFilter(o, c, genus)
	decls := []llpsi.AdjectiveDeclension{llpsi.AdjectiveAO, llpsi.AdjectiveThird}
	if decl, ok := pick(r, decls, o.Knowledge.KnowsAdjectiveDeclension); ok {
		if a, ok := pick(r, g.db.Adjectives(), func(a *llpsi.Adjective) bool {
			return a.Declension() == decl && filter(a)
		}); ok {
			return a, nil
		}
	}
	if a, ok := pick(r, g.db.Adjectives(), filter); ok {
		return a, nil
	}
	return nil, ErrNoCandidate
}

func (g *DeclensionGame) randomPronoun(o Options, ch *DeclensionChallenge) (*llpsi.Pronoun, bool) {
	return pick(o.rng(), g.pronouns, func(p *llpsi.Pronoun) bool {
		if p.Chapter() > o.VocabChapter || !o.Knowledge.KnowsPronoun(p.Lemma()) {
			return false
		}
		_, ok := p.Decline(ch.Genus, ch.Casus, ch.Numerus)
		return ok
	})
}

// Answer returns the expected surface forms: the preposition or
// interjection, then each word in order. Interrogatives only cue the case
// and are not part of the answer.
func (g *DeclensionGame) Answer(ch *DeclensionChallenge) ([]string, error) {
	return ch.Answer()
}

// Check reports whether response is a correct answer to ch.
func (g *DeclensionGame) Check(ch *DeclensionChallenge, response string) (bool, error) {
	want, err := ch.Answer()
	if err != nil {
		return false, err
	}
	return matchTokens(want, response), nil
}

// Answer returns the expected surface forms of ch.
func (ch *DeclensionChallenge) Answer() ([]string, error) {
	var out []string
	switch ind := ch.Indicator.(type) {
	case *llpsi.Preposition:
		out = append(out, ind.Lemma())
	case *llpsi.Interjection:
		out = append(out, ind.Decline(ch.Numerus))
	}
	for _, w := range ch.Words {
		var (
			form string
			ok   bool
		)
		switch v := w.(type) {
		case *llpsi.Noun:
			form, ok = v.Decline(ch.Casus, ch.Numerus)
		case llpsi.GenderDecliner:
			form, ok = v.Decline(ch.Genus, ch.Casus, ch.Numerus)
		default:
			return nil, fmt.Errorf("%s %s cannot be declined", w.Type(), w.Lemma())
		}
		if !ok {
			return nil, fmt.Errorf("no %s %s form of %s", ch.Casus.Abbrev(), ch.Numerus.Abbrev(), w.Lemma())
		}
		out = append(out, form)
	}
	return out, nil
}
