package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	llpsi "github.com/itmo/llpsi-net"
)

// ErrInvalidState is returned by Restore for a state that does not describe
// a challenge the game could have created.
var ErrInvalidState = errors.New("invalid challenge state")

// WordRef names a catalog word.
type WordRef struct {
	Type  llpsi.WordType `json:"type" validate:"required"`
	Lemma string         `json:"lemma" validate:"required"`
}

func refOf(w llpsi.Word) WordRef {
	return WordRef{Type: w.Type(), Lemma: w.Lemma()}
}

// DeclensionState is the serializable form of a DeclensionChallenge.
type DeclensionState struct {
	ID        string    `json:"id"`
	Indicator WordRef   `json:"indicator" validate:"required"`
	Casus     string    `json:"casus" validate:"required"`
	Numerus   string    `json:"numerus" validate:"required"`
	Genus     string    `json:"genus" validate:"required"`
	Words     []WordRef `json:"words" validate:"required,min=1,dive"`
}

// State returns the serializable form of ch.
func (ch *DeclensionChallenge) State() DeclensionState {
	s := DeclensionState{
		ID:        ch.ID.String(),
		Indicator: refOf(ch.Indicator),
		Casus:     ch.Casus.Abbrev(),
		Numerus:   ch.Numerus.Abbrev(),
		Genus:     ch.Genus.Code(),
	}
	for _, w := range ch.Words {
		s.Words = append(s.Words, refOf(w))
	}
	return s
}

// Restore rebuilds a challenge from its state. The words must be
// declinable, the indicator must fit the case, and every word must have a
// form for the slot.
func (g *DeclensionGame) Restore(s DeclensionState) (*DeclensionChallenge, error) {
	ch, err := g.restore(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	return ch, nil
}

func (g *DeclensionGame) restore(s DeclensionState) (*DeclensionChallenge, error) {
	c, err := llpsi.ParseCasus(s.Casus)
	if err != nil {
		return nil, err
	}
	n, err := llpsi.ParseNumerus(s.Numerus)
	if err != nil {
		return nil, err
	}
	gen, err := llpsi.ParseGenus(s.Genus)
	if err != nil {
		return nil, err
	}
	ch := &DeclensionChallenge{Casus: c, Numerus: n, Genus: gen}
	if ch.ID, err = parseID(s.ID); err != nil {
		return nil, err
	}
	if ch.Indicator, err = lookup(g.db, s.Indicator); err != nil {
		return nil, err
	}
	switch ind := ch.Indicator.(type) {
	case *llpsi.Preposition:
		if !ind.Governs(c) {
			return nil, fmt.Errorf("%s does not govern the %s", ind.Lemma(), c)
		}
	case *llpsi.Interjection:
		if c != llpsi.Vocative {
			return nil, fmt.Errorf("%s only cues the vocative", ind.Lemma())
		}
	}
	if len(s.Words) == 0 {
		return nil, errors.New("no words to decline")
	}
	for _, ref := range s.Words {
		w, err := lookup(g.db, ref)
		if err != nil {
			return nil, err
		}
		switch w.(type) {
		case *llpsi.Noun, *llpsi.Adjective, *llpsi.Pronoun:
		default:
			return nil, fmt.Errorf("%s %s cannot be declined", w.Type(), w.Lemma())
		}
		ch.Words = append(ch.Words, w)
	}
	if _, err := ch.Answer(); err != nil {
		return nil, err
	}
	return ch, nil
}

// FlashCardState is the serializable form of a FlashCardChallenge.
type FlashCardState struct {
	ID      string `json:"id"`
	Noun    string `json:"noun" validate:"required"`
	Casus   string `json:"casus" validate:"required"`
	Numerus string `json:"numerus" validate:"required"`
}

// State returns the serializable form of ch.
func (ch *FlashCardChallenge) State() FlashCardState {
	return FlashCardState{
		ID:      ch.ID.String(),
		Noun:    ch.Noun.Lemma(),
		Casus:   ch.Casus.Abbrev(),
		Numerus: ch.Numerus.Abbrev(),
	}
}

// Restore rebuilds a flash card from its state.
func (g *FlashCardGame) Restore(s FlashCardState) (*FlashCardChallenge, error) {
	ch, err := g.restore(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	return ch, nil
}

func (g *FlashCardGame) restore(s FlashCardState) (*FlashCardChallenge, error) {
	noun, err := g.db.Noun(s.Noun)
	if err != nil {
		return nil, err
	}
	c, err := llpsi.ParseCasus(s.Casus)
	if err != nil {
		return nil, err
	}
	n, err := llpsi.ParseNumerus(s.Numerus)
	if err != nil {
		return nil, err
	}
	ch, err := newFlashCard(noun, c, n)
	if err != nil {
		return nil, err
	}
	if ch.ID, err = parseID(s.ID); err != nil {
		return nil, err
	}
	return ch, nil
}

func parseID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("challenge id: %w", err)
	}
	return id, nil
}

func lookup(db *llpsi.WordDB, ref WordRef) (llpsi.Word, error) {
	switch ref.Type {
	case llpsi.TypeNoun:
		return db.Noun(ref.Lemma)
	case llpsi.TypeAdjective:
		return db.Adjective(ref.Lemma)
	case llpsi.TypePronoun:
		return db.Pronoun(ref.Lemma)
	case llpsi.TypePreposition:
		return db.Preposition(ref.Lemma)
	case llpsi.TypeInterjection:
		return db.Interjection(ref.Lemma)
	case llpsi.TypeInterrogative:
		return db.Interrogative(ref.Lemma)
	}
	return nil, fmt.Errorf("challenge word %s has unsupported type %q", ref.Lemma, ref.Type)
}
