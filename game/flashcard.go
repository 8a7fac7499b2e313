package game

import (
	"fmt"

	"github.com/google/uuid"

	llpsi "github.com/itmo/llpsi-net"
)

// FlashCardChallenge asks for one noun in a given case and number.
type FlashCardChallenge struct {
	ID      uuid.UUID
	Noun    *llpsi.Noun
	Casus   llpsi.Casus
	Numerus llpsi.Numerus
	// Answer is the expected form.
	Answer string
}

// FlashCardGame creates single-noun drills.
type FlashCardGame struct {
	db *llpsi.WordDB
}

func NewFlashCardGame(db *llpsi.WordDB) *FlashCardGame {
	return &FlashCardGame{db: db}
}

// CreateChallenge picks a noun the player can decline in case c.
func (g *FlashCardGame) CreateChallenge(o Options, c llpsi.Casus) (*FlashCardChallenge, error) {
	noun, err := randomNoun(g.db, o, c)
	if err != nil {
		return nil, fmt.Errorf("flash card for %s: %w", c, err)
	}
	return newFlashCard(noun, c, randomNumerus(o, c, noun.Genus(), noun.PluraleTantum()))
}

func newFlashCard(noun *llpsi.Noun, c llpsi.Casus, n llpsi.Numerus) (*FlashCardChallenge, error) {
	answer, ok := noun.Decline(c, n)
	if !ok {
		return nil, fmt.Errorf("no %s %s form of %s", c.Abbrev(), n.Abbrev(), noun.Lemma())
	}
	return &FlashCardChallenge{
		ID:      uuid.New(),
		Noun:    noun,
		Casus:   c,
		Numerus: n,
		Answer:  answer,
	}, nil
}

// Check compares response with the expected form literally, ignoring
// surrounding blanks and letter case.
func (g *FlashCardGame) Check(ch *FlashCardChallenge, response string) bool {
	return matchLiteral(ch.Answer, response)
}
