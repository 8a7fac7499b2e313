package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	llpsi "github.com/itmo/llpsi-net"
)

func TestFlashCard(t *testing.T) {
	db := openDB(t)
	g := NewFlashCardGame(db)
	for seed := uint64(1); seed <= 30; seed++ {
		o := options(9, 12, seed)
		ch, err := g.CreateChallenge(o, llpsi.Genitive)
		require.NoError(t, err)
		assert.Equal(t, llpsi.Genitive, ch.Casus)
		assert.LessOrEqual(t, ch.Noun.Chapter(), 12)
		assert.True(t, o.Knowledge.KnowsCase(ch.Casus, ch.Noun.Genus(), ch.Numerus))

		want, ok := ch.Noun.Decline(ch.Casus, ch.Numerus)
		require.True(t, ok)
		assert.Equal(t, want, ch.Answer)
		assert.True(t, g.Check(ch, " "+ch.Answer+" "))
	}
}

func TestFlashCardIsLiteral(t *testing.T) {
	db := openDB(t)
	g := NewFlashCardGame(db)
	ch, err := g.Restore(FlashCardState{Noun: "puella", Casus: "gen", Numerus: "Pl"})
	require.NoError(t, err)
	assert.Equal(t, "puellārum", ch.Answer)
	assert.True(t, g.Check(ch, "Puellārum"))
	assert.False(t, g.Check(ch, "puellarum"))
	assert.False(t, g.Check(ch, "puellae"))

	_, err = g.Restore(FlashCardState{Noun: "līberī", Casus: "gen", Numerus: "Sg"})
	assert.Error(t, err)
}
