package llpsi

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dataDir = "data"

func openDB(t *testing.T) *WordDB {
	t.Helper()
	db, err := Open(context.Background(), dataDir)
	require.NoError(t, err, "Open(%q)", dataDir)
	return db
}

func writeDataset(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestOpen(t *testing.T) {
	db := openDB(t)
	assert.NotEmpty(t, db.Nouns())
	assert.NotEmpty(t, db.Adjectives())
	assert.NotEmpty(t, db.Verbs())
	assert.Len(t, db.Pronouns(), len(KnownPronouns()))
	assert.Equal(t, 21, db.MaxChapter())
	assert.Empty(t, db.Rejected())
	t.Logf("loaded %d nouns, %d adjectives, %d verbs", len(db.Nouns()), len(db.Adjectives()), len(db.Verbs()))
}

func TestWordsAreSorted(t *testing.T) {
	db := openDB(t)
	nouns := db.Nouns()
	for i := 1; i < len(nouns); i++ {
		a, b := NormalizeKey(nouns[i-1].Lemma()), NormalizeKey(nouns[i].Lemma())
		assert.LessOrEqual(t, a, b, "%s before %s", nouns[i-1].Lemma(), nouns[i].Lemma())
	}
}

func TestLookup(t *testing.T) {
	db := openDB(t)

	n, err := db.Noun("ōceanus")
	require.NoError(t, err)
	assert.Equal(t, 1, n.Chapter())
	assert.Equal(t, "1.53", n.Reference())
	assert.Equal(t, "ocean", n.English())
	assert.Equal(t, "Ozean", n.German())

	_, err = db.Noun("oceanus")
	assert.ErrorIs(t, err, ErrWordNotFound)
	assert.ErrorIs(t, err, ErrDataIntegrity)

	p, err := db.Preposition("in")
	require.NoError(t, err)
	assert.Equal(t, []Casus{Accusative, Ablative}, p.Cases())
	assert.True(t, p.Governs(Ablative))
	assert.False(t, p.Governs(Dative))

	o, err := db.Interjection("ō")
	require.NoError(t, err)
	assert.Equal(t, "ō", o.Decline(Plural))
}

func TestWordsUpTo(t *testing.T) {
	db := openDB(t)
	words := db.WordsUpTo(1)
	require.NotEmpty(t, words)
	lemmas := map[string]bool{}
	for _, w := range words {
		assert.LessOrEqual(t, w.Chapter(), 1, w.Lemma())
		lemmas[w.Lemma()] = true
	}
	assert.True(t, lemmas["ōceanus"])
	assert.True(t, lemmas["esse"])
	assert.False(t, lemmas["puella"])

	assert.Nil(t, db.Words(WordType("participle")))
}

func TestLoadDirMergesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "b.json", `[{"wordType":"noun","chapter":2,"latinNominative":"puella","latinGenitive":"puellae","genus":"f"}]`)
	writeDataset(t, dir, "a.json", `[{"wordType":"adverb","chapter":1,"latin":"nōn"}]`)
	writeDataset(t, dir, "notes.txt", `ignored`)

	entries, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "nōn", entries[0].Lemma())
	assert.Equal(t, "puella", entries[1].Lemma())
}

func TestLoadDirErrors(t *testing.T) {
	_, err := LoadDir(context.Background(), t.TempDir())
	assert.Error(t, err, "empty directory")

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `[{"wordType":`},
		{"unknown type", `[{"wordType":"participle","latin":"amāns"}]`},
		{"missing nominative", `[{"wordType":"noun","latinGenitive":"puellae","genus":"f"}]`},
		{"bad genus", `[{"wordType":"noun","latinNominative":"puella","latinGenitive":"puellae","genus":"x"}]`},
		{"no lemma", `[{"wordType":"adverb","chapter":1}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeDataset(t, dir, "words.json", tt.body)
			_, err := LoadDir(context.Background(), dir)
			assert.Error(t, err)
		})
	}
}

func TestLoadDirCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := LoadDir(ctx, dataDir)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewWordDBInvalidEntry(t *testing.T) {
	entries := []Entry{
		{WordType: TypeNoun, LatinNominative: "puella", LatinGenitive: "puellae", Genus: "f"},
		{WordType: TypeNoun, LatinNominative: "xyz", LatinGenitive: "xyzq", Genus: "m"},
	}

	_, err := NewWordDB(entries)
	var entryErr *EntryError
	require.ErrorAs(t, err, &entryErr)
	assert.Equal(t, "xyz", entryErr.Lemma)
	assert.ErrorIs(t, err, ErrUnknownDeclension)

	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = saved })

	db, err := NewWordDB(entries, WithSkipInvalid())
	require.NoError(t, err)
	assert.Len(t, db.Nouns(), 1)
	require.Len(t, db.Rejected(), 1)
	assert.Equal(t, TypeNoun, db.Rejected()[0].Type)

	// one warning per skipped entry
	assert.Equal(t, 1, strings.Count(buf.String(), `"lemma":"xyz"`))
	assert.Contains(t, buf.String(), "skipping entry")
}
