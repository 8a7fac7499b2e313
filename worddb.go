package llpsi

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

// WordDB is the catalog of every word of the book, one sorted list per word
// type. It is read-only after construction.
type WordDB struct {
	nouns          []*Noun
	adjectives     []*Adjective
	pronouns       []*Pronoun
	verbs          []*Verb
	adverbs        []*Adverb
	conjunctions   []*Conjunction
	interjections  []*Interjection
	interrogatives []*Interrogative
	numerals       []*Numeral
	prepositions   []*Preposition

	maxChapter int
	rejected   []*EntryError
}

// Option configures NewWordDB.
type Option func(*dbOptions)

type dbOptions struct {
	skipInvalid bool
}

// WithSkipInvalid makes NewWordDB log and skip entries it cannot build
// instead of failing.
func WithSkipInvalid() Option {
	return func(o *dbOptions) { o.skipInvalid = true }
}

// NewWordDB builds every entry into its word type.
func NewWordDB(entries []Entry, opts ...Option) (*WordDB, error) {
	var o dbOptions
	for _, opt := range opts {
		opt(&o)
	}

	db := &WordDB{}
	for i := range entries {
		e := &entries[i]
		if err := db.add(e); err != nil {
			entryErr := &EntryError{Type: e.WordType, Lemma: e.Lemma(), Err: err}
			if !o.skipInvalid {
				return nil, entryErr
			}
			log.Warn().Str("type", string(e.WordType)).Str("lemma", e.Lemma()).Err(err).Msg("skipping entry")
			db.rejected = append(db.rejected, entryErr)
		}
	}

	sortWords(db.nouns)
	sortWords(db.adjectives)
	sortWords(db.pronouns)
	sortWords(db.verbs)
	sortWords(db.adverbs)
	sortWords(db.conjunctions)
	sortWords(db.interjections)
	sortWords(db.interrogatives)
	sortWords(db.numerals)
	sortWords(db.prepositions)

	for _, n := range db.nouns {
		db.maxChapter = max(db.maxChapter, n.Chapter())
	}
	return db, nil
}

func (db *WordDB) add(e *Entry) error {
	switch e.WordType {
	case TypeNoun:
		return addWord(&db.nouns, NewNoun, e)
	case TypeAdjective:
		return addWord(&db.adjectives, NewAdjective, e)
	case TypePronoun:
		return addWord(&db.pronouns, NewPronoun, e)
	case TypeVerb:
		return addWord(&db.verbs, NewVerb, e)
	case TypeAdverb:
		return addWord(&db.adverbs, NewAdverb, e)
	case TypeConjunction:
		return addWord(&db.conjunctions, NewConjunction, e)
	case TypeInterjection:
		return addWord(&db.interjections, NewInterjection, e)
	case TypeInterrogative:
		return addWord(&db.interrogatives, NewInterrogative, e)
	case TypeNumeral:
		return addWord(&db.numerals, NewNumeral, e)
	case TypePreposition:
		return addWord(&db.prepositions, NewPreposition, e)
	}
	return fmt.Errorf("%w: unknown word type %q", ErrDataIntegrity, e.WordType)
}

func addWord[T Word](list *[]T, build func(*Entry) (T, error), e *Entry) error {
	w, err := build(e)
	if err != nil {
		return err
	}
	*list = append(*list, w)
	return nil
}

func sortWords[T Word](list []T) {
	slices.SortStableFunc(list, func(a, b T) int {
		return MacronCompare(strings.ToLower(a.Lemma()), strings.ToLower(b.Lemma()))
	})
}

func findWord[T Word](list []T, lemma string) (T, error) {
	for _, w := range list {
		if w.Lemma() == lemma {
			return w, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: word %s not found", ErrWordNotFound, lemma)
}

// MaxChapter is the highest chapter any noun is introduced in.
func (db *WordDB) MaxChapter() int { return db.maxChapter }

// Rejected lists the entries skipped under WithSkipInvalid.
func (db *WordDB) Rejected() []*EntryError { return db.rejected }

func (db *WordDB) Nouns() []*Noun                   { return db.nouns }
func (db *WordDB) Adjectives() []*Adjective         { return db.adjectives }
func (db *WordDB) Pronouns() []*Pronoun             { return db.pronouns }
func (db *WordDB) Verbs() []*Verb                   { return db.verbs }
func (db *WordDB) Prepositions() []*Preposition     { return db.prepositions }
func (db *WordDB) Interjections() []*Interjection   { return db.interjections }
func (db *WordDB) Interrogatives() []*Interrogative { return db.interrogatives }

func (db *WordDB) Noun(lemma string) (*Noun, error) { return findWord(db.nouns, lemma) }

func (db *WordDB) Adjective(lemma string) (*Adjective, error) {
	return findWord(db.adjectives, lemma)
}

func (db *WordDB) Pronoun(lemma string) (*Pronoun, error) { return findWord(db.pronouns, lemma) }

func (db *WordDB) Preposition(lemma string) (*Preposition, error) {
	return findWord(db.prepositions, lemma)
}

func (db *WordDB) Interjection(lemma string) (*Interjection, error) {
	return findWord(db.interjections, lemma)
}

func (db *WordDB) Interrogative(lemma string) (*Interrogative, error) {
	return findWord(db.interrogatives, lemma)
}

func (db *WordDB) Verb(lemma string) (*Verb, error) { return findWord(db.verbs, lemma) }

// Words lists the words of type t in lemma order.
func (db *WordDB) Words(t WordType) []Word {
	switch t {
	case TypeNoun:
		return asWords(db.nouns)
	case TypeAdjective:
		return asWords(db.adjectives)
	case TypePronoun:
		return asWords(db.pronouns)
	case TypeVerb:
		return asWords(db.verbs)
	case TypeAdverb:
		return asWords(db.adverbs)
	case TypeConjunction:
		return asWords(db.conjunctions)
	case TypeInterjection:
		return asWords(db.interjections)
	case TypeInterrogative:
		return asWords(db.interrogatives)
	case TypeNumeral:
		return asWords(db.numerals)
	case TypePreposition:
		return asWords(db.prepositions)
	}
	return nil
}

// WordsUpTo lists every word introduced in chapter or earlier, grouped by
// word type.
func (db *WordDB) WordsUpTo(chapter int) []Word {
	var out []Word
	for _, t := range WordTypes {
		for _, w := range db.Words(t) {
			if w.Chapter() <= chapter {
				out = append(out, w)
			}
		}
	}
	return out
}

func asWords[T Word](list []T) []Word {
	out := make([]Word, len(list))
	for i, w := range list {
		out[i] = w
	}
	return out
}
