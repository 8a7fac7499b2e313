package llpsi

import (
	"errors"
	"fmt"
)

// ErrDataIntegrity marks errors caused by an incomplete or inconsistent
// dataset: a stem that cannot be derived, a lemma that matches no
// declension pattern, a lookup of a word that does not exist.
var ErrDataIntegrity = errors.New("data integrity")

// ErrUnknownDeclension is returned when a noun or adjective matches no
// declension pattern.
var ErrUnknownDeclension = fmt.Errorf("%w: unknown declension", ErrDataIntegrity)

// ErrUnknownPronoun is returned for a pronoun lemma without a paradigm.
var ErrUnknownPronoun = fmt.Errorf("%w: unknown pronoun", ErrDataIntegrity)

// ErrWordNotFound is returned by WordDB lookups.
var ErrWordNotFound = fmt.Errorf("%w: word not found", ErrDataIntegrity)

// ErrInvalidOverride is returned when an override blob has an unknown key.
var ErrInvalidOverride = fmt.Errorf("%w: invalid override", ErrDataIntegrity)

// StemError reports a stem that could not be derived from a nominative and
// a genitive construction.
type StemError struct {
	Class        StemClass
	Nominative   string
	Construction string
}

func (e *StemError) Error() string {
	msg := fmt.Sprintf("couldn't find rule to get stem for %s, %s", e.Nominative, e.Construction)
	if e.Class != 0 {
		return e.Class.String() + ": " + msg
	}
	return msg
}

func (e *StemError) Unwrap() error {
	return ErrDataIntegrity
}

// EntryError wraps an error raised while turning a lexical entry into a Word.
type EntryError struct {
	Type  WordType
	Lemma string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Type, e.Lemma, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
