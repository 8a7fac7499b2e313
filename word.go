package llpsi

// Word is a vocabulary item of the book.
type Word interface {
	// Type returns the word type tag.
	Type() WordType
	// Lemma returns the citation form with macrons.
	Lemma() string
	// Chapter returns the chapter the word is introduced in.
	Chapter() int
	// Reference points at the first occurrence, "chapter.line".
	Reference() string
	English() string
	German() string
}

// baseWord carries the metadata every word type shares.
type baseWord struct {
	wordType  WordType
	lemma     string
	chapter   int
	reference string
	english   string
	german    string
}

func newBaseWord(t WordType, lemma string, e *Entry) baseWord {
	return baseWord{
		wordType:  t,
		lemma:     lemma,
		chapter:   e.Chapter,
		reference: e.Reference,
		english:   e.English,
		german:    e.German,
	}
}

func (w *baseWord) Type() WordType    { return w.wordType }
func (w *baseWord) Lemma() string     { return w.lemma }
func (w *baseWord) Chapter() int      { return w.chapter }
func (w *baseWord) Reference() string { return w.reference }
func (w *baseWord) English() string   { return w.english }
func (w *baseWord) German() string    { return w.german }

// GenderDecliner is implemented by words declined in three genders.
type GenderDecliner interface {
	Word
	Decline(g Genus, c Casus, n Numerus) (string, bool)
}
