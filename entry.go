package llpsi

// Entry is one record of the lexical dataset. Which fields are set depends
// on WordType. Entries are read once and never modified.
type Entry struct {
	WordType  WordType `json:"wordType" validate:"required"`
	Chapter   int      `json:"chapter" validate:"gte=0"`
	Reference string   `json:"reference"`
	English   string   `json:"english"`
	German    string   `json:"german"`

	// Nouns.
	LatinNominative string `json:"latinNominative,omitempty" validate:"required_if=WordType noun"`
	// LatinGenitive is the genitive construction of a noun, or of a
	// one-termination adjective.
	LatinGenitive   string `json:"latinGenitive,omitempty"`
	PluraleTantum   bool   `json:"pluraleTantum,omitempty"`
	Genus           string `json:"genus,omitempty" validate:"omitempty,oneof=m f n m/f"`
	IStemType       string `json:"iStemType,omitempty" validate:"omitempty,oneof=pure mixed"`
	GrammaticalTerm bool   `json:"grammaticalTerm,omitempty"`
	// Overrides is a JSON-encoded override blob: flat for nouns, keyed by
	// gender letter for adjectives.
	Overrides string `json:"overrides,omitempty"`

	// Adjectives.
	LatinMale   string `json:"latinMale,omitempty" validate:"required_if=WordType adjective"`
	LatinFemale string `json:"latinFemale,omitempty"`
	LatinNeuter string `json:"latinNeuter,omitempty"`
	GenitiveIus bool   `json:"genitiveIus,omitempty"`
	StemType    string `json:"stemType,omitempty" validate:"omitempty,oneof=pure cons comp sup"`

	// Adverbs, conjunctions, interrogatives, numerals, prepositions,
	// pronouns and verbs.
	Latin string `json:"latin,omitempty"`

	// Interjections.
	LatinSingular string `json:"latinSingular,omitempty"`
	LatinPlural   string `json:"latinPlural,omitempty"`

	// Numerals.
	NominativePlural string `json:"nominativePlural,omitempty"`
	GenitivePlural   string `json:"genitivePlural,omitempty"`

	// Prepositions: "acc", "abl" or "acc/abl".
	Case string `json:"case,omitempty"`

	// Verbs: conjugation template, e.g. "{{la-conj|2|habeō|habu|habit}}".
	Conjugation string `json:"conjugation,omitempty"`
	StemChapter int    `json:"stemChapter,omitempty"`
}

// Lemma returns the citation form the entry is filed under.
func (e *Entry) Lemma() string {
	switch e.WordType {
	case TypeNoun:
		return e.LatinNominative
	case TypeAdjective:
		return e.LatinMale
	case TypeInterjection:
		return e.LatinSingular
	default:
		return e.Latin
	}
}
