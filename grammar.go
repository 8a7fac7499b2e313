// Package llpsi generates Latin word forms for the vocabulary of
// Lingua Latina per se illustrata: noun, adjective and pronoun declensions,
// verb conjugations, the grammar known at each chapter of the book and
// reverse lookup of inflected forms.
package llpsi

import (
	"fmt"
	"strings"
)

// Casus is a grammatical case.
type Casus int

const (
	Nominative Casus = iota
	Accusative
	Genitive
	Dative
	Ablative
	Vocative
)

// AllCases lists the cases in the order the book teaches them.
var AllCases = []Casus{Nominative, Accusative, Genitive, Dative, Ablative, Vocative}

var casusNames = [...]string{
	Nominative: "Nōminātīvus",
	Accusative: "Accūsātīvus",
	Genitive:   "Genetīvus",
	Dative:     "Datīvus",
	Ablative:   "Ablātīvus",
	Vocative:   "Vocātīvus",
}

var casusAbbrevs = [...]string{
	Nominative: "nom",
	Accusative: "acc",
	Genitive:   "gen",
	Dative:     "dat",
	Ablative:   "abl",
	Vocative:   "voc",
}

// String returns the Latin name of the case, e.g. "Genetīvus".
func (c Casus) String() string {
	if c < 0 || int(c) >= len(casusNames) {
		return fmt.Sprintf("Casus(%d)", int(c))
	}
	return casusNames[c]
}

// Abbrev returns the three-letter key used in override blobs and
// preposition records ("nom", "acc", ...).
func (c Casus) Abbrev() string {
	if c < 0 || int(c) >= len(casusAbbrevs) {
		return ""
	}
	return casusAbbrevs[c]
}

// ParseCasus accepts either the abbreviation or the Latin name of a case,
// with or without macrons.
func ParseCasus(s string) (Casus, error) {
	key := NormalizeKey(strings.TrimSpace(s))
	for _, c := range AllCases {
		if key == c.Abbrev() || key == NormalizeKey(c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown case %q", s)
}

// Numerus is a grammatical number.
type Numerus int

const (
	Singular Numerus = iota
	Plural
)

// AllNumeri lists both numbers, singular first.
var AllNumeri = []Numerus{Singular, Plural}

func (n Numerus) String() string {
	switch n {
	case Singular:
		return "Singulāris"
	case Plural:
		return "Plūrālis"
	default:
		return fmt.Sprintf("Numerus(%d)", int(n))
	}
}

// Abbrev returns "Sg" or "Pl".
func (n Numerus) Abbrev() string {
	if n == Plural {
		return "Pl"
	}
	return "Sg"
}

// ParseNumerus accepts "sg", "pl" or the Latin names.
func ParseNumerus(s string) (Numerus, error) {
	switch NormalizeKey(strings.TrimSpace(s)) {
	case "sg", "singularis", "singular":
		return Singular, nil
	case "pl", "pluralis", "plural":
		return Plural, nil
	}
	return 0, fmt.Errorf("unknown number %q", s)
}

// Genus is a grammatical gender.
type Genus int

const (
	Masculine Genus = iota
	Feminine
	Neuter
)

// AllGenera lists the genders in dictionary order.
var AllGenera = []Genus{Masculine, Feminine, Neuter}

func (g Genus) String() string {
	switch g {
	case Masculine:
		return "Masculīnum"
	case Feminine:
		return "Fēminīnum"
	case Neuter:
		return "Neutrum"
	default:
		return fmt.Sprintf("Genus(%d)", int(g))
	}
}

// IsValid reports whether g is one of the three genders.
func (g Genus) IsValid() bool { return g >= Masculine && g <= Neuter }

// Code returns the dataset letter for the gender.
func (g Genus) Code() string {
	switch g {
	case Feminine:
		return "f"
	case Neuter:
		return "n"
	default:
		return "m"
	}
}

// ParseGenus parses a dataset gender code. Nouns of common gender ("m/f")
// are treated as masculine.
func ParseGenus(code string) (Genus, error) {
	switch strings.TrimSpace(code) {
	case "m", "m/f":
		return Masculine, nil
	case "f":
		return Feminine, nil
	case "n":
		return Neuter, nil
	}
	return 0, fmt.Errorf("unknown genus %q", code)
}

// WordType tags the kind of a lexical entry.
type WordType string

const (
	TypeNoun          WordType = "noun"
	TypeAdjective     WordType = "adjective"
	TypePronoun       WordType = "pronoun"
	TypeVerb          WordType = "verb"
	TypeAdverb        WordType = "adverb"
	TypeConjunction   WordType = "conjunction"
	TypeInterjection  WordType = "interjection"
	TypeInterrogative WordType = "interrogative"
	TypeNumeral       WordType = "numeral"
	TypePreposition   WordType = "preposition"
)

// WordTypes lists every word type in catalog order.
var WordTypes = []WordType{
	TypeNoun, TypeAdjective, TypePronoun, TypeVerb, TypeAdverb,
	TypeConjunction, TypeInterjection, TypeInterrogative, TypeNumeral, TypePreposition,
}

// IsValid reports whether t is one of the known word types.
func (t WordType) IsValid() bool {
	for _, w := range WordTypes {
		if t == w {
			return true
		}
	}
	return false
}

// NounDeclension is the declension class a noun is taught under.
type NounDeclension int

const (
	DeclensionA NounDeclension = iota
	DeclensionO
	DeclensionU
	DeclensionE
	DeclensionThird
	DeclensionIndeclinable
)

// AllNounDeclensions lists the noun declensions.
var AllNounDeclensions = []NounDeclension{
	DeclensionA, DeclensionO, DeclensionU, DeclensionE, DeclensionThird, DeclensionIndeclinable,
}

func (d NounDeclension) String() string {
	switch d {
	case DeclensionA:
		return "ā"
	case DeclensionO:
		return "o"
	case DeclensionU:
		return "u"
	case DeclensionE:
		return "ē"
	case DeclensionThird:
		return "3"
	case DeclensionIndeclinable:
		return "indēclīnābile"
	default:
		return fmt.Sprintf("NounDeclension(%d)", int(d))
	}
}

// AdjectiveDeclension is the declension class of an adjective.
type AdjectiveDeclension int

const (
	AdjectiveAO AdjectiveDeclension = iota
	AdjectiveThird
)

func (d AdjectiveDeclension) String() string {
	if d == AdjectiveThird {
		return "3"
	}
	return "ā/o"
}
