package llpsi

import (
	"errors"
	"fmt"
	"strings"
)

// StemClass selects the declension strategy of a Declension.
type StemClass int

const (
	StemA StemClass = iota + 1
	StemO
	StemU
	StemE
	StemConsonant
	StemIPure
	StemIMixed
	StemIndeclinable
	StemIrregular
)

func (c StemClass) String() string {
	switch c {
	case StemA:
		return "a-stem"
	case StemO:
		return "o-stem"
	case StemU:
		return "u-stem"
	case StemE:
		return "e-stem"
	case StemConsonant:
		return "consonant stem"
	case StemIPure:
		return "pure i-stem"
	case StemIMixed:
		return "mixed i-stem"
	case StemIndeclinable:
		return "indeclinable"
	case StemIrregular:
		return "irregular"
	default:
		return fmt.Sprintf("StemClass(%d)", int(c))
	}
}

// NounDeclension returns the declension a noun of this stem class is
// taught under.
func (c StemClass) NounDeclension() NounDeclension {
	switch c {
	case StemA:
		return DeclensionA
	case StemO:
		return DeclensionO
	case StemU:
		return DeclensionU
	case StemE:
		return DeclensionE
	case StemIndeclinable, StemIrregular:
		return DeclensionIndeclinable
	default:
		return DeclensionThird
	}
}

// DeclensionInput is everything a strategy needs to decline one gender of
// a word.
type DeclensionInput struct {
	Genus Genus
	// Nominative is the nominative singular, or the nominative plural of a
	// plurale tantum.
	Nominative string
	// Construction is the genitive as the dictionary gives it: either an
	// abbreviation such as "-ōris" or a spelled-out form such as "cordis".
	Construction  string
	PluraleTantum bool
	// GenitiveIus selects -ius/-ī in the genitive/dative singular (tōtus, sōlus).
	GenitiveIus bool
	// AblativeI selects -ī in the ablative singular of masculine and
	// feminine pure i-stems. Only adjectives set it; neuters always take -ī.
	AblativeI bool
	// Enclitic is appended to every computed form (uterque).
	Enclitic  string
	Overrides Overrides
}

// isAbbreviated reports whether the construction is a dash-prefixed
// ending rather than a spelled-out genitive.
func (in *DeclensionInput) isAbbreviated() bool {
	return strings.HasPrefix(in.Construction, "-")
}

// deriveStem strips a literal suffix from a spelled-out genitive, or runs
// the stem rules for an abbreviated one.
func (in *DeclensionInput) deriveStem(literal, literalPlural []string, rules, rulesPlural []StemRule) (string, error) {
	if !in.isAbbreviated() {
		suffixes := literal
		if in.PluraleTantum {
			suffixes = literalPlural
		}
		for _, suf := range suffixes {
			if stem, ok := changeSuffix(in.Construction, suf, ""); ok {
				return stem, nil
			}
		}
		return "", &StemError{Nominative: in.Nominative, Construction: in.Construction}
	}
	if in.PluraleTantum {
		return ApplyStemRule(in.Nominative, in.Construction, rulesPlural)
	}
	return ApplyStemRule(in.Nominative, in.Construction, rules)
}

type strategy interface {
	determineStem(in *DeclensionInput) (string, error)
	build(d *Declension, c Casus, n Numerus) (string, bool)
}

var strategies = map[StemClass]strategy{
	StemA:            aStem{},
	StemO:            oStem{},
	StemU:            uStem{},
	StemE:            eStem{},
	StemConsonant:    consStem{},
	StemIPure:        iPureStem{},
	StemIMixed:       iMixedStem{},
	StemIndeclinable: indeclinable{},
	StemIrregular:    irregular{},
}

// Declension declines one gender of one word. It is immutable.
type Declension struct {
	class StemClass
	in    DeclensionInput
	stem  string
	impl  strategy
}

// NewDeclension derives the stem for in and returns the declension of the
// given class.
func NewDeclension(class StemClass, in DeclensionInput) (*Declension, error) {
	impl, ok := strategies[class]
	if !ok {
		return nil, fmt.Errorf("%w: stem class %d", ErrUnknownDeclension, int(class))
	}
	stem, err := impl.determineStem(&in)
	if err != nil {
		var se *StemError
		if errors.As(err, &se) && se.Class == 0 {
			se.Class = class
		}
		return nil, err
	}
	return &Declension{class: class, in: in, stem: stem, impl: impl}, nil
}

// Decline returns the form for (c, n). ok is false when the paradigm has no
// such form, e.g. any singular of a plurale tantum.
func (d *Declension) Decline(c Casus, n Numerus) (form string, ok bool) {
	if form, ok := d.in.Overrides.Lookup(c, n); ok {
		return form, true
	}
	if d.in.PluraleTantum && d.class != StemIrregular {
		if n == Singular {
			return "", false
		}
		if c == Nominative || c == Vocative || (c == Accusative && d.in.Genus == Neuter) {
			return d.in.Nominative + d.in.Enclitic, true
		}
	}
	form, ok = d.impl.build(d, c, n)
	if !ok {
		return "", false
	}
	return form + d.in.Enclitic, true
}

// Class returns the stem class tag.
func (d *Declension) Class() StemClass { return d.class }

// Stem returns the derived stem.
func (d *Declension) Stem() string { return d.stem }

// Genus returns the gender this declension was built for.
func (d *Declension) Genus() Genus { return d.in.Genus }

// Nominative returns the citation form including any enclitic.
func (d *Declension) Nominative() string { return d.in.Nominative + d.in.Enclitic }

// PluraleTantum reports whether the declension has plural forms only.
func (d *Declension) PluraleTantum() bool { return d.in.PluraleTantum }

func (d *Declension) neuter() bool { return d.in.Genus == Neuter }

// plural appends the ending for c from a five-slot plural table
// (nominative, accusative, genitive, dative, ablative); the vocative
// equals the nominative.
func (d *Declension) plural(c Casus, nom, acc, gen, dat, abl string) string {
	switch c {
	case Nominative, Vocative:
		return d.stem + nom
	case Accusative:
		return d.stem + acc
	case Genitive:
		return d.stem + gen
	case Dative:
		return d.stem + dat
	default:
		return d.stem + abl
	}
}
