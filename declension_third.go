package llpsi

import "fmt"

type consStem struct{}

func (consStem) determineStem(in *DeclensionInput) (string, error) {
	return in.deriveStem([]string{"is"}, []string{"ium", "um"}, consRulesSingular, consRulesPlural)
}

func (consStem) build(d *Declension, c Casus, n Numerus) (string, bool) {
	if n == Plural {
		if d.neuter() {
			return d.plural(c, "a", "a", "um", "ibus", "ibus"), true
		}
		return d.plural(c, "ēs", "ēs", "um", "ibus", "ibus"), true
	}
	return d.thirdSingular(c, "e"), true
}

type iPureStem struct{}

func (iPureStem) determineStem(in *DeclensionInput) (string, error) {
	return in.deriveStem([]string{"is"}, []string{"ium"}, iPureRulesSingular, iPureRulesPlural)
}

func (iPureStem) build(d *Declension, c Casus, n Numerus) (string, bool) {
	if n == Plural {
		if d.neuter() {
			return d.plural(c, "ia", "ia", "ium", "ibus", "ibus"), true
		}
		return d.plural(c, "ēs", "ēs", "ium", "ibus", "ibus"), true
	}
	abl := "e"
	if d.neuter() || d.in.AblativeI {
		abl = "ī"
	}
	return d.thirdSingular(c, abl), true
}

type iMixedStem struct{}

func (iMixedStem) determineStem(in *DeclensionInput) (string, error) {
	if in.Genus == Neuter {
		return "", fmt.Errorf("%w: neuter %s cannot be a mixed i-stem", ErrUnknownDeclension, in.Nominative)
	}
	return in.deriveStem([]string{"is"}, []string{"ium"}, iMixedRulesSingular, iMixedRulesPlural)
}

func (iMixedStem) build(d *Declension, c Casus, n Numerus) (string, bool) {
	if n == Plural {
		return d.plural(c, "ēs", "ēs", "ium", "ibus", "ibus"), true
	}
	return d.thirdSingular(c, "e"), true
}

// thirdSingular is the singular shared by all third-declension stems.
func (d *Declension) thirdSingular(c Casus, abl string) string {
	switch c {
	case Nominative, Vocative:
		return d.in.Nominative
	case Accusative:
		if d.neuter() {
			return d.in.Nominative
		}
		return d.stem + "em"
	case Genitive:
		return d.stem + "is"
	case Dative:
		return d.stem + "ī"
	default:
		return d.stem + abl
	}
}

type indeclinable struct{}

func (indeclinable) determineStem(in *DeclensionInput) (string, error) {
	return in.Nominative, nil
}

func (indeclinable) build(d *Declension, _ Casus, _ Numerus) (string, bool) {
	return d.in.Nominative, true
}

// irregular forms come from the override table only.
type irregular struct{}

func (irregular) determineStem(in *DeclensionInput) (string, error) {
	return in.Nominative, nil
}

func (irregular) build(*Declension, Casus, Numerus) (string, bool) {
	return "", false
}
