package llpsi

import "strings"

type aStem struct{}

func (aStem) determineStem(in *DeclensionInput) (string, error) {
	return in.deriveStem([]string{"ae"}, []string{"ārum"}, aRulesSingular, aRulesPlural)
}

func (aStem) build(d *Declension, c Casus, n Numerus) (string, bool) {
	if n == Plural {
		return d.plural(c, "ae", "ās", "ārum", "īs", "īs"), true
	}
	switch c {
	case Nominative, Vocative:
		return d.in.Nominative, true
	case Accusative:
		return d.stem + "am", true
	case Genitive:
		if d.in.GenitiveIus {
			return d.stem + "ius", true
		}
		return d.stem + "ae", true
	case Dative:
		if d.in.GenitiveIus {
			return d.stem + "ī", true
		}
		return d.stem + "ae", true
	default:
		return d.stem + "ā", true
	}
}

type oStem struct{}

func (oStem) determineStem(in *DeclensionInput) (string, error) {
	return in.deriveStem([]string{"ī"}, []string{"ōrum"}, oRulesSingular, oRulesPlural)
}

func (oStem) build(d *Declension, c Casus, n Numerus) (string, bool) {
	if n == Plural {
		if d.neuter() {
			return d.plural(c, "a", "a", "ōrum", "īs", "īs"), true
		}
		return d.plural(c, "ī", "ōs", "ōrum", "īs", "īs"), true
	}
	switch c {
	case Nominative:
		return d.in.Nominative, true
	case Accusative:
		return d.stem + "um", true
	case Genitive:
		if d.in.GenitiveIus {
			return d.stem + "ius", true
		}
		return d.stem + "ī", true
	case Dative:
		if d.in.GenitiveIus {
			return d.stem + "ī", true
		}
		return d.stem + "ō", true
	case Ablative:
		return d.stem + "ō", true
	default:
		nom := d.in.Nominative
		switch {
		case strings.HasSuffix(nom, "ius"):
			return d.stem + "ī", true
		case strings.HasSuffix(nom, "us"):
			return d.stem + "e", true
		}
		return nom, true
	}
}

type uStem struct{}

func (uStem) determineStem(in *DeclensionInput) (string, error) {
	return in.deriveStem([]string{"ūs"}, []string{"uum"}, uRulesSingular, uRulesPlural)
}

func (uStem) build(d *Declension, c Casus, n Numerus) (string, bool) {
	if n == Plural {
		if d.neuter() {
			return d.plural(c, "ua", "ua", "uum", "ibus", "ibus"), true
		}
		return d.plural(c, "ūs", "ūs", "uum", "ibus", "ibus"), true
	}
	switch c {
	case Nominative, Vocative:
		return d.in.Nominative, true
	case Accusative:
		if d.neuter() {
			return d.in.Nominative, true
		}
		return d.stem + "um", true
	case Genitive:
		return d.stem + "ūs", true
	case Dative:
		if d.neuter() {
			return d.stem + "ū", true
		}
		return d.stem + "uī", true
	default:
		return d.stem + "ū", true
	}
}

type eStem struct{}

func (eStem) determineStem(in *DeclensionInput) (string, error) {
	return in.deriveStem([]string{"ēī", "eī"}, []string{"ērum"}, eRulesSingular, eRulesPlural)
}

func (eStem) build(d *Declension, c Casus, n Numerus) (string, bool) {
	if n == Plural {
		return d.plural(c, "ēs", "ēs", "ērum", "ēbus", "ēbus"), true
	}
	// rēs, reī keeps the short e the dictionary gives
	gen := "ēī"
	if strings.HasSuffix(d.in.Construction, "eī") {
		gen = "eī"
	}
	switch c {
	case Nominative, Vocative:
		return d.in.Nominative, true
	case Accusative:
		return d.stem + "em", true
	case Genitive, Dative:
		return d.stem + gen, true
	default:
		return d.stem + "ē", true
	}
}
