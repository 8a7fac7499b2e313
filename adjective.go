package llpsi

import (
	"fmt"
	"strings"
)

// Adjective is declined in three genders, each backed by its own Declension.
type Adjective struct {
	baseWord
	genera      [3]*Declension
	declension  AdjectiveDeclension
	comparative bool
	superlative bool
}

// adjectiveForms is the dictionary entry of an adjective as the decision
// list sees it.
type adjectiveForms struct {
	male, female, neuter string
	genitive             string
	stemType             string
	genitiveIus          bool
	enclitic             string
	overrides            GenderOverrides
}

// adjectiveBuild is what a matching pattern produces.
type adjectiveBuild struct {
	genera      [3]*Declension
	declension  AdjectiveDeclension
	comparative bool
}

// NewAdjective builds an adjective from a dataset entry.
func NewAdjective(e *Entry) (*Adjective, error) {
	ovr, err := ParseGenderOverrides(e.Overrides)
	if err != nil {
		return nil, err
	}
	forms := adjectiveForms{
		male:        e.LatinMale,
		female:      e.LatinFemale,
		neuter:      e.LatinNeuter,
		genitive:    e.LatinGenitive,
		stemType:    e.StemType,
		genitiveIus: e.GenitiveIus,
		overrides:   ovr,
	}
	b, err := forms.assemble()
	if err != nil {
		return nil, err
	}
	return &Adjective{
		baseWord:    newBaseWord(TypeAdjective, e.LatinMale, e),
		genera:      b.genera,
		declension:  b.declension,
		comparative: b.comparative || e.StemType == "comp",
		superlative: isSuperlative(e),
	}, nil
}

func isSuperlative(e *Entry) bool {
	if e.StemType == "sup" {
		return true
	}
	for _, suf := range []string{"issimus", "errimus", "illimus"} {
		if strings.HasSuffix(e.LatinMale, suf) {
			return true
		}
	}
	return false
}

// assemble runs the decision list; the first matching pattern decides
// which declensions back the three genders.
func (f adjectiveForms) assemble() (adjectiveBuild, error) {
	switch {
	case len(f.male) > len("que") && strings.HasSuffix(f.male, "que"):
		inner := f
		inner.male = strings.TrimSuffix(f.male, "que")
		inner.female = strings.TrimSuffix(f.female, "que")
		inner.neuter = strings.TrimSuffix(f.neuter, "que")
		inner.enclitic = "que" + f.enclitic
		return inner.assemble()

	case strings.HasSuffix(f.neuter, "ud") || f.neuter == "-o" || f.neuter == "-ō":
		return f.irregular()

	case strings.HasSuffix(f.male, "ī"):
		return f.pluralOnlyAO()

	case strings.HasSuffix(f.male, "ēs"):
		return f.pluralOnlyThird()

	case strings.HasSuffix(f.female, "a") && strings.HasSuffix(f.neuter, "um"):
		return f.usAUm()

	case f.stemType == "comp" || strings.HasSuffix(f.male, "ior"):
		return f.comparativeForms()

	case strings.HasSuffix(f.male, "is"):
		return f.isE()

	case strings.HasSuffix(f.male, "er") && strings.HasSuffix(f.female, "is"):
		return f.erIsE()

	case f.oneTerminationGenitive() != "":
		return f.oneTermination()
	}
	return adjectiveBuild{}, fmt.Errorf("%w: adjective %s, %s, %s", ErrUnknownDeclension, f.male, f.female, f.neuter)
}

func (f adjectiveForms) decl(g Genus, class StemClass, nominative, construction string, pluraleTantum, ablativeI bool) (*Declension, error) {
	return NewDeclension(class, DeclensionInput{
		Genus:         g,
		Nominative:    nominative,
		Construction:  construction,
		PluraleTantum: pluraleTantum,
		GenitiveIus:   f.genitiveIus,
		AblativeI:     ablativeI,
		Enclitic:      f.enclitic,
		Overrides:     f.overrides.For(g),
	})
}

// three builds the masculine, feminine and neuter declensions in order.
func three(build func(g Genus) (*Declension, error)) ([3]*Declension, error) {
	var out [3]*Declension
	for _, g := range AllGenera {
		d, err := build(g)
		if err != nil {
			return out, err
		}
		out[g] = d
	}
	return out, nil
}

// irregular: alius, alia, aliud and duo, duae, duo come entirely from
// the override table.
func (f adjectiveForms) irregular() (adjectiveBuild, error) {
	nominatives := [3]string{f.male, f.female, f.neuter}
	genera, err := three(func(g Genus) (*Declension, error) {
		nom := nominatives[g]
		if form, ok := f.overrides.For(g).Lookup(Nominative, Singular); ok {
			nom = form
		}
		return f.decl(g, StemIrregular, nom, "", false, false)
	})
	return adjectiveBuild{genera: genera, declension: AdjectiveAO}, err
}

// pluralOnlyAO: cēterī, cēterae, cētera.
func (f adjectiveForms) pluralOnlyAO() (adjectiveBuild, error) {
	fem, _ := changeSuffix(f.male, "ī", "ae")
	neut, _ := changeSuffix(f.male, "ī", "a")
	genera, err := three(func(g Genus) (*Declension, error) {
		switch g {
		case Feminine:
			return f.decl(g, StemA, fem, "-ārum", true, false)
		case Neuter:
			return f.decl(g, StemO, neut, "-ōrum", true, false)
		}
		return f.decl(g, StemO, f.male, "-ōrum", true, false)
	})
	return adjectiveBuild{genera: genera, declension: AdjectiveAO}, err
}

// pluralOnlyThird: plūrēs, plūra.
func (f adjectiveForms) pluralOnlyThird() (adjectiveBuild, error) {
	neut, _ := changeSuffix(f.male, "ēs", "a")
	if f.neuter != "" && !strings.HasPrefix(f.neuter, "-") {
		neut = f.neuter
	}
	genera, err := three(func(g Genus) (*Declension, error) {
		if g == Neuter {
			return f.decl(g, StemIPure, neut, "-ium", true, false)
		}
		return f.decl(g, StemIPure, f.male, "-ium", true, false)
	})
	return adjectiveBuild{genera: genera, declension: AdjectiveThird, comparative: true}, err
}

// usAUm: longus, -a, -um; pulcher, -chra, -chrum; also spelled out in full.
func (f adjectiveForms) usAUm() (adjectiveBuild, error) {
	var stem string
	if strings.HasPrefix(f.neuter, "-") {
		s, err := ApplyStemRule(f.male, f.neuter, usAUmRules)
		if err != nil {
			return adjectiveBuild{}, err
		}
		stem = s
	} else {
		stem = strings.TrimSuffix(f.neuter, "um")
	}
	genera, err := three(func(g Genus) (*Declension, error) {
		switch g {
		case Feminine:
			return f.decl(g, StemA, stem+"a", stem+"ae", false, false)
		case Neuter:
			return f.decl(g, StemO, stem+"um", stem+"ī", false, false)
		}
		return f.decl(g, StemO, f.male, stem+"ī", false, false)
	})
	return adjectiveBuild{genera: genera, declension: AdjectiveAO}, err
}

// comparativeForms: melior, melius, -ōris.
func (f adjectiveForms) comparativeForms() (adjectiveBuild, error) {
	neut := f.neuter
	if neut == "" || strings.HasPrefix(neut, "-") {
		n, ok := changeSuffix(f.male, "or", "us")
		if !ok {
			return adjectiveBuild{}, fmt.Errorf("%w: comparative %s", ErrUnknownDeclension, f.male)
		}
		neut = n
	}
	gen := f.genitive
	if gen == "" {
		gen = "-ōris"
	}
	genera, err := three(func(g Genus) (*Declension, error) {
		if g == Neuter {
			return f.decl(g, StemConsonant, neut, gen, false, false)
		}
		return f.decl(g, StemConsonant, f.male, gen, false, false)
	})
	return adjectiveBuild{genera: genera, declension: AdjectiveThird, comparative: true}, err
}

// isE: brevis, -is, -e.
func (f adjectiveForms) isE() (adjectiveBuild, error) {
	neut, _ := changeSuffix(f.male, "is", "e")
	genera, err := three(func(g Genus) (*Declension, error) {
		if g == Neuter {
			return f.decl(g, StemIPure, neut, "-is", false, true)
		}
		return f.decl(g, StemIPure, f.male, "-is", false, true)
	})
	return adjectiveBuild{genera: genera, declension: AdjectiveThird}, err
}

// erIsE: ācer, ācris, ācre. The stem comes from the feminine.
func (f adjectiveForms) erIsE() (adjectiveBuild, error) {
	masc, err := f.decl(Masculine, StemIPure, f.male, f.female, false, true)
	if err != nil {
		return adjectiveBuild{}, err
	}
	stem := masc.Stem()
	fem, err := f.decl(Feminine, StemIPure, stem+"is", stem+"is", false, true)
	if err != nil {
		return adjectiveBuild{}, err
	}
	neut, err := f.decl(Neuter, StemIPure, stem+"e", stem+"is", false, true)
	if err != nil {
		return adjectiveBuild{}, err
	}
	return adjectiveBuild{genera: [3]*Declension{masc, fem, neut}, declension: AdjectiveThird}, nil
}

// oneTerminationGenitive returns the genitive of a one-termination
// adjective, which the dataset files either as latinGenitive or in place of
// the neuter.
func (f adjectiveForms) oneTerminationGenitive() string {
	if f.genitive != "" {
		return f.genitive
	}
	if strings.HasSuffix(f.neuter, "is") && (f.female == "" || f.female == f.male) {
		return f.neuter
	}
	return ""
}

// oneTermination: absēns, -entis; ferōx, -ōcis; dīves, -itis; pauper, -eris.
func (f adjectiveForms) oneTermination() (adjectiveBuild, error) {
	gen := f.oneTerminationGenitive()
	class := StemConsonant
	switch f.stemType {
	case "pure":
		class = StemIPure
	case "cons":
		class = StemConsonant
	default:
		if strings.HasSuffix(f.male, "ns") || strings.HasSuffix(f.male, "x") {
			class = StemIPure
		}
	}
	ablI := class == StemIPure
	genera, err := three(func(g Genus) (*Declension, error) {
		return f.decl(g, class, f.male, gen, false, ablI)
	})
	return adjectiveBuild{genera: genera, declension: AdjectiveThird}, err
}

// Decline returns the form for gender g, case c and number n.
func (a *Adjective) Decline(g Genus, c Casus, n Numerus) (string, bool) {
	if !g.IsValid() {
		return "", false
	}
	return a.genera[g].Decline(c, n)
}

// DeclensionFor returns the declension backing gender g.
func (a *Adjective) DeclensionFor(g Genus) *Declension {
	if !g.IsValid() {
		return nil
	}
	return a.genera[g]
}

// Declension returns the adjective's declension class.
func (a *Adjective) Declension() AdjectiveDeclension { return a.declension }

// IsComparative reports whether the adjective is a comparative.
func (a *Adjective) IsComparative() bool { return a.comparative }

// IsSuperlative reports whether the adjective is a superlative.
func (a *Adjective) IsSuperlative() bool { return a.superlative }

// PluraleTantum reports whether the adjective has plural forms only.
func (a *Adjective) PluraleTantum() bool { return a.genera[Masculine].PluraleTantum() }

// Female returns the feminine citation form.
func (a *Adjective) Female() string { return a.genera[Feminine].Nominative() }

// Neuter returns the neuter citation form.
func (a *Adjective) Neuter() string { return a.genera[Neuter].Nominative() }
