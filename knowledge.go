package llpsi

// caseKnowledge records which genders and numbers of a case are taught.
// A slot counts as known when both its gender and its number are.
type caseKnowledge struct {
	genera [3]bool
	numeri [2]bool
}

// GrammarKnowledge is the declension grammar a reader knows after a given
// chapter. It is immutable once built and safe to share.
type GrammarKnowledge struct {
	chapter         int
	cases           map[Casus]*caseKnowledge
	nounDeclensions map[NounDeclension]*[3]bool
	adjectives      [2]bool

	Comparative            bool
	Superlative            bool
	AblativePrepositions   bool
	AccusativePrepositions bool
	PronounHic             bool
	PronounIlle            bool
	PronounIs              bool
}

var (
	allGenera  = []Genus{Masculine, Feminine, Neuter}
	mfGenera   = []Genus{Masculine, Feminine}
	bothNumeri = []Numerus{Singular, Plural}
)

// KnowledgeAt returns what has been taught up to and including chapter.
func KnowledgeAt(chapter int) *GrammarKnowledge {
	k := &GrammarKnowledge{
		chapter:         chapter,
		cases:           make(map[Casus]*caseKnowledge),
		nounDeclensions: make(map[NounDeclension]*[3]bool),
	}
	if chapter >= 1 {
		k.addCase(Nominative, allGenera, bothNumeri)
		k.addCase(Ablative, allGenera, []Numerus{Singular})
		k.addNounDeclension(DeclensionA, allGenera)
		k.addNounDeclension(DeclensionO, allGenera)
		k.addNounDeclension(DeclensionIndeclinable, allGenera)
		k.adjectives[AdjectiveAO] = true
	}
	if chapter >= 2 {
		k.addCase(Genitive, allGenera, bothNumeri)
	}
	if chapter >= 3 {
		k.addCase(Accusative, mfGenera, []Numerus{Singular})
	}
	if chapter >= 4 {
		k.addCase(Vocative, allGenera, bothNumeri)
	}
	if chapter >= 5 {
		k.addCase(Ablative, nil, []Numerus{Plural})
		k.addCase(Accusative, []Genus{Neuter}, []Numerus{Plural})
		k.AblativePrepositions = true
	}
	if chapter >= 6 {
		k.AccusativePrepositions = true
	}
	if chapter >= 7 {
		k.addCase(Dative, allGenera, bothNumeri)
	}
	if chapter >= 8 {
		k.PronounHic = true
		k.PronounIlle = true
		k.PronounIs = true
	}
	if chapter >= 9 {
		k.addNounDeclension(DeclensionThird, mfGenera)
	}
	if chapter >= 11 {
		k.addNounDeclension(DeclensionThird, []Genus{Neuter})
	}
	if chapter >= 12 {
		k.addNounDeclension(DeclensionU, mfGenera)
		k.adjectives[AdjectiveThird] = true
		k.Comparative = true
	}
	if chapter >= 13 {
		k.addNounDeclension(DeclensionE, mfGenera)
		k.Superlative = true
	}
	if chapter >= 21 {
		k.addNounDeclension(DeclensionU, []Genus{Neuter})
	}
	return k
}

func (k *GrammarKnowledge) addCase(c Casus, genera []Genus, numeri []Numerus) {
	ck, ok := k.cases[c]
	if !ok {
		ck = &caseKnowledge{}
		k.cases[c] = ck
	}
	for _, g := range genera {
		ck.genera[g] = true
	}
	for _, n := range numeri {
		ck.numeri[n] = true
	}
}

func (k *GrammarKnowledge) addNounDeclension(d NounDeclension, genera []Genus) {
	set, ok := k.nounDeclensions[d]
	if !ok {
		set = &[3]bool{}
		k.nounDeclensions[d] = set
	}
	for _, g := range genera {
		set[g] = true
	}
}

// Chapter returns the chapter k was built for.
func (k *GrammarKnowledge) Chapter() int { return k.chapter }

// KnowsCase reports whether case c is known for gender g and number n.
func (k *GrammarKnowledge) KnowsCase(c Casus, g Genus, n Numerus) bool {
	ck, ok := k.cases[c]
	return ok && ck.genera[g] && ck.numeri[n]
}

// CaseGenera returns the genders known for c.
func (k *GrammarKnowledge) CaseGenera(c Casus) []Genus {
	ck, ok := k.cases[c]
	if !ok {
		return nil
	}
	var out []Genus
	for _, g := range AllGenera {
		if ck.genera[g] {
			out = append(out, g)
		}
	}
	return out
}

// CaseNumeri returns the numbers known for c.
func (k *GrammarKnowledge) CaseNumeri(c Casus) []Numerus {
	ck, ok := k.cases[c]
	if !ok {
		return nil
	}
	var out []Numerus
	for _, n := range AllNumeri {
		if ck.numeri[n] {
			out = append(out, n)
		}
	}
	return out
}

// KnownCases lists the cases with at least one known slot, in case order.
func (k *GrammarKnowledge) KnownCases() []Casus {
	var out []Casus
	for _, c := range AllCases {
		if len(k.CaseGenera(c)) > 0 && len(k.CaseNumeri(c)) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// KnowsNounDeclension reports whether declension d is known for gender g.
func (k *GrammarKnowledge) KnowsNounDeclension(d NounDeclension, g Genus) bool {
	set, ok := k.nounDeclensions[d]
	return ok && set[g]
}

// KnownNounDeclensions lists declensions known for at least one gender.
func (k *GrammarKnowledge) KnownNounDeclensions() []NounDeclension {
	var out []NounDeclension
	for _, d := range AllNounDeclensions {
		if _, ok := k.nounDeclensions[d]; ok {
			out = append(out, d)
		}
	}
	return out
}

func (k *GrammarKnowledge) KnowsAdjectiveDeclension(d AdjectiveDeclension) bool {
	return int(d) < len(k.adjectives) && k.adjectives[d]
}

// KnowsPronoun reports whether the pronoun lemma may be drilled. Pronouns
// without a dedicated flag are always allowed.
func (k *GrammarKnowledge) KnowsPronoun(lemma string) bool {
	switch lemma {
	case "hic":
		return k.PronounHic
	case "ille":
		return k.PronounIlle
	case "is":
		return k.PronounIs
	}
	return true
}

// KnowsAnyPronoun reports whether any pronoun flag is set.
func (k *GrammarKnowledge) KnowsAnyPronoun() bool {
	return k.PronounHic || k.PronounIlle || k.PronounIs
}
