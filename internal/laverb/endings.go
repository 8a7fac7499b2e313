package laverb

// endings of the present system of one regular conjugation. Rows of six
// run 1s 2s 3s 1p 2p 3p.
type endings struct {
	presIndc     [6]string
	presIndcPasv [6]string
	presSubj     [6]string
	presSubjPasv [6]string
	futrIndc     [6]string
	futrIndcPasv [6]string
	// impfVowel precedes -bam/-bar.
	impfVowel string
	// infStem precedes the imperfect subjunctive endings (amār-em).
	infStem     string
	presInf     string
	presPasvInf string
	// imprPres is 2s, 2p; imprFutr 2s, 3s, 2p, 3p.
	imprPres     [2]string
	imprFutr     [4]string
	imprPresPasv [2]string
	// imprFutrPasv is 2s, 3s, 3p.
	imprFutrPasv [3]string
	presPtc      string
	// gerund is the stem of gerund and gerundive (am-and-ī).
	gerund string
}

var (
	impfActv = [6]string{"bam", "bās", "bat", "bāmus", "bātis", "bant"}
	impfPasv = [6]string{"bar", "bāris", "bātur", "bāmur", "bāminī", "bantur"}
	subjActv = [6]string{"em", "ēs", "et", "ēmus", "ētis", "ent"}
	subjPasv = [6]string{"er", "ēris", "ētur", "ēmur", "ēminī", "entur"}

	perfIndc = [6]string{"ī", "istī", "it", "imus", "istis", "ērunt"}
	plupIndc = [6]string{"eram", "erās", "erat", "erāmus", "erātis", "erant"}
	futpIndc = [6]string{"erō", "eris", "erit", "erimus", "eritis", "erint"}
	perfSubj = [6]string{"erim", "erīs", "erit", "erīmus", "erītis", "erint"}
	plupSubj = [6]string{"issem", "issēs", "isset", "issēmus", "issētis", "issent"}

	// forms of sum used by the periphrastic passive perfect system.
	sumPerf     = [6]string{"sum", "es", "est", "sumus", "estis", "sunt"}
	sumPlup     = [6]string{"eram", "erās", "erat", "erāmus", "erātis", "erant"}
	sumFutp     = [6]string{"erō", "eris", "erit", "erimus", "eritis", "erunt"}
	sumPerfSubj = [6]string{"sim", "sīs", "sit", "sīmus", "sītis", "sint"}
	sumPlupSubj = [6]string{"essem", "essēs", "esset", "essēmus", "essētis", "essent"}
)

var endingsByConj = map[ConjType]*endings{
	First: {
		presIndc:     [6]string{"ō", "ās", "at", "āmus", "ātis", "ant"},
		presIndcPasv: [6]string{"or", "āris", "ātur", "āmur", "āminī", "antur"},
		presSubj:     [6]string{"em", "ēs", "et", "ēmus", "ētis", "ent"},
		presSubjPasv: [6]string{"er", "ēris", "ētur", "ēmur", "ēminī", "entur"},
		futrIndc:     [6]string{"ābō", "ābis", "ābit", "ābimus", "ābitis", "ābunt"},
		futrIndcPasv: [6]string{"ābor", "āberis", "ābitur", "ābimur", "ābiminī", "ābuntur"},
		impfVowel:    "ā",
		infStem:      "ār",
		presInf:      "āre",
		presPasvInf:  "ārī",
		imprPres:     [2]string{"ā", "āte"},
		imprFutr:     [4]string{"ātō", "ātō", "ātōte", "antō"},
		imprPresPasv: [2]string{"āre", "āminī"},
		imprFutrPasv: [3]string{"ātor", "ātor", "antor"},
		presPtc:      "āns",
		gerund:       "and",
	},
	Second: {
		presIndc:     [6]string{"eō", "ēs", "et", "ēmus", "ētis", "ent"},
		presIndcPasv: [6]string{"eor", "ēris", "ētur", "ēmur", "ēminī", "entur"},
		presSubj:     [6]string{"eam", "eās", "eat", "eāmus", "eātis", "eant"},
		presSubjPasv: [6]string{"ear", "eāris", "eātur", "eāmur", "eāminī", "eantur"},
		futrIndc:     [6]string{"ēbō", "ēbis", "ēbit", "ēbimus", "ēbitis", "ēbunt"},
		futrIndcPasv: [6]string{"ēbor", "ēberis", "ēbitur", "ēbimur", "ēbiminī", "ēbuntur"},
		impfVowel:    "ē",
		infStem:      "ēr",
		presInf:      "ēre",
		presPasvInf:  "ērī",
		imprPres:     [2]string{"ē", "ēte"},
		imprFutr:     [4]string{"ētō", "ētō", "ētōte", "entō"},
		imprPresPasv: [2]string{"ēre", "ēminī"},
		imprFutrPasv: [3]string{"ētor", "ētor", "entor"},
		presPtc:      "ēns",
		gerund:       "end",
	},
	Third: {
		presIndc:     [6]string{"ō", "is", "it", "imus", "itis", "unt"},
		presIndcPasv: [6]string{"or", "eris", "itur", "imur", "iminī", "untur"},
		presSubj:     [6]string{"am", "ās", "at", "āmus", "ātis", "ant"},
		presSubjPasv: [6]string{"ar", "āris", "ātur", "āmur", "āminī", "antur"},
		futrIndc:     [6]string{"am", "ēs", "et", "ēmus", "ētis", "ent"},
		futrIndcPasv: [6]string{"ar", "ēris", "ētur", "ēmur", "ēminī", "entur"},
		impfVowel:    "ē",
		infStem:      "er",
		presInf:      "ere",
		presPasvInf:  "ī",
		imprPres:     [2]string{"e", "ite"},
		imprFutr:     [4]string{"itō", "itō", "itōte", "untō"},
		imprPresPasv: [2]string{"ere", "iminī"},
		imprFutrPasv: [3]string{"itor", "itor", "untor"},
		presPtc:      "ēns",
		gerund:       "end",
	},
	ThirdIO: {
		presIndc:     [6]string{"iō", "is", "it", "imus", "itis", "iunt"},
		presIndcPasv: [6]string{"ior", "eris", "itur", "imur", "iminī", "iuntur"},
		presSubj:     [6]string{"iam", "iās", "iat", "iāmus", "iātis", "iant"},
		presSubjPasv: [6]string{"iar", "iāris", "iātur", "iāmur", "iāminī", "iantur"},
		futrIndc:     [6]string{"iam", "iēs", "iet", "iēmus", "iētis", "ient"},
		futrIndcPasv: [6]string{"iar", "iēris", "iētur", "iēmur", "iēminī", "ientur"},
		impfVowel:    "iē",
		infStem:      "er",
		presInf:      "ere",
		presPasvInf:  "ī",
		imprPres:     [2]string{"e", "ite"},
		imprFutr:     [4]string{"itō", "itō", "itōte", "iuntō"},
		imprPresPasv: [2]string{"ere", "iminī"},
		imprFutrPasv: [3]string{"itor", "itor", "iuntor"},
		presPtc:      "iēns",
		gerund:       "iend",
	},
	Fourth: {
		presIndc:     [6]string{"iō", "īs", "it", "īmus", "ītis", "iunt"},
		presIndcPasv: [6]string{"ior", "īris", "ītur", "īmur", "īminī", "iuntur"},
		presSubj:     [6]string{"iam", "iās", "iat", "iāmus", "iātis", "iant"},
		presSubjPasv: [6]string{"iar", "iāris", "iātur", "iāmur", "iāminī", "iantur"},
		futrIndc:     [6]string{"iam", "iēs", "iet", "iēmus", "iētis", "ient"},
		futrIndcPasv: [6]string{"iar", "iēris", "iētur", "iēmur", "iēminī", "ientur"},
		impfVowel:    "iē",
		infStem:      "īr",
		presInf:      "īre",
		presPasvInf:  "īrī",
		imprPres:     [2]string{"ī", "īte"},
		imprFutr:     [4]string{"ītō", "ītō", "ītōte", "iuntō"},
		imprPresPasv: [2]string{"īre", "īminī"},
		imprFutrPasv: [3]string{"ītor", "ītor", "iuntor"},
		presPtc:      "iēns",
		gerund:       "iend",
	},
}

// presentStemVowel gives the stem vowel shown as the present stem.
var presentStemVowel = map[ConjType]string{
	First:   "ā",
	Second:  "ē",
	Third:   "",
	ThirdIO: "i",
	Fourth:  "ī",
}
