package laverb

import (
	"fmt"
	"strings"
)

// irregularVerb is the present system of an irregular verb plus its
// perfect and supine stems. Compounds reuse it with a prefix.
type irregularVerb struct {
	lemma   string
	presInf string
	pres    [6]string
	impf    [6]string
	futr    [6]string
	subj    [6]string
	impfSub [6]string
	imprPr  [2]string
	imprFu  [4]string
	presPtc string
	gerund  string
	perf    string
	supine  string
	// extra holds slots outside the regular shape (futūrus, ītur).
	extra map[string]string
}

var irregularVerbs = []*irregularVerb{
	{
		lemma:   "possum",
		presInf: "posse",
		pres:    [6]string{"possum", "potes", "potest", "possumus", "potestis", "possunt"},
		impf:    [6]string{"poteram", "poterās", "poterat", "poterāmus", "poterātis", "poterant"},
		futr:    [6]string{"poterō", "poteris", "poterit", "poterimus", "poteritis", "poterunt"},
		subj:    [6]string{"possim", "possīs", "possit", "possīmus", "possītis", "possint"},
		impfSub: [6]string{"possem", "possēs", "posset", "possēmus", "possētis", "possent"},
		presPtc: "potēns",
		perf:    "potu",
	},
	{
		lemma:   "sum",
		presInf: "esse",
		pres:    [6]string{"sum", "es", "est", "sumus", "estis", "sunt"},
		impf:    [6]string{"eram", "erās", "erat", "erāmus", "erātis", "erant"},
		futr:    [6]string{"erō", "eris", "erit", "erimus", "eritis", "erunt"},
		subj:    [6]string{"sim", "sīs", "sit", "sīmus", "sītis", "sint"},
		impfSub: [6]string{"essem", "essēs", "esset", "essēmus", "essētis", "essent"},
		imprPr:  [2]string{"es", "este"},
		imprFu:  [4]string{"estō", "estō", "estōte", "suntō"},
		perf:    "fu",
		extra: map[string]string{
			"futr_actv_ptc": "futūrus",
			"futr_actv_inf": "futūrum esse",
		},
	},
	{
		lemma:   "volō",
		presInf: "velle",
		pres:    [6]string{"volō", "vīs", "vult", "volumus", "vultis", "volunt"},
		impf:    [6]string{"volēbam", "volēbās", "volēbat", "volēbāmus", "volēbātis", "volēbant"},
		futr:    [6]string{"volam", "volēs", "volet", "volēmus", "volētis", "volent"},
		subj:    [6]string{"velim", "velīs", "velit", "velīmus", "velītis", "velint"},
		impfSub: [6]string{"vellem", "vellēs", "vellet", "vellēmus", "vellētis", "vellent"},
		presPtc: "volēns",
		gerund:  "volend",
		perf:    "volu",
	},
	{
		lemma:   "eō",
		presInf: "īre",
		pres:    [6]string{"eō", "īs", "it", "īmus", "ītis", "eunt"},
		impf:    [6]string{"ībam", "ībās", "ībat", "ībāmus", "ībātis", "ībant"},
		futr:    [6]string{"ībō", "ībis", "ībit", "ībimus", "ībitis", "ībunt"},
		subj:    [6]string{"eam", "eās", "eat", "eāmus", "eātis", "eant"},
		impfSub: [6]string{"īrem", "īrēs", "īret", "īrēmus", "īrētis", "īrent"},
		imprPr:  [2]string{"ī", "īte"},
		imprFu:  [4]string{"ītō", "ītō", "ītōte", "euntō"},
		presPtc: "iēns",
		gerund:  "eund",
		perf:    "i",
		supine:  "it",
		extra: map[string]string{
			"3s_pres_pasv_indc": "ītur",
			"pres_pasv_inf":     "īrī",
		},
	},
}

// irregularData conjugates sum, possum, volō, eō and their compounds.
// Longer lemmas are tried first so possum is not read as pos+sum.
func irregularData(lemma string) (*Paradigm, error) {
	for _, v := range irregularVerbs {
		prefix, ok := strings.CutSuffix(lemma, v.lemma)
		if !ok {
			continue
		}
		return v.conjugate(prefix, lemma), nil
	}
	return nil, fmt.Errorf("%w: unknown irregular verb %s", ErrBadTemplate, lemma)
}

func (v *irregularVerb) conjugate(prefix, lemma string) *Paradigm {
	p := &Paradigm{
		Info: Info{
			Lemma:    lemma,
			ConjType: Irregular,
			Subtypes: make(map[string]bool),
			PresStem: prefix + strings.TrimSuffix(v.presInf, "re"),
		},
		Forms: make(map[string][]string),
	}
	p.row("pres", "actv", "indc", prefix, v.pres)
	p.row("impf", "actv", "indc", prefix, v.impf)
	p.row("futr", "actv", "indc", prefix, v.futr)
	p.row("pres", "actv", "subj", prefix, v.subj)
	p.row("impf", "actv", "subj", prefix, v.impfSub)
	if v.imprPr[0] != "" {
		p.add(Key("2s", "pres", "actv", "impr"), prefix+v.imprPr[0])
		p.add(Key("2p", "pres", "actv", "impr"), prefix+v.imprPr[1])
		for i, person := range []string{"2s", "3s", "2p", "3p"} {
			p.add(Key(person, "futr", "actv", "impr"), prefix+v.imprFu[i])
		}
	}
	p.add("pres_actv_inf", prefix+v.presInf)
	if v.presPtc != "" {
		p.add("pres_actv_ptc", prefix+v.presPtc)
	}
	if v.gerund != "" {
		p.add("ger_nom", prefix+v.presInf)
		p.add("ger_gen", prefix+v.gerund+"ī")
		p.add("ger_dat", prefix+v.gerund+"ō")
		p.add("ger_acc", prefix+v.gerund+"um")
		p.add("ger_abl", prefix+v.gerund+"ō")
	}
	if v.perf != "" {
		st := prefix + v.perf
		p.Info.PerfStems = []string{st}
		p.perfectActive(st)
	}
	if v.supine != "" {
		st := prefix + v.supine
		p.Info.SupineStems = []string{st}
		p.add("sup_acc", st+"um")
		p.add("sup_abl", st+"ū")
		p.add("futr_actv_ptc", st+"ūrus")
		p.add("futr_actv_inf", st+"ūrum esse")
	}
	for key, form := range v.extra {
		p.add(key, prefix+form)
	}
	return p
}
