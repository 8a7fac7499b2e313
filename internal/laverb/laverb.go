// Package laverb conjugates Latin verbs from a conjugation template. It
// produces the full paradigm as a flat map of slot keys such as
// "3s_pres_actv_indc" to forms.
package laverb

import (
	"errors"
	"fmt"
	"strings"
)

// ConjType is the conjugation class.
type ConjType string

const (
	First     ConjType = "1st"
	Second    ConjType = "2nd"
	Third     ConjType = "3rd"
	ThirdIO   ConjType = "3rd-io"
	Fourth    ConjType = "4th"
	Irregular ConjType = "irreg"
)

// Subtypes recognised after the conjugation type ("2.depon").
const (
	SubDeponent        = "depon"
	SubSemiDeponent    = "semidepon"
	SubOptSemiDeponent = "optsemidepon"
	SubNoPassive       = "nopass"
	SubImpersonal      = "impers"
)

// ErrBadTemplate is returned for templates MakeData cannot conjugate.
var ErrBadTemplate = errors.New("bad conjugation template")

// Persons are the six person/number keys in paradigm order.
var Persons = [6]string{"1s", "2s", "3s", "1p", "2p", "3p"}

// Info summarises the verb.
type Info struct {
	Lemma       string
	ConjType    ConjType
	Subtypes    map[string]bool
	PresStem    string
	PerfStems   []string
	SupineStems []string
}

// Has reports whether subtype s is set.
func (i Info) Has(s string) bool { return i.Subtypes[s] }

// Paradigm is a conjugated verb.
type Paradigm struct {
	Info  Info
	Forms map[string][]string
}

// Form returns the first form of slot key, or "".
func (p *Paradigm) Form(key string) string {
	if forms := p.Forms[key]; len(forms) > 0 {
		return forms[0]
	}
	return ""
}

// Key builds a finite slot key, e.g. Key("3s", "pres", "actv", "indc").
func Key(person, tense, voice, mood string) string {
	return person + "_" + tense + "_" + voice + "_" + mood
}

// MakeData conjugates the verb described by args.
func MakeData(args Args) (*Paradigm, error) {
	typ, subs := splitType(args.Positional(1))
	lemma := args.Positional(2)
	if lemma == "" {
		return nil, fmt.Errorf("%w: missing lemma", ErrBadTemplate)
	}

	var (
		p   *Paradigm
		err error
	)
	if typ == "irreg" {
		p, err = irregularData(lemma)
	} else {
		p, err = regularData(typ, lemma, subs, args)
	}
	if err != nil {
		return nil, err
	}
	for s := range subs {
		p.Info.Subtypes[s] = true
	}
	if p.Info.Has(SubImpersonal) {
		p.keepImpersonal()
	}
	p.applyOverrides(args)
	p.affix(args["prefix"], args["suffix"])
	return p, nil
}

func splitType(s string) (string, map[string]bool) {
	parts := strings.Split(s, ".")
	subs := make(map[string]bool, len(parts)-1)
	for _, sub := range parts[1:] {
		if sub != "" {
			subs[sub] = true
		}
	}
	return parts[0], subs
}

// regularData conjugates a verb of the four regular conjugations.
func regularData(typ, lemma string, subs map[string]bool, args Args) (*Paradigm, error) {
	deponent := subs[SubDeponent]
	auto := strings.HasSuffix(typ, "+")
	typ = strings.TrimSuffix(typ, "+")

	conj, base, err := parseLemma(typ, lemma, deponent)
	if err != nil {
		return nil, err
	}

	var perf, sup []string
	if deponent || subs[SubSemiDeponent] {
		sup = stems(args.Positional(3))
	} else {
		perf = stems(args.Positional(3))
		sup = stems(args.Positional(4))
	}
	if auto {
		long := presentStemVowel[conj]
		if len(perf) == 0 && !deponent && !subs[SubSemiDeponent] {
			perf = []string{base + long + "v"}
		}
		if len(sup) == 0 {
			sup = []string{base + long + "t"}
		}
	}

	p := &Paradigm{
		Info: Info{
			Lemma:       lemma,
			ConjType:    conj,
			Subtypes:    make(map[string]bool),
			PresStem:    base + presentStemVowel[conj],
			PerfStems:   perf,
			SupineStems: sup,
		},
		Forms: make(map[string][]string),
	}
	e := endingsByConj[conj]
	active := !deponent
	passive := !subs[SubNoPassive] && !subs[SubSemiDeponent]

	if active {
		p.presentActive(base, e)
	}
	if passive {
		p.presentPassive(base, e)
	}
	p.nonFinite(base, e, active)

	if active && !subs[SubSemiDeponent] {
		for _, st := range perf {
			p.perfectActive(st)
		}
	}
	for _, st := range sup {
		p.supine(st)
		if passive || deponent || subs[SubSemiDeponent] {
			p.perfectPassive(st)
		}
	}
	if subs[SubOptSemiDeponent] {
		for _, st := range perf {
			p.perfectActive(st)
		}
	}
	return p, nil
}

// parseLemma splits the first principal part into conjugation and base.
func parseLemma(typ, lemma string, deponent bool) (ConjType, string, error) {
	type ending struct {
		conj   ConjType
		active string
		depon  string
	}
	var candidates []ending
	switch typ {
	case "1":
		candidates = []ending{{First, "ō", "or"}}
	case "2":
		candidates = []ending{{Second, "eō", "eor"}}
	case "3":
		candidates = []ending{{ThirdIO, "iō", "ior"}, {Third, "ō", "or"}}
	case "4":
		candidates = []ending{{Fourth, "iō", "ior"}}
	default:
		return "", "", fmt.Errorf("%w: conjugation type %q", ErrBadTemplate, typ)
	}
	for _, c := range candidates {
		suffix := c.active
		if deponent {
			suffix = c.depon
		}
		if base, ok := strings.CutSuffix(lemma, suffix); ok && base != "" {
			return c.conj, base, nil
		}
	}
	return "", "", fmt.Errorf("%w: %s does not fit conjugation %s", ErrBadTemplate, lemma, typ)
}

func stems(arg string) []string {
	if arg == "" || arg == "-" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(arg, "/") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (p *Paradigm) add(key string, forms ...string) {
	for _, f := range forms {
		if f == "" {
			continue
		}
		p.Forms[key] = append(p.Forms[key], f)
	}
}

func (p *Paradigm) row(tense, voice, mood, prefix string, row [6]string) {
	for i, person := range Persons {
		p.add(Key(person, tense, voice, mood), prefix+row[i])
	}
}

func (p *Paradigm) presentActive(base string, e *endings) {
	p.row("pres", "actv", "indc", base, e.presIndc)
	p.row("impf", "actv", "indc", base+e.impfVowel, impfActv)
	p.row("futr", "actv", "indc", base, e.futrIndc)
	p.row("pres", "actv", "subj", base, e.presSubj)
	p.row("impf", "actv", "subj", base+e.infStem, subjActv)
	p.add(Key("2s", "pres", "actv", "impr"), base+e.imprPres[0])
	p.add(Key("2p", "pres", "actv", "impr"), base+e.imprPres[1])
	for i, person := range []string{"2s", "3s", "2p", "3p"} {
		p.add(Key(person, "futr", "actv", "impr"), base+e.imprFutr[i])
	}
	p.add("pres_actv_inf", base+e.presInf)
}

func (p *Paradigm) presentPassive(base string, e *endings) {
	p.row("pres", "pasv", "indc", base, e.presIndcPasv)
	p.row("impf", "pasv", "indc", base+e.impfVowel, impfPasv)
	p.row("futr", "pasv", "indc", base, e.futrIndcPasv)
	p.row("pres", "pasv", "subj", base, e.presSubjPasv)
	p.row("impf", "pasv", "subj", base+e.infStem, subjPasv)
	p.add(Key("2s", "pres", "pasv", "impr"), base+e.imprPresPasv[0])
	p.add(Key("2p", "pres", "pasv", "impr"), base+e.imprPresPasv[1])
	for i, person := range []string{"2s", "3s", "3p"} {
		p.add(Key(person, "futr", "pasv", "impr"), base+e.imprFutrPasv[i])
	}
	p.add("pres_pasv_inf", base+e.presPasvInf)
}

// nonFinite adds participles and gerund built on the present stem.
func (p *Paradigm) nonFinite(base string, e *endings, active bool) {
	p.add("pres_actv_ptc", base+e.presPtc)
	ger := base + e.gerund
	inf := base + e.presInf
	if !active {
		inf = base + e.presPasvInf
	}
	p.add("ger_nom", inf)
	p.add("ger_gen", ger+"ī")
	p.add("ger_dat", ger+"ō")
	p.add("ger_acc", ger+"um")
	p.add("ger_abl", ger+"ō")
	p.add("futr_pasv_ptc", ger+"us")
}

func (p *Paradigm) perfectActive(stem string) {
	p.row("perf", "actv", "indc", stem, perfIndc)
	p.row("plup", "actv", "indc", stem, plupIndc)
	p.row("futp", "actv", "indc", stem, futpIndc)
	p.row("perf", "actv", "subj", stem, perfSubj)
	p.row("plup", "actv", "subj", stem, plupSubj)
	p.add("perf_actv_inf", stem+"isse")
}

func (p *Paradigm) supine(stem string) {
	p.add("sup_acc", stem+"um")
	p.add("sup_abl", stem+"ū")
	p.add("futr_actv_ptc", stem+"ūrus")
	p.add("futr_actv_inf", stem+"ūrum esse")
	p.add("perf_pasv_ptc", stem+"us")
}

// perfectPassive adds the periphrastic perfect system (amātus sum).
func (p *Paradigm) perfectPassive(stem string) {
	periphrastic := func(tense, mood string, aux [6]string) {
		for i, person := range Persons {
			ptc := stem + "us"
			if i >= 3 {
				ptc = stem + "ī"
			}
			p.add(Key(person, tense, "pasv", mood), ptc+" "+aux[i])
		}
	}
	periphrastic("perf", "indc", sumPerf)
	periphrastic("plup", "indc", sumPlup)
	periphrastic("futp", "indc", sumFutp)
	periphrastic("perf", "subj", sumPerfSubj)
	periphrastic("plup", "subj", sumPlupSubj)
	p.add("perf_pasv_inf", stem+"um esse")
	p.add("futr_pasv_inf", stem+"um īrī")
}

// keepImpersonal drops every finite form that is not third person singular.
func (p *Paradigm) keepImpersonal() {
	for key := range p.Forms {
		if len(key) > 3 && key[2] == '_' && !strings.HasPrefix(key, "3s_") {
			delete(p.Forms, key)
		}
	}
}

// applyOverrides replaces slots named in args, e.g. 2s_pres_actv_impr=dūc.
// An empty value or "-" removes the slot.
func (p *Paradigm) applyOverrides(args Args) {
	for key, value := range args {
		if !strings.Contains(key, "_") {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" || value == "-" {
			delete(p.Forms, key)
			continue
		}
		p.Forms[key] = stems(value)
	}
}

// affix wraps every form for multi-word verbs such as "necesse esse".
func (p *Paradigm) affix(prefix, suffix string) {
	if prefix == "" && suffix == "" {
		return
	}
	for key, forms := range p.Forms {
		for i := range forms {
			forms[i] = prefix + forms[i] + suffix
		}
		p.Forms[key] = forms
	}
	p.Info.Lemma = prefix + p.Info.Lemma + suffix
}
