package llpsi

import (
	"fmt"
	"strings"

	"github.com/itmo/llpsi-net/internal/laverb"
)

// Verb is a verb with its conjugation template.
type Verb struct {
	baseWord
	conjugation string
	stemChapter int
}

// NewVerb builds a verb. The template is parsed eagerly so a broken entry
// fails at load time.
func NewVerb(e *Entry) (*Verb, error) {
	if _, err := laverb.ParseTemplate(e.Conjugation); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataIntegrity, err)
	}
	return &Verb{
		baseWord:    newBaseWord(TypeVerb, e.Latin, e),
		conjugation: e.Conjugation,
		stemChapter: e.StemChapter,
	}, nil
}

// Template returns the raw conjugation template.
func (v *Verb) Template() string { return v.conjugation }

// StemChapter is the chapter in which the perfect and supine stems are
// introduced; 0 when they come with the verb.
func (v *Verb) StemChapter() int { return v.stemChapter }

// DeponentType tells how far a verb is deponent.
type DeponentType int

const (
	NotDeponent DeponentType = iota
	Deponent
	SemiDeponent
	OptSemiDeponent
)

func (d DeponentType) String() string {
	switch d {
	case Deponent:
		return "deponent"
	case SemiDeponent:
		return "semi-deponent"
	case OptSemiDeponent:
		return "optionally semi-deponent"
	}
	return "none"
}

// Tense names used as keys of a Mood.
const (
	Present       = "present"
	Imperfect     = "imperfect"
	Future        = "future"
	Perfect       = "perfect"
	Pluperfect    = "pluperfect"
	FuturePerfect = "futurePerfect"
)

var tenseKeys = []struct{ name, key string }{
	{Present, "pres"},
	{Imperfect, "impf"},
	{Future, "futr"},
	{Perfect, "perf"},
	{Pluperfect, "plup"},
	{FuturePerfect, "futp"},
}

// Persons holds the six personal forms of one tense. Alternatives are
// joined with ", ".
type Persons struct {
	S1         string `json:"1s,omitempty"`
	S2         string `json:"2s,omitempty"`
	S3         string `json:"3s,omitempty"`
	P1         string `json:"1p,omitempty"`
	P2         string `json:"2p,omitempty"`
	P3         string `json:"3p,omitempty"`
	Infinitive string `json:"infinitive,omitempty"`
}

func (p Persons) empty() bool { return p == Persons{} }

// Mood maps a tense name to its forms.
type Mood map[string]Persons

// Voice groups the moods of one voice.
type Voice struct {
	Indicative  Mood `json:"indicative,omitempty"`
	Subjunctive Mood `json:"subjunctive,omitempty"`
	Imperative  Mood `json:"imperative,omitempty"`
}

type Gerund struct {
	Genitive   string `json:"genitive,omitempty"`
	Dative     string `json:"dative,omitempty"`
	Accusative string `json:"accusative,omitempty"`
	Ablative   string `json:"ablative,omitempty"`
}

type Supine struct {
	Accusative string `json:"accusative,omitempty"`
	Ablative   string `json:"ablative,omitempty"`
}

type Participles struct {
	PresentActive  string `json:"presentActive,omitempty"`
	PerfectPassive string `json:"perfectPassive,omitempty"`
	FutureActive   string `json:"futureActive,omitempty"`
	FuturePassive  string `json:"futurePassive,omitempty"`
}

// VerbConjugation is the full conjugation of a verb.
type VerbConjugation struct {
	Lemma        string          `json:"lemma"`
	Deponent     DeponentType    `json:"deponent"`
	Conjugation  laverb.ConjType `json:"conjugation"`
	PresentStem  string          `json:"presentStem"`
	PerfectStems []string        `json:"perfectStems,omitempty"`
	SupineStems  []string        `json:"supineStems,omitempty"`
	// TitleParts are the principal parts: first person present,
	// infinitive, perfect, supine.
	TitleParts  []string    `json:"titleParts"`
	Active      Voice       `json:"active"`
	Passive     Voice       `json:"passive"`
	Gerund      Gerund      `json:"gerund"`
	Supine      Supine      `json:"supine"`
	Participles Participles `json:"participles"`
}

// Paradigm conjugates the verb and returns the raw slot map.
func (v *Verb) Paradigm() (*laverb.Paradigm, error) {
	args, err := laverb.ParseTemplate(v.conjugation)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataIntegrity, v.lemma, err)
	}
	p, err := laverb.MakeData(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataIntegrity, v.lemma, err)
	}
	return p, nil
}

// Conjugate returns the structured conjugation.
func (v *Verb) Conjugate() (*VerbConjugation, error) {
	p, err := v.Paradigm()
	if err != nil {
		return nil, err
	}
	c := &VerbConjugation{
		Lemma:        v.lemma,
		Deponent:     deponentType(p.Info),
		Conjugation:  p.Info.ConjType,
		PresentStem:  p.Info.PresStem,
		PerfectStems: p.Info.PerfStems,
		SupineStems:  p.Info.SupineStems,
		Active:       voice(p, "actv"),
		Passive:      voice(p, "pasv"),
		Gerund: Gerund{
			Genitive:   form(p, "ger_gen"),
			Dative:     form(p, "ger_dat"),
			Accusative: form(p, "ger_acc"),
			Ablative:   form(p, "ger_abl"),
		},
		Supine: Supine{
			Accusative: form(p, "sup_acc"),
			Ablative:   form(p, "sup_abl"),
		},
		Participles: Participles{
			PresentActive:  form(p, "pres_actv_ptc"),
			PerfectPassive: form(p, "perf_pasv_ptc"),
			FutureActive:   form(p, "futr_actv_ptc"),
			FuturePassive:  form(p, "futr_pasv_ptc"),
		},
	}
	c.TitleParts = titleParts(p, c.Deponent)
	return c, nil
}

func deponentType(info laverb.Info) DeponentType {
	switch {
	case info.Has(laverb.SubDeponent):
		return Deponent
	case info.Has(laverb.SubSemiDeponent):
		return SemiDeponent
	case info.Has(laverb.SubOptSemiDeponent):
		return OptSemiDeponent
	}
	return NotDeponent
}

func form(p *laverb.Paradigm, key string) string {
	return strings.Join(p.Forms[key], ", ")
}

func voice(p *laverb.Paradigm, v string) Voice {
	out := Voice{
		Indicative:  Mood{},
		Subjunctive: Mood{},
		Imperative:  Mood{},
	}
	for _, t := range tenseKeys {
		for mood, m := range map[string]Mood{"indc": out.Indicative, "subj": out.Subjunctive, "impr": out.Imperative} {
			ps := Persons{
				S1: form(p, laverb.Key("1s", t.key, v, mood)),
				S2: form(p, laverb.Key("2s", t.key, v, mood)),
				S3: form(p, laverb.Key("3s", t.key, v, mood)),
				P1: form(p, laverb.Key("1p", t.key, v, mood)),
				P2: form(p, laverb.Key("2p", t.key, v, mood)),
				P3: form(p, laverb.Key("3p", t.key, v, mood)),
			}
			if mood == "indc" {
				ps.Infinitive = form(p, t.key+"_"+v+"_inf")
			}
			if !ps.empty() {
				m[t.name] = ps
			}
		}
	}
	return out
}

// titleParts never fails: a missing part is named instead.
func titleParts(p *laverb.Paradigm, dep DeponentType) []string {
	first := func(keys ...string) string {
		for _, k := range keys {
			if f := p.Form(k); f != "" {
				return f
			}
		}
		return ""
	}
	parts := []string{
		first("1s_pres_actv_indc", "1s_pres_pasv_indc", "3s_pres_actv_indc", "3s_pres_pasv_indc"),
		first("pres_actv_inf", "pres_pasv_inf"),
	}
	var perfect string
	switch dep {
	case Deponent, SemiDeponent:
		perfect = first("1s_perf_pasv_indc", "3s_perf_pasv_indc")
	default:
		perfect = first("1s_perf_actv_indc", "3s_perf_actv_indc")
	}
	if perfect == "" {
		perfect = "no perfect stem"
	}
	parts = append(parts, perfect)
	if dep != Deponent && dep != SemiDeponent {
		sup := p.Form("sup_acc")
		if sup == "" {
			sup = "no supine stem"
		}
		parts = append(parts, sup)
	}
	return parts
}
