package main

import (
	llpsi "github.com/itmo/llpsi-net"
	"github.com/itmo/llpsi-net/game"
)

type errorResponse struct {
	Error string `json:"error"`
}

type wordJSON struct {
	Type      llpsi.WordType `json:"type"`
	Lemma     string         `json:"lemma"`
	Chapter   int            `json:"chapter"`
	Reference string         `json:"reference,omitempty"`
	English   string         `json:"english,omitempty"`
	German    string         `json:"german,omitempty"`
}

func toWordJSON(w llpsi.Word) wordJSON {
	return wordJSON{
		Type:      w.Type(),
		Lemma:     w.Lemma(),
		Chapter:   w.Chapter(),
		Reference: w.Reference(),
		English:   w.English(),
		German:    w.German(),
	}
}

type wordsResponse struct {
	Words []wordJSON `json:"words"`
}

type rowJSON struct {
	Casus   string   `json:"casus"`
	Numerus string   `json:"numerus"`
	Forms   []string `json:"forms"`
}

type tableResponse struct {
	Word   wordJSON  `json:"word"`
	Genera []string  `json:"genera"`
	Rows   []rowJSON `json:"rows"`
	// Noun only.
	Genitive   string `json:"genitive,omitempty"`
	Declension string `json:"declension,omitempty"`
}

func toTableResponse(t *llpsi.InflectionTable) tableResponse {
	resp := tableResponse{Word: toWordJSON(t.Word)}
	for _, g := range t.Genera {
		resp.Genera = append(resp.Genera, g.Code())
	}
	for _, r := range t.Rows {
		resp.Rows = append(resp.Rows, rowJSON{
			Casus:   r.Casus.Abbrev(),
			Numerus: r.Numerus.Abbrev(),
			Forms:   r.Forms,
		})
	}
	return resp
}

type caseJSON struct {
	Casus  string   `json:"casus"`
	Genera []string `json:"genera"`
	Numeri []string `json:"numeri"`
}

type knowledgeResponse struct {
	Chapter                int        `json:"chapter"`
	Cases                  []caseJSON `json:"cases"`
	NounDeclensions        []string   `json:"nounDeclensions"`
	AdjectiveDeclensions   []string   `json:"adjectiveDeclensions"`
	Comparative            bool       `json:"comparative"`
	Superlative            bool       `json:"superlative"`
	AblativePrepositions   bool       `json:"ablativePrepositions"`
	AccusativePrepositions bool       `json:"accusativePrepositions"`
	Pronouns               []string   `json:"pronouns"`
}

func toKnowledgeResponse(k *llpsi.GrammarKnowledge) knowledgeResponse {
	resp := knowledgeResponse{
		Chapter:                k.Chapter(),
		Cases:                  []caseJSON{},
		NounDeclensions:        []string{},
		AdjectiveDeclensions:   []string{},
		Comparative:            k.Comparative,
		Superlative:            k.Superlative,
		AblativePrepositions:   k.AblativePrepositions,
		AccusativePrepositions: k.AccusativePrepositions,
		Pronouns:               []string{},
	}
	for _, c := range k.KnownCases() {
		cj := caseJSON{Casus: c.Abbrev()}
		for _, g := range k.CaseGenera(c) {
			cj.Genera = append(cj.Genera, g.Code())
		}
		for _, n := range k.CaseNumeri(c) {
			cj.Numeri = append(cj.Numeri, n.Abbrev())
		}
		resp.Cases = append(resp.Cases, cj)
	}
	for _, d := range k.KnownNounDeclensions() {
		resp.NounDeclensions = append(resp.NounDeclensions, d.String())
	}
	for _, d := range []llpsi.AdjectiveDeclension{llpsi.AdjectiveAO, llpsi.AdjectiveThird} {
		if k.KnowsAdjectiveDeclension(d) {
			resp.AdjectiveDeclensions = append(resp.AdjectiveDeclensions, d.String())
		}
	}
	if k.KnowsAnyPronoun() {
		for _, p := range []string{"hic", "ille", "is"} {
			if k.KnowsPronoun(p) {
				resp.Pronouns = append(resp.Pronouns, p)
			}
		}
	}
	return resp
}

type analysisJSON struct {
	Lemma       string         `json:"lemma"`
	Type        llpsi.WordType `json:"type"`
	Chapter     int            `json:"chapter"`
	Form        string         `json:"form"`
	Description string         `json:"description"`
	Enclitic    string         `json:"enclitic,omitempty"`
}

func toAnalysesJSON(as []llpsi.Analysis) []analysisJSON {
	out := make([]analysisJSON, 0, len(as))
	for _, a := range as {
		out = append(out, analysisJSON{
			Lemma:       a.Word.Lemma(),
			Type:        a.Word.Type(),
			Chapter:     a.Word.Chapter(),
			Form:        a.Form,
			Description: a.Description(),
			Enclitic:    a.Enclitic,
		})
	}
	return out
}

type lemmatizeWordResponse struct {
	Form     string         `json:"form"`
	Analyses []analysisJSON `json:"analyses"`
}

type lemmatizeTextRequest struct {
	Text string `json:"text" validate:"required"`
	// Chapter is the reader's chapter; 0 means the whole catalog.
	Chapter int `json:"chapter" validate:"gte=0"`
}

type tokenJSON struct {
	Token    string            `json:"token"`
	Status   llpsi.TokenStatus `json:"status"`
	Chapter  int               `json:"chapter,omitempty"`
	Analyses []analysisJSON    `json:"analyses"`
}

type lemmatizeTextResponse struct {
	Tokens         []tokenJSON `json:"tokens"`
	HighestChapter int         `json:"highestChapter"`
}

type challengeRequest struct {
	GrammarChapter int `json:"grammarChapter" validate:"gte=1"`
	VocabChapter   int `json:"vocabChapter" validate:"gte=1"`
}

type declensionChallengeResponse struct {
	Challenge game.DeclensionState `json:"challenge"`
	// Prompt is the cue shown to the player, e.g. "in: īnsula magnus".
	Prompt string `json:"prompt"`
}

type declensionCheckRequest struct {
	Challenge game.DeclensionState `json:"challenge" validate:"required"`
	Response  string               `json:"response"`
}

type flashCardRequest struct {
	challengeRequest
	Case string `json:"case" validate:"required"`
}

type flashCardChallengeResponse struct {
	Challenge game.FlashCardState `json:"challenge"`
	Prompt    string              `json:"prompt"`
}

type flashCardCheckRequest struct {
	Challenge game.FlashCardState `json:"challenge" validate:"required"`
	Response  string              `json:"response"`
}

type checkResponse struct {
	Correct bool   `json:"correct"`
	Answer  string `json:"answer"`
}
