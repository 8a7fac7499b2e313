package llpsi

import (
	"regexp"
	"strings"
	"unicode"
)

// reWord matches a single Latin/Unicode word token.
var reWord = regexp.MustCompile(`[a-zA-ZÀ-ÿ\x{0100}-\x{024F}\x{0300}-\x{036F}]+`)

// rePunct matches sentence-ending punctuation.
var rePunct = regexp.MustCompile(`[.!?;:]`)

// enclitics are suffixes to strip when a form cannot be lemmatized.
var enclitics = []string{"que", "ne", "ve"}

// lemmatize looks form up, trying in turn: the form itself, its lower-case
// variant at the start of a sentence, a capitalized variant for proper
// nouns, and finally the form without an enclitic.
func (l *Lemmatizer) lemmatize(form string, sentenceStart, stripEnclitic bool) []Analysis {
	if form == "" {
		return nil
	}
	key := StripMacrons(form)
	found := append([]Analysis(nil), l.forms[key]...)

	runes := []rune(key)
	if sentenceStart && unicode.IsUpper(runes[0]) {
		lower := strings.ToLower(key)
		if lower != key {
			found = append(found, l.forms[lower]...)
		}
	}
	if len(found) == 0 && unicode.IsLower(runes[0]) {
		runes[0] = unicode.ToUpper(runes[0])
		found = append(found, l.forms[string(runes)]...)
	}

	if len(found) == 0 && stripEnclitic {
		for _, enc := range enclitics {
			stem, ok := strings.CutSuffix(form, enc)
			if !ok || stem == "" {
				continue
			}
			for _, a := range l.lemmatize(stem, sentenceStart, false) {
				a.Enclitic = enc
				found = append(found, a)
			}
			if len(found) > 0 {
				break
			}
		}
	}
	return preferMacrons(form, found)
}

// preferMacrons keeps only the analyses spelled exactly like form when the
// form is written with macrons and at least one analysis matches.
func preferMacrons(form string, found []Analysis) []Analysis {
	if !HasMacrons(form) {
		return found
	}
	want := strings.ToLower(form)
	var exact []Analysis
	for _, a := range found {
		if strings.ToLower(a.Form+a.Enclitic) == want {
			exact = append(exact, a)
		}
	}
	if len(exact) == 0 {
		return found
	}
	return exact
}

// lemmatizeText tokenizes text and lemmatizes each word token.
func (l *Lemmatizer) lemmatizeText(text string) []LemmatizationResult {
	var results []LemmatizationResult
	positions := reWord.FindAllStringIndex(text, -1)
	for ti, pos := range positions {
		token := text[pos[0]:pos[1]]
		debPhr := ti == 0
		if !debPhr {
			before := text[positions[ti-1][1]:pos[0]]
			debPhr = rePunct.MatchString(before)
		}
		results = append(results, LemmatizationResult{
			Token:         token,
			SentenceStart: debPhr,
			Analyses:      l.lemmatize(token, debPhr, true),
		})
	}
	return results
}

// TokenStatus classifies a token of a checked text.
type TokenStatus string

const (
	// StatusKnown marks a word introduced up to the reader's chapter.
	StatusKnown TokenStatus = "known"
	// StatusLater marks a catalog word from a later chapter.
	StatusLater TokenStatus = "later"
	// StatusUnknown marks a form the catalog cannot produce.
	StatusUnknown TokenStatus = "unknown"
)

// CheckedToken is one token of a checked text.
type CheckedToken struct {
	Token  string
	Status TokenStatus
	// Chapter is the earliest chapter among the analyses; 0 when unknown.
	Chapter  int
	Analyses []Analysis
}

// TextCheck is the result of CheckText.
type TextCheck struct {
	Tokens []CheckedToken
	// HighestChapter is the chapter a reader needs to know every
	// recognised word of the text.
	HighestChapter int
}

// CheckText lemmatizes text and classifies each token against chapter.
func (l *Lemmatizer) CheckText(text string, chapter int) *TextCheck {
	tc := &TextCheck{}
	for _, r := range l.lemmatizeText(text) {
		ct := CheckedToken{Token: r.Token, Status: StatusUnknown, Analyses: r.Analyses}
		if len(r.Analyses) > 0 {
			ct.Chapter = r.Analyses[0].Word.Chapter()
			for _, a := range r.Analyses[1:] {
				ct.Chapter = min(ct.Chapter, a.Word.Chapter())
			}
			ct.Status = StatusKnown
			if ct.Chapter > chapter {
				ct.Status = StatusLater
			}
			tc.HighestChapter = max(tc.HighestChapter, ct.Chapter)
		}
		tc.Tokens = append(tc.Tokens, ct)
	}
	return tc
}

// HighestChapter returns the chapter a reader needs for every recognised
// word of text.
func (l *Lemmatizer) HighestChapter(text string) int {
	return l.CheckText(text, 0).HighestChapter
}
