package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	llpsi "github.com/itmo/llpsi-net"
	"github.com/itmo/llpsi-net/game"
)

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	words := 0
	for _, t := range llpsi.WordTypes {
		words += len(s.db.Words(t))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"words":       words,
		"forms":       s.lemmatizer.Size(),
		"max_chapter": s.db.MaxChapter(),
	})
}

// GET /api/words?type=noun&chapters=1-3,5
func (s *server) handleWords(w http.ResponseWriter, r *http.Request) {
	types := llpsi.WordTypes
	if t := r.URL.Query().Get("type"); t != "" {
		wt := llpsi.WordType(t)
		if !wt.IsValid() {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown word type %q", t))
			return
		}
		types = []llpsi.WordType{wt}
	}

	var chapters map[int]bool
	if c := r.URL.Query().Get("chapters"); c != "" {
		list, err := llpsi.ParseChapters(c)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		chapters = make(map[int]bool, len(list))
		for _, n := range list {
			chapters[n] = true
		}
	}

	resp := wordsResponse{Words: []wordJSON{}}
	for _, t := range types {
		for _, word := range s.db.Words(t) {
			if chapters == nil || chapters[word.Chapter()] {
				resp.Words = append(resp.Words, toWordJSON(word))
			}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleNoun(w http.ResponseWriter, r *http.Request) {
	n, err := s.db.Noun(chi.URLParam(r, "lemma"))
	if err != nil {
		writeErr(w, err)
		return
	}
	table, err := llpsi.DeclensionTable(n)
	if err != nil {
		writeErr(w, err)
		return
	}
	resp := toTableResponse(table)
	resp.Genitive = n.Genitive()
	resp.Declension = n.Declension().String()
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleAdjective(w http.ResponseWriter, r *http.Request) {
	a, err := s.db.Adjective(chi.URLParam(r, "lemma"))
	if err != nil {
		writeErr(w, err)
		return
	}
	s.writeTable(w, a)
}

func (s *server) handlePronoun(w http.ResponseWriter, r *http.Request) {
	p, err := s.db.Pronoun(chi.URLParam(r, "lemma"))
	if err != nil {
		writeErr(w, err)
		return
	}
	s.writeTable(w, p)
}

func (s *server) writeTable(w http.ResponseWriter, word llpsi.Word) {
	table, err := llpsi.DeclensionTable(word)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTableResponse(table))
}

func (s *server) handleVerb(w http.ResponseWriter, r *http.Request) {
	v, err := s.db.Verb(chi.URLParam(r, "lemma"))
	if err != nil {
		writeErr(w, err)
		return
	}
	conj, err := v.Conjugate()
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conj)
}

func (s *server) handleKnowledge(w http.ResponseWriter, r *http.Request) {
	chapter, err := strconv.Atoi(chi.URLParam(r, "chapter"))
	if err != nil || chapter < 0 {
		writeError(w, http.StatusBadRequest, "chapter must be a non-negative integer")
		return
	}
	writeJSON(w, http.StatusOK, toKnowledgeResponse(llpsi.KnowledgeAt(chapter)))
}

// GET /api/lemmatize?form=<word>[&sentence_start=true]
func (s *server) handleLemmatizeWord(w http.ResponseWriter, r *http.Request) {
	form := strings.TrimSpace(r.URL.Query().Get("form"))
	if form == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter: form")
		return
	}
	sentenceStart, _ := strconv.ParseBool(r.URL.Query().Get("sentence_start"))
	writeJSON(w, http.StatusOK, lemmatizeWordResponse{
		Form:     form,
		Analyses: toAnalysesJSON(s.lemmatizer.LemmatizeWord(form, sentenceStart)),
	})
}

func (s *server) handleLemmatizeText(w http.ResponseWriter, r *http.Request) {
	var req lemmatizeTextRequest
	if !s.decode(w, r, &req) {
		return
	}
	chapter := req.Chapter
	if chapter == 0 {
		chapter = s.db.MaxChapter()
	}
	tc := s.lemmatizer.CheckText(req.Text, chapter)
	resp := lemmatizeTextResponse{Tokens: []tokenJSON{}, HighestChapter: tc.HighestChapter}
	for _, t := range tc.Tokens {
		resp.Tokens = append(resp.Tokens, tokenJSON{
			Token:    t.Token,
			Status:   t.Status,
			Chapter:  t.Chapter,
			Analyses: toAnalysesJSON(t.Analyses),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (req challengeRequest) options() game.Options {
	return game.Options{
		Knowledge:    llpsi.KnowledgeAt(req.GrammarChapter),
		VocabChapter: req.VocabChapter,
		Rand:         requestRand(),
	}
}

func (s *server) handleDeclensionChallenge(w http.ResponseWriter, r *http.Request) {
	var req challengeRequest
	if !s.decode(w, r, &req) {
		return
	}
	ch, err := s.declension.CreateChallenge(req.options())
	if err != nil {
		writeErr(w, err)
		return
	}
	lemmas := make([]string, len(ch.Words))
	for i, word := range ch.Words {
		lemmas[i] = word.Lemma()
	}
	writeJSON(w, http.StatusOK, declensionChallengeResponse{
		Challenge: ch.State(),
		Prompt:    ch.Indicator.Lemma() + ": " + strings.Join(lemmas, " "),
	})
}

func (s *server) handleDeclensionCheck(w http.ResponseWriter, r *http.Request) {
	var req declensionCheckRequest
	if !s.decode(w, r, &req) {
		return
	}
	ch, err := s.declension.Restore(req.Challenge)
	if err != nil {
		writeErr(w, err)
		return
	}
	answer, err := ch.Answer()
	if err != nil {
		writeErr(w, err)
		return
	}
	ok, err := s.declension.Check(ch, req.Response)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checkResponse{Correct: ok, Answer: strings.Join(answer, " ")})
}

func (s *server) handleFlashCardChallenge(w http.ResponseWriter, r *http.Request) {
	var req flashCardRequest
	if !s.decode(w, r, &req) {
		return
	}
	c, err := llpsi.ParseCasus(req.Case)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ch, err := s.flashcards.CreateChallenge(req.options(), c)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flashCardChallengeResponse{
		Challenge: ch.State(),
		Prompt:    fmt.Sprintf("%s, %s (%s %s)", ch.Noun.Lemma(), ch.Noun.Genitive(), ch.Casus.Abbrev(), ch.Numerus.Abbrev()),
	})
}

func (s *server) handleFlashCardCheck(w http.ResponseWriter, r *http.Request) {
	var req flashCardCheckRequest
	if !s.decode(w, r, &req) {
		return
	}
	ch, err := s.flashcards.Restore(req.Challenge)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checkResponse{
		Correct: s.flashcards.Check(ch, req.Response),
		Answer:  ch.Answer,
	})
}
