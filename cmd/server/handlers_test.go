package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	llpsi "github.com/itmo/llpsi-net"
	"github.com/itmo/llpsi-net/game"
	"github.com/itmo/llpsi-net/internal/config"
)

const dataDir = "../../data"

func newTestServer(t *testing.T) (*server, http.Handler) {
	t.Helper()
	db, err := llpsi.Open(context.Background(), dataDir)
	require.NoError(t, err)
	s, err := newServer(db)
	require.NoError(t, err)
	return s, s.routes(config.CORSConfig{
		AllowedOrigins: "*",
		AllowedMethods: "GET,POST,OPTIONS",
		AllowedHeaders: "Content-Type",
	})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	s, err := sonic.MarshalString(v)
	require.NoError(t, err)
	return s
}

func TestHealth(t *testing.T) {
	_, h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "ok", body["status"])
}

func TestWords(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/words?type=noun&chapters=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[wordsResponse](t, rec)
	var lemmas []string
	for _, w := range resp.Words {
		assert.Equal(t, llpsi.TypeNoun, w.Type)
		assert.Equal(t, 1, w.Chapter)
		lemmas = append(lemmas, w.Lemma)
	}
	assert.Contains(t, lemmas, "ōceanus")
	assert.Contains(t, lemmas, "nōminātīvus")

	rec = do(t, h, http.MethodGet, "/api/words?chapters=5-6", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeBody[wordsResponse](t, rec)
	types := map[llpsi.WordType]bool{}
	for _, w := range resp.Words {
		assert.Contains(t, []int{5, 6}, w.Chapter)
		types[w.Type] = true
	}
	assert.True(t, types[llpsi.TypePronoun])
	assert.True(t, types[llpsi.TypePreposition])

	tests := []struct {
		name string
		path string
	}{
		{"unknown type", "/api/words?type=particle"},
		{"bad chapters", "/api/words?chapters=x"},
		{"reversed range", "/api/words?chapters=5-3"},
		{"oversized range", "/api/words?chapters=0-50000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, tt.path, "").Code)
		})
	}
}

func TestNounTable(t *testing.T) {
	_, h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/nouns/puella", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[tableResponse](t, rec)
	assert.Equal(t, []string{"f"}, resp.Genera)
	assert.Equal(t, "puellae", resp.Genitive)
	require.Len(t, resp.Rows, 12)

	forms := map[string]string{}
	for _, r := range resp.Rows {
		forms[r.Casus+" "+r.Numerus] = r.Forms[0]
	}
	assert.Equal(t, "puellārum", forms["gen Pl"])
	assert.Equal(t, "puellā", forms["abl Sg"])

	rec = do(t, h, http.MethodGet, "/api/nouns/"+url.PathEscape("ōceanus"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ocean", decodeBody[tableResponse](t, rec).Word.English)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/nouns/xyzzy", "").Code)
}

func TestAdjectiveAndPronounTables(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/adjectives/magnus", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[tableResponse](t, rec)
	assert.Equal(t, []string{"m", "f", "n"}, resp.Genera)
	assert.Equal(t, []string{"magnus", "magna", "magnum"}, resp.Rows[0].Forms)

	rec = do(t, h, http.MethodGet, "/api/pronouns/hic", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeBody[tableResponse](t, rec)
	for _, r := range resp.Rows {
		if r.Casus == "acc" && r.Numerus == "Sg" {
			assert.Equal(t, "hanc", r.Forms[1])
		}
	}

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/adjectives/puella", "").Code)
}

func TestVerb(t *testing.T) {
	_, h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/verbs/"+url.PathEscape("amāre"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[llpsi.VerbConjugation](t, rec)
	assert.Equal(t, []string{"amō", "amāre", "amāvī", "amātum"}, resp.TitleParts)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/verbs/xyzzy", "").Code)
}

func TestKnowledge(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/knowledge/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[knowledgeResponse](t, rec)
	assert.Equal(t, 1, resp.Chapter)
	require.Len(t, resp.Cases, 2)
	assert.Equal(t, "nom", resp.Cases[0].Casus)
	assert.Equal(t, "abl", resp.Cases[1].Casus)
	assert.Equal(t, []string{"Sg"}, resp.Cases[1].Numeri)
	assert.Empty(t, resp.Pronouns)
	assert.False(t, resp.AblativePrepositions)

	resp = decodeBody[knowledgeResponse](t, do(t, h, http.MethodGet, "/api/knowledge/8", ""))
	assert.Contains(t, resp.Pronouns, "hic")
	assert.True(t, resp.AccusativePrepositions)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/knowledge/x", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/knowledge/-1", "").Code)
}

func TestLemmatizeWord(t *testing.T) {
	_, h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/lemmatize?form=puellae", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[lemmatizeWordResponse](t, rec)
	require.Len(t, resp.Analyses, 4)
	for _, a := range resp.Analyses {
		assert.Equal(t, "puella", a.Lemma)
	}

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/lemmatize", "").Code)
}

func TestLemmatizeText(t *testing.T) {
	_, h := newTestServer(t)
	rec := do(t, h, http.MethodPost, "/api/lemmatize/text", `{"text":"Puer rosam videt, xyzzy.","chapter":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[lemmatizeTextResponse](t, rec)
	var statuses []llpsi.TokenStatus
	for _, tok := range resp.Tokens {
		statuses = append(statuses, tok.Status)
	}
	assert.Equal(t, []llpsi.TokenStatus{llpsi.StatusKnown, llpsi.StatusLater, llpsi.StatusLater, llpsi.StatusUnknown}, statuses)
	assert.Equal(t, 4, resp.HighestChapter)

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"text":`},
		{"missing text", `{"chapter":2}`},
		{"negative chapter", `{"text":"puer","chapter":-1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/lemmatize/text", tt.body).Code)
		})
	}
}

func TestDeclensionGameRoundTrip(t *testing.T) {
	s, h := newTestServer(t)
	for range 10 {
		rec := do(t, h, http.MethodPost, "/api/games/declension", `{"grammarChapter":9,"vocabChapter":12}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		created := decodeBody[declensionChallengeResponse](t, rec)
		assert.NotEmpty(t, created.Challenge.ID)
		assert.NotEmpty(t, created.Prompt)

		ch, err := s.declension.Restore(created.Challenge)
		require.NoError(t, err)
		answer, err := ch.Answer()
		require.NoError(t, err)

		body := mustJSON(t, declensionCheckRequest{Challenge: created.Challenge, Response: strings.Join(answer, " ")})
		rec = do(t, h, http.MethodPost, "/api/games/declension/check", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		checked := decodeBody[checkResponse](t, rec)
		assert.True(t, checked.Correct)
		assert.Equal(t, strings.Join(answer, " "), checked.Answer)

		body = mustJSON(t, declensionCheckRequest{Challenge: created.Challenge, Response: "xyzzy"})
		checked = decodeBody[checkResponse](t, do(t, h, http.MethodPost, "/api/games/declension/check", body))
		assert.False(t, checked.Correct)
	}
}

func TestDeclensionGameErrors(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/games/declension", `{"grammarChapter":10,"vocabChapter":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/games/declension", `{"grammarChapter":1,"vocabChapter":1}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	bad := game.DeclensionState{
		Indicator: game.WordRef{Type: llpsi.TypePronoun, Lemma: "quis"},
		Casus:     "nom",
		Numerus:   "Sg",
		Genus:     "f",
		Words:     []game.WordRef{{Type: llpsi.TypeNoun, Lemma: "xyzzy"}},
	}
	rec = do(t, h, http.MethodPost, "/api/games/declension/check", mustJSON(t, declensionCheckRequest{Challenge: bad}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/games/declension/check", `{"challenge":{"casus":"nom"},"response":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	crafted := []game.DeclensionState{
		{
			Indicator: game.WordRef{Type: llpsi.TypePronoun, Lemma: "quis"},
			Casus:     "nom", Numerus: "Sg", Genus: "m",
			Words: []game.WordRef{{Type: llpsi.TypePreposition, Lemma: "in"}},
		},
		{
			Indicator: game.WordRef{Type: llpsi.TypePronoun, Lemma: "quis"},
			Casus:     "nom", Numerus: "Sg", Genus: "m",
			Words: []game.WordRef{{Type: llpsi.TypeNoun, Lemma: "līberī"}},
		},
	}
	for _, st := range crafted {
		rec = do(t, h, http.MethodPost, "/api/games/declension/check", mustJSON(t, declensionCheckRequest{Challenge: st, Response: "x"}))
		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	}
}

func TestFlashCardRoundTrip(t *testing.T) {
	_, h := newTestServer(t)
	rec := do(t, h, http.MethodPost, "/api/games/flashcard", `{"grammarChapter":5,"vocabChapter":5,"case":"Genetīvus"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeBody[flashCardChallengeResponse](t, rec)
	assert.Equal(t, "gen", created.Challenge.Casus)

	body := mustJSON(t, flashCardCheckRequest{Challenge: created.Challenge, Response: "xyzzy"})
	rec = do(t, h, http.MethodPost, "/api/games/flashcard/check", body)
	require.Equal(t, http.StatusOK, rec.Code)
	checked := decodeBody[checkResponse](t, rec)
	assert.False(t, checked.Correct)
	require.NotEmpty(t, checked.Answer)

	body = mustJSON(t, flashCardCheckRequest{Challenge: created.Challenge, Response: checked.Answer})
	checked = decodeBody[checkResponse](t, do(t, h, http.MethodPost, "/api/games/flashcard/check", body))
	assert.True(t, checked.Correct)
}

func TestFlashCardErrors(t *testing.T) {
	_, h := newTestServer(t)
	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"unknown case", "/api/games/flashcard", `{"grammarChapter":5,"vocabChapter":5,"case":"locative"}`, http.StatusBadRequest},
		{"missing case", "/api/games/flashcard", `{"grammarChapter":5,"vocabChapter":5}`, http.StatusBadRequest},
		{"case not taught", "/api/games/flashcard", `{"grammarChapter":1,"vocabChapter":5,"case":"dat"}`, http.StatusUnprocessableEntity},
		{"no such noun", "/api/games/flashcard/check", `{"challenge":{"noun":"xyzzy","casus":"nom","numerus":"Sg"},"response":"x"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, do(t, h, http.MethodPost, tt.path, tt.body).Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	_, h := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/games/declension", nil)
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
