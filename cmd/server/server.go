package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	llpsi "github.com/itmo/llpsi-net"
	"github.com/itmo/llpsi-net/game"
	"github.com/itmo/llpsi-net/internal/config"
)

const maxBodyBytes = 64 << 10

type server struct {
	db         *llpsi.WordDB
	lemmatizer *llpsi.Lemmatizer
	declension *game.DeclensionGame
	flashcards *game.FlashCardGame
	validate   *validator.Validate
}

func newServer(db *llpsi.WordDB) (*server, error) {
	lem, err := llpsi.NewLemmatizer(db)
	if err != nil {
		return nil, fmt.Errorf("build lemmatizer: %w", err)
	}
	decl, err := game.NewDeclensionGame(db)
	if err != nil {
		return nil, fmt.Errorf("declension game: %w", err)
	}
	return &server{
		db:         db,
		lemmatizer: lem,
		declension: decl,
		flashcards: game.NewFlashCardGame(db),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

func (s *server) routes(c config.CORSConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: c.Origins(),
		AllowedMethods: c.Methods(),
		AllowedHeaders: c.Headers(),
		MaxAge:         c.MaxAge,
	}).Handler)

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/words", s.handleWords)
		r.Get("/nouns/{lemma}", s.handleNoun)
		r.Get("/adjectives/{lemma}", s.handleAdjective)
		r.Get("/pronouns/{lemma}", s.handlePronoun)
		r.Get("/verbs/{lemma}", s.handleVerb)
		r.Get("/knowledge/{chapter}", s.handleKnowledge)
		r.Get("/lemmatize", s.handleLemmatizeWord)
		r.Post("/lemmatize/text", s.handleLemmatizeText)
		r.Route("/games", func(r chi.Router) {
			r.Post("/declension", s.handleDeclensionChallenge)
			r.Post("/declension/check", s.handleDeclensionCheck)
			r.Post("/flashcard", s.handleFlashCardChallenge)
			r.Post("/flashcard/check", s.handleFlashCardCheck)
		})
	})
	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// requestRand returns a fresh random source for one request.
func requestRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// decode reads a JSON body into v and validates it.
func (s *server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "cannot read body: "+err.Error())
		return false
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("encode response")
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeErr maps domain errors to HTTP statuses.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrInvalidState):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, llpsi.ErrWordNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrNoCandidate):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, llpsi.ErrNotDeclinable):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
