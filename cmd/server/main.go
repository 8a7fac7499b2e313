// Command server exposes the LLPSI word catalog, the lemmatizer and the
// declension games as a JSON REST API.
//
// Endpoints:
//
//	GET  /health
//	GET  /api/words?type=<type>&chapters=<list>
//	GET  /api/nouns/{lemma}
//	GET  /api/adjectives/{lemma}
//	GET  /api/pronouns/{lemma}
//	GET  /api/verbs/{lemma}
//	GET  /api/knowledge/{chapter}
//	GET  /api/lemmatize?form=<word>[&sentence_start=true]
//	POST /api/lemmatize/text            body: {"text":"...","chapter":3}
//	POST /api/games/declension          body: {"grammarChapter":5,"vocabChapter":5}
//	POST /api/games/declension/check    body: {"challenge":{...},"response":"..."}
//	POST /api/games/flashcard           body: {"grammarChapter":5,"vocabChapter":5,"case":"gen"}
//	POST /api/games/flashcard/check     body: {"challenge":{...},"response":"..."}
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	llpsi "github.com/itmo/llpsi-net"
	"github.com/itmo/llpsi-net/internal/config"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default: $CONFIG_PATH or ./config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logFile, err := setupLog(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func setupLog(cfg config.LogConfig) (io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Path == "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	var opts []llpsi.Option
	if cfg.Data.SkipInvalid {
		opts = append(opts, llpsi.WithSkipInvalid())
	}
	db, err := llpsi.Open(ctx, cfg.Data.Dir, opts...)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	srv, err := newServer(db)
	if err != nil {
		return err
	}
	log.Info().
		Int("nouns", len(db.Nouns())).
		Int("verbs", len(db.Verbs())).
		Int("forms", srv.lemmatizer.Size()).
		Int("max_chapter", db.MaxChapter()).
		Int("skipped", len(db.Rejected())).
		Msg("dataset loaded")

	httpSrv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv.routes(cfg.CORS),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", httpSrv.Addr).Msg("listening")
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
