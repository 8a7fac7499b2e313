package llpsi

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// validate checks dataset entries. A Validate is safe for concurrent use
// and caches struct metadata, so one instance serves every load.
var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadFile reads one JSON dataset file: an array of entries.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	var entries []Entry
	if err := sonic.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	for i := range entries {
		if err := validateEntry(&entries[i]); err != nil {
			return nil, fmt.Errorf("%s entry %d (%s): %w", filepath.Base(path), i, entries[i].Lemma(), err)
		}
	}
	return entries, nil
}

func validateEntry(e *Entry) error {
	if !e.WordType.IsValid() {
		return fmt.Errorf("%w: unknown word type %q", ErrDataIntegrity, e.WordType)
	}
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %v", ErrDataIntegrity, err)
	}
	if e.Lemma() == "" {
		return fmt.Errorf("%w: %s without lemma", ErrDataIntegrity, e.WordType)
	}
	return nil
}

// LoadDir reads every *.json file of dir concurrently. Entries are merged
// in file name order, so the result does not depend on scheduling.
func LoadDir(ctx context.Context, dir string) ([]Entry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no dataset files in %s", dir)
	}
	sort.Strings(paths)

	parts := make([][]Entry, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entries, err := LoadFile(path)
			if err != nil {
				return err
			}
			parts[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Entry
	for _, p := range parts {
		all = append(all, p...)
	}
	return all, nil
}

// Open loads the dataset in dir and builds the catalog.
func Open(ctx context.Context, dir string, opts ...Option) (*WordDB, error) {
	entries, err := LoadDir(ctx, dir)
	if err != nil {
		return nil, err
	}
	return NewWordDB(entries, opts...)
}
