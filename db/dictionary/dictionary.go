// Package dictionary checks words against a word list kept in a database.
package dictionary

import (
	"context"
	"fmt"
	"io"

	"github.com/jacobpatterson1549/selene-scrabble/game/word"
	"github.com/jacobpatterson1549/selene-scrabble/log"
)

type (
	// Dictionary checks if words are stored in a backend.
	Dictionary struct {
		backend   Backend
		log       log.Logger
		batchSize int
	}

	// Config contains fields to create a dictionary.
	Config struct {
		// Backend stores the words.
		Backend Backend
		// Log is used to report backend errors when checking words.
		Log log.Logger
		// BatchSize is the maximum number of words to create in one backend call when loading words.
		// The default is used if it is zero.
		BatchSize int
	}

	// Backend stores words.
	Backend interface {
		// Setup initializes the storage for the words.
		Setup(ctx context.Context) error
		// Contains checks whether the word is stored.
		Contains(ctx context.Context, word string) (bool, error)
		// Create stores the words, ignoring words that are already stored.
		Create(ctx context.Context, words ...string) error
	}
)

const defaultBatchSize = 1000

// NewDictionary creates a dictionary over the backend.
func (cfg Config) NewDictionary() (*Dictionary, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("creating dictionary: validation: %w", err)
	}
	batchSize := cfg.BatchSize
	if batchSize == 0 {
		batchSize = defaultBatchSize
	}
	d := Dictionary{
		backend:   cfg.Backend,
		log:       cfg.Log,
		batchSize: batchSize,
	}
	return &d, nil
}

// validate checks fields to set up the dictionary.
func (cfg Config) validate() error {
	switch {
	case cfg.Backend == nil:
		return fmt.Errorf("backend required")
	case cfg.Log == nil:
		return fmt.Errorf("log required")
	case cfg.BatchSize < 0:
		return fmt.Errorf("batch size must not be negative")
	}
	return nil
}

// Setup initializes the backend.
func (d Dictionary) Setup(ctx context.Context) error {
	if err := d.backend.Setup(ctx); err != nil {
		return fmt.Errorf("setting up dictionary: %w", err)
	}
	return nil
}

// Contains checks whether the backend stores the normalized word.
// Backend errors are logged and the word is treated as not found.
func (d Dictionary) Contains(w string) bool {
	w = word.Normalize(w)
	if len(w) == 0 {
		return false
	}
	ctx := context.Background()
	found, err := d.backend.Contains(ctx, w)
	if err != nil {
		d.log.Printf("checking if %q is a word: %v", w, err)
		return false
	}
	return found
}

// Load reads the words and stores them in batches, returning the number of words read.
func (d Dictionary) Load(ctx context.Context, r io.Reader) (int, error) {
	words, err := word.ReadWords(r)
	if err != nil {
		return 0, fmt.Errorf("loading dictionary: %w", err)
	}
	for i := 0; i < len(words); i += d.batchSize {
		j := min(i+d.batchSize, len(words))
		if err := d.backend.Create(ctx, words[i:j]...); err != nil {
			return 0, fmt.Errorf("loading dictionary: words %v to %v: %w", i, j, err)
		}
	}
	return len(words), nil
}
