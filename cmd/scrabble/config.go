package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jacobpatterson1549/selene-scrabble/db"
	"github.com/jacobpatterson1549/selene-scrabble/db/dictionary"
	"github.com/jacobpatterson1549/selene-scrabble/db/firestore"
	"github.com/jacobpatterson1549/selene-scrabble/db/mongo"
	"github.com/jacobpatterson1549/selene-scrabble/db/sql"
	"github.com/jacobpatterson1549/selene-scrabble/db/sql/postgres"
	"github.com/jacobpatterson1549/selene-scrabble/db/sql/sqlite"
	"github.com/jacobpatterson1549/selene-scrabble/game/board"
	"github.com/jacobpatterson1549/selene-scrabble/game/controller"
	"github.com/jacobpatterson1549/selene-scrabble/game/ruleset"
	"github.com/jacobpatterson1549/selene-scrabble/game/word"
	"github.com/jacobpatterson1549/selene-scrabble/log"
)

const (
	driverPostgres  = "postgres"
	driverSQLite    = "sqlite"
	driverMongoDB   = "mongodb"
	driverFirestore = "firestore"
)

// closerFunc is a function that closes something.
type closerFunc func() error

// Close calls the function.
func (f closerFunc) Close() error {
	return f()
}

// nopCloser is used when there is no database to close.
var nopCloser = closerFunc(func() error { return nil })

// createGame creates the board from the ruleset and dictionary and a game to play moves on it.
// The closer releases the database connection of the dictionary and should be closed after the game is played.
func (m mainFlags) createGame(ctx context.Context, log log.Logger) (*controller.Game, io.Closer, error) {
	rs, err := m.ruleset()
	if err != nil {
		return nil, nil, fmt.Errorf("reading ruleset: %w", err)
	}
	log.Printf("ruleset has %v triple word, %v double word, %v triple letter, and %v double letter squares",
		rs.Count(ruleset.WordKind, 3),
		rs.Count(ruleset.WordKind, 2),
		rs.Count(ruleset.LetterKind, 3),
		rs.Count(ruleset.LetterKind, 2),
	)
	d, closer, err := m.dictionary(ctx, log)
	if err != nil {
		return nil, nil, fmt.Errorf("creating dictionary: %w", err)
	}
	b, err := m.board(*rs, d, log)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	cfg := controller.Config{
		Debug:       m.DebugGame,
		Log:         log,
		VerifyWords: m.VerifyWords,
	}
	g, err := cfg.NewGame(b)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return g, closer, nil
}

// ruleset reads the ruleset file, or the standard ruleset if there is no file.
func (m mainFlags) ruleset() (*ruleset.Ruleset, error) {
	if len(m.RulesetFile) == 0 {
		return ruleset.Standard()
	}
	return ruleset.Load(m.RulesetFile)
}

// board creates a board that uses the ruleset's points and premium squares.
func (m mainFlags) board(rs ruleset.Ruleset, d board.Dictionary, log log.Logger) (*board.Board, error) {
	cfg := board.Config{
		Scorer:     rs.Points,
		Dictionary: d,
		Log:        log,
		Debug:      m.DebugGame,
	}
	b, err := cfg.New()
	if err != nil {
		return nil, err
	}
	if err := rs.Apply(b); err != nil {
		return nil, err
	}
	return b, nil
}

// dictionary creates the dictionary from the database, or from the words file when there is no database.
func (m mainFlags) dictionary(ctx context.Context, log log.Logger) (board.Dictionary, io.Closer, error) {
	if len(m.DatabaseDriver) == 0 {
		v, err := m.wordValidator()
		if err != nil {
			return nil, nil, err
		}
		return v, nopCloser, nil
	}
	backend, closer, err := m.wordBackend(ctx)
	if err != nil {
		return nil, nil, err
	}
	d, err := m.setupDictionary(ctx, backend, log)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return d, closer, nil
}

// setupDictionary prepares the backend to store words, loading them from the words file if requested.
func (m mainFlags) setupDictionary(ctx context.Context, backend dictionary.Backend, log log.Logger) (*dictionary.Dictionary, error) {
	cfg := dictionary.Config{
		Backend: backend,
		Log:     log,
	}
	d, err := cfg.NewDictionary()
	if err != nil {
		return nil, err
	}
	if err := d.Setup(ctx); err != nil {
		return nil, err
	}
	if m.LoadWords {
		if err := m.loadWords(ctx, *d, log); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// wordValidator reads the words file into memory.
func (m mainFlags) wordValidator() (*word.Validator, error) {
	if len(m.WordsFile) == 0 {
		return nil, fmt.Errorf("missing words file or database driver")
	}
	f, err := os.Open(m.WordsFile)
	if err != nil {
		return nil, fmt.Errorf("opening words file: %w", err)
	}
	defer f.Close()
	return word.NewValidator(f)
}

// loadWords adds the words in the words file to the dictionary.
func (m mainFlags) loadWords(ctx context.Context, d dictionary.Dictionary, log log.Logger) error {
	if len(m.WordsFile) == 0 {
		return fmt.Errorf("missing words file to load")
	}
	f, err := os.Open(m.WordsFile)
	if err != nil {
		return fmt.Errorf("opening words file: %w", err)
	}
	defer f.Close()
	n, err := d.Load(ctx, f)
	if err != nil {
		return err
	}
	log.Printf("loaded %v words into the %v dictionary", n, m.DatabaseDriver)
	return nil
}

// wordBackend connects to the database that stores words.
// The closer closes the connection.
func (m mainFlags) wordBackend(ctx context.Context) (dictionary.Backend, io.Closer, error) {
	if len(m.DatabaseURL) == 0 {
		return nil, nil, fmt.Errorf("missing data-source for %v database", m.DatabaseDriver)
	}
	dbCfg := db.Config{
		QueryPeriod: m.QueryPeriod,
	}
	switch m.DatabaseDriver {
	case driverPostgres, driverSQLite:
		cfg := sql.DatabaseConfig{
			DriverName:  m.DatabaseDriver,
			DatabaseURL: m.DatabaseURL,
			QueryPeriod: m.QueryPeriod,
		}
		sqlDB, err := cfg.NewDatabase()
		if err != nil {
			return nil, nil, err
		}
		if m.DatabaseDriver == driverPostgres {
			return postgres.WordBackend{Database: sqlDB}, sqlDB, nil
		}
		return sqlite.WordBackend{Database: sqlDB}, sqlDB, nil
	case driverMongoDB:
		wb, err := mongo.NewWordBackend(ctx, dbCfg, m.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return wb, wb, nil
	case driverFirestore:
		wb, err := firestore.NewWordBackend(ctx, dbCfg, m.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return wb, wb, nil
	}
	return nil, nil, fmt.Errorf("unknown database driver %q", m.DatabaseDriver)
}
