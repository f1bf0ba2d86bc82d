// Package postgres implements a word backend for Postgres servers.
package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/jacobpatterson1549/selene-scrabble/db/sql"
)

type (
	// WordBackend stores words in a table of a Postgres SQL Database.
	// The table is read and written through stored functions created by Setup.
	WordBackend struct {
		Database
	}

	// Database contains methods to create and read data.
	Database interface {
		// Setup initializes the database by reading the files.
		Setup(ctx context.Context, files []io.Reader) error
		// Query reads from the database without updating it.
		Query(ctx context.Context, q sql.Query, dest ...interface{}) error
		// Exec makes a change to existing data, creating/modifying/removing it.
		Exec(ctx context.Context, queries ...sql.Query) error
	}
)

//go:embed setup.sql
var setupSQL string

// Setup creates the words table and the functions to access it.
func (wb WordBackend) Setup(ctx context.Context) error {
	files := []io.Reader{
		strings.NewReader(setupSQL),
	}
	if err := wb.Database.Setup(ctx, files); err != nil {
		return fmt.Errorf("setting up word table: %w", err)
	}
	return nil
}

// Contains checks whether the word is in the table.
func (wb WordBackend) Contains(ctx context.Context, word string) (bool, error) {
	cols := []string{
		"found",
	}
	q := sql.NewQueryFunction("word_read", cols, word)
	var found bool
	if err := wb.Database.Query(ctx, q, &found); err != nil {
		return false, fmt.Errorf("querying word: %w", err)
	}
	return found, nil
}

// Create adds the words in a single transaction.
// Words that are already stored are ignored.
func (wb WordBackend) Create(ctx context.Context, words ...string) error {
	queries := make([]sql.Query, len(words))
	for i, w := range words {
		queries[i] = sql.NewExecFunction("word_create", w)
	}
	if err := wb.Database.Exec(ctx, queries...); err != nil {
		return fmt.Errorf("creating words: %w", err)
	}
	return nil
}
