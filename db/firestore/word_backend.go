// Package firestore stores words in a google cloud firestore database.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/jacobpatterson1549/selene-scrabble/db"
)

const wordField = "word"

// WordBackend is a backend manager for a words collection.
// Each word is the id of a document in the collection.
type WordBackend struct {
	client *firestore.Client
	db.Config
}

// NewWordBackend creates a backend manager for words.
func NewWordBackend(ctx context.Context, cfg db.Config, projectID string) (*WordBackend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("creating firestore word backend: validation: %w", err)
	}
	wb := WordBackend{
		Config: cfg,
	}
	client, err := firestore.NewClient(ctx, projectID) // do not timeout context - the client is used by the backend
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}
	wb.client = client
	return &wb, nil
}

func (wb *WordBackend) wordsCollection() *firestore.CollectionRef {
	return wb.client.Collection("services").Doc("selene-scrabble").Collection("words")
}

// withTimeoutContext configures the context to timeout when running the function.
func (wb *WordBackend) withTimeoutContext(ctx context.Context, f func(ctx context.Context) error) error {
	ctx, cancelFunc := context.WithTimeout(ctx, wb.QueryPeriod)
	defer cancelFunc()
	return f(ctx)
}

// Close closes the client.
func (wb *WordBackend) Close() error {
	return wb.client.Close()
}

// Setup does nothing because collections are created when documents are added to them.
func (wb *WordBackend) Setup(ctx context.Context) error {
	return nil
}

// Contains checks whether the document for the word exists.
func (wb *WordBackend) Contains(ctx context.Context, word string) (bool, error) {
	if len(word) == 0 {
		return false, nil
	}
	found := false
	if err := wb.withTimeoutContext(ctx, func(ctx context.Context) error {
		docRef := wb.wordsCollection().Doc(word)
		snapshot, err := docRef.Get(ctx)
		if err != nil {
			if snapshot != nil && !snapshot.Exists() {
				return nil
			}
			return err
		}
		found = snapshot.Exists()
		return nil
	}); err != nil {
		return false, fmt.Errorf("reading word: %w", err)
	}
	return found, nil
}

// Create writes a document for each word.
func (wb *WordBackend) Create(ctx context.Context, words ...string) error {
	if err := wb.withTimeoutContext(ctx, func(ctx context.Context) error {
		collection := wb.wordsCollection()
		bw := wb.client.BulkWriter(ctx)
		jobs := make([]*firestore.BulkWriterJob, 0, len(words))
		for _, w := range words {
			docRef := collection.Doc(w)
			m := map[string]interface{}{
				wordField: w,
			}
			job, err := bw.Set(docRef, m)
			if err != nil {
				bw.End()
				return err
			}
			jobs = append(jobs, job)
		}
		bw.End()
		for _, job := range jobs {
			if _, err := job.Results(); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("creating words: %w", err)
	}
	return nil
}
