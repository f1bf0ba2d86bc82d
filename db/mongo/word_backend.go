// Package mongo implements a word backend for mongodb.
package mongo

import (
	"context"
	"fmt"

	"github.com/jacobpatterson1549/selene-scrabble/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	databaseName   = "selene-scrabble-db"
	collectionName = "words"
	wordField      = "word"
)

// WordBackend is a backend manager for a words collection.
type WordBackend struct {
	Words *mongo.Collection
	db.Config
}

// NewWordBackend creates a backend manager for the words collection.
func NewWordBackend(ctx context.Context, cfg db.Config, databaseURL string) (*WordBackend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("creating mongodb word backend: validation: %w", err)
	}
	clientOptions := options.Client()
	clientOptions.ApplyURI(databaseURL)
	ctx, cancelFunc := context.WithTimeout(ctx, cfg.QueryPeriod)
	defer cancelFunc()
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	database := client.Database(databaseName)
	words := database.Collection(collectionName)
	wb := WordBackend{
		Words:  words,
		Config: cfg,
	}
	return &wb, nil
}

// Setup creates a unique index on the word field.
func (wb *WordBackend) Setup(ctx context.Context) error {
	indexOptions := options.Index()
	indexOptions.SetUnique(true)
	document := d(e(wordField, 1))
	model := mongo.IndexModel{
		Keys:    document,
		Options: indexOptions,
	}
	indexes := wb.Words.Indexes()
	ctx, cancelFunc := context.WithTimeout(ctx, wb.Config.QueryPeriod)
	defer cancelFunc()
	if _, err := indexes.CreateOne(ctx, model); err != nil {
		return fmt.Errorf("creating unique word index: %w", err)
	}
	return nil
}

// Contains checks whether a document for the word exists.
func (wb *WordBackend) Contains(ctx context.Context, word string) (bool, error) {
	filter := d(e(wordField, word))
	countOptions := options.Count()
	countOptions.SetLimit(1)
	ctx, cancelFunc := context.WithTimeout(ctx, wb.Config.QueryPeriod)
	defer cancelFunc()
	n, err := wb.Words.CountDocuments(ctx, filter, countOptions)
	if err != nil {
		return false, fmt.Errorf("reading word: %w", err)
	}
	return n > 0, nil
}

// Create upserts a document for each word.
func (wb *WordBackend) Create(ctx context.Context, words ...string) error {
	if len(words) == 0 {
		return nil
	}
	writeModels := createModels(words)
	bulkWriteOptions := options.BulkWrite()
	bulkWriteOptions.SetOrdered(false)
	ctx, cancelFunc := context.WithTimeout(ctx, wb.Config.QueryPeriod)
	defer cancelFunc()
	if _, err := wb.Words.BulkWrite(ctx, writeModels, bulkWriteOptions); err != nil {
		return fmt.Errorf("creating words: %w", err)
	}
	return nil
}

// Close disconnects the client of the words collection.
func (wb *WordBackend) Close() error {
	ctx, cancelFunc := context.WithTimeout(context.Background(), wb.Config.QueryPeriod)
	defer cancelFunc()
	if err := wb.Words.Database().Client().Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting from mongodb: %w", err)
	}
	return nil
}

// createModels makes an upsert for each word that only writes documents that do not exist.
func createModels(words []string) []mongo.WriteModel {
	writeModels := make([]mongo.WriteModel, len(words))
	for i, w := range words {
		filter := d(e(wordField, w))
		update := d(e("$setOnInsert", d(e(wordField, w))))
		m := mongo.NewUpdateOneModel()
		m.SetFilter(filter)
		m.SetUpdate(update)
		m.SetUpsert(true)
		writeModels[i] = m
	}
	return writeModels
}

// d is a helper function to create bson.D elements.
func d(e ...bson.E) bson.D {
	return bson.D(e)
}

// e is a helper function to create bson.E elements.
func e(key string, value interface{}) bson.E {
	return bson.E{Key: key, Value: value}
}
