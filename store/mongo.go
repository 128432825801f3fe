// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/danielhkuo/book-tracker/models"
)

const bookCollection = "books"

// insertionOrder sorts oldest first. createdAt orders across processes;
// _id breaks ties between documents created in the same millisecond.
var insertionOrder = bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}

type bookDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Author    string             `bson:"author"`
	Completed bool               `bson:"completed"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d bookDocument) toBook() models.Book {
	return models.Book{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Author:    d.Author,
		Completed: d.Completed,
		CreatedAt: d.CreatedAt,
	}
}

func newBookDocument(in models.BookInput, createdAt time.Time) bookDocument {
	return bookDocument{
		ID:        primitive.NewObjectID(),
		Title:     in.Title,
		Author:    in.Author,
		Completed: in.Completed,
		CreatedAt: createdAt,
	}
}

// MongoStore keeps books as documents in a MongoDB collection.
// Book ids are the hex form of the document ObjectID.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// OpenMongo connects to MongoDB and verifies the connection
func OpenMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	return NewMongoStore(client, database), nil
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(bookCollection),
	}
}

func (s *MongoStore) Find(ctx context.Context) ([]models.Book, error) {
	cursor, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(insertionOrder))
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}

	var docs []bookDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}

	books := make([]models.Book, 0, len(docs))
	for _, d := range docs {
		books = append(books, d.toBook())
	}
	return books, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*models.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc bookDocument
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query book: %w", err)
	}

	b := doc.toBook()
	return &b, nil
}

func (s *MongoStore) Create(ctx context.Context, in models.BookInput) (models.Book, error) {
	doc := newBookDocument(in, time.Now().UTC())
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return models.Book{}, fmt.Errorf("failed to insert book: %w", err)
	}
	return doc.toBook(), nil
}

func (s *MongoStore) Update(ctx context.Context, id string, in models.BookInput) (models.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Book{}, ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":     in.Title,
		"author":    in.Author,
		"completed": in.Completed,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc bookDocument
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Book{}, ErrNotFound
	}
	if err != nil {
		return models.Book{}, fmt.Errorf("failed to update book: %w", err)
	}

	return doc.toBook(), nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteAll(ctx context.Context) error {
	if _, err := s.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("failed to delete books: %w", err)
	}
	return nil
}

func (s *MongoStore) InsertMany(ctx context.Context, books []models.BookInput) error {
	if len(books) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(books))
	for _, in := range books {
		docs = append(docs, newBookDocument(in, now))
	}

	if _, err := s.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return fmt.Errorf("failed to insert books: %w", err)
	}
	return nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
