// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/book-tracker/models"
)

// ErrNotFound is returned by by-id writes that match no record
var ErrNotFound = errors.New("book not found")

// BookStore is the persistent record store holding Books.
// Implementations must be safe for concurrent use.
type BookStore interface {
	// Find returns every book in insertion order
	Find(ctx context.Context) ([]models.Book, error)

	// FindByID returns nil, nil when no book has the id
	FindByID(ctx context.Context, id string) (*models.Book, error)

	Create(ctx context.Context, in models.BookInput) (models.Book, error)

	// Update replaces the editable fields and returns the updated book
	Update(ctx context.Context, id string, in models.BookInput) (models.Book, error)

	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error

	// InsertMany creates books in slice order
	InsertMany(ctx context.Context, books []models.BookInput) error

	Close() error
}

// Seed replaces the store's contents with models.SampleBooks
func Seed(ctx context.Context, s BookStore) error {
	if err := s.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear books: %w", err)
	}
	if err := s.InsertMany(ctx, models.SampleBooks); err != nil {
		return fmt.Errorf("failed to insert sample books: %w", err)
	}
	return nil
}
