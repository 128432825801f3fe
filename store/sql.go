// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/book-tracker/db"
	"github.com/danielhkuo/book-tracker/models"
)

const bookColumns = "id, title, author, completed, created_at"

// SQLStore keeps books in a SQLite or PostgreSQL table
type SQLStore struct {
	conn    *sql.DB
	dialect db.Dialect
}

// OpenSQL connects to the database, verifies the connection and creates the schema
func OpenSQL(ctx context.Context, dialect db.Dialect, url string) (*SQLStore, error) {
	conn, err := sql.Open(dialect.DriverName(), url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite has a single writer, and each :memory: connection is its own database
	if dialect == db.DialectSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	s, err := NewSQLStore(conn, dialect)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLStore wraps an open connection and creates the schema
func NewSQLStore(conn *sql.DB, dialect db.Dialect) (*SQLStore, error) {
	if err := db.CreateSchema(conn, dialect); err != nil {
		return nil, err
	}
	return &SQLStore{conn: conn, dialect: dialect}, nil
}

func (s *SQLStore) q(query string) string {
	return db.Rebind(s.dialect, query)
}

func (s *SQLStore) Find(ctx context.Context) ([]models.Book, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT `+bookColumns+`
		FROM book
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Completed, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, nil
}

func (s *SQLStore) FindByID(ctx context.Context, id string) (*models.Book, error) {
	var b models.Book
	err := s.conn.QueryRowContext(ctx, s.q(`
		SELECT `+bookColumns+` FROM book WHERE id = ?
	`), id).Scan(&b.ID, &b.Title, &b.Author, &b.Completed, &b.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query book: %w", err)
	}

	return &b, nil
}

func (s *SQLStore) Create(ctx context.Context, in models.BookInput) (models.Book, error) {
	b := newBook(in, time.Now().UTC())

	_, err := s.conn.ExecContext(ctx, s.q(`
		INSERT INTO book (id, title, author, completed, created_at)
		VALUES (?, ?, ?, ?, ?)
	`), b.ID, b.Title, b.Author, b.Completed, b.CreatedAt)
	if err != nil {
		return models.Book{}, fmt.Errorf("failed to insert book: %w", err)
	}

	return b, nil
}

func (s *SQLStore) Update(ctx context.Context, id string, in models.BookInput) (models.Book, error) {
	var b models.Book
	err := s.conn.QueryRowContext(ctx, s.q(`
		UPDATE book SET title = ?, author = ?, completed = ?
		WHERE id = ?
		RETURNING `+bookColumns+`
	`), in.Title, in.Author, in.Completed, id).Scan(&b.ID, &b.Title, &b.Author, &b.Completed, &b.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, ErrNotFound
	}
	if err != nil {
		return models.Book{}, fmt.Errorf("failed to update book: %w", err)
	}

	return b, nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	res, err := s.conn.ExecContext(ctx, s.q(`DELETE FROM book WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *SQLStore) DeleteAll(ctx context.Context) error {
	if _, err := s.conn.ExecContext(ctx, `DELETE FROM book`); err != nil {
		return fmt.Errorf("failed to delete books: %w", err)
	}
	return nil
}

func (s *SQLStore) InsertMany(ctx context.Context, books []models.BookInput) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, s.q(`
		INSERT INTO book (id, title, author, completed, created_at)
		VALUES (?, ?, ?, ?, ?)
	`))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, in := range books {
		b := newBook(in, now)
		if _, err := stmt.ExecContext(ctx, b.ID, b.Title, b.Author, b.Completed, b.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert book %q: %w", in.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit books: %w", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.conn.Close()
}

func newBook(in models.BookInput, createdAt time.Time) models.Book {
	return models.Book{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Author:    in.Author,
		Completed: in.Completed,
		CreatedAt: createdAt,
	}
}
