// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/book-tracker/cliparse"
	"github.com/danielhkuo/book-tracker/models"
	"github.com/danielhkuo/book-tracker/store"
	"github.com/danielhkuo/book-tracker/views"
)

// TestDBURL is the connection string for the test database
const TestDBURL = ":memory:"

// SetupTestStore creates a fresh in-memory SQLite store with the full schema
func SetupTestStore(t *testing.T) store.BookStore {
	t.Helper()

	s, err := store.Open(context.Background(), GetTestConfig())
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

// SetupRenderer parses the embedded page templates
func SetupRenderer(t *testing.T) *views.Renderer {
	t.Helper()

	r, err := views.New()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}
	return r
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         cliparse.DefaultPort,
		DatabaseURL:  TestDBURL,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseName: cliparse.DefaultDatabaseName,
	}
}

// CreateTestBook inserts a book directly through the store
func CreateTestBook(t *testing.T, s store.BookStore, title, author string, completed bool) models.Book {
	t.Helper()

	b, err := s.Create(context.Background(), models.BookInput{Title: title, Author: author, Completed: completed})
	if err != nil {
		t.Fatalf("Failed to create test book: %v", err)
	}
	return b
}

// GetTestBook fetches a book by id, failing the test on store errors
func GetTestBook(t *testing.T, s store.BookStore, id string) *models.Book {
	t.Helper()

	b, err := s.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("Failed to fetch test book: %v", err)
	}
	return b
}

// ListTestBooks returns every book in insertion order
func ListTestBooks(t *testing.T, s store.BookStore) []models.Book {
	t.Helper()

	books, err := s.Find(context.Background())
	if err != nil {
		t.Fatalf("Failed to list test books: %v", err)
	}
	return books
}

// MakeRequest creates an HTTP test request with a URL-encoded form body
func MakeRequest(method, path string, form url.Values, headers map[string]string) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// JSONHeaders asks handlers for a JSON response
var JSONHeaders = map[string]string{"Accept": "application/json"}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 303 See Other to the expected location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	AssertStatus(t, w, http.StatusSeeOther)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %s, got %s", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
