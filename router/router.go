// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/book-tracker/handlers"
	"github.com/danielhkuo/book-tracker/middleware"
	"github.com/danielhkuo/book-tracker/store"
)

// NewRouter registers every route and wraps the mux with method override,
// so HTML forms can reach the PUT and DELETE routes.
func NewRouter(s store.BookStore, views handlers.Renderer) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	bookHandler := handlers.NewBookHandler(s, views)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Book resource
	mux.HandleFunc("GET /books", middleware.WithLogging(bookHandler.List))
	mux.HandleFunc("GET /books/new", middleware.WithLogging(bookHandler.New))
	mux.HandleFunc("GET /books/seed", middleware.WithLogging(bookHandler.Seed))
	mux.HandleFunc("POST /books", middleware.WithLogging(bookHandler.Create))
	mux.HandleFunc("GET /books/{id}", middleware.WithLogging(bookHandler.Show))
	mux.HandleFunc("GET /books/edit/{id}", middleware.WithLogging(bookHandler.Edit))
	mux.HandleFunc("PUT /books/{id}", middleware.WithLogging(bookHandler.Update))
	mux.HandleFunc("PATCH /books/{id}", middleware.WithLogging(bookHandler.Update))
	mux.HandleFunc("DELETE /books/{id}", middleware.WithLogging(bookHandler.Delete))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/books", http.StatusFound)
	})

	return middleware.MethodOverride(mux)
}
