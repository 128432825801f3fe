// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"slices"

	"github.com/danielhkuo/book-tracker/forms"
	"github.com/danielhkuo/book-tracker/middleware"
	"github.com/danielhkuo/book-tracker/models"
	"github.com/danielhkuo/book-tracker/store"
	"github.com/danielhkuo/book-tracker/views"
)

// Renderer writes a named page
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any)
}

type BookHandler struct {
	store store.BookStore
	views Renderer
}

func NewBookHandler(s store.BookStore, r Renderer) *BookHandler {
	return &BookHandler{store: s, views: r}
}

// List handles GET /books
// Books are shown newest first
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.store.Find(r.Context())
	if err != nil {
		h.storeError(w, r, err, "failed to list books")
		return
	}

	slices.Reverse(books)

	if middleware.WantsJSON(r) {
		middleware.JSONResponse(w, http.StatusOK, books)
		return
	}
	h.views.Render(w, http.StatusOK, views.PageIndex, views.IndexData{Books: books})
}

// New handles GET /books/new
func (h *BookHandler) New(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, views.PageNew, views.BookData{})
}

// Create handles POST /books
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.Error(w, r, http.StatusBadRequest, "Invalid form")
		return
	}

	book, err := h.store.Create(r.Context(), forms.DecodeBook(r.PostForm))
	if err != nil {
		h.storeError(w, r, err, "failed to create book")
		return
	}

	slog.Info("book created", "book_id", book.ID, "title", book.Title)

	if middleware.WantsJSON(r) {
		middleware.JSONResponse(w, http.StatusCreated, book)
		return
	}
	http.Redirect(w, r, "/books", http.StatusSeeOther)
}

// Show handles GET /books/{id}
// A missing book still renders the page, with a not-found notice
func (h *BookHandler) Show(w http.ResponseWriter, r *http.Request) {
	book, err := h.store.FindByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.storeError(w, r, err, "failed to find book")
		return
	}

	if middleware.WantsJSON(r) {
		if book == nil {
			middleware.ErrorResponse(w, http.StatusNotFound, "Book not found")
			return
		}
		middleware.JSONResponse(w, http.StatusOK, book)
		return
	}
	h.views.Render(w, http.StatusOK, views.PageShow, views.BookData{Book: book})
}

// Edit handles GET /books/edit/{id}
func (h *BookHandler) Edit(w http.ResponseWriter, r *http.Request) {
	book, err := h.store.FindByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.storeError(w, r, err, "failed to find book")
		return
	}
	if book == nil {
		h.storeError(w, r, store.ErrNotFound, "failed to find book")
		return
	}

	h.views.Render(w, http.StatusOK, views.PageEdit, views.BookData{Book: book})
}

// Update handles PUT /books/{id}
// All editable fields are replaced; an unchecked box clears completed
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := r.ParseForm(); err != nil {
		middleware.Error(w, r, http.StatusBadRequest, "Invalid form")
		return
	}

	book, err := h.store.Update(r.Context(), id, forms.DecodeBook(r.PostForm))
	if err != nil {
		h.storeError(w, r, err, "failed to update book")
		return
	}

	slog.Info("book updated", "book_id", book.ID)

	if middleware.WantsJSON(r) {
		middleware.JSONResponse(w, http.StatusOK, book)
		return
	}
	http.Redirect(w, r, "/books/"+url.PathEscape(book.ID), http.StatusSeeOther)
}

// Delete handles DELETE /books/{id}
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.storeError(w, r, err, "failed to delete book")
		return
	}

	slog.Info("book deleted", "book_id", id)

	if middleware.WantsJSON(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/books", http.StatusSeeOther)
}

// Seed handles GET /books/seed
// Replaces every book with the sample list
func (h *BookHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if err := store.Seed(r.Context(), h.store); err != nil {
		h.storeError(w, r, err, "failed to seed books")
		return
	}

	slog.Info("books seeded", "count", len(models.SampleBooks))
	http.Redirect(w, r, "/books", http.StatusSeeOther)
}

// storeError maps store.ErrNotFound to 404 and everything else to 500
func (h *BookHandler) storeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, store.ErrNotFound) {
		middleware.Error(w, r, http.StatusNotFound, "Book not found")
		return
	}

	slog.Error(msg, "method", r.Method, "path", r.URL.Path, "error", err)
	middleware.Error(w, r, http.StatusInternalServerError, "Database error")
}
