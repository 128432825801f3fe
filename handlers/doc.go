// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for Book Tracker.

# Handler Types

BookHandler is created with its record store and page renderer:

	bookHandler := handlers.NewBookHandler(bookStore, renderer)

It holds no other state; every request goes straight to the store.

# Operations

	GET    /books           → List (newest first)
	GET    /books/new       → New
	POST   /books           → Create (redirects to /books)
	GET    /books/{id}      → Show (missing book renders a notice)
	GET    /books/edit/{id} → Edit
	PUT    /books/{id}      → Update (redirects to /books/{id})
	DELETE /books/{id}      → Delete (redirects to /books)
	GET    /books/seed      → Seed (redirects to /books)

Create and Update read URL-encoded forms through forms.DecodeBook, so the
completed checkbox is true only when it arrives as "on".

# Errors

Every store failure is handled the same way:

  - store.ErrNotFound → 404 "Book not found"
  - anything else     → 500 "Database error" (details logged, not sent)

# JSON

Clients sending Accept: application/json get JSON instead of HTML or
redirects: List returns an array, Create returns 201 with the new book,
Show and Update return the book, Delete returns 204.
*/
package handlers
