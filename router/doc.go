// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes using Go 1.22+ enhanced routing.

# Route Registration

NewRouter creates a handler with all routes registered:

	handler := router.NewRouter(bookStore, renderer)

Routes use method-specific patterns:

	mux.HandleFunc("GET /books/{id}", handler)

The returned handler applies middleware.MethodOverride before routing,
so a form POST with _method=DELETE reaches the DELETE route.

# Route Summary

Health:

	GET /health → "OK"
	GET /       → redirect to /books

Books:

	GET    /books           → List (newest first)
	GET    /books/new       → New (empty form)
	POST   /books           → Create
	GET    /books/{id}      → Show
	GET    /books/edit/{id} → Edit (pre-filled form)
	PUT    /books/{id}      → Update (PATCH also accepted)
	DELETE /books/{id}      → Delete
	GET    /books/seed      → Seed (reset to sample data)

# Path Parameters

Extract path parameters using r.PathValue:

	id := r.PathValue("id")

Literal segments win over wildcards, so /books/new and /books/seed never
reach Show.

# Middleware

Book routes are wrapped with WithLogging for request logging:

	mux.HandleFunc("GET /books", middleware.WithLogging(bookHandler.List))
*/
package router
