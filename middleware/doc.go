// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start at debug level (method, path, remote) and completion
(status, duration_ms).

# Method Override

HTML forms can only submit GET and POST. MethodOverride wraps the whole
mux so a form POST can reach PUT and DELETE routes:

	server := http.Server{
		Handler: middleware.MethodOverride(mux),
	}

The override comes from the X-HTTP-Method-Override header, the _method
form field, or the _method query parameter, in that order. Only PUT,
PATCH and DELETE are honoured.

# Response Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Book not found")

Error picks JSON or plain text from the Accept header:

	middleware.Error(w, r, http.StatusInternalServerError, "Database error")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
