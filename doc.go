// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Book Tracker server.

Book Tracker is a small server-rendered web app for keeping a reading
list: add books, mark them read, edit or delete them, and reset the
list to a fixed set of sample books.

# Starting the Server

With no configuration the server listens on 3013 and keeps books in a
local SQLite file:

	go run .

Or point it at PostgreSQL or MongoDB:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .
	go run . -t mongo -d mongodb://localhost:27017 -db-name books

A .env file in the working directory is loaded before flags are parsed.

# Configuration

  - PORT (-p): Server port (default: 3013)
  - DATABASE_TYPE (-t): sqlite, postgres or mongo (default: sqlite)
  - DATABASE_URL (-d): Store connection string (required unless sqlite)
  - DATABASE_NAME (-db-name): MongoDB database (default: books)
  - LOG_FORMAT (-log-format): text or json (default: text)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: Book resource handler (list, new, create, show, edit, update, delete, seed)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, method override, JSON/text helpers
  - store: Record store interface with SQL and MongoDB implementations
  - views: Embedded HTML templates
  - forms: Checkbox coercion and form decoding
  - models: Domain and response types
  - db: SQL schema creation
  - logging: slog setup
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
