// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the record store holding Book records.

# Implementations

  - SQLStore: SQLite (modernc.org/sqlite) or PostgreSQL (lib/pq). Ids are
    random UUIDs; an auto-increment seq column keeps insertion order.
  - MongoStore: a "books" collection. Ids are ObjectID hex strings;
    order comes from createdAt, with _id breaking ties.

Open picks one from configuration:

	bookStore, err := store.Open(ctx, cfg)
	defer bookStore.Close()

# Semantics

  - Find returns books oldest first; callers reverse for display.
  - FindByID returns nil, nil for an unknown or malformed id.
  - Update and Delete return ErrNotFound for an unknown or malformed id.
  - Seed deletes everything and inserts models.SampleBooks in order.

There are no transactions across calls. A Delete racing an Update on the
same id ends with the book deleted and the Update either applied first
or answered with ErrNotFound.
*/
package store
