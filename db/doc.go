// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles SQL schema creation for the SQLite and PostgreSQL stores.

# Schema Creation

CreateSchema initializes the book table for a dialect:

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - book: seq (insertion order), id, title, author, completed, created_at

# Placeholders

Queries are written with ? placeholders. Rebind converts them to $1, $2, ...
for PostgreSQL:

	db.Rebind(db.DialectPostgres, "SELECT * FROM book WHERE id = ?")
	// SELECT * FROM book WHERE id = $1
*/
package db
