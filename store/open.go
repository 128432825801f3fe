// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/book-tracker/cliparse"
	"github.com/danielhkuo/book-tracker/db"
)

// Open connects to the store selected by cfg.DatabaseType
func Open(ctx context.Context, cfg cliparse.Config) (BookStore, error) {
	var (
		s   BookStore
		err error
	)

	switch cfg.DatabaseType {
	case cliparse.DatabaseSQLite:
		s, err = openSQL(ctx, db.DialectSQLite, cfg.DatabaseURL)
	case cliparse.DatabasePostgres:
		s, err = openSQL(ctx, db.DialectPostgres, cfg.DatabaseURL)
	case cliparse.DatabaseMongo:
		s, err = openMongo(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

func openSQL(ctx context.Context, dialect db.Dialect, url string) (BookStore, error) {
	s, err := OpenSQL(ctx, dialect, url)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openMongo(ctx context.Context, uri, database string) (BookStore, error) {
	s, err := OpenMongo(ctx, uri, database)
	if err != nil {
		return nil, err
	}
	return s, nil
}
