// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3013)
  - DatabaseURL: Store connection string (default: file:books.db for sqlite)
  - DatabaseType: sqlite, postgres or mongo (default: sqlite)
  - DatabaseName: MongoDB database name (default: books)
  - LogFormat: text or json (default: text)
  - LogLevel: debug, info, warn or error (default: info)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-db-name    Database name
	-log-format Log format
	-log-level  Log level

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	DATABASE_NAME → -db-name
	LOG_FORMAT    → -log-format
	LOG_LEVEL     → -log-level

CLI flags take precedence over environment variables. main loads a .env
file (if present) before parsing, so values from it behave like real
environment variables.

# Validation

ParseFlags returns an error if:

  - PORT is not a number
  - DatabaseType is not one of the supported stores
  - DatabaseURL is missing for postgres or mongo
*/
package cliparse
