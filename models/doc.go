// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and response types shared across packages.

# Domain Types

  - Book: a tracked book (id, title, author, completed, created_at)
  - BookInput: the editable fields of a Book, already coerced

# Response Types

  - ErrorResponse: error, message (JSON clients only)

# Seed Data

SampleBooks holds the seven records the seed operation writes, in the
order they are inserted. Listing after a seed shows them newest first,
so "The Name of the Wind" comes first.
*/
package models
