// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package forms converts URL-encoded form values into domain input types.
package forms

import (
	"net/url"

	"github.com/danielhkuo/book-tracker/models"
)

// CheckboxOn is the value browsers submit for a checked checkbox
// that has no explicit value attribute.
const CheckboxOn = "on"

// Form field names
const (
	FieldTitle     = "title"
	FieldAuthor    = "author"
	FieldCompleted = "completed"
)

// Checked reports whether a checkbox value means "checked".
// Only the exact string "on" counts; anything else, including "", is false.
func Checked(value string) bool {
	return value == CheckboxOn
}

// DecodeBook builds a BookInput from form values, coercing the completed checkbox.
// Title and author are copied verbatim.
func DecodeBook(values url.Values) models.BookInput {
	return models.BookInput{
		Title:     values.Get(FieldTitle),
		Author:    values.Get(FieldAuthor),
		Completed: Checked(values.Get(FieldCompleted)),
	}
}
