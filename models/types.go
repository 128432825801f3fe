package models

import "time"

// Domain types

type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// BookInput holds the editable fields of a Book.
// Completed is always a real boolean, never the raw checkbox value.
type BookInput struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Completed bool   `json:"completed"`
}

// SampleBooks is the fixed list written by the seed operation, in insertion order
var SampleBooks = []BookInput{
	{Title: "The Hobbit", Author: "J.R.R. Tolkien", Completed: true},
	{Title: "Dune", Author: "Frank Herbert", Completed: false},
	{Title: "Pride and Prejudice", Author: "Jane Austen", Completed: true},
	{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", Completed: false},
	{Title: "Beloved", Author: "Toni Morrison", Completed: false},
	{Title: "One Hundred Years of Solitude", Author: "Gabriel García Márquez", Completed: true},
	{Title: "The Name of the Wind", Author: "Patrick Rothfuss", Completed: false},
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
