// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the server-side HTML pages.

Templates are embedded into the binary and parsed once at startup:

	renderer, err := views.New()
	renderer.Render(w, http.StatusOK, views.PageIndex, views.IndexData{Books: books})

# Pages

  - index: every book, newest first (IndexData)
  - new: empty book form (BookData with nil Book)
  - show: one book, or a "not found" notice when Book is nil (BookData)
  - edit: book form pre-filled, submitted as PUT via _method (BookData)

Forms post the completed checkbox without a value attribute, so browsers
send "on" when it is checked and omit it otherwise.

# Template Functions

  - ago: relative time ("3 minutes ago")
  - count: integer with thousands separators
*/
package views
