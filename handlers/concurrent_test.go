// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/book-tracker/testutil"
)

// TestConcurrentCreates verifies that simultaneous creates each produce
// exactly one book with a distinct id
func TestConcurrentCreates(t *testing.T) {
	h, s := setupBookHandler(t)

	numWriters := 20

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numWriters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			form := url.Values{
				"title":  {fmt.Sprintf("Book %02d", idx)},
				"author": {"Concurrent Author"},
			}
			if idx%2 == 0 {
				form.Set("completed", "on")
			}

			w := httptest.NewRecorder()
			h.Create(w, testutil.MakeRequest("POST", "/books", form, nil))

			if w.Code == http.StatusSeeOther {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numWriters {
		t.Errorf("Expected %d successful creates, got %d", numWriters, successCount.Load())
	}

	books := testutil.ListTestBooks(t, s)
	if len(books) != numWriters {
		t.Fatalf("Expected %d books in store, got %d", numWriters, len(books))
	}

	ids := make(map[string]bool, len(books))
	completed := 0
	for _, b := range books {
		if ids[b.ID] {
			t.Errorf("Duplicate id %s", b.ID)
		}
		ids[b.ID] = true
		if b.Completed {
			completed++
		}
	}
	if completed != numWriters/2 {
		t.Errorf("Expected %d completed books, got %d", numWriters/2, completed)
	}
}

// TestConcurrentDeleteAndUpdate races a delete against updates of the same book.
// Either order is acceptable; every response must be a redirect or a 404.
func TestConcurrentDeleteAndUpdate(t *testing.T) {
	h, s := setupBookHandler(t)
	book := testutil.CreateTestBook(t, s, "Contested", "Someone", false)

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /books/{id}", h.Update)
	mux.HandleFunc("DELETE /books/{id}", h.Delete)

	var unexpected atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			var w *httptest.ResponseRecorder
			if idx == 5 {
				w = httptest.NewRecorder()
				mux.ServeHTTP(w, testutil.MakeRequest("DELETE", "/books/"+book.ID, nil, nil))
			} else {
				form := url.Values{"title": {fmt.Sprintf("Edit %d", idx)}, "author": {"Someone"}}
				w = httptest.NewRecorder()
				mux.ServeHTTP(w, testutil.MakeRequest("PUT", "/books/"+book.ID, form, nil))
			}

			if w.Code != http.StatusSeeOther && w.Code != http.StatusNotFound {
				unexpected.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if unexpected.Load() != 0 {
		t.Errorf("Got %d responses that were neither redirect nor 404", unexpected.Load())
	}
	if got := testutil.GetTestBook(t, s, book.ID); got != nil {
		t.Errorf("Expected book to be deleted, got %+v", got)
	}
}
