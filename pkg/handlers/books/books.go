package books

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/chris/library-lending/pkg/api"
	"github.com/chris/library-lending/pkg/mapping"
	"github.com/chris/library-lending/pkg/storage"
)

// BooksHandler holds the dependencies for catalog handlers.
type BooksHandler struct {
	Store storage.BookStore
}

// NewBooksHandler creates a new BooksHandler.
func NewBooksHandler(store storage.BookStore) *BooksHandler {
	return &BooksHandler{Store: store}
}

// CreateBook adds a book with every copy on the shelf.
func (h *BooksHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var newBook api.NewBook
	if err := json.NewDecoder(r.Body).Decode(&newBook); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(newBook.Title) == "" {
		http.Error(w, "title is required", http.StatusUnprocessableEntity)
		return
	}

	created, err := h.Store.CreateBook(r.Context(), mapping.ToDomainNewBook(&newBook))
	if err != nil {
		fail(w, "create book", err)
		return
	}

	respond(w, http.StatusCreated, mapping.ToApiBook(created))
}

// GetBook handles the logic for retrieving a book by its ID.
func (h *BooksHandler) GetBook(w http.ResponseWriter, r *http.Request, bookId string) {
	book, err := h.Store.GetBook(r.Context(), bookId)
	if err != nil {
		fail(w, "retrieve book", err)
		return
	}

	respond(w, http.StatusOK, mapping.ToApiBook(book))
}

// ListBooks returns the catalog ordered by title.
func (h *BooksHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	domainBooks, err := h.Store.ListBooks(r.Context())
	if err != nil {
		fail(w, "retrieve books", err)
		return
	}

	sort.Slice(domainBooks, func(i, j int) bool {
		return domainBooks[i].Title < domainBooks[j].Title
	})

	apiBooks := make([]*api.Book, len(domainBooks))
	for i := range domainBooks {
		apiBooks[i] = mapping.ToApiBook(&domainBooks[i])
	}

	respond(w, http.StatusOK, apiBooks)
}

// SetBookCopies changes how many copies the library owns.
// Copies currently on loan cannot be removed.
func (h *BooksHandler) SetBookCopies(w http.ResponseWriter, r *http.Request, bookId string) {
	var copies api.BookCopies
	if err := json.NewDecoder(r.Body).Decode(&copies); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	book, err := h.Store.SetTotalCopies(r.Context(), bookId, copies.TotalCopies)
	if err != nil {
		fail(w, "update book copies", err)
		return
	}

	respond(w, http.StatusOK, mapping.ToApiBook(book))
}

func fail(w http.ResponseWriter, action string, err error) {
	status, msg := mapping.ToHttpStatus(err)
	if status >= http.StatusInternalServerError {
		slog.Error("failed to "+action, "error", err)
	}
	http.Error(w, msg, status)
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
