package books_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chris/library-lending/pkg/api"
	"github.com/chris/library-lending/pkg/handlers/books"
	"github.com/chris/library-lending/pkg/inventory"
	"github.com/chris/library-lending/pkg/models"
	"github.com/chris/library-lending/pkg/storage"
	"github.com/chris/library-lending/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBook(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("CreateBook", mock.Anything, mock.MatchedBy(func(b *models.Book) bool {
			return b.Title == "Dune" && b.TotalCopies == 3
		})).Return(&models.Book{Id: "book-1", Title: "Dune", TotalCopies: 3, AvailableCopies: 3, Version: 1}, nil)

		h := books.NewBooksHandler(mockStorage)

		body, _ := json.Marshal(api.NewBook{Title: "Dune", TotalCopies: 3})
		req := httptest.NewRequest(http.MethodPost, "/books", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.CreateBook(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var returned api.Book
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, int64(3), returned.AvailableCopies)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Missing Title", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		h := books.NewBooksHandler(mockStorage)

		req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"total_copies":2}`))
		rr := httptest.NewRecorder()

		h.CreateBook(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mockStorage.AssertNotCalled(t, "CreateBook", mock.Anything, mock.Anything)
	})

	t.Run("Zero Copies", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("CreateBook", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: total copies must be at least one", inventory.ErrInvalidQuantity))
		h := books.NewBooksHandler(mockStorage)

		req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"title":"Dune","total_copies":0}`))
		rr := httptest.NewRecorder()

		h.CreateBook(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("Duplicate Id", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("CreateBook", mock.Anything, mock.Anything).Return(nil, storage.ErrAlreadyExists)
		h := books.NewBooksHandler(mockStorage)

		req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"id":"book-1","title":"Dune","total_copies":1}`))
		rr := httptest.NewRecorder()

		h.CreateBook(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestGetBook(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetBook", mock.Anything, "missing").Return(nil, fmt.Errorf("book missing: %w", storage.ErrNotFound))
		h := books.NewBooksHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/books/missing", nil)
		rr := httptest.NewRecorder()

		h.GetBook(rr, req, "missing")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestListBooks(t *testing.T) {
	t.Run("Sorted By Title", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListBooks", mock.Anything).Return([]models.Book{
			{Id: "b", Title: "Neuromancer"},
			{Id: "a", Title: "Dune"},
		}, nil)
		h := books.NewBooksHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		rr := httptest.NewRecorder()

		h.ListBooks(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var returned []api.Book
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		require.Len(t, returned, 2)
		assert.Equal(t, "Dune", returned[0].Title)
	})
}

func TestSetBookCopies(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("SetTotalCopies", mock.Anything, "book-1", int64(5)).
			Return(&models.Book{Id: "book-1", TotalCopies: 5, AvailableCopies: 4}, nil)
		h := books.NewBooksHandler(mockStorage)

		req := httptest.NewRequest(http.MethodPut, "/books/book-1/copies", strings.NewReader(`{"total_copies":5}`))
		rr := httptest.NewRecorder()

		h.SetBookCopies(rr, req, "book-1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Copies On Loan", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("SetTotalCopies", mock.Anything, "book-1", int64(1)).
			Return(nil, fmt.Errorf("%w: 2 copies of book book-1 are on loan", storage.ErrInsufficientCopies))
		h := books.NewBooksHandler(mockStorage)

		req := httptest.NewRequest(http.MethodPut, "/books/book-1/copies", strings.NewReader(`{"total_copies":1}`))
		rr := httptest.NewRecorder()

		h.SetBookCopies(rr, req, "book-1")

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}
