package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/chris/library-lending/pkg/api"
	"github.com/chris/library-lending/pkg/fees"
	"github.com/chris/library-lending/pkg/handlers"
	"github.com/chris/library-lending/pkg/lending"
	"github.com/chris/library-lending/pkg/storage/memory"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t   *testing.T
	srv *httptest.Server
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func newTestServer(t *testing.T) *testServer {
	return newTestServerAt(t, nil)
}

func newTestServerAt(t *testing.T, clock *testClock) *testServer {
	t.Helper()
	store := memory.New()
	provider := lending.NewSettingsFeeProvider(store, fees.Config{Enabled: true, Rate: decimal.NewFromInt(1), Interval: "day"})
	service := lending.NewService(store, provider, nil)
	if clock != nil {
		service.Now = clock.Now
	}

	r := chi.NewRouter()
	api.HandlerFromMux(handlers.NewApiHandler(store, service, provider, nil, nil), r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return &testServer{t: t, srv: srv}
}

func (s *testServer) do(method, path, body string, out any) int {
	s.t.Helper()
	req, err := http.NewRequest(method, s.srv.URL+path, strings.NewReader(body))
	require.NoError(s.t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(s.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestLendingFlow(t *testing.T) {
	s := newTestServer(t)
	due := time.Now().AddDate(0, 0, 14).UTC().Format(time.RFC3339)

	var book api.Book
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/books", `{"id":"book-1","title":"Dune","total_copies":3}`, &book))
	assert.Equal(t, int64(3), book.AvailableCopies)

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/borrowers", `{"id":"reader-1","name":"Ada"}`, nil))

	var loan api.Loan
	t.Run("Borrow Two Copies", func(t *testing.T) {
		code := s.do(http.MethodPost, "/loans", `{"book_id":"book-1","borrower_id":"reader-1","quantity":2,"expected_return_date":"`+due+`"}`, &loan)
		require.Equal(t, http.StatusCreated, code)
		assert.Regexp(t, `^CTU-[A-Z0-9]{6}$`, loan.RefNbr)
		assert.Equal(t, api.Borrowed, loan.Status)

		s.do(http.MethodGet, "/books/book-1", "", &book)
		assert.Equal(t, int64(1), book.AvailableCopies)
	})

	t.Run("No Copies Left", func(t *testing.T) {
		code := s.do(http.MethodPost, "/loans", `{"book_id":"book-1","borrower_id":"reader-1","quantity":2,"expected_return_date":"`+due+`"}`, nil)
		assert.Equal(t, http.StatusConflict, code)

		s.do(http.MethodGet, "/books/book-1", "", &book)
		assert.Equal(t, int64(1), book.AvailableCopies)
	})

	t.Run("Unknown Borrower", func(t *testing.T) {
		code := s.do(http.MethodPost, "/loans", `{"book_id":"book-1","borrower_id":"nobody","expected_return_date":"`+due+`"}`, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, code)
	})

	t.Run("Open Loans", func(t *testing.T) {
		var open []api.Loan
		require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/loans/open", "", &open))
		require.Len(t, open, 1)
		assert.Equal(t, loan.Id, open[0].Id)
	})

	t.Run("Return Restores Copies", func(t *testing.T) {
		var returned api.Loan
		require.Equal(t, http.StatusOK, s.do(http.MethodPatch, "/loans/"+loan.Id, `{"status":"returned"}`, &returned))
		assert.Equal(t, api.Returned, returned.Status)
		assert.NotNil(t, returned.DateReturned)

		s.do(http.MethodGet, "/books/book-1", "", &book)
		assert.Equal(t, int64(3), book.AvailableCopies)
	})

	t.Run("Returned Loan Cannot Be Reopened", func(t *testing.T) {
		code := s.do(http.MethodPatch, "/loans/"+loan.Id, `{"status":"borrowed"}`, nil)
		assert.Equal(t, http.StatusConflict, code)
	})

	t.Run("Ledger Records Both Movements", func(t *testing.T) {
		var entries []api.LedgerEntry
		require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/ledger?limit=10", "", &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, api.LedgerEntryMovement("release"), *entries[0].Movement)
		assert.Equal(t, api.LedgerEntryMovement("reserve"), *entries[1].Movement)
	})

	t.Run("Borrower History", func(t *testing.T) {
		var history []api.Loan
		require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/borrowers/reader-1/loans", "", &history))
		assert.Len(t, history, 1)
	})

	t.Run("Delete Loan", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/loans/"+loan.Id, "", nil))
		assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/loans/"+loan.Id, "", nil))
	})
}

func TestLateFeeSettings(t *testing.T) {
	s := newTestServer(t)

	var cfg api.LateFeeConfig
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/settings/late-fees", "", &cfg))
	assert.Equal(t, "day", cfg.Interval)

	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/settings/late-fees", `{"enabled":false,"rate":"0.75","interval":"week"}`, nil))
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/settings/late-fees", "", &cfg))
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "week", cfg.Interval)
	assert.True(t, cfg.Rate.Equal(decimal.RequireFromString("0.75")))
}

func TestUnknownLoanPath(t *testing.T) {
	s := newTestServer(t)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/loans/does-not-exist", "", nil))
}

func TestSameDayLoan(t *testing.T) {
	clock := &testClock{now: time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)}
	s := newTestServerAt(t, clock)

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/books", `{"id":"book-1","title":"Dune","total_copies":1}`, nil))
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/borrowers", `{"id":"reader-1","name":"Ada"}`, nil))

	var loan api.Loan
	t.Run("Due Later Today", func(t *testing.T) {
		code := s.do(http.MethodPost, "/loans", `{"book_id":"book-1","borrower_id":"reader-1","expected_return_date":"2025-03-15T18:00:00Z"}`, &loan)
		require.Equal(t, http.StatusCreated, code)
		assert.True(t, loan.DateBorrowed.Equal(clock.Now()))
		assert.True(t, loan.CalculatedFees.IsZero())
		assert.Equal(t, api.Borrowed, loan.DisplayStatus)
	})

	t.Run("No Fee At The Due Instant", func(t *testing.T) {
		clock.Set(time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC))

		var got api.Loan
		require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/loans/"+loan.Id, "", &got))
		assert.True(t, got.CalculatedFees.IsZero())
		assert.True(t, got.AmountDue.IsZero())
		assert.Equal(t, api.Borrowed, got.DisplayStatus)
	})

	t.Run("First Interval Starts After Due", func(t *testing.T) {
		clock.Set(time.Date(2025, 3, 15, 18, 0, 1, 0, time.UTC))

		var got api.Loan
		require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/loans/"+loan.Id, "", &got))
		assert.True(t, got.CalculatedFees.Equal(decimal.NewFromInt(1)))
		assert.Equal(t, api.Overdue, got.DisplayStatus)
	})

	t.Run("Sub Cent Fee Rejected", func(t *testing.T) {
		code := s.do(http.MethodPatch, "/loans/"+loan.Id, `{"fees":"1.005"}`, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, code)
	})

	t.Run("Returned Same Day", func(t *testing.T) {
		var returned api.Loan
		code := s.do(http.MethodPatch, "/loans/"+loan.Id, `{"status":"returned","date_returned":"2025-03-15T12:30:00Z"}`, &returned)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, api.Returned, returned.Status)
		require.NotNil(t, returned.DateReturned)
		assert.True(t, returned.DateReturned.Equal(time.Date(2025, 3, 15, 12, 30, 0, 0, time.UTC)))
		assert.True(t, returned.CalculatedFees.IsZero())
	})
}
