package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/chris/library-lending/pkg/fees"
	"github.com/chris/library-lending/pkg/models"
	"github.com/chris/library-lending/pkg/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, copies int64) *Store {
	t.Helper()
	s := New()
	_, err := s.CreateBook(context.Background(), &models.Book{Id: "book-1", Title: "Dune", TotalCopies: copies})
	require.NoError(t, err)
	return s
}

func newLoan(ref string, quantity int64) *models.Loan {
	return &models.Loan{
		Id:         uuid.New().String(),
		RefNbr:     ref,
		BookId:     "book-1",
		BorrowerId: "reader-1",
		Quantity:   quantity,
		Status:     models.BORROWED,
		Version:    1,
	}
}

func available(t *testing.T, s *Store) int64 {
	t.Helper()
	book, err := s.GetBook(context.Background(), "book-1")
	require.NoError(t, err)
	return book.AvailableCopies
}

func TestCreateLoan(t *testing.T) {
	ctx := context.Background()

	t.Run("Reserves Copies", func(t *testing.T) {
		s := seed(t, 3)
		require.NoError(t, s.CreateLoan(ctx, newLoan("CTU-AAAAAA", 2)))

		assert.Equal(t, int64(1), available(t, s))
		entries, _ := s.ListLedgerEntries(ctx, 10)
		require.Len(t, entries, 1)
		assert.Equal(t, models.RESERVE, entries[0].Movement)
		assert.Equal(t, int64(2), entries[0].Quantity)
	})

	t.Run("Insufficient Copies Leaves No Trace", func(t *testing.T) {
		s := seed(t, 1)
		err := s.CreateLoan(ctx, newLoan("CTU-AAAAAA", 2))

		assert.ErrorIs(t, err, storage.ErrInsufficientCopies)
		assert.Equal(t, int64(1), available(t, s))
		exists, _ := s.RefNumberExists(ctx, "CTU-AAAAAA")
		assert.False(t, exists)
		entries, _ := s.ListLedgerEntries(ctx, 10)
		assert.Empty(t, entries)
	})

	t.Run("Reference Collision", func(t *testing.T) {
		s := seed(t, 3)
		require.NoError(t, s.CreateLoan(ctx, newLoan("CTU-AAAAAA", 1)))

		err := s.CreateLoan(ctx, newLoan("CTU-AAAAAA", 1))
		assert.ErrorIs(t, err, storage.ErrReferenceCollision)
		assert.Equal(t, int64(2), available(t, s))
	})

	t.Run("Unknown Book", func(t *testing.T) {
		s := New()
		assert.ErrorIs(t, s.CreateLoan(ctx, newLoan("CTU-AAAAAA", 1)), storage.ErrNotFound)
	})

	t.Run("Concurrent Loans Never Oversubscribe", func(t *testing.T) {
		s := seed(t, 5)

		var wg sync.WaitGroup
		results := make(chan error, 20)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- s.CreateLoan(ctx, newLoan("CTU-"+uuid.New().String()[:6], 1))
			}()
		}
		wg.Wait()
		close(results)

		ok := 0
		for err := range results {
			if err == nil {
				ok++
			} else {
				assert.ErrorIs(t, err, storage.ErrInsufficientCopies)
			}
		}
		assert.Equal(t, 5, ok)
		assert.Zero(t, available(t, s))
	})
}

func TestSaveLoan(t *testing.T) {
	ctx := context.Background()

	t.Run("Release On Return", func(t *testing.T) {
		s := seed(t, 3)
		loan := newLoan("CTU-AAAAAA", 2)
		require.NoError(t, s.CreateLoan(ctx, loan))

		next := *loan
		next.Status = models.RETURNED
		next.Version++
		require.NoError(t, s.SaveLoan(ctx, loan, &next, 2))

		assert.Equal(t, int64(3), available(t, s))
		stored, err := s.GetLoan(ctx, loan.Id)
		require.NoError(t, err)
		assert.Equal(t, models.RETURNED, stored.Status)
	})

	t.Run("Stale Version", func(t *testing.T) {
		s := seed(t, 3)
		loan := newLoan("CTU-AAAAAA", 1)
		require.NoError(t, s.CreateLoan(ctx, loan))

		next := *loan
		next.Version++
		require.NoError(t, s.SaveLoan(ctx, loan, &next, 0))

		again := *loan
		again.Status = models.RETURNED
		again.Version++
		err := s.SaveLoan(ctx, loan, &again, 1)

		assert.ErrorIs(t, err, storage.ErrLoanModified)
		assert.Equal(t, int64(2), available(t, s))
	})
}

func TestDeleteLoan(t *testing.T) {
	ctx := context.Background()
	s := seed(t, 2)
	loan := newLoan("CTU-AAAAAA", 2)
	require.NoError(t, s.CreateLoan(ctx, loan))

	require.NoError(t, s.DeleteLoan(ctx, loan, 2))

	assert.Equal(t, int64(2), available(t, s))
	_, err := s.GetLoan(ctx, loan.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	exists, _ := s.RefNumberExists(ctx, "CTU-AAAAAA")
	assert.False(t, exists)

	assert.ErrorIs(t, s.DeleteLoan(ctx, loan, 0), storage.ErrNotFound)
}

func TestSettings(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.GetLateFeeConfig(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	cfg := fees.Config{Enabled: true, Rate: decimal.NewFromInt(2), Interval: "week"}
	require.NoError(t, s.PutLateFeeConfig(ctx, cfg))

	got, err := s.GetLateFeeConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "week", got.Interval)
	assert.True(t, got.Rate.Equal(cfg.Rate))
}

func TestConnections(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.AddConnection(ctx, "a"))
	require.NoError(t, s.AddConnection(ctx, "b"))
	require.NoError(t, s.RemoveConnection(ctx, "a"))

	ids, err := s.GetAllConnections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids)
}
