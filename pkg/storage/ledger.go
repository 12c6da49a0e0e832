package storage

import (
	"context"

	"github.com/chris/library-lending/pkg/models"
)

// LedgerReader defines the interface for reading inventory ledger data.
type LedgerReader interface {
	// ListLedgerEntries retrieves the most recent reserve/release entries.
	ListLedgerEntries(ctx context.Context, limit int32) ([]models.LedgerEntry, error)
}
