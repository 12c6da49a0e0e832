package ledger

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/library-lending/pkg/api"
	"github.com/chris/library-lending/pkg/mapping"
	"github.com/chris/library-lending/pkg/storage"
)

const (
	defaultLimit = int32(20)
	maxLimit     = int32(500)
)

// LedgerHandler holds the dependencies for inventory ledger handlers.
type LedgerHandler struct {
	Store storage.LedgerReader
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(store storage.LedgerReader) *LedgerHandler {
	return &LedgerHandler{Store: store}
}

// ListLedgerEntries returns the most recent reserve and release movements, newest first.
func (h *LedgerHandler) ListLedgerEntries(w http.ResponseWriter, r *http.Request, params api.ListLedgerEntriesParams) {
	limit := defaultLimit
	if params.Limit != nil {
		limit = *params.Limit
	}
	if limit < 1 {
		http.Error(w, "limit must be at least 1", http.StatusBadRequest)
		return
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	domainEntries, err := h.Store.ListLedgerEntries(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list ledger entries", "error", err)
		http.Error(w, "Failed to retrieve ledger entries", http.StatusInternalServerError)
		return
	}

	apiEntries := make([]*api.LedgerEntry, len(domainEntries))
	for i := range domainEntries {
		apiEntries[i] = mapping.ToApiLedgerEntry(&domainEntries[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiEntries); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
