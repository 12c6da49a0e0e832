package borrowers

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

// BorrowersHandler holds the dependencies for user directory handlers.
type BorrowersHandler struct {
	Store storage.BorrowerStore
}

// NewBorrowersHandler creates a new BorrowersHandler.
func NewBorrowersHandler(store storage.BorrowerStore) *BorrowersHandler {
	return &BorrowersHandler{Store: store}
}

// CreateBorrower handles the logic for creating a new borrower.
func (h *BorrowersHandler) CreateBorrower(w http.ResponseWriter, r *http.Request) {
	var newBorrower api.NewBorrower
	if err := json.NewDecoder(r.Body).Decode(&newBorrower); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(newBorrower.Name) == "" {
		http.Error(w, "name is required", http.StatusUnprocessableEntity)
		return
	}

	created, err := h.Store.CreateBorrower(r.Context(), mapping.ToDomainNewBorrower(&newBorrower))
	if err != nil {
		status, msg := mapping.ToHttpStatus(err)
		if status >= http.StatusInternalServerError {
			slog.Error("failed to create borrower", "error", err)
		}
		http.Error(w, msg, status)
		return
	}

	apiBorrower := mapping.ToApiBorrower(created)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiBorrower); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// DeleteBorrower handles the logic for deleting a borrower.
func (h *BorrowersHandler) DeleteBorrower(w http.ResponseWriter, r *http.Request, borrowerId string) {
	if err := h.Store.DeleteBorrower(r.Context(), borrowerId); err != nil {
		status, msg := mapping.ToHttpStatus(err)
		http.Error(w, msg, status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListBorrowers handles the logic for retrieving all borrowers.
func (h *BorrowersHandler) ListBorrowers(w http.ResponseWriter, r *http.Request) {
	domainBorrowers, err := h.Store.ListBorrowers(r.Context())
	if err != nil {
		slog.Error("failed to list borrowers", "error", err)
		http.Error(w, "Failed to retrieve borrowers", http.StatusInternalServerError)
		return
	}

	// Sort by name, newest first among equal names.
	sort.Slice(domainBorrowers, func(i, j int) bool {
		if domainBorrowers[i].Name != domainBorrowers[j].Name {
			return domainBorrowers[i].Name < domainBorrowers[j].Name
		}
		return domainBorrowers[i].CreatedAt.After(domainBorrowers[j].CreatedAt)
	})

	apiBorrowers := make([]*api.Borrower, len(domainBorrowers))
	for i := range domainBorrowers {
		apiBorrowers[i] = mapping.ToApiBorrower(&domainBorrowers[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiBorrowers); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetBorrower handles the logic for retrieving a borrower.
func (h *BorrowersHandler) GetBorrower(w http.ResponseWriter, r *http.Request, borrowerId string) {
	borrower, err := h.Store.GetBorrower(r.Context(), borrowerId)
	if err != nil {
		status, msg := mapping.ToHttpStatus(err)
		http.Error(w, msg, status)
		return
	}

	apiBorrower := mapping.ToApiBorrower(borrower)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiBorrower); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
