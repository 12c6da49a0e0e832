package loans

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/library-lending/pkg/api"
	"github.com/chris/library-lending/pkg/lending"
	loanstate "github.com/chris/library-lending/pkg/loans"
	"github.com/chris/library-lending/pkg/mapping"
	"github.com/chris/library-lending/pkg/storage"
	"github.com/chris/library-lending/pkg/websockets"
)

// LoanService is the part of the lending service the loan endpoints call.
type LoanService interface {
	CreateLoan(ctx context.Context, req lending.NewLoan) (*lending.LoanView, error)
	GetLoan(ctx context.Context, loanID string) (*lending.LoanView, error)
	ListLoansByBorrower(ctx context.Context, borrowerID string) ([]lending.LoanView, error)
	ListOpenLoans(ctx context.Context) ([]lending.LoanView, error)
	UpdateLoan(ctx context.Context, loanID string, u loanstate.Update) (*lending.LoanView, error)
	DeleteLoan(ctx context.Context, loanID string) error
}

// LoansHandler holds the dependencies for loan-related handlers.
type LoansHandler struct {
	Service   LoanService
	Books     storage.BookStore
	Publisher websockets.Publisher
	Logger    *slog.Logger
}

// NewLoansHandler creates a new LoansHandler.
func NewLoansHandler(service LoanService, books storage.BookStore, publisher websockets.Publisher, logger *slog.Logger) *LoansHandler {
	if publisher == nil {
		publisher = &websockets.NoOpPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LoansHandler{Service: service, Books: books, Publisher: publisher, Logger: logger}
}

// CreateLoan reserves copies for a new loan.
func (h *LoansHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var newLoan api.NewLoan
	if err := json.NewDecoder(r.Body).Decode(&newLoan); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	view, err := h.Service.CreateLoan(r.Context(), mapping.ToDomainNewLoan(&newLoan))
	if err != nil {
		h.fail(w, "create loan", err)
		return
	}

	h.notify(r.Context(), websockets.LoanCreated, view)
	h.respond(w, http.StatusCreated, mapping.ToApiLoan(view))
}

// GetLoan handles the logic for retrieving a loan by its ID.
func (h *LoansHandler) GetLoan(w http.ResponseWriter, r *http.Request, loanId string) {
	view, err := h.Service.GetLoan(r.Context(), loanId)
	if err != nil {
		h.fail(w, "retrieve loan", err)
		return
	}

	h.respond(w, http.StatusOK, mapping.ToApiLoan(view))
}

// UpdateLoan applies a status, lost flag, fee or date edit.
func (h *LoansHandler) UpdateLoan(w http.ResponseWriter, r *http.Request, loanId string) {
	var update api.LoanUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	view, err := h.Service.UpdateLoan(r.Context(), loanId, mapping.ToDomainLoanUpdate(&update))
	if err != nil {
		h.fail(w, "update loan", err)
		return
	}

	h.notify(r.Context(), websockets.LoanUpdated, view)
	h.respond(w, http.StatusOK, mapping.ToApiLoan(view))
}

// DeleteLoan removes a loan, returning its copies to the shelf when it was still open.
func (h *LoansHandler) DeleteLoan(w http.ResponseWriter, r *http.Request, loanId string) {
	view, err := h.Service.GetLoan(r.Context(), loanId)
	if err != nil {
		h.fail(w, "delete loan", err)
		return
	}

	if err := h.Service.DeleteLoan(r.Context(), loanId); err != nil {
		h.fail(w, "delete loan", err)
		return
	}

	h.notify(r.Context(), websockets.LoanDeleted, view)
	w.WriteHeader(http.StatusNoContent)
}

// ListLoansByBorrower handles the logic for retrieving all loans of a borrower.
func (h *LoansHandler) ListLoansByBorrower(w http.ResponseWriter, r *http.Request, borrowerId string) {
	views, err := h.Service.ListLoansByBorrower(r.Context(), borrowerId)
	if err != nil {
		h.fail(w, "retrieve loans", err)
		return
	}

	h.respond(w, http.StatusOK, mapping.ToApiLoans(views))
}

// ListOpenLoans handles the logic for retrieving every loan still holding copies.
func (h *LoansHandler) ListOpenLoans(w http.ResponseWriter, r *http.Request) {
	views, err := h.Service.ListOpenLoans(r.Context())
	if err != nil {
		h.fail(w, "retrieve loans", err)
		return
	}

	h.respond(w, http.StatusOK, mapping.ToApiLoans(views))
}

// notify pushes a loanUpdate message. Failures are logged and never fail the request.
func (h *LoansHandler) notify(ctx context.Context, event websockets.LoanEvent, view *lending.LoanView) {
	payload := websockets.LoanUpdatePayload{
		Event:  event,
		LoanID: view.Id,
		RefNbr: view.RefNbr,
		Status: string(view.DisplayStatus),
		BookID: view.BookId,
	}

	book, err := h.Books.GetBook(ctx, view.BookId)
	if err != nil {
		h.Logger.Error("failed to get book for websocket message", "book_id", view.BookId, "error", err)
		return
	}
	payload.AvailableCopies = book.AvailableCopies

	msg := websockets.Message{Type: websockets.MessageTypeLoanUpdate, Payload: payload}
	if err := h.Publisher.Publish(ctx, msg); err != nil {
		h.Logger.Error("failed to publish websocket message", "loan_id", view.Id, "error", err)
	}
}

func (h *LoansHandler) fail(w http.ResponseWriter, action string, err error) {
	status, msg := mapping.ToHttpStatus(err)
	if status >= http.StatusInternalServerError {
		h.Logger.Error("failed to "+action, "error", err)
	}
	http.Error(w, msg, status)
}

func (h *LoansHandler) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.Logger.Error("failed to write response", "error", err)
	}
}
