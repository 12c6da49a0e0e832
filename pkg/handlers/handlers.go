package handlers

import (
	"log/slog"

	"github.com/chris/library-lending/pkg/api"
	"github.com/chris/library-lending/pkg/fees"
	"github.com/chris/library-lending/pkg/handlers/books"
	"github.com/chris/library-lending/pkg/handlers/borrowers"
	"github.com/chris/library-lending/pkg/handlers/ledger"
	"github.com/chris/library-lending/pkg/handlers/loans"
	"github.com/chris/library-lending/pkg/handlers/settings"
	"github.com/chris/library-lending/pkg/storage"
	"github.com/chris/library-lending/pkg/websockets"
)

// ApiHandler implements the generated server interface.
// Each group of endpoints lives in its own handler; ApiHandler only composes them.
type ApiHandler struct {
	*books.BooksHandler
	*borrowers.BorrowersHandler
	*loans.LoansHandler
	*ledger.LedgerHandler
	*settings.SettingsHandler
}

// NewApiHandler wires every endpoint group to the same store and lending service.
func NewApiHandler(store storage.ApiStore, service loans.LoanService, feeProvider fees.Provider, publisher websockets.Publisher, logger *slog.Logger) *ApiHandler {
	return &ApiHandler{
		BooksHandler:     books.NewBooksHandler(store),
		BorrowersHandler: borrowers.NewBorrowersHandler(store),
		LoansHandler:     loans.NewLoansHandler(service, store, publisher, logger),
		LedgerHandler:    ledger.NewLedgerHandler(store),
		SettingsHandler:  settings.NewSettingsHandler(store, feeProvider),
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)
