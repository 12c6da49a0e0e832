package mapping

import (
	"errors"
	"net/http"

	"github.com/chris/library-lending/pkg/fees"
	"github.com/chris/library-lending/pkg/inventory"
	"github.com/chris/library-lending/pkg/lending"
	"github.com/chris/library-lending/pkg/loans"
	"github.com/chris/library-lending/pkg/storage"
)

// ToHttpStatus maps a lending error to the status code and message returned to API clients.
func ToHttpStatus(err error) (int, string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, storage.ErrInsufficientCopies):
		return http.StatusConflict, storage.ErrInsufficientCopies.Error()
	case errors.Is(err, loans.ErrInvalidTransition),
		errors.Is(err, storage.ErrLoanModified),
		errors.Is(err, storage.ErrBookModified),
		errors.Is(err, storage.ErrAlreadyExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, storage.ErrReferenceCollision):
		return http.StatusServiceUnavailable, "could not allocate a loan reference number, try again"
	case errors.Is(err, lending.ErrInvalidLoan),
		errors.Is(err, loans.ErrInvalidDates),
		errors.Is(err, loans.ErrInvalidFees),
		errors.Is(err, inventory.ErrInvalidQuantity),
		errors.Is(err, fees.ErrInvalidInterval):
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
