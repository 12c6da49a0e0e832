package postgres

import (
	"time"

	"github.com/chris/library-lending/pkg/models"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	dialectPostgres = "postgres"

	tableBooks       = "books"
	tableBorrowers   = "borrowers"
	tableLoans       = "loans"
	tableLedger      = "ledger_entries"
	tableSettings    = "settings"
	tableConnections = "websocket_connections"

	colID      = "id"
	colVersion = "version"
	colRefNbr  = "ref_nbr"
	colStatus  = "status"
)

var dialect = goqu.Dialect(dialectPostgres)

var bookColumns = []any{"id", "title", "author", "total_copies", "available_copies", "version", "created_at", "updated_at"}

var loanColumns = []any{
	"id", "ref_nbr", "book_id", "borrower_id", "quantity", "status", "is_lost",
	"date_borrowed", "expected_return_date", "date_returned", "date_canceled",
	goqu.L("fees::text").As("fees"),
	"version", "created_at", "updated_at",
}

// selectBookQuery reads one book. forUpdate takes the row lock that serializes reservations.
func selectBookQuery(bookID string, forUpdate bool) (string, []any, error) {
	ds := dialect.From(tableBooks).Select(bookColumns...).Where(goqu.C(colID).Eq(bookID))
	if forUpdate {
		ds = ds.ForUpdate(exp.Wait)
	}
	return ds.Prepared(true).ToSQL()
}

func listBooksQuery() (string, []any, error) {
	return dialect.From(tableBooks).Select(bookColumns...).Order(goqu.C("title").Asc()).Prepared(true).ToSQL()
}

func insertBookQuery(b *models.Book) (string, []any, error) {
	return dialect.Insert(tableBooks).Rows(goqu.Record{
		"id":               b.Id,
		"title":            b.Title,
		"author":           b.Author,
		"total_copies":     b.TotalCopies,
		"available_copies": b.AvailableCopies,
		"version":          b.Version,
		"created_at":       b.CreatedAt,
		"updated_at":       b.UpdatedAt,
	}).Prepared(true).ToSQL()
}

// updateBookCopiesQuery writes new copy counts for a book locked by the caller.
func updateBookCopiesQuery(b models.Book) (string, []any, error) {
	return dialect.Update(tableBooks).Set(goqu.Record{
		"total_copies":     b.TotalCopies,
		"available_copies": b.AvailableCopies,
		"version":          b.Version,
		"updated_at":       b.UpdatedAt,
	}).Where(goqu.C(colID).Eq(b.Id)).Prepared(true).ToSQL()
}

func selectLoanQuery(loanID string) (string, []any, error) {
	return dialect.From(tableLoans).Select(loanColumns...).Where(goqu.C(colID).Eq(loanID)).Prepared(true).ToSQL()
}

func listLoansQuery(where goqu.Ex) (string, []any, error) {
	return dialect.From(tableLoans).Select(loanColumns...).Where(where).Order(goqu.C("created_at").Desc()).Prepared(true).ToSQL()
}

func refExistsQuery(refNbr string) (string, []any, error) {
	return dialect.From(tableLoans).Select(goqu.L("1")).Where(goqu.C(colRefNbr).Eq(refNbr)).Limit(1).Prepared(true).ToSQL()
}

func loanRecord(l *models.Loan) goqu.Record {
	var fees any
	if l.Fees != nil {
		fees = goqu.L("?::text::numeric", l.Fees.String())
	}
	return goqu.Record{
		"id":                   l.Id,
		"ref_nbr":              l.RefNbr,
		"book_id":              l.BookId,
		"borrower_id":          l.BorrowerId,
		"quantity":             l.Quantity,
		"status":               string(l.Status),
		"is_lost":              l.IsLost,
		"date_borrowed":        l.DateBorrowed,
		"expected_return_date": l.ExpectedReturnDate,
		"date_returned":        l.DateReturned,
		"date_canceled":        l.DateCanceled,
		"fees":                 fees,
		"version":              l.Version,
		"created_at":           l.CreatedAt,
		"updated_at":           l.UpdatedAt,
	}
}

func insertLoanQuery(l *models.Loan) (string, []any, error) {
	return dialect.Insert(tableLoans).Rows(loanRecord(l)).Prepared(true).ToSQL()
}

// updateLoanQuery replaces a loan only while it is still at expectedVersion.
func updateLoanQuery(l *models.Loan, expectedVersion int64) (string, []any, error) {
	record := loanRecord(l)
	delete(record, "id")
	delete(record, "created_at")
	return dialect.Update(tableLoans).Set(record).Where(
		goqu.C(colID).Eq(l.Id),
		goqu.C(colVersion).Eq(expectedVersion),
	).Prepared(true).ToSQL()
}

func deleteLoanQuery(loanID string, expectedVersion int64) (string, []any, error) {
	return dialect.Delete(tableLoans).Where(
		goqu.C(colID).Eq(loanID),
		goqu.C(colVersion).Eq(expectedVersion),
	).Prepared(true).ToSQL()
}

func insertLedgerQuery(e models.LedgerEntry) (string, []any, error) {
	return dialect.Insert(tableLedger).Rows(goqu.Record{
		"entry_id":    e.EntryID,
		"loan_id":     e.LoanID,
		"ref_nbr":     e.RefNbr,
		"book_id":     e.BookID,
		"movement":    string(e.Movement),
		"quantity":    e.Quantity,
		"description": e.Description,
		"created_at":  e.Timestamp,
	}).Prepared(true).ToSQL()
}

func listLedgerQuery(limit int32) (string, []any, error) {
	return dialect.From(tableLedger).
		Select("entry_id", "loan_id", "ref_nbr", "book_id", "movement", "quantity", "description", "created_at").
		Order(goqu.C("created_at").Desc()).
		Limit(uint(limit)).
		Prepared(true).ToSQL()
}

func selectSettingQuery(key string) (string, []any, error) {
	return dialect.From(tableSettings).Select("value").Where(goqu.C("setting_key").Eq(key)).Prepared(true).ToSQL()
}

func upsertSettingQuery(key string, value []byte, now time.Time) (string, []any, error) {
	return dialect.Insert(tableSettings).
		Rows(goqu.Record{"setting_key": key, "value": goqu.L("?::jsonb", string(value)), "updated_at": now}).
		OnConflict(goqu.DoUpdate("setting_key", goqu.Record{
			"value":      goqu.L("EXCLUDED.value"),
			"updated_at": goqu.L("EXCLUDED.updated_at"),
		})).
		Prepared(true).ToSQL()
}
