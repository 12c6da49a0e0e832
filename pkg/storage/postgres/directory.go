package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chris/library-lending/pkg/fees"
	"github.com/chris/library-lending/pkg/models"
	"github.com/chris/library-lending/pkg/storage"
	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const lateFeeSetting = "late_fees"

type borrowerRow struct {
	Id        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

// GetBorrower retrieves a borrower by ID.
func (s *Store) GetBorrower(ctx context.Context, borrowerID string) (*models.Borrower, error) {
	sql, args, err := dialect.From(tableBorrowers).
		Select("id", "name", "email", "created_at").
		Where(goqu.C(colID).Eq(borrowerID)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query borrower: %w", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[borrowerRow])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("borrower with ID %s: %w", borrowerID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read borrower: %w", err)
	}

	return &models.Borrower{Id: row.Id, Name: row.Name, Email: row.Email, CreatedAt: row.CreatedAt}, nil
}

// CreateBorrower creates a new borrower.
func (s *Store) CreateBorrower(ctx context.Context, borrower *models.Borrower) (*models.Borrower, error) {
	if borrower.Id == "" {
		borrower.Id = uuid.New().String()
	}
	borrower.CreatedAt = s.now()

	_, err := exec(ctx, s.db, func() (string, []any, error) {
		return dialect.Insert(tableBorrowers).Rows(goqu.Record{
			"id":         borrower.Id,
			"name":       borrower.Name,
			"email":      borrower.Email,
			"created_at": borrower.CreatedAt,
		}).Prepared(true).ToSQL()
	})
	if isUniqueViolation(err, "") {
		return nil, fmt.Errorf("borrower with ID %s: %w", borrower.Id, storage.ErrAlreadyExists)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert borrower: %w", err)
	}
	return borrower, nil
}

// DeleteBorrower deletes a borrower.
func (s *Store) DeleteBorrower(ctx context.Context, borrowerID string) error {
	affected, err := exec(ctx, s.db, func() (string, []any, error) {
		return dialect.Delete(tableBorrowers).Where(goqu.C(colID).Eq(borrowerID)).Prepared(true).ToSQL()
	})
	if err != nil {
		return fmt.Errorf("failed to delete borrower: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("borrower with ID %s: %w", borrowerID, storage.ErrNotFound)
	}
	return nil
}

// ListBorrowers retrieves all borrowers ordered by name.
func (s *Store) ListBorrowers(ctx context.Context) ([]models.Borrower, error) {
	sql, args, err := dialect.From(tableBorrowers).
		Select("id", "name", "email", "created_at").
		Order(goqu.C("name").Asc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query borrowers: %w", err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[borrowerRow])
	if err != nil {
		return nil, fmt.Errorf("failed to read borrowers: %w", err)
	}

	borrowers := make([]models.Borrower, 0, len(list))
	for _, r := range list {
		borrowers = append(borrowers, models.Borrower{Id: r.Id, Name: r.Name, Email: r.Email, CreatedAt: r.CreatedAt})
	}
	return borrowers, nil
}

// GetLateFeeConfig reads the late fee configuration, returning storage.ErrNotFound until one is saved.
func (s *Store) GetLateFeeConfig(ctx context.Context) (fees.Config, error) {
	sql, args, err := selectSettingQuery(lateFeeSetting)
	if err != nil {
		return fees.Config{}, fmt.Errorf("failed to build query: %w", err)
	}

	var raw []byte
	err = s.db.QueryRow(ctx, sql, args...).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return fees.Config{}, storage.ErrNotFound
	}
	if err != nil {
		return fees.Config{}, fmt.Errorf("failed to read late fee configuration: %w", err)
	}

	var cfg fees.Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return fees.Config{}, fmt.Errorf("failed to decode late fee configuration: %w", err)
	}
	return cfg, nil
}

// PutLateFeeConfig replaces the late fee configuration.
func (s *Store) PutLateFeeConfig(ctx context.Context, cfg fees.Config) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode late fee configuration: %w", err)
	}

	if _, err := exec(ctx, s.db, func() (string, []any, error) { return upsertSettingQuery(lateFeeSetting, raw, s.now()) }); err != nil {
		return fmt.Errorf("failed to save late fee configuration: %w", err)
	}
	return nil
}

// ListLedgerEntries returns the most recent inventory movements, newest first.
func (s *Store) ListLedgerEntries(ctx context.Context, limit int32) ([]models.LedgerEntry, error) {
	sql, args, err := listLedgerQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []models.LedgerEntry
	for rows.Next() {
		var e models.LedgerEntry
		var movement string
		if err := rows.Scan(&e.EntryID, &e.LoanID, &e.RefNbr, &e.BookID, &movement, &e.Quantity, &e.Description, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to read ledger entry: %w", err)
		}
		e.Movement = models.Movement(movement)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger entries: %w", err)
	}
	return entries, nil
}

// AddConnection records a websocket subscriber.
func (s *Store) AddConnection(ctx context.Context, connectionID string) error {
	_, err := exec(ctx, s.db, func() (string, []any, error) {
		return dialect.Insert(tableConnections).
			Rows(goqu.Record{"connection_id": connectionID, "created_at": s.now()}).
			OnConflict(goqu.DoNothing()).
			Prepared(true).ToSQL()
	})
	if err != nil {
		return fmt.Errorf("failed to save connection %s: %w", connectionID, err)
	}
	return nil
}

// RemoveConnection forgets a websocket subscriber.
func (s *Store) RemoveConnection(ctx context.Context, connectionID string) error {
	_, err := exec(ctx, s.db, func() (string, []any, error) {
		return dialect.Delete(tableConnections).Where(goqu.C("connection_id").Eq(connectionID)).Prepared(true).ToSQL()
	})
	if err != nil {
		return fmt.Errorf("failed to delete connection %s: %w", connectionID, err)
	}
	return nil
}

// GetAllConnections lists every websocket subscriber.
func (s *Store) GetAllConnections(ctx context.Context) ([]string, error) {
	sql, args, err := dialect.From(tableConnections).Select("connection_id").Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query connections: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to read connections: %w", err)
	}
	return ids, nil
}
