package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"loanerInventory/internal/logger"
	"loanerInventory/models"
)

// LoanerRepository is the storage service for loaner records. It is built once
// at startup around the process-wide connection and passed to the menu.
type LoanerRepository struct {
	db *sqlx.DB
}

// NewLoanerRepository creates a new LoanerRepository.
func NewLoanerRepository(db *sql.DB) *LoanerRepository {
	return &LoanerRepository{db: sqlx.NewDb(db, "sqlite3")}
}

// Create inserts a new record. Status is always 'Open' on insert regardless of
// what the caller set. Returns the stored record with its generated ID.
func (r *LoanerRepository) Create(ctx context.Context, rec *models.LoanerRecord) (*models.LoanerRecord, error) {
	if rec == nil {
		return nil, errors.New("record is nil")
	}
	const q = `INSERT INTO computers (technician, user, date, brand, serial, identification, status) VALUES (?,?,?,?,?,?,?)`
	logger.DatabaseCall("insert", q)
	res, err := r.db.ExecContext(ctx, q,
		rec.Technician, rec.User, rec.Date, rec.Brand, rec.Serial, rec.Identification, string(models.StatusOpen))
	if err != nil {
		logger.DatabaseResult("insert", 0, err)
		return nil, fmt.Errorf("insert record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}
	logger.DatabaseResult("insert", 1, nil, "id", id)

	out := *rec
	out.ID = id
	out.Status = models.StatusOpen
	return &out, nil
}

// GetByID fetches a record by its ID. Returns ErrNotFound when no row matches.
func (r *LoanerRepository) GetByID(ctx context.Context, id int64) (*models.LoanerRecord, error) {
	q := `SELECT ` + recordColumns + ` FROM computers WHERE id = ?`
	logger.DatabaseCall("get", q, "id", id)
	var rec models.LoanerRecord
	if err := r.db.GetContext(ctx, &rec, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.DatabaseResult("get", 0, err)
		return nil, fmt.Errorf("get record %d: %w", id, err)
	}
	return &rec, nil
}

// Search returns every record whose field contains fragment as a
// case-sensitive substring, in insertion order. An empty result is not an error.
func (r *LoanerRepository) Search(ctx context.Context, field Field, fragment string) ([]models.LoanerRecord, error) {
	q, ok := searchQueries[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
	logger.DatabaseCall("search", q, "field", field)
	var out []models.LoanerRecord
	if err := r.db.SelectContext(ctx, &out, q, fragment); err != nil {
		logger.DatabaseResult("search", 0, err)
		return nil, fmt.Errorf("search %s: %w", field, err)
	}
	logger.DatabaseResult("search", int64(len(out)), nil)
	return out, nil
}

// UpdateField overwrites a single field on the record with the given id.
func (r *LoanerRepository) UpdateField(ctx context.Context, id int64, field Field, value string) error {
	q, ok := updateQueries[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
	return r.exec(ctx, "update", q, value, id)
}

// MarkComplete closes the record with the given id. Repeating it is harmless.
func (r *LoanerRepository) MarkComplete(ctx context.Context, id int64) error {
	return r.exec(ctx, "complete", `UPDATE computers SET status = ? WHERE id = ?`, string(models.StatusComplete), id)
}

// exec runs a single-row write and maps zero affected rows to ErrNotFound.
func (r *LoanerRepository) exec(ctx context.Context, op, q string, args ...any) error {
	logger.DatabaseCall(op, q)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		logger.DatabaseResult(op, 0, err)
		return fmt.Errorf("%s record: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s record: %w", op, err)
	}
	logger.DatabaseResult(op, n, nil)
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
