package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrPersistence      = errors.New("persistence failure")
)

// postgres SQLSTATE for foreign_key_violation
const pgForeignKeyViolation = "23503"

// translateError maps driver and gorm errors onto the repository sentinels,
// keeping the original error in the chain for logging.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrInvalidReference, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
