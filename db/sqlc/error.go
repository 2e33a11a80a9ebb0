package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	ForeignKeyViolation = "23503"
	UniqueViolation     = "23505"
	CheckViolation      = "23514"
)

// ErrRecordNotFound is returned when a query matches no rows.
var ErrRecordNotFound = pgx.ErrNoRows

// ErrInsufficientPoints is returned by point-debiting transactions when the
// user's balance cannot cover the requested amount. The transaction rolls
// back completely; no debit is applied.
var ErrInsufficientPoints = errors.New("insufficient points")

// ErrAlreadyCompleted is returned when completing a quest or journey that
// has already been completed. No reward is credited twice.
var ErrAlreadyCompleted = errors.New("already completed")

// ErrorCode extracts the SQLSTATE code of a postgres error, or "" for other
// errors.
func ErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
