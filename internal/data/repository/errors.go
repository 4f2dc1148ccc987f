package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned by writes that matched no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is a unique constraint violation (e.g. company name).
	ErrDuplicate = errors.New("already exists")
	// ErrInvalidReference is a foreign key pointing at a missing row.
	ErrInvalidReference = errors.New("invalid reference")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// classifyPgError maps constraint violations to repository sentinels and
// returns nil for anything else.
func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return ErrDuplicate
	case pgForeignKeyViolation:
		return ErrInvalidReference
	}
	return nil
}
