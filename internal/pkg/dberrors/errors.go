package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
	CheckViolation      = "23514"
)

func asPgError(err error, code string) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr, true
	}
	return nil, false
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	pgErr, ok := asPgError(err, UniqueViolation)
	return ok && pgErr.ConstraintName == constraintName
}

// IsDuplicateKeyError checks for a unique violation on any constraint.
func IsDuplicateKeyError(err error) bool {
	_, ok := asPgError(err, UniqueViolation)
	return ok
}

// IsForeignKeyError checks if the error is a foreign key violation on the named constraint.
// An empty constraintName matches any foreign key violation.
func IsForeignKeyError(err error, constraintName string) bool {
	pgErr, ok := asPgError(err, ForeignKeyViolation)
	return ok && (constraintName == "" || pgErr.ConstraintName == constraintName)
}

// IsCheckViolation checks if the error is a CHECK constraint violation.
func IsCheckViolation(err error) bool {
	_, ok := asPgError(err, CheckViolation)
	return ok
}
