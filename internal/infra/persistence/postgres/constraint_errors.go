package postgres

import (
	"strings"

	"roster/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// Unique index names created by the migration, mapped to the account field
// they guard.
var uniqueConstraintFields = map[string]string{
	"uq_accounts_public_id": "public_id",
	"uq_accounts_username":  "username",
	"uq_accounts_email":     "email",
}

// duplicateKeyField inspects a database error and, when it is a unique
// constraint violation, returns the colliding account field.
func duplicateKeyField(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		if field, ok := uniqueConstraintFields[pgErr.ConstraintName]; ok {
			return field, true
		}
		// Unique violation on a constraint we don't know by name; fall back to
		// scanning the message so the caller still sees a conflict.
		return fieldFromMessage(pgErr.Detail + " " + pgErr.Message), true
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fieldFromMessage(err.Error()), true
	}

	return "", false
}

func fieldFromMessage(msg string) string {
	msg = strings.ToLower(msg)
	for _, field := range []string{"public_id", "username", "email"} {
		if strings.Contains(msg, field) {
			return field
		}
	}

	return "unknown"
}

// asDuplicateKeyError converts a unique violation into the repository's typed
// error, or returns nil when err is not a uniqueness conflict.
func asDuplicateKeyError(err error) *repository.DuplicateKeyError {
	if field, ok := duplicateKeyField(err); ok {
		return &repository.DuplicateKeyError{Field: field}
	}

	return nil
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23502 is the PostgreSQL not_null_violation error code.
		return pgErr.Code == "23502"
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null")
}
