package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrForeignKeyViolation = "23503"
	PgErrUniqueViolation     = "23505"
	PgErrCheckViolation      = "23514"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsConstraintViolation true для ошибок ограничений схемы, которые означают невалидные данные.
func IsConstraintViolation(err error) bool {
	return IsPgErrorWithCode(err, PgErrCheckViolation) ||
		IsPgErrorWithCode(err, PgErrForeignKeyViolation)
}
