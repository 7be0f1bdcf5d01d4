package postgres

import (
	"strings"

	"vidtube/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE class 23 codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// gorm translates some driver errors itself when TranslateError is on.
var translatedViolations = map[error]string{
	gorm.ErrDuplicatedKey:           pgUniqueViolation,
	gorm.ErrForeignKeyViolated:      pgForeignKeyViolation,
	gorm.ErrCheckConstraintViolated: pgCheckViolation,
}

// violationCode returns the integrity violation SQLSTATE behind err, or "".
func violationCode(err error) string {
	if err == nil {
		return ""
	}
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.Code
	}
	for sentinel, code := range translatedViolations {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "null value") || strings.Contains(msg, "not null") {
		return pgNotNullViolation
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	return violationCode(err) == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return violationCode(err) == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	return violationCode(err) == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	return violationCode(err) == pgCheckViolation
}
