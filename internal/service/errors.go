package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrValidation marks client errors: malformed identifiers, empty codes,
	// results referencing unknown tests. Controllers map it to 400.
	ErrValidation = errors.New("validation error")

	// ErrTransient marks a get-or-create that lost the lookup-then-create
	// race and still could not find the row on the retry lookup. The caller
	// may retry the whole request.
	ErrTransient = errors.New("transient conflict")
)

const uniqueViolationCode = "23505"

// isDuplicateKey reports whether err is a unique constraint violation, either
// translated by GORM or raw from the postgres driver.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
