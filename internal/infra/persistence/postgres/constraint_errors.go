package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint classification for translating driver errors into the
// repository's typed sentinels. GORM's translated sentinels cover the common
// cases; the SQLSTATE fallback catches paths the translator misses.

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasSQLState(err, "23503")
}

func isNotNullConstraintViolation(err error) bool {
	return hasSQLState(err, "23502") ||
		strings.Contains(strings.ToLower(err.Error()), "not null")
}

func hasSQLState(err error, code string) bool {
	return strings.Contains(err.Error(), "SQLSTATE "+code)
}
