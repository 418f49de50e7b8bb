package persistence

import (
	"errors"
	"strings"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"gorm.io/gorm"
)

// notFound maps gorm.ErrRecordNotFound to a NOT_FOUND domain error with the given message
func notFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NotFound(message)
	}
	return err
}

// isUniqueViolation reports whether err is a unique constraint failure on sqlite or postgres
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
