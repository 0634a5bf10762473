package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound no matching row.
	ErrNotFound = errors.New("record not found")
	// ErrConflict the owning user already has a row (unique user_id).
	ErrConflict = errors.New("record already exists")
	// ErrSlugTaken the slug unique index rejected the insert.
	ErrSlugTaken = errors.New("slug already taken")
	// ErrDuplicate a generic unique-index violation.
	ErrDuplicate = errors.New("duplicate record")
)

// isDuplicateKey recognises unique violations whether or not the dialector
// translated them to gorm.ErrDuplicatedKey.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
