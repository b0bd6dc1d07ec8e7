package storage

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a unique field (votingId, email) is already taken.
	ErrDuplicate = errors.New("duplicate record")
	// ErrAlreadyVoted means the voter already has a vote on record.
	ErrAlreadyVoted = errors.New("voter has already cast their vote")
)

// isDuplicateErr recognizes a unique-constraint violation. TranslateError
// normalizes this to gorm.ErrDuplicatedKey on both Postgres and sqlite; the
// string checks cover drivers that surface the raw error.
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
