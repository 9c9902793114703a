package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

const uniqueViolation = "23505"

// uniqueConstraint returns the violated constraint name when err is a
// PostgreSQL unique violation.
func uniqueConstraint(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return pqErr.Constraint, true
	}
	return "", false
}

// validID filters out references that cannot name any stored row, so they
// are reported as missing rather than as a failed query. Only the canonical
// 36 character form is accepted; uuid.Parse also takes urn and braced forms
// that the uuid column type rejects.
func validID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

func notFound(entity, id string) error {
	return fmt.Errorf("%s with id %s: %w", entity, id, ErrNotFound)
}
