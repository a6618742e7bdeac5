package balance

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrGroupNotFound = errors.New("group not found")
	ErrUserNotFound  = errors.New("user not found")

	// ErrDataIntegrity matches every *DataIntegrityError
	ErrDataIntegrity = errors.New("data integrity violation")
)

// DataIntegrityError reports a stored reference that did not resolve while
// a balance view was being built. The request fails instead of returning a
// partial view.
type DataIntegrityError struct {
	Entity string // "user", "group" or "expense"
	ID     int64
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("%s: %s %d is referenced but does not exist", ErrDataIntegrity, e.Entity, e.ID)
}

func (e *DataIntegrityError) Is(target error) bool {
	return target == ErrDataIntegrity
}
