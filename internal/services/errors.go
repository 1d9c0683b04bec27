package services

import (
	"errors"
	"strings"

	"github.com/R3D13N5/gestion-estudiantes/validation"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// a login response never reveals which field was wrong.
	ErrInvalidCredentials = errors.New("invalid_credentials")
	// ErrDuplicateContact means the email is already registered.
	ErrDuplicateContact = errors.New("duplicate_contact")
)

// ValidationError reports missing or malformed form input per field.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for f := range e.Violations {
		fields = append(fields, f)
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// isDuplicateErr recognizes a unique-constraint violation from either
// backend (postgres in production, sqlite in tests). The uniqueness of
// users.correo is ultimately enforced by the store, so a racing insert
// surfaces here rather than through the pre-check.
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
