package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Error kinds surfaced to the HTTP layer. Handlers map these to 400/404/403
// via errors.Is; everything else is a 500.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrPermission = errors.New("permission denied")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
}

func permissionf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrPermission}, args...)...)
}

// mapNoRows converts pgx's no-rows sentinel into the service taxonomy.
func mapNoRows(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFoundf("%s", what)
	}
	return err
}
