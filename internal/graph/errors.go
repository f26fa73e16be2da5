package graph

import (
	"errors"
	"log/slog"

	"github.com/jtng3/taskade/internal/domain"
)

// operationError carries a machine-readable code alongside the message, so
// clients can classify failures without matching message text. It satisfies
// the graphql-go ResolverError interface and surfaces the code under the
// standard extensions key.
type operationError struct {
	err  error
	code string
}

func (e *operationError) Error() string { return e.err.Error() }

func (e *operationError) Unwrap() error { return e.err }

func (e *operationError) Extensions() map[string]any {
	return map[string]any{"code": e.code}
}

// resolverError maps domain failures to coded operation errors. Unclassified
// errors are logged and passed through unchanged.
func resolverError(err error) error {
	switch {
	case errors.Is(err, domain.ErrAuthenticationRequired):
		return &operationError{err: err, code: "AUTHENTICATION_REQUIRED"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return &operationError{err: err, code: "INVALID_CREDENTIALS"}
	case errors.Is(err, domain.ErrInvalidInput):
		return &operationError{err: err, code: "INVALID_INPUT"}
	case errors.Is(err, domain.ErrNotFound):
		return &operationError{err: err, code: "NOT_FOUND"}
	}
	slog.Error("resolver error", "error", err)
	return err
}
