package graph

import (
	"context"

	"github.com/jtng3/taskade/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// WithUser returns a context carrying the authenticated caller.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext extracts the authenticated caller from the request context.
// Returns nil for an anonymous request.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}
