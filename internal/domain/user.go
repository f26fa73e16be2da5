package domain

import "context"

// User represents a registered user of the application. ID is the
// hex-encoded document identifier assigned by the persistence layer.
// PasswordHash is never exposed through the API.
type User struct {
	ID           string
	Name         string
	Email        string
	Avatar       string
	PasswordHash string
}

// AuthUser pairs a user with a freshly issued bearer token. It is a
// transient response value, never persisted.
type AuthUser struct {
	User  *User
	Token string
}

// UserRepository defines persistence operations for users. Email lookups are
// exact matches; email uniqueness is not enforced at this layer, so GetByEmail
// returns the first match in natural store order.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
