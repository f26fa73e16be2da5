// Package memory provides in-memory repository implementations for tests.
// Identifiers are generated as 24-char hex strings to match the shape the
// MongoDB repositories produce. Each repository counts calls and supports
// per-method error injection.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jtng3/taskade/internal/domain"
)

// UserRepository is an in-memory implementation of domain.UserRepository.
type UserRepository struct {
	mu    sync.RWMutex
	seq   int
	users map[string]domain.User
	order []string

	// Calls counts every repository call, for asserting that an operation
	// short-circuited before touching persistence.
	Calls int

	// Error injection for tests.
	CreateErr error
	GetErr    error
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.CreateErr != nil {
		return r.CreateErr
	}

	r.seq++
	user.ID = fmt.Sprintf("%024x", r.seq)
	r.users[user.ID] = *user
	r.order = append(r.order, user.ID)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.GetErr != nil {
		return nil, r.GetErr
	}

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

// GetByEmail returns the first user created with the given email, matching
// the natural-order semantics of the store (emails are not unique).
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.GetErr != nil {
		return nil, r.GetErr
	}

	for _, id := range r.order {
		if user := r.users[id]; user.Email == email {
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}
