package domain

import "context"

// TaskList is a named collection of todos shared by a set of member users.
// UserIDs is ordered; the first element is the creator and the sequence is
// never empty after creation. CreatedAt is an RFC3339 timestamp set once.
type TaskList struct {
	ID        string
	Title     string
	CreatedAt string
	UserIDs   []string
}

// HasMember reports whether id is in the member sequence. Identifiers are
// compared by their string form to tolerate representational differences.
func (l *TaskList) HasMember(id string) bool {
	for _, m := range l.UserIDs {
		if m == id {
			return true
		}
	}
	return false
}

// TaskListRepository defines persistence operations for task lists.
type TaskListRepository interface {
	Create(ctx context.Context, list *TaskList) error
	// GetByID returns ErrNotFound for absent or malformed identifiers.
	GetByID(ctx context.Context, id string) (*TaskList, error)
	// ListByMember returns every list whose UserIDs contains userID, in
	// natural store order.
	ListByMember(ctx context.Context, userID string) ([]TaskList, error)
	// UpdateTitle sets the title and returns the post-update document, or
	// ErrNotFound if no document matched.
	UpdateTitle(ctx context.Context, id, title string) (*TaskList, error)
	// Delete reports whether a document was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
	// AppendMember appends userID to the member sequence and returns the
	// post-update document, or ErrNotFound if no document matched. It does
	// not check for prior membership; callers are expected to.
	AppendMember(ctx context.Context, id, userID string) (*TaskList, error)
}
