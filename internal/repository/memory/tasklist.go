package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jtng3/taskade/internal/domain"
)

// TaskListRepository is an in-memory implementation of
// domain.TaskListRepository.
type TaskListRepository struct {
	mu    sync.RWMutex
	seq   int
	lists map[string]domain.TaskList
	order []string

	// Calls counts every repository call, for asserting that an operation
	// short-circuited before touching persistence.
	Calls int

	// Error injection for tests.
	CreateErr error
	GetErr    error
	UpdateErr error
	DeleteErr error
}

// NewTaskListRepository creates an empty in-memory task-list repository.
func NewTaskListRepository() *TaskListRepository {
	return &TaskListRepository{lists: make(map[string]domain.TaskList)}
}

func (r *TaskListRepository) Create(ctx context.Context, list *domain.TaskList) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.CreateErr != nil {
		return r.CreateErr
	}

	r.seq++
	list.ID = fmt.Sprintf("%024x", r.seq)
	r.lists[list.ID] = clone(list)
	r.order = append(r.order, list.ID)
	return nil
}

func (r *TaskListRepository) GetByID(ctx context.Context, id string) (*domain.TaskList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.GetErr != nil {
		return nil, r.GetErr
	}

	list, ok := r.lists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := clone(&list)
	return &out, nil
}

func (r *TaskListRepository) ListByMember(ctx context.Context, userID string) ([]domain.TaskList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.GetErr != nil {
		return nil, r.GetErr
	}

	var out []domain.TaskList
	for _, id := range r.order {
		list := r.lists[id]
		if slices.Contains(list.UserIDs, userID) {
			out = append(out, clone(&list))
		}
	}
	return out, nil
}

func (r *TaskListRepository) UpdateTitle(ctx context.Context, id, title string) (*domain.TaskList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.UpdateErr != nil {
		return nil, r.UpdateErr
	}

	list, ok := r.lists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	list.Title = title
	r.lists[id] = list
	out := clone(&list)
	return &out, nil
}

func (r *TaskListRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.DeleteErr != nil {
		return false, r.DeleteErr
	}

	if _, ok := r.lists[id]; !ok {
		return false, nil
	}
	delete(r.lists, id)
	r.order = slices.DeleteFunc(r.order, func(s string) bool { return s == id })
	return true, nil
}

func (r *TaskListRepository) AppendMember(ctx context.Context, id, userID string) (*domain.TaskList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.UpdateErr != nil {
		return nil, r.UpdateErr
	}

	list, ok := r.lists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	list.UserIDs = append(slices.Clone(list.UserIDs), userID)
	r.lists[id] = list
	out := clone(&list)
	return &out, nil
}

func clone(list *domain.TaskList) domain.TaskList {
	out := *list
	out.UserIDs = slices.Clone(list.UserIDs)
	return out
}
