package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jtng3/taskade/internal/domain"
)

// TaskListService implements the task-list operations. Every operation takes
// the caller explicitly and fails with ErrAuthenticationRequired before
// touching persistence when the caller is absent.
//
// Reads, title updates, deletes, and member additions by id deliberately
// perform no membership check: any authenticated user may act on any list it
// knows the id of. Only myTaskLists is scoped to the caller.
type TaskListService struct {
	taskLists domain.TaskListRepository
	users     domain.UserRepository
}

// NewTaskListService creates a new TaskListService.
func NewTaskListService(taskLists domain.TaskListRepository, users domain.UserRepository) *TaskListService {
	return &TaskListService{taskLists: taskLists, users: users}
}

// MyTaskLists returns every list the caller is a member of, in natural store
// order.
func (s *TaskListService) MyTaskLists(ctx context.Context, caller *domain.User) ([]domain.TaskList, error) {
	if caller == nil {
		return nil, domain.ErrAuthenticationRequired
	}
	return s.taskLists.ListByMember(ctx, caller.ID)
}

// Get returns a list by id, or nil if no such list exists. A missing list is
// an absent result, not an error.
func (s *TaskListService) Get(ctx context.Context, caller *domain.User, id string) (*domain.TaskList, error) {
	if caller == nil {
		return nil, domain.ErrAuthenticationRequired
	}

	list, err := s.taskLists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// Create creates a list with the caller as its sole member and the creation
// time recorded once.
func (s *TaskListService) Create(ctx context.Context, caller *domain.User, title string) (*domain.TaskList, error) {
	if caller == nil {
		return nil, domain.ErrAuthenticationRequired
	}

	list := &domain.TaskList{
		Title:     title,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		UserIDs:   []string{caller.ID},
	}
	if err := s.taskLists.Create(ctx, list); err != nil {
		return nil, fmt.Errorf("create task list: %w", err)
	}
	return list, nil
}

// UpdateTitle renames a list and returns the post-update document. A missing
// id surfaces as ErrNotFound.
func (s *TaskListService) UpdateTitle(ctx context.Context, caller *domain.User, id, title string) (*domain.TaskList, error) {
	if caller == nil {
		return nil, domain.ErrAuthenticationRequired
	}
	return s.taskLists.UpdateTitle(ctx, id, title)
}

// Delete removes a list, reporting whether a document was actually removed.
// Repeat deletes and unknown ids return false, not an error.
func (s *TaskListService) Delete(ctx context.Context, caller *domain.User, id string) (bool, error) {
	if caller == nil {
		return false, domain.ErrAuthenticationRequired
	}
	return s.taskLists.Delete(ctx, id)
}

// AddUser appends a user to a list's member sequence. A missing list yields
// nil without error; adding an existing member is an idempotent no-op
// returning the unchanged list.
func (s *TaskListService) AddUser(ctx context.Context, caller *domain.User, listID, userID string) (*domain.TaskList, error) {
	if caller == nil {
		return nil, domain.ErrAuthenticationRequired
	}

	list, err := s.taskLists.GetByID(ctx, listID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if list.HasMember(userID) {
		return list, nil
	}

	updated, err := s.taskLists.AppendMember(ctx, listID, userID)
	if err != nil {
		// Deleted between the read and the update.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return updated, nil
}

// ResolveMembers resolves a list's member ids to user documents, one
// independent lookup per id. Lookups run concurrently but the result follows
// the stored id order; an id with no matching user is omitted from its
// position rather than failing the whole resolution.
func (s *TaskListService) ResolveMembers(ctx context.Context, list *domain.TaskList) ([]domain.User, error) {
	resolved := make([]*domain.User, len(list.UserIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range list.UserIDs {
		i, id := i, id
		g.Go(func() error {
			user, err := s.users.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return nil
				}
				return err
			}
			resolved[i] = user
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolve members: %w", err)
	}

	users := make([]domain.User, 0, len(resolved))
	for _, u := range resolved {
		if u != nil {
			users = append(users, *u)
		}
	}
	return users, nil
}
