package graph

import (
	"context"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/jtng3/taskade/internal/domain"
	"github.com/jtng3/taskade/internal/service"
)

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	auth      *service.AuthService
	taskLists *service.TaskListService
}

// NewResolver creates the root resolver over the given services.
func NewResolver(auth *service.AuthService, taskLists *service.TaskListService) *Resolver {
	return &Resolver{auth: auth, taskLists: taskLists}
}

// SignUpInput matches the SignUpInput schema type.
type SignUpInput struct {
	Email    string
	Password string
	Name     string
	Avatar   *string
}

// SignInInput matches the SignInInput schema type.
type SignInInput struct {
	Email    string
	Password string
}

func (r *Resolver) MyTaskLists(ctx context.Context) ([]*TaskListResolver, error) {
	lists, err := r.taskLists.MyTaskLists(ctx, UserFromContext(ctx))
	if err != nil {
		return nil, resolverError(err)
	}

	out := make([]*TaskListResolver, 0, len(lists))
	for i := range lists {
		out = append(out, &TaskListResolver{list: &lists[i], svc: r.taskLists})
	}
	return out, nil
}

func (r *Resolver) GetTaskList(ctx context.Context, args struct{ ID graphql.ID }) (*TaskListResolver, error) {
	list, err := r.taskLists.Get(ctx, UserFromContext(ctx), string(args.ID))
	if err != nil {
		return nil, resolverError(err)
	}
	if list == nil {
		return nil, nil
	}
	return &TaskListResolver{list: list, svc: r.taskLists}, nil
}

func (r *Resolver) SignUp(ctx context.Context, args struct{ Input *SignUpInput }) (*AuthUserResolver, error) {
	if args.Input == nil {
		return nil, resolverError(fmt.Errorf("%w: input is required", domain.ErrInvalidInput))
	}

	avatar := ""
	if args.Input.Avatar != nil {
		avatar = *args.Input.Avatar
	}

	authUser, err := r.auth.SignUp(ctx, args.Input.Email, args.Input.Password, args.Input.Name, avatar)
	if err != nil {
		return nil, resolverError(err)
	}
	return &AuthUserResolver{authUser: authUser}, nil
}

func (r *Resolver) SignIn(ctx context.Context, args struct{ Input *SignInInput }) (*AuthUserResolver, error) {
	if args.Input == nil {
		return nil, resolverError(fmt.Errorf("%w: input is required", domain.ErrInvalidInput))
	}

	authUser, err := r.auth.SignIn(ctx, args.Input.Email, args.Input.Password)
	if err != nil {
		return nil, resolverError(err)
	}
	return &AuthUserResolver{authUser: authUser}, nil
}

func (r *Resolver) CreateTaskList(ctx context.Context, args struct{ Title string }) (*TaskListResolver, error) {
	list, err := r.taskLists.Create(ctx, UserFromContext(ctx), args.Title)
	if err != nil {
		return nil, resolverError(err)
	}
	return &TaskListResolver{list: list, svc: r.taskLists}, nil
}

func (r *Resolver) UpdateTaskList(ctx context.Context, args struct {
	ID    graphql.ID
	Title string
}) (*TaskListResolver, error) {
	list, err := r.taskLists.UpdateTitle(ctx, UserFromContext(ctx), string(args.ID), args.Title)
	if err != nil {
		return nil, resolverError(err)
	}
	return &TaskListResolver{list: list, svc: r.taskLists}, nil
}

func (r *Resolver) DeleteTaskList(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	removed, err := r.taskLists.Delete(ctx, UserFromContext(ctx), string(args.ID))
	if err != nil {
		return false, resolverError(err)
	}
	return removed, nil
}

func (r *Resolver) AddUserToTaskList(ctx context.Context, args struct {
	TaskListID graphql.ID
	UserID     graphql.ID
}) (*TaskListResolver, error) {
	list, err := r.taskLists.AddUser(ctx, UserFromContext(ctx), string(args.TaskListID), string(args.UserID))
	if err != nil {
		return nil, resolverError(err)
	}
	if list == nil {
		return nil, nil
	}
	return &TaskListResolver{list: list, svc: r.taskLists}, nil
}

// TaskListResolver resolves the TaskList type.
type TaskListResolver struct {
	list *domain.TaskList
	svc  *service.TaskListService
}

func (r *TaskListResolver) ID() graphql.ID { return graphql.ID(r.list.ID) }

func (r *TaskListResolver) CreatedAt() string { return r.list.CreatedAt }

func (r *TaskListResolver) Title() string { return r.list.Title }

// Progress is a placeholder: completion tracking is not persisted, so it is
// always 0.
func (r *TaskListResolver) Progress() int32 { return 0 }

func (r *TaskListResolver) Users(ctx context.Context) ([]*UserResolver, error) {
	users, err := r.svc.ResolveMembers(ctx, r.list)
	if err != nil {
		return nil, resolverError(err)
	}

	out := make([]*UserResolver, 0, len(users))
	for i := range users {
		out = append(out, &UserResolver{user: &users[i]})
	}
	return out, nil
}

// Todos is schema surface only; no operation creates todos.
func (r *TaskListResolver) Todos() []*TodoResolver { return []*TodoResolver{} }

// UserResolver resolves the User type. The password hash is not reachable
// through any field.
type UserResolver struct {
	user *domain.User
}

func (r *UserResolver) ID() graphql.ID { return graphql.ID(r.user.ID) }

func (r *UserResolver) Name() string { return r.user.Name }

func (r *UserResolver) Email() string { return r.user.Email }

func (r *UserResolver) Avatar() *string {
	if r.user.Avatar == "" {
		return nil
	}
	return &r.user.Avatar
}

// AuthUserResolver resolves the AuthUser response type.
type AuthUserResolver struct {
	authUser *domain.AuthUser
}

func (r *AuthUserResolver) User() *UserResolver {
	return &UserResolver{user: r.authUser.User}
}

func (r *AuthUserResolver) Token() string { return r.authUser.Token }

// TodoResolver resolves the Todo type. Nothing constructs it today: todos are
// declared in the schema but have no backing operations.
type TodoResolver struct {
	todo *domain.Todo
	list *TaskListResolver
}

func (r *TodoResolver) ID() graphql.ID { return graphql.ID(r.todo.ID) }

func (r *TodoResolver) Content() string { return r.todo.Content }

func (r *TodoResolver) IsComplete() bool { return r.todo.IsComplete }

func (r *TodoResolver) TaskListID() graphql.ID { return graphql.ID(r.todo.TaskListID) }

func (r *TodoResolver) TaskList() *TaskListResolver { return r.list }
