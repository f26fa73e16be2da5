package domain

// Todo is declared in the API schema but has no backing logic yet: no
// operation creates, mutates, or queries todos, and TaskList.todos always
// resolves empty.
type Todo struct {
	ID         string
	Content    string
	IsComplete bool
	TaskListID string
}
