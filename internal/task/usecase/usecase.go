package usecase

import (
	"time"

	"todo-tracker/internal/task/domain"
)

// TaskUsecase defines the interface for task business logic. Field
// validation and the owner check on every mutation happen here, so the
// delivery layer never talks to the repository directly.
type TaskUsecase interface {
	// CreateTask creates a new pending task for the owner
	CreateTask(ownerID uint, description, dueDate, dueTime string, priority int) (*domain.Task, error)

	// UpdateTask overwrites the task's fields and re-opens it.
	// Only the owning account may update.
	UpdateTask(actorID, taskID uint, description, dueDate, dueTime string, priority int) error

	// CompleteTask marks the task Completed; idempotent.
	// Only the owning account may complete.
	CompleteTask(actorID, taskID uint) error

	// DeleteTask removes the task permanently.
	// Only the owning account may delete.
	DeleteTask(actorID, taskID uint) error

	// IsOwner reports whether the task belongs to the account
	IsOwner(accountID, taskID uint) (bool, error)

	// GetTask retrieves a task by ID; (nil, nil) when absent
	GetTask(taskID uint) (*domain.Task, error)

	// ListAll returns every task of the owner
	ListAll(ownerID uint) ([]*domain.Task, error)

	// ListPending returns the owner's pending tasks
	ListPending(ownerID uint) ([]*domain.Task, error)

	// ListCompleted returns the owner's completed tasks
	ListCompleted(ownerID uint) ([]*domain.Task, error)

	// ListOverdue returns pending tasks due before today
	ListOverdue(ownerID uint, today time.Time) ([]*domain.Task, error)

	// ListDueToday returns pending tasks due today
	ListDueToday(ownerID uint, today time.Time) ([]*domain.Task, error)

	// ListUpcoming returns pending tasks due after today
	ListUpcoming(ownerID uint, today time.Time) ([]*domain.Task, error)
}
