package repository

import (
	"errors"

	"todo-tracker/internal/task/domain"
)

// ErrTaskNotFound is returned when a referenced task id does not exist.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the interface for task data access.
// All list queries are scoped to one owner, ordered by id, and return an
// empty slice rather than an error when nothing matches. The date-relative
// queries take today's date in the domain.DateLayout form.
type TaskRepository interface {
	// Create inserts a new task with status Pending
	Create(task *domain.Task) error

	// Update overwrites the four mutable fields and resets the status to
	// Pending, re-opening a completed task. Missing ids are a silent no-op.
	Update(id uint, description, dueDate, dueTime string, priority int) error

	// Complete marks a task Completed; idempotent
	Complete(id uint) error

	// Delete removes a task permanently; missing ids are a silent no-op
	Delete(id uint) error

	// IsOwner reports whether the task belongs to the account.
	// Returns ErrTaskNotFound when the task id does not exist.
	IsOwner(accountID, taskID uint) (bool, error)

	// FindByID finds a task by its ID; (nil, nil) when absent
	FindByID(id uint) (*domain.Task, error)

	// FindAll returns every task of the owner
	FindAll(ownerID uint) ([]*domain.Task, error)

	// FindPending returns the owner's tasks with status Pending
	FindPending(ownerID uint) ([]*domain.Task, error)

	// FindCompleted returns the owner's tasks with status Completed
	FindCompleted(ownerID uint) ([]*domain.Task, error)

	// FindOverdue returns pending tasks due strictly before today
	FindOverdue(ownerID uint, today string) ([]*domain.Task, error)

	// FindDueToday returns pending tasks due exactly today
	FindDueToday(ownerID uint, today string) ([]*domain.Task, error)

	// FindUpcoming returns pending tasks due strictly after today
	FindUpcoming(ownerID uint, today string) ([]*domain.Task, error)
}
