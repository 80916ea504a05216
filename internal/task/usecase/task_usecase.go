package usecase

import (
	"errors"
	"time"

	"todo-tracker/internal/task/domain"
	"todo-tracker/internal/task/repository"
)

var (
	// ErrNotOwner is returned when an account tries to mutate a task it
	// did not create
	ErrNotOwner = errors.New("task belongs to another account")
	// ErrInvalidPriority is returned when the priority is outside 1-5
	ErrInvalidPriority = errors.New("priority must be between 1 and 5")
	// ErrInvalidDueDate is returned when the due date is not YYYY-MM-DD
	ErrInvalidDueDate = errors.New("due date must be in YYYY-MM-DD form")
	// ErrInvalidDueTime is returned when the due time is not HH:MM
	ErrInvalidDueTime = errors.New("due time must be in HH:MM form")
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{taskRepo: taskRepo}
}

func (u *taskUsecase) CreateTask(ownerID uint, description, dueDate, dueTime string, priority int) (*domain.Task, error) {
	if err := validateFields(dueDate, dueTime, priority); err != nil {
		return nil, err
	}

	task := &domain.Task{
		OwnerID:     ownerID,
		Description: description,
		DueDate:     dueDate,
		DueTime:     dueTime,
		Priority:    priority,
	}
	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) UpdateTask(actorID, taskID uint, description, dueDate, dueTime string, priority int) error {
	if err := validateFields(dueDate, dueTime, priority); err != nil {
		return err
	}
	if err := u.requireOwner(actorID, taskID); err != nil {
		return err
	}
	return u.taskRepo.Update(taskID, description, dueDate, dueTime, priority)
}

func (u *taskUsecase) CompleteTask(actorID, taskID uint) error {
	if err := u.requireOwner(actorID, taskID); err != nil {
		return err
	}
	return u.taskRepo.Complete(taskID)
}

func (u *taskUsecase) DeleteTask(actorID, taskID uint) error {
	if err := u.requireOwner(actorID, taskID); err != nil {
		return err
	}
	return u.taskRepo.Delete(taskID)
}

func (u *taskUsecase) IsOwner(accountID, taskID uint) (bool, error) {
	return u.taskRepo.IsOwner(accountID, taskID)
}

func (u *taskUsecase) GetTask(taskID uint) (*domain.Task, error) {
	return u.taskRepo.FindByID(taskID)
}

func (u *taskUsecase) ListAll(ownerID uint) ([]*domain.Task, error) {
	return u.taskRepo.FindAll(ownerID)
}

func (u *taskUsecase) ListPending(ownerID uint) ([]*domain.Task, error) {
	return u.taskRepo.FindPending(ownerID)
}

func (u *taskUsecase) ListCompleted(ownerID uint) ([]*domain.Task, error) {
	return u.taskRepo.FindCompleted(ownerID)
}

func (u *taskUsecase) ListOverdue(ownerID uint, today time.Time) ([]*domain.Task, error) {
	return u.taskRepo.FindOverdue(ownerID, today.Format(domain.DateLayout))
}

func (u *taskUsecase) ListDueToday(ownerID uint, today time.Time) ([]*domain.Task, error) {
	return u.taskRepo.FindDueToday(ownerID, today.Format(domain.DateLayout))
}

func (u *taskUsecase) ListUpcoming(ownerID uint, today time.Time) ([]*domain.Task, error) {
	return u.taskRepo.FindUpcoming(ownerID, today.Format(domain.DateLayout))
}

// requireOwner runs the ownership rule shared by every mutating operation.
// Missing tasks surface as repository.ErrTaskNotFound.
func (u *taskUsecase) requireOwner(actorID, taskID uint) error {
	owner, err := u.taskRepo.IsOwner(actorID, taskID)
	if err != nil {
		return err
	}
	if !owner {
		return ErrNotOwner
	}
	return nil
}

func validateFields(dueDate, dueTime string, priority int) error {
	if priority < 1 || priority > 5 {
		return ErrInvalidPriority
	}
	if _, err := time.Parse(domain.DateLayout, dueDate); err != nil {
		return ErrInvalidDueDate
	}
	if _, err := time.Parse(domain.TimeLayout, dueTime); err != nil {
		return ErrInvalidDueTime
	}
	return nil
}
