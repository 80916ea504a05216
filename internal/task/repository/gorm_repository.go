package repository

import (
	"errors"
	"fmt"

	"todo-tracker/internal/task/domain"

	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	task.Status = domain.StatusPending
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *gormTaskRepository) Update(id uint, description, dueDate, dueTime string, priority int) error {
	err := r.db.Model(&domain.Task{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"description": description,
			"due_date":    dueDate,
			"due_time":    dueTime,
			"priority":    priority,
			// Editing re-opens the task regardless of its previous status.
			"status": domain.StatusPending,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

func (r *gormTaskRepository) Complete(id uint) error {
	err := r.db.Model(&domain.Task{}).Where("id = ?", id).
		Update("status", domain.StatusCompleted).Error
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}
	return nil
}

func (r *gormTaskRepository) Delete(id uint) error {
	if err := r.db.Delete(&domain.Task{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (r *gormTaskRepository) IsOwner(accountID, taskID uint) (bool, error) {
	var task domain.Task
	err := r.db.Select("owner_id").Where("id = ?", taskID).Take(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrTaskNotFound
		}
		return false, fmt.Errorf("failed to check task owner: %w", err)
	}
	return task.OwnerID == accountID, nil
}

func (r *gormTaskRepository) FindByID(id uint) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

func (r *gormTaskRepository) FindAll(ownerID uint) ([]*domain.Task, error) {
	return r.find("owner_id = ?", ownerID)
}

func (r *gormTaskRepository) FindPending(ownerID uint) ([]*domain.Task, error) {
	return r.find("owner_id = ? AND status = ?", ownerID, domain.StatusPending)
}

func (r *gormTaskRepository) FindCompleted(ownerID uint) ([]*domain.Task, error) {
	return r.find("owner_id = ? AND status = ?", ownerID, domain.StatusCompleted)
}

func (r *gormTaskRepository) FindOverdue(ownerID uint, today string) ([]*domain.Task, error) {
	return r.find("owner_id = ? AND status = ? AND due_date < ?",
		ownerID, domain.StatusPending, today)
}

func (r *gormTaskRepository) FindDueToday(ownerID uint, today string) ([]*domain.Task, error) {
	return r.find("owner_id = ? AND status = ? AND due_date = ?",
		ownerID, domain.StatusPending, today)
}

func (r *gormTaskRepository) FindUpcoming(ownerID uint, today string) ([]*domain.Task, error) {
	return r.find("owner_id = ? AND status = ? AND due_date > ?",
		ownerID, domain.StatusPending, today)
}

func (r *gormTaskRepository) find(query string, args ...interface{}) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0)
	err := r.db.Where(query, args...).Order("id").Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}
