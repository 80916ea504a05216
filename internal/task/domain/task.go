package domain

// Status represents the stored state of a task
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// Date and time layouts for the stored DueDate and DueTime strings.
// ISO dates compare correctly as strings, which the date-relative queries
// rely on.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Task represents a to-do item owned by exactly one account.
// DueDate and DueTime are kept as separate ISO strings rather than a
// composed timestamp.
type Task struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	OwnerID     uint   `json:"owner_id" gorm:"column:owner_id;index;not null"`
	Description string `json:"description" gorm:"not null"`
	DueDate     string `json:"due_date" gorm:"not null"`
	DueTime     string `json:"due_time" gorm:"not null"`
	Priority    int    `json:"priority" gorm:"not null"`
	Status      Status `json:"status" gorm:"not null;default:Pending"`
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}
