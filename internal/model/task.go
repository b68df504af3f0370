package model

import "time"

// TaskStatusPending default task-level status
const TaskStatusPending = "pending"

// Task point-bearing assignment broadcast to every ambassador, table tasks.
// Status/Submitted/Submission are legacy task-level fields reset by "clear submissions";
// per-ambassador progress lives in Submission.
type Task struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"                json:"id"`
	Title       string    `gorm:"type:varchar(255);not null"             json:"title"`
	Description string    `gorm:"type:text;not null"                     json:"description"`
	LastDate    time.Time `gorm:"not null"                               json:"lastDate"`
	Points      int       `gorm:"not null"                               json:"points"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Submitted   bool      `gorm:"not null;default:false"                 json:"submitted"`
	Submission  string    `gorm:"type:text;not null;default:''"          json:"submission"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"     json:"createdAt"`

	Ambassadors []CampusAmbassador `gorm:"many2many:task_ambassadors;" json:"-"`
	Submissions []Submission       `gorm:"foreignKey:TaskID"           json:"submissions,omitempty"`
}

// TableName table name
func (Task) TableName() string { return "tasks" }

// DeadlinePassed reports whether the task deadline is before now
func (t *Task) DeadlinePassed(now time.Time) bool {
	return t.LastDate.Before(now)
}
