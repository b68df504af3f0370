package model

import "time"

// Submission status values.
// pending → submitted → approved | rejected; submitted may be re-entered.
const (
	SubmissionStatusPending   = "pending"
	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusApproved  = "approved"
	SubmissionStatusRejected  = "rejected"
)

// Submission one ambassador's response to one task, table submissions.
// (user_email, task_id) is unique.
type Submission struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"                                   json:"id"`
	TaskID     uint      `gorm:"not null;uniqueIndex:uq_submissions_email_task,priority:2" json:"taskId"`
	UserEmail  string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_submissions_email_task,priority:1" json:"userEmail"`
	Submission string    `gorm:"type:text;not null;default:''"                             json:"submission"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending'"               json:"status"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                        json:"createdAt"`
	UpdatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                        json:"updatedAt"`

	Task *Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}

// TableName table name
func (Submission) TableName() string { return "submissions" }

// IsFinal approved and rejected submissions can no longer change
func (s *Submission) IsFinal() bool {
	return s.Status == SubmissionStatusApproved || s.Status == SubmissionStatusRejected
}
