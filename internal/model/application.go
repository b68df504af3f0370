package model

import (
	"strings"
	"time"
)

const (
	// ApplicationStatusPending initial status of every application
	ApplicationStatusPending = "PENDING"
	// ApplicationStatusRejected terminal status, compared case-insensitively
	ApplicationStatusRejected = "rejected"
)

// Application a student's application to a post, table applications.
// (student_id, post_id) is unique.
type Application struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"       json:"id"`
	StudentID string    `gorm:"type:uuid;not null;uniqueIndex:uq_applications_student_post" json:"studentId"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_applications_student_post" json:"postId"`
	Status    string    `gorm:"type:varchar(30);not null;default:'PENDING'"          json:"status"`
	AppliedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                   json:"appliedAt"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Post    *Post    `gorm:"foreignKey:PostID"    json:"post,omitempty"`
}

// TableName table name
func (Application) TableName() string { return "applications" }

// IsRejected reports whether the application reached the rejected state
func (a *Application) IsRejected() bool {
	return strings.EqualFold(strings.TrimSpace(a.Status), ApplicationStatusRejected)
}
