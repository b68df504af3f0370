package model

import "time"

// User root identity, table users. At most one profile of each kind hangs off it.
type User struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"createdAt"`

	Student    *Student          `gorm:"foreignKey:UserID" json:"student,omitempty"`
	Recruiter  *Recruiter        `gorm:"foreignKey:UserID" json:"recruiter,omitempty"`
	Ambassador *CampusAmbassador `gorm:"foreignKey:UserID" json:"ambassador,omitempty"`
}

// TableName table name
func (User) TableName() string { return "users" }
