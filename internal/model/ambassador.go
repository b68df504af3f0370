package model

import "time"

// CampusAmbassador ambassador profile, table campus_ambassadors.
// Email is the natural key submissions point at.
type CampusAmbassador struct {
	ID                uint      `gorm:"primaryKey;autoIncrement"              json:"id"`
	Email             string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Name              string    `gorm:"type:varchar(255);not null;default:''" json:"name"`
	CollegeName       string    `gorm:"type:varchar(255);not null;default:''" json:"collegeName"`
	CollegeYear       string    `gorm:"type:varchar(20);not null;default:''"  json:"collegeYear"`
	Program           string    `gorm:"type:varchar(100);not null;default:''" json:"program"`
	Phone             string    `gorm:"type:varchar(30);not null;default:''"  json:"phone"`
	POR               string    `gorm:"column:por;type:text;not null;default:''" json:"por"`
	ReasonToJoin      string    `gorm:"type:text;not null;default:''"         json:"reasonToJoin"`
	RoleInStudentBody string    `gorm:"type:text;not null;default:''"         json:"roleInStudentBody"`
	Skills            string    `gorm:"type:text;not null;default:''"         json:"skills"`
	Experience        string    `gorm:"type:text;not null;default:''"         json:"experience"`
	RoleInEcell       string    `gorm:"type:text;not null;default:''"         json:"roleInEcell"`
	Hours             string    `gorm:"type:varchar(50);not null;default:''"  json:"hours"`
	Contribution      string    `gorm:"type:text;not null;default:''"         json:"contribution"`
	Motivation        string    `gorm:"type:text;not null;default:''"         json:"motivation"`
	Referrals         int       `gorm:"not null;default:0"                    json:"referrals"`
	Points            int       `gorm:"not null;default:0"                    json:"points"`
	UserID            string    `gorm:"type:uuid;not null"                    json:"userId"`
	CreatedAt         time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"    json:"createdAt"`

	Tasks []Task `gorm:"many2many:task_ambassadors;" json:"tasks,omitempty"`
}

// TableName table name
func (CampusAmbassador) TableName() string { return "campus_ambassadors" }
