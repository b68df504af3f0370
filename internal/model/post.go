package model

import "github.com/lib/pq"

// Post job or internship listing, table posts
type Post struct {
	ID             string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RecruiterID    string         `gorm:"type:uuid;not null;index"                       json:"recruiterId"`
	CompanyName    string         `gorm:"type:varchar(255);not null;default:''"          json:"companyName"`
	JobTitle       string         `gorm:"type:varchar(255);not null"                     json:"jobTitle"`
	JobDescription string         `gorm:"type:text;not null;default:''"                  json:"jobDescription"`
	Qualification  string         `gorm:"type:text;not null;default:''"                  json:"qualification"`
	Experience     string         `gorm:"type:varchar(100);not null;default:''"          json:"experience"`
	Stipend        string         `gorm:"type:varchar(100);not null;default:''"          json:"stipend"`
	RequiredSkills pq.StringArray `gorm:"type:text[];not null;default:'{}'"              json:"requiredSkills"`
	Location       string         `gorm:"type:varchar(255);not null;default:''"          json:"location"`
	JobType        string         `gorm:"type:varchar(50);not null;default:''"           json:"jobType"`
	Timestamps

	Recruiter    *Recruiter    `gorm:"foreignKey:RecruiterID" json:"recruiter,omitempty"`
	Applications []Application `gorm:"foreignKey:PostID"      json:"applications,omitempty"`
}

// TableName table name
func (Post) TableName() string { return "posts" }
