package model

// Recruiter recruiter profile, table recruiters
type Recruiter struct {
	ID          string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      string `gorm:"type:uuid;not null;uniqueIndex"                 json:"userId"`
	CompanyName string `gorm:"type:varchar(255);not null;default:''"          json:"companyName"`
	Address     string `gorm:"type:text;not null;default:''"                  json:"address"`
	WebsiteURL  string `gorm:"type:text;not null;default:''"                  json:"websiteUrl"`
	PhoneNumber string `gorm:"type:varchar(30);not null;default:''"           json:"phoneNumber"`
	Timestamps

	User  *User  `gorm:"foreignKey:UserID"      json:"user,omitempty"`
	Posts []Post `gorm:"foreignKey:RecruiterID" json:"posts,omitempty"`
}

// TableName table name
func (Recruiter) TableName() string { return "recruiters" }
