package model

// Student student profile, table students
type Student struct {
	ID          string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      string  `gorm:"type:uuid;not null;uniqueIndex"                 json:"userId"`
	Name        string  `gorm:"type:varchar(255);not null;default:''"          json:"name"`
	RollNo      string  `gorm:"type:varchar(50);not null;default:''"           json:"rollNo"`
	Branch      string  `gorm:"type:varchar(100);not null;default:''"          json:"branch"`
	CPI         float64 `gorm:"type:numeric(4,2);not null;default:0"           json:"cpi"`
	CourseType  string  `gorm:"type:varchar(50);not null;default:''"           json:"courseType"`
	Year        int     `gorm:"not null;default:1"                             json:"year"`
	LinkedinURL string  `gorm:"type:text;not null;default:''"                  json:"linkedinUrl"`
	GithubURL   string  `gorm:"type:text;not null;default:''"                  json:"githubUrl"`
	ResumeURL   string  `gorm:"type:text;not null;default:''"                  json:"resumeUrl"`
	Timestamps

	User         *User         `gorm:"foreignKey:UserID"    json:"user,omitempty"`
	Applications []Application `gorm:"foreignKey:StudentID" json:"applications,omitempty"`
}

// TableName table name
func (Student) TableName() string { return "students" }
