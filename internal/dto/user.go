package dto

// ── users ──

// CreateUserRequest create-if-absent by email
type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
}

// FindUserRequest lookup by email
type FindUserRequest struct {
	Email string `form:"email" binding:"required,email"`
}

// ── students ──

// CreateStudentRequest attach a blank student profile to a user
type CreateStudentRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
}

// UpdateStudentRequest nil fields are left untouched
type UpdateStudentRequest struct {
	Name        *string  `json:"name"         binding:"omitempty,max=255"`
	RollNo      *string  `json:"rollNo"      binding:"omitempty,max=50"`
	Branch      *string  `json:"branch"       binding:"omitempty,max=100"`
	CPI         *float64 `json:"cpi"          binding:"omitempty,gte=0,lte=10"`
	CourseType  *string  `json:"courseType"  binding:"omitempty,max=50"`
	Year        *int     `json:"year"         binding:"omitempty,gte=1,lte=10"`
	LinkedinURL *string  `json:"linkedinUrl" binding:"omitempty,max=500"`
	GithubURL   *string  `json:"githubUrl"   binding:"omitempty,max=500"`
	ResumeURL   *string  `json:"resumeUrl"   binding:"omitempty,max=500"`
}

// ── recruiters ──

// CreateRecruiterRequest attach a blank recruiter profile to a user
type CreateRecruiterRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
}

// UpdateRecruiterRequest nil fields are left untouched
type UpdateRecruiterRequest struct {
	CompanyName *string `json:"companyName" binding:"omitempty,max=255"`
	Address     *string `json:"address"      binding:"omitempty,max=1000"`
	WebsiteURL  *string `json:"websiteUrl"  binding:"omitempty,max=500"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,max=30"`
}

// OnboardingRequired body of the 401 returned when a profile is missing
type OnboardingRequired struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}
