package dto

// ── posts ──

// CreatePostRequest new listing for an existing recruiter
type CreatePostRequest struct {
	RecruiterID    string   `json:"recruiterId"    binding:"required,uuid"`
	CompanyName    string   `json:"companyName"    binding:"max=255"`
	JobTitle       string   `json:"jobTitle"       binding:"required,notblank,max=255"`
	JobDescription string   `json:"jobDescription"`
	Qualification  string   `json:"qualification"`
	Experience     string   `json:"experience"      binding:"max=100"`
	Stipend        string   `json:"stipend"         binding:"max=100"`
	RequiredSkills []string `json:"requiredSkills" binding:"omitempty,dive,notblank"`
	Location       string   `json:"location"        binding:"max=255"`
	JobType        string   `json:"jobType"        binding:"max=50"`
}

// UpdatePostRequest full overwrite of the listing fields
type UpdatePostRequest struct {
	CompanyName    string   `json:"companyName"    binding:"max=255"`
	JobTitle       string   `json:"jobTitle"       binding:"required,notblank,max=255"`
	JobDescription string   `json:"jobDescription"`
	Qualification  string   `json:"qualification"`
	Experience     string   `json:"experience"      binding:"max=100"`
	Stipend        string   `json:"stipend"         binding:"max=100"`
	RequiredSkills []string `json:"requiredSkills" binding:"omitempty,dive,notblank"`
	Location       string   `json:"location"        binding:"max=255"`
	JobType        string   `json:"jobType"        binding:"max=50"`
}

// ── applications ──

// CreateApplicationRequest student applies to post
type CreateApplicationRequest struct {
	StudentID string `json:"studentId" binding:"required,uuid"`
	PostID    string `json:"postId"    binding:"required,uuid"`
}

// ApplicationListRequest optional filters
type ApplicationListRequest struct {
	StudentID string `form:"studentId" binding:"omitempty,uuid"`
	PostID    string `form:"postId"    binding:"omitempty,uuid"`
}

// UpdateApplicationRequest arbitrary status overwrite
type UpdateApplicationRequest struct {
	Status string `json:"status" binding:"required,notblank,max=30"`
}
