package dto

import "time"

// ── ambassador profile ──

// RegisterAmbassadorRequest campus ambassador application form
type RegisterAmbassadorRequest struct {
	Email             string `json:"email"                binding:"required,email,max=255"`
	Name              string `json:"name"                 binding:"required,notblank,max=255"`
	CollegeName       string `json:"collegeName"         binding:"max=255"`
	CollegeYear       string `json:"collegeYear"         binding:"max=20"`
	Program           string `json:"program"              binding:"max=100"`
	Phone             string `json:"phone"                binding:"max=30"`
	POR               string `json:"por"`
	ReasonToJoin      string `json:"reasonToJoin"`
	RoleInStudentBody string `json:"roleInStudentBody"`
	Skills            string `json:"skills"`
	Experience        string `json:"experience"`
	RoleInEcell       string `json:"roleInEcell"`
	Hours             string `json:"hours"                binding:"max=50"`
	Contribution      string `json:"contribution"`
	Motivation        string `json:"motivation"`
}

// AmbassadorProfileRequest lookup by email
type AmbassadorProfileRequest struct {
	Email string `form:"email" binding:"required,email"`
}

// UpdateAmbassadorRequest overwrites the editable profile fields
type UpdateAmbassadorRequest struct {
	ID          uint   `json:"id"           binding:"required,gt=0"`
	Name        string `json:"name"         binding:"required,notblank,max=255"`
	CollegeName string `json:"collegeName" binding:"max=255"`
	CollegeYear string `json:"collegeYear" binding:"max=20"`
	Phone       string `json:"phone"        binding:"max=30"`
}

// AmbassadorProfileResponse public profile
type AmbassadorProfileResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CollegeName string `json:"collegeName"`
	CollegeYear string `json:"collegeYear"`
	Phone       string `json:"phone"`
	Points      int    `json:"points"`
	Referrals   int    `json:"referrals"`
}

// LeaderboardEntry one ranked ambassador
type LeaderboardEntry struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CollegeName string `json:"collegeName"`
	Points      int    `json:"points"`
}

// ── tasks ──

// CreateTaskRequest lastDate accepts RFC3339 or YYYY-MM-DD
type CreateTaskRequest struct {
	Title       string `json:"title"       binding:"required,notblank,max=255"`
	Description string `json:"description" binding:"required,notblank"`
	LastDate    string `json:"lastDate"   binding:"required,notblank"`
	Points      int    `json:"points"      binding:"required,gt=0"`
}

// UpdateTaskRequest nil fields are left untouched
type UpdateTaskRequest struct {
	Title       *string `json:"title"       binding:"omitempty,notblank,max=255"`
	Description *string `json:"description" binding:"omitempty,notblank"`
	LastDate    *string `json:"lastDate"   binding:"omitempty,notblank"`
	Points      *int    `json:"points"      binding:"omitempty,gt=0"`
}

// TaskResponse task as seen by admins
type TaskResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	LastDate    time.Time `json:"lastDate"`
	Points      int       `json:"points"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateTaskResponse created task plus fan-out size
type CreateTaskResponse struct {
	Task        TaskResponse `json:"task"`
	Assignments int          `json:"assignments"`
}

// AmbassadorTaskResponse task with the caller's derived status
type AmbassadorTaskResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	Status      string    `json:"status"`
	Submitted   bool      `json:"submitted"`
	LastDate    time.Time `json:"lastDate"`
}

// ── submissions ──

// SubmitRequest ambassador hands in a task
type SubmitRequest struct {
	TaskID     uint   `json:"taskId"    binding:"required,gt=0"`
	Email      string `json:"email"      binding:"required,email"`
	Submission string `json:"submission" binding:"required,notblank"`
}

// AdminTasksRequest review when taskId, userId and action are all present, overview otherwise
type AdminTasksRequest struct {
	TaskID uint   `json:"taskId" binding:"omitempty,gt=0"`
	UserID uint   `json:"userId" binding:"omitempty,gt=0"`
	Action string `json:"action"  binding:"omitempty,review_action"`
	Points *int   `json:"points"  binding:"omitempty,gt=0"`
}

// IsReview reports whether the request targets a single submission
func (r *AdminTasksRequest) IsReview() bool {
	return r.TaskID != 0 && r.UserID != 0 && r.Action != ""
}

// ReviewResponse outcome of a review
type ReviewResponse struct {
	SubmissionID  uint   `json:"submissionId"`
	Status        string `json:"status"`
	AwardedPoints int    `json:"awardedPoints"`
	TotalPoints   int    `json:"totalPoints"`
}

// OverviewTask one task row of an ambassador's overview
type OverviewTask struct {
	TaskID     uint    `json:"taskId"`
	TaskTitle  string  `json:"taskTitle"`
	TaskPoints int     `json:"taskPoints"`
	Submission *string `json:"submission"`
	Submitted  bool    `json:"submitted"`
	Status     string  `json:"status"`
}

// OverviewEntry per-ambassador progress
type OverviewEntry struct {
	UserID              uint           `json:"userId"`
	UserName            string         `json:"userName"`
	Email               string         `json:"email"`
	CollegeName         string         `json:"collegeName"`
	TotalPoints         int            `json:"totalPoints"`
	CompletedTasksCount int            `json:"completedTasksCount"`
	Tasks               []OverviewTask `json:"tasks"`
}

// FeedTask task metadata attached to a feed row
type FeedTask struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Points int    `json:"points"`
}

// FeedAmbassador ambassador metadata attached to a feed row
type FeedAmbassador struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Points      int    `json:"points"`
	CollegeName string `json:"collegeName"`
	CollegeYear string `json:"collegeYear"`
}

// FeedEntry one submission in the admin feed
type FeedEntry struct {
	ID         uint            `json:"id"`
	Submission string          `json:"submission"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	Task       *FeedTask       `json:"task"`
	Ambassador *FeedAmbassador `json:"ambassador"`
}

// ClearSubmissionsRequest either taskIds or confirmAll must be supplied
type ClearSubmissionsRequest struct {
	TaskIDs    []uint `json:"taskIds"    binding:"omitempty,dive,gt=0"`
	ConfirmAll bool   `json:"confirmAll"`
}

// ClearSubmissionsResponse number of tasks reset
type ClearSubmissionsResponse struct {
	Cleared int64 `json:"cleared"`
}

// ── admin ──

// CheckAdminRequest presence check
type CheckAdminRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CheckAdminResponse presence check result
type CheckAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// AdminLoginRequest admin credentials
type AdminLoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// AdminTokenResponse issued admin capability
type AdminTokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"` // seconds
	Email       string `json:"email"`
}
