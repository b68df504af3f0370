package model

// Admin a row grants admin rights to the email, table admins
type Admin struct {
	Email        string `gorm:"type:varchar(255);primaryKey"  json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null;default:''" json:"-"`
}

// TableName table name
func (Admin) TableName() string { return "admins" }
