package models

// User owns at most one Invitation.
type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name         string `gorm:"type:varchar(150);not null" json:"name"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}
