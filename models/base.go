package models

import "time"

// BaseModel is embedded by every table. Rows are hard-deleted: an invitation
// delete must free its user_id and slug for a fresh create.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
