package models

import "time"

// Attendance is a guest's answer on the canonical RSVP API.
type Attendance string

const (
	AttendanceYes   Attendance = "yes"
	AttendanceNo    Attendance = "no"
	AttendanceMaybe Attendance = "maybe"
)

// Valid reports whether a is one of the known answers.
func (a Attendance) Valid() bool {
	switch a {
	case AttendanceYes, AttendanceNo, AttendanceMaybe:
		return true
	}
	return false
}

// InvitationRSVP is one guest response. Rows are append-only: there is no
// update path. Guest identity uniqueness is enforced by two partial unique
// indexes created in the rsvp migration.
type InvitationRSVP struct {
	BaseModel
	InvitationID        uint        `gorm:"not null;index" json:"invitation_id"`
	Invitation          *Invitation `gorm:"foreignKey:InvitationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	GuestName           string      `gorm:"type:varchar(150);not null" json:"guest_name"`
	GuestEmail          *string     `gorm:"type:varchar(255)" json:"guest_email,omitempty"`
	GuestPhone          *string     `gorm:"type:varchar(30)" json:"guest_phone,omitempty"`
	Attendance          Attendance  `gorm:"type:varchar(10);not null;index" json:"attendance"`
	GuestCount          *int        `gorm:"type:integer" json:"guest_count,omitempty"`
	DietaryRequirements *string     `gorm:"type:text" json:"dietary_requirements,omitempty"`
	Message             *string     `gorm:"type:text" json:"message,omitempty"`
}

// TableName keeps the relation name used across the API docs.
func (InvitationRSVP) TableName() string { return "rsvp_responses" }

// PublicRSVP is a response as shown on the unauthenticated listing. Contact
// details and dietary notes stay private.
type PublicRSVP struct {
	ID         uint       `json:"id"`
	GuestName  string     `json:"guest_name"`
	Attendance Attendance `json:"attendance"`
	GuestCount *int       `json:"guest_count,omitempty"`
	Message    *string    `json:"message,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Public drops the private fields of r.
func (r InvitationRSVP) Public() PublicRSVP {
	return PublicRSVP{
		ID:         r.ID,
		GuestName:  r.GuestName,
		Attendance: r.Attendance,
		GuestCount: r.GuestCount,
		Message:    r.Message,
		CreatedAt:  r.CreatedAt,
	}
}

// RSVPFormData is the canonical RSVP submission shape.
type RSVPFormData struct {
	GuestName           string     `json:"guest_name" form:"guest_name" validate:"required,max=150"`
	GuestEmail          string     `json:"guest_email" form:"guest_email" validate:"omitempty,email,max=255"`
	GuestPhone          string     `json:"guest_phone" form:"guest_phone" validate:"omitempty,max=30"`
	Attendance          Attendance `json:"attendance" form:"attendance" validate:"required,oneof=yes no maybe"`
	GuestCount          *int       `json:"guest_count" form:"guest_count" validate:"omitempty,min=0,max=20"`
	DietaryRequirements string     `json:"dietary_requirements" form:"dietary_requirements" validate:"omitempty,max=1000"`
	Message             string     `json:"message" form:"message" validate:"omitempty,max=2000"`
}

// RSVPSummary is one row of the attendance breakdown.
type RSVPSummary struct {
	Attendance Attendance `json:"attendance"`
	Count      int64      `json:"count"`
	Guests     int64      `json:"guests"`
}
