package themes

import (
	"errors"
	"strings"

	"github.com/sohryuu101/web-wedding-sub000/models"
)

// ErrUnknownChoice is returned for an attendance choice the guest form
// does not offer.
var ErrUnknownChoice = errors.New("unknown attendance choice")

// Attendance choices offered by the in-template RSVP form.
const (
	ChoiceAttend  = "attend"
	ChoiceDecline = "decline"
)

// GuestForm is what the themed RSVP form posts.
type GuestForm struct {
	Name       string `json:"name" form:"name"`
	Attendance string `json:"attendance" form:"attendance"`
	GuestCount *int   `json:"guest_count" form:"guest_count"`
	Message    string `json:"message" form:"message"`
}

// ToRSVPFormData maps the form onto the canonical submission:
// attend -> yes, decline -> no.
func (f GuestForm) ToRSVPFormData() (models.RSVPFormData, error) {
	var a models.Attendance
	switch strings.ToLower(strings.TrimSpace(f.Attendance)) {
	case ChoiceAttend:
		a = models.AttendanceYes
	case ChoiceDecline:
		a = models.AttendanceNo
	default:
		return models.RSVPFormData{}, ErrUnknownChoice
	}
	return models.RSVPFormData{
		GuestName:  f.Name,
		Attendance: a,
		GuestCount: f.GuestCount,
		Message:    f.Message,
	}, nil
}
