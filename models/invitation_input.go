package models

import "strings"

// CreateInvitationInput is the body of an invitation create.
type CreateInvitationInput struct {
	BrideName   string `json:"bride_name" validate:"required,max=150"`
	GroomName   string `json:"groom_name" validate:"required,max=150"`
	WeddingDate string `json:"wedding_date" validate:"required"`
	Venue       string `json:"venue" validate:"max=255"`
	MainTitle   string `json:"main_title" validate:"max=255"`
	Subtitle    string `json:"subtitle" validate:"max=255"`
	Message     string `json:"message"`
	Theme       string `json:"theme" validate:"max=50"`
	CustomSlug  string `json:"custom_slug" validate:"max=150"`
}

// Trim strips surrounding whitespace from every field.
func (in *CreateInvitationInput) Trim() {
	for _, p := range []*string{
		&in.BrideName, &in.GroomName, &in.WeddingDate, &in.Venue,
		&in.MainTitle, &in.Subtitle, &in.Message, &in.Theme, &in.CustomSlug,
	} {
		*p = strings.TrimSpace(*p)
	}
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"name" validate:"required,max=150"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
