package models

import (
	"time"
)

// InvitationPatch is a partial update. Only non-nil fields are written.
// Identity (id, slug, user) and the view/RSVP counters are not part of it,
// so unknown or protected JSON keys are dropped on decode.
type InvitationPatch struct {
	BrideName   *string `json:"bride_name" validate:"omitempty,min=1,max=150"`
	GroomName   *string `json:"groom_name" validate:"omitempty,min=1,max=150"`
	WeddingDate *string `json:"wedding_date"`
	Venue       *string `json:"venue" validate:"omitempty,max=255"`
	MainTitle   *string `json:"main_title" validate:"omitempty,max=255"`
	Subtitle    *string `json:"subtitle" validate:"omitempty,max=255"`
	Message     *string `json:"message"`
	Theme       *string `json:"theme" validate:"omitempty,max=50"`
	CoverImage  *string `json:"cover_image" validate:"omitempty,max=500"`
	CoverVideo  *string `json:"cover_video" validate:"omitempty,max=500"`

	Bride *PersonProfilePatch `json:"bride"`
	Groom *PersonProfilePatch `json:"groom"`

	IslamicVerse *string `json:"islamic_verse"`
	Hashtag      *string `json:"hashtag" validate:"omitempty,max=100"`
	PoweredBy    *string `json:"powered_by" validate:"omitempty,max=100"`

	LoveStory      *[]LoveStoryMilestone `json:"love_story" validate:"omitempty,max=50"`
	EventDetails   *EventDetails         `json:"event_details"`
	PhotoGallery   *[]GalleryPhoto       `json:"photo_gallery" validate:"omitempty,max=100"`
	VideoGallery   *[]GalleryVideo       `json:"video_gallery" validate:"omitempty,max=20"`
	LiveStreaming  *LiveStreaming        `json:"live_streaming"`
	DigitalWallets *[]DigitalWallet      `json:"digital_wallets" validate:"omitempty,max=10"`
	BankAccounts   *[]BankAccount        `json:"bank_accounts" validate:"omitempty,max=10"`
	ContactInfo    *ContactInfo          `json:"contact_info"`
	WeddingWishes  *[]WeddingWish        `json:"wedding_wishes" validate:"omitempty,max=200"`

	IsPublished *bool `json:"is_published"`
}

// PersonProfilePatch mirrors PersonProfile with optional leaves.
type PersonProfilePatch struct {
	Photo       *string           `json:"photo" validate:"omitempty,max=500"`
	Parents     *ParentsPatch     `json:"parents"`
	SocialMedia *SocialMediaPatch `json:"social_media"`
	BirthOrder  *string           `json:"birth_order" validate:"omitempty,oneof=first second third fourth fifth"`
	Description *string           `json:"description"`
}

type ParentsPatch struct {
	Father *string `json:"father" validate:"omitempty,max=150"`
	Mother *string `json:"mother" validate:"omitempty,max=150"`
}

type SocialMediaPatch struct {
	Instagram *string `json:"instagram" validate:"omitempty,max=100"`
	Facebook  *string `json:"facebook" validate:"omitempty,max=100"`
	Twitter   *string `json:"twitter" validate:"omitempty,max=100"`
	Tiktok    *string `json:"tiktok" validate:"omitempty,max=100"`
}

// Columns flattens the patch into the column map written by a single UPDATE.
// parseDate converts the wire date; it is injected so the date rules live
// in one place.
func (p InvitationPatch) Columns(parseDate func(string) (time.Time, error)) (map[string]interface{}, error) {
	cols := map[string]interface{}{}

	setString(cols, "bride_name", p.BrideName)
	setString(cols, "groom_name", p.GroomName)
	if p.WeddingDate != nil {
		t, err := parseDate(*p.WeddingDate)
		if err != nil {
			return nil, err
		}
		cols["wedding_date"] = t
	}
	setString(cols, "venue", p.Venue)
	setString(cols, "main_title", p.MainTitle)
	setString(cols, "subtitle", p.Subtitle)
	setString(cols, "message", p.Message)
	setString(cols, "theme", p.Theme)
	setString(cols, "cover_image", p.CoverImage)
	setString(cols, "cover_video", p.CoverVideo)

	p.Bride.columns(cols, "bride")
	p.Groom.columns(cols, "groom")

	setString(cols, "islamic_verse", p.IslamicVerse)
	setString(cols, "hashtag", p.Hashtag)
	setString(cols, "powered_by", p.PoweredBy)

	if p.LoveStory != nil {
		cols["love_story"] = encodeJSON(*p.LoveStory)
	}
	if p.EventDetails != nil {
		cols["event_details"] = encodeJSON(p.EventDetails)
	}
	if p.PhotoGallery != nil {
		cols["photo_gallery"] = encodeJSON(*p.PhotoGallery)
	}
	if p.VideoGallery != nil {
		cols["video_gallery"] = encodeJSON(*p.VideoGallery)
	}
	if p.LiveStreaming != nil {
		cols["live_streaming"] = encodeJSON(p.LiveStreaming)
	}
	if p.DigitalWallets != nil {
		cols["digital_wallets"] = encodeJSON(*p.DigitalWallets)
	}
	if p.BankAccounts != nil {
		cols["bank_accounts"] = encodeJSON(*p.BankAccounts)
	}
	if p.ContactInfo != nil {
		cols["contact_info"] = encodeJSON(p.ContactInfo)
	}
	if p.WeddingWishes != nil {
		cols["wedding_wishes"] = encodeJSON(*p.WeddingWishes)
	}

	if p.IsPublished != nil {
		cols["is_published"] = *p.IsPublished
	}
	return cols, nil
}

func (pp *PersonProfilePatch) columns(cols map[string]interface{}, prefix string) {
	if pp == nil {
		return
	}
	setString(cols, prefix+"_photo", pp.Photo)
	if pp.Parents != nil {
		setString(cols, prefix+"_parents_father", pp.Parents.Father)
		setString(cols, prefix+"_parents_mother", pp.Parents.Mother)
	}
	if pp.SocialMedia != nil {
		setString(cols, prefix+"_social_instagram", pp.SocialMedia.Instagram)
		setString(cols, prefix+"_social_facebook", pp.SocialMedia.Facebook)
		setString(cols, prefix+"_social_twitter", pp.SocialMedia.Twitter)
		setString(cols, prefix+"_social_tiktok", pp.SocialMedia.Tiktok)
	}
	setString(cols, prefix+"_birth_order", pp.BirthOrder)
	setString(cols, prefix+"_description", pp.Description)
}

func setString(cols map[string]interface{}, column string, v *string) {
	if v != nil {
		cols[column] = *v
	}
}
