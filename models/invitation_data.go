package models

import "time"

// InvitationData is the nested read shape handed to API clients and to the
// theme composition layer.
type InvitationData struct {
	ID          uint      `json:"id"`
	Slug        string    `json:"slug"`
	BrideName   string    `json:"bride_name"`
	GroomName   string    `json:"groom_name"`
	WeddingDate time.Time `json:"wedding_date"`
	Venue       string    `json:"venue"`
	MainTitle   string    `json:"main_title"`
	Subtitle    string    `json:"subtitle"`
	Message     string    `json:"message"`
	Theme       string    `json:"theme"`
	CoverImage  string    `json:"cover_image,omitempty"`
	CoverVideo  string    `json:"cover_video,omitempty"`

	Bride PersonProfile `json:"bride"`
	Groom PersonProfile `json:"groom"`

	IslamicVerse string `json:"islamic_verse,omitempty"`

	LoveStory      []LoveStoryMilestone `json:"love_story,omitempty"`
	EventDetails   *EventDetails        `json:"event_details,omitempty"`
	PhotoGallery   []GalleryPhoto       `json:"photo_gallery,omitempty"`
	VideoGallery   []GalleryVideo       `json:"video_gallery,omitempty"`
	LiveStreaming  *LiveStreaming       `json:"live_streaming,omitempty"`
	DigitalWallets []DigitalWallet      `json:"digital_wallets,omitempty"`
	BankAccounts   []BankAccount        `json:"bank_accounts,omitempty"`
	ContactInfo    *ContactInfo         `json:"contact_info,omitempty"`
	WeddingWishes  []WeddingWish        `json:"wedding_wishes,omitempty"`
	Hashtag        string               `json:"hashtag,omitempty"`
	PoweredBy      string               `json:"powered_by,omitempty"`

	IsPublished bool      `json:"is_published"`
	Views       int64     `json:"views"`
	RSVPs       int64     `json:"rsvps"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PersonProfile groups the bride's or groom's extended profile.
type PersonProfile struct {
	Photo       string      `json:"photo,omitempty"`
	Parents     Parents     `json:"parents"`
	SocialMedia SocialMedia `json:"social_media"`
	BirthOrder  string      `json:"birth_order,omitempty"`
	Description string      `json:"description,omitempty"`
}

type Parents struct {
	Father string `json:"father,omitempty"`
	Mother string `json:"mother,omitempty"`
}

type SocialMedia struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Tiktok    string `json:"tiktok,omitempty"`
}

type LoveStoryMilestone struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	Image       string `json:"image,omitempty"`
}

type EventDetails struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Venue     string `json:"venue"`
	Address   string `json:"address"`
	MapsURL   string `json:"maps_url,omitempty"`
	DressCode string `json:"dress_code,omitempty"`
	Info      string `json:"info,omitempty"`
}

type GalleryPhoto struct {
	ID      string `json:"id,omitempty"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type GalleryVideo struct {
	ID        string `json:"id,omitempty"`
	URL       string `json:"url"`
	Title     string `json:"title,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type LiveStreaming struct {
	StreamURL    string         `json:"stream_url,omitempty"`
	PreviewImage string         `json:"preview_image,omitempty"`
	StoryText    string         `json:"story_text,omitempty"`
	PhotoGallery []GalleryPhoto `json:"photo_gallery,omitempty"`
}

// DigitalWallet and BankAccount are display-only gift details.
type DigitalWallet struct {
	Provider      string `json:"provider"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	QRImage       string `json:"qr_image,omitempty"`
}

type BankAccount struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
}

type ContactInfo struct {
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Address  string `json:"address,omitempty"`
}

type WeddingWish struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Date    string `json:"date,omitempty"`
}

// IsEmpty reports whether no live-streaming field carries content.
func (l *LiveStreaming) IsEmpty() bool {
	return l == nil || (l.StreamURL == "" && l.PreviewImage == "" && l.StoryText == "" && len(l.PhotoGallery) == 0)
}

// IsEmpty reports whether the event details carry nothing worth showing.
func (e *EventDetails) IsEmpty() bool {
	return e == nil || (e.Date == "" && e.Time == "" && e.Venue == "" && e.Address == "")
}

// IsEmpty reports whether there is no contact channel at all.
func (c *ContactInfo) IsEmpty() bool {
	return c == nil || (c.Phone == "" && c.Email == "" && c.WhatsApp == "" && c.Address == "")
}
