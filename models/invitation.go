package models

import (
	"time"

	"gorm.io/datatypes"
)

// Invitation is the persisted row of the single per-user wedding invitation.
// Profile fields are flattened into scalar columns; nested collections are
// JSON columns. Use AssembleInvitation to get the nested InvitationData shape.
type Invitation struct {
	BaseModel
	UserID uint   `gorm:"uniqueIndex;not null"` // one invitation per user
	User   *User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Slug   string `gorm:"type:varchar(160);uniqueIndex;not null"`

	BrideName   string    `gorm:"type:varchar(150);not null"`
	GroomName   string    `gorm:"type:varchar(150);not null"`
	WeddingDate time.Time `gorm:"not null"`
	Venue       string    `gorm:"type:varchar(255)"`
	MainTitle   string    `gorm:"type:varchar(255)"`
	Subtitle    string    `gorm:"type:varchar(255)"`
	Message     string    `gorm:"type:text"`
	Theme       string    `gorm:"type:varchar(50)"`
	CoverImage  string    `gorm:"type:varchar(500)"`
	CoverVideo  string    `gorm:"type:varchar(500)"`

	BridePhoto           string `gorm:"type:varchar(500)"`
	BrideParentsFather   string `gorm:"type:varchar(150)"`
	BrideParentsMother   string `gorm:"type:varchar(150)"`
	BrideSocialInstagram string `gorm:"type:varchar(100)"`
	BrideSocialFacebook  string `gorm:"type:varchar(100)"`
	BrideSocialTwitter   string `gorm:"type:varchar(100)"`
	BrideSocialTiktok    string `gorm:"type:varchar(100)"`
	BrideBirthOrder      string `gorm:"type:varchar(10)"`
	BrideDescription     string `gorm:"type:text"`

	GroomPhoto           string `gorm:"type:varchar(500)"`
	GroomParentsFather   string `gorm:"type:varchar(150)"`
	GroomParentsMother   string `gorm:"type:varchar(150)"`
	GroomSocialInstagram string `gorm:"type:varchar(100)"`
	GroomSocialFacebook  string `gorm:"type:varchar(100)"`
	GroomSocialTwitter   string `gorm:"type:varchar(100)"`
	GroomSocialTiktok    string `gorm:"type:varchar(100)"`
	GroomBirthOrder      string `gorm:"type:varchar(10)"`
	GroomDescription     string `gorm:"type:text"`

	IslamicVerse string `gorm:"type:text"`
	Hashtag      string `gorm:"type:varchar(100)"`
	PoweredBy    string `gorm:"type:varchar(100)"`

	LoveStory      datatypes.JSON
	EventDetails   datatypes.JSON
	PhotoGallery   datatypes.JSON
	VideoGallery   datatypes.JSON
	LiveStreaming  datatypes.JSON
	DigitalWallets datatypes.JSON
	BankAccounts   datatypes.JSON
	ContactInfo    datatypes.JSON
	WeddingWishes  datatypes.JSON

	IsPublished bool  `gorm:"not null;default:false;index"`
	Views       int64 `gorm:"column:views;not null;default:0"`
	RSVPs       int64 `gorm:"column:rsvps;not null;default:0"`
}

// Default values applied by the lifecycle service on create.
const (
	DefaultMainTitle = "Save The Date"
	DefaultSubtitle  = "We're Getting Married!"
	DefaultTheme     = "classic"
)
