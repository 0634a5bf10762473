package themes

import (
	"strings"
	"time"

	"github.com/sohryuu101/web-wedding-sub000/models"
)

// SectionKind identifies a block of the rendered invitation.
type SectionKind string

const (
	SectionHero          SectionKind = "hero"
	SectionSaveTheDate   SectionKind = "save-the-date"
	SectionCouple        SectionKind = "couple"
	SectionVerse         SectionKind = "verse"
	SectionLoveStory     SectionKind = "love-story"
	SectionEvent         SectionKind = "event"
	SectionGallery       SectionKind = "gallery"
	SectionVideo         SectionKind = "video"
	SectionLiveStreaming SectionKind = "live-streaming"
	SectionRSVP          SectionKind = "rsvp"
	SectionWishes        SectionKind = "wishes"
	SectionGift          SectionKind = "gift"
	SectionContact       SectionKind = "contact"
	SectionThankYou      SectionKind = "thank-you"
	SectionClosing       SectionKind = "closing"
)

// Placeholder content for always-rendered sections.
const (
	PlaceholderCover    = "/static/img/placeholder-cover.svg"
	PlaceholderPortrait = "/static/img/placeholder-portrait.svg"
	PlaceholderGift     = "Your presence is the greatest gift."
	PlaceholderThanks   = "Thank you for celebrating with us."
	DefaultPoweredBy    = "Wedding Invitation"
)

// presence decides whether a section is shown. Kinds without an entry are
// cosmetic and always render.
var presence = map[SectionKind]func(d *models.InvitationData) bool{
	SectionVerse:         func(d *models.InvitationData) bool { return strings.TrimSpace(d.IslamicVerse) != "" },
	SectionLoveStory:     func(d *models.InvitationData) bool { return len(d.LoveStory) > 0 },
	SectionEvent:         func(d *models.InvitationData) bool { return !d.EventDetails.IsEmpty() },
	SectionGallery:       func(d *models.InvitationData) bool { return len(d.PhotoGallery) > 0 },
	SectionVideo:         func(d *models.InvitationData) bool { return len(d.VideoGallery) > 0 },
	SectionLiveStreaming: func(d *models.InvitationData) bool { return !d.LiveStreaming.IsEmpty() },
	SectionWishes:        func(d *models.InvitationData) bool { return len(d.WeddingWishes) > 0 },
	SectionContact:       func(d *models.InvitationData) bool { return !d.ContactInfo.IsEmpty() },
}

// Present reports whether kind has the data it needs in d.
func Present(kind SectionKind, d *models.InvitationData) bool {
	if d == nil {
		return false
	}
	p, ok := presence[kind]
	return !ok || p(d)
}

// Section payloads. Each is the data one section renders.

type HeroSection struct {
	BrideName   string    `json:"bride_name"`
	GroomName   string    `json:"groom_name"`
	MainTitle   string    `json:"main_title"`
	Subtitle    string    `json:"subtitle"`
	CoverImage  string    `json:"cover_image"`
	CoverVideo  string    `json:"cover_video,omitempty"`
	WeddingDate time.Time `json:"wedding_date"`
	Hashtag     string    `json:"hashtag,omitempty"`
}

type SaveTheDateSection struct {
	WeddingDate time.Time `json:"wedding_date"`
	Venue       string    `json:"venue,omitempty"`
	Countdown   Countdown `json:"countdown"`
}

type PersonSection struct {
	Name        string             `json:"name"`
	Photo       string             `json:"photo"`
	Parents     models.Parents     `json:"parents"`
	SocialMedia models.SocialMedia `json:"social_media"`
	BirthOrder  string             `json:"birth_order,omitempty"`
	Description string             `json:"description,omitempty"`
}

type CoupleSection struct {
	Bride PersonSection `json:"bride"`
	Groom PersonSection `json:"groom"`
}

type VerseSection struct {
	Text string `json:"text"`
}

type LoveStorySection struct {
	Milestones []models.LoveStoryMilestone `json:"milestones"`
}

type EventSection struct {
	models.EventDetails
}

type GallerySection struct {
	Photos []models.GalleryPhoto `json:"photos"`
}

type VideoSection struct {
	Videos []models.GalleryVideo `json:"videos"`
}

type LiveStreamingSection struct {
	models.LiveStreaming
}

// RSVPSection is disabled in preview so authors cannot answer their own invitation.
type RSVPSection struct {
	Slug     string   `json:"slug"`
	Enabled  bool     `json:"enabled"`
	Choices  []string `json:"choices"`
	MaxGuest int      `json:"max_guest_count"`
}

type WishesSection struct {
	Wishes []models.WeddingWish `json:"wishes"`
}

type GiftSection struct {
	DigitalWallets []models.DigitalWallet `json:"digital_wallets,omitempty"`
	BankAccounts   []models.BankAccount   `json:"bank_accounts,omitempty"`
	Note           string                 `json:"note,omitempty"`
}

type ContactSection struct {
	models.ContactInfo
}

type ThankYouSection struct {
	Message   string `json:"message"`
	BrideName string `json:"bride_name"`
	GroomName string `json:"groom_name"`
}

type ClosingSection struct {
	BrideName string `json:"bride_name"`
	GroomName string `json:"groom_name"`
	Hashtag   string `json:"hashtag,omitempty"`
	PoweredBy string `json:"powered_by"`
}

// MaxGuestCount mirrors the RSVP validation bound.
const MaxGuestCount = 20

type builder func(d *models.InvitationData, opts Options) any

var builders = map[SectionKind]builder{
	SectionHero: func(d *models.InvitationData, _ Options) any {
		return HeroSection{
			BrideName:   d.BrideName,
			GroomName:   d.GroomName,
			MainTitle:   orDefault(d.MainTitle, models.DefaultMainTitle),
			Subtitle:    orDefault(d.Subtitle, models.DefaultSubtitle),
			CoverImage:  orDefault(d.CoverImage, PlaceholderCover),
			CoverVideo:  d.CoverVideo,
			WeddingDate: d.WeddingDate,
			Hashtag:     d.Hashtag,
		}
	},
	SectionSaveTheDate: func(d *models.InvitationData, opts Options) any {
		return SaveTheDateSection{
			WeddingDate: d.WeddingDate,
			Venue:       d.Venue,
			Countdown:   ComputeCountdown(opts.Now, d.WeddingDate),
		}
	},
	SectionCouple: func(d *models.InvitationData, _ Options) any {
		return CoupleSection{Bride: person(d.BrideName, d.Bride), Groom: person(d.GroomName, d.Groom)}
	},
	SectionVerse: func(d *models.InvitationData, _ Options) any {
		return VerseSection{Text: d.IslamicVerse}
	},
	SectionLoveStory: func(d *models.InvitationData, _ Options) any {
		return LoveStorySection{Milestones: d.LoveStory}
	},
	SectionEvent: func(d *models.InvitationData, _ Options) any {
		return EventSection{EventDetails: *d.EventDetails}
	},
	SectionGallery: func(d *models.InvitationData, _ Options) any {
		return GallerySection{Photos: d.PhotoGallery}
	},
	SectionVideo: func(d *models.InvitationData, _ Options) any {
		return VideoSection{Videos: d.VideoGallery}
	},
	SectionLiveStreaming: func(d *models.InvitationData, _ Options) any {
		return LiveStreamingSection{LiveStreaming: *d.LiveStreaming}
	},
	SectionRSVP: func(d *models.InvitationData, opts Options) any {
		return RSVPSection{
			Slug:     d.Slug,
			Enabled:  !opts.IsPreview,
			Choices:  []string{ChoiceAttend, ChoiceDecline},
			MaxGuest: MaxGuestCount,
		}
	},
	SectionWishes: func(d *models.InvitationData, _ Options) any {
		return WishesSection{Wishes: d.WeddingWishes}
	},
	SectionGift: func(d *models.InvitationData, _ Options) any {
		g := GiftSection{DigitalWallets: d.DigitalWallets, BankAccounts: d.BankAccounts}
		if len(g.DigitalWallets) == 0 && len(g.BankAccounts) == 0 {
			g.Note = PlaceholderGift
		}
		return g
	},
	SectionContact: func(d *models.InvitationData, _ Options) any {
		return ContactSection{ContactInfo: *d.ContactInfo}
	},
	SectionThankYou: func(d *models.InvitationData, _ Options) any {
		return ThankYouSection{
			Message:   orDefault(d.Message, PlaceholderThanks),
			BrideName: d.BrideName,
			GroomName: d.GroomName,
		}
	},
	SectionClosing: func(d *models.InvitationData, _ Options) any {
		return ClosingSection{
			BrideName: d.BrideName,
			GroomName: d.GroomName,
			Hashtag:   d.Hashtag,
			PoweredBy: orDefault(d.PoweredBy, DefaultPoweredBy),
		}
	},
}

func person(name string, p models.PersonProfile) PersonSection {
	return PersonSection{
		Name:        name,
		Photo:       orDefault(p.Photo, PlaceholderPortrait),
		Parents:     p.Parents,
		SocialMedia: p.SocialMedia,
		BirthOrder:  p.BirthOrder,
		Description: p.Description,
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
