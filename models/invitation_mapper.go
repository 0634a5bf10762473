package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// AssembleInvitation turns a flattened row into the nested InvitationData
// shape. Malformed JSON columns are treated as absent.
func AssembleInvitation(row *Invitation) InvitationData {
	d := InvitationData{
		ID:          row.ID,
		Slug:        row.Slug,
		BrideName:   row.BrideName,
		GroomName:   row.GroomName,
		WeddingDate: row.WeddingDate,
		Venue:       row.Venue,
		MainTitle:   row.MainTitle,
		Subtitle:    row.Subtitle,
		Message:     row.Message,
		Theme:       row.Theme,
		CoverImage:  row.CoverImage,
		CoverVideo:  row.CoverVideo,
		Bride: PersonProfile{
			Photo:   row.BridePhoto,
			Parents: Parents{Father: row.BrideParentsFather, Mother: row.BrideParentsMother},
			SocialMedia: SocialMedia{
				Instagram: row.BrideSocialInstagram,
				Facebook:  row.BrideSocialFacebook,
				Twitter:   row.BrideSocialTwitter,
				Tiktok:    row.BrideSocialTiktok,
			},
			BirthOrder:  row.BrideBirthOrder,
			Description: row.BrideDescription,
		},
		Groom: PersonProfile{
			Photo:   row.GroomPhoto,
			Parents: Parents{Father: row.GroomParentsFather, Mother: row.GroomParentsMother},
			SocialMedia: SocialMedia{
				Instagram: row.GroomSocialInstagram,
				Facebook:  row.GroomSocialFacebook,
				Twitter:   row.GroomSocialTwitter,
				Tiktok:    row.GroomSocialTiktok,
			},
			BirthOrder:  row.GroomBirthOrder,
			Description: row.GroomDescription,
		},
		IslamicVerse: row.IslamicVerse,
		Hashtag:      row.Hashtag,
		PoweredBy:    row.PoweredBy,
		IsPublished:  row.IsPublished,
		Views:        row.Views,
		RSVPs:        row.RSVPs,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	decodeJSON(row.LoveStory, &d.LoveStory)
	decodeJSON(row.EventDetails, &d.EventDetails)
	decodeJSON(row.PhotoGallery, &d.PhotoGallery)
	decodeJSON(row.VideoGallery, &d.VideoGallery)
	decodeJSON(row.LiveStreaming, &d.LiveStreaming)
	decodeJSON(row.DigitalWallets, &d.DigitalWallets)
	decodeJSON(row.BankAccounts, &d.BankAccounts)
	decodeJSON(row.ContactInfo, &d.ContactInfo)
	decodeJSON(row.WeddingWishes, &d.WeddingWishes)
	return d
}

// DisassembleInvitation is the inverse of AssembleInvitation. Identity,
// ownership and counters are left to the caller.
func DisassembleInvitation(d InvitationData) Invitation {
	return Invitation{
		Slug:        d.Slug,
		BrideName:   d.BrideName,
		GroomName:   d.GroomName,
		WeddingDate: d.WeddingDate,
		Venue:       d.Venue,
		MainTitle:   d.MainTitle,
		Subtitle:    d.Subtitle,
		Message:     d.Message,
		Theme:       d.Theme,
		CoverImage:  d.CoverImage,
		CoverVideo:  d.CoverVideo,

		BridePhoto:           d.Bride.Photo,
		BrideParentsFather:   d.Bride.Parents.Father,
		BrideParentsMother:   d.Bride.Parents.Mother,
		BrideSocialInstagram: d.Bride.SocialMedia.Instagram,
		BrideSocialFacebook:  d.Bride.SocialMedia.Facebook,
		BrideSocialTwitter:   d.Bride.SocialMedia.Twitter,
		BrideSocialTiktok:    d.Bride.SocialMedia.Tiktok,
		BrideBirthOrder:      d.Bride.BirthOrder,
		BrideDescription:     d.Bride.Description,

		GroomPhoto:           d.Groom.Photo,
		GroomParentsFather:   d.Groom.Parents.Father,
		GroomParentsMother:   d.Groom.Parents.Mother,
		GroomSocialInstagram: d.Groom.SocialMedia.Instagram,
		GroomSocialFacebook:  d.Groom.SocialMedia.Facebook,
		GroomSocialTwitter:   d.Groom.SocialMedia.Twitter,
		GroomSocialTiktok:    d.Groom.SocialMedia.Tiktok,
		GroomBirthOrder:      d.Groom.BirthOrder,
		GroomDescription:     d.Groom.Description,

		IslamicVerse: d.IslamicVerse,
		Hashtag:      d.Hashtag,
		PoweredBy:    d.PoweredBy,

		LoveStory:      encodeJSON(d.LoveStory),
		EventDetails:   encodeJSON(d.EventDetails),
		PhotoGallery:   encodeJSON(d.PhotoGallery),
		VideoGallery:   encodeJSON(d.VideoGallery),
		LiveStreaming:  encodeJSON(d.LiveStreaming),
		DigitalWallets: encodeJSON(d.DigitalWallets),
		BankAccounts:   encodeJSON(d.BankAccounts),
		ContactInfo:    encodeJSON(d.ContactInfo),
		WeddingWishes:  encodeJSON(d.WeddingWishes),

		IsPublished: d.IsPublished,
	}
}

func decodeJSON[T any](raw datatypes.JSON, dst *T) {
	if len(raw) == 0 || string(raw) == "null" {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return
	}
	*dst = v
}

// encodeJSON always yields a valid JSON document so the column is never SQL NULL.
func encodeJSON(v any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(b)
}
