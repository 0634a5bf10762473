package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sohryuu101/web-wedding-sub000/configs/configslog"
	"github.com/sohryuu101/web-wedding-sub000/models"
	"github.com/sohryuu101/web-wedding-sub000/pkg/themes"
	"github.com/sohryuu101/web-wedding-sub000/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const msgRSVPThanks = "Thank you for your response"

// CoupleNames is the invitation part of an RSVP listing.
type CoupleNames struct {
	BrideName string `json:"bride_name"`
	GroomName string `json:"groom_name"`
}

// RSVPListing is every response of an invitation plus the per-attendance
// tally. Responses carry no contact details since anyone with the slug can
// read it.
type RSVPListing struct {
	Invitation CoupleNames          `json:"invitation"`
	RSVPs      []models.PublicRSVP  `json:"rsvps"`
	Summary    []models.RSVPSummary `json:"summary"`
}

// IPublicService is the guest side. Unpublished invitations are reported
// exactly like missing ones.
type IPublicService interface {
	GetPublished(ctx context.Context, slug string) (*models.InvitationData, error)
	TrackView(ctx context.Context, slug string) (int64, error)
	SubmitRSVP(ctx context.Context, slug string, form models.RSVPFormData) (*models.InvitationRSVP, string, error)
	ListRSVPs(ctx context.Context, slug string) (*RSVPListing, error)
	Sections(ctx context.Context, slug string, now time.Time) (*themes.Page, error)
}

type PublicService struct {
	db          *gorm.DB
	invitations repositories.IInvitationRepository
	rsvps       repositories.IInvitationRSVPRepository
}

func NewPublicService(db *gorm.DB) IPublicService {
	return &PublicService{
		db:          db,
		invitations: repositories.NewInvitationRepository(db),
		rsvps:       repositories.NewInvitationRSVPRepository(db),
	}
}

func (s *PublicService) findPublished(ctx context.Context, op, slug string) (*models.Invitation, error) {
	row, err := s.invitations.FindBySlugPublished(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, s.internal(op, slug, err)
	}
	return row, nil
}

func (s *PublicService) GetPublished(ctx context.Context, slug string) (*models.InvitationData, error) {
	row, err := s.findPublished(ctx, "GetPublished", slug)
	if err != nil {
		return nil, err
	}
	d := models.AssembleInvitation(row)
	return &d, nil
}

// TrackView counts every call; there is no per-visitor dedup.
func (s *PublicService) TrackView(ctx context.Context, slug string) (int64, error) {
	views, err := s.invitations.IncrementViews(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, s.internal("TrackView", slug, err)
	}
	return views, nil
}

// SubmitRSVP stores one response per guest identity. The duplicate check,
// the insert and the "yes" tally run in one transaction; the partial unique
// indexes catch a concurrent twin that slips past the check.
func (s *PublicService) SubmitRSVP(ctx context.Context, slug string, form models.RSVPFormData) (*models.InvitationRSVP, string, error) {
	normalizeRSVPForm(&form)
	if err := validateStruct(form); err != nil {
		return nil, "", err
	}

	rsvp := &models.InvitationRSVP{
		GuestName:           form.GuestName,
		GuestEmail:          optional(form.GuestEmail),
		GuestPhone:          optional(form.GuestPhone),
		Attendance:          form.Attendance,
		GuestCount:          form.GuestCount,
		DietaryRequirements: optional(form.DietaryRequirements),
		Message:             optional(form.Message),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		invRepo := repositories.NewInvitationRepositoryTx(tx)
		rsvpRepo := repositories.NewInvitationRSVPRepositoryTx(tx)

		inv, err := invRepo.FindBySlugPublished(ctx, slug)
		if err != nil {
			return err
		}
		rsvp.InvitationID = inv.ID

		if _, err := rsvpRepo.FindByGuest(ctx, inv.ID, rsvp.GuestEmail, rsvp.GuestName); err == nil {
			return ErrDuplicateRSVP
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		if err := rsvpRepo.Create(ctx, rsvp); err != nil {
			return err
		}
		if rsvp.Attendance == models.AttendanceYes {
			if _, err := invRepo.IncrementRSVPs(ctx, inv.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateRSVP), errors.Is(err, repositories.ErrDuplicate):
			return nil, "", ErrDuplicateRSVP
		case errors.Is(err, repositories.ErrNotFound):
			return nil, "", ErrNotFound
		default:
			return nil, "", s.internal("SubmitRSVP", slug, err)
		}
	}

	configslog.Log.Info("RSVP received",
		zap.String("slug", slug),
		zap.Uint("rsvp_id", rsvp.ID),
		zap.String("attendance", string(rsvp.Attendance)),
	)
	return rsvp, msgRSVPThanks, nil
}

func (s *PublicService) ListRSVPs(ctx context.Context, slug string) (*RSVPListing, error) {
	inv, err := s.findPublished(ctx, "ListRSVPs", slug)
	if err != nil {
		return nil, err
	}
	list, err := s.rsvps.FindByInvitationID(ctx, inv.ID)
	if err != nil {
		return nil, s.internal("ListRSVPs", slug, err)
	}
	summary, err := s.rsvps.SummaryByInvitationID(ctx, inv.ID)
	if err != nil {
		return nil, s.internal("ListRSVPs", slug, err)
	}
	rsvps := make([]models.PublicRSVP, 0, len(list))
	for _, r := range list {
		rsvps = append(rsvps, r.Public())
	}
	if summary == nil {
		summary = []models.RSVPSummary{}
	}
	return &RSVPListing{
		Invitation: CoupleNames{BrideName: inv.BrideName, GroomName: inv.GroomName},
		RSVPs:      rsvps,
		Summary:    summary,
	}, nil
}

// Sections composes the guest view of a published invitation.
func (s *PublicService) Sections(ctx context.Context, slug string, now time.Time) (*themes.Page, error) {
	d, err := s.GetPublished(ctx, slug)
	if err != nil {
		return nil, err
	}
	page := themes.Render(*d, themes.Options{Now: now})
	return &page, nil
}

func (s *PublicService) internal(op, slug string, err error) error {
	configslog.Log.Error("PublicService failure",
		zap.String("operation", op),
		zap.String("slug", slug),
		zap.Error(err),
	)
	return ErrInternal
}

// normalizeRSVPForm trims every field and lower-cases the email so the
// guest identity compares case-insensitively.
func normalizeRSVPForm(f *models.RSVPFormData) {
	f.GuestName = strings.TrimSpace(f.GuestName)
	f.GuestEmail = strings.ToLower(strings.TrimSpace(f.GuestEmail))
	f.GuestPhone = strings.TrimSpace(f.GuestPhone)
	f.Attendance = models.Attendance(strings.ToLower(strings.TrimSpace(string(f.Attendance))))
	f.DietaryRequirements = strings.TrimSpace(f.DietaryRequirements)
	f.Message = strings.TrimSpace(f.Message)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ IPublicService = (*PublicService)(nil)
