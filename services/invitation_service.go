package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sohryuu101/web-wedding-sub000/configs/configslog"
	"github.com/sohryuu101/web-wedding-sub000/models"
	"github.com/sohryuu101/web-wedding-sub000/pkg/themes"
	"github.com/sohryuu101/web-wedding-sub000/repositories"
	"github.com/sohryuu101/web-wedding-sub000/utils"

	"go.uber.org/zap"
)

// maxSlugAttempts bounds the numeric suffix search (base, base-1 … base-100).
const maxSlugAttempts = 100

const (
	msgPublished   = "Invitation published successfully"
	msgUnpublished = "Invitation unpublished successfully"
)

// IInvitationService is the author side of the invitation lifecycle. Every
// call is scoped to the authenticated user's single invitation.
type IInvitationService interface {
	Create(ctx context.Context, userID uint, input models.CreateInvitationInput) (*models.InvitationData, error)
	Get(ctx context.Context, userID uint) (*models.InvitationData, error)
	Update(ctx context.Context, userID uint, patch models.InvitationPatch) (*models.InvitationData, error)
	TogglePublish(ctx context.Context, userID uint) (bool, string, error)
	Delete(ctx context.Context, userID uint) error
	Preview(ctx context.Context, userID uint, now time.Time) (*themes.Page, error)
}

type InvitationService struct {
	repo repositories.IInvitationRepository
}

func NewInvitationService(repo repositories.IInvitationRepository) IInvitationService {
	return &InvitationService{repo: repo}
}

func (s *InvitationService) Create(ctx context.Context, userID uint, input models.CreateInvitationInput) (*models.InvitationData, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	input.Trim()
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	weddingDate, err := utils.ParseWeddingDate(input.WeddingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: wedding_date is not a valid date", ErrValidation)
	}

	if _, err := s.repo.FindByUser(ctx, userID); err == nil {
		return nil, ErrAlreadyExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, s.internal("Create", userID, err)
	}

	base := utils.CoupleSlug(input.BrideName, input.GroomName)
	if input.CustomSlug != "" {
		if base = utils.Slugify(input.CustomSlug); base == "" {
			base = utils.FallbackSlug
		}
	}

	row := models.DisassembleInvitation(models.InvitationData{
		BrideName:   input.BrideName,
		GroomName:   input.GroomName,
		WeddingDate: weddingDate,
		Venue:       input.Venue,
		MainTitle:   orDefault(input.MainTitle, models.DefaultMainTitle),
		Subtitle:    orDefault(input.Subtitle, models.DefaultSubtitle),
		Message:     input.Message,
		Theme:       orDefault(input.Theme, models.DefaultTheme),
	})
	row.UserID = userID

	// A lost slug race gets one more suffix search.
	for attempt := 0; attempt < 2; attempt++ {
		slug, err := s.resolveSlug(ctx, base)
		if err != nil {
			return nil, s.internal("Create", userID, err)
		}
		row.Slug = slug

		err = s.repo.Insert(ctx, &row)
		switch {
		case err == nil:
			configslog.Log.Info("Invitation created", zap.Uint("user_id", userID), zap.String("slug", slug))
			d := models.AssembleInvitation(&row)
			return &d, nil
		case errors.Is(err, repositories.ErrConflict):
			return nil, ErrAlreadyExists
		case errors.Is(err, repositories.ErrSlugTaken):
			row.ID = 0
			continue
		default:
			return nil, s.internal("Create", userID, err)
		}
	}
	return nil, s.internal("Create", userID, fmt.Errorf("slug %q kept colliding", base))
}

// resolveSlug returns base, or the first free base-N. Route segments such
// as "themes" count as taken.
func (s *InvitationService) resolveSlug(ctx context.Context, base string) (string, error) {
	candidate := base
	for i := 0; i <= maxSlugAttempts; i++ {
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}
		if utils.IsReservedSlug(candidate) {
			continue
		}
		exists, err := s.repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free slug for %q after %d attempts", base, maxSlugAttempts)
}

// Get returns ErrNotFound when the user has not created an invitation yet.
func (s *InvitationService) Get(ctx context.Context, userID uint) (*models.InvitationData, error) {
	row, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, s.internal("Get", userID, err)
	}
	d := models.AssembleInvitation(row)
	return &d, nil
}

func (s *InvitationService) Update(ctx context.Context, userID uint, patch models.InvitationPatch) (*models.InvitationData, error) {
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	cols, err := patch.Columns(utils.ParseWeddingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: wedding_date is not a valid date", ErrValidation)
	}
	if len(cols) == 0 {
		return nil, ErrNoFields
	}

	row, err := s.repo.UpdateFields(ctx, userID, cols)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, s.internal("Update", userID, err)
	}
	d := models.AssembleInvitation(row)
	return &d, nil
}

func (s *InvitationService) TogglePublish(ctx context.Context, userID uint) (bool, string, error) {
	published, err := s.repo.TogglePublished(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, "", ErrNotFound
		}
		return false, "", s.internal("TogglePublish", userID, err)
	}
	if published {
		return true, msgPublished, nil
	}
	return false, msgUnpublished, nil
}

func (s *InvitationService) Delete(ctx context.Context, userID uint) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return s.internal("Delete", userID, err)
	}
	configslog.Log.Info("Invitation deleted", zap.Uint("user_id", userID))
	return nil
}

// Preview composes the author's invitation whatever its publish state.
func (s *InvitationService) Preview(ctx context.Context, userID uint, now time.Time) (*themes.Page, error) {
	d, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	page := themes.Render(*d, themes.Options{IsPreview: true, Now: now})
	return &page, nil
}

func (s *InvitationService) internal(op string, userID uint, err error) error {
	configslog.Log.Error("InvitationService failure",
		zap.String("operation", op),
		zap.Uint("user_id", userID),
		zap.Error(err),
	)
	return ErrInternal
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

var _ IInvitationService = (*InvitationService)(nil)
