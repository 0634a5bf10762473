package repositories

import (
	"context"
	"errors"

	"github.com/sohryuu101/web-wedding-sub000/configs/configslog"
	"github.com/sohryuu101/web-wedding-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IInvitationRSVPRepository RSVP persistence. Responses are append-only.
type IInvitationRSVPRepository interface {
	Create(ctx context.Context, rsvp *models.InvitationRSVP) error
	FindByGuest(ctx context.Context, invitationID uint, guestEmail *string, guestName string) (*models.InvitationRSVP, error)
	FindByInvitationID(ctx context.Context, invitationID uint) ([]models.InvitationRSVP, error)
	SummaryByInvitationID(ctx context.Context, invitationID uint) ([]models.RSVPSummary, error)
	DeleteByInvitationID(ctx context.Context, invitationID uint) error
}

// InvitationRSVPRepository implements IInvitationRSVPRepository.
type InvitationRSVPRepository struct {
	db *gorm.DB
}

func NewInvitationRSVPRepository(db *gorm.DB) IInvitationRSVPRepository {
	return &InvitationRSVPRepository{db: db}
}

// NewInvitationRSVPRepositoryTx binds the repository to an open transaction.
func NewInvitationRSVPRepositoryTx(tx *gorm.DB) IInvitationRSVPRepository {
	return &InvitationRSVPRepository{db: tx}
}

func (r *InvitationRSVPRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create inserts a response; the partial unique indexes on guest identity
// turn a concurrent repeat into ErrDuplicate.
func (r *InvitationRSVPRepository) Create(ctx context.Context, rsvp *models.InvitationRSVP) error {
	if rsvp == nil || rsvp.InvitationID == 0 {
		return errors.New("invalid RSVP: missing invitation")
	}
	if err := r.getDB(ctx).Create(rsvp).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		configslog.Log.Error("InvitationRSVPRepository.Create: DB error", zap.Uint("invitation_id", rsvp.InvitationID), zap.Error(err))
		return err
	}
	return nil
}

// FindByGuest looks a guest up by email when one is given, otherwise by exact
// name among responses that carry no email.
func (r *InvitationRSVPRepository) FindByGuest(ctx context.Context, invitationID uint, guestEmail *string, guestName string) (*models.InvitationRSVP, error) {
	q := r.getDB(ctx).Where("invitation_id = ?", invitationID)
	if guestEmail != nil {
		q = q.Where("guest_email = ?", *guestEmail)
	} else {
		q = q.Where("guest_email IS NULL AND guest_name = ?", guestName)
	}

	var rsvp models.InvitationRSVP
	if err := q.First(&rsvp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InvitationRSVPRepository.FindByGuest: DB error", zap.Uint("invitation_id", invitationID), zap.Error(err))
		return nil, err
	}
	return &rsvp, nil
}

// FindByInvitationID returns every response, newest first.
func (r *InvitationRSVPRepository) FindByInvitationID(ctx context.Context, invitationID uint) ([]models.InvitationRSVP, error) {
	var rsvps []models.InvitationRSVP
	err := r.getDB(ctx).Where("invitation_id = ?", invitationID).
		Order("created_at desc").Order("id desc").
		Find(&rsvps).Error
	if err != nil {
		configslog.Log.Error("InvitationRSVPRepository.FindByInvitationID: DB error", zap.Uint("invitation_id", invitationID), zap.Error(err))
		return nil, err
	}
	return rsvps, nil
}

// SummaryByInvitationID groups responses by attendance. Guests sums
// guest_count, counting a response without one as a single guest.
func (r *InvitationRSVPRepository) SummaryByInvitationID(ctx context.Context, invitationID uint) ([]models.RSVPSummary, error) {
	var rows []models.RSVPSummary
	err := r.getDB(ctx).Model(&models.InvitationRSVP{}).
		Select("attendance, COUNT(*) AS count, COALESCE(SUM(COALESCE(guest_count, 1)), 0) AS guests").
		Where("invitation_id = ?", invitationID).
		Group("attendance").
		Order("attendance").
		Scan(&rows).Error
	if err != nil {
		configslog.Log.Error("InvitationRSVPRepository.SummaryByInvitationID: DB error", zap.Uint("invitation_id", invitationID), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (r *InvitationRSVPRepository) DeleteByInvitationID(ctx context.Context, invitationID uint) error {
	err := r.getDB(ctx).Where("invitation_id = ?", invitationID).Delete(&models.InvitationRSVP{}).Error
	if err != nil {
		configslog.Log.Error("InvitationRSVPRepository.DeleteByInvitationID: DB error", zap.Uint("invitation_id", invitationID), zap.Error(err))
	}
	return err
}

var _ IInvitationRSVPRepository = (*InvitationRSVPRepository)(nil)
