package repositories

import (
	"context"
	"errors"

	"github.com/sohryuu101/web-wedding-sub000/configs/configslog"
	"github.com/sohryuu101/web-wedding-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IInvitationRepository invitation persistence. Author-side lookups are keyed
// by user, guest-side lookups by slug and only see published rows.
type IInvitationRepository interface {
	FindByUser(ctx context.Context, userID uint) (*models.Invitation, error)
	FindBySlugPublished(ctx context.Context, slug string) (*models.Invitation, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Insert(ctx context.Context, invitation *models.Invitation) error
	UpdateFields(ctx context.Context, userID uint, fields map[string]interface{}) (*models.Invitation, error)
	Delete(ctx context.Context, userID uint) error
	IncrementViews(ctx context.Context, slug string) (int64, error)
	IncrementRSVPs(ctx context.Context, invitationID uint) (int64, error)
	TogglePublished(ctx context.Context, userID uint) (bool, error)
}

// InvitationRepository implements IInvitationRepository on GORM.
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository returns a repository on the shared connection.
func NewInvitationRepository(db *gorm.DB) IInvitationRepository {
	return &InvitationRepository{db: db}
}

// NewInvitationRepositoryTx binds the repository to an open transaction.
func NewInvitationRepositoryTx(tx *gorm.DB) IInvitationRepository {
	return &InvitationRepository{db: tx}
}

func (r *InvitationRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *InvitationRepository) FindByUser(ctx context.Context, userID uint) (*models.Invitation, error) {
	if userID == 0 {
		return nil, ErrNotFound
	}
	var inv models.Invitation
	err := r.getDB(ctx).Where("user_id = ?", userID).First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InvitationRepository.FindByUser: DB error", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &inv, nil
}

func (r *InvitationRepository) FindBySlugPublished(ctx context.Context, slug string) (*models.Invitation, error) {
	if slug == "" {
		return nil, ErrNotFound
	}
	var inv models.Invitation
	err := r.getDB(ctx).Where("slug = ? AND is_published = ?", slug, true).First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InvitationRepository.FindBySlugPublished: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &inv, nil
}

func (r *InvitationRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Invitation{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		configslog.Log.Error("InvitationRepository.SlugExists: DB error", zap.String("slug", slug), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// Insert creates the row. The unique indexes on user_id and slug are the
// final authority: a lost race surfaces as ErrConflict or ErrSlugTaken.
func (r *InvitationRepository) Insert(ctx context.Context, invitation *models.Invitation) error {
	if invitation == nil || invitation.UserID == 0 {
		return errors.New("invitation without owner cannot be inserted")
	}
	err := r.getDB(ctx).Create(invitation).Error
	if err == nil {
		return nil
	}
	if !isDuplicateKey(err) {
		configslog.Log.Error("InvitationRepository.Insert: DB error", zap.Uint("user_id", invitation.UserID), zap.Error(err))
		return err
	}

	// Which index fired? An existing row for the user means ownership conflict.
	// Insert must not run inside a transaction: on Postgres the failed
	// statement would abort it and this follow-up read with it.
	var owned int64
	if cerr := r.db.WithContext(ctx).Model(&models.Invitation{}).Where("user_id = ?", invitation.UserID).Count(&owned).Error; cerr != nil {
		return cerr
	}
	if owned > 0 {
		return ErrConflict
	}
	return ErrSlugTaken
}

// UpdateFields writes the given columns in one UPDATE and returns the fresh row.
func (r *InvitationRepository) UpdateFields(ctx context.Context, userID uint, fields map[string]interface{}) (*models.Invitation, error) {
	if len(fields) == 0 {
		return nil, errors.New("no fields to update")
	}
	var updated *models.Invitation
	err := r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Invitation{}).Where("user_id = ?", userID).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		var inv models.Invitation
		if err := tx.Where("user_id = ?", userID).First(&inv).Error; err != nil {
			return err
		}
		updated = &inv
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			configslog.Log.Error("InvitationRepository.UpdateFields: DB error", zap.Uint("user_id", userID), zap.Error(err))
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes the invitation and its RSVP responses together.
func (r *InvitationRepository) Delete(ctx context.Context, userID uint) error {
	return r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		var inv models.Invitation
		if err := tx.Select("id").Where("user_id = ?", userID).First(&inv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := NewInvitationRSVPRepositoryTx(tx).DeleteByInvitationID(ctx, inv.ID); err != nil {
			return err
		}
		res := tx.Where("id = ?", inv.ID).Delete(&models.Invitation{})
		if res.Error != nil {
			configslog.Log.Error("InvitationRepository.Delete: DB error", zap.Uint("user_id", userID), zap.Error(res.Error))
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// IncrementViews bumps the counter in-place (views = views + 1) for a
// published slug and returns the value this call produced.
func (r *InvitationRepository) IncrementViews(ctx context.Context, slug string) (int64, error) {
	var views int64
	err := r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Invitation{}).
			Where("slug = ? AND is_published = ?", slug, true).
			UpdateColumn("views", gorm.Expr("views + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		// row lock from the UPDATE is held until commit, so this read sees our increment
		return tx.Model(&models.Invitation{}).Select("views").Where("slug = ?", slug).Scan(&views).Error
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			configslog.Log.Error("InvitationRepository.IncrementViews: DB error", zap.String("slug", slug), zap.Error(err))
		}
		return 0, err
	}
	return views, nil
}

// IncrementRSVPs bumps the "yes" tally. Meant to run inside the RSVP insert
// transaction (see NewInvitationRepositoryTx).
func (r *InvitationRepository) IncrementRSVPs(ctx context.Context, invitationID uint) (int64, error) {
	db := r.getDB(ctx)
	res := db.Model(&models.Invitation{}).Where("id = ?", invitationID).
		UpdateColumn("rsvps", gorm.Expr("rsvps + ?", 1))
	if res.Error != nil {
		configslog.Log.Error("InvitationRepository.IncrementRSVPs: DB error", zap.Uint("invitation_id", invitationID), zap.Error(res.Error))
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	var rsvps int64
	if err := db.Model(&models.Invitation{}).Select("rsvps").Where("id = ?", invitationID).Scan(&rsvps).Error; err != nil {
		return 0, err
	}
	return rsvps, nil
}

// TogglePublished flips is_published in a single statement.
func (r *InvitationRepository) TogglePublished(ctx context.Context, userID uint) (bool, error) {
	var published bool
	err := r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Invitation{}).Where("user_id = ?", userID).
			Update("is_published", gorm.Expr("NOT is_published"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Model(&models.Invitation{}).Select("is_published").Where("user_id = ?", userID).Scan(&published).Error
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			configslog.Log.Error("InvitationRepository.TogglePublished: DB error", zap.Uint("user_id", userID), zap.Error(err))
		}
		return false, err
	}
	return published, nil
}

var _ IInvitationRepository = (*InvitationRepository)(nil)
