package migrations

import (
	"github.com/sohryuu101/web-wedding-sub000/configs/configslog"
	"github.com/sohryuu101/web-wedding-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateInvitationsTable needs the users table for the owner FK.
func MigrateInvitationsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating invitations table...")
	if err := db.AutoMigrate(&models.Invitation{}); err != nil {
		configslog.Log.Error("Failed to migrate invitations table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Invitations table migrated successfully")
	return nil
}
