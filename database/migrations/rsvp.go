package migrations

import (
	"github.com/sohryuu101/web-wedding-sub000/configs/configslog"
	"github.com/sohryuu101/web-wedding-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Guest identity is the email when given, otherwise the name among rows
// without an email. Both are enforced per invitation with partial indexes,
// which GORM tags cannot express.
var rsvpGuestIndexes = []struct {
	name string
	sql  string
}{
	{
		name: "idx_rsvp_invitation_email",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS idx_rsvp_invitation_email
			ON rsvp_responses (invitation_id, guest_email)
			WHERE guest_email IS NOT NULL`,
	},
	{
		name: "idx_rsvp_invitation_name",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS idx_rsvp_invitation_name
			ON rsvp_responses (invitation_id, guest_name)
			WHERE guest_email IS NULL`,
	},
}

// MigrateRSVPTable needs the invitations table for the FK.
func MigrateRSVPTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating rsvp_responses table...")
	if err := db.AutoMigrate(&models.InvitationRSVP{}); err != nil {
		configslog.Log.Error("Failed to migrate rsvp_responses table", zap.Error(err))
		return err
	}

	for _, idx := range rsvpGuestIndexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			configslog.Log.Error("Failed to create RSVP guest index", zap.String("index", idx.name), zap.Error(err))
			return err
		}
	}

	configslog.SLog.Info("Rsvp_responses table migrated successfully")
	return nil
}
