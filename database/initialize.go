package database

import (
	"github.com/sohryuu101/web-wedding-sub000/configs/configslog"
	"github.com/sohryuu101/web-wedding-sub000/database/migrations"
	"github.com/sohryuu101/web-wedding-sub000/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs migrations and/or seeders in one transaction. Any failure
// rolls the whole run back.
func Initialize(db *gorm.DB, migrate bool, seed bool) error {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed flag given, nothing to do.")
		return nil
	}

	configslog.SLog.Info("Database initialization starting...")
	err := db.Transaction(func(tx *gorm.DB) error {
		if migrate {
			configslog.SLog.Info("Running migrations...")
			if err := RunMigrationsInOrder(tx); err != nil {
				configslog.Log.Error("Migration failed", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Migrations completed.")
		} else {
			configslog.SLog.Info("Migrate flag not given, skipping migrations.")
		}

		if seed {
			configslog.SLog.Info("Running seeders...")
			if err := CheckAndRunSeeders(tx); err != nil {
				configslog.Log.Error("Seeding failed", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Seeders completed.")
		} else {
			configslog.SLog.Info("Seed flag not given, skipping seeders.")
		}
		return nil
	})
	if err != nil {
		configslog.SLog.Warn("Database initialization rolled back.")
		return err
	}

	configslog.SLog.Info("Database initialization completed successfully")
	return nil
}

// RunMigrationsInOrder migrates tables parents first so foreign keys resolve.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info(" -> Users...")
	if err := migrations.MigrateUsersTable(db); err != nil {
		return err
	}

	configslog.SLog.Info(" -> Invitations...")
	if err := migrations.MigrateInvitationsTable(db); err != nil {
		return err
	}

	configslog.SLog.Info(" -> RSVP responses...")
	if err := migrations.MigrateRSVPTable(db); err != nil {
		return err
	}

	configslog.SLog.Info("All migrations ran successfully.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> Demo user and invitation...")
	if err := seeders.SeedDemo(db); err != nil {
		configslog.Log.Error("Demo seed failed", zap.Error(err))
		return err
	}
	configslog.SLog.Info("All seeders checked/ran successfully.")
	return nil
}
