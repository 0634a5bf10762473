package seeders

import (
	"errors"

	"github.com/sohryuu101/web-wedding-sub000/configs/configslog"
	"github.com/sohryuu101/web-wedding-sub000/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	DemoUserEmail    = "demo@wedding.local"
	DemoUserName     = "Demo Couple"
	DemoUserPassword = "demo-password"
)

// SeedDemoUser creates the demo account once and returns it either way.
func SeedDemoUser(db *gorm.DB) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", DemoUserEmail).First(&user).Error
	if err == nil {
		configslog.SLog.Debugf("Demo user '%s' already exists, skipping.", DemoUserEmail)
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Failed to look up demo user", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user = models.User{Email: DemoUserEmail, Name: DemoUserName, PasswordHash: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Failed to create demo user", zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Demo user '%s' created (ID: %d).", user.Email, user.ID)
	return &user, nil
}
