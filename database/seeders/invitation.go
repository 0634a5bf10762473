package seeders

import (
	"errors"
	"time"

	"github.com/sohryuu101/web-wedding-sub000/configs/configslog"
	"github.com/sohryuu101/web-wedding-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const DemoInvitationSlug = "demo-bride-and-demo-groom"

// SeedDemoInvitation gives the demo user a published invitation with every
// section filled, so each theme can be previewed against real data.
func SeedDemoInvitation(db *gorm.DB, owner *models.User) error {
	var count int64
	if err := db.Model(&models.Invitation{}).Where("user_id = ?", owner.ID).Count(&count).Error; err != nil {
		configslog.Log.Error("Failed to check demo invitation", zap.Error(err))
		return err
	}
	if count > 0 {
		configslog.SLog.Debug("Demo invitation already exists, skipping.")
		return nil
	}

	wedding := time.Now().UTC().AddDate(0, 6, 0).Truncate(24 * time.Hour).Add(10 * time.Hour)
	data := models.InvitationData{
		Slug:        DemoInvitationSlug,
		BrideName:   "Demo Bride",
		GroomName:   "Demo Groom",
		WeddingDate: wedding,
		Venue:       "Garden Hall",
		MainTitle:   models.DefaultMainTitle,
		Subtitle:    models.DefaultSubtitle,
		Message:     "Join us as we celebrate our wedding day.",
		Theme:       "rose-garden",
		Bride: models.PersonProfile{
			Parents:    models.Parents{Father: "Mr. Bride", Mother: "Mrs. Bride"},
			BirthOrder: "first",
		},
		Groom: models.PersonProfile{
			Parents:    models.Parents{Father: "Mr. Groom", Mother: "Mrs. Groom"},
			BirthOrder: "second",
		},
		Hashtag: "#DemoWedding",
		LoveStory: []models.LoveStoryMilestone{
			{ID: "1", Date: "2019-09-01", Title: "First meeting", Description: "We met at a friend's party."},
			{ID: "2", Date: "2023-02-14", Title: "The proposal", Description: "A walk by the lake."},
		},
		EventDetails: &models.EventDetails{
			Date:    wedding.Format("2006-01-02"),
			Time:    "10:00",
			Venue:   "Garden Hall",
			Address: "1 Rose Street",
		},
		ContactInfo: &models.ContactInfo{Email: DemoUserEmail},
		IsPublished: true,
	}

	row := models.DisassembleInvitation(data)
	row.UserID = owner.ID
	if err := db.Create(&row).Error; err != nil {
		configslog.Log.Error("Failed to create demo invitation", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Demo invitation '%s' created (ID: %d).", row.Slug, row.ID)
	return nil
}

// SeedDemo runs the demo seeders in dependency order.
func SeedDemo(db *gorm.DB) error {
	user, err := SeedDemoUser(db)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("demo user missing after seed")
	}
	return SeedDemoInvitation(db, user)
}
