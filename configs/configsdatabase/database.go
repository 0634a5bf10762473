package configsdatabase

import (
	"time"

	"github.com/sohryuu101/web-wedding-sub000/configs"
	"github.com/sohryuu101/web-wedding-sub000/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// InitDB opens the Postgres connection described by the loaded config.
// Any failure here is fatal: the app has nothing to serve without a DB.
func InitDB() {
	cfg := configs.Get()

	conn, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger:         NewGormLogger(200 * time.Millisecond),
		TranslateError: true, // unique violations -> gorm.ErrDuplicatedKey
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		configslog.Log.Fatal("Failed to connect to database", zap.String("host", cfg.DB.Host), zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("Failed to get sql.DB", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.MaxOpenConns / 2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db = conn
	configslog.SLog.Infof("Database connected: %s@%s/%s", cfg.DB.User, cfg.DB.Host, cfg.DB.Name)
}

// GetDB returns the shared connection. InitDB must have been called.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB called before InitDB")
	}
	return db
}

// CloseDB closes the underlying pool.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Failed to get sql.DB for close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Failed to close database", zap.Error(err))
		return
	}
	configslog.SLog.Info("Database connection closed.")
}
