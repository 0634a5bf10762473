package main

import (
	"flag"
	"log"

	"github.com/sohryuu101/web-wedding-sub000/configs"
	"github.com/sohryuu101/web-wedding-sub000/configs/configsdatabase"
	"github.com/sohryuu101/web-wedding-sub000/configs/configslog"
	"github.com/sohryuu101/web-wedding-sub000/database"

	"go.uber.org/zap"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "Run database migrations")
	seedFlag := flag.Bool("seed", false, "Run database seeders (demo user and invitation)")
	flag.Parse()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	configslog.InitLogger(cfg.IsProduction(), cfg.LogLevel)
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	if err := database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag); err != nil {
		configslog.Log.Error("Database initialization failed", zap.Error(err))
		return
	}
	configslog.SLog.Info("Database initialization finished.")
}
