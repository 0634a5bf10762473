package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sohryuu101/web-wedding-sub000/configs"
	"github.com/sohryuu101/web-wedding-sub000/configs/configsdatabase"
	"github.com/sohryuu101/web-wedding-sub000/configs/configslog"
	"github.com/sohryuu101/web-wedding-sub000/configs/configsstorage"
	"github.com/sohryuu101/web-wedding-sub000/pkg/token"
	"github.com/sohryuu101/web-wedding-sub000/repositories"
	"github.com/sohryuu101/web-wedding-sub000/routes"
	"github.com/sohryuu101/web-wedding-sub000/services"

	"go.uber.org/zap"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	configslog.InitLogger(cfg.IsProduction(), cfg.LogLevel)
	defer configslog.SyncLogger()

	tokens, err := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		configslog.Log.Fatal("JWT_SECRET must be set", zap.Error(err))
	}

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()
	db := configsdatabase.GetDB()

	store := configsstorage.InitStore(context.Background(), cfg)
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}

	app := routes.NewApp(routes.Deps{
		Auth:        services.NewAuthService(repositories.NewUserRepository(db), tokens),
		Invitations: services.NewInvitationService(repositories.NewInvitationRepository(db)),
		Public:      services.NewPublicService(db),
		Uploads:     services.NewUploadService(store, cfg.UploadMaxBytes),

		CORSAllowOrigins: cfg.CORSAllowOrigins,
		RSVPRateLimit:    cfg.RSVPRateLimit,
		RequestTimeout:   cfg.RequestTimeout,
		UploadMaxBytes:   cfg.UploadMaxBytes,
	})

	go func() {
		addr := ":" + cfg.AppPort
		configslog.SLog.Infof("Server listening on %s (%s)", addr, cfg.AppEnv)
		if err := app.Listen(addr); err != nil {
			configslog.Log.Fatal("Server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	configslog.SLog.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		configslog.Log.Error("Graceful shutdown failed", zap.Error(err))
	}
}
