package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/harborlaw/website/internal/catalog"
	"github.com/harborlaw/website/internal/config"
	"github.com/harborlaw/website/internal/db"
	"github.com/harborlaw/website/internal/handler"
	"github.com/harborlaw/website/internal/notify"
	"github.com/harborlaw/website/internal/router"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cat, err := catalog.Load()
	if err != nil {
		logger.Fatal("failed to load service catalog", zap.Error(err))
	}

	if err := db.Init(cfg.DatabasePath); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	if err := db.EnsureUser(cfg.AdminUserEmail, cfg.AdminUserPassword); err != nil {
		logger.Warn("failed to seed admin user", zap.Error(err))
	}

	var notifier notify.Notifier = notify.NopNotifier{}
	if cfg.SMTPHost != "" && cfg.ContactNotifyTo != "" {
		notifier = notify.NewMailer(
			cfg.SMTPHost, cfg.SMTPPort,
			cfg.SMTPUser, cfg.SMTPPassword,
			cfg.ContactNotifyFrom, cfg.ContactNotifyTo,
		)
	}

	api := handler.NewAPI(db.DB, cat, notifier, logger, cfg.SiteBaseURL)
	r := router.Setup(api, cfg.SessionSecret, "web/template/**/*.html")

	logger.Info("server listening", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
