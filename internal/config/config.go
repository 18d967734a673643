package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig gathers everything the server needs at startup.
type AppConfig struct {
	ListenAddr        string
	Port              string
	DatabasePath      string
	SessionSecret     string
	GinMode           string
	SiteBaseURL       string
	AdminUserEmail    string
	AdminUserPassword string
	SMTPHost          string
	SMTPPort          string
	SMTPUser          string
	SMTPPassword      string
	ContactNotifyTo   string
	ContactNotifyFrom string
}

// Load reads the application configuration from environment variables,
// providing safe defaults for anything missing. Mail is disabled entirely
// when SMTP_HOST is unset.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "lawsite.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "lawsite-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	siteBaseURL := strings.TrimSpace(os.Getenv("SITE_BASE_URL"))
	if siteBaseURL == "" {
		siteBaseURL = "https://www.harborlaw.example"
	}
	siteBaseURL = strings.TrimRight(siteBaseURL, "/")

	smtpPort := strings.TrimSpace(os.Getenv("SMTP_PORT"))
	if smtpPort == "" {
		smtpPort = "587"
	}

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		DatabasePath:      databasePath,
		SessionSecret:     sessionSecret,
		GinMode:           ginMode,
		SiteBaseURL:       siteBaseURL,
		AdminUserEmail:    strings.TrimSpace(os.Getenv("ADMIN_USER_EMAIL")),
		AdminUserPassword: strings.TrimSpace(os.Getenv("ADMIN_USER_PASSWORD")),
		SMTPHost:          strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:          smtpPort,
		SMTPUser:          strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPassword:      strings.TrimSpace(os.Getenv("SMTP_PASSWORD")),
		ContactNotifyTo:   strings.TrimSpace(os.Getenv("CONTACT_NOTIFY_TO")),
		ContactNotifyFrom: strings.TrimSpace(os.Getenv("CONTACT_NOTIFY_FROM")),
	}
}
