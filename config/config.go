package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig holds environment driven configuration values. It is built once in main
// and passed into every component; nothing mutates it after Load returns.
// Sensitive data never has defaults inside code and must come from the environment.
type AppConfig struct {
	AppPort       string
	SessionSecret string

	// DatabaseURI selects the store. "sqlite://blog.db" style URIs open the
	// embedded store; anything else is treated as a MySQL DSN.
	DatabaseURI string

	// SMTP for the contact notifier
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPTLS      bool
	// ContactRecipient receives every contact-form submission.
	ContactRecipient string

	// TemplateGlob locates the HTML templates loaded into the router.
	TemplateGlob string

	// Gin framework configuration
	GinMode string

	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

// Load reads configuration from an optional .env file and the environment.
// It should be called once during boot.
func Load() AppConfig {
	// .env is a convenience for local development; the real environment wins.
	_ = godotenv.Load()

	cfg := AppConfig{
		AppPort:          getEnv("APP_PORT", "8080"),
		SessionSecret:    os.Getenv("SESSION_SECRET"),
		DatabaseURI:      getEnv("DATABASE_URI", "sqlite://blog.db"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getEnvInt("SMTP_PORT", 587),
		SMTPUsername:     os.Getenv("SMTP_USERNAME"),
		SMTPPassword:     os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:         os.Getenv("SMTP_FROM"),
		SMTPFromName:     getEnv("SMTP_FROM_NAME", "Inkblog"),
		SMTPTLS:          getEnvBool("SMTP_TLS", true),
		ContactRecipient: os.Getenv("CONTACT_RECIPIENT"),
		TemplateGlob:     getEnv("TEMPLATE_GLOB", "templates/*.html"),
		GinMode:          getEnv("GIN_MODE", "release"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogPath:          getEnv("LOG_PATH", "logs/app.log"),
		LogMaxSizeMB:     getEnvInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups:    getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays:    getEnvInt("LOG_MAX_AGE_DAYS", 7),
		LogCompress:      getEnvBool("LOG_COMPRESS", false),
	}

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET must be set in environment variables")
	}

	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
