package config

import (
	"fmt"
	"net/mail"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port             string
	Env              string
	CORSAllowOrigins []string

	EmailAddress  string
	EmailPassword string
	SMTPHost      string
	SMTPPort      int

	DatabaseURL string

	ObjectStoreType string
	AssetsDir       string
	IndexFile       string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string

	ResumeKey      string
	ResumeFilename string
	OwnerName      string
}

// Load reads configuration from environment variables. EMAIL_ADDRESS,
// EMAIL_PASSWORD and DATABASE_URL are required; a missing or malformed value
// is a startup-fatal condition reported to the caller.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		Env:              normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigins: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		EmailAddress:     strings.TrimSpace(os.Getenv("EMAIL_ADDRESS")),
		EmailPassword:    os.Getenv("EMAIL_PASSWORD"),
		SMTPHost:         getEnv("SMTP_HOST", "smtp.gmail.com"),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ObjectStoreType:  normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		AssetsDir:        getEnv("ASSETS_DIR", "./assets"),
		IndexFile:        getEnv("INDEX_FILE", "./index.html"),
		AWSRegion:        getEnv("AWS_REGION", ""),
		S3Bucket:         getEnv("S3_BUCKET", ""),
		S3Prefix:         getEnv("S3_PREFIX", ""),
		ResumeKey:        getEnv("RESUME_KEY", "resume.pdf"),
		ResumeFilename:   getEnv("RESUME_FILENAME", "resume.pdf"),
		OwnerName:        getEnv("OWNER_NAME", "Portfolio Owner"),
	}

	if cfg.EmailAddress == "" {
		return Config{}, fmt.Errorf("EMAIL_ADDRESS is required")
	}
	if _, err := mail.ParseAddress(cfg.EmailAddress); err != nil {
		return Config{}, fmt.Errorf("EMAIL_ADDRESS is not a valid address: %w", err)
	}
	if cfg.EmailPassword == "" {
		return Config{}, fmt.Errorf("EMAIL_PASSWORD is required")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	port, err := strconv.Atoi(getEnv("SMTP_PORT", "465"))
	if err != nil {
		return Config{}, fmt.Errorf("SMTP_PORT is not a valid port: %w", err)
	}
	cfg.SMTPPort = port

	return cfg, nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
