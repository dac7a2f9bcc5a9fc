package config

import (
	"reflect"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("EMAIL_ADDRESS", "owner@example.com")
	t.Setenv("EMAIL_PASSWORD", "app-password")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/portfolio")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.SMTPHost != "smtp.gmail.com" || cfg.SMTPPort != 465 {
		t.Errorf("expected default smtp endpoint, got %s:%d", cfg.SMTPHost, cfg.SMTPPort)
	}
	if len(cfg.CORSAllowOrigins) != 1 || cfg.CORSAllowOrigins[0] != "*" {
		t.Errorf("expected default CORS origins [*], got %v", cfg.CORSAllowOrigins)
	}
	if cfg.ObjectStoreType != "local" {
		t.Errorf("expected local object store, got %s", cfg.ObjectStoreType)
	}
}

func TestLoadIsRepeatable(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("RESUME_KEY", "cv.pdf")

	first, err := Load()
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	second, err := Load()
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical configs, got %+v vs %+v", first, second)
	}
}

func TestLoadRequiredValues(t *testing.T) {
	cases := []struct {
		name  string
		unset string
	}{
		{"missing email address", "EMAIL_ADDRESS"},
		{"missing email password", "EMAIL_PASSWORD"},
		{"missing database url", "DATABASE_URL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tc.unset, "")
			if _, err := Load(); err == nil {
				t.Fatalf("expected error when %s is empty", tc.unset)
			}
		})
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("EMAIL_ADDRESS", "not-an-address")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed EMAIL_ADDRESS")
	}

	setRequiredEnv(t)
	t.Setenv("SMTP_PORT", "not-a-port")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed SMTP_PORT")
	}
}
