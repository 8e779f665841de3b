package config

import (
	"os"
	"testing"
)

const defaultMaxFileSize int64 = 50 * 1024 * 1024

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("TEMP_PATH", "")
	t.Setenv("MAX_FILE_SIZE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("APP_TITLE", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetTempPath() != os.TempDir() {
		t.Fatalf("expected default temp path %s, got %s", os.TempDir(), cfg.GetTempPath())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetAppTitle() != "PDF Toolkit" {
		t.Fatalf("expected default app title, got %s", cfg.GetAppTitle())
	}
	origins := cfg.GetAllowedOrigins()
	if len(origins) != 1 || origins[0] != "*" {
		t.Fatalf("expected default allowed origins [*], got %v", origins)
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("TEMP_PATH", "/var/scratch")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_TITLE", "Docs")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, http://localhost:3000")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetTempPath() != "/var/scratch" {
		t.Fatalf("expected temp path /var/scratch, got %s", cfg.GetTempPath())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
	if cfg.GetAppTitle() != "Docs" {
		t.Fatalf("expected app title Docs, got %s", cfg.GetAppTitle())
	}
	origins := cfg.GetAllowedOrigins()
	if len(origins) != 2 || origins[0] != "http://localhost:5173" || origins[1] != "http://localhost:3000" {
		t.Fatalf("expected two trimmed origins, got %v", origins)
	}
}

func TestNewConfig_InvalidMaxFileSizeFallsBack(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "not-a-number")

	cfg := NewConfig()

	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected fallback max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
}
