// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func setRequiredEnv() {
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("FUNCTION_SECRET", "test-secret")
	os.Setenv("ADMIN_KEY_SALT", "test-salt")
	os.Setenv("RESPONSE_TOKEN_SALT", "test-token-salt")
}

func TestParseFlags_EnvVars(t *testing.T) {
	setRequiredEnv()
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected default database type postgres, got %q", cfg.DatabaseType)
	}
	if cfg.SMTPPort != 587 {
		t.Errorf("expected default SMTP port 587, got %d", cfg.SMTPPort)
	}
	if cfg.WebDir != "./web" {
		t.Errorf("expected default web dir ./web, got %q", cfg.WebDir)
	}
	if cfg.EnforceUniqueResponse {
		t.Error("EnforceUniqueResponse should default to off")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	setRequiredEnv()
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8081", "-d", "file:test.db", "-t", "sqlite"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8081 {
		t.Errorf("CLI should override env: expected 8081, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("CLI should override env: expected file:test.db, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("CLI should override env: expected sqlite, got %q", cfg.DatabaseType)
	}
}

func TestParseFlags_MissingSecrets(t *testing.T) {
	tests := []struct {
		name string
		omit string
	}{
		{"missing function secret", "FUNCTION_SECRET"},
		{"missing admin salt", "ADMIN_KEY_SALT"},
		{"missing token salt", "RESPONSE_TOKEN_SALT"},
		{"missing database url", "DATABASE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			setRequiredEnv()
			os.Unsetenv(tt.omit)
			defer os.Clearenv()

			if _, err := ParseFlags([]string{}); err == nil {
				t.Errorf("expected error when %s is missing", tt.omit)
			}
		})
	}
}

func TestParseFlags_InvalidDatabaseType(t *testing.T) {
	setRequiredEnv()
	defer os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "mysql"}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestParseFlags_EnforceUniqueFromEnv(t *testing.T) {
	setRequiredEnv()
	os.Setenv("ENFORCE_UNIQUE_RESPONSE", "true")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if !cfg.EnforceUniqueResponse {
		t.Error("expected EnforceUniqueResponse on via env")
	}
}
