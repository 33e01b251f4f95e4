package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	FunctionSecret    string
	AdminKeySalt      string
	ResponseTokenSalt string

	BaseURL string
	WebDir  string

	EnforceUniqueResponse bool

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	FromEmail    string
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	// optional .env for local dev
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("dut-campus", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres or sqlite)")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "Public base URL used in emailed links")
	fs.StringVar(&cfg.WebDir, "web", "", "Directory holding the static dashboard")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.FunctionSecret, "function-secret", "", "Bearer secret for ingestion and staff calls (prefer env)")
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Campaign admin key salt (prefer env)")
	fs.StringVar(&cfg.ResponseTokenSalt, "token-salt", "", "Response link token salt (prefer env)")

	// Behavior toggles
	fs.BoolVar(&cfg.EnforceUniqueResponse, "enforce-unique", false, "Enforce one response per student per campaign")

	// Outbound mail
	fs.StringVar(&cfg.SMTPHost, "smtp-host", "", "SMTP server host")
	fs.IntVar(&cfg.SMTPPort, "smtp-port", 0, "SMTP server port")
	fs.StringVar(&cfg.SMTPUser, "smtp-user", "", "SMTP username")
	fs.StringVar(&cfg.SMTPPassword, "smtp-password", "", "SMTP password (prefer env)")
	fs.StringVar(&cfg.FromEmail, "from", "", "From address for outbound email")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "postgres"
		}
	}
	if cfg.DatabaseType != "postgres" && cfg.DatabaseType != "sqlite" {
		return Config{}, errors.New("database type must be postgres or sqlite")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("BASE_URL")
		if cfg.BaseURL == "" {
			cfg.BaseURL = "http://127.0.0.1:8080"
		}
	}
	if cfg.WebDir == "" {
		cfg.WebDir = os.Getenv("WEB_DIR")
		if cfg.WebDir == "" {
			cfg.WebDir = "./web"
		}
	}

	// Secrets - MUST be provided
	if cfg.FunctionSecret == "" {
		cfg.FunctionSecret = os.Getenv("FUNCTION_SECRET")
	}
	if cfg.FunctionSecret == "" {
		return Config{}, errors.New("FUNCTION_SECRET required")
	}

	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	if cfg.ResponseTokenSalt == "" {
		cfg.ResponseTokenSalt = os.Getenv("RESPONSE_TOKEN_SALT")
	}
	if cfg.ResponseTokenSalt == "" {
		return Config{}, errors.New("RESPONSE_TOKEN_SALT required")
	}

	if !cfg.EnforceUniqueResponse {
		if v := os.Getenv("ENFORCE_UNIQUE_RESPONSE"); v == "1" || v == "true" {
			cfg.EnforceUniqueResponse = true
		}
	}

	// Outbound mail is optional; with no SMTP host configured sends fail
	// and land in the email log as failed
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = os.Getenv("SMTP_HOST")
	}
	if cfg.SMTPPort == 0 {
		if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid SMTP_PORT env variable")
			}
			cfg.SMTPPort = port
		} else {
			cfg.SMTPPort = 587 // default
		}
	}
	if cfg.SMTPUser == "" {
		cfg.SMTPUser = os.Getenv("SMTP_USER")
	}
	if cfg.SMTPPassword == "" {
		cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	}
	if cfg.FromEmail == "" {
		cfg.FromEmail = os.Getenv("FROM_EMAIL")
	}

	return cfg, nil
}
