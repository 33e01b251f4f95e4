// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first when present.

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseURL: PostgreSQL or SQLite connection string (required)
  - DatabaseType: postgres or sqlite (default: postgres)
  - FunctionSecret: Bearer secret for ingestion and staff calls (required)
  - AdminKeySalt: Secret for campaign admin key HMAC (required)
  - ResponseTokenSalt: Secret for emailed response links (required)
  - BaseURL: Public base URL used in emailed links
  - WebDir: Static dashboard directory (default: ./web)
  - EnforceUniqueResponse: One response per student per campaign (default: off)
  - SMTPHost, SMTPPort, SMTPUser, SMTPPassword, FromEmail: Outbound mail

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type
	--base-url        Public base URL
	--web             Static dashboard directory
	--function-secret Bearer secret
	--admin-salt      Admin key salt
	--token-salt      Response link token salt
	--enforce-unique  Enforce one response per student
	--smtp-host, --smtp-port, --smtp-user, --smtp-password, --from

# Environment Variables

Flags fall back to environment variables:

	PORT                    → -p
	DATABASE_URL            → -d
	DATABASE_TYPE           → -t
	BASE_URL                → --base-url
	WEB_DIR                 → --web
	FUNCTION_SECRET         → --function-secret
	ADMIN_KEY_SALT          → --admin-salt
	RESPONSE_TOKEN_SALT     → --token-salt
	ENFORCE_UNIQUE_RESPONSE → --enforce-unique
	SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASSWORD, FROM_EMAIL

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - FUNCTION_SECRET must be provided
  - ADMIN_KEY_SALT must be provided
  - RESPONSE_TOKEN_SALT must be provided

SMTP settings are optional. Without them the server still runs; email
delivery fails and is recorded in the email log.
*/
package cliparse
