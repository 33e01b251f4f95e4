// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the DUT Campus Engagement API server.

The server runs student engagement campaigns (weekly quizzes and anonymous
feedback surveys) for a lecture module: it records campaign responses relayed
by the email dispatch system, serves tokenized response links, picks incentive
winners, and tracks special-consideration ("apology") submissions.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 8080 -d "postgres://..."

A .env file in the working directory is loaded automatically.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL or SQLite connection string
  - FUNCTION_SECRET (--function-secret): Bearer secret for ingestion and staff calls
  - ADMIN_KEY_SALT (--admin-salt): Secret for campaign admin key HMAC
  - RESPONSE_TOKEN_SALT (--token-salt): Secret for emailed response links

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - BASE_URL (--base-url): Public base URL used in emailed links
  - WEB_DIR (--web): Static dashboard directory (default: ./web)
  - ENFORCE_UNIQUE_RESPONSE (--enforce-unique): One response per student per campaign
  - SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASSWORD, FROM_EMAIL: Outbound mail

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (responses, campaigns, apologies)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON/text helpers
  - models: Request/response types
  - auth: Admin keys, bearer secrets, response tokens
  - store: Persistence interface for the ingestion path
  - mailer: SMTP delivery and email composition
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
