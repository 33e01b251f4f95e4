// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The SQL sticks to the dialect shared by PostgreSQL and SQLite so either
// backend can run it unchanged.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// EnsureUniqueResponseIndex adds the storage-level one-response-per-student
// constraint on campaign responses. Only applied when EnforceUniqueResponse
// is configured; the base schema allows duplicates.
func EnsureUniqueResponseIndex(db *sql.DB) error {
	_, err := db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_campaign_response_unique
ON campaign_response(campaign_id, student_id)
`)
	if err != nil {
		return fmt.Errorf("failed to create unique response index: %w", err)
	}

	return nil
}

const schema = `
-- Students (kept in sync by the campus registry; this service only reads)
CREATE TABLE IF NOT EXISTS student (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    full_name TEXT NOT NULL DEFAULT '',
    module_code TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_student_email ON student(email);
CREATE INDEX IF NOT EXISTS idx_student_module_code ON student(module_code);

-- Campaigns
CREATE TABLE IF NOT EXISTS campaign (
    id TEXT PRIMARY KEY,
    campaign_type TEXT NOT NULL CHECK (campaign_type IN ('WEEKLY_QUIZ', 'FEEDBACK_SURVEY')),
    title TEXT NOT NULL,
    incentive TEXT NOT NULL,
    is_anonymous BOOLEAN NOT NULL DEFAULT FALSE,
    status TEXT NOT NULL DEFAULT 'Draft' CHECK (status IN ('Draft', 'Sent', 'Completed')),
    creator_name TEXT NOT NULL,
    target_module TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    dispatched_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_campaign_status ON campaign(status);

-- Campaign questions
CREATE TABLE IF NOT EXISTS campaign_question (
    id TEXT PRIMARY KEY,
    campaign_id TEXT NOT NULL REFERENCES campaign(id) ON DELETE CASCADE,
    question_text TEXT NOT NULL,
    question_type TEXT NOT NULL CHECK (question_type IN ('multiple_choice', 'text')),
    correct_answer TEXT
);

CREATE INDEX IF NOT EXISTS idx_campaign_question_campaign_id ON campaign_question(campaign_id);

-- Options for multiple-choice questions
CREATE TABLE IF NOT EXISTS question_option (
    id TEXT PRIMARY KEY,
    question_id TEXT NOT NULL REFERENCES campaign_question(id) ON DELETE CASCADE,
    option_text TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_question_option_question_id ON question_option(question_id);

-- One row per student who answered through a response link; the primary key
-- is what blocks double submission
CREATE TABLE IF NOT EXISTS campaign_participant (
    campaign_id TEXT NOT NULL REFERENCES campaign(id) ON DELETE CASCADE,
    student_id TEXT NOT NULL REFERENCES student(id) ON DELETE CASCADE,
    responded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (campaign_id, student_id)
);

-- Campaign responses. No UNIQUE on (campaign_id, student_id) here: duplicate
-- rows are allowed unless EnsureUniqueResponseIndex has been applied
CREATE TABLE IF NOT EXISTS campaign_response (
    id TEXT PRIMARY KEY,
    campaign_id TEXT NOT NULL REFERENCES campaign(id) ON DELETE CASCADE,
    student_id TEXT NOT NULL REFERENCES student(id) ON DELETE CASCADE,
    response_data TEXT,
    score INTEGER,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_campaign_response_campaign_id ON campaign_response(campaign_id);
CREATE INDEX IF NOT EXISTS idx_campaign_response_student_id ON campaign_response(student_id);

-- Special-consideration submissions
CREATE TABLE IF NOT EXISTS apology_submission (
    id TEXT PRIMARY KEY,
    student_id TEXT NOT NULL REFERENCES student(id) ON DELETE CASCADE,
    assessment_name TEXT NOT NULL,
    reason_category TEXT NOT NULL,
    reason_details TEXT,
    status TEXT NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending', 'Approved', 'Rejected')),
    decision_reason TEXT,
    ip_hash TEXT,
    user_agent TEXT,
    decided_at TIMESTAMP,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_apology_submission_status ON apology_submission(status);

-- Incentive vouchers issued to campaign winners
CREATE TABLE IF NOT EXISTS voucher (
    id TEXT PRIMARY KEY,
    campaign_id TEXT NOT NULL REFERENCES campaign(id) ON DELETE CASCADE,
    student_id TEXT NOT NULL REFERENCES student(id) ON DELETE CASCADE,
    voucher_type TEXT NOT NULL,
    expires_on TIMESTAMP NOT NULL,
    issued_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_voucher_campaign_id ON voucher(campaign_id);

-- Outbound email audit trail
CREATE TABLE IF NOT EXISTS email_log (
    id TEXT PRIMARY KEY,
    recipient TEXT NOT NULL,
    subject TEXT NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('sent', 'failed')),
    error TEXT,
    sent_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_email_log_recipient ON email_log(recipient);
`
