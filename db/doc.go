// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL stays within the dialect both PostgreSQL and SQLite accept.

# Tables

The schema includes:

  - student: Campus registry records (read-only for this service)
  - campaign: Campaign metadata and lifecycle state
  - campaign_question: Questions with optional correct answers
  - question_option: Choices for multiple-choice questions
  - campaign_participant: One respond-flow submission per student per campaign
  - campaign_response: Recorded responses (duplicates allowed by default)
  - apology_submission: Special-consideration requests
  - voucher: Incentive vouchers issued to winners
  - email_log: Outbound email audit trail

# Relationships

	campaign 1──* campaign_question
	campaign_question 1──* question_option
	campaign 1──* campaign_participant
	campaign 1──* campaign_response
	campaign 1──* voucher
	student 1──* campaign_response
	student 1──* apology_submission

All foreign keys use ON DELETE CASCADE.

# Uniqueness

campaign_response deliberately carries no UNIQUE(campaign_id, student_id):
the ingestion path accepts duplicates by default. EnsureUniqueResponseIndex
adds that constraint when EnforceUniqueResponse is configured.
*/
package db
