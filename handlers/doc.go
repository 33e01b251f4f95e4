// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the campus engagement API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - ResponseHandler: Ingestion of relayed campaign responses
  - CampaignHandler: Campaign lifecycle (create, dispatch, respond, pick winners)
  - ApologyHandler: Special-consideration submissions and decisions

	responseHandler := handlers.NewResponseHandler(st, cfg)
	campaignHandler := handlers.NewCampaignHandler(db, m, cfg)

# Response Ingestion

The external dispatch system forwards raw responses here:

	POST /campaign-response → Ingest

The endpoint is bearer-authenticated with FUNCTION_SECRET and answers with
fixed plain-text bodies on rejection (the dispatch system matches on them):

	401 "Unauthorized"
	400 "Missing campaign_id or student_email"
	404 "Student not found"

On success it records exactly one response row and replies
{"message": "Response recorded"}.

# Campaign Lifecycle

Campaigns progress through three states: Draft → Sent → Completed

	POST /campaigns                    → CreateCampaign (returns admin_key)
	POST /campaigns/{id}/dispatch      → Dispatch (emails tokenized links)
	POST /campaigns/{id}/pick-winners  → PickWinners (issues vouchers)

Campaign operations require the X-Admin-Key header; creating and listing
require the FUNCTION_SECRET bearer.

# Respond Flow

Students reach the API through emailed links carrying a signed token:

	GET  /campaigns/respond?token= → RespondContext (campaign + questions)
	POST /campaigns/respond        → Respond (records answers, scores quizzes)

Each student can submit once per campaign; the participant primary key
enforces this under concurrent submission.

# Apology Workflow

Submissions are decided exactly once (Pending → Approved or Rejected):

	POST /apologies             → Submit (public)
	GET  /apologies             → List (staff)
	GET  /apologies/pending-count → PendingCount (public, dashboard badge)
	POST /apologies/{id}/decide → Decide (staff, emails the outcome)
*/
package handlers
