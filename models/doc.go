// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - IngestResponseRequest: campaign_id, student_email
  - CreateCampaignRequest: campaign_type, title, incentive, creator_name, questions
  - RespondRequest: token, responses (map[string]string)
  - SubmitApologyRequest: student_email, assessment_name, reason_category
  - DecideApologyRequest: status, reason

# Response Types

Types for JSON responses:

  - MessageResponse: message
  - CreateCampaignResponse: campaign_id, admin_key
  - DispatchCampaignResponse: sent, failed, total
  - PickWinnersResponse: message, winners
  - SubmitApologyResponse: submission_id, status
  - PendingCountResponse: pending_count
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Student: campus registry record keyed by email
  - Campaign: campaign metadata and lifecycle state
  - CampaignQuestion: question with hidden correct answer
  - ApologySubmission: special-consideration request
  - Voucher: incentive voucher issued to a winner

# Constants

Campaign status values:

	CampaignStatusDraft     = "Draft"
	CampaignStatusSent      = "Sent"
	CampaignStatusCompleted = "Completed"

Campaign types:

	CampaignTypeQuiz   = "WEEKLY_QUIZ"
	CampaignTypeSurvey = "FEEDBACK_SURVEY"

Question types:

	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeText           = "text"

Apology submission status values:

	ApologyStatusPending  = "Pending"
	ApologyStatusApproved = "Approved"
	ApologyStatusRejected = "Rejected"
*/
package models
