package models

import "time"

// Campaign status constants
const (
	CampaignStatusDraft     = "Draft"
	CampaignStatusSent      = "Sent"
	CampaignStatusCompleted = "Completed"
)

// Campaign type constants
const (
	CampaignTypeQuiz   = "WEEKLY_QUIZ"
	CampaignTypeSurvey = "FEEDBACK_SURVEY"
)

// Question type constants
const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeText           = "text"
)

// Apology submission status constants
const (
	ApologyStatusPending  = "Pending"
	ApologyStatusApproved = "Approved"
	ApologyStatusRejected = "Rejected"
)

// Email log status constants
const (
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// Request types

type IngestResponseRequest struct {
	CampaignID   string `json:"campaign_id"`
	StudentEmail string `json:"student_email"`
}

type QuestionInput struct {
	Text          string   `json:"text"`
	Type          string   `json:"type"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
}

type CreateCampaignRequest struct {
	CampaignType string          `json:"campaign_type"`
	Title        string          `json:"title,omitempty"`
	Incentive    string          `json:"incentive,omitempty"`
	CreatorName  string          `json:"creator_name"`
	TargetModule string          `json:"target_module,omitempty"`
	Questions    []QuestionInput `json:"questions"`
}

// question_id -> submitted answer
type RespondRequest struct {
	Token     string            `json:"token"`
	Responses map[string]string `json:"responses"`
}

type SubmitApologyRequest struct {
	StudentEmail   string `json:"student_email"`
	AssessmentName string `json:"assessment_name"`
	ReasonCategory string `json:"reason_category"`
	ReasonDetails  string `json:"reason_details"`
}

type DecideApologyRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type CreateCampaignResponse struct {
	CampaignID string `json:"campaign_id"`
	AdminKey   string `json:"admin_key"`
}

type DispatchCampaignResponse struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
}

type Winner struct {
	StudentID   string `json:"student_id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	VoucherType string `json:"voucher_type"`
}

type PickWinnersResponse struct {
	Message string   `json:"message"`
	Winners []Winner `json:"winners"`
}

type SubmitApologyResponse struct {
	SubmissionID string `json:"submission_id"`
	Status       string `json:"status"`
}

type DecideApologyResponse struct {
	SubmissionID string `json:"submission_id"`
	Status       string `json:"status"`
}

type PendingCountResponse struct {
	PendingCount int `json:"pending_count"`
}

// Domain types

type Student struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	ModuleCode string    `json:"module_code,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Campaign struct {
	ID           string     `json:"id"`
	CampaignType string     `json:"campaign_type"`
	Title        string     `json:"title"`
	Incentive    string     `json:"incentive"`
	IsAnonymous  bool       `json:"is_anonymous"`
	Status       string     `json:"status"`
	CreatorName  string     `json:"creator_name"`
	TargetModule *string    `json:"target_module,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	DispatchedAt *time.Time `json:"dispatched_at,omitempty"`
}

type CampaignQuestion struct {
	ID            string   `json:"id"`
	CampaignID    string   `json:"campaign_id"`
	QuestionText  string   `json:"question_text"`
	QuestionType  string   `json:"question_type"`
	CorrectAnswer *string  `json:"-"` // Never expose in JSON
	Options       []string `json:"options,omitempty"`
}

type CampaignWithQuestions struct {
	Campaign  Campaign           `json:"campaign"`
	Questions []CampaignQuestion `json:"questions"`
}

type CampaignSummary struct {
	ID               string    `json:"id"`
	CampaignType     string    `json:"campaign_type"`
	Title            string    `json:"title"`
	Incentive        string    `json:"incentive"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	ParticipantCount int       `json:"participant_count"`
}

type ListCampaignsResponse struct {
	Campaigns []CampaignSummary `json:"campaigns"`
}

type CampaignDetailResponse struct {
	Campaign         Campaign           `json:"campaign"`
	Questions        []CampaignQuestion `json:"questions"`
	ParticipantCount int                `json:"participant_count"`
	ResponseCount    int                `json:"response_count"`
	VoucherCount     int                `json:"voucher_count"`
}

type ApologySubmission struct {
	ID             string     `json:"id"`
	StudentID      string     `json:"student_id"`
	AssessmentName string     `json:"assessment_name"`
	ReasonCategory string     `json:"reason_category"`
	ReasonDetails  string     `json:"reason_details,omitempty"`
	Status         string     `json:"status"`
	DecisionReason *string    `json:"decision_reason,omitempty"`
	IPHash         *string    `json:"-"` // Never expose in JSON
	UserAgent      *string    `json:"-"` // Never expose in JSON
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type ApologyListItem struct {
	ID             string    `json:"id"`
	StudentName    string    `json:"student_name"`
	StudentEmail   string    `json:"student_email"`
	AssessmentName string    `json:"assessment_name"`
	ReasonCategory string    `json:"reason_category"`
	ReasonDetails  string    `json:"reason_details,omitempty"`
	Status         string    `json:"status"`
	DecisionReason *string   `json:"decision_reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ListApologiesResponse struct {
	Submissions []ApologyListItem `json:"submissions"`
}

type Voucher struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	StudentID   string    `json:"student_id"`
	VoucherType string    `json:"voucher_type"`
	ExpiresOn   time.Time `json:"expires_on"`
	IssuedAt    time.Time `json:"issued_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
