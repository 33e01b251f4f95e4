// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Gubevu07/DUT-Face-Recognition-G12/auth"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/cliparse"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/mailer"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/middleware"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/models"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/store"
)

// CampaignHandler handles campaign lifecycle operations
type CampaignHandler struct {
	db     *sql.DB
	mailer mailer.Sender
	cfg    cliparse.Config
}

func NewCampaignHandler(db *sql.DB, m mailer.Sender, cfg cliparse.Config) *CampaignHandler {
	return &CampaignHandler{db: db, mailer: m, cfg: cfg}
}

// CreateCampaign handles POST /campaigns
func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateBearerSecret(r.Header.Get("Authorization"), h.cfg.FunctionSecret); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid bearer secret")
		return
	}

	var req models.CreateCampaignRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.CampaignType != models.CampaignTypeQuiz && req.CampaignType != models.CampaignTypeSurvey {
		middleware.ErrorResponse(w, http.StatusBadRequest, "campaign_type must be WEEKLY_QUIZ or FEEDBACK_SURVEY")
		return
	}
	if req.CreatorName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "creator_name is required")
		return
	}
	if len(req.Questions) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "at least one question is required")
		return
	}
	for i, q := range req.Questions {
		if q.Text == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("question %d is missing text", i+1))
			return
		}
		switch q.Type {
		case models.QuestionTypeMultipleChoice:
			if len(q.Options) < 2 {
				middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("question %d needs at least 2 options", i+1))
				return
			}
		case models.QuestionTypeText:
			// free text, nothing more to check
		default:
			middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("question %d has unknown type %q", i+1, q.Type))
			return
		}
	}

	// Surveys are anonymous; quizzes are not
	isAnonymous := req.CampaignType == models.CampaignTypeSurvey

	// Title and incentive default by campaign type
	title := req.Title
	if title == "" {
		if req.CampaignType == models.CampaignTypeQuiz {
			title = fmt.Sprintf("Weekly Quiz (Week of %s)", time.Now().Format("02 Jan"))
		} else {
			title = "Lecturer Feedback Survey"
		}
	}
	incentive := req.Incentive
	if incentive == "" {
		if req.CampaignType == models.CampaignTypeQuiz {
			incentive = "Assignment Extension Voucher (x5 Winners)"
		} else {
			incentive = "1-Month Staff WiFi Pass (x1 Winner)"
		}
	}

	campaignID := uuid.NewString()
	adminKey := auth.GenerateAdminKey(campaignID, h.cfg.AdminKeySalt)

	var targetModule *string
	if req.TargetModule != "" {
		targetModule = &req.TargetModule
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO campaign (id, campaign_type, title, incentive, is_anonymous, status, creator_name, target_module, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, campaignID, req.CampaignType, title, incentive, isAnonymous, models.CampaignStatusDraft, req.CreatorName, targetModule, time.Now())

	if err != nil {
		slog.Error("failed to insert campaign", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create campaign")
		return
	}

	for _, q := range req.Questions {
		questionID, err := auth.GenerateID(12)
		if err != nil {
			slog.Error("failed to generate question ID", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create campaign")
			return
		}

		var correctAnswer *string
		if q.Type == models.QuestionTypeMultipleChoice && q.CorrectAnswer != "" {
			correctAnswer = &q.CorrectAnswer
		}

		_, err = tx.Exec(`
			INSERT INTO campaign_question (id, campaign_id, question_text, question_type, correct_answer)
			VALUES ($1, $2, $3, $4, $5)
		`, questionID, campaignID, q.Text, q.Type, correctAnswer)

		if err != nil {
			slog.Error("failed to insert question", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create campaign")
			return
		}

		if q.Type != models.QuestionTypeMultipleChoice {
			continue
		}
		for _, opt := range q.Options {
			optionID, err := auth.GenerateID(12)
			if err != nil {
				slog.Error("failed to generate option ID", "error", err)
				middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create campaign")
				return
			}
			_, err = tx.Exec(`
				INSERT INTO question_option (id, question_id, option_text)
				VALUES ($1, $2, $3)
			`, optionID, questionID, opt)
			if err != nil {
				slog.Error("failed to insert option", "error", err)
				middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create campaign")
				return
			}
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit campaign", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create campaign")
		return
	}

	slog.Info("campaign created",
		"campaign_id", campaignID,
		"campaign_type", req.CampaignType,
		"creator", req.CreatorName,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateCampaignResponse{
		CampaignID: campaignID,
		AdminKey:   adminKey,
	})
}

// ListCampaigns handles GET /campaigns
func (h *CampaignHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateBearerSecret(r.Header.Get("Authorization"), h.cfg.FunctionSecret); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid bearer secret")
		return
	}

	rows, err := h.db.Query(`
		SELECT c.id, c.campaign_type, c.title, c.incentive, c.status, c.created_at,
		       (SELECT COUNT(*) FROM campaign_participant p WHERE p.campaign_id = c.id) as participant_count
		FROM campaign c
		ORDER BY c.created_at DESC
	`)
	if err != nil {
		slog.Error("failed to query campaigns", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	campaigns := []models.CampaignSummary{}
	for rows.Next() {
		var c models.CampaignSummary
		if err := rows.Scan(&c.ID, &c.CampaignType, &c.Title, &c.Incentive, &c.Status, &c.CreatedAt, &c.ParticipantCount); err != nil {
			slog.Error("failed to scan campaign", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read campaigns", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListCampaignsResponse{Campaigns: campaigns})
}

// GetCampaign handles GET /campaigns/{id} (requires admin key)
func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID := r.PathValue("id")
	if campaignID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "campaign_id is required")
		return
	}

	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(campaignID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	c, err := h.loadCampaign(campaignID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Campaign not found")
		return
	}
	if err != nil {
		slog.Error("failed to query campaign", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	questions, err := loadQuestions(h.db, campaignID)
	if err != nil {
		slog.Error("failed to load questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	detail := models.CampaignDetailResponse{Campaign: c, Questions: questions}
	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM campaign_participant WHERE campaign_id = $1`, &detail.ParticipantCount},
		{`SELECT COUNT(*) FROM campaign_response WHERE campaign_id = $1`, &detail.ResponseCount},
		{`SELECT COUNT(*) FROM voucher WHERE campaign_id = $1`, &detail.VoucherCount},
	}
	for _, c := range counts {
		if err := h.db.QueryRow(c.query, campaignID).Scan(c.dest); err != nil {
			slog.Error("failed to count campaign rows", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	middleware.JSONResponse(w, http.StatusOK, detail)
}

// Dispatch handles POST /campaigns/{id}/dispatch (requires admin key)
// Emails every targeted student a unique signed response link and moves the
// campaign to Sent.
func (h *CampaignHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	campaignID := r.PathValue("id")
	if campaignID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "campaign_id is required")
		return
	}

	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(campaignID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	c, err := h.loadCampaign(campaignID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Campaign not found")
		return
	}
	if err != nil {
		slog.Error("failed to query campaign", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Target either one module's students or everyone
	var rows *sql.Rows
	if c.TargetModule != nil {
		rows, err = h.db.Query(`
			SELECT id, full_name, email FROM student
			WHERE module_code = $1
			ORDER BY email
		`, *c.TargetModule)
	} else {
		rows, err = h.db.Query(`SELECT id, full_name, email FROM student ORDER BY email`)
	}
	if err != nil {
		slog.Error("failed to query students", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	type recipient struct {
		id, name, email string
	}
	recipients := []recipient{}
	for rows.Next() {
		var rec recipient
		if err := rows.Scan(&rec.id, &rec.name, &rec.email); err != nil {
			slog.Error("failed to scan student", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		recipients = append(recipients, rec)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read students", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if len(recipients) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No students found to dispatch to")
		return
	}

	expiresAt := time.Now().Add(auth.ResponseTokenTTL)
	sent, failed := 0, 0
	for _, rec := range recipients {
		token := auth.MintResponseToken(c.ID, rec.id, expiresAt, h.cfg.ResponseTokenSalt)
		link := fmt.Sprintf("%s/campaign/respond?token=%s", h.cfg.BaseURL, url.QueryEscape(token))
		subject, body := mailer.InviteEmail(rec.name, c, link, expiresAt)
		if err := h.mailer.Send(rec.email, subject, body); err != nil {
			slog.Warn("failed to send campaign invite", "error", err, "recipient", rec.email)
			failed++
			continue
		}
		sent++
	}

	_, err = h.db.Exec(`
		UPDATE campaign SET status = $1, dispatched_at = $2 WHERE id = $3
	`, models.CampaignStatusSent, time.Now(), campaignID)
	if err != nil {
		slog.Error("failed to update campaign status", "error", err, "campaign_id", campaignID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update campaign")
		return
	}

	slog.Info("campaign dispatched",
		"campaign_id", campaignID,
		"sent", sent,
		"failed", failed,
	)

	middleware.JSONResponse(w, http.StatusOK, models.DispatchCampaignResponse{
		Sent:   sent,
		Failed: failed,
		Total:  len(recipients),
	})
}

// RespondContext handles GET /campaigns/respond
// Resolves an emailed token into the campaign and questions the respond page
// renders. Correct answers never leave the server.
func (h *CampaignHandler) RespondContext(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid link. Token is missing.")
		return
	}

	campaignID, studentID, err := auth.ParseResponseToken(token, h.cfg.ResponseTokenSalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "This link may be invalid or expired.")
		return
	}

	var alreadyResponded bool
	err = h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM campaign_participant WHERE campaign_id = $1 AND student_id = $2)
	`, campaignID, studentID).Scan(&alreadyResponded)
	if err != nil {
		slog.Error("failed to check participation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if alreadyResponded {
		middleware.ErrorResponse(w, http.StatusConflict, "You have already responded to this campaign. Thank you!")
		return
	}

	c, err := h.loadCampaign(campaignID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Campaign not found.")
		return
	}
	if err != nil {
		slog.Error("failed to query campaign", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	questions, err := loadQuestions(h.db, campaignID)
	if err != nil {
		slog.Error("failed to load questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CampaignWithQuestions{
		Campaign:  c,
		Questions: questions,
	})
}

// Respond handles POST /campaigns/respond
// Records a tokenized submission; quizzes are scored against the stored
// correct answers.
func (h *CampaignHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req models.RespondRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid submission.")
		return
	}
	if req.Token == "" || len(req.Responses) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid submission.")
		return
	}

	campaignID, studentID, err := auth.ParseResponseToken(req.Token, h.cfg.ResponseTokenSalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "This link may be invalid or expired.")
		return
	}

	var campaignType string
	err = h.db.QueryRow(`SELECT campaign_type FROM campaign WHERE id = $1`, campaignID).Scan(&campaignType)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Campaign not found.")
		return
	}
	if err != nil {
		slog.Error("failed to query campaign", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var alreadyResponded bool
	err = h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM campaign_participant WHERE campaign_id = $1 AND student_id = $2)
	`, campaignID, studentID).Scan(&alreadyResponded)
	if err != nil {
		slog.Error("failed to check participation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if alreadyResponded {
		middleware.ErrorResponse(w, http.StatusConflict, "You have already submitted a response.")
		return
	}

	var score *int
	if campaignType == models.CampaignTypeQuiz {
		s, err := h.scoreResponses(campaignID, req.Responses)
		if err != nil {
			slog.Error("failed to score responses", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		score = &s
	}

	// Marshal of a string map cannot fail
	responseData, _ := json.Marshal(req.Responses)

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// The participant primary key closes the race between the EXISTS check
	// above and this insert
	_, err = tx.Exec(`
		INSERT INTO campaign_participant (campaign_id, student_id, responded_at)
		VALUES ($1, $2, $3)
	`, campaignID, studentID, time.Now())
	if err != nil {
		if store.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "You have already submitted a response.")
			return
		}
		slog.Error("failed to insert participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record response")
		return
	}

	_, err = tx.Exec(`
		INSERT INTO campaign_response (id, campaign_id, student_id, response_data, score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.NewString(), campaignID, studentID, string(responseData), score, time.Now())
	if err != nil {
		if store.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "You have already submitted a response.")
			return
		}
		slog.Error("failed to insert response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record response")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record response")
		return
	}

	slog.Info("campaign response submitted", "campaign_id", campaignID, "student_id", studentID)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Your response has been recorded successfully. You are now eligible for the incentive!",
	})
}

// Winner count comes from the incentive text, e.g. "(x5 Winners)"
var winnerCountPattern = regexp.MustCompile(`x(\d+)`)

// PickWinners handles POST /campaigns/{id}/pick-winners (requires admin key)
// Randomly selects winners from distinct responders, issues vouchers, emails
// the winners, and moves the campaign to Completed.
func (h *CampaignHandler) PickWinners(w http.ResponseWriter, r *http.Request) {
	campaignID := r.PathValue("id")
	if campaignID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "campaign_id is required")
		return
	}

	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(campaignID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	c, err := h.loadCampaign(campaignID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Campaign not found")
		return
	}
	if err != nil {
		slog.Error("failed to query campaign", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Distinct responders form the candidate pool, whichever path the
	// response arrived through
	rows, err := h.db.Query(`
		SELECT DISTINCT cr.student_id, s.full_name, s.email
		FROM campaign_response cr
		JOIN student s ON cr.student_id = s.id
		WHERE cr.campaign_id = $1
	`, campaignID)
	if err != nil {
		slog.Error("failed to query responders", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	candidates := []models.Winner{}
	for rows.Next() {
		var cand models.Winner
		if err := rows.Scan(&cand.StudentID, &cand.FullName, &cand.Email); err != nil {
			slog.Error("failed to scan responder", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		candidates = append(candidates, cand)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read responders", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if len(candidates) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No students have participated yet")
		return
	}

	numWinners := 1
	if m := winnerCountPattern.FindStringSubmatch(c.Incentive); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			numWinners = n
		}
	}
	if len(candidates) < numWinners {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Not enough participants to pick %d winners", numWinners))
		return
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	picked := candidates[:numWinners]

	expiresOn := time.Now().Add(30 * 24 * time.Hour)
	winners := make([]models.Winner, 0, numWinners)
	for _, cand := range picked {
		subject, body, voucherType := mailer.WinnerEmail(cand.FullName, c)

		voucherID, err := auth.GenerateID(16)
		if err != nil {
			slog.Error("failed to generate voucher ID", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to issue vouchers")
			return
		}
		_, err = h.db.Exec(`
			INSERT INTO voucher (id, campaign_id, student_id, voucher_type, expires_on, issued_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, voucherID, campaignID, cand.StudentID, voucherType, expiresOn, time.Now())
		if err != nil {
			slog.Error("failed to insert voucher", "error", err, "student_id", cand.StudentID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to issue vouchers")
			return
		}

		// A bounced congratulation never blocks the draw
		if err := h.mailer.Send(cand.Email, subject, body); err != nil {
			slog.Warn("failed to send winner email", "error", err, "recipient", cand.Email)
		}

		cand.VoucherType = voucherType
		winners = append(winners, cand)
	}

	_, err = h.db.Exec(`UPDATE campaign SET status = $1 WHERE id = $2`, models.CampaignStatusCompleted, campaignID)
	if err != nil {
		slog.Error("failed to update campaign status", "error", err, "campaign_id", campaignID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update campaign")
		return
	}

	slog.Info("winners picked", "campaign_id", campaignID, "count", numWinners)

	middleware.JSONResponse(w, http.StatusOK, models.PickWinnersResponse{
		Message: "Winners selected and notified successfully!",
		Winners: winners,
	})
}

// loadCampaign reads one campaign row. Returns sql.ErrNoRows unchanged so
// callers can map it to a 404.
func (h *CampaignHandler) loadCampaign(campaignID string) (models.Campaign, error) {
	var c models.Campaign
	err := h.db.QueryRow(`
		SELECT id, campaign_type, title, incentive, is_anonymous, status, creator_name, target_module, created_at, dispatched_at
		FROM campaign
		WHERE id = $1
	`, campaignID).Scan(&c.ID, &c.CampaignType, &c.Title, &c.Incentive, &c.IsAnonymous, &c.Status,
		&c.CreatorName, &c.TargetModule, &c.CreatedAt, &c.DispatchedAt)
	return c, err
}

// loadQuestions returns a campaign's questions with their options, ordered
// by id for stable rendering.
func loadQuestions(db *sql.DB, campaignID string) ([]models.CampaignQuestion, error) {
	rows, err := db.Query(`
		SELECT id, campaign_id, question_text, question_type, correct_answer
		FROM campaign_question
		WHERE campaign_id = $1
		ORDER BY id
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []models.CampaignQuestion{}
	for rows.Next() {
		var q models.CampaignQuestion
		if err := rows.Scan(&q.ID, &q.CampaignID, &q.QuestionText, &q.QuestionType, &q.CorrectAnswer); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range questions {
		if questions[i].QuestionType != models.QuestionTypeMultipleChoice {
			continue
		}
		options, err := loadQuestionOptions(db, questions[i].ID)
		if err != nil {
			return nil, err
		}
		questions[i].Options = options
	}

	return questions, nil
}

func loadQuestionOptions(db *sql.DB, questionID string) ([]string, error) {
	rows, err := db.Query(`
		SELECT option_text FROM question_option WHERE question_id = $1 ORDER BY id
	`, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []string
	for rows.Next() {
		var opt string
		if err := rows.Scan(&opt); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

// scoreResponses counts answers matching the campaign's stored correct
// answers. Unanswered and unscored questions contribute nothing.
func (h *CampaignHandler) scoreResponses(campaignID string, responses map[string]string) (int, error) {
	rows, err := h.db.Query(`
		SELECT id, correct_answer
		FROM campaign_question
		WHERE campaign_id = $1 AND correct_answer IS NOT NULL
	`, campaignID)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	correct := make(map[string]string)
	for rows.Next() {
		var id, answer string
		if err := rows.Scan(&id, &answer); err != nil {
			return 0, err
		}
		correct[id] = answer
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	score := 0
	for questionID, answer := range responses {
		if want, ok := correct[questionID]; ok && want == answer {
			score++
		}
	}
	return score, nil
}
