// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Gubevu07/DUT-Face-Recognition-G12/auth"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/cliparse"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/mailer"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/middleware"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/models"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/store"
)

// ApologyHandler handles special-consideration submissions and decisions
type ApologyHandler struct {
	db     *sql.DB
	store  store.Store
	mailer mailer.Sender
	cfg    cliparse.Config
}

func NewApologyHandler(db *sql.DB, st store.Store, m mailer.Sender, cfg cliparse.Config) *ApologyHandler {
	return &ApologyHandler{db: db, store: st, mailer: m, cfg: cfg}
}

// Submit handles POST /apologies (public, students submit from the portal)
func (h *ApologyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitApologyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.StudentEmail == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "student_email is required")
		return
	}
	if req.AssessmentName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "assessment_name is required")
		return
	}
	if req.ReasonCategory == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "reason_category is required")
		return
	}

	student, err := h.store.FindStudentByEmail(req.StudentEmail)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Student not found")
		return
	}
	if err != nil {
		slog.Error("failed to look up student", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	submissionID := uuid.NewString()
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt)
	userAgent := r.UserAgent()

	_, err = h.db.Exec(`
		INSERT INTO apology_submission (id, student_id, assessment_name, reason_category, reason_details, status, ip_hash, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, submissionID, student.ID, req.AssessmentName, req.ReasonCategory, req.ReasonDetails,
		models.ApologyStatusPending, ipHash, userAgent, time.Now())

	if err != nil {
		slog.Error("failed to insert submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record submission")
		return
	}

	slog.Info("apology submitted", "submission_id", submissionID, "student_id", student.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitApologyResponse{
		SubmissionID: submissionID,
		Status:       models.ApologyStatusPending,
	})
}

// List handles GET /apologies (staff only)
func (h *ApologyHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateBearerSecret(r.Header.Get("Authorization"), h.cfg.FunctionSecret); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid bearer secret")
		return
	}

	rows, err := h.db.Query(`
		SELECT a.id, s.full_name, s.email, a.assessment_name, a.reason_category, a.reason_details,
		       a.status, a.decision_reason, a.created_at
		FROM apology_submission a
		JOIN student s ON a.student_id = s.id
		ORDER BY a.created_at DESC
	`)
	if err != nil {
		slog.Error("failed to query submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	submissions := []models.ApologyListItem{}
	for rows.Next() {
		var item models.ApologyListItem
		var details sql.NullString
		if err := rows.Scan(&item.ID, &item.StudentName, &item.StudentEmail, &item.AssessmentName,
			&item.ReasonCategory, &details, &item.Status, &item.DecisionReason, &item.CreatedAt); err != nil {
			slog.Error("failed to scan submission", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		item.ReasonDetails = details.String
		submissions = append(submissions, item)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListApologiesResponse{Submissions: submissions})
}

// PendingCount handles GET /apologies/pending-count
// Public; the dashboard badge polls this on page load.
func (h *ApologyHandler) PendingCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.store.CountPendingApologies()
	if err != nil {
		slog.Error("failed to count pending submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PendingCountResponse{PendingCount: count})
}

// Decide handles POST /apologies/{id}/decide (staff only)
// A submission is decided exactly once; the student is emailed the outcome.
func (h *ApologyHandler) Decide(w http.ResponseWriter, r *http.Request) {
	submissionID := r.PathValue("id")
	if submissionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "submission_id is required")
		return
	}

	if err := auth.ValidateBearerSecret(r.Header.Get("Authorization"), h.cfg.FunctionSecret); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid bearer secret")
		return
	}

	var req models.DecideApologyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Status != models.ApologyStatusApproved && req.Status != models.ApologyStatusRejected {
		middleware.ErrorResponse(w, http.StatusBadRequest, "status must be Approved or Rejected")
		return
	}
	if req.Reason == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "reason is required")
		return
	}

	var currentStatus, assessmentName, studentName, studentEmail string
	err := h.db.QueryRow(`
		SELECT a.status, a.assessment_name, s.full_name, s.email
		FROM apology_submission a
		JOIN student s ON a.student_id = s.id
		WHERE a.id = $1
	`, submissionID).Scan(&currentStatus, &assessmentName, &studentName, &studentEmail)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Submission not found")
		return
	}
	if err != nil {
		slog.Error("failed to query submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if currentStatus != models.ApologyStatusPending {
		middleware.ErrorResponse(w, http.StatusConflict, "Submission already decided")
		return
	}

	_, err = h.db.Exec(`
		UPDATE apology_submission SET status = $1, decision_reason = $2, decided_at = $3 WHERE id = $4
	`, req.Status, req.Reason, time.Now(), submissionID)
	if err != nil {
		slog.Error("failed to update submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update submission")
		return
	}

	// A failed notification never rolls back the decision
	subject, body := mailer.DecisionEmail(studentName, assessmentName, req.Status, req.Reason)
	if err := h.mailer.Send(studentEmail, subject, body); err != nil {
		slog.Warn("failed to send decision email", "error", err, "submission_id", submissionID)
	}

	slog.Info("apology decided", "submission_id", submissionID, "status", req.Status)

	middleware.JSONResponse(w, http.StatusOK, models.DecideApologyResponse{
		SubmissionID: submissionID,
		Status:       req.Status,
	})
}
