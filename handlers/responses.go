// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Gubevu07/DUT-Face-Recognition-G12/auth"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/cliparse"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/middleware"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/models"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/store"
)

// ResponseHandler ingests campaign responses relayed by the external
// dispatch system.
type ResponseHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewResponseHandler(st store.Store, cfg cliparse.Config) *ResponseHandler {
	return &ResponseHandler{store: st, cfg: cfg}
}

// Ingest handles POST /campaign-response
//
// The dispatch system matches on these exact status codes and bodies, so
// they are part of the wire contract and must not drift.
func (h *ResponseHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	// Authenticate before touching the body
	if err := auth.ValidateBearerSecret(r.Header.Get("Authorization"), h.cfg.FunctionSecret); err != nil {
		middleware.TextResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.IngestResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.TextResponse(w, http.StatusBadRequest, "Missing campaign_id or student_email")
		return
	}
	if req.CampaignID == "" || req.StudentEmail == "" {
		middleware.TextResponse(w, http.StatusBadRequest, "Missing campaign_id or student_email")
		return
	}

	student, err := h.store.FindStudentByEmail(req.StudentEmail)
	if errors.Is(err, store.ErrNotFound) {
		middleware.TextResponse(w, http.StatusNotFound, "Student not found")
		return
	}
	if err != nil {
		slog.Error("failed to look up student", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.store.InsertResponse(req.CampaignID, student.ID); err != nil {
		if h.cfg.EnforceUniqueResponse && store.IsUniqueViolation(err) {
			middleware.TextResponse(w, http.StatusConflict, "Response already recorded")
			return
		}
		slog.Error("failed to insert campaign response", "error", err, "campaign_id", req.CampaignID)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	slog.Info("campaign response recorded", "campaign_id", req.CampaignID, "student_id", student.ID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Response recorded"})
}
