// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"path/filepath"

	"github.com/Gubevu07/DUT-Face-Recognition-G12/cliparse"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/handlers"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/mailer"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/middleware"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/store"
)

// NewRouter creates the main application router. CORS wraps the whole mux
// so every response, preflights included, carries the expected headers.
func NewRouter(db *sql.DB, m mailer.Sender, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	st := store.NewSQLStore(db)

	// Initialize handlers
	responseHandler := handlers.NewResponseHandler(st, cfg)
	campaignHandler := handlers.NewCampaignHandler(db, m, cfg)
	apologyHandler := handlers.NewApologyHandler(db, st, m, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Response ingestion (called by the dispatch system)
	mux.HandleFunc("POST /campaign-response", middleware.WithLogging(responseHandler.Ingest))

	// Campaign management (staff)
	mux.HandleFunc("POST /campaigns", middleware.WithLogging(campaignHandler.CreateCampaign))
	mux.HandleFunc("GET /campaigns", middleware.WithLogging(campaignHandler.ListCampaigns))
	mux.HandleFunc("GET /campaigns/{id}", middleware.WithLogging(campaignHandler.GetCampaign))
	mux.HandleFunc("POST /campaigns/{id}/dispatch", middleware.WithLogging(campaignHandler.Dispatch))
	mux.HandleFunc("POST /campaigns/{id}/pick-winners", middleware.WithLogging(campaignHandler.PickWinners))

	// Tokenized respond flow (public, reached from invite emails)
	mux.HandleFunc("GET /campaigns/respond", middleware.WithLogging(campaignHandler.RespondContext))
	mux.HandleFunc("POST /campaigns/respond", middleware.WithLogging(campaignHandler.Respond))

	// Special-consideration submissions
	mux.HandleFunc("POST /apologies", middleware.WithLogging(apologyHandler.Submit))
	mux.HandleFunc("GET /apologies", middleware.WithLogging(apologyHandler.List))
	mux.HandleFunc("GET /apologies/pending-count", middleware.WithLogging(apologyHandler.PendingCount))
	mux.HandleFunc("POST /apologies/{id}/decide", middleware.WithLogging(apologyHandler.Decide))

	// Static dashboard; emailed links land on the respond page
	mux.HandleFunc("GET /campaign/respond", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.WebDir, "respond.html"))
	})
	mux.Handle("GET /", http.FileServer(http.Dir(cfg.WebDir)))

	return middleware.CORS(mux)
}
