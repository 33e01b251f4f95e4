// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the campus engagement API.

# Route Registration

NewRouter returns the CORS-wrapped handler with all endpoints:

	handler := router.NewRouter(db, m, cfg)

# Endpoints

Health:

	GET /health

Response ingestion (dispatch system, requires bearer secret):

	POST /campaign-response - Record a relayed response

Campaign management (staff):

	POST /campaigns                   - Create campaign (bearer secret)
	GET  /campaigns                   - List campaigns (bearer secret)
	GET  /campaigns/{id}              - Campaign detail (X-Admin-Key)
	POST /campaigns/{id}/dispatch     - Email response links (X-Admin-Key)
	POST /campaigns/{id}/pick-winners - Draw winners (X-Admin-Key)

Respond flow (public, token from invite email):

	GET  /campaigns/respond - Campaign and questions for a token
	POST /campaigns/respond - Submit answers

Special consideration:

	POST /apologies               - Submit (public)
	GET  /apologies               - List (bearer secret)
	GET  /apologies/pending-count - Dashboard badge count (public)
	POST /apologies/{id}/decide   - Approve or reject (bearer secret)

Static dashboard:

	GET /campaign/respond - Respond page for emailed links
	GET /                 - Dashboard files from WebDir

# Handler Initialization

The router creates handler instances with dependency injection:

	responseHandler := handlers.NewResponseHandler(st, cfg)
	campaignHandler := handlers.NewCampaignHandler(db, m, cfg)
	apologyHandler := handlers.NewApologyHandler(db, st, m, cfg)

The ingestion path depends on the store interface; campaign and apology
handlers additionally receive the mail sender.
*/
package router
