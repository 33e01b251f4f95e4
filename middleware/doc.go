// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# CORS Middleware

CORS wraps the whole mux so every response carries the headers the browser
dashboard and the dispatch system expect:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Every response gets:

	Access-Control-Allow-Origin: *
	Access-Control-Allow-Headers: authorization, x-client-info, apikey, content-type

OPTIONS preflights short-circuit with status 200 and body "ok" before any
routing or authentication runs.

# JSON and Text Helpers

Write responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.TextResponse(w, http.StatusNotFound, "Student not found")
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.IngestResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		// reject
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for IP hashing on apology submissions.
*/
package middleware
