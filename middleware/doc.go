// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(duration_ms).

# Bearer Auth

Protect write endpoints with the configured API token:

	mux.HandleFunc("POST /date", middleware.WithAuth(cfg.APIToken, handler))

The token travels in the Authentication header as "Bearer <token>".
A malformed header yields 401, a wrong token 403.

# Metrics

Count and time requests per route pattern for Prometheus:

	mux.HandleFunc("GET /period/{period}", middleware.WithMetrics("/period/{period}", handler))

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.DayRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
