// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/games", middleware.WithLogging(handler))

Logs method, path, response status, client IP and duration_ms once the
handler returns.

# Admin Gate

Admin routes require HTTP basic auth:

	admin := middleware.RequireAdmin(auth.NewAdmin(cfg.AdminUser, cfg.AdminPassword))
	mux.HandleFunc("GET /api/admin/participants", middleware.WithLogging(admin(h.ListParticipants)))

Missing or wrong credentials get a 401 with a WWW-Authenticate header so
browsers prompt for a login.

# CORS Middleware

Cross-origin requests are handled by github.com/rs/cors:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigins)(mux),
	}

Only the configured origins are allowed. Credentials are allowed so the admin
panel can send its Authorization header.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.RegistrationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
