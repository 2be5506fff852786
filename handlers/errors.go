// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/avurudu-games/middleware"
	"github.com/danielhkuo/avurudu-games/store"
)

// statusFor maps a store error kind to an HTTP status.
func statusFor(kind store.Kind) int {
	switch kind {
	case store.KindInvalidInput:
		return http.StatusBadRequest
	case store.KindNotFound:
		return http.StatusNotFound
	case store.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeStoreError writes err as a JSON error. Caller mistakes carry the store
// message; backing store failures get fallback so driver detail never leaks.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusFor(store.KindOf(err))

	var storeErr *store.Error
	if status == http.StatusInternalServerError || !errors.As(err, &storeErr) {
		middleware.ErrorResponse(w, http.StatusInternalServerError, fallback)
		return
	}

	slog.Warn("request rejected",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"reason", storeErr.Message,
	)
	middleware.ErrorResponse(w, status, storeErr.Message)
}
