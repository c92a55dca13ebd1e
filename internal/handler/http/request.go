// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-ride-docs/internal/service"
	"github.com/MKhiriev/go-ride-docs/internal/utils"
	"github.com/go-chi/chi/v5"
)

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// decodeAndValidate decodes dst and runs the request validator over it.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := decodeJSON(w, r, dst); err != nil {
		return err
	}
	return h.validator.Validate(r.Context(), dst)
}

// callerID returns the user authenticated by the auth middleware.
func callerID(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", service.ErrTokenIsExpiredOrInvalid
	}
	return userID, nil
}

// ownUserID returns the {userId} URL parameter when it names the caller.
func ownUserID(r *http.Request) (string, error) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		return "", fmt.Errorf("%w: userId", ErrMissingPathParam)
	}
	return userID, checkCaller(r, userID)
}

// checkCaller fails with a forbidden error unless userID is the caller.
func checkCaller(r *http.Request, userID string) error {
	caller, err := callerID(r)
	if err != nil {
		return err
	}
	if caller != userID {
		return fmt.Errorf("%w: caller %s, requested %s", service.ErrUnauthorizedAccessToDifferentUserData, caller, userID)
	}
	return nil
}
