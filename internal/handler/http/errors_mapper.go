// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ride-docs/internal/app"
	"github.com/MKhiriev/go-ride-docs/internal/documents"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/service"
	"github.com/MKhiriev/go-ride-docs/internal/store"
	"github.com/MKhiriev/go-ride-docs/internal/utils"
	"github.com/MKhiriev/go-ride-docs/internal/validators"
	"github.com/MKhiriev/go-ride-docs/models"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is matched in order: errors wrapping several sentinels
// resolve to the first entry, so specific errors come before generic ones.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{documents.ErrTooManyIdentityImages, errorResponse{http.StatusBadRequest, app.MsgTooManyIdentityImages}},
	{models.ErrNotAnImage, errorResponse{http.StatusBadRequest, app.MsgNotAnImage}},
	{service.ErrInvalidBlobURL, errorResponse{http.StatusBadRequest, app.MsgInvalidBlobURL}},
	{store.ErrInvalidBlobKey, errorResponse{http.StatusBadRequest, app.MsgInvalidBlobURL}},
	{service.ErrInvalidVerificationCode, errorResponse{http.StatusBadRequest, app.MsgInvalidVerificationCode}},
	{service.ErrVerificationCodeExpired, errorResponse{http.StatusBadRequest, app.MsgVerificationCodeExpired}},
	{ErrMissingPathParam, errorResponse{http.StatusBadRequest, app.MsgNoUserIDProvided}},
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{validators.ErrInvalidRequest, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{validators.ErrUnsupportedType, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{models.ErrInvalidDataURL, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{models.ErrEmptyImage, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{models.ErrUnknownDocumentType, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{documents.ErrInvalidVehicleIndex, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{documents.ErrUnexpectedVehicleIndex, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{service.ErrWrongPassword, errorResponse{http.StatusUnauthorized, app.MsgWrongPassword}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{ErrEmptyAuthorizationHeader, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{ErrInvalidAuthorizationHeader, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},

	{service.ErrNumberNotVerified, errorResponse{http.StatusForbidden, app.MsgNumberNotVerified}},
	{service.ErrUnauthorizedAccessToDifferentUserData, errorResponse{http.StatusForbidden, app.MsgForbidden}},

	{store.ErrNoUserWasFound, errorResponse{http.StatusNotFound, app.MsgUserNotFound}},
	{store.ErrDocumentsNotFound, errorResponse{http.StatusNotFound, app.MsgDocumentsNotFound}},
	{store.ErrBlobNotFound, errorResponse{http.StatusNotFound, app.MsgBlobNotFound}},

	{store.ErrDocumentsAlreadyExist, errorResponse{http.StatusConflict, app.MsgDocumentsAlreadyExist}},
	{store.ErrMobileNumberAlreadyExists, errorResponse{http.StatusConflict, app.MsgMobileNumberAlreadyExists}},
}

var internalError = errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}

// statusFromError returns the status code and the client-facing message for
// err. Unknown errors are internal.
func statusFromError(err error) (int, string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, app.MsgRequestTooLarge
	}

	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.status, entry.message
		}
	}
	return internalError.status, internalError.message
}

// writeError logs err with msg and writes the mapped JSON error body.
// Client errors are logged as warnings.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	utils.WriteMessage(w, message, status)
}
