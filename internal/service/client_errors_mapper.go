// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-ride-docs/internal/adapter"
	"github.com/MKhiriev/go-ride-docs/internal/app"
	"github.com/MKhiriev/go-ride-docs/internal/documents"
	"github.com/MKhiriev/go-ride-docs/internal/store"
	"github.com/MKhiriev/go-ride-docs/models"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgNotAnImage:
			return models.ErrNotAnImage
		case app.MsgInvalidVerificationCode:
			return ErrInvalidVerificationCode
		case app.MsgVerificationCodeExpired:
			return ErrVerificationCodeExpired
		case app.MsgTooManyIdentityImages:
			return documents.ErrTooManyIdentityImages
		case app.MsgInvalidBlobURL:
			return ErrInvalidBlobURL
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgWrongPassword {
			return ErrWrongPassword
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		if msg == app.MsgNumberNotVerified {
			return ErrNumberNotVerified
		}
		return ErrUnauthorizedAccessToDifferentUserData

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgUserNotFound:
			return store.ErrNoUserWasFound
		case app.MsgBlobNotFound:
			return store.ErrBlobNotFound
		}
		return store.ErrDocumentsNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgDocumentsAlreadyExist {
			return store.ErrDocumentsAlreadyExist
		}

	case errors.Is(err, adapter.ErrInternalServerError):
		if msg == app.MsgInternalServerError {
			return adapter.ErrInternalServerError
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
