// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-ride-docs/internal/documents"
	"github.com/MKhiriev/go-ride-docs/internal/validators"
	"github.com/MKhiriev/go-ride-docs/models"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrVerificationCodeExpired = errors.New("verification code expired")
	ErrNumberNotVerified       = errors.New("mobile number is not verified")

	ErrUnauthorizedAccessToDifferentUserData = errors.New("unauthorized access to different user data")

	ErrInvalidBlobURL = errors.New("blob url does not belong to this store")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	ErrNoImagesSelected = errors.New("no images selected")
	ErrUploadIncomplete = errors.New("some images failed to upload")
	ErrNotSubmitReady   = errors.New("documents are not ready for submission")
	ErrNotSignedIn      = errors.New("not signed in")
)

// Precondition errors of document mutations, re-exported so callers only
// import this package.
var (
	ErrUnknownDocumentType    = models.ErrUnknownDocumentType
	ErrInvalidVehicleIndex    = documents.ErrInvalidVehicleIndex
	ErrUnexpectedVehicleIndex = documents.ErrUnexpectedVehicleIndex
)

// NotReadyError lists the completeness rules a collection fails. It matches
// [ErrNotSubmitReady] with errors.Is.
type NotReadyError struct {
	Reasons []validators.Reason
}

func (e *NotReadyError) Error() string {
	titles := make([]string, 0, len(e.Reasons))
	for _, r := range e.Reasons {
		titles = append(titles, r.Error())
	}
	return ErrNotSubmitReady.Error() + ": " + strings.Join(titles, "; ")
}

func (e *NotReadyError) Unwrap() error {
	return ErrNotSubmitReady
}
