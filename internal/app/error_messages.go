// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// go-ride-docs server handlers and the client error mapper.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of HTTP response bodies. The client maps the error messages
// back to sentinel errors, so the wording is part of the API.
package app

// Error messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing,
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID but
	// none is present in the request.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgWrongPassword is returned when the mobile number/password pair does
	// not match.
	MsgWrongPassword = "invalid mobile number/password"

	// MsgInvalidVerificationCode is returned when an OTP does not match the
	// pending code or no code is pending.
	MsgInvalidVerificationCode = "invalid verification code"

	// MsgVerificationCodeExpired is returned when the pending OTP expired.
	MsgVerificationCodeExpired = "verification code expired"

	// MsgNumberNotVerified is returned when registration is attempted before
	// the mobile number was verified.
	MsgNumberNotVerified = "mobile number is not verified"

	// MsgUserNotFound is returned when the requested user does not exist.
	MsgUserNotFound = "user not found"

	// MsgDocumentsNotFound is returned when the user has no stored documents.
	MsgDocumentsNotFound = "documents not found"

	// MsgDocumentsAlreadyExist is returned when documents are created twice.
	MsgDocumentsAlreadyExist = "documents already exist"

	// MsgTooManyIdentityImages is returned when an identity document carries
	// more than a front and a back image.
	MsgTooManyIdentityImages = "identity documents accept at most two images"

	// MsgForbidden is returned when a user accesses another user's data.
	MsgForbidden = "access to another user's data is forbidden"

	// MsgNotAnImage is returned when an uploaded blob is not an image.
	MsgNotAnImage = "uploaded file is not an image"

	// MsgInvalidBlobURL is returned when a blob URL does not belong to this
	// server's store.
	MsgInvalidBlobURL = "invalid blob url"

	// MsgBlobNotFound is returned when the addressed blob does not exist.
	MsgBlobNotFound = "blob not found"

	// MsgMobileNumberAlreadyExists is returned when two accounts race for
	// the same mobile number.
	MsgMobileNumberAlreadyExists = "mobile number already exists"

	// MsgRequestTooLarge is returned when a request body exceeds the limit.
	MsgRequestTooLarge = "request body is too large"

	// MsgRouteNotFound is returned for unknown paths.
	MsgRouteNotFound = "route not found"

	// MsgMethodNotAllowed is returned when a path exists but not for the
	// requested method.
	MsgMethodNotAllowed = "method not allowed"
)

// Success messages.
const (
	MsgVerificationCodeSent = "Verification code sent"
	MsgLoggedIn             = "Logged in successfully"
	MsgNumberVerified       = "Number verified successfully"
	MsgRegistered           = "Registration completed successfully"
	MsgDocumentsSaved       = "Documents saved successfully"
	MsgDocumentsUpdated     = "Documents updated, verification pending"
	MsgDocumentsDeleted     = "Documents deleted successfully"
	MsgBlobDeleted          = "Blob deleted successfully"
	MsgProfileUpdated       = "Profile updated successfully"
)
