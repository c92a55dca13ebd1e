// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMobileNumberAlreadyExists is returned when a user with the same
	// mobile number is already registered.
	ErrMobileNumberAlreadyExists = errors.New("mobile number already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrOTPNotFound is returned when no verification code is pending for a
	// mobile number.
	ErrOTPNotFound = errors.New("verification code was not found")

	// ErrDocumentsAlreadyExist is returned when a user already owns a
	// document record.
	ErrDocumentsAlreadyExist = errors.New("documents already exist")

	// ErrDocumentsNotFound is returned when a document lookup, update or
	// delete matches no row.
	ErrDocumentsNotFound = errors.New("documents were not found")

	// ErrBlobNotFound is returned when a blob does not exist in the store.
	ErrBlobNotFound = errors.New("blob was not found")

	// ErrInvalidBlobKey is returned when a container or key would escape the
	// store root or is empty.
	ErrInvalidBlobKey = errors.New("invalid blob key")

	// ErrSessionNotFound is returned when the client has no saved session.
	ErrSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingDocuments is returned when a document collection cannot be
	// converted to or from its JSON column.
	ErrEncodingDocuments = errors.New("failed to encode documents")
)
