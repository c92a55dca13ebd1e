// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation and the completeness rules
// a document collection must satisfy before submission.
//
// Core concepts:
//   - Validator: generic interface to validate request DTOs. Supports
//     optional field-level scoping for targeted validation.
//   - CompletenessValidator: evaluates a [models.DocumentCollection] against
//     the ordered submission rules and describes what is missing.
package validators

import (
	"context"

	"github.com/MKhiriev/go-ride-docs/models"
)

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// Completeness decides whether a document collection may be submitted.
type Completeness interface {
	IsSubmitReady(models.DocumentCollection) bool
	DescribeMissing(models.DocumentCollection) []Reason
	FirstMissing(models.DocumentCollection) (Reason, bool)
}
