// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ride-docs/internal/documents"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator validates API request DTOs using their `validate` struct
// tags. Document collections are checked against the identity image limits.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a [Validator] for request DTOs.
func NewRequestValidator() Validator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks obj. When fields are given only those struct fields are
// validated.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DocumentCollection:
		return v.validateDocuments(value)
	case *models.DocumentCollection:
		return v.validateDocuments(*value)

	case models.RegistrationRequest:
		return v.validateRegistration(ctx, value, fields...)
	case *models.RegistrationRequest:
		return v.validateRegistration(ctx, *value, fields...)

	case models.OnboardRequest, *models.OnboardRequest,
		models.VerifyRequest, *models.VerifyRequest,
		models.BlobUploadRequest, *models.BlobUploadRequest,
		models.BlobDeleteRequest, *models.BlobDeleteRequest,
		models.ProfileUpdateRequest, *models.ProfileUpdateRequest,
		models.ProfileForm, *models.ProfileForm:
		return v.validateStruct(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegistration(ctx context.Context, r models.RegistrationRequest, fields ...string) error {
	if err := v.validateStruct(ctx, r, fields...); err != nil {
		return err
	}
	return v.validateDocuments(r.Documents)
}

func (v *RequestValidator) validateDocuments(c models.DocumentCollection) error {
	if err := documents.CheckLimits(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if errors.As(err, &validateErrs) {
		failed := make([]string, 0, len(validateErrs))
		for _, fe := range validateErrs {
			failed = append(failed, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(failed, ", "))
	}
	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}
