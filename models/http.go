// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BlobUploadRequest asks the server to store a base64 encoded image.
type BlobUploadRequest struct {
	// Base64Image is a "data:" URL or a bare base64 payload.
	Base64Image string `json:"base64Image" validate:"required"`

	// ContainerName groups blobs of one kind, e.g. "cardocument".
	ContainerName string `json:"containerName" validate:"required"`
}

// BlobDeleteRequest asks the server to delete a blob by its public URL.
type BlobDeleteRequest struct {
	BlobURL string `json:"blobUrl" validate:"required"`
}

// OnboardRequest starts phone-number onboarding and sends an OTP.
type OnboardRequest struct {
	MobileNumber string `json:"mobileNumber" validate:"required,e164"`
	Password     string `json:"pass,omitempty"`
}

// VerifyRequest confirms the OTP sent to a mobile number.
type VerifyRequest struct {
	MobileNumber string `json:"number" validate:"required,e164"`
	VerifyCode   string `json:"verifyCode" validate:"required,numeric"`
}

// RegistrationRequest completes registration of a driver: profile fields
// together with the documents uploaded so far.
type RegistrationRequest struct {
	FormData  ProfileForm        `json:"formData"`
	Documents DocumentCollection `json:"documents"`
	UserID    string             `json:"userId" validate:"required"`
}

// ProfileUpdateRequest changes the editable profile fields.
// Nil fields are left unchanged.
type ProfileUpdateRequest struct {
	FullName *string `json:"fullName,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}
