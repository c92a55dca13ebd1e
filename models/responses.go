// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the body of error and informational responses.
type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// BlobUploadResponse carries the public URL of a stored blob.
type BlobUploadResponse struct {
	URL string `json:"url"`
}

// AuthResponse is returned by onboarding, OTP verification and registration.
type AuthResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// DocumentsResponse wraps a stored document record.
type DocumentsResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message,omitempty"`
	Documents *DocumentRecord `json:"documents,omitempty"`

	// Verification is set by updates, which send the documents back to review.
	Verification *VerificationState `json:"verification,omitempty"`
}

// ProfileResponse wraps a user profile.
type ProfileResponse struct {
	Success bool `json:"success"`
	User    User `json:"profile"`
}

// ProfileUpdateResponse carries the profile after an update.
type ProfileUpdateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    User   `json:"updatedProfile"`
}

// SubmitResult is the outcome of submitting a complete document collection.
type SubmitResult struct {
	Success      bool              `json:"success"`
	Message      string            `json:"message,omitempty"`
	Record       DocumentRecord    `json:"-"`
	Verification VerificationState `json:"verification"`
}

// VersionResponse describes the running server build.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
