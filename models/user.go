// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VerificationStatus describes where the back-office review of a driver's
// documents currently stands.
type VerificationStatus string

const (
	// VerificationPending means documents were submitted and wait for review.
	VerificationPending VerificationStatus = "pending"

	// VerificationApproved means every submitted document was accepted.
	VerificationApproved VerificationStatus = "approved"

	// VerificationRejected means at least one document was rejected.
	VerificationRejected VerificationStatus = "rejected"
)

// User represents a rider or driver account.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID v7).
	ID string `json:"_id"`

	// MobileNumber is the E.164 phone number the account was onboarded with.
	MobileNumber string `json:"mobileNumber"`

	// FullName is the display name of the user.
	FullName string `json:"fullName,omitempty"`

	// Email is an optional contact address.
	Email string `json:"email,omitempty"`

	// Role is the account role chosen during registration ("work" for drivers).
	Role string `json:"role,omitempty"`

	// PasswordHash is the bcrypt hash of the account password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// IsVerified reports whether the mobile number was confirmed with an OTP.
	IsVerified bool `json:"isVerified"`

	// IsDocumentVerified reports whether the uploaded documents were approved.
	IsDocumentVerified bool `json:"isDocumentVerified"`

	// VerificationStatus is the review state of the uploaded documents.
	// Empty until the first submission.
	VerificationStatus VerificationStatus `json:"verificationStatus,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Verification returns the document verification state of the user.
func (u User) Verification() VerificationState {
	return VerificationState{
		DocumentVerified: u.IsDocumentVerified,
		Status:           u.VerificationStatus,
	}
}

// VerificationState is the document review state reported after a submission.
type VerificationState struct {
	DocumentVerified bool               `json:"isDocumentVerified"`
	Status           VerificationStatus `json:"verificationStatus"`
}

// ProfileForm carries the registration fields a driver fills in before
// submitting documents.
type ProfileForm struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role" validate:"required"`
}

// OTP is a one-time verification code issued to a mobile number.
type OTP struct {
	// MobileNumber is the number the code was sent to.
	MobileNumber string

	// CodeHash is the bcrypt hash of the code. The plain code is never stored.
	CodeHash string

	// ExpiresAt is the moment after which the code is rejected.
	ExpiresAt time.Time
}

// TableName returns the name of the database table
// associated with the OTP model.
func (o OTP) TableName() string {
	return "otp_codes"
}
