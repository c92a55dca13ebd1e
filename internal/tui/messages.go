// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-ride-docs/models"
)

// Pages of the root model.
const (
	pagePhone     = "phone"
	pageOTP       = "otp"
	pageDocuments = "documents"
	pageRegister  = "register"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// signedInMsg finishes sign-in; the documents page takes over.
type signedInMsg struct {
	session models.Session
}

// loggedOutMsg ends the program with the logout flag set.
type loggedOutMsg struct{}

type onboardedMsg struct {
	mobileNumber string
	err          error
}

type verifiedMsg struct {
	session models.Session
	err     error
}

type documentsLoadedMsg struct {
	err error
}

// documentsChangedMsg is sent by the editor listener after every mutation.
type documentsChangedMsg struct {
	ready bool
}

type uploadDoneMsg struct {
	report models.UploadReport
	err    error
}

type submitDoneMsg struct {
	result models.SubmitResult
	err    error
}

type registeredMsg struct {
	session models.Session
	err     error
}

type copiedMsg struct {
	err error
}

type logoutFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
