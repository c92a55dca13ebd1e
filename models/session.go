// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the authenticated state of the client: the signed-in user and
// the bearer token used for API calls. A zero Session means signed out.
type Session struct {
	User      User      `json:"user"`
	Token     string    `json:"token"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAuthenticated reports whether the session carries a user and a token.
func (s Session) IsAuthenticated() bool {
	return s.User.ID != "" && s.Token != ""
}

// TableName returns the name of the client database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
