// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-ride-docs/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI runs one interactive session. It returns logout=true when the user
// signed out and the sign-in flow should start again.
type UI interface {
	Run(ctx context.Context, session models.Session) (logout bool, err error)
}
