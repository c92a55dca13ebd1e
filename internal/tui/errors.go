// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-ride-docs/internal/service"
)

// ErrUserQuit is returned when the user leaves the program with ctrl+c.
var ErrUserQuit = errors.New("user quit")

// humanizeError turns service errors into the line shown under a form.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var notReady *service.NotReadyError
	if errors.As(err, &notReady) {
		details := make([]string, 0, len(notReady.Reasons))
		for _, r := range notReady.Reasons {
			details = append(details, r.Title+". "+r.Detail)
		}
		return strings.Join(details, "\n")
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	switch {
	case errors.Is(err, service.ErrInvalidVerificationCode):
		return "The code is wrong, check the SMS and try again"
	case errors.Is(err, service.ErrVerificationCodeExpired):
		return "The code has expired, go back and request a new one"
	case errors.Is(err, service.ErrWrongPassword):
		return "Wrong mobile number or password"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Your session has expired, sign in again"
	}

	return err.Error()
}
