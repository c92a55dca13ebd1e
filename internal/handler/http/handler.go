// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-ride-docs/internal/config"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/service"
	"github.com/MKhiriev/go-ride-docs/internal/validators"
)

// maxBodyBytes bounds request bodies. Base64 images are the largest payloads.
const maxBodyBytes = 16 << 20

type Handler struct {
	services  *service.Services
	validator validators.Validator

	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewRequestValidator(),
		allowedOrigins: cfg.AllowedOrigins,
		logger:         logger,
	}
}
