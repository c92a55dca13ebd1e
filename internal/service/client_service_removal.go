// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ride-docs/internal/documents"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/models"
)

type removalService struct {
	deletes BlobDeleteQueue
	logger  *logger.Logger
}

// NewRemovalService creates a [ClientRemovalService] that hands removed URLs
// to deletes.
func NewRemovalService(deletes BlobDeleteQueue, logger *logger.Logger) ClientRemovalService {
	return &removalService{deletes: deletes, logger: logger}
}

// RemoveDocument implements [ClientRemovalService]. item selects the image
// of identity documents and photos and is ignored for certificates.
// Out-of-range positions leave c unchanged.
func (s *removalService) RemoveDocument(_ context.Context, c models.DocumentCollection, target models.Target, item int) models.DocumentCollection {
	out, removed := documents.RemoveDocument(c, target, item)
	if len(removed) == 0 {
		return out
	}

	s.logger.WithTarget(target).Debug().Int("item", item).Msg("document removed")
	s.deletes.Enqueue(target, removed...)
	return out
}

// RemoveVehicle implements [ClientRemovalService]. The blob deletions are
// independent of each other and of the model update.
func (s *removalService) RemoveVehicle(_ context.Context, c models.DocumentCollection, vehicle int) models.DocumentCollection {
	if !c.HasVehicle(vehicle) {
		return c
	}
	v := c.Vehicles[vehicle]
	out, _ := documents.RemoveVehicle(c, vehicle)

	for _, t := range []models.DocumentType{models.RegistrationCertificate, models.InsuranceCertificate, models.PollutionCertificate} {
		s.deletes.Enqueue(models.VehicleTarget(t, vehicle), v.Slot(t))
	}
	s.deletes.Enqueue(models.VehicleTarget(models.VehiclePhoto, vehicle), v.PhotoURLs...)

	s.logger.Debug().Int("vehicle", vehicle).Msg("vehicle removed")
	return out
}

// AddVehicle implements [ClientRemovalService].
func (s *removalService) AddVehicle(c models.DocumentCollection) models.DocumentCollection {
	return documents.AddVehicle(c)
}
