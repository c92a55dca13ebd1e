// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package documents

import (
	"fmt"

	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/samber/lo"
)

// CheckTarget reports whether target addresses a valid place in c.
func CheckTarget(c models.DocumentCollection, target models.Target) error {
	switch {
	case target.Type.IsIdentity():
		if target.Vehicle != models.NoVehicle {
			return fmt.Errorf("%w: %s got vehicle %d", ErrUnexpectedVehicleIndex, target.Type, target.Vehicle)
		}
	case target.Type.IsPerVehicle():
		if !c.HasVehicle(target.Vehicle) {
			return fmt.Errorf("%w: %d of %d", ErrInvalidVehicleIndex, target.Vehicle, len(c.Vehicles))
		}
	default:
		return fmt.Errorf("%w: %q", models.ErrUnknownDocumentType, target.Type)
	}
	return nil
}

// Merge adds the uploaded urls, in selection order, to the place addressed
// by target:
//   - identity documents append and keep the most recent two images;
//   - single-slot certificates take the first URL;
//   - vehicle photos append every URL.
//
// Empty URLs are ignored. c itself is never modified.
func Merge(c models.DocumentCollection, target models.Target, urls []string) (models.DocumentCollection, error) {
	if err := CheckTarget(c, target); err != nil {
		return c, err
	}

	urls = lo.Compact(urls)
	out := c.Clone()
	if len(urls) == 0 {
		return out, nil
	}

	switch {
	case target.Type.IsIdentity():
		merged := append(out.Identity(target.Type), urls...)
		if len(merged) > models.MaxIdentityImages {
			merged = merged[len(merged)-models.MaxIdentityImages:]
		}
		out.SetIdentity(target.Type, merged)
	case target.Type.IsSingleSlot():
		out.Vehicles[target.Vehicle].SetSlot(target.Type, urls[0])
	default:
		out.Vehicles[target.Vehicle].PhotoURLs = append(out.Vehicles[target.Vehicle].PhotoURLs, urls...)
	}

	return out, nil
}

// CheckLimits validates the cardinality of identity documents.
func CheckLimits(c models.DocumentCollection) error {
	for _, t := range []models.DocumentType{models.DrivingLicense, models.NationalID} {
		if n := len(c.Identity(t)); n > models.MaxIdentityImages {
			return fmt.Errorf("%w: %s has %d", ErrTooManyIdentityImages, t, n)
		}
	}
	return nil
}
