// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package documents

import (
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/samber/lo"
)

// RemoveDocument removes one document from c and returns the new collection
// together with the URLs that are no longer referenced.
//
// For identity documents and vehicle photos item is the index of the image;
// later images shift left. For single-slot certificates item is ignored and
// the slot is cleared. Out-of-range indices leave c unchanged.
func RemoveDocument(c models.DocumentCollection, target models.Target, item int) (models.DocumentCollection, []string) {
	if CheckTarget(c, target) != nil {
		return c, nil
	}

	out := c.Clone()
	switch {
	case target.Type.IsIdentity():
		urls := out.Identity(target.Type)
		if item < 0 || item >= len(urls) {
			return c, nil
		}
		removed := urls[item]
		out.SetIdentity(target.Type, without(urls, item))
		return out, lo.Compact([]string{removed})

	case target.Type.IsSingleSlot():
		v := &out.Vehicles[target.Vehicle]
		removed := v.Slot(target.Type)
		v.SetSlot(target.Type, "")
		return out, lo.Compact([]string{removed})

	default:
		v := &out.Vehicles[target.Vehicle]
		if item < 0 || item >= len(v.PhotoURLs) {
			return c, nil
		}
		removed := v.PhotoURLs[item]
		v.PhotoURLs = without(v.PhotoURLs, item)
		return out, lo.Compact([]string{removed})
	}
}

// RemoveVehicle removes the vehicle at index, keeping the order of the
// remaining vehicles, and returns every non-empty URL the vehicle owned.
// An out-of-range index leaves c unchanged.
func RemoveVehicle(c models.DocumentCollection, index int) (models.DocumentCollection, []string) {
	if !c.HasVehicle(index) {
		return c, nil
	}

	out := c.Clone()
	removed := out.Vehicles[index].URLs()
	out.Vehicles = lo.Filter(out.Vehicles, func(_ models.VehicleDocumentSet, i int) bool {
		return i != index
	})
	return out, removed
}

// AddVehicle appends a vehicle with every slot empty.
func AddVehicle(c models.DocumentCollection) models.DocumentCollection {
	out := c.Clone()
	out.Vehicles = append(out.Vehicles, models.NewVehicleDocumentSet())
	return out
}

func without(urls []string, index int) []string {
	return lo.Filter(urls, func(_ string, i int) bool {
		return i != index
	})
}
