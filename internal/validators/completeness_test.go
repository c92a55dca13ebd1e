// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"

	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/stretchr/testify/assert"
)

func completeVehicle() models.VehicleDocumentSet {
	return models.VehicleDocumentSet{
		RegistrationCertificateURL: "rc",
		InsuranceCertificateURL:    "ins",
		PollutionCertificateURL:    "puc",
		PhotoURLs:                  []string{"p"},
	}
}

func completeCollection() models.DocumentCollection {
	return models.DocumentCollection{
		DrivingLicense: []string{"dl-front", "dl-back"},
		NationalID:     []string{"id-front", "id-back"},
		Vehicles:       []models.VehicleDocumentSet{completeVehicle()},
	}
}

func codes(reasons []Reason) []ReasonCode {
	out := make([]ReasonCode, 0, len(reasons))
	for _, r := range reasons {
		out = append(out, r.Code)
	}
	return out
}

func TestCompletenessValidator_DescribeMissing(t *testing.T) {
	v := NewCompletenessValidator(CompletenessPolicy{})

	tests := []struct {
		name   string
		modify func(c *models.DocumentCollection)
		want   []ReasonCode
	}{
		{
			name:   "complete",
			modify: func(c *models.DocumentCollection) {},
			want:   []ReasonCode{},
		},
		{
			name:   "no vehicles is allowed by default",
			modify: func(c *models.DocumentCollection) { c.Vehicles = nil },
			want:   []ReasonCode{},
		},
		{
			name: "nothing uploaded",
			modify: func(c *models.DocumentCollection) {
				c.DrivingLicense = nil
				c.NationalID = nil
			},
			want: []ReasonCode{MissingDrivingLicense, MissingNationalID, IncompleteNationalID, IncompleteDrivingLicense},
		},
		{
			name:   "one side of national id",
			modify: func(c *models.DocumentCollection) { c.NationalID = c.NationalID[:1] },
			want:   []ReasonCode{IncompleteNationalID},
		},
		{
			name:   "one side of driving license",
			modify: func(c *models.DocumentCollection) { c.DrivingLicense = c.DrivingLicense[:1] },
			want:   []ReasonCode{IncompleteDrivingLicense},
		},
		{
			name: "second vehicle without photos",
			modify: func(c *models.DocumentCollection) {
				v := completeVehicle()
				v.PhotoURLs = nil
				c.Vehicles = append(c.Vehicles, v)
			},
			want: []ReasonCode{MissingVehicleDocuments},
		},
		{
			name: "vehicle without pollution paper",
			modify: func(c *models.DocumentCollection) {
				c.Vehicles[0].PollutionCertificateURL = ""
			},
			want: []ReasonCode{MissingVehicleDocuments},
		},
		{
			name: "empty vehicle slot",
			modify: func(c *models.DocumentCollection) {
				c.Vehicles = append(c.Vehicles, models.NewVehicleDocumentSet(), models.NewVehicleDocumentSet())
			},
			want: []ReasonCode{MissingVehicleDocuments},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := completeCollection()
			tt.modify(&c)

			got := v.DescribeMissing(c)
			assert.Equal(t, tt.want, codes(got))
			assert.Equal(t, len(tt.want) == 0, v.IsSubmitReady(c))

			first, ok := v.FirstMissing(c)
			assert.Equal(t, len(tt.want) > 0, ok)
			if ok {
				assert.Equal(t, tt.want[0], first.Code)
			}
		})
	}
}

func TestCompletenessValidator_RequireVehicle(t *testing.T) {
	v := NewCompletenessValidator(CompletenessPolicy{RequireVehicle: true})

	c := completeCollection()
	assert.True(t, v.IsSubmitReady(c))

	c.Vehicles = nil
	reason, ok := v.FirstMissing(c)
	assert.True(t, ok)
	assert.Equal(t, MissingVehicle, reason.Code)
}

func TestCompletenessValidator_Messages(t *testing.T) {
	v := NewCompletenessValidator(CompletenessPolicy{})

	reason, ok := v.FirstMissing(models.NewDocumentCollection())
	assert.True(t, ok)
	assert.Equal(t, "Missing Required Documents", reason.Title)
	assert.Equal(t, "Please upload Driving License and Aadhar Card.", reason.Detail)
	assert.Equal(t, "Missing Required Documents: Please upload Driving License and Aadhar Card.", reason.Error())
}
