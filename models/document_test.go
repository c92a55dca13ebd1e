// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentCollection_MarshalJSON(t *testing.T) {
	c := DocumentCollection{
		DrivingLicense: []string{"dl-front", "dl-back"},
		NationalID:     []string{"id-front"},
		Vehicles: []VehicleDocumentSet{
			{RegistrationCertificateURL: "rc0", PhotoURLs: []string{"p0", "p1"}},
			NewVehicleDocumentSet(),
		},
	}

	b, err := json.Marshal(c)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"drivingLicense": ["dl-front", "dl-back"],
		"addhar": ["id-front"],
		"rc": [{"url": "rc0"}, {"url": ""}],
		"insurance": [{"url": ""}, {"url": ""}],
		"pollutionPaper": [{"url": ""}, {"url": ""}],
		"carPhoto": [{"url": ["p0", "p1"]}, {"url": []}]
	}`, string(b))
}

func TestDocumentCollection_MarshalJSON_Empty(t *testing.T) {
	b, err := json.Marshal(DocumentCollection{})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"drivingLicense": [], "addhar": [],
		"rc": [], "insurance": [], "pollutionPaper": [], "carPhoto": []
	}`, string(b))
}

func TestDocumentCollection_UnmarshalJSON_KeepsIdentityAndPadsVehicles(t *testing.T) {
	var c DocumentCollection
	err := json.Unmarshal([]byte(`{
		"drivingLicense": ["a", "b", "c"],
		"addhar": [],
		"rc": [{"url": "rc0"}, {"url": "rc1"}],
		"insurance": [{"url": "ins0"}],
		"carPhoto": [{"url": ["p0"]}]
	}`), &c)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, c.DrivingLicense)
	assert.Equal(t, []string{}, c.NationalID)
	require.Len(t, c.Vehicles, 2)
	assert.Equal(t, VehicleDocumentSet{
		RegistrationCertificateURL: "rc0",
		InsuranceCertificateURL:    "ins0",
		PhotoURLs:                  []string{"p0"},
	}, c.Vehicles[0])
	assert.Equal(t, VehicleDocumentSet{
		RegistrationCertificateURL: "rc1",
		PhotoURLs:                  []string{},
	}, c.Vehicles[1])
}

func TestDocumentCollection_RoundTrip(t *testing.T) {
	c := DocumentCollection{
		DrivingLicense: []string{"dl"},
		NationalID:     []string{"id1", "id2"},
		Vehicles: []VehicleDocumentSet{{
			RegistrationCertificateURL: "rc",
			InsuranceCertificateURL:    "ins",
			PollutionCertificateURL:    "puc",
			PhotoURLs:                  []string{"p"},
		}},
	}

	b, err := json.Marshal(c)
	require.NoError(t, err)

	var got DocumentCollection
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, c, got)
}

func TestDocumentCollection_CloneIsDeep(t *testing.T) {
	c := DocumentCollection{
		DrivingLicense: []string{"dl"},
		Vehicles:       []VehicleDocumentSet{{PhotoURLs: []string{"p"}}},
	}

	cp := c.Clone()
	cp.DrivingLicense[0] = "changed"
	cp.Vehicles[0].PhotoURLs[0] = "changed"

	assert.Equal(t, "dl", c.DrivingLicense[0])
	assert.Equal(t, "p", c.Vehicles[0].PhotoURLs[0])
	assert.NotNil(t, cp.NationalID)
}

func TestDocumentRecord_JSON(t *testing.T) {
	r := DocumentRecord{ID: "doc-1", UserID: "user-1", Documents: NewDocumentCollection()}

	b, err := json.Marshal(r)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "doc-1", raw["_id"])
	assert.Equal(t, "user-1", raw["userId"])
	assert.NotContains(t, raw, "createdAt")

	var got DocumentRecord
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, r, got)
}

func TestDocumentType(t *testing.T) {
	tests := []struct {
		typ         DocumentType
		identity    bool
		singleSlot  bool
		perVehicle  bool
		multiSelect bool
	}{
		{DrivingLicense, true, false, false, true},
		{NationalID, true, false, false, true},
		{RegistrationCertificate, false, true, true, false},
		{InsuranceCertificate, false, true, true, false},
		{PollutionCertificate, false, true, true, false},
		{VehiclePhoto, false, false, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.True(t, tt.typ.IsValid())
			assert.Equal(t, tt.identity, tt.typ.IsIdentity())
			assert.Equal(t, tt.singleSlot, tt.typ.IsSingleSlot())
			assert.Equal(t, tt.perVehicle, tt.typ.IsPerVehicle())
			assert.Equal(t, tt.multiSelect, tt.typ.AllowsMultiSelect())

			parsed, err := ParseDocumentType(string(tt.typ))
			require.NoError(t, err)
			assert.Equal(t, tt.typ, parsed)
		})
	}

	_, err := ParseDocumentType("passport")
	assert.ErrorIs(t, err, ErrUnknownDocumentType)
	assert.False(t, DocumentType("passport").IsValid())
}
