// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "github.com/MKhiriev/go-ride-docs/models"

// ReasonCode identifies a failed completeness rule.
type ReasonCode string

const (
	MissingDrivingLicense    ReasonCode = "missing_driving_license"
	MissingNationalID        ReasonCode = "missing_national_id"
	IncompleteNationalID     ReasonCode = "incomplete_national_id"
	IncompleteDrivingLicense ReasonCode = "incomplete_driving_license"
	MissingVehicleDocuments  ReasonCode = "missing_vehicle_documents"
	MissingVehicle           ReasonCode = "missing_vehicle"
)

// Reason is one failed rule with the message shown to the user.
type Reason struct {
	Code   ReasonCode `json:"code"`
	Title  string     `json:"title"`
	Detail string     `json:"detail"`
}

// Error implements error so a Reason can be wrapped and reported directly.
func (r Reason) Error() string {
	return r.Title + ": " + r.Detail
}

var reasons = map[ReasonCode]Reason{
	MissingDrivingLicense: {
		Code: MissingDrivingLicense, Title: "Missing Required Documents",
		Detail: "Please upload Driving License and Aadhar Card.",
	},
	MissingNationalID: {
		Code: MissingNationalID, Title: "Missing Required Documents",
		Detail: "Please upload Driving License and Aadhar Card.",
	},
	IncompleteNationalID: {
		Code: IncompleteNationalID, Title: "Missing Complete Addhar",
		Detail: "Please insure Addhar have both side photos",
	},
	IncompleteDrivingLicense: {
		Code: IncompleteDrivingLicense, Title: "Missing Complete Driving License",
		Detail: "Please insure Driving License have both side photos",
	},
	MissingVehicleDocuments: {
		Code: MissingVehicleDocuments, Title: "Missing Car Documents",
		Detail: "Please ensure all cars have RC, insurance, pollution papers and photos.",
	},
	MissingVehicle: {
		Code: MissingVehicle, Title: "Missing Car Documents",
		Detail: "Please add at least one car with its documents.",
	},
}

// CompletenessPolicy tunes the completeness rules.
type CompletenessPolicy struct {
	// RequireVehicle rejects collections without any vehicle.
	RequireVehicle bool
}

// CompletenessValidator evaluates the submission rules in a fixed order:
//  1. the driving license has at least one image;
//  2. the national ID has at least one image;
//  3. the national ID has both sides;
//  4. the driving license has both sides;
//  5. every vehicle has all three certificates and at least one photo;
//  6. at least one vehicle exists, when the policy requires it.
type CompletenessValidator struct {
	policy CompletenessPolicy
}

// NewCompletenessValidator returns a validator with the given policy.
func NewCompletenessValidator(policy CompletenessPolicy) *CompletenessValidator {
	return &CompletenessValidator{policy: policy}
}

// IsSubmitReady reports whether every rule passes.
func (v *CompletenessValidator) IsSubmitReady(c models.DocumentCollection) bool {
	return len(v.DescribeMissing(c)) == 0
}

// FirstMissing returns the first failing rule.
func (v *CompletenessValidator) FirstMissing(c models.DocumentCollection) (Reason, bool) {
	missing := v.DescribeMissing(c)
	if len(missing) == 0 {
		return Reason{}, false
	}
	return missing[0], true
}

// DescribeMissing returns every failing rule in rule order.
func (v *CompletenessValidator) DescribeMissing(c models.DocumentCollection) []Reason {
	var missing []Reason

	if len(c.DrivingLicense) == 0 {
		missing = append(missing, reasons[MissingDrivingLicense])
	}
	if len(c.NationalID) == 0 {
		missing = append(missing, reasons[MissingNationalID])
	}
	if len(c.NationalID) != models.MaxIdentityImages {
		missing = append(missing, reasons[IncompleteNationalID])
	}
	if len(c.DrivingLicense) != models.MaxIdentityImages {
		missing = append(missing, reasons[IncompleteDrivingLicense])
	}
	for _, vehicle := range c.Vehicles {
		if !vehicleComplete(vehicle) {
			missing = append(missing, reasons[MissingVehicleDocuments])
			break
		}
	}
	if v.policy.RequireVehicle && len(c.Vehicles) == 0 {
		missing = append(missing, reasons[MissingVehicle])
	}

	return missing
}

func vehicleComplete(v models.VehicleDocumentSet) bool {
	return v.RegistrationCertificateURL != "" &&
		v.InsuranceCertificateURL != "" &&
		v.PollutionCertificateURL != "" &&
		len(v.PhotoURLs) > 0
}
