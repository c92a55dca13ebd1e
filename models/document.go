// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DocumentType identifies one kind of document a driver uploads.
type DocumentType string

const (
	// DrivingLicense holds the front and back of the driving license.
	DrivingLicense DocumentType = "drivingLicense"

	// NationalID holds the front and back of the national ID (Aadhar) card.
	NationalID DocumentType = "nationalId"

	// RegistrationCertificate is the per-vehicle registration certificate (RC).
	RegistrationCertificate DocumentType = "registrationCertificate"

	// InsuranceCertificate is the per-vehicle insurance certificate.
	InsuranceCertificate DocumentType = "insuranceCertificate"

	// PollutionCertificate is the per-vehicle pollution-under-control paper.
	PollutionCertificate DocumentType = "pollutionCertificate"

	// VehiclePhoto is an unbounded set of photos of a single vehicle.
	VehiclePhoto DocumentType = "vehiclePhoto"
)

// NoVehicle is the vehicle index used with identity documents, which do not
// belong to any vehicle.
const NoVehicle = -1

// MaxIdentityImages is the number of sides kept for identity documents.
const MaxIdentityImages = 2

// DocumentTypes lists every known document type in display order.
var DocumentTypes = []DocumentType{
	DrivingLicense,
	NationalID,
	RegistrationCertificate,
	InsuranceCertificate,
	PollutionCertificate,
	VehiclePhoto,
}

// ParseDocumentType converts s into a [DocumentType]. It returns
// [ErrUnknownDocumentType] when s does not name a known type.
func ParseDocumentType(s string) (DocumentType, error) {
	for _, t := range DocumentTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDocumentType, s)
}

// IsValid reports whether t is one of the known document types.
func (t DocumentType) IsValid() bool {
	return t.IsIdentity() || t.IsPerVehicle()
}

// IsIdentity reports whether t is a user-level two-sided identity document.
func (t DocumentType) IsIdentity() bool {
	return t == DrivingLicense || t == NationalID
}

// IsSingleSlot reports whether t occupies exactly one slot per vehicle.
func (t DocumentType) IsSingleSlot() bool {
	switch t {
	case RegistrationCertificate, InsuranceCertificate, PollutionCertificate:
		return true
	default:
		return false
	}
}

// IsPerVehicle reports whether t belongs to a vehicle.
func (t DocumentType) IsPerVehicle() bool {
	return t.IsSingleSlot() || t == VehiclePhoto
}

// AllowsMultiSelect reports whether an image picker may select several images
// for t at once. Single-slot certificates always force a single selection.
func (t DocumentType) AllowsMultiSelect() bool {
	return t.IsIdentity() || t == VehiclePhoto
}

// Title returns the human readable name of t.
func (t DocumentType) Title() string {
	switch t {
	case DrivingLicense:
		return "Driving License"
	case NationalID:
		return "Aadhar Card"
	case RegistrationCertificate:
		return "RC Document"
	case InsuranceCertificate:
		return "Insurance Document"
	case PollutionCertificate:
		return "Pollution Paper"
	case VehiclePhoto:
		return "Car Photos"
	default:
		return string(t)
	}
}

// Target addresses the place in a [DocumentCollection] that an operation
// works on. Vehicle must be [NoVehicle] for identity documents.
type Target struct {
	Type    DocumentType
	Vehicle int
}

// IdentityTarget returns a [Target] for a user-level identity document.
func IdentityTarget(t DocumentType) Target {
	return Target{Type: t, Vehicle: NoVehicle}
}

// VehicleTarget returns a [Target] for a document of the vehicle at index.
func VehicleTarget(t DocumentType, index int) Target {
	return Target{Type: t, Vehicle: index}
}

// String implements [fmt.Stringer].
func (t Target) String() string {
	if t.Vehicle == NoVehicle {
		return string(t.Type)
	}
	return fmt.Sprintf("%s[%d]", t.Type, t.Vehicle)
}

// VehicleDocumentSet holds the documents of one vehicle. An empty URL marks
// an absent certificate; the struct itself always carries all four slots.
type VehicleDocumentSet struct {
	RegistrationCertificateURL string
	InsuranceCertificateURL    string
	PollutionCertificateURL    string
	PhotoURLs                  []string
}

// NewVehicleDocumentSet returns a vehicle with every slot empty.
func NewVehicleDocumentSet() VehicleDocumentSet {
	return VehicleDocumentSet{PhotoURLs: []string{}}
}

// Slot returns the URL stored in the single-slot certificate t.
func (v VehicleDocumentSet) Slot(t DocumentType) string {
	switch t {
	case RegistrationCertificate:
		return v.RegistrationCertificateURL
	case InsuranceCertificate:
		return v.InsuranceCertificateURL
	case PollutionCertificate:
		return v.PollutionCertificateURL
	default:
		return ""
	}
}

// SetSlot stores url in the single-slot certificate t. Other types are ignored.
func (v *VehicleDocumentSet) SetSlot(t DocumentType, url string) {
	switch t {
	case RegistrationCertificate:
		v.RegistrationCertificateURL = url
	case InsuranceCertificate:
		v.InsuranceCertificateURL = url
	case PollutionCertificate:
		v.PollutionCertificateURL = url
	}
}

// URLs returns every non-empty URL owned by the vehicle: the three
// certificates followed by the photos.
func (v VehicleDocumentSet) URLs() []string {
	urls := make([]string, 0, 3+len(v.PhotoURLs))
	for _, u := range []string{v.RegistrationCertificateURL, v.InsuranceCertificateURL, v.PollutionCertificateURL} {
		if u != "" {
			urls = append(urls, u)
		}
	}
	for _, u := range v.PhotoURLs {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// Clone returns a deep copy of v.
func (v VehicleDocumentSet) Clone() VehicleDocumentSet {
	c := v
	c.PhotoURLs = append(make([]string, 0, len(v.PhotoURLs)), v.PhotoURLs...)
	return c
}

// DocumentCollection is the in-memory aggregate of a user's identity and
// vehicle documents. The index of a vehicle in Vehicles is its identity.
type DocumentCollection struct {
	DrivingLicense []string
	NationalID     []string
	Vehicles       []VehicleDocumentSet
}

// NewDocumentCollection returns an empty collection.
func NewDocumentCollection() DocumentCollection {
	return DocumentCollection{
		DrivingLicense: []string{},
		NationalID:     []string{},
		Vehicles:       []VehicleDocumentSet{},
	}
}

// Clone returns a deep copy of c. Nil slices come back empty.
func (c DocumentCollection) Clone() DocumentCollection {
	out := DocumentCollection{
		DrivingLicense: append(make([]string, 0, len(c.DrivingLicense)), c.DrivingLicense...),
		NationalID:     append(make([]string, 0, len(c.NationalID)), c.NationalID...),
		Vehicles:       make([]VehicleDocumentSet, 0, len(c.Vehicles)),
	}
	for _, v := range c.Vehicles {
		out.Vehicles = append(out.Vehicles, v.Clone())
	}
	return out
}

// Identity returns the images of the identity document t.
func (c DocumentCollection) Identity(t DocumentType) []string {
	switch t {
	case DrivingLicense:
		return c.DrivingLicense
	case NationalID:
		return c.NationalID
	default:
		return nil
	}
}

// SetIdentity replaces the images of the identity document t.
func (c *DocumentCollection) SetIdentity(t DocumentType, urls []string) {
	switch t {
	case DrivingLicense:
		c.DrivingLicense = urls
	case NationalID:
		c.NationalID = urls
	}
}

// HasVehicle reports whether index addresses an existing vehicle.
func (c DocumentCollection) HasVehicle(index int) bool {
	return index >= 0 && index < len(c.Vehicles)
}

// URLs returns every non-empty URL referenced by the collection.
func (c DocumentCollection) URLs() []string {
	urls := make([]string, 0, len(c.DrivingLicense)+len(c.NationalID))
	urls = append(urls, c.DrivingLicense...)
	urls = append(urls, c.NationalID...)
	for _, v := range c.Vehicles {
		urls = append(urls, v.URLs()...)
	}
	return urls
}

type urlSlot struct {
	URL string `json:"url"`
}

type urlList struct {
	URL []string `json:"url"`
}

// documentsWire is the JSON shape shared with the API: the per-vehicle
// documents travel as four parallel arrays.
type documentsWire struct {
	ID             string     `json:"_id,omitempty"`
	UserID         string     `json:"userId,omitempty"`
	DrivingLicense []string   `json:"drivingLicense"`
	NationalID     []string   `json:"addhar"`
	RC             []urlSlot  `json:"rc"`
	Insurance      []urlSlot  `json:"insurance"`
	PollutionPaper []urlSlot  `json:"pollutionPaper"`
	CarPhoto       []urlList  `json:"carPhoto"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

func (c DocumentCollection) toWire() documentsWire {
	c = c.Clone()
	w := documentsWire{
		DrivingLicense: c.DrivingLicense,
		NationalID:     c.NationalID,
		RC:             make([]urlSlot, 0, len(c.Vehicles)),
		Insurance:      make([]urlSlot, 0, len(c.Vehicles)),
		PollutionPaper: make([]urlSlot, 0, len(c.Vehicles)),
		CarPhoto:       make([]urlList, 0, len(c.Vehicles)),
	}
	for _, v := range c.Vehicles {
		w.RC = append(w.RC, urlSlot{URL: v.RegistrationCertificateURL})
		w.Insurance = append(w.Insurance, urlSlot{URL: v.InsuranceCertificateURL})
		w.PollutionPaper = append(w.PollutionPaper, urlSlot{URL: v.PollutionCertificateURL})
		w.CarPhoto = append(w.CarPhoto, urlList{URL: v.PhotoURLs})
	}
	return w
}

// collection rebuilds the aggregate from the parallel arrays. The number of
// vehicles is the longest of the four arrays; missing slots come back empty.
// Identity arrays are kept as sent so oversized ones can be rejected.
func (w documentsWire) collection() DocumentCollection {
	c := NewDocumentCollection()
	c.DrivingLicense = append(c.DrivingLicense, w.DrivingLicense...)
	c.NationalID = append(c.NationalID, w.NationalID...)

	n := max(len(w.RC), len(w.Insurance), len(w.PollutionPaper), len(w.CarPhoto))
	for i := range n {
		v := NewVehicleDocumentSet()
		if i < len(w.RC) {
			v.RegistrationCertificateURL = w.RC[i].URL
		}
		if i < len(w.Insurance) {
			v.InsuranceCertificateURL = w.Insurance[i].URL
		}
		if i < len(w.PollutionPaper) {
			v.PollutionCertificateURL = w.PollutionPaper[i].URL
		}
		if i < len(w.CarPhoto) && w.CarPhoto[i].URL != nil {
			v.PhotoURLs = append(v.PhotoURLs, w.CarPhoto[i].URL...)
		}
		c.Vehicles = append(c.Vehicles, v)
	}
	return c
}

// MarshalJSON implements [json.Marshaler] using the API wire shape.
func (c DocumentCollection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.toWire())
}

// UnmarshalJSON implements [json.Unmarshaler]. Per-vehicle arrays of unequal
// length are padded so every vehicle carries all four slots.
func (c *DocumentCollection) UnmarshalJSON(b []byte) error {
	var w documentsWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*c = w.collection()
	return nil
}

// DocumentRecord is a persisted [DocumentCollection] owned by a user.
type DocumentRecord struct {
	ID        string
	UserID    string
	Documents DocumentCollection
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MarshalJSON implements [json.Marshaler]. The record is flattened into the
// documents wire shape with "_id" and "userId" alongside.
func (r DocumentRecord) MarshalJSON() ([]byte, error) {
	w := r.Documents.toWire()
	w.ID = r.ID
	w.UserID = r.UserID
	if !r.CreatedAt.IsZero() {
		w.CreatedAt = &r.CreatedAt
	}
	if !r.UpdatedAt.IsZero() {
		w.UpdatedAt = &r.UpdatedAt
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (r *DocumentRecord) UnmarshalJSON(b []byte) error {
	var w documentsWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	r.ID = w.ID
	r.UserID = w.UserID
	r.Documents = w.collection()
	if w.CreatedAt != nil {
		r.CreatedAt = *w.CreatedAt
	}
	if w.UpdatedAt != nil {
		r.UpdatedAt = *w.UpdatedAt
	}
	return nil
}
