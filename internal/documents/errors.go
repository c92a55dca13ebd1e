// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package documents

import "errors"

var (
	ErrInvalidVehicleIndex    = errors.New("vehicle index out of range")
	ErrUnexpectedVehicleIndex = errors.New("identity documents do not belong to a vehicle")
	ErrTooManyIdentityImages  = errors.New("identity document has more than two images")
)
