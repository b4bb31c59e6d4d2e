package towing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/trekcheck/trekcheck/pkg/sanitizer"
)

// UnknownDisplay is reported for display fields a record does not provide.
const UnknownDisplay = "unknown"

// Quantity is a mass or capacity value in kilograms as published by a vehicle
// registry. It is kept as text and parsed leniently when read.
type Quantity string

// MaxQuantity is the largest value a Quantity reads as. Larger values saturate
// so that sums of two quantities cannot overflow.
const MaxQuantity = math.MaxInt32 / 2

// Kilograms returns the Quantity for n kilograms.
func Kilograms(n int) Quantity {
	return Quantity(strconv.Itoa(n))
}

// Int returns the value in kilograms. Absent, unparseable and negative values
// yield 0; values above MaxQuantity yield MaxQuantity.
func (q Quantity) Int() int {
	return sanitizer.ClampMax(sanitizer.NonNegativeInt(string(q)), MaxQuantity)
}

// UnmarshalJSON accepts JSON strings, numbers and null.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*q = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("towing: quantity: %w", err)
		}
		*q = Quantity(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("towing: quantity: %w", err)
		}
		*q = Quantity(n.String())
		return nil
	}
}

// VehicleRecord holds the attributes of a tow vehicle or trailer that matter
// for towing. JSON field names follow the Dutch RDW open-data set so registry
// records decode without mapping.
type VehicleRecord struct {
	Name    string `json:"handelsbenaming,omitempty"`
	PlateID string `json:"kenteken,omitempty"`

	MaxPermittedMass       Quantity `json:"toegestane_maximum_massa_voertuig,omitempty"`
	UnbrakedTowingCapacity Quantity `json:"maximum_massa_trekken_ongeremd,omitempty"`
	BrakedTowingCapacity   Quantity `json:"maximum_trekken_massa_geremd,omitempty"`

	// Brakes is a free-text brake description. Only trailers use it.
	// Empty, "none" and "geen" mean the trailer is unbraked.
	Brakes string `json:"remmen,omitempty"`
}

// Mass returns the maximum permitted mass in kilograms.
func (r *VehicleRecord) Mass() int {
	return r.MaxPermittedMass.Int()
}

// Info returns the display echo of the record.
func (r *VehicleRecord) Info() *VehicleInfo {
	return &VehicleInfo{
		Name:    sanitizer.DefaultIfEmpty(r.Name, UnknownDisplay),
		PlateID: sanitizer.DefaultIfEmpty(r.PlateID, UnknownDisplay),
		Mass:    r.Mass(),
	}
}

// VehicleInfo is the display data echoed back in a Verdict.
type VehicleInfo struct {
	Name    string `json:"name"`
	PlateID string `json:"plate_id"`
	Mass    int    `json:"mass"`
}

// LicenseLimit describes the combination weight allowed by a license class.
type LicenseLimit struct {
	ClassLabel           string `json:"class"`
	MaxCombinationWeight int    `json:"max_combination_weight"`
}
