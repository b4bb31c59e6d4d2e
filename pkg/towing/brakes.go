package towing

import "github.com/trekcheck/trekcheck/pkg/sanitizer"

// BrakeThreshold is the trailer mass in kilograms above which brakes are mandatory.
const BrakeThreshold = 750

// TowingMode names which towing capacity figure a comparison used.
// ModeUnknown means the car publishes no capacity for the trailer's brake status.
type TowingMode string

const (
	ModeBraked   TowingMode = "braked"
	ModeUnbraked TowingMode = "unbraked"
	ModeUnknown  TowingMode = "unknown"
)

// TowingCapacity is the outcome of CheckTowingCapacity.
type TowingCapacity struct {
	CanTow    bool       `json:"can_tow"`
	MaxWeight int        `json:"max_weight"`
	Mode      TowingMode `json:"mode"`
}

// TrailerRequiresBrakes reports whether a trailer of the given mass must be braked.
// Exactly 750 kg does not require brakes.
func TrailerRequiresBrakes(mass int) bool {
	return mass > BrakeThreshold
}

// TrailerHasBrakes reports whether the trailer's brake description names any brakes.
// The description is trimmed first, so blank text counts as absent.
func TrailerHasBrakes(trailer *VehicleRecord) bool {
	if trailer == nil {
		return false
	}
	desc := sanitizer.TrimToLower(trailer.Brakes)
	if desc == "" {
		return false
	}
	return !isNoBrakes(desc)
}

// declaresNoBrakes reports whether the description explicitly states there are
// no brakes, as opposed to saying nothing at all.
func declaresNoBrakes(trailer *VehicleRecord) bool {
	return isNoBrakes(sanitizer.TrimToLower(trailer.Brakes))
}

func isNoBrakes(desc string) bool {
	return desc == "none" || desc == "geen"
}

// CheckTowingCapacity compares trailerMass against the car's braked or unbraked
// capacity, whichever matches trailerBraked. A zero capacity yields ModeUnknown.
func CheckTowingCapacity(car *VehicleRecord, trailerMass int, trailerBraked bool) TowingCapacity {
	if car == nil {
		return TowingCapacity{Mode: ModeUnknown}
	}

	capacity, mode := car.UnbrakedTowingCapacity.Int(), ModeUnbraked
	if trailerBraked {
		capacity, mode = car.BrakedTowingCapacity.Int(), ModeBraked
	}
	if capacity == 0 {
		return TowingCapacity{Mode: ModeUnknown}
	}

	return TowingCapacity{
		CanTow:    trailerMass <= capacity,
		MaxWeight: capacity,
		Mode:      mode,
	}
}
