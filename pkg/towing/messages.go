package towing

import "fmt"

// Check identifies which rule produced a Finding.
type Check string

const (
	CheckInput    Check = "input"
	CheckWeight   Check = "combination_weight"
	CheckBrakes   Check = "trailer_brakes"
	CheckCapacity Check = "towing_capacity"
)

// Translation keys of every message Evaluate can produce.
const (
	KeyMissingInput             = "towing.missing_input"
	KeyWeightAllowed            = "towing.weight.allowed"
	KeyWeightExceeded           = "towing.weight.exceeded"
	KeyBrakesPresent            = "towing.brakes.present"
	KeyBrakesNotRequired        = "towing.brakes.not_required"
	KeyBrakesMissing            = "towing.brakes.missing"
	KeyCapacityBrakedAllowed    = "towing.capacity.braked.allowed"
	KeyCapacityBrakedExceeded   = "towing.capacity.braked.exceeded"
	KeyCapacityUnbrakedAllowed  = "towing.capacity.unbraked.allowed"
	KeyCapacityUnbrakedExceeded = "towing.capacity.unbraked.exceeded"
	KeyCapacityUnknown          = "towing.capacity.unknown"
)

// MissingInputMessage is the only message of a short-circuited Verdict.
const MissingInputMessage = "missing vehicle or license data"

// Finding is one message of a Verdict in structured form.
// TranslationValues holds the numbers and labels quoted in Message.
type Finding struct {
	Check             Check          `json:"check"`
	Passed            bool           `json:"passed"`
	Message           string         `json:"message"`
	TranslationKey    string         `json:"translation_key"`
	TranslationValues map[string]any `json:"translation_values,omitempty"`
}

// Args flattens TranslationValues into key/value pairs for template renderers.
// Keys are emitted in the order the values appear in Message.
func (f Finding) Args() []string {
	order := argOrder[f.TranslationKey]
	args := make([]string, 0, len(order)*2)
	for _, name := range order {
		if v, ok := f.TranslationValues[name]; ok {
			args = append(args, name, fmt.Sprint(v))
		}
	}
	return args
}

var argOrder = map[string][]string{
	KeyWeightAllowed:            {"total", "class"},
	KeyWeightExceeded:           {"total", "class", "limit"},
	KeyBrakesPresent:            {"mass", "threshold"},
	KeyBrakesNotRequired:        {"mass", "threshold"},
	KeyBrakesMissing:            {"mass", "threshold"},
	KeyCapacityBrakedAllowed:    {"mass", "capacity"},
	KeyCapacityBrakedExceeded:   {"mass", "capacity"},
	KeyCapacityUnbrakedAllowed:  {"mass", "capacity"},
	KeyCapacityUnbrakedExceeded: {"mass", "capacity"},
}

func missingInput() Finding {
	return Finding{
		Check:          CheckInput,
		Message:        MissingInputMessage,
		TranslationKey: KeyMissingInput,
	}
}

func weightAllowed(total int, class string) Finding {
	return Finding{
		Check:             CheckWeight,
		Passed:            true,
		Message:           fmt.Sprintf("Total weight (%dkg) is allowed for license %s", total, class),
		TranslationKey:    KeyWeightAllowed,
		TranslationValues: map[string]any{"total": total, "class": class},
	}
}

func weightExceeded(total int, class string, limit int) Finding {
	return Finding{
		Check:             CheckWeight,
		Message:           fmt.Sprintf("Total weight (%dkg) exceeds the limit for license %s (%dkg)", total, class, limit),
		TranslationKey:    KeyWeightExceeded,
		TranslationValues: map[string]any{"total": total, "class": class, "limit": limit},
	}
}

func brakesPresent(mass int) Finding {
	return Finding{
		Check:             CheckBrakes,
		Passed:            true,
		Message:           fmt.Sprintf("Trailer has mandatory brakes (weight: %dkg > %dkg)", mass, BrakeThreshold),
		TranslationKey:    KeyBrakesPresent,
		TranslationValues: map[string]any{"mass": mass, "threshold": BrakeThreshold},
	}
}

func brakesNotRequired(mass int) Finding {
	return Finding{
		Check:             CheckBrakes,
		Passed:            true,
		Message:           fmt.Sprintf("Trailer weighs %dkg (at most %dkg), no brakes required", mass, BrakeThreshold),
		TranslationKey:    KeyBrakesNotRequired,
		TranslationValues: map[string]any{"mass": mass, "threshold": BrakeThreshold},
	}
}

func brakesMissing(mass int) Finding {
	return Finding{
		Check:             CheckBrakes,
		Message:           fmt.Sprintf("Trailer requires brakes (weight: %dkg > %dkg) but has none", mass, BrakeThreshold),
		TranslationKey:    KeyBrakesMissing,
		TranslationValues: map[string]any{"mass": mass, "threshold": BrakeThreshold},
	}
}

func capacityFinding(mass int, tc TowingCapacity) Finding {
	if tc.Mode == ModeUnknown {
		return Finding{
			Check:          CheckCapacity,
			Message:        "No towing capacity data available for the car",
			TranslationKey: KeyCapacityUnknown,
		}
	}

	f := Finding{
		Check:             CheckCapacity,
		Passed:            tc.CanTow,
		TranslationValues: map[string]any{"mass": mass, "capacity": tc.MaxWeight},
	}
	switch {
	case tc.Mode == ModeBraked && tc.CanTow:
		f.TranslationKey = KeyCapacityBrakedAllowed
		f.Message = fmt.Sprintf("Car can tow the trailer with brakes (%dkg ≤ %dkg)", mass, tc.MaxWeight)
	case tc.Mode == ModeBraked:
		f.TranslationKey = KeyCapacityBrakedExceeded
		f.Message = fmt.Sprintf("Trailer too heavy for the car with brakes (%dkg > %dkg)", mass, tc.MaxWeight)
	case tc.CanTow:
		f.TranslationKey = KeyCapacityUnbrakedAllowed
		f.Message = fmt.Sprintf("Car can tow the trailer without brakes (%dkg ≤ %dkg)", mass, tc.MaxWeight)
	default:
		f.TranslationKey = KeyCapacityUnbrakedExceeded
		f.Message = fmt.Sprintf("Trailer too heavy for the car without brakes (%dkg > %dkg)", mass, tc.MaxWeight)
	}
	return f
}
