package combination

import (
	"github.com/trekcheck/trekcheck/pkg/sanitizer"
	"github.com/trekcheck/trekcheck/pkg/towing"
	"github.com/trekcheck/trekcheck/pkg/validator"
)

const (
	maxPlateLength = 16
	maxNameLength  = 128

	// MaxMass bounds every mass and capacity a request may carry.
	MaxMass = 60000
)

// CheckRequest is the body of POST /check. Vehicles are given either as flat
// fields (web form) or as RDW-shaped records in Car and Trailer, which take
// precedence. A vehicle with neither is treated as missing.
type CheckRequest struct {
	License string `json:"license" form:"license" jsonschema:"description=License class label such as B or BE"`
	Lang    string `json:"lang,omitempty" form:"lang" jsonschema:"description=Language of the rendered messages"`

	CarName     string          `json:"car_name,omitempty" form:"car_name"`
	CarPlate    string          `json:"car_plate,omitempty" form:"car_plate"`
	CarMass     towing.Quantity `json:"car_mass,omitempty" form:"car_mass"`
	CarUnbraked towing.Quantity `json:"car_unbraked,omitempty" form:"car_unbraked"`
	CarBraked   towing.Quantity `json:"car_braked,omitempty" form:"car_braked"`

	TrailerName   string          `json:"trailer_name,omitempty" form:"trailer_name"`
	TrailerPlate  string          `json:"trailer_plate,omitempty" form:"trailer_plate"`
	TrailerMass   towing.Quantity `json:"trailer_mass,omitempty" form:"trailer_mass"`
	TrailerBrakes string          `json:"trailer_brakes,omitempty" form:"trailer_brakes"`

	Car     *towing.VehicleRecord `json:"car,omitempty" form:"-"`
	Trailer *towing.VehicleRecord `json:"trailer,omitempty" form:"-"`
}

// CarRecord returns the tow vehicle described by the request, or nil.
func (r CheckRequest) CarRecord() *towing.VehicleRecord {
	if r.Car != nil {
		rec := *r.Car
		return &rec
	}
	rec := towing.VehicleRecord{
		Name:                   r.CarName,
		PlateID:                r.CarPlate,
		MaxPermittedMass:       r.CarMass,
		UnbrakedTowingCapacity: r.CarUnbraked,
		BrakedTowingCapacity:   r.CarBraked,
	}
	if rec == (towing.VehicleRecord{}) {
		return nil
	}
	return &rec
}

// TrailerRecord returns the trailer described by the request, or nil.
func (r CheckRequest) TrailerRecord() *towing.VehicleRecord {
	if r.Trailer != nil {
		rec := *r.Trailer
		return &rec
	}
	rec := towing.VehicleRecord{
		Name:             r.TrailerName,
		PlateID:          r.TrailerPlate,
		MaxPermittedMass: r.TrailerMass,
		Brakes:           r.TrailerBrakes,
	}
	if rec == (towing.VehicleRecord{}) {
		return nil
	}
	return &rec
}

func (s *Service) rules(req CheckRequest, car, trailer *towing.VehicleRecord) []validator.Rule {
	rules := []validator.Rule{
		validator.RequiredString("license", req.License),
		validator.When(sanitizer.Trim(req.License) != "", validator.OneOfFold("license", req.License, s.registry.Labels())),
		validator.When(sanitizer.Trim(req.Lang) != "", validator.OneOfFold("lang", req.Lang, s.tr.SupportedLanguages())),
	}
	rules = append(rules, vehicleRules("car", car)...)
	rules = append(rules, vehicleRules("trailer", trailer)...)
	return rules
}

func vehicleRules(role string, rec *towing.VehicleRecord) []validator.Rule {
	if rec == nil {
		return nil
	}
	return []validator.Rule{
		validator.MaxLenString(role+"_name", rec.Name, maxNameLength),
		validator.MaxLenString(role+"_plate", rec.PlateID, maxPlateLength),
		validator.MinNum(role+"_mass", signed(rec.MaxPermittedMass), 0),
		validator.MaxNum(role+"_mass", rec.Mass(), MaxMass),
		validator.MinNum(role+"_unbraked", signed(rec.UnbrakedTowingCapacity), 0),
		validator.MaxNum(role+"_unbraked", rec.UnbrakedTowingCapacity.Int(), MaxMass),
		validator.MinNum(role+"_braked", signed(rec.BrakedTowingCapacity), 0),
		validator.MaxNum(role+"_braked", rec.BrakedTowingCapacity.Int(), MaxMass),
	}
}

// signed reads q keeping its sign, so negative input can be rejected instead
// of silently becoming zero.
func signed(q towing.Quantity) int {
	return sanitizer.LeadingInt(string(q))
}
