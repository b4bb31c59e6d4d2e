// Package validator provides small declarative validation rules for request
// payloads.
//
// A Rule pairs a Check func with a translation-friendly ValidationError. Apply
// evaluates every rule and returns the failures as ValidationErrors, which
// satisfies the error interface, so callers can return all field problems at
// once:
//
//	err := validator.Apply(
//	    validator.RequiredString("license", req.License),
//	    validator.OneOfFold("license", req.License, registry.Labels()),
//	    validator.MaxNum("car_mass", carMass, 60000),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Fields(), verrs.Get("license") ...
//	}
//
// Rules are stateless and safe for concurrent use.
package validator
