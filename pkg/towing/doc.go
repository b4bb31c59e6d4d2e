// Package towing decides whether a car and trailer combination may be driven
// under a given driving-license class.
//
// The package is a pure function over three records: the tow vehicle, the
// trailer and the license limits. Evaluate runs every check in a fixed order and
// collects the outcome into a Verdict instead of stopping at the first failure,
// so callers always receive the complete set of messages to display.
//
// # Checks
//
// Evaluate runs, in order:
//
//  1. Combination weight: car mass plus trailer mass must not exceed the
//     license's maximum combination weight (inclusive bound).
//  2. Trailer brakes: trailers heavier than 750 kg must be braked. Such
//     trailers are assumed to be equipped unless their brake description
//     explicitly says "none". A heavy trailer that declares no brakes fails
//     this check and skips the capacity comparison.
//  3. Towing capacity: the car's braked or unbraked towing capacity, matching
//     the trailer's effective brake status, must be at least the trailer mass.
//     A capacity of zero means the registry has no data and is reported as such.
//
// # Lenient input
//
// Registry values are carried as Quantity strings and parsed leniently: the
// leading digits are used and anything else becomes 0. Missing data never
// causes an error; it surfaces as a "no data available" finding instead.
//
// # Usage
//
//	car := &towing.VehicleRecord{
//		MaxPermittedMass:       towing.Kilograms(1500),
//		UnbrakedTowingCapacity: towing.Kilograms(700),
//		BrakedTowingCapacity:   towing.Kilograms(1500),
//	}
//	trailer := &towing.VehicleRecord{MaxPermittedMass: towing.Kilograms(600)}
//	license := &towing.LicenseLimit{ClassLabel: "B", MaxCombinationWeight: 3500}
//
//	v := towing.Evaluate(car, trailer, license)
//	// v.IsValid == true, v.TotalWeight == 2100
//
// Every Finding carries a translation key and named values so presentation
// layers can render localized text without parsing Message.
package towing
