package towing

// Evaluate checks whether car may tow trailer under license.
//
// A nil argument short-circuits to an invalid Verdict holding only
// MissingInputMessage. Otherwise every check runs and contributes its findings
// in order; no check stops the evaluation except that a heavy trailer declaring
// no brakes is not compared against the car's capacity.
func Evaluate(car, trailer *VehicleRecord, license *LicenseLimit) Verdict {
	b := newVerdictBuilder()
	if car == nil || trailer == nil || license == nil {
		b.add(missingInput())
		return b.build()
	}

	carMass := car.Mass()
	trailerMass := trailer.Mass()
	total := carMass + trailerMass

	b.v.TotalWeight = total
	b.v.AllowedWeight = license.MaxCombinationWeight
	b.v.Car = car.Info()
	b.v.Trailer = trailer.Info()

	if total <= license.MaxCombinationWeight {
		b.add(weightAllowed(total, license.ClassLabel))
	} else {
		b.add(weightExceeded(total, license.ClassLabel, license.MaxCombinationWeight))
	}

	braked := TrailerHasBrakes(trailer)
	switch {
	case TrailerRequiresBrakes(trailerMass) && declaresNoBrakes(trailer):
		b.add(brakesMissing(trailerMass))
		return b.build()
	case TrailerRequiresBrakes(trailerMass):
		// Registration above the threshold implies brakes are fitted.
		braked = true
		b.add(brakesPresent(trailerMass))
	default:
		b.add(brakesNotRequired(trailerMass))
	}

	b.add(capacityFinding(trailerMass, CheckTowingCapacity(car, trailerMass, braked)))
	return b.build()
}
