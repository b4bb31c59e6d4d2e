package combination

import "github.com/trekcheck/trekcheck/pkg/towing"

// Report is a Verdict rendered in one language.
type Report struct {
	IsValid       bool                `json:"is_valid"`
	Lang          string              `json:"lang"`
	License       towing.LicenseLimit `json:"license"`
	TotalWeight   int                 `json:"total_weight"`
	AllowedWeight int                 `json:"allowed_weight"`
	Errors        []string            `json:"errors"`
	Successes     []string            `json:"successes"`
	Car           *towing.VehicleInfo `json:"car,omitempty"`
	Trailer       *towing.VehicleInfo `json:"trailer,omitempty"`
	Findings      []towing.Finding    `json:"findings"`
}

// localize renders every finding of v in lang. Keys without a translation keep
// the message produced by the evaluator.
func (s *Service) localize(lang string, v towing.Verdict) Report {
	r := Report{
		IsValid:       v.IsValid,
		Lang:          lang,
		TotalWeight:   v.TotalWeight,
		AllowedWeight: v.AllowedWeight,
		Errors:        make([]string, 0, len(v.Errors)),
		Successes:     make([]string, 0, len(v.Successes)),
		Car:           v.Car,
		Trailer:       v.Trailer,
		Findings:      make([]towing.Finding, 0, len(v.Findings)),
	}
	for _, f := range v.Findings {
		f.Message = s.tr.Td(lang, f.TranslationKey, f.Message, f.Args()...)
		r.Findings = append(r.Findings, f)
		if f.Passed {
			r.Successes = append(r.Successes, f.Message)
		} else {
			r.Errors = append(r.Errors, f.Message)
		}
	}
	return r
}
