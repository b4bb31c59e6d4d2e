package towing

// Verdict is the outcome of Evaluate.
//
// IsValid is true exactly when Errors is empty. Errors and Successes keep the
// order in which the checks ran; Findings interleaves both in that same order.
type Verdict struct {
	IsValid       bool         `json:"is_valid"`
	Errors        []string     `json:"errors"`
	Successes     []string     `json:"successes"`
	TotalWeight   int          `json:"total_weight"`
	AllowedWeight int          `json:"allowed_weight"`
	Car           *VehicleInfo `json:"car,omitempty"`
	Trailer       *VehicleInfo `json:"trailer,omitempty"`
	Findings      []Finding    `json:"findings"`
}

// Failed returns the findings that were reported as errors.
func (v Verdict) Failed() []Finding {
	var out []Finding
	for _, f := range v.Findings {
		if !f.Passed {
			out = append(out, f)
		}
	}
	return out
}

// verdictBuilder accumulates findings in evaluation order.
type verdictBuilder struct {
	v Verdict
}

func newVerdictBuilder() *verdictBuilder {
	return &verdictBuilder{v: Verdict{
		Errors:    []string{},
		Successes: []string{},
		Findings:  []Finding{},
	}}
}

func (b *verdictBuilder) add(f Finding) {
	b.v.Findings = append(b.v.Findings, f)
	if f.Passed {
		b.v.Successes = append(b.v.Successes, f.Message)
		return
	}
	b.v.Errors = append(b.v.Errors, f.Message)
}

func (b *verdictBuilder) build() Verdict {
	b.v.IsValid = len(b.v.Errors) == 0
	return b.v
}
