package main

import (
	"fmt"
	"io"

	"github.com/trekcheck/trekcheck/pkg/validator"
	"github.com/trekcheck/trekcheck/svc/combination"
)

const (
	markPass = "✅"
	markFail = "❌"
)

// printReport writes the findings in evaluation order followed by a summary.
func printReport(w io.Writer, svc *combination.Service, r combination.Report) {
	for _, f := range r.Findings {
		mark := markFail
		if f.Passed {
			mark = markPass
		}
		fmt.Fprintf(w, "%s %s\n", mark, f.Message)
	}
	if r.Car == nil || r.Trailer == nil {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %dkg\n", svc.T(r.Lang, "report.total_weight"), r.TotalWeight)
	fmt.Fprintf(w, "%s: %dkg (%s)\n", svc.T(r.Lang, "report.allowed_weight"), r.AllowedWeight, r.License.ClassLabel)
	if r.IsValid {
		fmt.Fprintln(w, svc.T(r.Lang, "report.valid"))
	} else {
		fmt.Fprintln(w, svc.T(r.Lang, "report.invalid"))
	}
}

func printValidationErrors(w io.Writer, verrs validator.ValidationErrors) {
	for _, e := range verrs {
		fmt.Fprintf(w, "%s %s: %s\n", markFail, e.Field, e.Message)
	}
}
