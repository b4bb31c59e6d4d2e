package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trekcheck/trekcheck/pkg/towing"
	"github.com/trekcheck/trekcheck/pkg/validator"
	"github.com/trekcheck/trekcheck/svc/combination"
)

var (
	errCombinationNotAllowed = errors.New("combination not allowed")
	errReadVehicle           = errors.New("failed to read vehicle file")
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		req         combination.CheckRequest
		carFile     string
		trailerFile string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a car and trailer combination",
		Long: `Check a car and trailer combination against a license class.

Vehicles come from RDW-shaped JSON files (a single object or the array the
RDW API returns, first element used) or from the inline flags. The command
exits with status 2 when the combination is not allowed.`,
		Example: `  trekcheck check --license B --car car.json --trailer caravan.json
  trekcheck check --license BE --car-mass 1800 --car-braked 2000 --trailer-mass 1400 --lang en`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if req.Car, err = readVehicle(carFile); err != nil {
				return err
			}
			if req.Trailer, err = readVehicle(trailerFile); err != nil {
				return err
			}

			report, err := a.svc.Check(cmd.Context(), req)
			if err != nil {
				if verrs := validator.ExtractValidationErrors(err); verrs != nil {
					printValidationErrors(cmd.ErrOrStderr(), verrs)
					return fmt.Errorf("invalid request: %w", err)
				}
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				printReport(cmd.OutOrStdout(), a.svc, report)
			}

			if !report.IsValid {
				return errCombinationNotAllowed
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&req.License, "license", "l", "B", "driving license class")
	f.StringVar(&req.Lang, "lang", "", "message language (default from TREKCHECK_DEFAULT_LANG)")
	f.BoolVar(&asJSON, "json", false, "print the report as JSON")

	f.StringVar(&carFile, "car", "", "RDW JSON file of the car")
	f.StringVar(&req.CarName, "car-name", "", "car make and model")
	f.StringVar(&req.CarPlate, "car-plate", "", "car registration plate")
	f.Var(quantityFlag{&req.CarMass}, "car-mass", "car maximum permitted mass in kg")
	f.Var(quantityFlag{&req.CarUnbraked}, "car-unbraked", "car towing capacity for unbraked trailers in kg")
	f.Var(quantityFlag{&req.CarBraked}, "car-braked", "car towing capacity for braked trailers in kg")

	f.StringVar(&trailerFile, "trailer", "", "RDW JSON file of the trailer")
	f.StringVar(&req.TrailerName, "trailer-name", "", "trailer make and model")
	f.StringVar(&req.TrailerPlate, "trailer-plate", "", "trailer registration plate")
	f.Var(quantityFlag{&req.TrailerMass}, "trailer-mass", "trailer maximum permitted mass in kg")
	f.StringVar(&req.TrailerBrakes, "trailer-brakes", "", `trailer brake description ("geen" or "none" for unbraked)`)

	// A vehicle file replaces every inline flag of the same vehicle.
	for _, name := range []string{"car-name", "car-plate", "car-mass", "car-unbraked", "car-braked"} {
		cmd.MarkFlagsMutuallyExclusive("car", name)
	}
	for _, name := range []string{"trailer-name", "trailer-plate", "trailer-mass", "trailer-brakes"} {
		cmd.MarkFlagsMutuallyExclusive("trailer", name)
	}
	return cmd
}

// readVehicle decodes an RDW record from path. An empty path yields nil.
func readVehicle(path string) (*towing.VehicleRecord, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(errReadVehicle, err)
	}
	rec, err := decodeVehicle(data)
	if err != nil {
		return nil, errors.Join(errReadVehicle, fmt.Errorf("%s: %w", path, err))
	}
	return rec, nil
}

func decodeVehicle(data []byte) (*towing.VehicleRecord, error) {
	var records []towing.VehicleRecord
	if err := json.Unmarshal(data, &records); err == nil {
		if len(records) == 0 {
			return nil, errors.New("empty record list")
		}
		return &records[0], nil
	}

	var rec towing.VehicleRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// quantityFlag binds a pflag value to a towing.Quantity.
type quantityFlag struct {
	q *towing.Quantity
}

func (f quantityFlag) String() string {
	if f.q == nil {
		return ""
	}
	return string(*f.q)
}

func (f quantityFlag) Set(s string) error {
	*f.q = towing.Quantity(s)
	return nil
}

func (quantityFlag) Type() string {
	return "kg"
}
