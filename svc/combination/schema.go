package combination

import (
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/trekcheck/trekcheck/pkg/schema"
	"github.com/trekcheck/trekcheck/pkg/towing"
)

// Schema names served by Schema.
const (
	SchemaRequest = "request"
	SchemaVerdict = "verdict"
	SchemaVehicle = "vehicle"
)

// SchemaNames lists the documents Schema can produce.
var SchemaNames = []string{SchemaRequest, SchemaVerdict, SchemaVehicle}

// quantitySchema describes towing.Quantity, which decodes from strings,
// numbers and null.
var quantitySchema = &jsonschema.Schema{
	OneOf: []*jsonschema.Schema{
		{Type: "string"},
		{Type: "number"},
		{Type: "null"},
	},
	Description: "Mass in kilograms; text is parsed leniently",
}

// Schema returns the JSON Schema document called name.
func Schema(name string) ([]byte, error) {
	quantity := schema.WithTypeSchema(reflect.TypeFor[towing.Quantity](), quantitySchema)

	switch name {
	case SchemaRequest:
		return schema.Generate(&CheckRequest{}, quantity,
			schema.WithTitle("Check request", "Car, trailer and license class to evaluate"))
	case SchemaVerdict:
		return schema.Generate(&Report{}, quantity,
			schema.WithTitle("Check report", "Outcome of a towing check"))
	case SchemaVehicle:
		return schema.Generate(&towing.VehicleRecord{}, quantity,
			schema.WithTitle("Vehicle record", "RDW open-data vehicle attributes used for towing"))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}
}
