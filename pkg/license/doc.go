// Package license holds the table of driving license classes and the
// combination weight each one allows.
//
// The default table is embedded in the binary. A replacement table can be
// loaded from YAML with the same shape:
//
//	classes:
//	  - label: B
//	    max_combination_weight: 3500
//	    description: Car with a light trailer
//
// Every table is validated on load: labels are required and unique
// (case-insensitively) and weights must lie between 0 and 60000 kg.
package license
