package towing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trekcheck/trekcheck/pkg/towing"
)

func TestTrailerRequiresBrakes(t *testing.T) {
	t.Parallel()

	assert.False(t, towing.TrailerRequiresBrakes(0))
	assert.False(t, towing.TrailerRequiresBrakes(750))
	assert.True(t, towing.TrailerRequiresBrakes(751))
	assert.True(t, towing.TrailerRequiresBrakes(3500))
}

func TestTrailerHasBrakes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		trailer  *towing.VehicleRecord
		expected bool
	}{
		{name: "nil trailer", trailer: nil, expected: false},
		{name: "no description", trailer: &towing.VehicleRecord{}, expected: false},
		{name: "blank description", trailer: &towing.VehicleRecord{Brakes: "  "}, expected: false},
		{name: "none", trailer: &towing.VehicleRecord{Brakes: "none"}, expected: false},
		{name: "none upper case", trailer: &towing.VehicleRecord{Brakes: "None"}, expected: false},
		{name: "dutch none", trailer: &towing.VehicleRecord{Brakes: "GEEN"}, expected: false},
		{name: "padded none", trailer: &towing.VehicleRecord{Brakes: " none "}, expected: false},
		{name: "overrun brake", trailer: &towing.VehicleRecord{Brakes: "Oplooprem"}, expected: true},
		{name: "any other text", trailer: &towing.VehicleRecord{Brakes: "yes"}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, towing.TrailerHasBrakes(tt.trailer))
		})
	}
}

func TestCheckTowingCapacity(t *testing.T) {
	t.Parallel()

	car := &towing.VehicleRecord{UnbrakedTowingCapacity: "700", BrakedTowingCapacity: "1500"}

	tests := []struct {
		name     string
		car      *towing.VehicleRecord
		mass     int
		braked   bool
		expected towing.TowingCapacity
	}{
		{
			name:     "braked within capacity",
			car:      car,
			mass:     1200,
			braked:   true,
			expected: towing.TowingCapacity{CanTow: true, MaxWeight: 1500, Mode: towing.ModeBraked},
		},
		{
			name:     "braked at capacity",
			car:      car,
			mass:     1500,
			braked:   true,
			expected: towing.TowingCapacity{CanTow: true, MaxWeight: 1500, Mode: towing.ModeBraked},
		},
		{
			name:     "unbraked over capacity",
			car:      car,
			mass:     701,
			braked:   false,
			expected: towing.TowingCapacity{CanTow: false, MaxWeight: 700, Mode: towing.ModeUnbraked},
		},
		{
			name:     "unbraked capacity missing",
			car:      &towing.VehicleRecord{BrakedTowingCapacity: "1500"},
			mass:     500,
			braked:   false,
			expected: towing.TowingCapacity{Mode: towing.ModeUnknown},
		},
		{
			name:     "braked capacity missing does not fall back",
			car:      &towing.VehicleRecord{UnbrakedTowingCapacity: "700"},
			mass:     500,
			braked:   true,
			expected: towing.TowingCapacity{Mode: towing.ModeUnknown},
		},
		{
			name:     "nil car",
			car:      nil,
			mass:     500,
			braked:   true,
			expected: towing.TowingCapacity{Mode: towing.ModeUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, towing.CheckTowingCapacity(tt.car, tt.mass, tt.braked))
		})
	}
}
