package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want string
	}{
		{"String", "Indie", "Indie"},
		{"WholeFloat", float64(7), "7"},
		{"Fraction", 1.5, "1.5"},
		{"Bool", true, "true"},
		{"Nil", nil, ""},
		{"Bytes", []byte("RPG"), "RPG"},
		{"Slice", []any{"a"}, "[a]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.val))
		})
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want bool
	}{
		{"One", float64(1), true},
		{"Zero", float64(0), false},
		{"True", true, true},
		{"False", false, false},
		{"Nil", nil, false},
		{"EmptyString", "", false},
		{"String", "1", true},
		{"EmptyMap", map[string]any{}, false},
		{"IntOne", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(tt.val))
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"Whole", 600.0 / 60, 10.0},
		{"Rounds up", 5.0 / 60, 0.1},
		{"Rounds down", 2.0 / 60, 0.0},
		{"Third", 1.0 / 3 * 100, 33.3},
		{"Two thirds", 2.0 / 3 * 100, 66.7},
		{"Binary below tie", 9.0 / 60, 0.1},
		{"Exact tie to even", 15.0 / 60, 0.2},
		{"Binary below tie 0.35", 21.0 / 60, 0.3},
		{"Sixteenth percent", 1.0 / 16 * 100, 6.2},
		{"Five sixteenths percent", 5.0 / 16 * 100, 31.2},
		{"Odd tie rounds up", 0.75, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Round(tt.v, 1))
		})
	}
}
