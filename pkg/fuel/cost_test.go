package fuel

import (
	"errors"
	"math"
	"testing"
)

func TestComputeCost(t *testing.T) {
	tests := []struct {
		fuel, price float64
		expected    float64
	}{
		{8, 1.50, 12.00},
		{0, 1.50, 0},
		{10.5, 1.799, 18.89},
		{3.333, 3, 10.00},
		{40, 0, 0},
	}

	for _, test := range tests {
		result, err := ComputeCost(test.fuel, test.price)
		if err != nil {
			t.Errorf("ComputeCost(%g, %g) unexpected error: %v", test.fuel, test.price, err)
			continue
		}
		if result != test.expected {
			t.Errorf("ComputeCost(%g, %g) = %f, expected %f", test.fuel, test.price, result, test.expected)
		}
	}
}

func TestComputeCostInvalidInput(t *testing.T) {
	tests := [][2]float64{
		{math.NaN(), 1},
		{1, math.NaN()},
		{math.Inf(1), 1},
		{-1, 1.5},
		{1, -1.5},
		{1e200, 1e200},
	}

	for _, test := range tests {
		if _, err := ComputeCost(test[0], test[1]); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ComputeCost(%g, %g) error = %v, expected ErrInvalidInput", test[0], test[1], err)
		}
	}
}

func TestFormatCost(t *testing.T) {
	tests := []struct {
		cost     float64
		expected string
	}{
		{12, "12.00"},
		{18.89, "18.89"},
		{0.5, "0.50"},
		{0, "0.00"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
	}

	for _, test := range tests {
		if s := FormatCost(test.cost); s != test.expected {
			t.Errorf("FormatCost(%g) = %q, expected %q", test.cost, s, test.expected)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		hasError bool
	}{
		{"100", 100, false},
		{" 8.5 ", 8.5, false},
		{"0", 0, false},
		{"1e3", 1000, false},
		{"abc", 0, true},
		{"", 0, true},
		{"8,5", 0, true},
		{"12abc", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"-3", 0, true},
		{"0x1p3", 0, true},
		{"0x_1p3", 0, true},
		{"1_000", 0, true},
		{"Infinity", 0, true},
	}

	for _, test := range tests {
		result, err := ParseValue("distance", test.input)

		if test.hasError {
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ParseValue(%q) error = %v, expected ErrInvalidInput", test.input, err)
			}
		} else {
			if err != nil {
				t.Errorf("ParseValue(%q) unexpected error: %v", test.input, err)
			}
			if result != test.expected {
				t.Errorf("ParseValue(%q) = %f, expected %f", test.input, result, test.expected)
			}
		}
	}
}
