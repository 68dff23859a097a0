package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithPrecision(t *testing.T) {
	tests := []struct {
		name      string
		input     float64
		precision int
		expected  float64
	}{
		{name: "whole percent rounds up", input: 66.666, precision: 0, expected: 67},
		{name: "whole percent rounds down", input: 33.333, precision: 0, expected: 33},
		{name: "one decimal", input: 66.666, precision: 1, expected: 66.7},
		{name: "two decimals", input: 33.333, precision: 2, expected: 33.33},
		{name: "zero stays zero", input: 0, precision: 2, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithPrecision(tt.input, tt.precision))
		})
	}
}

func TestParseIntLoose(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		ok       bool
	}{
		{name: "plain integer", input: "3", expected: 3, ok: true},
		{name: "fractional quantity", input: "3.0", expected: 3, ok: true},
		{name: "truncates fraction", input: "2.7", expected: 2, ok: true},
		{name: "empty", input: "", expected: 0, ok: false},
		{name: "garbage", input: "abc", expected: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseIntLoose(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
