package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "whole amount", amount: 85, expected: "85"},
		{name: "fractional amount", amount: 85.5, expected: "85.50"},
		{name: "zero", amount: 0, expected: "0"},
		{name: "large fractional", amount: 49794.5, expected: "49794.50"},
		{name: "negative balance", amount: -120, expected: "-120"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAmount(tt.amount))
		})
	}
}

func TestFormatMessages(t *testing.T) {
	assert.Contains(t, FormatSuccess("saved"), SuccessIcon)
	assert.Contains(t, FormatSuccess("saved"), "saved")
	assert.Contains(t, FormatError("boom"), ErrorIcon)
	assert.Contains(t, FormatError("boom"), "boom")
	assert.Contains(t, FormatInfo("note"), "note")
}
