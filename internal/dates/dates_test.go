package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2024-01-01", true},
		{"2024-12-31", true},
		{"2024-02-29", true},  // leap year
		{"2023-02-29", false}, // not a leap year
		{"2024-02-31", false},
		{"2024-13-01", false},
		{"24-01-01", false},
		{"2024/01/01", false},
		{"2024-1-1", false},
		{"", false},
		{"today", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.input))
		})
	}
}

func TestToday(t *testing.T) {
	got := Today()
	assert.True(t, Valid(got))
	assert.Equal(t, time.Now().Format(Layout), got)
}

func TestDisplayLabel(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"today", "2024-03-15", "今天"},
		{"yesterday", "2024-03-14", "昨天"},
		{"older date passes through", "2024-03-01", "2024-03-01"},
		{"future date passes through", "2024-03-16", "2024-03-16"},
		{"malformed input passes through", "not-a-date", "not-a-date"},
		{"empty input passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayLabelAt(tt.input, now))
		})
	}
}

func TestDisplayLabelAcrossMonthBoundary(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)
	assert.Equal(t, "昨天", displayLabelAt("2024-02-29", now))
}
