package ui

import (
	"errors"
	"testing"

	"github.com/sgaunet/humantime/pkg/humanize"
)

func TestValidatePrecisionAnswer(t *testing.T) {
	tests := []struct {
		name    string
		answer  interface{}
		wantErr bool
	}{
		{"one", "1", false},
		{"fraction", "0.75", false},
		{"padded", " 0.5 ", false},
		{"zero", "0", true},
		{"above one", "1.2", true},
		{"negative", "-0.3", true},
		{"not a number", "high", true},
		{"not text", 0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrecisionAnswer(tt.answer)
			if tt.wantErr {
				if !errors.Is(err, humanize.ErrInvalidPrecision) {
					t.Errorf("Expected ErrInvalidPrecision, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestDefaultOption(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		options  []string
		expected string
	}{
		{"empty current", "", []string{"a", "b"}, "a"},
		{"known current", "b", []string{"a", "b"}, "b"},
		{"unknown current", "z", []string{"a", "b"}, "a"},
		{"no options", "z", nil, "z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := defaultOption(tt.current, "a", tt.options...); got != tt.expected {
				t.Errorf("defaultOption = %q, expected %q", got, tt.expected)
			}
		})
	}
}
