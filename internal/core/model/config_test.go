package model

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultTimerConfig(t *testing.T) {
	config := DefaultTimerConfig()
	if config.WorkSeconds() != 1500 {
		t.Fatalf("expected 1500 work seconds, got %d", config.WorkSeconds())
	}
	if config.BreakSeconds() != 300 {
		t.Fatalf("expected 300 break seconds, got %d", config.BreakSeconds())
	}
}

func TestNewTimerConfig(t *testing.T) {
	tests := []struct {
		name      string
		work      int
		brk       int
		wantError bool
	}{
		{"defaults", 25, 5, false},
		{"one minute each", 1, 1, false},
		{"upper bound", MaxMinutes, MaxMinutes, false},
		{"zero work", 0, 5, true},
		{"zero break", 25, 0, true},
		{"negative work", -1, 5, true},
		{"negative break", 25, -10, true},
		{"too long", MaxMinutes + 1, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := NewTimerConfig(tt.work, tt.brk)
			if tt.wantError {
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if config.Work != time.Duration(tt.work)*time.Minute || config.Break != time.Duration(tt.brk)*time.Minute {
				t.Fatalf("unexpected config %+v", config)
			}
			if config.WorkMinutes() != tt.work || config.BreakMinutes() != tt.brk {
				t.Fatalf("minute views do not round-trip: %d/%d", config.WorkMinutes(), config.BreakMinutes())
			}
		})
	}
}

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		input     string
		want      int
		wantError bool
	}{
		{"25", 25, false},
		{" 5 ", 5, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"2.5", 0, true},
		{"99999999999999999999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMinutes(tt.input)
			if tt.wantError {
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Fatalf("expected ErrInvalidConfiguration for %q, got %v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
