// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import (
	"strings"
	"testing"
	"time"
)

func TestDateContext(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 5, 0, 0, time.UTC)

	tests := []struct {
		format string
		want   []string
	}{
		{format: "date_only", want: []string{"Current date: August 31, 2026"}},
		{format: "year", want: []string{"Current year: 2026"}},
		{format: "quarter", want: []string{"Current quarter: Q3 2026"}},
		{format: "fiscal", want: []string{"FY2026, Q3 2026", "fiscal year calendars"}},
		{
			format: "full",
			want: []string{
				"August 31, 2026 at 14:05 UTC",
				"Current year: 2026",
				"Current quarter: Q3 2026",
				"'Previous year' refers to 2025",
				"Data from 2024 and earlier should be labeled as 'historical'",
			},
		},
		// Unknown formats fall back to the full rendering.
		{format: "bogus", want: []string{"IMPORTANT CONTEXT FOR ANALYSIS"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out := DateContext(now, tt.format)
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("DateContext(%q) missing %q in:\n%s", tt.format, want, out)
				}
			}
		})
	}
}

func TestDateContextQuarterBoundaries(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "Q1"},
		{time.March, "Q1"},
		{time.April, "Q2"},
		{time.December, "Q4"},
	}
	for _, tt := range tests {
		now := time.Date(2026, tt.month, 15, 0, 0, 0, 0, time.UTC)
		out := DateContext(now, "quarter")
		if !strings.Contains(out, tt.want) {
			t.Errorf("month %s: got %q, want quarter %s", tt.month, out, tt.want)
		}
	}
}
