// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import (
	"fmt"
	"time"
)

// DateContext renders current-date context for temporal grounding of
// research and translation instructions. Supported formats: "full",
// "date_only", "year", "quarter", "fiscal". Unknown formats fall back
// to "full".
func DateContext(now time.Time, format string) string {
	now = now.UTC()
	year := now.Year()
	quarter := (int(now.Month())-1)/3 + 1

	switch format {
	case "date_only":
		return fmt.Sprintf("Current date: %s", now.Format("January 2, 2006"))
	case "year":
		return fmt.Sprintf("Current year: %d", year)
	case "quarter":
		return fmt.Sprintf("Current quarter: Q%d %d", quarter, year)
	case "fiscal":
		return fmt.Sprintf("Current fiscal context: FY%d, Q%d %d. "+
			"Note: Most companies follow calendar year fiscal cycles, but verify "+
			"specific company fiscal year calendars for accurate financial analysis.",
			year, quarter, year)
	default:
		return fmt.Sprintf("Current date and time: %s at %s\n"+
			"Current year: %d\n"+
			"Current quarter: Q%d %d\n"+
			"Fiscal year context: FY%d\n\n"+
			"IMPORTANT CONTEXT FOR ANALYSIS:\n"+
			"- When analyzing 'recent' financial data, focus on %d and late %d\n"+
			"- 'Latest' quarterly data should be from Q%d %d or the most recent available\n"+
			"- 'Current year' performance refers to %d data\n"+
			"- 'Previous year' refers to %d\n"+
			"- Data from %d and earlier should be labeled as 'historical'\n"+
			"- Always specify actual years (e.g., '%d') rather than relative terms",
			now.Format("January 2, 2006"), now.Format("15:04 UTC"),
			year, quarter, year, year,
			year, year-1, quarter, year, year, year-1, year-2, year)
	}
}
