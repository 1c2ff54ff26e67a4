// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"fmt"
	"strings"

	"github.com/pdiddy/market-intel/pkg/types"
)

// FormatVerdict renders a verdict as a human-readable markdown report:
// pass/fail banner, score, word count, numbered issues and recommendations,
// per-section breakdown, and a closing summary.
func FormatVerdict(v types.Verdict) string {
	var b strings.Builder

	status := "✅ PASSED"
	if !v.IsValid {
		status = "❌ FAILED"
	}
	fmt.Fprintf(&b, "# Report Validation Results: %s\n", status)
	fmt.Fprintf(&b, "**Overall Score:** %.1f/100\n", v.Score)
	fmt.Fprintf(&b, "**Word Count:** %d\n\n", v.WordCount)

	if len(v.Findings) > 0 {
		b.WriteString("## Issues Found\n")
		for i, f := range v.Findings {
			fmt.Fprintf(&b, "%d. %s\n", i+1, f.Message)
		}
		b.WriteString("\n")
	}

	if len(v.Recommendations) > 0 {
		b.WriteString("## Recommendations\n")
		for i, r := range v.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, r)
		}
		b.WriteString("\n")
	}

	if len(v.Sections) > 0 {
		b.WriteString("## Section Analysis\n")
		for _, s := range v.Sections {
			icon := "✅"
			if !s.MeetsMinimum {
				icon = "⚠️"
			}
			fmt.Fprintf(&b, "### %s %s\n", icon, s.Name)
			fmt.Fprintf(&b, "- Word Count: %d\n", s.WordCount)
			fmt.Fprintf(&b, "- Quality Score: %.1f/100\n", s.QualityScore)
			fmt.Fprintf(&b, "- Has Structure: %s\n\n", yesNo(s.HasStructure))
		}
	}

	b.WriteString("## Summary\n")
	if v.IsValid {
		b.WriteString("✅ Report meets all validation criteria and is ready for delivery.\n")
	} else {
		b.WriteString("❌ Report requires improvements before it meets quality standards.\n")
		b.WriteString("Please address the issues and recommendations listed above.\n")
	}

	b.WriteString("\n---\n")
	b.WriteString("*Validation performed by Report Quality Validator*\n")

	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
