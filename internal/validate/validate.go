// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/market-intel/pkg/types"
)

// checker is one isolated quality check over a report.
type checker struct {
	name string
	run  func() ([]types.Finding, []string)
}

// Validate runs every enabled checker over content and combines the results
// into a Verdict. Checkers run in a fixed order (length, sections,
// formatting, citations, content quality) so the finding list, and with it
// the score, is deterministic. A fault inside one checker is recorded as a
// finding instead of suppressing the remaining checkers.
func Validate(content string, c types.Criteria) types.Verdict {
	wc := wordCount(content)
	secs := ExtractSections(content)

	checkers := []checker{
		{"length", func() ([]types.Finding, []string) { return checkWordCount(wc, c) }},
		{"sections", func() ([]types.Finding, []string) { return checkSections(secs, c) }},
	}
	if c.CheckFormatting {
		checkers = append(checkers, checker{"formatting", func() ([]types.Finding, []string) { return checkFormatting(content) }})
	}
	if c.CheckCitations {
		checkers = append(checkers, checker{"citations", func() ([]types.Finding, []string) { return checkCitations(content) }})
	}
	checkers = append(checkers, checker{"quality", func() ([]types.Finding, []string) { return checkContentQuality(content) }})

	findings, recs := runCheckers(checkers)

	return types.Verdict{
		IsValid:         len(findings) == 0,
		Score:           Score(wc, c, len(findings), secs),
		WordCount:       wc,
		Findings:        findings,
		Recommendations: recs,
		Sections:        analyzeSections(secs, c),
	}
}

// runCheckers executes checkers in order and concatenates their findings and
// recommendations. A checker fault surfaces as a finding in its slot without
// disturbing the results of the others.
func runCheckers(checkers []checker) ([]types.Finding, []string) {
	var (
		findings []types.Finding
		recs     []string
	)
	for _, ch := range checkers {
		f, r := runChecker(ch)
		findings = append(findings, f...)
		recs = append(recs, r...)
	}
	return findings, recs
}

// runChecker executes one checker, converting a panic into an error finding
// so the other checkers' results survive.
func runChecker(ch checker) (findings []types.Finding, recs []string) {
	defer func() {
		if r := recover(); r != nil {
			findings = []types.Finding{{
				Category: types.FindingQuality,
				Message:  fmt.Sprintf("Internal fault in %s check: %v", ch.name, r),
			}}
			recs = []string{fmt.Sprintf("Report the %s check fault and re-run validation", ch.name)}
		}
	}()
	return ch.run()
}

// ParseCriteria interprets a JSON criteria-override payload. Overrides are
// applied on top of the defaults; unknown keys are ignored. A malformed
// payload falls back to the defaults entirely, with a warning written to w.
func ParseCriteria(overrides string, w io.Writer) types.Criteria {
	c := types.DefaultCriteria()
	if overrides == "" {
		return c
	}
	if err := json.Unmarshal([]byte(overrides), &c); err != nil {
		fmt.Fprintf(w, "warning: invalid criteria overrides, using defaults: %v\n", err)
		return types.DefaultCriteria()
	}
	return c
}
