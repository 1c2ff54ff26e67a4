// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/market-intel/pkg/types"
)

// Markdown structure patterns.
var (
	headerPattern = regexp.MustCompile(`(?m)^#+\s+(.+)$`)
	boldPattern   = regexp.MustCompile(`\*\*[^*]+\*\*`)
	bulletPattern = regexp.MustCompile(`(?m)^\s*[-*+]`)
)

// citationPatterns are the signals that a report cites its sources. A single
// match from any pattern satisfies the citation check.
var citationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\[.*\]\(http.*\)`), // markdown links
	regexp.MustCompile(`(?i)Source:`),
	regexp.MustCompile(`(?i)According to`),
	regexp.MustCompile(`\d{4}`), // a year
}

// placeholderTokens are literal markers of unfinished or template content.
var placeholderTokens = []string{
	"TODO", "TBD", "PLACEHOLDER", "[INSERT", "EXAMPLE", "https://example.com",
}

// genericPatterns catch auto-generated filler text that has shown up in
// low-effort drafts, including the Estonian bracket placeholders. The display
// text goes into finding messages, without the case-insensitivity flag.
var genericPatterns = []struct {
	re      *regexp.Regexp
	display string
}{
	{regexp.MustCompile(`(?i)https://example\.com/[^)\s]*`), `https://example\.com/[^)\s]*`},
	{regexp.MustCompile(`(?i)\[.*finantstulemused.*\]`), `\[.*finantstulemused.*\]`},
	{regexp.MustCompile(`(?i)\[.*financial.*results.*\]`), `\[.*financial.*results.*\]`},
	{regexp.MustCompile(`(?i)Latest financial results and performance metrics for`), `Latest financial results and performance metrics for`},
	{regexp.MustCompile(`(?i)Strategic initiatives and market positioning for`), `Strategic initiatives and market positioning for`},
}

var (
	sentenceSplit       = regexp.MustCompile(`[.!?]+`)
	sentencePunctuation = regexp.MustCompile(`[.!?]`)
	quantitativeData    = regexp.MustCompile(`\d+%|\$\d+|\d+\.\d+|\d{4}`)
)

// checkWordCount flags reports outside the configured length bounds.
func checkWordCount(wc int, c types.Criteria) ([]types.Finding, []string) {
	switch {
	case wc < c.MinWordCount:
		return []types.Finding{{
				Category: types.FindingLength,
				Message:  fmt.Sprintf("Report is too short: %d words (minimum: %d)", wc, c.MinWordCount),
			}},
			[]string{fmt.Sprintf("Expand content to reach at least %d words", c.MinWordCount)}
	case wc > c.MaxWordCount:
		return []types.Finding{{
				Category: types.FindingLength,
				Message:  fmt.Sprintf("Report is too long: %d words (maximum: %d)", wc, c.MaxWordCount),
			}},
			[]string{fmt.Sprintf("Condense content to stay under %d words", c.MaxWordCount)}
	}
	return nil, nil
}

// checkSections flags required sections that are absent or too short.
// Absent and too-short are distinct findings: only absence carries the
// missing-section scoring penalty.
func checkSections(secs Sections, c types.Criteria) ([]types.Finding, []string) {
	var (
		findings []types.Finding
		recs     []string
	)
	for _, name := range c.RequiredSections {
		body, ok := secs.Get(name)
		if !ok {
			findings = append(findings, types.Finding{
				Category: types.FindingSections,
				Message:  fmt.Sprintf("Missing required section: %s", name),
			})
			recs = append(recs, fmt.Sprintf("Add a comprehensive %s section", name))
			continue
		}
		if wc := wordCount(body); wc < c.MinSectionLength {
			findings = append(findings, types.Finding{
				Category: types.FindingSections,
				Message:  fmt.Sprintf("Section '%s' is too short: %d words", name, wc),
			})
			recs = append(recs, fmt.Sprintf("Expand the %s section with more detailed content", name))
		}
	}
	return findings, recs
}

// checkFormatting flags the absence of headings, bold spans, and bullet
// lists. Each absence is an independent finding.
func checkFormatting(content string) ([]types.Finding, []string) {
	var findings []types.Finding

	if !headerPattern.MatchString(content) {
		findings = append(findings, types.Finding{
			Category: types.FindingFormatting,
			Message:  "No markdown headers found - report lacks structure",
		})
	}
	if !boldPattern.MatchString(content) {
		findings = append(findings, types.Finding{
			Category: types.FindingFormatting,
			Message:  "No bold text formatting found - consider emphasizing key points",
		})
	}
	if !bulletPattern.MatchString(content) {
		findings = append(findings, types.Finding{
			Category: types.FindingFormatting,
			Message:  "No bullet points found - consider using lists for better readability",
		})
	}

	if len(findings) == 0 {
		return nil, nil
	}
	return findings, []string{"Improve markdown formatting and structure"}
}

// checkCitations flags the complete absence of citation signals. Any single
// matching pattern passes the check.
func checkCitations(content string) ([]types.Finding, []string) {
	for _, p := range citationPatterns {
		if p.MatchString(content) {
			return nil, nil
		}
	}
	return []types.Finding{{
			Category: types.FindingCitations,
			Message:  "No citations or source references found",
		}},
		[]string{"Add proper citations and source references"}
}

// checkContentQuality flags generic-content red flags: placeholder tokens,
// template filler, choppy flow, repetitive language, and missing
// quantitative data. Each condition contributes at most one finding.
func checkContentQuality(content string) ([]types.Finding, []string) {
	var findings []types.Finding
	lower := strings.ToLower(content)

	for _, token := range placeholderTokens {
		if strings.Contains(lower, strings.ToLower(token)) {
			findings = append(findings, types.Finding{
				Category: types.FindingQuality,
				Message:  fmt.Sprintf("Contains placeholder text or URLs: %s", token),
			})
		}
	}

	for _, p := range genericPatterns {
		if p.re.MatchString(content) {
			findings = append(findings, types.Finding{
				Category: types.FindingQuality,
				Message:  fmt.Sprintf("Contains generic placeholder content matching pattern: %s", p.display),
			})
		}
	}

	short := 0
	for _, s := range sentenceSplit.Split(content, -1) {
		if n := wordCount(s); n > 0 && n < 3 {
			short++
		}
	}
	if short > 5 {
		findings = append(findings, types.Finding{
			Category: types.FindingQuality,
			Message:  "Contains many very short sentences - consider improving flow",
		})
	}

	words := strings.Fields(lower)
	if len(words) > 0 {
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			unique[w] = struct{}{}
		}
		if float64(len(unique))/float64(len(words)) < 0.3 {
			findings = append(findings, types.Finding{
				Category: types.FindingQuality,
				Message:  "Content appears repetitive - consider varying language",
			})
		}
	}

	if !quantitativeData.MatchString(content) {
		findings = append(findings, types.Finding{
			Category: types.FindingQuality,
			Message:  "Report lacks specific quantitative data - consider adding metrics, percentages, or dates",
		})
	}

	if len(findings) == 0 {
		return nil, nil
	}
	return findings, []string{"Improve content quality and professional presentation"}
}
