// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"strings"
	"testing"

	"github.com/pdiddy/market-intel/pkg/types"
)

func findingMessages(findings []types.Finding) []string {
	msgs := make([]string, len(findings))
	for i, f := range findings {
		msgs[i] = f.Message
	}
	return msgs
}

func containsMessage(findings []types.Finding, substr string) bool {
	for _, f := range findings {
		if strings.Contains(f.Message, substr) {
			return true
		}
	}
	return false
}

func TestCheckWordCount(t *testing.T) {
	c := types.DefaultCriteria()

	tests := []struct {
		name     string
		wc       int
		wantMsg  string
		wantNone bool
	}{
		{name: "below minimum", wc: 120, wantMsg: "Report is too short: 120 words (minimum: 500)"},
		{name: "above maximum", wc: 3500, wantMsg: "Report is too long: 3500 words (maximum: 3000)"},
		{name: "at minimum", wc: 500, wantNone: true},
		{name: "at maximum", wc: 3000, wantNone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings, recs := checkWordCount(tt.wc, c)
			if tt.wantNone {
				if len(findings) != 0 {
					t.Fatalf("unexpected findings: %v", findingMessages(findings))
				}
				return
			}
			if len(findings) != 1 || findings[0].Message != tt.wantMsg {
				t.Fatalf("findings = %v, want [%s]", findingMessages(findings), tt.wantMsg)
			}
			if len(recs) != 1 {
				t.Fatalf("want one recommendation, got %v", recs)
			}
		})
	}
}

func TestCheckSections(t *testing.T) {
	c := types.Criteria{
		RequiredSections: []string{"Executive Summary", "Analysis"},
		MinSectionLength: 5,
	}

	secs := ExtractSections("# Executive Summary\none two three four five words here\n# Extra\nstuff\n")
	findings, recs := checkSections(secs, c)

	if len(findings) != 1 {
		t.Fatalf("findings = %v, want one missing-section finding", findingMessages(findings))
	}
	if findings[0].Message != "Missing required section: Analysis" {
		t.Errorf("finding = %q", findings[0].Message)
	}
	if len(recs) != 1 || !strings.Contains(recs[0], "Analysis") {
		t.Errorf("recs = %v", recs)
	}
}

func TestCheckSectionsTooShort(t *testing.T) {
	c := types.Criteria{
		RequiredSections: []string{"Analysis"},
		MinSectionLength: 10,
	}

	secs := ExtractSections("# Analysis\nonly four words here\n")
	findings, _ := checkSections(secs, c)

	if len(findings) != 1 {
		t.Fatalf("findings = %v", findingMessages(findings))
	}
	want := "Section 'Analysis' is too short: 4 words"
	if findings[0].Message != want {
		t.Errorf("finding = %q, want %q", findings[0].Message, want)
	}
}

func TestCheckFormatting(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{
			name:    "fully formatted",
			content: "# Title\nSome **bold** text.\n- a bullet\n",
			want:    0,
		},
		{
			name:    "plain prose accumulates all three",
			content: "just plain text without any structure at all",
			want:    3,
		},
		{
			name:    "heading only",
			content: "# Title\nplain body\n",
			want:    2,
		},
		{
			name:    "bold and bullets but no heading",
			content: "**key point**\n- item\n",
			want:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings, _ := checkFormatting(tt.content)
			if len(findings) != tt.want {
				t.Fatalf("got %d findings %v, want %d", len(findings), findingMessages(findings), tt.want)
			}
		})
	}
}

func TestCheckCitations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		pass    bool
	}{
		{name: "markdown link", content: "see [report](https://acme.test/annual)", pass: true},
		{name: "source token", content: "Source: industry filings", pass: true},
		{name: "attribution phrase", content: "according to analysts, growth continues", pass: true},
		{name: "bare year", content: "revenue grew in 2025", pass: true},
		{name: "no citation signals", content: "growth continues with no attribution at all", pass: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings, _ := checkCitations(tt.content)
			if tt.pass && len(findings) != 0 {
				t.Fatalf("unexpected findings: %v", findingMessages(findings))
			}
			if !tt.pass && len(findings) != 1 {
				t.Fatalf("want one finding, got %v", findingMessages(findings))
			}
		})
	}
}

func TestCheckContentQuality(t *testing.T) {
	t.Run("placeholder tokens", func(t *testing.T) {
		findings, _ := checkContentQuality("Revenue grew 12% in 2025. TODO fill in the rest of this varied sentence.")
		if !containsMessage(findings, "placeholder text or URLs: TODO") {
			t.Fatalf("findings = %v", findingMessages(findings))
		}
	})

	t.Run("generic template pattern", func(t *testing.T) {
		findings, _ := checkContentQuality("Latest financial results and performance metrics for Acme show 12% growth in 2025.")
		if !containsMessage(findings, "generic placeholder content matching pattern: Latest financial results and performance metrics for") {
			t.Fatalf("findings = %v", findingMessages(findings))
		}
	})

	t.Run("pattern message omits regex flags", func(t *testing.T) {
		findings, _ := checkContentQuality("See [Acme finantstulemused 2025] for the 12% figure and varied commentary.")
		if !containsMessage(findings, "generic placeholder content") {
			t.Fatalf("findings = %v", findingMessages(findings))
		}
		for _, f := range findings {
			if strings.Contains(f.Message, "(?i)") {
				t.Fatalf("regex flag leaked into message: %s", f.Message)
			}
		}
	})

	t.Run("choppy flow", func(t *testing.T) {
		content := "Good. Fine. Yes. Done. Sure. Okay. Overall revenue improved considerably by 12% during 2025 across divisions."
		findings, _ := checkContentQuality(content)
		if !containsMessage(findings, "very short sentences") {
			t.Fatalf("findings = %v", findingMessages(findings))
		}
	})

	t.Run("repetitive language", func(t *testing.T) {
		content := strings.Repeat("growth growth growth growth 2025. ", 10)
		findings, _ := checkContentQuality(content)
		if !containsMessage(findings, "repetitive") {
			t.Fatalf("findings = %v", findingMessages(findings))
		}
	})

	t.Run("missing quantitative data", func(t *testing.T) {
		findings, _ := checkContentQuality("The company performs well and customers remain broadly satisfied with services.")
		if !containsMessage(findings, "quantitative data") {
			t.Fatalf("findings = %v", findingMessages(findings))
		}
	})

	t.Run("clean content", func(t *testing.T) {
		content := "Acme grew revenue 12% to $40M during 2025, while margins expanded steadily across all divisions and product lines."
		findings, _ := checkContentQuality(content)
		if len(findings) != 0 {
			t.Fatalf("unexpected findings: %v", findingMessages(findings))
		}
	})
}
