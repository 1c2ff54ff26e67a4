// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/market-intel/internal/intel"
	"github.com/pdiddy/market-intel/pkg/types"
)

// Stage names of the market-intelligence chain.
const (
	StageCollect     = "collect"
	StageResearch    = "research"
	StageReport      = "report"
	StageQualityGate = "quality-gate"
	StageEdit        = "edit"
	StageTranslate   = "translate"
)

func collectInstructions(cfg types.EngagementConfig) string {
	var b strings.Builder
	b.WriteString(`Collect essential information for competitive analysis:
1. Confirm the client company name and basic details
2. Confirm the list of main competitors to analyze
3. Note any specific focus areas or preferences for the analysis
4. Produce a structured summary confirming all information is accurate

Engagement inputs:
`)
	fmt.Fprintf(&b, "- Client company: %s\n", cfg.Company)
	fmt.Fprintf(&b, "- Competitors: %s\n", strings.Join(cfg.Competitors, ", "))
	fmt.Fprintf(&b, "- Industry: %s\n", cfg.Industry)
	if len(cfg.FocusAreas) > 0 {
		fmt.Fprintf(&b, "- Focus areas: %s\n", strings.Join(cfg.FocusAreas, ", "))
	}
	return b.String()
}

func researchInstructions(cfg types.EngagementConfig, now time.Time) string {
	var b strings.Builder
	b.WriteString(DateContext(now, "full"))
	b.WriteString(`

Conduct comprehensive competitive research:
1. Research the client company: recent news, financial performance, market position
2. Research each competitor: business model, strengths, weaknesses, recent developments
3. Analyze market trends and competitive landscape
4. Synthesize findings into a comprehensive research dossier

When discussing financial data, always specify the actual year rather than
relative terms like 'last year' or 'recent year'. Cite every source.

Intelligence briefings for this engagement:

`)

	focus := "general"
	if len(cfg.FocusAreas) > 0 {
		focus = cfg.FocusAreas[0]
	}
	b.WriteString(intel.CompetitiveSearch("competitive analysis", cfg.Company, focus))
	b.WriteString("\n\n")

	companies := append([]string{cfg.Company}, cfg.Competitors...)
	b.WriteString(intel.FormatAnalysis(intel.AnalyzeMarket(companies, cfg.Industry, now)))
	return b.String()
}

const reportInstructions = `Create a professional competitive analysis report in markdown:
1. Structure the report with clear sections: Executive Summary, Analysis, and Recommendations
2. Use the research dossier to create comprehensive company profiles
3. Develop a comparative analysis highlighting key differentiators
4. Include actionable recommendations based on the analysis
5. Use headings, bold emphasis for key points, and bullet lists
6. Include quantitative data and cite sources with years

The report must be professional, well-formatted, and executive-ready.`

const editInstructions = `Perform final editorial review and polishing of the report:
1. Review the report for grammar, style, and clarity
2. Enhance language for executive-level presentation
3. Ensure consistent tone and professional flow
4. Maintain all factual content while improving presentation
5. Address every issue and recommendation raised by the quality gate

Return the complete polished report in markdown.`

func translateInstructions(cfg types.EngagementConfig, now time.Time) string {
	var b strings.Builder
	b.WriteString(DateContext(now, "date_only"))
	b.WriteString("\n\n")
	if cfg.TargetLanguage == "" {
		b.WriteString(`No translation was requested. Return the complete final report
text unchanged so it is fully displayed in the final answer.`)
		return b.String()
	}
	fmt.Fprintf(&b, `Translate the final report to %s:
1. Maintain professional tone and accuracy
2. Ensure business terminology is correctly translated
3. Provide both the original and the translated version
4. Always display the full report content in your final answer
`, cfg.TargetLanguage)
	return b.String()
}
