// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Criteria holds the thresholds and required structure a report is
// validated against. The zero value is not useful; start from
// DefaultCriteria and override fields as needed.
type Criteria struct {
	// MinWordCount is the minimum total word count for a report.
	MinWordCount int `json:"min_word_count" yaml:"min_word_count"`

	// MaxWordCount is the maximum total word count for a report.
	MaxWordCount int `json:"max_word_count" yaml:"max_word_count"`

	// RequiredSections lists section titles that must be present.
	RequiredSections []string `json:"required_sections" yaml:"required_sections"`

	// MinSectionLength is the minimum word count per section.
	MinSectionLength int `json:"min_section_length" yaml:"min_section_length"`

	// CheckCitations enables the citation presence check.
	CheckCitations bool `json:"check_citations" yaml:"check_citations"`

	// CheckFormatting enables the markdown formatting checks.
	CheckFormatting bool `json:"check_formatting" yaml:"check_formatting"`
}

// DefaultCriteria returns the enterprise-report defaults: 500-3000 words,
// three required sections, 50 words per section, all checks enabled.
func DefaultCriteria() Criteria {
	return Criteria{
		MinWordCount:     500,
		MaxWordCount:     3000,
		RequiredSections: []string{"Executive Summary", "Analysis", "Recommendations"},
		MinSectionLength: 50,
		CheckCitations:   true,
		CheckFormatting:  true,
	}
}

// FindingCategory identifies which checker produced a finding.
type FindingCategory string

const (
	FindingLength     FindingCategory = "length"
	FindingSections   FindingCategory = "sections"
	FindingFormatting FindingCategory = "formatting"
	FindingCitations  FindingCategory = "citations"
	FindingQuality    FindingCategory = "quality"
)

// Finding is one issue reported by a quality checker. Every finding carries
// the same flat scoring penalty; there are no severity tiers.
type Finding struct {
	// Category is the checker family that produced the finding.
	Category FindingCategory `json:"category" yaml:"category"`

	// Message describes the issue, including the measured values
	// (e.g. actual vs required word counts).
	Message string `json:"message" yaml:"message"`
}

// SectionAnalysis is the display-only per-section breakdown of a verdict.
// Its quality score does not feed into the overall report score.
type SectionAnalysis struct {
	// Name is the section title.
	Name string `json:"name" yaml:"name"`

	// WordCount is the section body's word count.
	WordCount int `json:"word_count" yaml:"word_count"`

	// MeetsMinimum reports whether WordCount reaches the per-section minimum.
	MeetsMinimum bool `json:"meets_minimum" yaml:"meets_minimum"`

	// HasStructure reports whether the body contains sentence punctuation.
	HasStructure bool `json:"has_structure" yaml:"has_structure"`

	// HasLists reports whether the body contains bullet-style list markers.
	HasLists bool `json:"has_lists" yaml:"has_lists"`

	// QualityScore is min(100, 100 * WordCount / MinSectionLength).
	QualityScore float64 `json:"quality_score" yaml:"quality_score"`
}

// Verdict is the complete output of one validation run.
//
// IsValid and Score are computed independently: IsValid is true only when
// Findings is empty, while Score is a weighted 0-100 number. A report can
// score 85 and still fail on a single finding. Downstream consumers depend
// on both fields, so the two are deliberately not reconciled.
type Verdict struct {
	// IsValid reports whether the document passed validation.
	IsValid bool `json:"is_valid" yaml:"is_valid"`

	// Score is the overall quality score, clamped to [0,100].
	Score float64 `json:"score" yaml:"score"`

	// WordCount is the document's total word count.
	WordCount int `json:"word_count" yaml:"word_count"`

	// Findings lists every issue in deterministic checker order.
	Findings []Finding `json:"findings" yaml:"findings"`

	// Recommendations lists actionable remediation strings, at least one
	// per finding category present in Findings.
	Recommendations []string `json:"recommendations" yaml:"recommendations"`

	// Sections is the per-section breakdown in document order.
	Sections []SectionAnalysis `json:"sections" yaml:"sections"`
}
