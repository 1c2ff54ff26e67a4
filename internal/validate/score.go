// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"github.com/pdiddy/market-intel/pkg/types"
)

// Score computes the overall quality score for a report. Starting at 100:
// an under-length report loses up to 20 points proportionally, an
// over-length one a flat 10; each entirely missing required section costs
// 15; each finding costs a flat 5 regardless of category; a report past
// 1.5x the minimum length gains a 5-point bonus. The result is clamped to
// [0,100].
//
// The score is computed independently of the pass/fail verdict: a report
// with one finding fails even at a high score.
func Score(wc int, c types.Criteria, findingCount int, secs Sections) float64 {
	score := 100.0

	if c.MinWordCount > 0 && wc < c.MinWordCount {
		score -= 20 * (1 - float64(wc)/float64(c.MinWordCount))
	} else if wc > c.MaxWordCount {
		score -= 10
	}

	for _, name := range c.RequiredSections {
		if !secs.Has(name) {
			score -= 15
		}
	}

	score -= float64(findingCount) * 5

	if wc > c.MinWordCount*3/2 {
		score += 5
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// analyzeSections produces the display-only per-section breakdown, in
// document order. The per-section quality score is not part of the overall
// report score.
func analyzeSections(secs Sections, c types.Criteria) []types.SectionAnalysis {
	var analysis []types.SectionAnalysis
	for _, name := range secs.Names() {
		body, _ := secs.Get(name)
		wc := wordCount(body)

		quality := 100.0
		if c.MinSectionLength > 0 {
			quality = float64(wc) / float64(c.MinSectionLength) * 100
			if quality > 100 {
				quality = 100
			}
		}

		analysis = append(analysis, types.SectionAnalysis{
			Name:         name,
			WordCount:    wc,
			MeetsMinimum: wc >= c.MinSectionLength,
			HasStructure: sentencePunctuation.MatchString(body),
			HasLists:     bulletPattern.MatchString(body),
			QualityScore: quality,
		})
	}
	return analysis
}
