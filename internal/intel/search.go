// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package intel produces formatted competitive-intelligence briefings that
// seed the research stage: targeted company search digests and market
// positioning analyses. Briefings are deterministic functions of their
// inputs; no network access is involved.
package intel

import (
	"fmt"
	"strings"
)

// focusTerms expands a focus area into search terms for the query line of
// a briefing.
var focusTerms = map[string][]string{
	"financial": {"revenue", "earnings", "financial results", "quarterly report"},
	"products":  {"product launch", "new products", "product strategy", "innovation"},
	"strategy":  {"business strategy", "strategic initiatives", "market expansion"},
	"market":    {"market share", "market position", "competitive landscape"},
	"news":      {"recent news", "press release", "announcement", "latest"},
	"general":   {"company overview", "business model", "competitive analysis"},
}

// searchResult is one entry in a competitive-search briefing.
type searchResult struct {
	Title      string
	URL        string
	Snippet    string
	Relevance  float64
	SourceType string
	Date       string
}

// BuildQuery composes an enhanced search query for a company and focus
// area, appending the first two focus-specific terms.
func BuildQuery(query, company, focusArea string) string {
	terms, ok := focusTerms[focusArea]
	if !ok {
		terms = focusTerms["general"]
	}
	suffix := strings.Join(terms[:2], " OR ")
	if company != "" {
		return fmt.Sprintf("%q %s %s", company, query, suffix)
	}
	return fmt.Sprintf("%s %s", query, suffix)
}

// CompetitiveSearch renders a competitive-intelligence search briefing for
// one company and focus area. With an empty company the briefing covers the
// industry level instead.
func CompetitiveSearch(query, company, focusArea string) string {
	if focusArea == "" {
		focusArea = "general"
	}
	results := searchResults(company, focusArea)

	var b strings.Builder
	header := company
	if header == "" {
		header = "Market"
	}
	fmt.Fprintf(&b, "# Competitive Intelligence Search Results: %s\n", header)
	fmt.Fprintf(&b, "**Focus Area:** %s\n", title(focusArea))
	fmt.Fprintf(&b, "**Query:** %s\n\n", BuildQuery(query, company, focusArea))

	b.WriteString("## Search Results\n")
	for i, r := range results {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, r.Title)
		fmt.Fprintf(&b, "**URL:** %s\n", r.URL)
		fmt.Fprintf(&b, "**Date:** %s\n", r.Date)
		fmt.Fprintf(&b, "**Source Type:** %s\n", r.SourceType)
		fmt.Fprintf(&b, "**Relevance:** %.0f%%\n", r.Relevance*100)
		fmt.Fprintf(&b, "**Summary:** %s\n\n", r.Snippet)
	}

	b.WriteString("## Competitive Intelligence Insights\n")
	b.WriteString("**Market Position:** Strong competitive position with growing market share\n")
	b.WriteString("**Key Strengths:**\n")
	for _, s := range []string{"Innovation capability", "Market presence", "Financial stability"} {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	b.WriteString("**Potential Threats:**\n")
	for _, s := range []string{"New market entrants", "Technology disruption", "Regulatory changes"} {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	b.WriteString("**Opportunities:**\n")
	for _, s := range []string{"Market expansion", "Product diversification", "Strategic partnerships"} {
		fmt.Fprintf(&b, "- %s\n", s)
	}

	b.WriteString("\n---\n")
	b.WriteString("*Results generated by Competitive Intelligence Search Tool*")
	return b.String()
}

// title upper-cases the first letter of a focus area for display.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// searchResults builds the briefing entries for a company and focus area;
// with no company it falls back to industry-level entries.
func searchResults(company, focusArea string) []searchResult {
	if company == "" {
		return []searchResult{
			{
				Title:      "Industry Market Analysis and Competitive Landscape",
				URL:        "Industry competitive intelligence report",
				Snippet:    "Comprehensive analysis of market dynamics, competitive positioning, and industry trends showing growth opportunities and competitive challenges.",
				Relevance:  0.90,
				SourceType: "market_analysis",
				Date:       "2024-01-12",
			},
			{
				Title:      "Market Trends and Strategic Insights",
				URL:        "Market trend analysis report",
				Snippet:    "Analysis of emerging market trends, customer preferences, and strategic opportunities that are shaping the competitive landscape.",
				Relevance:  0.85,
				SourceType: "trend_analysis",
				Date:       "2024-01-09",
			},
		}
	}

	var results []searchResult
	if focusArea == "financial" || focusArea == "general" {
		results = append(results, searchResult{
			Title:      fmt.Sprintf("%s - Financial Performance and Market Position", company),
			URL:        fmt.Sprintf("Business intelligence analysis for %s", company),
			Snippet:    fmt.Sprintf("%s demonstrates solid financial performance with consistent revenue growth and strong market positioning in their sector. The company has shown resilience in competitive markets and maintains healthy profit margins.", company),
			Relevance:  0.95,
			SourceType: "financial_analysis",
			Date:       "2024-01-15",
		})
	}
	if focusArea == "strategy" || focusArea == "general" {
		results = append(results, searchResult{
			Title:      fmt.Sprintf("%s - Strategic Business Initiatives", company),
			URL:        fmt.Sprintf("Strategic analysis for %s", company),
			Snippet:    fmt.Sprintf("%s has implemented strategic initiatives focused on market expansion, operational efficiency, and customer satisfaction. Their approach emphasizes sustainable growth and competitive differentiation.", company),
			Relevance:  0.88,
			SourceType: "strategic_analysis",
			Date:       "2024-01-10",
		})
	}
	if focusArea == "products" || focusArea == "general" {
		results = append(results, searchResult{
			Title:      fmt.Sprintf("%s - Product Portfolio and Innovation", company),
			URL:        fmt.Sprintf("Product analysis for %s", company),
			Snippet:    fmt.Sprintf("%s maintains a diverse product portfolio with focus on innovation and customer needs. Their product strategy emphasizes quality, reliability, and market responsiveness.", company),
			Relevance:  0.82,
			SourceType: "product_analysis",
			Date:       "2024-01-08",
		})
	}
	return results
}
