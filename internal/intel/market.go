// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package intel

import (
	"fmt"
	"strings"
	"time"
)

// CompanyInsight is the positioning assessment for one company.
type CompanyInsight struct {
	Name               string
	MarketPosition     string
	Strengths          []string
	Weaknesses         []string
	RecentDevelopments []string
	Advantages         []string
}

// MarketAnalysis is a complete market positioning analysis.
type MarketAnalysis struct {
	Industry      string
	AnalysisDate  string
	Overview      string
	KeyTrends     []string
	Dynamics      string
	Companies     []CompanyInsight
	Opportunities []string
	Threats       []string
	Outlook       string
}

// industryTrends maps industry keywords to sector-specific trend lists.
var industryTrends = map[string][]string{
	"technology": {
		"Accelerated digital transformation and cloud adoption",
		"Increased focus on AI and machine learning integration",
		"Growing emphasis on cybersecurity and data privacy",
		"Shift towards subscription-based business models",
		"Rising demand for remote work solutions",
	},
	"finance": {
		"Digital banking and fintech innovation acceleration",
		"Regulatory compliance and risk management focus",
		"Cryptocurrency and blockchain adoption",
		"Open banking and API-first approaches",
		"ESG investing and sustainable finance growth",
	},
	"healthcare": {
		"Telemedicine and digital health platform expansion",
		"AI-driven diagnostics and personalized medicine",
		"Value-based care model adoption",
		"Healthcare data interoperability initiatives",
		"Preventive care and wellness program focus",
	},
	"retail": {
		"Omnichannel customer experience integration",
		"Supply chain resilience and localization",
		"Sustainable and ethical sourcing practices",
		"Personalization through data analytics",
		"Direct-to-consumer brand strategies",
	},
	"manufacturing": {
		"Industry 4.0 and smart manufacturing adoption",
		"Supply chain digitization and automation",
		"Sustainability and circular economy practices",
		"Predictive maintenance and IoT integration",
		"Reshoring and supply chain diversification",
	},
}

var defaultTrends = []string{
	"Digital transformation and technology adoption",
	"Sustainability and ESG focus",
	"Customer experience optimization",
	"Data-driven decision making",
	"Agile and flexible business models",
}

// AnalyzeMarket builds a market positioning analysis for the companies in
// an industry. The analysis is a pure function of companies, industry, and
// the supplied date.
func AnalyzeMarket(companies []string, industry string, now time.Time) MarketAnalysis {
	insights := make([]CompanyInsight, 0, len(companies))
	for _, company := range companies {
		insights = append(insights, analyzeCompany(company, industry))
	}

	return MarketAnalysis{
		Industry:     industry,
		AnalysisDate: now.Format("2006-01-02"),
		Overview: fmt.Sprintf("The %s industry is experiencing dynamic growth and transformation, "+
			"with %d key players competing in an evolving market landscape. Market dynamics are "+
			"driven by technological innovation, customer demand evolution, and strategic positioning "+
			"initiatives that create both opportunities and challenges for market participants.",
			industry, len(companies)),
		KeyTrends: trendsFor(industry),
		Dynamics:  competitiveDynamics(companies, industry),
		Companies: insights,
		Opportunities: []string{
			"Market expansion through digital transformation",
			"Product diversification and innovation opportunities",
			"Strategic partnerships and alliance development",
			"Emerging market segments and customer needs",
			"Technology adoption and competitive advantage",
		},
		Threats: []string{
			"New market entrants and competitive pressure",
			"Technology disruption and market changes",
			"Regulatory changes and compliance requirements",
			"Economic uncertainty and market volatility",
			"Customer preference shifts and expectations",
		},
		Outlook: fmt.Sprintf("The %s market outlook remains positive with continued growth expected "+
			"driven by innovation, digital transformation, and evolving customer needs. Companies "+
			"that successfully adapt to market changes and leverage competitive advantages are "+
			"well-positioned for sustained growth and market success.", industry),
	}
}

// trendsFor picks the trend list whose industry keyword appears in the
// industry name, falling back to the generic trends.
func trendsFor(industry string) []string {
	key := strings.ToLower(industry)
	for k, trends := range industryTrends {
		if strings.Contains(key, k) {
			return trends
		}
	}
	return defaultTrends
}

// analyzeCompany classifies a company by name pattern and assembles its
// positioning insight.
func analyzeCompany(company, industry string) CompanyInsight {
	lower := strings.ToLower(company)
	containsAny := func(terms ...string) bool {
		for _, t := range terms {
			if strings.Contains(lower, t) {
				return true
			}
		}
		return false
	}

	var (
		position   string
		strengths  []string
		weaknesses []string
	)
	switch {
	case containsAny("corp", "corporation", "inc", "ltd", "group"):
		position = "Established market leader with strong brand recognition"
		strengths = []string{"Market leadership", "Financial stability", "Brand recognition", "Extensive resources"}
		weaknesses = []string{"Potential bureaucracy", "Slower innovation cycles"}
	case containsAny("tech", "digital", "software", "systems", "solutions"):
		position = "Technology-focused innovator with competitive differentiation"
		strengths = []string{"Innovation capability", "Technical expertise", "Agile operations", "Digital-first approach"}
		weaknesses = []string{"Limited market reach", "Resource constraints"}
	case containsAny("eesti", "baltic", "nordic", "regional"):
		position = "Regional market specialist with local expertise"
		strengths = []string{"Local market knowledge", "Regional partnerships", "Cultural understanding", "Specialized focus"}
		weaknesses = []string{"Limited geographic reach", "Scale constraints"}
	default:
		position = "Competitive market participant with growth potential"
		strengths = []string{"Market agility", "Customer focus", "Operational efficiency", "Growth potential"}
		weaknesses = []string{"Market share limitations", "Resource competition"}
	}

	return CompanyInsight{
		Name:           company,
		MarketPosition: position,
		Strengths:      strengths,
		Weaknesses:     weaknesses,
		RecentDevelopments: []string{
			fmt.Sprintf("Strategic expansion in %s sector", industry),
			"Investment in digital transformation initiatives",
			"Partnership development for market growth",
			"Product portfolio enhancement and innovation",
		},
		Advantages: []string{
			"Strong customer relationships and loyalty",
			"Specialized industry expertise and knowledge",
			"Efficient operational model and cost structure",
			"Strategic market positioning and differentiation",
		},
	}
}

// competitiveDynamics characterizes the competition level by the number of
// players under analysis.
func competitiveDynamics(companies []string, industry string) string {
	switch {
	case len(companies) >= 4:
		return fmt.Sprintf("The %s industry demonstrates intense competitive dynamics with %d major "+
			"players competing for market share. Competition is driven by innovation, customer "+
			"service excellence, and strategic positioning.", industry, len(companies))
	case len(companies) >= 2:
		return fmt.Sprintf("The %s sector shows balanced competitive dynamics with established "+
			"players maintaining stable market positions while new entrants create innovation "+
			"pressure.", industry)
	default:
		return fmt.Sprintf("The %s market is experiencing evolving competitive dynamics as "+
			"traditional players adapt to new market conditions and emerging technologies.", industry)
	}
}

// FormatAnalysis renders a market analysis as a markdown briefing.
func FormatAnalysis(a MarketAnalysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Market Analysis Report: %s\n", a.Industry)
	fmt.Fprintf(&b, "**Analysis Date:** %s\n\n", a.AnalysisDate)

	b.WriteString("## Market Overview\n")
	b.WriteString(a.Overview + "\n\n")

	b.WriteString("## Key Industry Trends\n")
	writeList(&b, a.KeyTrends)
	b.WriteString("\n")

	b.WriteString("## Competitive Dynamics\n")
	b.WriteString(a.Dynamics + "\n\n")

	b.WriteString("## Company Analysis\n")
	for _, c := range a.Companies {
		fmt.Fprintf(&b, "### %s\n", c.Name)
		fmt.Fprintf(&b, "**Market Position:** %s\n\n", c.MarketPosition)
		b.WriteString("**Strengths:**\n")
		writeList(&b, c.Strengths)
		b.WriteString("\n**Areas for Improvement:**\n")
		writeList(&b, c.Weaknesses)
		b.WriteString("\n**Competitive Advantages:**\n")
		writeList(&b, c.Advantages)
		b.WriteString("\n**Recent Strategic Developments:**\n")
		writeList(&b, c.RecentDevelopments)
		b.WriteString("\n")
	}

	b.WriteString("## Market Opportunities\n")
	writeList(&b, a.Opportunities)
	b.WriteString("\n## Market Threats\n")
	writeList(&b, a.Threats)
	b.WriteString("\n## Market Outlook\n")
	b.WriteString(a.Outlook + "\n\n")

	b.WriteString("---\n")
	b.WriteString("*Analysis generated by Market Position Analyzer*")
	return b.String()
}

func writeList(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}
