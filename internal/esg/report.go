package esg

import (
	"fmt"
	"strings"

	"github.com/sells-group/advisory-cli/internal/model"
)

// Recommendation texts, in cascade priority order.
const (
	recEnvironmental = "Implement a comprehensive environmental management system to improve environmental performance"
	recSocial        = "Develop and implement diversity and inclusion initiatives to enhance social performance"
	recGovernance    = "Enhance board diversity and transparency in corporate governance practices"
	recCarbon        = "Develop a carbon reduction strategy and set science-based targets for emissions reduction"
	recContinuous    = "Continue to monitor and improve ESG and carbon performance through regular assessments and stakeholder engagement"
)

// GenerateReport renders the combined ESG and carbon-risk report with
// exactly three recommendation lines. The recommendations are the top three
// distinct matches of the priority cascade, padded with the
// continuous-improvement line when fewer than three predicates match.
func (a *Advisor) GenerateReport(esg *model.ESGResult, carbon *model.CarbonRiskResult) string {
	var b strings.Builder
	b.WriteString("ESG and Carbon Risk Report\n\n")

	b.WriteString("ESG Compliance:\n")
	fmt.Fprintf(&b, "- Overall Score: %.2f/5.00\n", esg.OverallScore)
	fmt.Fprintf(&b, "- Environmental Score: %.2f/5.00\n", esg.EnvironmentalScore)
	fmt.Fprintf(&b, "- Social Score: %.2f/5.00\n", esg.SocialScore)
	fmt.Fprintf(&b, "- Governance Score: %.2f/5.00\n", esg.GovernanceScore)
	fmt.Fprintf(&b, "- Assessment: %s\n", esg.Assessment)

	b.WriteString("\nCarbon Risk:\n")
	fmt.Fprintf(&b, "- Carbon Risk Score: %.2f/5.00\n", carbon.CarbonRiskScore)
	fmt.Fprintf(&b, "- Carbon Intensity: %.2f tCO2e/$M revenue\n", carbon.CarbonIntensity)
	fmt.Fprintf(&b, "- Climate Vulnerability: %.2f/5.00\n", carbon.ClimateVulnerability)
	fmt.Fprintf(&b, "- Assessment: %s\n", carbon.Assessment)

	b.WriteString("\nRecommendations:\n")
	for i, rec := range recommendations(esg, carbon) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}

	return b.String()
}

// recommendations walks the priority cascade and collects the matching
// recommendations, padding with the continuous-improvement line to exactly
// three.
func recommendations(esg *model.ESGResult, carbon *model.CarbonRiskResult) []string {
	var recs []string
	if esg.EnvironmentalScore < 3.0 {
		recs = append(recs, recEnvironmental)
	}
	if esg.SocialScore < 3.0 {
		recs = append(recs, recSocial)
	}
	if esg.GovernanceScore < 3.0 {
		recs = append(recs, recGovernance)
	}
	if carbon.CarbonRiskScore > 3.0 {
		recs = append(recs, recCarbon)
	}
	for len(recs) < 3 {
		recs = append(recs, recContinuous)
	}
	return recs[:3]
}
