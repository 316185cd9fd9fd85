package exposure

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/advisory-cli/internal/model"
)

// GenerateRiskReport renders the portfolio block, the per-factor blocks, and
// the overall risk score (arithmetic mean of factor scores) as plain text.
// Monetary amounts use grouped thousands with a dollar prefix.
func (a *Analyzer) GenerateRiskReport(exp *model.Exposure, factors []model.RiskFactor) string {
	p := message.NewPrinter(language.AmericanEnglish)

	var b strings.Builder
	b.WriteString("Risk Exposure Report\n\n")
	b.WriteString("Portfolio Exposure:\n")
	p.Fprintf(&b, "- Total Exposure: $%.2f\n", exp.TotalExposure)
	p.Fprintf(&b, "- Maximum Single Exposure: $%.2f\n", exp.MaxSingleExposure)
	p.Fprintf(&b, "- Average Exposure: $%.2f\n", exp.AverageExposure)

	b.WriteString("\nRisk Factors:\n")
	var sum float64
	for _, f := range factors {
		p.Fprintf(&b, "- %s: %s (Score: %.2f)\n", f.Name, f.Level, f.Score)
		p.Fprintf(&b, "  %s\n\n", f.Description)
		sum += f.Score
	}

	if len(factors) > 0 {
		p.Fprintf(&b, "Overall Risk Score: %.2f out of 5.00\n", sum/float64(len(factors)))
	}

	return b.String()
}
