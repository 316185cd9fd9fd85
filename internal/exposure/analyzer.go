// Package exposure implements portfolio aggregation and the per-policy
// risk-factor rubric.
package exposure

import (
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/advisory-cli/internal/advisory"
	"github.com/sells-group/advisory-cli/internal/model"
)

// Analyzer measures portfolio exposure and scores per-policy risk factors.
// Stateless; every operation is a pure function of its input.
type Analyzer struct{}

// NewAnalyzer creates an exposure Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// CalculateExposure aggregates total, maximum single, and average coverage
// across the portfolio. An empty portfolio fails with ErrEmptyPortfolio;
// callers that want the zero average check emptiness first.
func (a *Analyzer) CalculateExposure(portfolio []model.PortfolioPolicy) (*model.Exposure, error) {
	if len(portfolio) == 0 {
		return nil, eris.Wrap(advisory.ErrEmptyPortfolio, "exposure: calculate")
	}

	var total, maxSingle float64
	for _, p := range portfolio {
		total += p.CoverageAmount
		if p.CoverageAmount > maxSingle {
			maxSingle = p.CoverageAmount
		}
	}

	exp := &model.Exposure{
		TotalExposure:     total,
		MaxSingleExposure: maxSingle,
		AverageExposure:   total / float64(len(portfolio)),
	}

	zap.L().Info("exposure: portfolio calculated",
		zap.Int("policies", len(portfolio)),
		zap.Float64("total", exp.TotalExposure),
	)

	return exp, nil
}

// AnalyzeRiskFactors scores the four risk dimensions of a policy, always in
// the order Geographic, Industry, Claims History, Coverage Limits. Missing
// fields fall back to the zero value without raising.
func (a *Analyzer) AnalyzeRiskFactors(p *model.PortfolioPolicy) []model.RiskFactor {
	factors := []model.RiskFactor{
		assessGeographicRisk(p.Location),
		assessIndustryRisk(p.Industry),
		assessClaimsHistory(p.PreviousClaims),
		assessCoverageLimits(p.CoverageAmount),
	}

	zap.L().Info("exposure: risk factors analyzed",
		zap.Int("factors", len(factors)),
	)

	return factors
}

func assessGeographicRisk(location string) model.RiskFactor {
	loc := strings.ToLower(location)
	switch {
	case strings.Contains(loc, "flood zone"):
		return model.RiskFactor{
			Name:        "Geographic Risk",
			Level:       model.LevelHigh,
			Score:       4.5,
			Description: "Property located in a flood zone",
		}
	case strings.Contains(loc, "coastal area"):
		return model.RiskFactor{
			Name:        "Geographic Risk",
			Level:       model.LevelMedium,
			Score:       3.0,
			Description: "Property in a coastal area with potential hurricane exposure",
		}
	default:
		return model.RiskFactor{
			Name:        "Geographic Risk",
			Level:       model.LevelLow,
			Score:       1.5,
			Description: "Property in a low-risk geographic area",
		}
	}
}

func assessIndustryRisk(industry string) model.RiskFactor {
	switch strings.ToLower(industry) {
	case "construction", "manufacturing":
		return model.RiskFactor{
			Name:        "Industry Risk",
			Level:       model.LevelHigh,
			Score:       4.0,
			Description: "High-risk industry with potential for workplace accidents",
		}
	case "retail", "hospitality":
		return model.RiskFactor{
			Name:        "Industry Risk",
			Level:       model.LevelMedium,
			Score:       3.0,
			Description: "Medium-risk industry with moderate liability exposure",
		}
	default:
		return model.RiskFactor{
			Name:        "Industry Risk",
			Level:       model.LevelLow,
			Score:       2.0,
			Description: "Low-risk industry with minimal liability concerns",
		}
	}
}

func assessClaimsHistory(previousClaims int) model.RiskFactor {
	switch {
	case previousClaims > 3:
		return model.RiskFactor{
			Name:        "Claims History",
			Level:       model.LevelHigh,
			Score:       4.5,
			Description: "Multiple claims in recent history",
		}
	case previousClaims > 0:
		return model.RiskFactor{
			Name:        "Claims History",
			Level:       model.LevelMedium,
			Score:       3.0,
			Description: "Some claims in recent history",
		}
	default:
		return model.RiskFactor{
			Name:        "Claims History",
			Level:       model.LevelLow,
			Score:       1.0,
			Description: "No recent claims history",
		}
	}
}

func assessCoverageLimits(coverageAmount float64) model.RiskFactor {
	switch {
	case coverageAmount > 1_000_000:
		return model.RiskFactor{
			Name:        "Coverage Limits",
			Level:       model.LevelHigh,
			Score:       4.0,
			Description: "High coverage limits increase potential exposure",
		}
	case coverageAmount > 500_000:
		return model.RiskFactor{
			Name:        "Coverage Limits",
			Level:       model.LevelMedium,
			Score:       3.0,
			Description: "Moderate coverage limits with balanced exposure",
		}
	default:
		return model.RiskFactor{
			Name:        "Coverage Limits",
			Level:       model.LevelLow,
			Score:       2.0,
			Description: "Low coverage limits minimize potential exposure",
		}
	}
}

// Descriptor returns the module's advisory metadata.
func (a *Analyzer) Descriptor() advisory.Descriptor {
	return advisory.Agents()[2]
}
