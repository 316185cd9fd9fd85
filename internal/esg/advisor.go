// Package esg implements ESG compliance scoring and carbon-risk
// calculation.
package esg

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/advisory-cli/internal/advisory"
	"github.com/sells-group/advisory-cli/internal/model"
	"github.com/sells-group/advisory-cli/pkg/emissions"
	"github.com/sells-group/advisory-cli/pkg/search"
	"github.com/sells-group/advisory-cli/pkg/weather"
)

// Subscores and vulnerability are clamped to this ceiling after summation.
const maxSubscore = 5.0

// Carbon-risk composite weights.
const (
	intensityWeight     = 0.7
	vulnerabilityWeight = 0.3
)

// weightedKeyword contributes its points once per search result whose
// snippet contains the phrase.
type weightedKeyword struct {
	phrase string
	points float64
}

var environmentalKeywords = []weightedKeyword{
	{"renewable energy", 1.0},
	{"waste reduction", 1.0},
	{"carbon neutral", 1.5},
}

var socialKeywords = []weightedKeyword{
	{"diversity", 1.0},
	{"employee welfare", 1.0},
	{"community engagement", 1.0},
}

var governanceKeywords = []weightedKeyword{
	{"board diversity", 1.0},
	{"transparency", 1.0},
	{"ethical business practices", 1.5},
}

// Advisor assesses ESG compliance and carbon risk. A pure value with
// injected provider interfaces.
type Advisor struct {
	search    search.Client
	weather   weather.Client
	emissions emissions.Client
}

// NewAdvisor creates an ESG Advisor backed by the given providers.
func NewAdvisor(sc search.Client, wc weather.Client, ec emissions.Client) *Advisor {
	return &Advisor{search: sc, weather: wc, emissions: ec}
}

// AssessCompliance runs one ESG search for the company and extracts the
// three keyword-based subscores from the result snippets. Each subscore is
// clamped to 5.0 after summation across all results; the overall score is
// their arithmetic mean.
func (a *Advisor) AssessCompliance(ctx context.Context, company *model.CompanyRecord) (*model.ESGResult, error) {
	results, err := a.search.Search(ctx, company.Name+" ESG compliance")
	if err != nil {
		return nil, advisory.NewUpstreamError("search", err)
	}

	env := scoreKeywords(results, environmentalKeywords, nil)
	soc := scoreKeywords(results, socialKeywords, socialSnippet)
	gov := scoreKeywords(results, governanceKeywords, nil)
	overall := (env + soc + gov) / 3

	result := &model.ESGResult{
		OverallScore:       overall,
		EnvironmentalScore: env,
		SocialScore:        soc,
		GovernanceScore:    gov,
		Assessment:         esgAssessment(overall),
	}

	zap.L().Info("esg: compliance assessed",
		zap.String("company", company.Name),
		zap.Float64("overall", overall),
		zap.Int("results", len(results)),
	)

	return result, nil
}

// scoreKeywords sums keyword points across result snippets, then clamps.
// An optional prepare func rewrites the lowered snippet before matching.
func scoreKeywords(results []search.Result, keywords []weightedKeyword, prepare func(string) string) float64 {
	var score float64
	for _, r := range results {
		snippet := strings.ToLower(r.Snippet)
		if prepare != nil {
			snippet = prepare(snippet)
		}
		for _, kw := range keywords {
			if strings.Contains(snippet, kw.phrase) {
				score += kw.points
			}
		}
	}
	return min(score, maxSubscore)
}

// socialSnippet strips the governance phrase "board diversity" so the social
// "diversity" keyword does not fire on it.
func socialSnippet(snippet string) string {
	return strings.ReplaceAll(snippet, "board diversity", "")
}

func esgAssessment(score float64) string {
	switch {
	case score >= 4.0:
		return "Excellent ESG performance"
	case score >= 3.0:
		return "Good ESG performance with room for improvement"
	case score >= 2.0:
		return "Average ESG performance, significant improvements needed"
	default:
		return "Poor ESG performance, immediate action required"
	}
}

// CalculateCarbonRisk fetches current weather for the company's location,
// estimates CO2e for its industry and size, and combines intensity with
// climate vulnerability. Only the vulnerability input is clamped; the
// composite score itself is unbounded.
func (a *Advisor) CalculateCarbonRisk(ctx context.Context, company *model.CompanyRecord) (*model.CarbonRiskResult, error) {
	obs, err := a.weather.Current(ctx, company.Location)
	if err != nil {
		return nil, advisory.NewUpstreamError("weather", err)
	}

	est, err := a.emissions.Estimate(ctx, company.Industry, company.Size)
	if err != nil {
		return nil, advisory.NewUpstreamError("emissions", err)
	}

	if company.Revenue <= 0 {
		return nil, eris.Wrapf(advisory.ErrDivisionByZero, "esg: carbon intensity for %q", company.Name)
	}

	intensity := est.CO2e / company.Revenue
	vulnerability := climateVulnerability(obs)
	score := intensityWeight*intensity + vulnerabilityWeight*vulnerability

	result := &model.CarbonRiskResult{
		CarbonRiskScore:      score,
		CarbonIntensity:      intensity,
		ClimateVulnerability: vulnerability,
		Assessment:           carbonRiskAssessment(score),
	}

	zap.L().Info("esg: carbon risk calculated",
		zap.String("company", company.Name),
		zap.Float64("score", score),
	)

	return result, nil
}

// climateVulnerability scores current conditions: hot, humid, and windy
// locations are more vulnerable. Clamped to 5.0.
func climateVulnerability(obs *weather.Observation) float64 {
	var score float64
	if obs.Main.Temp > 30 {
		score += 2.0
	}
	if obs.Main.Humidity > 70 {
		score += 1.5
	}
	if obs.Wind.Speed > 10 {
		score += 1.5
	}
	return min(score, maxSubscore)
}

func carbonRiskAssessment(score float64) string {
	switch {
	case score < 2.0:
		return "Low carbon risk"
	case score < 3.0:
		return "Moderate carbon risk"
	case score < 4.0:
		return "High carbon risk"
	default:
		return "Very high carbon risk"
	}
}

// Descriptor returns the module's advisory metadata.
func (a *Advisor) Descriptor() advisory.Descriptor {
	return advisory.Agents()[3]
}
