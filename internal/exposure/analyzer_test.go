package exposure

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisory-cli/internal/advisory"
	"github.com/sells-group/advisory-cli/internal/model"
)

func TestCalculateExposure(t *testing.T) {
	analyzer := NewAnalyzer()

	exp, err := analyzer.CalculateExposure([]model.PortfolioPolicy{
		{CoverageAmount: 100},
		{CoverageAmount: 300},
	})
	require.NoError(t, err)

	assert.InDelta(t, 400, exp.TotalExposure, 0.001)
	assert.InDelta(t, 300, exp.MaxSingleExposure, 0.001)
	assert.InDelta(t, 200, exp.AverageExposure, 0.001)
}

func TestCalculateExposure_SinglePolicy(t *testing.T) {
	analyzer := NewAnalyzer()

	exp, err := analyzer.CalculateExposure([]model.PortfolioPolicy{{CoverageAmount: 750_000}})
	require.NoError(t, err)

	assert.InDelta(t, 750_000, exp.TotalExposure, 0.001)
	assert.InDelta(t, 750_000, exp.MaxSingleExposure, 0.001)
	assert.InDelta(t, 750_000, exp.AverageExposure, 0.001)
}

func TestCalculateExposure_Empty(t *testing.T) {
	analyzer := NewAnalyzer()

	_, err := analyzer.CalculateExposure(nil)
	require.Error(t, err)
	assert.True(t, eris.Is(err, advisory.ErrEmptyPortfolio))
}

func TestAnalyzeRiskFactors_OrderAndLength(t *testing.T) {
	analyzer := NewAnalyzer()

	factors := analyzer.AnalyzeRiskFactors(&model.PortfolioPolicy{})
	require.Len(t, factors, 4)

	assert.Equal(t, "Geographic Risk", factors[0].Name)
	assert.Equal(t, "Industry Risk", factors[1].Name)
	assert.Equal(t, "Claims History", factors[2].Name)
	assert.Equal(t, "Coverage Limits", factors[3].Name)
}

func TestAssessGeographicRisk(t *testing.T) {
	tests := []struct {
		name      string
		location  string
		wantLevel string
		wantScore float64
	}{
		{"flood zone", "Riverside flood zone, TX", model.LevelHigh, 4.5},
		{"flood zone case-insensitive", "FLOOD ZONE 7", model.LevelHigh, 4.5},
		{"coastal area", "Coastal Area near Galveston", model.LevelMedium, 3.0},
		{"inland", "Dallas, TX", model.LevelLow, 1.5},
		{"missing location", "", model.LevelLow, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := assessGeographicRisk(tt.location)
			assert.Equal(t, tt.wantLevel, f.Level)
			assert.InDelta(t, tt.wantScore, f.Score, 0.001)
		})
	}
}

func TestAssessIndustryRisk(t *testing.T) {
	tests := []struct {
		name      string
		industry  string
		wantLevel string
		wantScore float64
	}{
		{"construction", "construction", model.LevelHigh, 4.0},
		{"manufacturing mixed case", "Manufacturing", model.LevelHigh, 4.0},
		{"retail", "retail", model.LevelMedium, 3.0},
		{"hospitality", "hospitality", model.LevelMedium, 3.0},
		{"software", "software", model.LevelLow, 2.0},
		{"missing industry", "", model.LevelLow, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := assessIndustryRisk(tt.industry)
			assert.Equal(t, tt.wantLevel, f.Level)
			assert.InDelta(t, tt.wantScore, f.Score, 0.001)
		})
	}
}

func TestAssessClaimsHistory(t *testing.T) {
	tests := []struct {
		name      string
		claims    int
		wantLevel string
		wantScore float64
	}{
		{"many claims", 4, model.LevelHigh, 4.5},
		{"boundary three claims", 3, model.LevelMedium, 3.0},
		{"one claim", 1, model.LevelMedium, 3.0},
		{"no claims", 0, model.LevelLow, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := assessClaimsHistory(tt.claims)
			assert.Equal(t, tt.wantLevel, f.Level)
			assert.InDelta(t, tt.wantScore, f.Score, 0.001)
		})
	}
}

func TestAssessCoverageLimits(t *testing.T) {
	tests := []struct {
		name      string
		coverage  float64
		wantLevel string
		wantScore float64
	}{
		{"above one million", 1_000_001, model.LevelHigh, 4.0},
		{"exactly one million", 1_000_000, model.LevelMedium, 3.0},
		{"above half million", 600_000, model.LevelMedium, 3.0},
		{"modest", 100_000, model.LevelLow, 2.0},
		{"zero", 0, model.LevelLow, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := assessCoverageLimits(tt.coverage)
			assert.Equal(t, tt.wantLevel, f.Level)
			assert.InDelta(t, tt.wantScore, f.Score, 0.001)
		})
	}
}

func TestGenerateRiskReport(t *testing.T) {
	analyzer := NewAnalyzer()

	exp, err := analyzer.CalculateExposure([]model.PortfolioPolicy{
		{CoverageAmount: 1_200_000},
		{CoverageAmount: 300_000},
	})
	require.NoError(t, err)

	factors := analyzer.AnalyzeRiskFactors(&model.PortfolioPolicy{
		Location:       "flood zone",
		Industry:       "construction",
		PreviousClaims: 4,
		CoverageAmount: 1_200_000,
	})

	report := analyzer.GenerateRiskReport(exp, factors)

	assert.Contains(t, report, "Risk Exposure Report")
	assert.Contains(t, report, "- Total Exposure: $1,500,000.00")
	assert.Contains(t, report, "- Maximum Single Exposure: $1,200,000.00")
	assert.Contains(t, report, "- Average Exposure: $750,000.00")
	assert.Contains(t, report, "- Geographic Risk: High (Score: 4.50)")
	assert.Contains(t, report, "Property located in a flood zone")

	// Overall = (4.5 + 4.0 + 4.5 + 4.0) / 4 = 4.25.
	assert.Contains(t, report, "Overall Risk Score: 4.25 out of 5.00")
}

func TestGenerateRiskReport_Idempotent(t *testing.T) {
	analyzer := NewAnalyzer()

	exp := &model.Exposure{TotalExposure: 400, MaxSingleExposure: 300, AverageExposure: 200}
	factors := analyzer.AnalyzeRiskFactors(&model.PortfolioPolicy{Industry: "retail"})

	assert.Equal(t,
		analyzer.GenerateRiskReport(exp, factors),
		analyzer.GenerateRiskReport(exp, factors),
	)
}

func TestDescriptor(t *testing.T) {
	assert.Equal(t, "Risk Exposure", NewAnalyzer().Descriptor().Role)
}
