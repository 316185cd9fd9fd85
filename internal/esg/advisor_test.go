package esg

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisory-cli/internal/advisory"
	"github.com/sells-group/advisory-cli/internal/model"
	"github.com/sells-group/advisory-cli/pkg/emissions"
	"github.com/sells-group/advisory-cli/pkg/search"
	"github.com/sells-group/advisory-cli/pkg/weather"
)

type stubSearch struct {
	results []search.Result
	query   string
	err     error
}

func (s *stubSearch) Search(_ context.Context, query string) ([]search.Result, error) {
	s.query = query
	return s.results, s.err
}

type stubWeather struct {
	obs weather.Observation
	err error
}

func (s stubWeather) Current(_ context.Context, _ string) (*weather.Observation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.obs, nil
}

type stubEmissions struct {
	co2e float64
	err  error
}

func (s stubEmissions) Estimate(_ context.Context, _ string, _ any) (*emissions.Estimate, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &emissions.Estimate{CO2e: s.co2e}, nil
}

func snippets(texts ...string) []search.Result {
	results := make([]search.Result, len(texts))
	for i, t := range texts {
		results[i] = search.Result{Snippet: t}
	}
	return results
}

func TestAssessCompliance(t *testing.T) {
	sc := &stubSearch{results: snippets(
		"carbon neutral facilities",
		"board diversity report",
		"renewable energy",
	)}
	advisor := NewAdvisor(sc, stubWeather{}, stubEmissions{})

	result, err := advisor.AssessCompliance(context.Background(), &model.CompanyRecord{Name: "Acme Corp"})
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp ESG compliance", sc.query)
	assert.InDelta(t, 2.5, result.EnvironmentalScore, 0.001)
	assert.InDelta(t, 0.0, result.SocialScore, 0.001)
	assert.InDelta(t, 1.0, result.GovernanceScore, 0.001)
	assert.InDelta(t, 1.1667, result.OverallScore, 0.001)
	assert.Contains(t, result.Assessment, "Poor ESG performance")
}

func TestAssessCompliance_SubscoresClamped(t *testing.T) {
	// Seven results each worth 1.5 environmental points sum to 10.5; the
	// clamp applies after summation.
	many := make([]string, 7)
	for i := range many {
		many[i] = "carbon neutral operations"
	}
	advisor := NewAdvisor(&stubSearch{results: snippets(many...)}, stubWeather{}, stubEmissions{})

	result, err := advisor.AssessCompliance(context.Background(), &model.CompanyRecord{Name: "Acme"})
	require.NoError(t, err)

	assert.InDelta(t, 5.0, result.EnvironmentalScore, 0.001)
	assert.LessOrEqual(t, result.EnvironmentalScore, 5.0)
	assert.GreaterOrEqual(t, result.SocialScore, 0.0)
}

func TestAssessCompliance_OverallIsMean(t *testing.T) {
	advisor := NewAdvisor(&stubSearch{results: snippets(
		"renewable energy and waste reduction with employee welfare and transparency",
	)}, stubWeather{}, stubEmissions{})

	result, err := advisor.AssessCompliance(context.Background(), &model.CompanyRecord{Name: "Acme"})
	require.NoError(t, err)

	want := (result.EnvironmentalScore + result.SocialScore + result.GovernanceScore) / 3
	assert.InDelta(t, want, result.OverallScore, 0.0001)
}

func TestAssessCompliance_SocialDiversityKeyword(t *testing.T) {
	tests := []struct {
		name       string
		snippet    string
		wantSocial float64
		wantGov    float64
	}{
		{"plain diversity counts as social", "diversity and inclusion program", 1.0, 0.0},
		{"board diversity counts as governance only", "board diversity report", 0.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advisor := NewAdvisor(&stubSearch{results: snippets(tt.snippet)}, stubWeather{}, stubEmissions{})
			result, err := advisor.AssessCompliance(context.Background(), &model.CompanyRecord{Name: "Acme"})
			require.NoError(t, err)

			assert.InDelta(t, tt.wantSocial, result.SocialScore, 0.001)
			assert.InDelta(t, tt.wantGov, result.GovernanceScore, 0.001)
		})
	}
}

func TestAssessCompliance_Bands(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "excellent",
			text: "renewable energy waste reduction carbon neutral diversity employee welfare community engagement board diversity transparency ethical business practices",
			want: "Excellent ESG performance",
		},
		{
			name: "poor",
			text: "quarterly earnings call",
			want: "Poor ESG performance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Repeat the snippet so every subscore clears its band.
			advisor := NewAdvisor(&stubSearch{results: snippets(tt.text, tt.text, tt.text, tt.text)}, stubWeather{}, stubEmissions{})
			result, err := advisor.AssessCompliance(context.Background(), &model.CompanyRecord{Name: "Acme"})
			require.NoError(t, err)
			assert.Contains(t, result.Assessment, tt.want)
		})
	}
}

func TestAssessCompliance_UpstreamFailure(t *testing.T) {
	advisor := NewAdvisor(&stubSearch{err: assert.AnError}, stubWeather{}, stubEmissions{})

	_, err := advisor.AssessCompliance(context.Background(), &model.CompanyRecord{Name: "Acme"})
	require.Error(t, err)

	provider, ok := advisory.IsUpstream(err)
	require.True(t, ok)
	assert.Equal(t, "search", provider)
}

func TestCalculateCarbonRisk(t *testing.T) {
	advisor := NewAdvisor(&stubSearch{},
		stubWeather{obs: weather.Observation{
			Main: weather.Main{Temp: 32, Humidity: 75},
			Wind: weather.Wind{Speed: 12},
		}},
		stubEmissions{co2e: 100},
	)

	result, err := advisor.CalculateCarbonRisk(context.Background(), &model.CompanyRecord{
		Name:     "Acme",
		Location: "Houston",
		Industry: "manufacturing",
		Revenue:  50,
	})
	require.NoError(t, err)

	assert.InDelta(t, 2.0, result.CarbonIntensity, 0.001)
	assert.InDelta(t, 5.0, result.ClimateVulnerability, 0.001)
	assert.InDelta(t, 2.9, result.CarbonRiskScore, 0.001)
	assert.Equal(t, "Moderate carbon risk", result.Assessment)
}

func TestClimateVulnerability(t *testing.T) {
	tests := []struct {
		name string
		obs  weather.Observation
		want float64
	}{
		{"calm and mild", weather.Observation{Main: weather.Main{Temp: 20, Humidity: 50}, Wind: weather.Wind{Speed: 5}}, 0.0},
		{"hot only", weather.Observation{Main: weather.Main{Temp: 35, Humidity: 50}, Wind: weather.Wind{Speed: 5}}, 2.0},
		{"humid and windy", weather.Observation{Main: weather.Main{Temp: 20, Humidity: 80}, Wind: weather.Wind{Speed: 15}}, 3.0},
		{"all three clamped", weather.Observation{Main: weather.Main{Temp: 35, Humidity: 80}, Wind: weather.Wind{Speed: 15}}, 5.0},
		{"boundaries not exceeded", weather.Observation{Main: weather.Main{Temp: 30, Humidity: 70}, Wind: weather.Wind{Speed: 10}}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, climateVulnerability(&tt.obs), 0.001)
		})
	}
}

func TestCarbonRiskAssessment_Bands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1.9, "Low carbon risk"},
		{2.0, "Moderate carbon risk"},
		{2.9, "Moderate carbon risk"},
		{3.0, "High carbon risk"},
		{3.9, "High carbon risk"},
		{4.0, "Very high carbon risk"},
		{12.5, "Very high carbon risk"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, carbonRiskAssessment(tt.score), "score %g", tt.score)
	}
}

func TestCalculateCarbonRisk_ZeroRevenue(t *testing.T) {
	advisor := NewAdvisor(&stubSearch{}, stubWeather{}, stubEmissions{co2e: 100})

	_, err := advisor.CalculateCarbonRisk(context.Background(), &model.CompanyRecord{Name: "Acme"})
	require.Error(t, err)
	assert.True(t, eris.Is(err, advisory.ErrDivisionByZero))
}

func TestCalculateCarbonRisk_UpstreamFailures(t *testing.T) {
	t.Run("weather", func(t *testing.T) {
		advisor := NewAdvisor(&stubSearch{}, stubWeather{err: assert.AnError}, stubEmissions{})
		_, err := advisor.CalculateCarbonRisk(context.Background(), &model.CompanyRecord{Revenue: 50})
		provider, ok := advisory.IsUpstream(err)
		require.True(t, ok)
		assert.Equal(t, "weather", provider)
	})

	t.Run("emissions", func(t *testing.T) {
		advisor := NewAdvisor(&stubSearch{}, stubWeather{}, stubEmissions{err: assert.AnError})
		_, err := advisor.CalculateCarbonRisk(context.Background(), &model.CompanyRecord{Revenue: 50})
		provider, ok := advisory.IsUpstream(err)
		require.True(t, ok)
		assert.Equal(t, "emissions", provider)
	})
}

func TestDescriptor(t *testing.T) {
	advisor := NewAdvisor(&stubSearch{}, stubWeather{}, stubEmissions{})
	assert.Equal(t, "ESG Compliance", advisor.Descriptor().Role)
}
