package underwriting

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisory-cli/internal/advisory"
	"github.com/sells-group/advisory-cli/internal/model"
)

type stubRisk struct {
	score float64
	err   error
}

func (s stubRisk) Assess(_ context.Context, _ map[string]any) (float64, error) {
	return s.score, s.err
}

func ptrInt(v int) *int { return &v }

func TestEvaluateRisks_Bands(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"low band", 42, "Low risk (score: 42)"},
		{"low band upper edge", 49.5, "Low risk (score: 49.5)"},
		{"medium band floor", 50, "Medium risk (score: 50)"},
		{"medium band upper edge", 74, "Medium risk (score: 74)"},
		{"high band floor", 75, "High risk (score: 75)"},
		{"high band", 98, "High risk (score: 98)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advisor := NewAdvisor(stubRisk{score: tt.score})
			verdict, err := advisor.EvaluateRisks(context.Background(), &model.ClientRecord{})
			require.NoError(t, err)
			assert.Contains(t, verdict, tt.want)
		})
	}
}

func TestEvaluateRisks_ExactlyOneBandKeyword(t *testing.T) {
	for _, score := range []float64{0, 49.99, 50, 74.99, 75, 100} {
		advisor := NewAdvisor(stubRisk{score: score})
		verdict, err := advisor.EvaluateRisks(context.Background(), &model.ClientRecord{})
		require.NoError(t, err)

		hits := 0
		for _, kw := range []string{"Low risk", "Medium risk", "High risk"} {
			if strings.Contains(verdict, kw) {
				hits++
			}
		}
		assert.Equal(t, 1, hits, "score %g", score)
	}
}

func TestEvaluateRisks_UpstreamFailure(t *testing.T) {
	advisor := NewAdvisor(stubRisk{err: assert.AnError})
	_, err := advisor.EvaluateRisks(context.Background(), &model.ClientRecord{})
	require.Error(t, err)

	provider, ok := advisory.IsUpstream(err)
	require.True(t, ok)
	assert.Equal(t, "riskassess", provider)
}

func TestDetectFraud(t *testing.T) {
	tests := []struct {
		name   string
		client model.ClientRecord
		want   bool
	}{
		{
			name: "three indicators",
			client: model.ClientRecord{
				ClaimsHistory:  6,
				CreditScore:    ptrInt(450),
				Age:            ptrInt(22),
				CoverageAmount: 2_000_000,
			},
			want: true,
		},
		{
			name: "one indicator only",
			client: model.ClientRecord{
				ClaimsHistory:  6,
				CreditScore:    ptrInt(700),
				Age:            ptrInt(30),
				CoverageAmount: 2_000_000,
			},
			want: false,
		},
		{
			name: "young high coverage is a single combined indicator",
			client: model.ClientRecord{
				Age:            ptrInt(22),
				CoverageAmount: 2_000_000,
			},
			want: false,
		},
		{
			name:   "defaults are clean",
			client: model.ClientRecord{},
			want:   false,
		},
		{
			name: "missing credit score defaults to 700",
			client: model.ClientRecord{
				ClaimsHistory:  6,
				Age:            ptrInt(22),
				CoverageAmount: 2_000_000,
			},
			want: false,
		},
	}

	advisor := NewAdvisor(stubRisk{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, advisor.DetectFraud(&tt.client))
		})
	}
}

func TestRecommendPolicy(t *testing.T) {
	advisor := NewAdvisor(stubRisk{})

	tests := []struct {
		name    string
		verdict string
		fraud   bool
		want    string
	}{
		{
			name:    "fraud denies regardless of band",
			verdict: "Low risk (score: 10). Recommended policy: Standard coverage.",
			fraud:   true,
			want:    "Policy recommendation: Deny coverage due to suspected fraud.",
		},
		{
			name:    "low risk",
			verdict: "Low risk (score: 42). Recommended policy: Standard coverage.",
			want:    "Policy recommendation: Standard coverage with competitive pricing.",
		},
		{
			name:    "medium risk",
			verdict: "Medium risk (score: 60). Recommended policy: Enhanced coverage with additional riders.",
			want:    "Policy recommendation: Enhanced coverage with additional riders and slightly higher premiums.",
		},
		{
			name:    "high risk",
			verdict: "High risk (score: 90). Recommended policy: Comprehensive coverage with strict conditions.",
			want:    "Policy recommendation: Comprehensive coverage with strict conditions and higher premiums.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, advisor.RecommendPolicy(tt.verdict, tt.fraud))
		})
	}
}

func TestRecommendPolicy_FraudPrefix(t *testing.T) {
	advisor := NewAdvisor(stubRisk{})
	rec := advisor.RecommendPolicy("", true)
	assert.Contains(t, rec, "Policy recommendation: Deny")
}

func TestDescriptor(t *testing.T) {
	advisor := NewAdvisor(stubRisk{})
	assert.Equal(t, "Underwriting", advisor.Descriptor().Role)
}
