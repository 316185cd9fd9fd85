// Package underwriting implements the risk evaluation, fraud detection, and
// policy recommendation rubric.
package underwriting

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/advisory-cli/internal/advisory"
	"github.com/sells-group/advisory-cli/internal/model"
	"github.com/sells-group/advisory-cli/pkg/riskassess"
)

// Risk band thresholds on the provider's 0-100 score. Half-open intervals:
// score < 50 is Low, 50 <= score < 75 is Medium, 75 <= score is High.
const (
	mediumRiskFloor = 50
	highRiskFloor   = 75
)

// Fraud is declared when more than this many suspicious indicators match.
const fraudIndicatorThreshold = 2

// Advisor evaluates prospective clients. It is a pure value; the injected
// risk-assessment client is its only collaborator.
type Advisor struct {
	risk riskassess.Client
}

// NewAdvisor creates an underwriting Advisor backed by the given
// risk-assessment client.
func NewAdvisor(risk riskassess.Client) *Advisor {
	return &Advisor{risk: risk}
}

// EvaluateRisks scores the client via the risk-assessment provider and
// returns a textual verdict. The band keyword ("Low risk" / "Medium risk" /
// "High risk") appears verbatim; RecommendPolicy pattern-matches on it.
func (a *Advisor) EvaluateRisks(ctx context.Context, client *model.ClientRecord) (string, error) {
	score, err := a.risk.Assess(ctx, client.Payload())
	if err != nil {
		return "", advisory.NewUpstreamError("riskassess", err)
	}

	verdict := formatVerdict(score)

	zap.L().Info("underwriting: risks evaluated",
		zap.Float64("score", score),
	)

	return verdict, nil
}

func formatVerdict(score float64) string {
	// Minimal digits: an integral score prints as "42", not "42.00".
	s := strconv.FormatFloat(score, 'f', -1, 64)
	switch {
	case score < mediumRiskFloor:
		return fmt.Sprintf("Low risk (score: %s). Recommended policy: Standard coverage.", s)
	case score < highRiskFloor:
		return fmt.Sprintf("Medium risk (score: %s). Recommended policy: Enhanced coverage with additional riders.", s)
	default:
		return fmt.Sprintf("High risk (score: %s). Recommended policy: Comprehensive coverage with strict conditions.", s)
	}
}

// DetectFraud counts suspicious indicators in the client record and declares
// fraud when the count exceeds the threshold. Fraud is an output, not an
// error.
func (a *Advisor) DetectFraud(client *model.ClientRecord) bool {
	count := countSuspiciousPatterns(client)

	zap.L().Info("underwriting: fraud check complete",
		zap.Int("indicators", count),
		zap.Bool("fraud", count > fraudIndicatorThreshold),
	)

	return count > fraudIndicatorThreshold
}

// countSuspiciousPatterns applies the fixed indicator rubric. The young-age
// high-coverage pairing is a single combined indicator.
func countSuspiciousPatterns(client *model.ClientRecord) int {
	count := 0
	if client.ClaimsHistory > 5 {
		count++
	}
	if client.CreditScoreOrDefault() < 500 {
		count++
	}
	if client.AgeOrDefault() < 25 && client.CoverageAmount > 1_000_000 {
		count++
	}
	return count
}

// RecommendPolicy turns a risk verdict and fraud flag into the final policy
// recommendation. A fraud flag denies coverage outright; otherwise the
// verdict's band keyword selects the recommendation.
func (a *Advisor) RecommendPolicy(verdict string, fraud bool) string {
	if fraud {
		return "Policy recommendation: Deny coverage due to suspected fraud."
	}

	switch {
	case strings.Contains(verdict, "Low risk"):
		return "Policy recommendation: Standard coverage with competitive pricing."
	case strings.Contains(verdict, "Medium risk"):
		return "Policy recommendation: Enhanced coverage with additional riders and slightly higher premiums."
	default:
		return "Policy recommendation: Comprehensive coverage with strict conditions and higher premiums."
	}
}

// Descriptor returns the module's advisory metadata.
func (a *Advisor) Descriptor() advisory.Descriptor {
	return advisory.Agents()[0]
}
