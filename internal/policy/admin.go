// Package policy implements policy issuance, claim adjudication, and
// customer-support dispatch.
package policy

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/advisory-cli/internal/advisory"
	"github.com/sells-group/advisory-cli/internal/model"
)

// Pricing constants of the issuance rubric.
const (
	basePremium         = 1000.0
	deductibleRate      = 0.01
	liabilityMultiplier = 2.0
	medicalExpenseLimit = 5000.0
)

// dateLayout is the wire format of all policy and claim dates.
const dateLayout = "2006-01-02"

// Admin administers policies and claims. Stateless; every operation is a
// pure function of its input except policy number generation.
type Admin struct{}

// NewAdmin creates a policy Admin.
func NewAdmin() *Admin {
	return &Admin{}
}

// AdministerPolicy issues a policy from the given input, applying the
// documented premium, deductible, and coverage-limit rubric.
func (a *Admin) AdministerPolicy(input *model.PolicyInput) *model.PolicyDetails {
	coverage := input.CoverageAmountOrDefault()

	details := &model.PolicyDetails{
		PolicyNumber:      generatePolicyNumber(),
		CoverageStartDate: input.StartDate,
		CoverageEndDate:   input.EndDate,
		Premium:           basePremium * input.RiskFactorOrDefault(),
		Deductible:        coverage * deductibleRate,
		CoverageLimits: model.CoverageLimits{
			PropertyDamage:  coverage,
			Liability:       coverage * liabilityMultiplier,
			MedicalExpenses: medicalExpenseLimit,
		},
	}

	zap.L().Info("policy: administered",
		zap.String("policy_number", details.PolicyNumber),
		zap.Float64("premium", details.Premium),
	)

	return details
}

// generatePolicyNumber derives a 6-digit policy number from a random UUID.
// Uniqueness within a portfolio is not guaranteed; that is the caller's
// problem.
func generatePolicyNumber() string {
	u := uuid.New()
	n := binary.BigEndian.Uint32(u[:4]) % 1_000_000
	return fmt.Sprintf("POL-%06d", n)
}

// ManageClaim adjudicates a claim. A claim is valid iff the incident date is
// on or before the policy end date; approved claims pay out the lesser of
// the claimed amount and the coverage limit.
func (a *Admin) ManageClaim(claim *model.ClaimInput) (*model.ClaimDecision, error) {
	incident, err := parseDate("incident_date", claim.IncidentDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("policy_end_date", claim.PolicyEndDate)
	if err != nil {
		return nil, err
	}

	decision := &model.ClaimDecision{}
	if !incident.After(end) {
		payout := min(claim.ClaimedAmount, claim.CoverageLimitOrDefault())
		decision.IsValid = true
		decision.Reason = "Claim within policy period"
		decision.Status = model.ClaimApproved
		decision.PayoutAmount = &payout
	} else {
		decision.Reason = "Claim outside policy period"
		decision.Status = model.ClaimDenied
	}

	zap.L().Info("policy: claim managed",
		zap.String("status", decision.Status),
	)

	return decision, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, eris.Wrapf(advisory.ErrInvalidInput, "policy: %s %q: %v", field, value, err)
	}
	return t, nil
}

// ProvideCustomerSupport selects a templated support response by
// case-insensitive substring dispatch on the query. First match wins:
// policy, then claim, then the default acknowledgement.
func (a *Admin) ProvideCustomerSupport(query string) string {
	lower := strings.ToLower(query)
	switch {
	case strings.Contains(lower, "policy"):
		return "Your policy details can be found in your account dashboard. For specific questions, please provide your policy number."
	case strings.Contains(lower, "claim"):
		return "To file a claim, please visit our claims portal or call our 24/7 claims hotline at 1-800-123-4567."
	default:
		return "Thank you for your query. A customer support representative will get back to you within 24 hours."
	}
}

// Descriptor returns the module's advisory metadata.
func (a *Admin) Descriptor() advisory.Descriptor {
	return advisory.Agents()[1]
}
