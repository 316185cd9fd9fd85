// Package model defines the value records exchanged with the advisory
// scorers. All records are immutable for the duration of one request;
// optional numeric inputs are pointers so defaulting can distinguish a
// missing field from an explicit zero.
package model

import (
	json "github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"github.com/sells-group/advisory-cli/internal/advisory"
)

// Documented defaults applied at the input boundary.
const (
	DefaultCreditScore    = 700
	DefaultAge            = 30
	DefaultRiskFactor     = 1.0
	DefaultCoverageAmount = 100_000.0
)

// ClientRecord describes a prospective client. Fields beyond the typed ones
// are retained in Attributes and forwarded to the risk-assessment provider
// untouched.
type ClientRecord struct {
	ClaimsHistory  int            `json:"claims_history"`
	CreditScore    *int           `json:"credit_score,omitempty"`
	Age            *int           `json:"age,omitempty"`
	CoverageAmount float64        `json:"coverage_amount"`
	Attributes     map[string]any `json:"-"`
}

// CreditScoreOrDefault returns the credit score, substituting the documented
// default when the field was absent.
func (c *ClientRecord) CreditScoreOrDefault() int {
	if c.CreditScore == nil {
		return DefaultCreditScore
	}
	return *c.CreditScore
}

// AgeOrDefault returns the age, substituting the documented default when the
// field was absent.
func (c *ClientRecord) AgeOrDefault() int {
	if c.Age == nil {
		return DefaultAge
	}
	return *c.Age
}

// Payload returns the full record as a map for forwarding to the
// risk-assessment provider: opaque attributes first, typed fields layered on
// top so they win on collision.
func (c *ClientRecord) Payload() map[string]any {
	payload := make(map[string]any, len(c.Attributes)+4)
	for k, v := range c.Attributes {
		payload[k] = v
	}
	payload["claims_history"] = c.ClaimsHistory
	payload["coverage_amount"] = c.CoverageAmount
	if c.CreditScore != nil {
		payload["credit_score"] = *c.CreditScore
	}
	if c.Age != nil {
		payload["age"] = *c.Age
	}
	return payload
}

// DecodeClientRecord parses a client record from JSON. Unknown fields are
// kept as opaque attributes; wrong-shaped fields surface as ErrInvalidInput.
func DecodeClientRecord(data []byte) (*ClientRecord, error) {
	var rec ClientRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, eris.Wrap(advisory.ErrInvalidInput, err.Error())
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrap(advisory.ErrInvalidInput, err.Error())
	}
	delete(raw, "claims_history")
	delete(raw, "credit_score")
	delete(raw, "age")
	delete(raw, "coverage_amount")
	rec.Attributes = raw

	return &rec, nil
}

// PolicyInput describes a policy to be issued.
type PolicyInput struct {
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	RiskFactor     *float64 `json:"risk_factor,omitempty"`
	CoverageAmount *float64 `json:"coverage_amount,omitempty"`
}

// RiskFactorOrDefault returns the risk factor, defaulting to 1.0.
func (p *PolicyInput) RiskFactorOrDefault() float64 {
	if p.RiskFactor == nil {
		return DefaultRiskFactor
	}
	return *p.RiskFactor
}

// CoverageAmountOrDefault returns the coverage amount, defaulting to 100000.
func (p *PolicyInput) CoverageAmountOrDefault() float64 {
	if p.CoverageAmount == nil {
		return DefaultCoverageAmount
	}
	return *p.CoverageAmount
}

// ClaimInput describes a claim to be adjudicated. Dates are ISO 2006-01-02.
type ClaimInput struct {
	IncidentDate  string   `json:"incident_date"`
	PolicyEndDate string   `json:"policy_end_date"`
	ClaimedAmount float64  `json:"claimed_amount"`
	CoverageLimit *float64 `json:"coverage_limit,omitempty"`
}

// CoverageLimitOrDefault returns the coverage limit, defaulting to 100000.
func (c *ClaimInput) CoverageLimitOrDefault() float64 {
	if c.CoverageLimit == nil {
		return DefaultCoverageAmount
	}
	return *c.CoverageLimit
}

// PortfolioPolicy is one in-force policy inside a portfolio. Missing fields
// fall back to the zero value without raising.
type PortfolioPolicy struct {
	CoverageAmount float64 `json:"coverage_amount"`
	Location       string  `json:"location"`
	Industry       string  `json:"industry"`
	PreviousClaims int     `json:"previous_claims"`
}

// CompanyRecord describes a company for ESG and carbon-risk scoring. Size is
// opaque and forwarded to the emissions provider as-is.
type CompanyRecord struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Industry string  `json:"industry"`
	Size     any     `json:"size,omitempty"`
	Revenue  float64 `json:"revenue"`
}

// Decode parses a JSON record of type T, mapping decode failures to
// ErrInvalidInput.
func Decode[T any](data []byte) (*T, error) {
	var rec T
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, eris.Wrap(advisory.ErrInvalidInput, err.Error())
	}
	return &rec, nil
}
