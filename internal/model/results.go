package model

// CoverageLimits holds the per-category payout ceilings of an issued policy.
type CoverageLimits struct {
	PropertyDamage  float64 `json:"property_damage"`
	Liability       float64 `json:"liability"`
	MedicalExpenses float64 `json:"medical_expenses"`
}

// PolicyDetails is the result of issuing a policy.
type PolicyDetails struct {
	PolicyNumber      string         `json:"policy_number"`
	CoverageStartDate string         `json:"coverage_start_date"`
	CoverageEndDate   string         `json:"coverage_end_date"`
	Premium           float64        `json:"premium"`
	Deductible        float64        `json:"deductible"`
	CoverageLimits    CoverageLimits `json:"coverage_limits"`
}

// Claim decision statuses.
const (
	ClaimApproved = "Approved"
	ClaimDenied   = "Denied"
)

// ClaimDecision is the result of adjudicating a claim. PayoutAmount is set
// only on approved claims.
type ClaimDecision struct {
	IsValid      bool     `json:"is_valid"`
	Reason       string   `json:"reason"`
	Status       string   `json:"status"`
	PayoutAmount *float64 `json:"payout_amount,omitempty"`
}

// Exposure aggregates a portfolio's insured value at risk.
type Exposure struct {
	TotalExposure     float64 `json:"total_exposure"`
	MaxSingleExposure float64 `json:"max_single_exposure"`
	AverageExposure   float64 `json:"average_exposure"`
}

// Risk factor levels.
const (
	LevelLow    = "Low"
	LevelMedium = "Medium"
	LevelHigh   = "High"
)

// RiskFactor is one scored dimension of a policy's risk profile. Score is
// on a 0-5 scale.
type RiskFactor struct {
	Name        string  `json:"name"`
	Level       string  `json:"level"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

// ESGResult holds the three ESG subscores (each clamped to [0,5]), their
// mean, and the banded assessment text.
type ESGResult struct {
	OverallScore       float64 `json:"overall_score"`
	EnvironmentalScore float64 `json:"environmental_score"`
	SocialScore        float64 `json:"social_score"`
	GovernanceScore    float64 `json:"governance_score"`
	Assessment         string  `json:"assessment"`
}

// CarbonRiskResult holds the carbon-risk composite and its inputs. Only the
// vulnerability input is clamped; the composite itself is unbounded.
type CarbonRiskResult struct {
	CarbonRiskScore      float64 `json:"carbon_risk_score"`
	CarbonIntensity      float64 `json:"carbon_intensity"`
	ClimateVulnerability float64 `json:"climate_vulnerability"`
	Assessment           string  `json:"assessment"`
}
