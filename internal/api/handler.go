package api

import (
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/advisory-cli/internal/advisory"
	"github.com/sells-group/advisory-cli/internal/esg"
	"github.com/sells-group/advisory-cli/internal/exposure"
	"github.com/sells-group/advisory-cli/internal/model"
	"github.com/sells-group/advisory-cli/internal/policy"
	"github.com/sells-group/advisory-cli/internal/underwriting"
)

// Handler holds the advisory modules shared across all HTTP handlers.
type Handler struct {
	underwriting *underwriting.Advisor
	policy       *policy.Admin
	exposure     *exposure.Analyzer
	esg          *esg.Advisor
}

// NewHandler creates a Handler wired to the given advisory modules.
func NewHandler(uw *underwriting.Advisor, pa *policy.Admin, ea *exposure.Analyzer, ca *esg.Advisor) *Handler {
	return &Handler{underwriting: uw, policy: pa, exposure: ea, esg: ca}
}

// EvaluateClient runs the full underwriting pipeline for one client record:
// risk evaluation, fraud check, recommendation.
func (h *Handler) EvaluateClient(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, eris.Wrap(advisory.ErrInvalidInput, "read body"))
		return
	}

	client, err := model.DecodeClientRecord(body)
	if err != nil {
		respondError(w, err)
		return
	}

	verdict, err := h.underwriting.EvaluateRisks(r.Context(), client)
	if err != nil {
		respondError(w, err)
		return
	}
	fraud := h.underwriting.DetectFraud(client)
	recommendation := h.underwriting.RecommendPolicy(verdict, fraud)

	respondJSON(w, http.StatusOK, map[string]any{
		"verdict":        verdict,
		"fraud":          fraud,
		"recommendation": recommendation,
	})
}

// IssuePolicy administers a policy from a PolicyInput body.
func (h *Handler) IssuePolicy(w http.ResponseWriter, r *http.Request) {
	input, err := decodeBody[model.PolicyInput](r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, h.policy.AdministerPolicy(input))
}

// AdjudicateClaim manages a claim from a ClaimInput body.
func (h *Handler) AdjudicateClaim(w http.ResponseWriter, r *http.Request) {
	claim, err := decodeBody[model.ClaimInput](r)
	if err != nil {
		respondError(w, err)
		return
	}

	decision, err := h.policy.ManageClaim(claim)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, decision)
}

type supportRequest struct {
	Query string `json:"query"`
}

// CustomerSupport dispatches a support query to a templated response.
func (h *Handler) CustomerSupport(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBody[supportRequest](r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"response": h.policy.ProvideCustomerSupport(req.Query),
	})
}

type exposureRequest struct {
	Portfolio []model.PortfolioPolicy `json:"portfolio"`
	Policy    *model.PortfolioPolicy  `json:"policy,omitempty"`
}

// ExposureReport aggregates a portfolio and renders the risk report. The
// risk factors are computed on the explicit policy when given, otherwise on
// the portfolio's first policy.
func (h *Handler) ExposureReport(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBody[exposureRequest](r)
	if err != nil {
		respondError(w, err)
		return
	}

	exp, err := h.exposure.CalculateExposure(req.Portfolio)
	if err != nil {
		respondError(w, err)
		return
	}

	target := req.Policy
	if target == nil {
		target = &req.Portfolio[0]
	}
	factors := h.exposure.AnalyzeRiskFactors(target)

	respondJSON(w, http.StatusOK, map[string]any{
		"exposure": exp,
		"factors":  factors,
		"report":   h.exposure.GenerateRiskReport(exp, factors),
	})
}

// ESGReport runs ESG compliance and carbon risk for a company and renders
// the combined report.
func (h *Handler) ESGReport(w http.ResponseWriter, r *http.Request) {
	company, err := decodeBody[model.CompanyRecord](r)
	if err != nil {
		respondError(w, err)
		return
	}

	esgResult, err := h.esg.AssessCompliance(r.Context(), company)
	if err != nil {
		respondError(w, err)
		return
	}
	carbon, err := h.esg.CalculateCarbonRisk(r.Context(), company)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"esg":         esgResult,
		"carbon_risk": carbon,
		"report":      h.esg.GenerateReport(esgResult, carbon),
	})
}

func decodeBody[T any](r *http.Request) (*T, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, eris.Wrap(advisory.ErrInvalidInput, "read body")
	}
	return model.Decode[T](body)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("api: encode response", zap.Error(err))
	}
}

// respondError maps the advisory error taxonomy onto HTTP statuses.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case eris.Is(err, advisory.ErrInvalidInput):
		status = http.StatusBadRequest
	case eris.Is(err, advisory.ErrEmptyPortfolio),
		eris.Is(err, advisory.ErrDivisionByZero):
		status = http.StatusUnprocessableEntity
	}
	if provider, ok := advisory.IsUpstream(err); ok {
		status = http.StatusBadGateway
		zap.L().Warn("api: upstream failure",
			zap.String("provider", provider),
			zap.Error(err),
		)
	}
	respondJSON(w, status, map[string]string{"error": err.Error()})
}
