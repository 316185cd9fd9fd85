package main

import (
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/advisory-cli/internal/advisory"
	"github.com/sells-group/advisory-cli/internal/esg"
	"github.com/sells-group/advisory-cli/internal/exposure"
	"github.com/sells-group/advisory-cli/internal/policy"
	"github.com/sells-group/advisory-cli/internal/underwriting"
	"github.com/sells-group/advisory-cli/pkg/emissions"
	"github.com/sells-group/advisory-cli/pkg/riskassess"
	"github.com/sells-group/advisory-cli/pkg/search"
	"github.com/sells-group/advisory-cli/pkg/weather"
)

// newUnderwritingAdvisor wires the underwriting advisor from config.
func newUnderwritingAdvisor() *underwriting.Advisor {
	var opts []riskassess.Option
	if cfg.RiskAssess.BaseURL != "" {
		opts = append(opts, riskassess.WithBaseURL(cfg.RiskAssess.BaseURL))
	}
	return underwriting.NewAdvisor(riskassess.NewClient(cfg.RiskAssess.Key, opts...))
}

// newESGAdvisor wires the ESG advisor from config.
func newESGAdvisor() *esg.Advisor {
	var searchOpts []search.Option
	if cfg.Search.BaseURL != "" {
		searchOpts = append(searchOpts, search.WithBaseURL(cfg.Search.BaseURL))
	}
	var weatherOpts []weather.Option
	if cfg.Weather.BaseURL != "" {
		weatherOpts = append(weatherOpts, weather.WithBaseURL(cfg.Weather.BaseURL))
	}
	var emissionsOpts []emissions.Option
	if cfg.Emissions.BaseURL != "" {
		emissionsOpts = append(emissionsOpts, emissions.WithBaseURL(cfg.Emissions.BaseURL))
	}
	return esg.NewAdvisor(
		search.NewClient(cfg.Search.Key, searchOpts...),
		weather.NewClient(cfg.Weather.Key, weatherOpts...),
		emissions.NewClient(cfg.Emissions.Key, emissionsOpts...),
	)
}

func newPolicyAdmin() *policy.Admin {
	return policy.NewAdmin()
}

func newExposureAnalyzer() *exposure.Analyzer {
	return exposure.NewAnalyzer()
}

// readInputFile reads a record file for a command, mapping a bad path onto
// the input-error taxonomy.
func readInputFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(advisory.ErrInvalidInput, "read %s: %v", path, err)
	}
	return data, nil
}
