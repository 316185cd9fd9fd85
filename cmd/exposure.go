package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/advisory-cli/internal/advisory"
	"github.com/sells-group/advisory-cli/internal/model"
)

var exposureCmd = &cobra.Command{
	Use:   "exposure",
	Short: "Report portfolio risk exposure",
	Long: `Aggregates coverage across a portfolio, scores the four risk
factors, and renders the risk exposure report. The factors are computed on
the policy given with --policy, or on the portfolio's first policy.

Example:
  exposure --portfolio portfolio.json
  exposure --portfolio portfolio.json --policy policy.json`,
	RunE: runExposure,
}

func init() {
	f := exposureCmd.Flags()
	f.String("portfolio", "", "path to the portfolio JSON array")
	f.String("policy", "", "path to a single policy JSON file for factor analysis")
	_ = exposureCmd.MarkFlagRequired("portfolio")

	rootCmd.AddCommand(exposureCmd)
}

func runExposure(cmd *cobra.Command, _ []string) error {
	portfolioPath, _ := cmd.Flags().GetString("portfolio")
	policyPath, _ := cmd.Flags().GetString("policy")

	data, err := readInputFile(portfolioPath)
	if err != nil {
		return err
	}
	var portfolio []model.PortfolioPolicy
	if err := json.Unmarshal(data, &portfolio); err != nil {
		return eris.Wrap(advisory.ErrInvalidInput, err.Error())
	}

	analyzer := newExposureAnalyzer()
	exp, err := analyzer.CalculateExposure(portfolio)
	if err != nil {
		return err
	}

	target := &portfolio[0]
	if policyPath != "" {
		policyData, err := readInputFile(policyPath)
		if err != nil {
			return err
		}
		target, err = model.Decode[model.PortfolioPolicy](policyData)
		if err != nil {
			return err
		}
	}

	factors := analyzer.AnalyzeRiskFactors(target)
	fmt.Println(analyzer.GenerateRiskReport(exp, factors))

	return nil
}
