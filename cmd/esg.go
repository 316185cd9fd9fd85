package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sells-group/advisory-cli/internal/model"
	"github.com/sells-group/advisory-cli/internal/resilience"
)

var esgCmd = &cobra.Command{
	Use:   "esg",
	Short: "Report ESG compliance and carbon risk for a company",
	Long: `Assesses ESG compliance from web-search snippets, calculates
carbon risk from weather and emissions data, and renders the combined
report.

Example:
  esg --company company.json`,
	RunE: runESG,
}

func init() {
	esgCmd.Flags().String("company", "", "path to the company record JSON file")
	_ = esgCmd.MarkFlagRequired("company")

	rootCmd.AddCommand(esgCmd)
}

func runESG(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	companyPath, _ := cmd.Flags().GetString("company")

	data, err := readInputFile(companyPath)
	if err != nil {
		return err
	}
	company, err := model.Decode[model.CompanyRecord](data)
	if err != nil {
		return err
	}

	advisor := newESGAdvisor()
	retryCfg := resilience.DefaultRetryConfig()

	var esgResult *model.ESGResult
	err = resilience.Do(ctx, retryCfg, func(ctx context.Context) error {
		var assessErr error
		esgResult, assessErr = advisor.AssessCompliance(ctx, company)
		return assessErr
	})
	if err != nil {
		return err
	}

	var carbon *model.CarbonRiskResult
	err = resilience.Do(ctx, retryCfg, func(ctx context.Context) error {
		var carbonErr error
		carbon, carbonErr = advisor.CalculateCarbonRisk(ctx, company)
		return carbonErr
	})
	if err != nil {
		return err
	}

	fmt.Println(advisor.GenerateReport(esgResult, carbon))

	return nil
}
