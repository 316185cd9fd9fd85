package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/advisory-cli/internal/model"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Issue a policy from a policy input record",
	Long: `Administers a policy: generates the policy number and applies the
premium, deductible, and coverage-limit rubric.

Example:
  policy --input policy.json`,
	RunE: runPolicy,
}

func init() {
	policyCmd.Flags().String("input", "", "path to the policy input JSON file")
	_ = policyCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(policyCmd)
}

func runPolicy(cmd *cobra.Command, _ []string) error {
	inputPath, _ := cmd.Flags().GetString("input")

	data, err := readInputFile(inputPath)
	if err != nil {
		return err
	}
	input, err := model.Decode[model.PolicyInput](data)
	if err != nil {
		return err
	}

	details := newPolicyAdmin().AdministerPolicy(input)
	printPolicyDetails(details)

	return nil
}

func printPolicyDetails(d *model.PolicyDetails) {
	p := message.NewPrinter(language.AmericanEnglish)

	fmt.Printf("Policy Number: %s\n", d.PolicyNumber)
	fmt.Printf("Coverage Period: %s to %s\n", d.CoverageStartDate, d.CoverageEndDate)
	p.Printf("Premium: $%.2f\n", d.Premium)
	p.Printf("Deductible: $%.2f\n", d.Deductible)
	fmt.Println("Coverage Limits:")
	p.Printf("- Property Damage: $%.2f\n", d.CoverageLimits.PropertyDamage)
	p.Printf("- Liability: $%.2f\n", d.CoverageLimits.Liability)
	p.Printf("- Medical Expenses: $%.2f\n", d.CoverageLimits.MedicalExpenses)
}
