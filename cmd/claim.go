package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/advisory-cli/internal/model"
)

var claimCmd = &cobra.Command{
	Use:   "claim",
	Short: "Adjudicate a claim",
	Long: `Validates a claim against the policy period and computes the
payout for approved claims.

Example:
  claim --input claim.json`,
	RunE: runClaim,
}

func init() {
	claimCmd.Flags().String("input", "", "path to the claim input JSON file")
	_ = claimCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(claimCmd)
}

func runClaim(cmd *cobra.Command, _ []string) error {
	inputPath, _ := cmd.Flags().GetString("input")

	data, err := readInputFile(inputPath)
	if err != nil {
		return err
	}
	claim, err := model.Decode[model.ClaimInput](data)
	if err != nil {
		return err
	}

	decision, err := newPolicyAdmin().ManageClaim(claim)
	if err != nil {
		return err
	}

	fmt.Printf("Status: %s\n", decision.Status)
	fmt.Printf("Reason: %s\n", decision.Reason)
	if decision.PayoutAmount != nil {
		p := message.NewPrinter(language.AmericanEnglish)
		p.Printf("Payout: $%.2f\n", *decision.PayoutAmount)
	}

	return nil
}
