package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/advisory-cli/internal/model"
	"github.com/sells-group/advisory-cli/internal/resilience"
	"github.com/sells-group/advisory-cli/internal/underwriting"
)

var underwriteCmd = &cobra.Command{
	Use:   "underwrite",
	Short: "Evaluate a prospective client",
	Long: `Runs the full underwriting pipeline for one client record:
risk evaluation via the risk-assessment provider, the fraud indicator
check, and the final policy recommendation.

Example:
  underwrite --input client.json`,
	RunE: runUnderwrite,
}

func init() {
	f := underwriteCmd.Flags()
	f.String("input", "", "path to the client record JSON file")
	f.Bool("skip-fraud", false, "skip the fraud check and recommend on risk alone")
	_ = underwriteCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(underwriteCmd)
}

func runUnderwrite(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	inputPath, _ := cmd.Flags().GetString("input")
	skipFraud, _ := cmd.Flags().GetBool("skip-fraud")

	data, err := readInputFile(inputPath)
	if err != nil {
		return err
	}
	client, err := model.DecodeClientRecord(data)
	if err != nil {
		return err
	}

	advisor := newUnderwritingAdvisor()

	verdict, fraud, recommendation, err := underwriteClient(ctx, advisor, client, skipFraud)
	if err != nil {
		return err
	}

	fmt.Println(verdict)
	if !skipFraud {
		fmt.Printf("Fraud suspected: %t\n", fraud)
	}
	fmt.Println(recommendation)

	return nil
}

// underwriteClient runs the three underwriting operations in order, wrapping
// the provider-backed evaluation with host-level retry.
func underwriteClient(ctx context.Context, advisor *underwriting.Advisor, client *model.ClientRecord, skipFraud bool) (verdict string, fraud bool, recommendation string, err error) {
	err = resilience.Do(ctx, resilience.DefaultRetryConfig(), func(ctx context.Context) error {
		var evalErr error
		verdict, evalErr = advisor.EvaluateRisks(ctx, client)
		return evalErr
	})
	if err != nil {
		return "", false, "", err
	}

	if !skipFraud {
		fraud = advisor.DetectFraud(client)
	}
	recommendation = advisor.RecommendPolicy(verdict, fraud)

	zap.L().Info("underwrite: complete",
		zap.Bool("fraud", fraud),
	)

	return verdict, fraud, recommendation, nil
}
