package main

import (
	"fmt"
	"os/signal"
	"syscall"

	json "github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/sells-group/advisory-cli/internal/advisory"
	"github.com/sells-group/advisory-cli/internal/model"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Underwrite a batch of clients concurrently",
	Long: `Reads a JSON array of client records and runs the underwriting
pipeline over them with bounded concurrency and a provider-friendly rate
limit. The scorers themselves stay single-threaded per request; only the
host fans out.

Example:
  batch --input clients.json --concurrency 8 --rps 20`,
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.String("input", "", "path to the client records JSON array")
	f.Int("concurrency", 0, "max concurrent evaluations (0=use config)")
	f.Float64("rps", 0, "provider requests per second (0=use config)")
	_ = batchCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(batchCmd)
}

// batchResult is one client's outcome, kept in input order.
type batchResult struct {
	Verdict        string `json:"verdict,omitempty"`
	Fraud          bool   `json:"fraud"`
	Recommendation string `json:"recommendation,omitempty"`
	Err            string `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	inputPath, _ := cmd.Flags().GetString("input")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	rps, _ := cmd.Flags().GetFloat64("rps")
	if concurrency <= 0 {
		concurrency = cfg.Batch.Concurrency
	}
	if rps <= 0 {
		rps = cfg.Batch.RatePerSecond
	}

	data, err := readInputFile(inputPath)
	if err != nil {
		return err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return eris.Wrap(advisory.ErrInvalidInput, err.Error())
	}
	if len(raw) == 0 {
		return eris.Wrap(advisory.ErrInvalidInput, "batch: no client records")
	}

	advisor := newUnderwritingAdvisor()
	limiter := rate.NewLimiter(rate.Limit(rps), 1)
	results := make([]batchResult, len(raw))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, rec := range raw {
		i, rec := i, rec
		g.Go(func() error {
			client, err := model.DecodeClientRecord(rec)
			if err != nil {
				results[i] = batchResult{Err: err.Error()}
				return nil
			}

			if err := limiter.Wait(gctx); err != nil {
				return err
			}

			verdict, fraud, recommendation, err := underwriteClient(gctx, advisor, client, false)
			if err != nil {
				results[i] = batchResult{Err: err.Error()}
				return nil
			}
			results[i] = batchResult{
				Verdict:        verdict,
				Fraud:          fraud,
				Recommendation: recommendation,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "batch: underwrite clients")
	}

	failed := 0
	for i, res := range results {
		if res.Err != "" {
			failed++
			fmt.Printf("[%d] error: %s\n", i, res.Err)
			continue
		}
		fmt.Printf("[%d] %s\n", i, res.Verdict)
		fmt.Printf("    fraud=%t  %s\n", res.Fraud, res.Recommendation)
	}

	zap.L().Info("batch: complete",
		zap.Int("clients", len(raw)),
		zap.Int("failed", failed),
	)

	return nil
}
