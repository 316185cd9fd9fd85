package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var supportCmd = &cobra.Command{
	Use:   "support",
	Short: "Answer a customer support query",
	Long: `Dispatches a customer query to the matching templated support
response.

Example:
  support --query "How do I file a claim?"`,
	RunE: runSupport,
}

func init() {
	supportCmd.Flags().String("query", "", "customer query text")
	_ = supportCmd.MarkFlagRequired("query")

	rootCmd.AddCommand(supportCmd)
}

func runSupport(cmd *cobra.Command, _ []string) error {
	query, _ := cmd.Flags().GetString("query")
	fmt.Println(newPolicyAdmin().ProvideCustomerSupport(query))
	return nil
}
