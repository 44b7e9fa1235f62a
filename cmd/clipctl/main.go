package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clipops/internal/app/bootstrap"
)

// clipctl is the operator CLI. It drives the same use cases as the API
// process and prints one JSON result per invocation.
func main() {
	app, err := bootstrap.BuildCLI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap cli failed: %v\n", err)
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "clipctl",
		Short:         "Operate clipper campaign submissions, payouts and campaigns",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newSubmissionsCommand(app),
		newStatsCommand(app),
		newSweepCommand(app),
		newCampaignsCommand(app),
		newQuoteCommand(app),
	)

	if err := root.Execute(); err != nil {
		printResult(false, err.Error(), nil)
		os.Exit(1)
	}
}
