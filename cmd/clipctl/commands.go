package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	campaignhttp "clipops/contexts/campaign-ops/campaign-service/transport/http"
	"clipops/contexts/campaign-ops/review-service/application/queries"
	reviewhttp "clipops/contexts/campaign-ops/review-service/transport/http"
	payouthttp "clipops/contexts/finance-core/payout-engine/transport/http"
	"clipops/internal/app/bootstrap"
)

type cliResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func printResult(success bool, message string, data any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(cliResult{Success: success, Message: message, Data: data})
}

func run(message string, data any, err error) error {
	if err != nil {
		return err
	}
	printResult(true, message, data)
	return nil
}

func newSubmissionsCommand(app *bootstrap.CLIApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submissions",
		Short: "Inspect and review clip submissions",
	}
	cmd.AddCommand(
		newSubmissionsListCommand(app),
		newSubmissionsGetCommand(app),
		newSubmissionsApproveCommand(app),
		newSubmissionsRejectCommand(app),
	)
	return cmd
}

func newSubmissionsListCommand(app *bootstrap.CLIApp) *cobra.Command {
	var query queries.ListSubmissionsQuery
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List submissions, optionally filtered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := app.Review.Handler.ListSubmissionsHandler(cmd.Context(), query)
			return run("", resp, err)
		},
	}
	cmd.Flags().StringVar(&query.CampaignID, "campaign", "", "filter by campaign id")
	cmd.Flags().StringVar(&query.SubmitterID, "submitter", "", "filter by submitter id")
	cmd.Flags().StringVar(&query.Status, "status", "", "filter by status")
	cmd.Flags().StringVar(&query.Platform, "platform", "", "filter by platform")
	cmd.Flags().StringVar(&query.Cursor, "cursor", "", "pagination cursor")
	cmd.Flags().IntVar(&query.Limit, "limit", 0, "page size")
	return cmd
}

func newSubmissionsGetCommand(app *bootstrap.CLIApp) *cobra.Command {
	return &cobra.Command{
		Use:   "get <submission_id>",
		Short: "Show one submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Review.Handler.GetSubmissionHandler(cmd.Context(), args[0])
			return run("", resp, err)
		},
	}
}

func newSubmissionsApproveCommand(app *bootstrap.CLIApp) *cobra.Command {
	var (
		views     int64
		cpm       float64
		flatFee   float64
		bonus     float64
		minPayout float64
		maxPayout float64
	)
	cmd := &cobra.Command{
		Use:   "approve <submission_id>",
		Short: "Approve a submission and calculate its payout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := reviewhttp.ApproveSubmissionRequest{}
			flags := cmd.Flags()
			if flags.Changed("views") {
				req.ViewCountOverride = &views
			}
			if flags.Changed("cpm") {
				req.CPMRate = &cpm
			}
			if flags.Changed("flat-fee") {
				req.FlatFee = &flatFee
			}
			if flags.Changed("bonus") {
				req.BonusRate = &bonus
			}
			if flags.Changed("min-payout") {
				req.MinPayout = &minPayout
			}
			if flags.Changed("max-payout") {
				req.MaxPayout = &maxPayout
			}

			resp, err := app.Review.Handler.ApproveSubmissionHandler(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			message := fmt.Sprintf("submission approved, payout %.2f", resp.Breakdown.FinalPayout)
			return run(message, resp, nil)
		},
	}
	cmd.Flags().Int64Var(&views, "views", 0, "override the recorded view count")
	cmd.Flags().Float64Var(&cpm, "cpm", 0, "override the CPM rate")
	cmd.Flags().Float64Var(&flatFee, "flat-fee", 0, "override the flat fee")
	cmd.Flags().Float64Var(&bonus, "bonus", 0, "override the bonus rate")
	cmd.Flags().Float64Var(&minPayout, "min-payout", 0, "override the minimum payout threshold")
	cmd.Flags().Float64Var(&maxPayout, "max-payout", 0, "override the payout cap")
	return cmd
}

func newSubmissionsRejectCommand(app *bootstrap.CLIApp) *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   "reject <submission_id>",
		Short: "Reject a submission with a reason",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Review.Handler.RejectSubmissionHandler(cmd.Context(), args[0], reviewhttp.RejectSubmissionRequest{
				Reason: reason,
			})
			return run("submission rejected", resp, err)
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "rejection reason (required)")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func newStatsCommand(app *bootstrap.CLIApp) *cobra.Command {
	var campaignID string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Aggregate submission counts and view totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := app.Review.Handler.StatsHandler(cmd.Context(), campaignID)
			return run("", resp, err)
		},
	}
	cmd.Flags().StringVar(&campaignID, "campaign", "", "restrict stats to one campaign")
	return cmd
}

func newSweepCommand(app *bootstrap.CLIApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Auto-approve sweeps",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Run one sweep for the configured campaign",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.Review.Sweeper.RunOnce(cmd.Context())
			if err != nil {
				return err
			}
			message := fmt.Sprintf("sweep finished: %d approved, %d skipped", result.Approved, result.Skipped)
			return run(message, result, nil)
		},
	})
	return cmd
}

func newCampaignsCommand(app *bootstrap.CLIApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaigns",
		Short: "Manage platform campaigns",
	}
	cmd.AddCommand(
		newCampaignsCreateCommand(app),
		newCampaignsListCommand(app),
	)
	return cmd
}

func newCampaignsCreateCommand(app *bootstrap.CLIApp) *cobra.Command {
	var req campaignhttp.CreateCampaignRequest
	var (
		cpm       float64
		flatFee   float64
		bonus     float64
		minPayout float64
		maxPayout float64
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a campaign on the platform",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("cpm") {
				req.CPMRate = &cpm
			}
			if flags.Changed("flat-fee") {
				req.FlatFee = &flatFee
			}
			if flags.Changed("bonus") {
				req.BonusRate = &bonus
			}
			if flags.Changed("min-payout") {
				req.MinPayoutThreshold = &minPayout
			}
			if flags.Changed("max-payout") {
				req.MaxPayoutCap = &maxPayout
			}

			resp, err := app.Campaigns.Handler.CreateCampaignHandler(cmd.Context(), req)
			return run("campaign created", resp, err)
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "campaign title (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "campaign description (required)")
	cmd.Flags().Float64Var(&req.BudgetTotal, "budget", 0, "total campaign budget")
	cmd.Flags().Float64Var(&cpm, "cpm", 0, "CPM rate override")
	cmd.Flags().Float64Var(&flatFee, "flat-fee", 0, "flat fee override")
	cmd.Flags().Float64Var(&bonus, "bonus", 0, "bonus rate override")
	cmd.Flags().Float64Var(&minPayout, "min-payout", 0, "minimum payout threshold override")
	cmd.Flags().Float64Var(&maxPayout, "max-payout", 0, "payout cap override")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func newCampaignsListCommand(app *bootstrap.CLIApp) *cobra.Command {
	var (
		cursor string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := app.Campaigns.Handler.ListCampaignsHandler(cmd.Context(), cursor, limit)
			return run("", resp, err)
		},
	}
	cmd.Flags().StringVar(&cursor, "cursor", "", "pagination cursor")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	return cmd
}

func newQuoteCommand(app *bootstrap.CLIApp) *cobra.Command {
	var req payouthttp.QuoteRequest
	var (
		cpm       float64
		flatFee   float64
		bonus     float64
		minPayout float64
		maxPayout float64
	)
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote the payout for a view count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("cpm") {
				req.CPMRate = &cpm
			}
			if flags.Changed("flat-fee") {
				req.FlatFee = &flatFee
			}
			if flags.Changed("bonus") {
				req.BonusRate = &bonus
			}
			if flags.Changed("min-payout") {
				req.MinPayoutThreshold = &minPayout
			}
			if flags.Changed("max-payout") {
				req.MaxPayoutCap = &maxPayout
			}

			resp, err := app.Payouts.Handler.QuoteHandler(req)
			return run("", resp, err)
		},
	}
	cmd.Flags().StringVar(&req.CampaignID, "campaign", "", "campaign id the quote is for")
	cmd.Flags().Int64Var(&req.ViewCount, "views", 0, "view count to quote (required)")
	cmd.Flags().Float64Var(&cpm, "cpm", 0, "CPM rate override")
	cmd.Flags().Float64Var(&flatFee, "flat-fee", 0, "flat fee override")
	cmd.Flags().Float64Var(&bonus, "bonus", 0, "bonus rate override")
	cmd.Flags().Float64Var(&minPayout, "min-payout", 0, "minimum payout threshold override")
	cmd.Flags().Float64Var(&maxPayout, "max-payout", 0, "payout cap override")
	_ = cmd.MarkFlagRequired("views")
	return cmd
}
