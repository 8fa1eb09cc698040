package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/SscSPs/money_tracker/internal/core/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/SscSPs/money_tracker/internal/events"
	"github.com/SscSPs/money_tracker/internal/platform/storage"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var (
		userID  string
		params  dto.ReportParams
		summary bool
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a period report as JSON",
		Long:  `Prints the week, month or year report of a user. With --summary the per-category summary of the same division is printed instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			repos, closeStorage, err := storage.Open(ctx, logger, cfg)
			if err != nil {
				return err
			}
			defer closeStorage()

			svc := services.NewServiceContainer(cfg, repos, events.NopPublisher{})

			var out any
			if summary {
				rows, err := svc.Reporting.GetSummary(ctx, userID, dto.SummaryParams{Division: params.Division})
				if err != nil {
					return fmt.Errorf("failed to build summary: %w", err)
				}
				out = dto.ToCategorySummaryResponses(rows)
			} else {
				report, err := svc.Reporting.GetReport(ctx, userID, params)
				if err != nil {
					return fmt.Errorf("failed to build report: %w", err)
				}
				out = dto.ToReportResponse(report)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "ID of the user to report on")
	cmd.Flags().StringVar(&params.Period, "period", "month", "week, month or year")
	cmd.Flags().StringVar(&params.Division, "division", "", "personal or office; empty for both")
	cmd.Flags().BoolVar(&summary, "summary", false, "print the category summary instead")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
