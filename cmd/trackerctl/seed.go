package main

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_tracker/internal/core/services"
	"github.com/SscSPs/money_tracker/internal/events"
	"github.com/SscSPs/money_tracker/internal/platform/storage"
	"github.com/spf13/cobra"
)

func seedCategoriesCmd() *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "seed-categories",
		Short: "Add the default categories a user is missing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			repos, closeStorage, err := storage.Open(ctx, logger, cfg)
			if err != nil {
				return err
			}
			defer closeStorage()

			svc := services.NewServiceContainer(cfg, repos, events.NopPublisher{})
			created, err := svc.Category.SeedDefaultCategories(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to seed categories: %w", err)
			}
			logger.Info("Seeded default categories", slog.String("userID", userID), slog.Int("created", created))
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "ID of the user to seed")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
