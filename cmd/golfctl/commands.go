package main

import (
	"context"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/golf-tracker/internal/app"
	"github.com/riskibarqy/golf-tracker/internal/config"
	"github.com/riskibarqy/golf-tracker/internal/platform/logging"
	"github.com/riskibarqy/golf-tracker/internal/usecase"
)

var (
	recomputeUsers          []string
	recomputeWorkers        int
	recomputeSkipStatistics bool
	profileMonths           int
)

func init() {
	recomputeCmd.Flags().StringSliceVar(&recomputeUsers, "user", nil, "User ID to recompute; repeatable. Defaults to every user with a completed round")
	recomputeCmd.Flags().IntVar(&recomputeWorkers, "workers", 0, "Concurrent workers (defaults to RECOMPUTE_WORKERS)")
	recomputeCmd.Flags().BoolVar(&recomputeSkipStatistics, "skip-statistics", false, "Only recompute handicaps")

	profileCmd.Flags().IntVar(&profileMonths, "months", 0, "Trend window in months (defaults to TREND_DEFAULT_MONTHS)")

	rootCmd.AddCommand(recomputeCmd)
	rootCmd.AddCommand(profileCmd)
}

var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Recompute handicap indexes and statistics snapshots",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			result, err := c.Recompute.Run(ctx, usecase.RecomputeInput{
				UserIDs:        recomputeUsers,
				Workers:        recomputeWorkers,
				SkipStatistics: recomputeSkipStatistics,
			})
			if err != nil {
				return err
			}
			if err := printJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			if result.FailedCount > 0 {
				return fmt.Errorf("%d of %d users failed", result.FailedCount, result.UserCount)
			}
			return nil
		})
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile <user-id>",
	Short: "Print a player's handicap, statistics and recent trends",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			profile, err := c.Profiles.Get(ctx, args[0], profileMonths)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), profile)
		})
	},
}

func withContainer(cmd *cobra.Command, fn func(context.Context, *app.Container) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// stdout carries the command's JSON output.
	logger := logging.New(logging.Options{Level: cfg.LogLevel, Output: cmd.ErrOrStderr()}).Named("golfctl")
	defer func() { _ = logger.Sync() }()

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	return fn(ctx, c)
}

func printJSON(w io.Writer, v any) error {
	raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}
