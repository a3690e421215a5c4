package main

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Alcunha-R/demo-api-stone-host/internal/logger"
)

var (
	replayID    string
	replaySince string
	replayLimit int
)

func replayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Re-apply events from the raw event log",
		Long: `Re-apply stored webhooks to the order and charge tables.

Reconciliation is idempotent, so replaying an event that was already applied
only rewrites the same values.

Examples:
  stonehook replay --id hook_abc123
  stonehook replay --since 2024-05-01T00:00:00Z --limit 500`,
		RunE: runReplay,
	}

	cmd.Flags().StringVar(&replayID, "id", "", "replay a single event by id")
	cmd.Flags().StringVar(&replaySince, "since", "", "replay events received since this RFC 3339 time")
	cmd.Flags().IntVar(&replayLimit, "limit", 1000, "maximum number of events replayed with --since")
	cmd.MarkFlagsMutuallyExclusive("id", "since")
	cmd.MarkFlagsOneRequired("id", "since")

	return cmd
}

func runReplay(cmd *cobra.Command, _ []string) error {
	var since time.Time
	if replaySince != "" {
		var err error
		since, err = time.Parse(time.RFC3339, replaySince)
		if err != nil {
			return fmt.Errorf("invalid --since: %w", err)
		}
	}
	if replayLimit <= 0 {
		return errors.New("--limit must be positive")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.close()

	replayer := rt.app.Replayer()

	if replayID != "" {
		ctx = logger.ContextWithEventID(ctx, replayID)
		result, err := replayer.Replay(ctx, replayID)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "replayed %s: %d orders, %d charges\n",
			result.EventID, len(result.Orders), len(result.Charges))
		return nil
	}

	stats, err := replayer.ReplayAll(ctx, since, replayLimit)
	fmt.Fprintf(cmd.OutOrStdout(), "replayed %d events, %d failed\n", stats.Replayed, stats.Failed)
	if err != nil {
		rt.log.Error("Replay incomplete", zap.Error(err))
		return err
	}
	return nil
}
