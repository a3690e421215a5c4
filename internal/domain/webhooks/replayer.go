package webhooks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Alcunha-R/demo-api-stone-host/internal/logger"
	"github.com/Alcunha-R/demo-api-stone-host/internal/store"
	"github.com/Alcunha-R/demo-api-stone-host/internal/utils"
	"github.com/Alcunha-R/demo-api-stone-host/internal/webhook"
)

// ErrReplayIncomplete is returned by ReplayAll when at least one event failed
var ErrReplayIncomplete = errors.New("some events could not be replayed")

// ReplayStats summarizes a ReplayAll run
type ReplayStats struct {
	Replayed int
	Failed   int
}

// Replayer re-applies events from the raw event log
type Replayer struct {
	eventStore store.EventStore
	reconciler *Reconciler
}

// NewReplayer creates a new Replayer instance
func NewReplayer(eventStore store.EventStore, reconciler *Reconciler) *Replayer {
	return &Replayer{
		eventStore: eventStore,
		reconciler: reconciler,
	}
}

// Replay loads a stored event and reconciles it again
func (r *Replayer) Replay(ctx context.Context, id string) (*Result, error) {
	raw, err := r.eventStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load event %s: %w", id, err)
	}

	ev, err := webhook.Parse(ctx, raw.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored event %s: %w", id, err)
	}

	return r.reconciler.Reconcile(ctx, ev)
}

// ReplayAll replays up to limit events received since the given time, oldest first.
// A failing event is logged and counted; the run stops only when ctx is done.
func (r *Replayer) ReplayAll(ctx context.Context, since time.Time, limit int) (ReplayStats, error) {
	var stats ReplayStats

	events, err := r.eventStore.ListReceivedSince(ctx, since, limit)
	if err != nil {
		return stats, fmt.Errorf("failed to list events: %w", err)
	}

	for _, raw := range events {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		if _, err := r.Replay(ctx, raw.ID); err != nil {
			if utils.IsContextCanceledErr(err) {
				return stats, err
			}
			stats.Failed++
			logger.Warn(ctx, "Failed to replay event",
				zap.String("event_id", raw.ID),
				zap.Error(err))
			continue
		}
		stats.Replayed++
	}

	logger.Info(ctx, "Replay finished",
		zap.Time("since", since),
		zap.Int("replayed", stats.Replayed),
		zap.Int("failed", stats.Failed))

	if stats.Failed > 0 {
		return stats, fmt.Errorf("%w: %d of %d", ErrReplayIncomplete, stats.Failed, len(events))
	}
	return stats, nil
}
