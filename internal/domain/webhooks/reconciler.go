package webhooks

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Alcunha-R/demo-api-stone-host/internal/dependency"
	"github.com/Alcunha-R/demo-api-stone-host/internal/entity"
	"github.com/Alcunha-R/demo-api-stone-host/internal/logger"
	"github.com/Alcunha-R/demo-api-stone-host/internal/metrics"
	"github.com/Alcunha-R/demo-api-stone-host/internal/producers"
	"github.com/Alcunha-R/demo-api-stone-host/internal/store"
	"github.com/Alcunha-R/demo-api-stone-host/internal/webhook"
)

const alertTitle = "Webhook Stone"

// Result describes what a reconciliation committed
type Result struct {
	EventID string
	Kind    entity.EventKind
	// Duplicate is true when the event id was already in the raw event log.
	// The event is still applied again.
	Duplicate bool
	Orders    []*entity.Order
	Charges   []*entity.Charge
}

// Reconciler applies a validated webhook event to the store.
// The raw event and every upsert it implies are written in one transaction.
type Reconciler struct {
	eventStore    store.EventStore
	orderStore    store.OrderStore
	chargeStore   store.ChargeStore
	dbTransactor  store.DBTransactor
	notifier      dependency.Notifier
	orderProducer producers.OrderProducerI
}

// NewReconciler creates a new Reconciler instance. orderProducer may be nil.
func NewReconciler(
	eventStore store.EventStore,
	orderStore store.OrderStore,
	chargeStore store.ChargeStore,
	dbTransactor store.DBTransactor,
	notifier dependency.Notifier,
	orderProducer producers.OrderProducerI,
) *Reconciler {
	return &Reconciler{
		eventStore:    eventStore,
		orderStore:    orderStore,
		chargeStore:   chargeStore,
		dbTransactor:  dbTransactor,
		notifier:      notifier,
		orderProducer: orderProducer,
	}
}

// Reconcile records the raw event and dispatches it on its type prefix.
// Any failure rolls back every write of the event, the raw event included.
func (r *Reconciler) Reconcile(ctx context.Context, ev webhook.Event) (*Result, error) {
	meta := ev.Meta()
	ctx = logger.ContextWithEventID(ctx, meta.ID)
	start := time.Now()

	metrics.WebhooksReceivedTotal.WithLabelValues(string(ev.Kind())).Inc()

	result := &Result{EventID: meta.ID, Kind: ev.Kind()}
	err := r.dbTransactor.Exec(ctx, func(txCtx context.Context) error {
		result.Orders = result.Orders[:0]
		result.Charges = result.Charges[:0]

		created, err := r.eventStore.Create(txCtx, webhook.RawEvent(ev))
		if err != nil {
			return fmt.Errorf("failed to store raw event: %w", err)
		}
		result.Duplicate = !created

		switch e := ev.(type) {
		case *webhook.OrderEvent:
			return r.applyOrderEvent(txCtx, e, result)
		case *webhook.ChargeEvent:
			return r.applyChargeEvent(txCtx, e, result)
		default:
			return nil
		}
	})
	metrics.ReconcileDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		r.handleFailure(ctx, meta, err)
		return nil, fmt.Errorf("failed to reconcile event %s: %w", meta.ID, err)
	}

	r.afterCommit(ctx, result)

	logger.Info(ctx, "Webhook reconciled",
		zap.String("type", meta.Type),
		zap.Bool("duplicate", result.Duplicate),
		zap.Int("orders", len(result.Orders)),
		zap.Int("charges", len(result.Charges)))

	return result, nil
}

// applyOrderEvent upserts the order, then its charges in payload order
func (r *Reconciler) applyOrderEvent(ctx context.Context, ev *webhook.OrderEvent, result *Result) error {
	if err := r.orderStore.Upsert(ctx, ev.Order); err != nil {
		return fmt.Errorf("failed to upsert order %s: %w", ev.Order.ID, err)
	}
	result.Orders = append(result.Orders, ev.Order)

	for _, charge := range ev.Charges {
		if err := r.chargeStore.Upsert(ctx, charge); err != nil {
			return fmt.Errorf("failed to upsert charge %s of order %s: %w", charge.ID, ev.Order.ID, err)
		}
		result.Charges = append(result.Charges, charge)
	}

	return nil
}

// applyChargeEvent upserts the embedded parent order when the payload describes one, then the charge
func (r *Reconciler) applyChargeEvent(ctx context.Context, ev *webhook.ChargeEvent, result *Result) error {
	if ev.Order != nil {
		if err := r.orderStore.Upsert(ctx, ev.Order); err != nil {
			return fmt.Errorf("failed to upsert order %s: %w", ev.Order.ID, err)
		}
		result.Orders = append(result.Orders, ev.Order)
	}

	if err := r.chargeStore.Upsert(ctx, ev.Charge); err != nil {
		return fmt.Errorf("failed to upsert charge %s: %w", ev.Charge.ID, err)
	}
	result.Charges = append(result.Charges, ev.Charge)

	return nil
}

func (r *Reconciler) handleFailure(ctx context.Context, meta *webhook.Envelope, err error) {
	metrics.WebhooksFailedTotal.Inc()

	logger.Error(ctx, "Failed to reconcile webhook",
		zap.String("type", meta.Type),
		zap.Error(err))

	r.notifier.Notify(ctx, alertTitle,
		fmt.Sprintf("Falha ao processar o evento %s (%s): %v", meta.ID, meta.Type, err))
}

// afterCommit runs side effects that must not affect the outcome of the event
func (r *Reconciler) afterCommit(ctx context.Context, result *Result) {
	if result.Duplicate {
		metrics.WebhooksDuplicateTotal.Inc()
	}
	metrics.OrdersUpsertedTotal.Add(float64(len(result.Orders)))
	metrics.ChargesUpsertedTotal.Add(float64(len(result.Charges)))

	if r.orderProducer == nil {
		return
	}
	for _, order := range result.Orders {
		if err := r.orderProducer.SendOrderEvent(ctx, order); err != nil {
			logger.Warn(ctx, "Failed to publish order event",
				zap.String("order_id", order.ID),
				zap.Error(err))
		}
	}
}
