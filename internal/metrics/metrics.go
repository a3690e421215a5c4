package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for webhook ingestion
var (
	WebhooksReceivedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stone_webhooks_received_total",
			Help: "Total number of webhooks received, by event kind",
		},
		[]string{"kind"},
	)

	WebhooksInvalidTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stone_webhooks_invalid_total",
			Help: "Total number of webhooks rejected by validation",
		},
	)

	WebhooksDuplicateTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stone_webhooks_duplicate_total",
			Help: "Total number of redelivered webhooks",
		},
	)

	WebhooksFailedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stone_webhooks_failed_total",
			Help: "Total number of webhooks whose reconciliation was rolled back",
		},
	)

	OrdersUpsertedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stone_orders_upserted_total",
			Help: "Total number of order upserts committed",
		},
	)

	ChargesUpsertedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stone_charges_upserted_total",
			Help: "Total number of charge upserts committed",
		},
	)

	ReconcileDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stone_webhook_reconcile_duration_seconds",
			Help:    "Duration of webhook reconciliation",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Register registers all Prometheus metrics
func Register() {
	RegisterWith(prometheus.DefaultRegisterer)
}

// RegisterWith registers all metrics with the given registerer
func RegisterWith(r prometheus.Registerer) {
	r.MustRegister(WebhooksReceivedTotal)
	r.MustRegister(WebhooksInvalidTotal)
	r.MustRegister(WebhooksDuplicateTotal)
	r.MustRegister(WebhooksFailedTotal)
	r.MustRegister(OrdersUpsertedTotal)
	r.MustRegister(ChargesUpsertedTotal)
	r.MustRegister(ReconcileDuration)
}
