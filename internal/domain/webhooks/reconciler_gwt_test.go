package webhooks

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dependencygen "github.com/Alcunha-R/demo-api-stone-host/internal/dependency/gen"
	"github.com/Alcunha-R/demo-api-stone-host/internal/entity"
	produsersgen "github.com/Alcunha-R/demo-api-stone-host/internal/producers/gen"
	storemock "github.com/Alcunha-R/demo-api-stone-host/internal/store/gen"
	"github.com/Alcunha-R/demo-api-stone-host/internal/webhook"
)

// TestData содержит все данные и состояния для каждого теста
type TestData struct {
	ctx context.Context
	t   *testing.T

	// Компонент, который тестируем
	reconciler *Reconciler

	// Моки зависимостей
	eventStore    *storemock.EventStoreMock
	orderStore    *storemock.OrderStoreMock
	chargeStore   *storemock.ChargeStoreMock
	dbTransactor  *storemock.DBTransactorMock
	notifier      *dependencygen.NotifierMock
	orderProducer *produsersgen.OrderProducerIMock

	// Порядок операций записи, включая откат
	writes     []string
	rolledBack bool

	// Входное событие и результат
	event  webhook.Event
	result *Result
	err    error
}

// TestCase определяет тестовый сценарий в формате GWT
type TestCase struct {
	name  string
	given func(td *TestData)
	when  func(td *TestData)
	then  func(td *TestData)
}

func createTestData(t *testing.T) *TestData {
	td := &TestData{
		ctx:           context.Background(),
		t:             t,
		eventStore:    &storemock.EventStoreMock{},
		orderStore:    &storemock.OrderStoreMock{},
		chargeStore:   &storemock.ChargeStoreMock{},
		dbTransactor:  &storemock.DBTransactorMock{},
		notifier:      &dependencygen.NotifierMock{},
		orderProducer: &produsersgen.OrderProducerIMock{},
	}

	td.eventStore.CreateFunc = func(ctx context.Context, event *entity.RawEvent) (bool, error) {
		td.writes = append(td.writes, "event:"+event.ID)
		return true, nil
	}
	td.orderStore.UpsertFunc = func(ctx context.Context, order *entity.Order) error {
		td.writes = append(td.writes, "order:"+order.ID)
		return nil
	}
	td.chargeStore.UpsertFunc = func(ctx context.Context, charge *entity.Charge) error {
		td.writes = append(td.writes, "charge:"+charge.ID)
		return nil
	}
	td.dbTransactor.ExecFunc = func(ctx context.Context, fn func(ctx context.Context) error) error {
		if err := fn(ctx); err != nil {
			td.rolledBack = true
			return err
		}
		return nil
	}
	td.orderProducer.SendOrderEventFunc = func(ctx context.Context, order *entity.Order) error {
		return nil
	}

	td.reconciler = NewReconciler(td.eventStore, td.orderStore, td.chargeStore, td.dbTransactor, td.notifier, td.orderProducer)

	return td
}

func mustParse(t *testing.T, body string) webhook.Event {
	t.Helper()
	ev, err := webhook.Parse(context.Background(), []byte(body))
	require.NoError(t, err)
	return ev
}

const orderPaidBody = `{
	"id": "hook_1",
	"type": "order.paid",
	"created_at": "2024-05-01T12:00:00Z",
	"account": {"id": "acc_1"},
	"data": {
		"id": "or_1",
		"code": "ABC",
		"amount": 1000,
		"currency": "BRL",
		"status": "paid",
		"closed": true,
		"customer": {"id": "cus_1"},
		"charges": [
			{"id": "ch_1", "code": "C1", "amount": 600, "paid_amount": 600, "status": "paid", "currency": "BRL", "payment_method": "pix"},
			{"id": "ch_2", "code": "C2", "amount": 400, "paid_amount": 400, "status": "paid", "currency": "BRL", "payment_method": "credit_card"}
		]
	}
}`

func TestReconciler_Reconcile(t *testing.T) {
	testCases := []TestCase{
		{
			name: "Order event upserts order then charges in payload order",
			given: func(td *TestData) {
				// Given: событие order.paid с двумя платежами
				td.event = mustParse(td.t, orderPaidBody)
			},
			when: func(td *TestData) {
				td.result, td.err = td.reconciler.Reconcile(td.ctx, td.event)
			},
			then: func(td *TestData) {
				require.NoError(td.t, td.err)
				assert.Equal(td.t, []string{"event:hook_1", "order:or_1", "charge:ch_1", "charge:ch_2"}, td.writes)
				assert.False(td.t, td.result.Duplicate)
				assert.Equal(td.t, entity.EventKindOrder, td.result.Kind)

				for _, call := range td.chargeStore.UpsertCalls() {
					require.NotNil(td.t, call.Charge.OrderID)
					assert.Equal(td.t, "or_1", *call.Charge.OrderID)
				}

				require.Len(td.t, td.orderProducer.SendOrderEventCalls(), 1)
				assert.Equal(td.t, "or_1", td.orderProducer.SendOrderEventCalls()[0].Order.ID)
				assert.Empty(td.t, td.notifier.NotifyCalls())
			},
		},
		{
			name: "Redelivered event is still applied",
			given: func(td *TestData) {
				// Given: событие уже записано в журнал
				td.event = mustParse(td.t, orderPaidBody)
				td.eventStore.CreateFunc = func(ctx context.Context, event *entity.RawEvent) (bool, error) {
					return false, nil
				}
			},
			when: func(td *TestData) {
				td.result, td.err = td.reconciler.Reconcile(td.ctx, td.event)
			},
			then: func(td *TestData) {
				require.NoError(td.t, td.err)
				assert.True(td.t, td.result.Duplicate)
				assert.Len(td.t, td.orderStore.UpsertCalls(), 1)
				assert.Len(td.t, td.chargeStore.UpsertCalls(), 2)
			},
		},
		{
			name: "Charge event without order reference stores an unlinked charge",
			given: func(td *TestData) {
				td.event = mustParse(td.t, `{
					"id": "hook_2", "type": "charge.created", "created_at": "2024-05-01T12:00:00Z",
					"account": {}, "data": {"id": "ch_9", "amount": 500, "status": "pending"}
				}`)
			},
			when: func(td *TestData) {
				td.result, td.err = td.reconciler.Reconcile(td.ctx, td.event)
			},
			then: func(td *TestData) {
				require.NoError(td.t, td.err)
				assert.Equal(td.t, []string{"event:hook_2", "charge:ch_9"}, td.writes)
				assert.Nil(td.t, td.chargeStore.UpsertCalls()[0].Charge.OrderID)
				assert.Empty(td.t, td.orderProducer.SendOrderEventCalls())
			},
		},
		{
			name: "Charge event with a full embedded order upserts the order first",
			given: func(td *TestData) {
				td.event = mustParse(td.t, `{
					"id": "hook_3", "type": "charge.paid", "created_at": "2024-05-01T12:00:00Z",
					"account": {},
					"data": {
						"id": "ch_1", "amount": 600, "paid_amount": 600, "status": "paid",
						"order": {"id": "or_1", "code": "ABC", "amount": 1000, "currency": "BRL", "status": "paid"}
					}
				}`)
			},
			when: func(td *TestData) {
				td.result, td.err = td.reconciler.Reconcile(td.ctx, td.event)
			},
			then: func(td *TestData) {
				require.NoError(td.t, td.err)
				assert.Equal(td.t, []string{"event:hook_3", "order:or_1", "charge:ch_1"}, td.writes)
				require.NotNil(td.t, td.chargeStore.UpsertCalls()[0].Charge.OrderID)
				assert.Equal(td.t, "or_1", *td.chargeStore.UpsertCalls()[0].Charge.OrderID)
			},
		},
		{
			name: "Unknown event only records the raw event",
			given: func(td *TestData) {
				td.event = mustParse(td.t, `{
					"id": "hook_4", "type": "subscription.created", "created_at": "2024-05-01T12:00:00Z",
					"account": {}, "data": {"id": "sub_1"}
				}`)
			},
			when: func(td *TestData) {
				td.result, td.err = td.reconciler.Reconcile(td.ctx, td.event)
			},
			then: func(td *TestData) {
				require.NoError(td.t, td.err)
				assert.Equal(td.t, []string{"event:hook_4"}, td.writes)
				assert.Equal(td.t, entity.EventKindUnknown, td.result.Kind)
			},
		},
		{
			name: "Failure on the second charge rolls back and alerts",
			given: func(td *TestData) {
				td.event = mustParse(td.t, orderPaidBody)
				td.chargeStore.UpsertFunc = func(ctx context.Context, charge *entity.Charge) error {
					if charge.ID == "ch_2" {
						return fmt.Errorf("insert failed: %w", entity.ErrStore)
					}
					td.writes = append(td.writes, "charge:"+charge.ID)
					return nil
				}
			},
			when: func(td *TestData) {
				td.result, td.err = td.reconciler.Reconcile(td.ctx, td.event)
			},
			then: func(td *TestData) {
				require.Error(td.t, td.err)
				assert.ErrorIs(td.t, td.err, entity.ErrStore)
				assert.Nil(td.t, td.result)
				assert.True(td.t, td.rolledBack)

				require.Len(td.t, td.notifier.NotifyCalls(), 1)
				assert.Equal(td.t, alertTitle, td.notifier.NotifyCalls()[0].Title)
				assert.Contains(td.t, td.notifier.NotifyCalls()[0].Message, "hook_1")
				assert.Empty(td.t, td.orderProducer.SendOrderEventCalls())
			},
		},
		{
			name: "Raw event write failure aborts before any upsert",
			given: func(td *TestData) {
				td.event = mustParse(td.t, orderPaidBody)
				td.eventStore.CreateFunc = func(ctx context.Context, event *entity.RawEvent) (bool, error) {
					return false, fmt.Errorf("connection reset: %w", entity.ErrStore)
				}
			},
			when: func(td *TestData) {
				td.result, td.err = td.reconciler.Reconcile(td.ctx, td.event)
			},
			then: func(td *TestData) {
				assert.ErrorIs(td.t, td.err, entity.ErrStore)
				assert.Empty(td.t, td.orderStore.UpsertCalls())
				assert.Empty(td.t, td.chargeStore.UpsertCalls())
			},
		},
		{
			name: "Feed publication failure does not fail the event",
			given: func(td *TestData) {
				td.event = mustParse(td.t, orderPaidBody)
				td.orderProducer.SendOrderEventFunc = func(ctx context.Context, order *entity.Order) error {
					return errors.New("broker down")
				}
			},
			when: func(td *TestData) {
				td.result, td.err = td.reconciler.Reconcile(td.ctx, td.event)
			},
			then: func(td *TestData) {
				require.NoError(td.t, td.err)
				assert.Len(td.t, td.orderProducer.SendOrderEventCalls(), 1)
				assert.Empty(td.t, td.notifier.NotifyCalls())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			td := createTestData(t)

			tc.given(td)
			tc.when(td)
			tc.then(td)
		})
	}
}

func TestReconciler_ReconcileWithoutProducer(t *testing.T) {
	td := createTestData(t)
	td.reconciler = NewReconciler(td.eventStore, td.orderStore, td.chargeStore, td.dbTransactor, td.notifier, nil)

	result, err := td.reconciler.Reconcile(td.ctx, mustParse(t, orderPaidBody))

	require.NoError(t, err)
	assert.Len(t, result.Orders, 1)
	assert.Len(t, result.Charges, 2)
}
