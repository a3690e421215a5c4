package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Alcunha-R/demo-api-stone-host/internal/config"
	"github.com/Alcunha-R/demo-api-stone-host/internal/entity"
	storemock "github.com/Alcunha-R/demo-api-stone-host/internal/store/gen"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func newTestApp(t *testing.T, ping pingFunc, orderStore *storemock.OrderStoreMock) *App {
	t.Helper()

	cfg := config.Default()
	cfg.HTTP.RequestTimeout = time.Second

	a, err := NewApp(
		cfg,
		orderStore,
		&storemock.ChargeStoreMock{},
		&storemock.EventStoreMock{},
		&storemock.DBTransactorMock{},
		ping,
		zap.NewNop(),
	)
	require.NoError(t, err)
	return a
}

func TestApp_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		a := newTestApp(t, func(ctx context.Context) error { return nil }, &storemock.OrderStoreMock{})

		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	})

	t.Run("database unreachable", func(t *testing.T) {
		a := newTestApp(t, func(ctx context.Context) error { return errors.New("dial tcp: refused") }, &storemock.OrderStoreMock{})

		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestApp_Routes(t *testing.T) {
	orderStore := &storemock.OrderStoreMock{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.Order, error) {
			_, hasDeadline := ctx.Deadline()
			if !hasDeadline {
				return nil, errors.New("request context has no deadline")
			}
			return nil, entity.ErrNotFound
		},
	}
	a := newTestApp(t, func(ctx context.Context) error { return nil }, orderStore)

	t.Run("order query runs under the request timeout", func(t *testing.T) {
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pedidos/or_1", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(traceHeader))
	})

	t.Run("webhook validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/webhook/stone", strings.NewReader(`[]`))
		req.Header.Set(traceHeader, "trace-from-caller")
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "trace-from-caller", rec.Header().Get(traceHeader))
	})

	t.Run("oversized body", func(t *testing.T) {
		body := `{"id":"` + strings.Repeat("x", int(config.Default().HTTP.MaxBodyBytes)) + `"}`
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhook/stone", strings.NewReader(body)))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
