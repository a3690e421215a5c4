package webhooks

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	testifysuite "github.com/stretchr/testify/suite"

	"github.com/Alcunha-R/demo-api-stone-host/internal/app"
	"github.com/Alcunha-R/demo-api-stone-host/internal/config"
	"github.com/Alcunha-R/demo-api-stone-host/test/component/fixtures"
	"github.com/Alcunha-R/demo-api-stone-host/test/component/suite"
)

// HTTPSuite drives the public endpoints end to end
type HTTPSuite struct {
	suite.DBSuite

	handler http.Handler
}

func TestHTTPSuite(t *testing.T) {
	suite.SkipIfShortTest(t)
	testifysuite.Run(t, new(HTTPSuite))
}

func (s *HTTPSuite) SetupSuite() {
	s.DBSuite.SetupSuite()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Database = s.Config.Database

	a, err := app.NewApp(cfg, s.OrderStore, s.ChargeStore, s.EventStore, s.Transactor, s.DBHandler, s.Logger)
	s.Require().NoError(err)
	s.handler = a.Handler()
}

func (s *HTTPSuite) do(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *HTTPSuite) TestWebhookThenQuery() {
	rec := s.do(http.MethodPost, "/webhook/stone", fixtures.OrderEvent("hook_http", "order.paid", fixtures.DefaultOrder("or_http")))
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.JSONEq(`{"status":"sucesso","message":"Webhook processado com sucesso"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/pedidos/or_http", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp struct {
		Pedido    map[string]any   `json:"pedido"`
		Cobrancas []map[string]any `json:"cobrancas"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("or_http", resp.Pedido["id"])
	s.Equal("paid", resp.Pedido["status"])
	s.Equal("10.00", resp.Pedido["valor_decimal"])
	s.Require().Len(resp.Cobrancas, 1)
	s.Equal("or_http", resp.Cobrancas[0]["pedido_id"])
}

func (s *HTTPSuite) TestInvalidWebhookStoresNothing() {
	rec := s.do(http.MethodPost, "/webhook/stone", []byte(`{"id":"hook_bad","type":"order.paid","created_at":"x","account":{}, "data": "nope"}`))

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	var n int
	s.Require().NoError(s.DB.Get(&n, "SELECT COUNT(*) FROM "+s.Schema()+".webhooks_stone"))
	s.Zero(n)
}

func (s *HTTPSuite) TestUnknownOrder() {
	rec := s.do(http.MethodGet, "/pedidos/missing", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"detail":"Pedido não encontrado"}`, rec.Body.String())
}

func (s *HTTPSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil)

	s.Equal(http.StatusOK, rec.Code)
}
