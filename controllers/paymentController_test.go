package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nmthang/shopvn-api/models"
	"github.com/nmthang/shopvn-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWorkflow struct {
	placeResp   *models.OrderResponse
	placeErr    error
	listResp    []models.OrderResponse
	byID        *models.OrderResponse
	byCode      *models.OrderResponse
	byCodeErr   error
	callbackErr error

	lastOrderCode string
	lastStatus    string
	callbackCalls int
}

func (s *stubWorkflow) PlaceOrder(_ context.Context, _ int) (*models.OrderResponse, error) {
	return s.placeResp, s.placeErr
}

func (s *stubWorkflow) GetOrdersByUser(_ context.Context, _ int) ([]models.OrderResponse, error) {
	return s.listResp, nil
}

func (s *stubWorkflow) GetOrderByID(_ context.Context, _ uint) (*models.OrderResponse, error) {
	return s.byID, nil
}

func (s *stubWorkflow) GetOrderByCode(_ context.Context, _ string) (*models.OrderResponse, error) {
	return s.byCode, s.byCodeErr
}

func (s *stubWorkflow) UpdateOrderStatus(_ context.Context, _ uint, _ string) error {
	return nil
}

func (s *stubWorkflow) HandlePaymentCallback(_ context.Context, orderCode, webhookStatus string) error {
	s.callbackCalls++
	s.lastOrderCode = orderCode
	s.lastStatus = webhookStatus
	return s.callbackErr
}

func newWebhookRouter(stub *stubWorkflow) *gin.Engine {
	gin.SetMode(gin.TestMode)
	pc := NewPaymentController(stub)

	router := gin.New()
	router.POST("/payment/webhook", pc.Webhook)
	router.GET("/payment/status/:orderCode", pc.GetPaymentStatus)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestWebhookSuccess(t *testing.T) {
	stub := &stubWorkflow{}
	router := newWebhookRouter(stub)

	rec := doJSON(router, http.MethodPost, "/payment/webhook",
		`{"orderCode":"AB12CD34EF","status":"PAID","amount":2500}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PayOSResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Code)

	assert.Equal(t, 1, stub.callbackCalls)
	assert.Equal(t, "AB12CD34EF", stub.lastOrderCode)
	assert.Equal(t, "PAID", stub.lastStatus)
}

func TestWebhookMalformedBody(t *testing.T) {
	stub := &stubWorkflow{}
	router := newWebhookRouter(stub)

	rec := doJSON(router, http.MethodPost, "/payment/webhook", `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, stub.callbackCalls)
}

func TestWebhookMissingOrderCode(t *testing.T) {
	stub := &stubWorkflow{}
	router := newWebhookRouter(stub)

	rec := doJSON(router, http.MethodPost, "/payment/webhook", `{"status":"PAID"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, stub.callbackCalls)
}

func TestWebhookBusinessFailureStillAcknowledged(t *testing.T) {
	stub := &stubWorkflow{callbackErr: services.ErrOrderNotFound}
	router := newWebhookRouter(stub)

	rec := doJSON(router, http.MethodPost, "/payment/webhook",
		`{"orderCode":"MISSING","status":"PAID"}`)

	// The gateway must not retry; reconciliation errors stay server-side.
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PayOSResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Code)
}

func TestGetPaymentStatus(t *testing.T) {
	stub := &stubWorkflow{byCode: &models.OrderResponse{
		OrderCode:  "AB12CD34EF",
		Status:     models.OrderStatusProcessing,
		PaymentURL: "https://pay.example/abc",
	}}
	router := newWebhookRouter(stub)

	rec := doJSON(router, http.MethodGet, "/payment/status/AB12CD34EF", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "AB12CD34EF", body["orderCode"])
	assert.Equal(t, models.OrderStatusProcessing, body["status"])
	assert.Equal(t, "https://pay.example/abc", body["paymentUrl"])
}

func TestGetPaymentStatusNotFound(t *testing.T) {
	stub := &stubWorkflow{}
	router := newWebhookRouter(stub)

	rec := doJSON(router, http.MethodGet, "/payment/status/NOPE", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPaymentStatusLookupError(t *testing.T) {
	stub := &stubWorkflow{byCodeErr: errors.New("db down")}
	router := newWebhookRouter(stub)

	rec := doJSON(router, http.MethodGet, "/payment/status/AB12CD34EF", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
