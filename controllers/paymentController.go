package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nmthang/shopvn-api/models"
)

// PayOSWebhookPayload is the notification body the gateway delivers.
type PayOSWebhookPayload struct {
	OrderCode     string    `json:"orderCode"`
	Amount        int64     `json:"amount"`
	TransactionID string    `json:"transactionId"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
}

type PaymentController struct {
	orders orderWorkflow
}

func NewPaymentController(orders orderWorkflow) *PaymentController {
	return &PaymentController{orders: orders}
}

// Webhook receives payment notifications from the gateway. A missing order
// code is the only 400: without it the gateway could not correlate a retry
// anyway. Every other failure is logged and acknowledged with a success body
// so the gateway does not go into a retry storm.
func (pc *PaymentController) Webhook(ctx *gin.Context) {
	var payload PayOSWebhookPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, models.PayOSResponse{Code: -1, Message: "Invalid webhook payload"})
		return
	}

	if payload.OrderCode == "" {
		ctx.JSON(http.StatusBadRequest, models.PayOSResponse{Code: -1, Message: "orderCode is required"})
		return
	}

	log.Printf("Received payment webhook for order %s with status %q", payload.OrderCode, payload.Status)

	if err := pc.orders.HandlePaymentCallback(ctx.Request.Context(), payload.OrderCode, payload.Status); err != nil {
		log.Printf("Webhook for order %s could not be reconciled: %v", payload.OrderCode, err)
	}

	ctx.JSON(http.StatusOK, models.PayOSResponse{Code: 0, Message: "Webhook processed successfully"})
}

func (pc *PaymentController) GetPaymentStatus(ctx *gin.Context) {
	orderCode := ctx.Param("orderCode")

	order, err := pc.orders.GetOrderByCode(ctx.Request.Context(), orderCode)
	if err != nil {
		log.Printf("Error getting payment status for %s: %v", orderCode, err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch payment status")
		return
	}
	if order == nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orderCode":  orderCode,
		"status":     order.Status,
		"paymentUrl": order.PaymentURL,
	})
}
