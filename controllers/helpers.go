package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/nmthang/shopvn-api/models"
)

// orderWorkflow is the slice of the order service the HTTP layer uses.
type orderWorkflow interface {
	PlaceOrder(ctx context.Context, userID int) (*models.OrderResponse, error)
	GetOrdersByUser(ctx context.Context, userID int) ([]models.OrderResponse, error)
	GetOrderByID(ctx context.Context, orderID uint) (*models.OrderResponse, error)
	GetOrderByCode(ctx context.Context, orderCode string) (*models.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status string) error
	HandlePaymentCallback(ctx context.Context, orderCode, webhookStatus string) error
}

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// currentUserID reads the authenticated user id placed in the context by
// RequireAuth.
func currentUserID(ctx *gin.Context) (int, bool) {
	value, exists := ctx.Get("userId")
	if !exists {
		return 0, false
	}
	userID, ok := value.(int)
	return userID, ok
}
