package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nmthang/shopvn-api/services"
)

type OrderController struct {
	orders orderWorkflow
}

func NewOrderController(orders orderWorkflow) *OrderController {
	return &OrderController{orders: orders}
}

func (oc *OrderController) PlaceOrder(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	order, err := oc.orders.PlaceOrder(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Cart is empty")
			return
		}

		var placementErr *services.PlacementError
		if errors.As(err, &placementErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"message": "Failed to place order",
				"details": placementErr.Err.Error(),
			})
			return
		}

		log.Println("Place order error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order placed successfully!",
		"data":    order,
	})
}

func (oc *OrderController) GetMyOrders(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	orders, err := oc.orders.GetOrdersByUser(ctx.Request.Context(), userID)
	if err != nil {
		log.Println("Fetch orders error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Fetched orders successfully!",
		"data":    orders,
	})
}

func (oc *OrderController) GetOrderByID(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := oc.orders.GetOrderByID(ctx.Request.Context(), uint(orderID))
	if err != nil {
		log.Println("Fetch order error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		return
	}
	if order == nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Fetched order successfully!",
		"data":    order,
	})
}

func (oc *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Status is required")
		return
	}

	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	if err := oc.orders.UpdateOrderStatus(ctx.Request.Context(), uint(orderID), orderStatusData.Status); err != nil {
		log.Println("Update order status error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order status updated successfully."})
}
