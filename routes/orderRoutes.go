package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nmthang/shopvn-api/controllers"
	"github.com/nmthang/shopvn-api/middlewares"
)

func OrderRoutes(server *gin.Engine, order *controllers.OrderController, payment *controllers.PaymentController) {
	// The gateway posts here without credentials.
	server.POST("/order/webhook", payment.Webhook)

	routes := server.Group("/order", middlewares.RequireAuth())
	{
		routes.POST("/place", order.PlaceOrder)
		routes.GET("/my-orders", order.GetMyOrders)
		routes.GET("/:orderId", order.GetOrderByID)
		routes.PUT("/:orderId/status", middlewares.RequireAdmin(), order.UpdateOrderStatus)
	}
}
