package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nmthang/shopvn-api/controllers"
)

func PaymentRoutes(server *gin.Engine, payment *controllers.PaymentController) {
	routes := server.Group("/payment")
	{
		routes.POST("/webhook", payment.Webhook)
		routes.GET("/status/:orderCode", payment.GetPaymentStatus)
	}
}
