package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nmthang/shopvn-api/controllers"
	"github.com/nmthang/shopvn-api/middlewares"
)

func CartRoutes(server *gin.Engine, cart *controllers.CartController) {
	routes := server.Group("/cart", middlewares.RequireAuth())
	{
		routes.POST("/add", cart.AddToCart)
		routes.GET("", cart.GetCart)
		routes.PUT("/update/:productId", cart.UpdateQuantity)
		routes.DELETE("/remove/:productId", cart.RemoveItem)
	}
}
