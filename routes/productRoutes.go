package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nmthang/shopvn-api/controllers"
	"github.com/nmthang/shopvn-api/middlewares"
)

func ProductRoutes(server *gin.Engine, product *controllers.ProductController) {
	server.POST("/product", middlewares.RequireAuth(), middlewares.RequireAdmin(), product.CreateProduct)
	server.POST("/product-images", middlewares.RequireAuth(), middlewares.RequireAdmin(), product.UploadProductImages)
	server.GET("/product", product.GetProducts)
	server.GET("/product/:id", product.GetProduct)
}
