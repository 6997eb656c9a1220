package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nmthang/shopvn-api/controllers"
)

func AuthRoutes(server *gin.Engine, auth *controllers.AuthController) {
	routes := server.Group("/auth")
	{
		routes.POST("/register", auth.Register)
		routes.POST("/login", auth.Login)
	}
}
