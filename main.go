package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nmthang/shopvn-api/controllers"
	"github.com/nmthang/shopvn-api/initializers"
	"github.com/nmthang/shopvn-api/payments"
	"github.com/nmthang/shopvn-api/repositories"
	"github.com/nmthang/shopvn-api/routes"
	"github.com/nmthang/shopvn-api/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://www.shopvn.store"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}
	frontendURL = strings.TrimRight(frontendURL, "/")

	payosClient := payments.NewClient(payments.Config{
		ClientID:    os.Getenv("PAYOS_CLIENT_ID"),
		APIKey:      os.Getenv("PAYOS_API_KEY"),
		ChecksumKey: os.Getenv("PAYOS_CHECKSUM_KEY"),
		BaseURL:     os.Getenv("PAYOS_BASE_URL"),
		ReturnURL:   frontendURL + "/payment-success",
		CancelURL:   frontendURL + "/payment-cancel",
	})

	cartRepo := repositories.NewCartRepository(initializers.DB)
	orderRepo := repositories.NewOrderRepository(initializers.DB)
	orderService := services.NewOrderService(initializers.DB, cartRepo, orderRepo, payosClient)

	paymentController := controllers.NewPaymentController(orderService)

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, controllers.NewAuthController(initializers.DB))
	routes.ProductRoutes(server, controllers.NewProductController(initializers.DB, os.Getenv("S3_BUCKET")))
	routes.CartRoutes(server, controllers.NewCartController(cartRepo))
	routes.OrderRoutes(server, controllers.NewOrderController(orderService), paymentController)
	routes.PaymentRoutes(server, paymentController)

	server.Run()
}
