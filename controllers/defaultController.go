package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the ShopVN API.

The following are the endpoints for this API:

AUTH
- POST "/auth/register" - Create user account
- POST "/auth/login" - Access user account

PRODUCT
- POST "/product" - Create new product (admin)
- GET "/product" - Get all products
- GET "/product/{id}" - Get product by ID
- POST "/product-images" - Add product images (admin)

CART
- POST "/cart/add" - Add a product to the cart
- GET "/cart" - Get the current cart
- PUT "/cart/update/{productId}?quantity=N" - Update line quantity
- DELETE "/cart/remove/{productId}" - Remove a line

ORDER
- POST "/order/place" - Place an order from the cart
- GET "/order/my-orders" - Get the caller's orders
- GET "/order/{orderId}" - Get order by ID
- PUT "/order/{orderId}/status" - Update order status (admin)
- POST "/order/webhook" - Payment gateway webhook

PAYMENT
- POST "/payment/webhook" - Payment gateway webhook
- GET "/payment/status/{orderCode}" - Payment status for an order`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
