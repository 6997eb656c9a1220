package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nmthang/shopvn-api/models"
	"github.com/nmthang/shopvn-api/repositories"
)

type CartController struct {
	carts *repositories.CartRepository
}

func NewCartController(carts *repositories.CartRepository) *CartController {
	return &CartController{carts: carts}
}

func (cc *CartController) AddToCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var input models.CartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	err := cc.carts.AddItem(ctx.Request.Context(), userID, input.ProductID, input.Quantity)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
			return
		}
		log.Println("Add to cart error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add item to cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Added to cart successfully"})
}

func (cc *CartController) GetCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	items, err := cc.carts.GetItems(ctx.Request.Context(), userID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (cc *CartController) UpdateQuantity(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	productID, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	quantity, err := strconv.Atoi(ctx.Query("quantity"))
	if err != nil || quantity < 1 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid quantity")
		return
	}

	if err := cc.carts.SetQuantity(ctx.Request.Context(), userID, productID, quantity); err != nil {
		log.Println("Update quantity error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update cart item")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Quantity updated"})
}

func (cc *CartController) RemoveItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	productID, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	err = cc.carts.RemoveItem(ctx.Request.Context(), userID, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrCartNotFound) || errors.Is(err, repositories.ErrCartItemNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
			return
		}
		log.Println("Remove cart item error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove cart item")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item removed"})
}
