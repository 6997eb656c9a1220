package models

import "gorm.io/gorm"

type CartItem struct {
	gorm.Model
	CartID    int `json:"cartId" gorm:"index:idx_cart_product,unique"`
	ProductID int `json:"productId" gorm:"index:idx_cart_product,unique"`
	Quantity  int `json:"quantity"`
	// Price is the unit price snapshot taken when the line was created or
	// last updated, in minor currency units. Never a line subtotal.
	Price int64 `json:"price"`
}

type Cart struct {
	gorm.Model
	UserID int        `json:"userId" gorm:"index"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// CartItemResponse is a cart line with its product name resolved.
type CartItemResponse struct {
	ID          uint   `json:"id"`
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
}

type CartItemInput struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}
