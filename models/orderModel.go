package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusCancelled  = "Cancelled"
	OrderStatusPaid       = "Paid"
)

type OrderItem struct {
	gorm.Model
	OrderID   int   `json:"orderId"`
	ProductID int   `json:"productId"`
	Quantity  int   `json:"quantity"`
	Price     int64 `json:"price"`
}

type Order struct {
	gorm.Model
	UserID int `json:"userId" gorm:"index"`
	// TotalAmount is computed once at placement and never recomputed.
	TotalAmount   int64       `json:"totalAmount"`
	Status        string      `json:"status"`
	OrderCode     string      `json:"orderCode" gorm:"size:32;index"`
	PaymentLink   string      `json:"paymentLink"`
	TransactionID string      `json:"transactionId"`
	PaidAt        *time.Time  `json:"paidAt"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItemResponse struct {
	ProductID int   `json:"productId"`
	Quantity  int   `json:"quantity"`
	Price     int64 `json:"price"`
}

type OrderResponse struct {
	OrderID     uint                `json:"orderId"`
	UserID      int                 `json:"userId"`
	TotalAmount int64               `json:"totalAmount"`
	Status      string              `json:"status"`
	OrderCode   string              `json:"orderCode"`
	PaymentURL  string              `json:"paymentUrl"`
	CreatedAt   time.Time           `json:"createdAt"`
	Items       []OrderItemResponse `json:"items"`
}

// PayOSResponse is the acknowledgement body the payment gateway expects from
// webhook deliveries.
type PayOSResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}
