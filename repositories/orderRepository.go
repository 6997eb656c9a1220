package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/nmthang/shopvn-api/models"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{db: tx}
}

// CreateOrder inserts the order together with its line items. Callers are
// responsible for the order's invariants; no validation happens here.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrderRepository) GetOrdersByUser(ctx context.Context, userID int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) GetOrderByCode(ctx context.Context, orderCode string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_code = ?", orderCode).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus overwrites the order status. Updating an absent order is a
// no-op.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}

// AttachPaymentInfo records the gateway correlation code, transaction id and
// hosted checkout link on the order.
func (r *OrderRepository) AttachPaymentInfo(ctx context.Context, orderID uint, orderCode, transactionID, paymentLink string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"order_code":     orderCode,
			"transaction_id": transactionID,
			"payment_link":   paymentLink,
		}).Error
}

// MarkPaid sets the paid-at timestamp and the Paid status for the order with
// the given code. An order already marked keeps its original timestamp, which
// makes repeated webhook deliveries harmless.
func (r *OrderRepository) MarkPaid(ctx context.Context, orderCode string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("order_code = ? AND paid_at IS NULL", orderCode).
		Updates(map[string]any{
			"status":  models.OrderStatusPaid,
			"paid_at": now,
		}).Error
}
