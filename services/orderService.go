package services

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/nmthang/shopvn-api/models"
	"github.com/nmthang/shopvn-api/repositories"
	"github.com/nmthang/shopvn-api/utils"
	"gorm.io/gorm"
)

// PaymentGateway is the slice of the payment provider the order workflow
// depends on. payments.Client implements it.
type PaymentGateway interface {
	CreatePaymentLink(ctx context.Context, orderCode string, amount int64, description string) (paymentURL, transactionID string, err error)
	VerifyPayment(ctx context.Context, orderCode string) (status string, err error)
}

type OrderService struct {
	db      *gorm.DB
	carts   *repositories.CartRepository
	orders  *repositories.OrderRepository
	gateway PaymentGateway

	mu        sync.Mutex
	userLocks map[int]*sync.Mutex
}

func NewOrderService(db *gorm.DB, carts *repositories.CartRepository, orders *repositories.OrderRepository, gateway PaymentGateway) *OrderService {
	return &OrderService{
		db:        db,
		carts:     carts,
		orders:    orders,
		gateway:   gateway,
		userLocks: make(map[int]*sync.Mutex),
	}
}

// userLock serializes placements per user so two near-simultaneous checkouts
// cannot drain the same cart snapshot twice.
func (s *OrderService) userLock(userID int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

// PlaceOrder converts the user's cart into a durable Pending order, obtains a
// hosted payment link from the gateway and clears the cart lines it read, all
// in one transaction. Any failure after the cart read rolls everything back:
// no order row survives and the cart is untouched.
func (s *OrderService) PlaceOrder(ctx context.Context, userID int) (*models.OrderResponse, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var total int64
	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		total += line.Price * int64(line.Quantity)
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	order := &models.Order{
		UserID:      userID,
		TotalAmount: total,
		Status:      models.OrderStatusPending,
		Items:       items,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txOrders := s.orders.WithTx(tx)

		if err := txOrders.CreateOrder(ctx, order); err != nil {
			return err
		}

		orderCode := utils.GenerateOrderCode()
		paymentURL, transactionID, err := s.gateway.CreatePaymentLink(ctx, orderCode, total, "Order #"+orderCode)
		if err != nil {
			return err
		}

		if err := txOrders.AttachPaymentInfo(ctx, order.ID, orderCode, transactionID, paymentURL); err != nil {
			return err
		}

		// Delete only the lines read above; anything the user added to the
		// cart mid-checkout survives.
		return s.carts.WithTx(tx).ClearItems(ctx, cart.Items)
	})
	if err != nil {
		log.Printf("Order placement failed for user %d: %v", userID, err)
		return nil, &PlacementError{Err: err}
	}

	placed, err := s.orders.GetOrderByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	log.Printf("Order %d placed for user %d, total %d", placed.ID, userID, placed.TotalAmount)
	return mapOrderToResponse(placed), nil
}

// HandlePaymentCallback reconciles a gateway payment report against order
// state. When the webhook carried no status, the gateway is asked directly;
// if no status can be extracted either way, the order is left untouched. The
// writes are unconditional sets, so redelivery of the same terminal status is
// harmless.
func (s *OrderService) HandlePaymentCallback(ctx context.Context, orderCode, webhookStatus string) error {
	order, err := s.orders.GetOrderByCode(ctx, orderCode)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	status := strings.TrimSpace(webhookStatus)
	if status == "" {
		status, err = s.gateway.VerifyPayment(ctx, orderCode)
		if err != nil {
			return err
		}
		if status == "" {
			log.Printf("No payment status available for order %s, leaving it untouched", orderCode)
			return nil
		}
	}

	switch strings.ToUpper(status) {
	case "PAID", "PAID_SUCCESS":
		if err := s.orders.MarkPaid(ctx, orderCode); err != nil {
			return err
		}
		return s.orders.UpdateStatus(ctx, order.ID, models.OrderStatusProcessing)

	case "CANCELLED", "CANCELLED_BY_USER", "EXPIRED":
		return s.orders.UpdateStatus(ctx, order.ID, models.OrderStatusCancelled)

	case "PENDING", "WAITING_FOR_PAYMENT":
		return nil

	default:
		log.Printf("Unexpected payment status %q for order %s", status, orderCode)
		return nil
	}
}

func (s *OrderService) GetOrdersByUser(ctx context.Context, userID int) ([]models.OrderResponse, error) {
	orders, err := s.orders.GetOrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *mapOrderToResponse(&orders[i]))
	}
	return responses, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, orderID uint) (*models.OrderResponse, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil || order == nil {
		return nil, err
	}
	return mapOrderToResponse(order), nil
}

func (s *OrderService) GetOrderByCode(ctx context.Context, orderCode string) (*models.OrderResponse, error) {
	order, err := s.orders.GetOrderByCode(ctx, orderCode)
	if err != nil || order == nil {
		return nil, err
	}
	return mapOrderToResponse(order), nil
}

// UpdateOrderStatus is the administrative override; the target status is not
// validated here.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uint, status string) error {
	return s.orders.UpdateStatus(ctx, orderID, status)
}

func mapOrderToResponse(order *models.Order) *models.OrderResponse {
	items := make([]models.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, models.OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &models.OrderResponse{
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		OrderCode:   order.OrderCode,
		PaymentURL:  order.PaymentLink,
		CreatedAt:   order.CreatedAt,
		Items:       items,
	}
}
