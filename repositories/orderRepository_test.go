package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/nmthang/shopvn-api/models"
	"github.com/nmthang/shopvn-api/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderPersistsItems(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewOrderRepository(db)
	ctx := context.Background()

	order := &models.Order{
		UserID:      1,
		TotalAmount: 2500,
		Status:      models.OrderStatusPending,
		Items: []models.OrderItem{
			{ProductID: 10, Quantity: 2, Price: 1000},
			{ProductID: 11, Quantity: 1, Price: 500},
		},
	}
	require.NoError(t, repo.CreateOrder(ctx, order))
	require.NotZero(t, order.ID)

	got, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2500), got.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, got.Status)
	require.Len(t, got.Items, 2)
}

func TestGetOrdersByUserNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewOrderRepository(db)
	ctx := context.Background()

	older := &models.Order{UserID: 1, TotalAmount: 1000, Status: models.OrderStatusPending}
	older.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.CreateOrder(ctx, older))

	newer := &models.Order{UserID: 1, TotalAmount: 2000, Status: models.OrderStatusPending}
	require.NoError(t, repo.CreateOrder(ctx, newer))

	other := &models.Order{UserID: 2, TotalAmount: 3000, Status: models.OrderStatusPending}
	require.NoError(t, repo.CreateOrder(ctx, other))

	orders, err := repo.GetOrdersByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)
}

func TestGetOrderAbsent(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewOrderRepository(db)
	ctx := context.Background()

	order, err := repo.GetOrderByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, order)

	order, err = repo.GetOrderByCode(ctx, "NOPE")
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestUpdateStatus(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewOrderRepository(db)
	ctx := context.Background()

	order := &models.Order{UserID: 1, TotalAmount: 1000, Status: models.OrderStatusPending}
	require.NoError(t, repo.CreateOrder(ctx, order))

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, models.OrderStatusProcessing))

	got, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, got.Status)

	// An absent order id is a silent no-op.
	require.NoError(t, repo.UpdateStatus(ctx, 999, models.OrderStatusCancelled))
}

func TestAttachPaymentInfo(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewOrderRepository(db)
	ctx := context.Background()

	order := &models.Order{UserID: 1, TotalAmount: 1000, Status: models.OrderStatusPending}
	require.NoError(t, repo.CreateOrder(ctx, order))

	require.NoError(t, repo.AttachPaymentInfo(ctx, order.ID, "AB12CD34EF", "txn-1", "https://pay.example/ln"))

	got, err := repo.GetOrderByCode(ctx, "AB12CD34EF")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, "txn-1", got.TransactionID)
	assert.Equal(t, "https://pay.example/ln", got.PaymentLink)
}

func TestMarkPaidSetsTimestampOnce(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewOrderRepository(db)
	ctx := context.Background()

	order := &models.Order{UserID: 1, TotalAmount: 1000, Status: models.OrderStatusPending}
	require.NoError(t, repo.CreateOrder(ctx, order))
	require.NoError(t, repo.AttachPaymentInfo(ctx, order.ID, "AB12CD34EF", "txn-1", "https://pay.example/ln"))

	require.NoError(t, repo.MarkPaid(ctx, "AB12CD34EF"))

	first, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, first.PaidAt)
	assert.Equal(t, models.OrderStatusPaid, first.Status)

	// A second delivery must not move the timestamp.
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.MarkPaid(ctx, "AB12CD34EF"))

	second, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, second.PaidAt)
	assert.True(t, second.PaidAt.Equal(*first.PaidAt))
}
