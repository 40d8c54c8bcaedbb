package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/entity"
	"github.com/A3K3SH/Catering/repository"
)

func newOrderService(t *testing.T) (*OrderService, *repository.OrderRepository, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	repo := repository.NewOrderRepository(db)
	return NewOrderService(repo), repo, db
}

func TestPlaceOrderComputesTotalServerSide(t *testing.T) {
	svc, repo, _ := newOrderService(t)

	order, err := svc.PlaceOrder([]CartItem{
		{ProductID: 1, Quantity: 2, Price: decimal.RequireFromString("450.00")},
		{ProductID: 4, Quantity: 1, Price: decimal.RequireFromString("180.00")},
	}, CustomerInfo{})
	require.NoError(t, err)

	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("1080.00")),
		"total %s must equal 1080.00", order.TotalAmount)

	items, err := repo.ItemsByOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, order.ID, it.OrderID)
	}
}

func TestPlaceOrderDecimalExactTotal(t *testing.T) {
	svc, _, _ := newOrderService(t)

	// three 0.10 lines must sum to exactly 0.30, no float drift
	order, err := svc.PlaceOrder([]CartItem{
		{ProductID: 1, Quantity: 3, Price: decimal.RequireFromString("0.10")},
	}, CustomerInfo{})
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("0.30")))
}

func TestPlaceOrderAppliesGuestDefaults(t *testing.T) {
	svc, _, _ := newOrderService(t)

	order, err := svc.PlaceOrder([]CartItem{
		{ProductID: 1, Quantity: 1, Price: decimal.RequireFromString("100.00")},
	}, CustomerInfo{})
	require.NoError(t, err)
	assert.Equal(t, "Guest", order.CustomerName)
	assert.Equal(t, "guest@example.com", order.CustomerEmail)
	assert.Equal(t, "0000000000", order.CustomerPhone)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestPlaceOrderKeepsSubmittedCustomerInfo(t *testing.T) {
	svc, _, _ := newOrderService(t)

	order, err := svc.PlaceOrder([]CartItem{
		{ProductID: 1, Quantity: 1, Price: decimal.RequireFromString("100.00")},
	}, CustomerInfo{Name: "Priya Sharma", Email: "priya@example.com", Phone: "5551234567"})
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", order.CustomerName)
	assert.Equal(t, "priya@example.com", order.CustomerEmail)
	assert.Equal(t, "5551234567", order.CustomerPhone)
}

func TestPlaceOrderRejectsEmptyItems(t *testing.T) {
	svc, _, db := newOrderService(t)

	_, err := svc.PlaceOrder(nil, CustomerInfo{})
	require.ErrorIs(t, err, ErrEmptyOrder)

	var orders, items int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestPlaceOrderRollsBackOnFailure(t *testing.T) {
	svc, _, db := newOrderService(t)

	// simulate a mid-transaction failure after the header insert
	require.NoError(t, db.Migrator().DropTable(&entity.OrderItem{}))

	_, err := svc.PlaceOrder([]CartItem{
		{ProductID: 1, Quantity: 1, Price: decimal.RequireFromString("450.00")},
	}, CustomerInfo{})
	require.Error(t, err)

	var orders int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
}
