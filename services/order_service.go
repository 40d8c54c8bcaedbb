package services

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/A3K3SH/Catering/entity"
	"github.com/A3K3SH/Catering/repository"
)

// ErrEmptyOrder rejects checkout payloads with no line items.
var ErrEmptyOrder = errors.New("order must contain items")

// CartItem is one line of a checkout payload: the product, the quantity and
// the unit price as the client observed it at add-to-cart time.
type CartItem struct {
	ProductID uint
	Quantity  int
	Price     decimal.Decimal
}

type CustomerInfo struct {
	Name  string
	Email string
	Phone string
}

type OrderService struct {
	orders   *repository.OrderRepository
	validate *validator.Validate
}

func NewOrderService(orders *repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders, validate: validator.New()}
}

// PlaceOrder persists an order with its items atomically. The total is
// computed here from the submitted line items; a client-supplied total is
// never accepted. Missing customer fields fall back to guest placeholders.
func (s *OrderService) PlaceOrder(items []CartItem, info CustomerInfo) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	total := decimal.Zero
	rows := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		rows = append(rows, entity.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	order := &entity.Order{
		CustomerName:  fallback(info.Name, "Guest"),
		CustomerEmail: fallback(info.Email, "guest@example.com"),
		CustomerPhone: fallback(info.Phone, "0000000000"),
		TotalAmount:   total,
		Status:        entity.OrderStatusPending,
	}
	if err := s.validate.Struct(order); err != nil {
		return nil, err
	}

	if err := s.orders.CreateWithItems(order, rows); err != nil {
		return nil, err
	}
	return order, nil
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
