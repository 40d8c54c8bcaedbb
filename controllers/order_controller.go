package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/pkg/resp"
	"github.com/A3K3SH/Catering/pkg/validate"
	"github.com/A3K3SH/Catering/repository"
	"github.com/A3K3SH/Catering/services"
)

type OrderController struct {
	svc    *services.OrderService
	orders *repository.OrderRepository
}

func NewOrderController(db *gorm.DB) *OrderController {
	orders := repository.NewOrderRepository(db)
	return &OrderController{svc: services.NewOrderService(orders), orders: orders}
}

type orderItemIn struct {
	ID       uint            `json:"id" binding:"required"`
	Quantity int             `json:"quantity" binding:"required,min=1"`
	Price    decimal.Decimal `json:"price" binding:"required,gt=0"`
}

type customerInfoIn struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type createOrderReq struct {
	Items        []orderItemIn   `json:"items" binding:"omitempty,dive"`
	CustomerInfo *customerInfoIn `json:"customerInfo"`
}

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, validate.Errors(err))
		return
	}
	if len(req.Items) == 0 {
		resp.BadRequest(c, "Order must contain items")
		return
	}

	items := make([]services.CartItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, services.CartItem{
			ProductID: it.ID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	var info services.CustomerInfo
	if req.CustomerInfo != nil {
		info = services.CustomerInfo{
			Name:  req.CustomerInfo.Name,
			Email: req.CustomerInfo.Email,
			Phone: req.CustomerInfo.Phone,
		}
	}

	order, err := oc.svc.PlaceOrder(items, info)
	if err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.Is(err, services.ErrEmptyOrder):
			resp.BadRequest(c, "Order must contain items")
		case errors.As(err, &verrs):
			resp.ValidationFailed(c, validate.Errors(err))
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, order)
}

// GET /api/orders
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.orders.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	order, err := oc.orders.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	items, err := oc.orders.ItemsByOrder(order.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"id":            order.ID,
		"customerName":  order.CustomerName,
		"customerEmail": order.CustomerEmail,
		"customerPhone": order.CustomerPhone,
		"totalAmount":   order.TotalAmount,
		"status":        order.Status,
		"createdAt":     order.CreatedAt,
		"items":         items,
	})
}
