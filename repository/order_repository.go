package repository

import (
	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// CreateWithItems persists the order header together with its items in one
// transaction. The header insert must complete first: its id is assigned by
// the store and stamped onto every item row before the batch insert. Any
// failure rolls back the whole unit, so no reader ever sees a header
// without its items.
func (r *OrderRepository) CreateWithItems(order *entity.Order, items []entity.OrderItem) error {
	tx := r.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if err := tx.Create(&items).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// List returns order headers, newest first.
func (r *OrderRepository) List() ([]entity.Order, error) {
	var orders []entity.Order
	if err := r.DB.Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var order entity.Order
	if err := r.DB.First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) ItemsByOrder(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	if err := r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus sets the free-text order status. No route drives this yet;
// status transitions are a future extension point.
func (r *OrderRepository) UpdateStatus(id uint, status string) (*entity.Order, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}
