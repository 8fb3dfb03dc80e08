package repository

import (
	"github.com/ImmrAD/the-digital-diner/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

// ListByPhone returns orders newest first, items included. No orders is an
// empty slice, not an error.
func (r *OrderRepository) ListByPhone(phone string) ([]entity.Order, error) {
	orders := []entity.Order{}
	err := r.DB.Where("phone_number = ?", phone).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}
