package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/example/orderdash/internal/models"
)

// GormOrderRepository backs the dashboard with postgres.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository constructs a GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// List loads all orders with their associations, oldest first, carts in
// their upstream position.
func (r *GormOrderRepository) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("FormData").
		Preload("DineIn").
		Preload("Cart", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Cart.SelectedItems").
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateField writes one mutable order field. Only the payment status, the
// form confirmation and the top-level status are writable; anything else
// returns ErrUnknownField.
func (r *GormOrderRepository) UpdateField(ctx context.Context, orderID, field, value string) error {
	db := r.db.WithContext(ctx)
	switch field {
	case FieldPaymentStatus:
		return db.Model(&models.Order{}).
			Where("order_id = ?", orderID).
			Update("billing_payment_status", value).Error
	case FieldConfirmation:
		return db.Model(&models.CustomerForm{}).
			Where("order_ref IN (?)", db.Model(&models.Order{}).Select("id").Where("order_id = ?", orderID)).
			Update("confirmation", value).Error
	case FieldStatus:
		return db.Model(&models.Order{}).
			Where("order_id = ?", orderID).
			Update("status", value).Error
	default:
		return ErrUnknownField
	}
}
