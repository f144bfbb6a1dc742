package repository

import (
	"context"
	"sync"

	"github.com/example/orderdash/internal/models"
)

// MemoryOrderRepository keeps orders in a slice. It is used when no
// database is configured and in tests.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewMemoryOrderRepository seeds the repository with a snapshot of orders.
func NewMemoryOrderRepository(orders []models.Order) *MemoryOrderRepository {
	r := &MemoryOrderRepository{}
	r.orders = append(r.orders, orders...)
	return r
}

// List returns a copy of the held orders in insertion order.
func (r *MemoryOrderRepository) List(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Order(nil), r.orders...), nil
}

// UpdateField writes one mutable order field on the matching order. An
// unmatched id leaves the repository unchanged.
func (r *MemoryOrderRepository) UpdateField(ctx context.Context, orderID, field, value string) error {
	switch field {
	case FieldPaymentStatus, FieldConfirmation, FieldStatus:
	default:
		return ErrUnknownField
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].OrderID != orderID {
			continue
		}
		order := r.orders[i]
		switch field {
		case FieldPaymentStatus:
			billing := order.Billing
			billing.PaymentStatus = value
			order.Billing = billing
		case FieldConfirmation:
			if order.FormData != nil {
				form := *order.FormData
				form.Confirmation = value
				order.FormData = &form
			}
		case FieldStatus:
			order.Status = value
		}
		r.orders[i] = order
		return nil
	}
	return nil
}
