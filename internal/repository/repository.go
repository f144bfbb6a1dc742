package repository

import (
	"context"
	"errors"

	"github.com/example/orderdash/internal/models"
)

// Order fields that UpdateField accepts.
const (
	FieldPaymentStatus = "paymentStatus"
	FieldConfirmation  = "confirmation"
	FieldStatus        = "status"
)

// ErrUnknownField is returned when UpdateField is asked for a field that is
// not one of the mutable order fields.
var ErrUnknownField = errors.New("unknown order field")

// OrderRepository abstracts where the dashboard's orders come from, so the
// session store can be hydrated from postgres or from memory without
// changing the filtering and update contracts.
//
// UpdateField mirrors the store's silent-no-op rule: an unmatched order id
// is not an error.
type OrderRepository interface {
	List(ctx context.Context) ([]models.Order, error)
	UpdateField(ctx context.Context, orderID, field, value string) error
}
