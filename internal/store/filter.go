package store

import (
	"strings"

	"github.com/example/orderdash/internal/models"
)

// FilterAll disables a criterion.
const FilterAll = "all"

// Filter kinds accepted by Dashboard.SetFilter.
const (
	FilterKindOrderType     = "orderType"
	FilterKindPaymentStatus = "paymentStatus"
	FilterKindConfirmation  = "confirmation"
)

// Criteria is one set of dashboard filters. A criterion set to FilterAll is
// vacuously satisfied; the search term matches case-insensitively against
// the order id, the customer full name and the employee name.
type Criteria struct {
	OrderType     string `json:"orderType"`
	PaymentStatus string `json:"paymentStatus"`
	Confirmation  string `json:"confirmation"`
	Search        string `json:"search"`
}

// DefaultCriteria matches every order.
func DefaultCriteria() Criteria {
	return Criteria{
		OrderType:     FilterAll,
		PaymentStatus: FilterAll,
		Confirmation:  FilterAll,
	}
}

// Matches reports whether an order satisfies every active criterion.
//
// The confirmation criterion has one special case: an order matches
// "confirmed" when its top-level status is confirmed even if it has no
// customer form, which is how dine-in orders ever match that filter.
func Matches(order models.Order, c Criteria) bool {
	if c.OrderType != FilterAll && order.OrderType != c.OrderType {
		return false
	}
	if c.PaymentStatus != FilterAll && order.Billing.PaymentStatus != c.PaymentStatus {
		return false
	}
	if c.Confirmation != FilterAll {
		matched := order.FormData != nil && order.FormData.Confirmation == c.Confirmation
		if c.Confirmation == models.ConfirmationConfirmed && order.Status == models.StatusConfirmed {
			matched = true
		}
		if !matched {
			return false
		}
	}
	if c.Search != "" {
		term := strings.ToLower(c.Search)
		matched := strings.Contains(strings.ToLower(order.OrderID), term)
		if !matched && order.FormData != nil {
			matched = strings.Contains(strings.ToLower(order.FormData.FullName), term)
		}
		if !matched && order.DineIn != nil {
			matched = strings.Contains(strings.ToLower(order.DineIn.EmpName), term)
		}
		if !matched {
			return false
		}
	}
	return true
}

// Filter returns the orders satisfying every active criterion, preserving
// input order. It is pure; the input slice is never modified.
func Filter(orders []models.Order, c Criteria) []models.Order {
	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if Matches(order, c) {
			filtered = append(filtered, order)
		}
	}
	return filtered
}
