package store

import (
	"sync"

	"github.com/example/orderdash/internal/models"
)

// Dashboard holds the session copy of the order list plus the transient UI
// state of the admin view: active filters, search term, and the currently
// opened detail view. Field updates are applied to the session copy only;
// nothing is written back upstream, so they are lost on restart.
//
// The original view has a single writer, but fiber serves requests
// concurrently, so all access goes through one mutex.
type Dashboard struct {
	mu         sync.RWMutex
	orders     []models.Order
	criteria   Criteria
	selected   *models.Order
	detailOpen bool
}

// New builds a Dashboard over a snapshot of orders, keeping their insertion
// order.
func New(orders []models.Order) *Dashboard {
	d := &Dashboard{criteria: DefaultCriteria()}
	d.orders = append(d.orders, orders...)
	return d
}

// Orders returns a copy of the full order list in insertion order.
func (d *Dashboard) Orders() []models.Order {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.Order(nil), d.orders...)
}

// Order looks up a single order by its upstream id.
func (d *Dashboard) Order(orderID string) (models.Order, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, order := range d.orders {
		if order.OrderID == orderID {
			return order, true
		}
	}
	return models.Order{}, false
}

// Criteria returns the session's active filter criteria.
func (d *Dashboard) Criteria() Criteria {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.criteria
}

// SetFilter updates one filter criterion. Unknown kinds are ignored.
func (d *Dashboard) SetFilter(kind, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch kind {
	case FilterKindOrderType:
		d.criteria.OrderType = value
	case FilterKindPaymentStatus:
		d.criteria.PaymentStatus = value
	case FilterKindConfirmation:
		d.criteria.Confirmation = value
	}
}

// SetSearch updates the free-text search term.
func (d *Dashboard) SetSearch(term string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.criteria.Search = term
}

// FilteredOrders applies the session criteria to the current order list.
func (d *Dashboard) FilteredOrders() []models.Order {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Filter(d.orders, d.criteria)
}

// TypeCounts returns how many orders of each type are held, for the
// sidebar badges.
func (d *Dashboard) TypeCounts() map[string]int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	counts := make(map[string]int)
	for _, order := range d.orders {
		counts[order.OrderType]++
	}
	return counts
}

// SelectOrder opens the detail view on an order. It reports false and
// leaves the selection untouched when the id is unknown.
func (d *Dashboard) SelectOrder(orderID string) (models.Order, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, order := range d.orders {
		if order.OrderID == orderID {
			selected := order
			d.selected = &selected
			d.detailOpen = true
			return order, true
		}
	}
	return models.Order{}, false
}

// ClearSelection closes the detail view.
func (d *Dashboard) ClearSelection() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selected = nil
	d.detailOpen = false
}

// SelectedOrder returns the order the detail view is open on, if any.
func (d *Dashboard) SelectedOrder() (models.Order, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.selected == nil {
		return models.Order{}, false
	}
	return *d.selected, true
}

// IsDetailOpen reports whether a detail view is currently open.
func (d *Dashboard) IsDetailOpen() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detailOpen
}

// UpdatePaymentStatus replaces the billing payment status on the matching
// order, copy-on-write. The status string is stored as given, without
// validation. An unknown id is a silent no-op. An open detail view on the
// same order is updated in lockstep.
func (d *Dashboard) UpdatePaymentStatus(orderID, status string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.orders {
		if d.orders[i].OrderID != orderID {
			continue
		}
		d.orders[i] = withPaymentStatus(d.orders[i], status)
		if d.selected != nil && d.selected.OrderID == orderID {
			selected := withPaymentStatus(*d.selected, status)
			d.selected = &selected
		}
		return
	}
}

// UpdateConfirmationStatus replaces the customer form confirmation on the
// matching order. Orders without a customer form (dine-in) keep it unset.
// Confirming additionally forces the top-level status to confirmed; any
// other value leaves the status untouched, so the transition is
// one-directional. Same lockstep-sync and silent-no-op rules as
// UpdatePaymentStatus.
func (d *Dashboard) UpdateConfirmationStatus(orderID, status string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.orders {
		if d.orders[i].OrderID != orderID {
			continue
		}
		d.orders[i] = withConfirmation(d.orders[i], status)
		if d.selected != nil && d.selected.OrderID == orderID {
			selected := withConfirmation(*d.selected, status)
			d.selected = &selected
		}
		return
	}
}

func withPaymentStatus(order models.Order, status string) models.Order {
	billing := order.Billing
	billing.PaymentStatus = status
	order.Billing = billing
	return order
}

func withConfirmation(order models.Order, status string) models.Order {
	if order.FormData != nil {
		form := *order.FormData
		form.Confirmation = status
		order.FormData = &form
	}
	if status == models.ConfirmationConfirmed {
		order.Status = models.StatusConfirmed
	}
	return order
}
