package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/orderdash/internal/models"
	"github.com/example/orderdash/internal/store"
	"github.com/example/orderdash/internal/utils"
)

// DashboardHandler exposes the order dashboard session over HTTP.
type DashboardHandler struct {
	store *store.Dashboard
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(dash *store.Dashboard) *DashboardHandler {
	return &DashboardHandler{store: dash}
}

// orderRow is one line of the orders table.
type orderRow struct {
	OrderID       string    `json:"orderId"`
	OrderType     string    `json:"orderType"`
	TypeLabel     string    `json:"typeLabel"`
	Customer      string    `json:"customer"`
	Contact       string    `json:"contact"`
	ItemsPreview  []string  `json:"itemsPreview"`
	MoreItems     int       `json:"moreItems"`
	Total         float64   `json:"total"`
	PaymentStatus string    `json:"paymentStatus"`
	PaymentClass  string    `json:"paymentClass"`
	Status        string    `json:"status"`
	StatusClass   string    `json:"statusClass"`
	CreatedAt     time.Time `json:"createdAt"`
}

// orderDetail is the payload of the detail view.
type orderDetail struct {
	models.Order
	Subtotal     float64 `json:"subtotal"`
	DisplayTotal float64 `json:"displayTotal"`
	StatusClass  string  `json:"statusClass"`
	PaymentClass string  `json:"paymentClass"`
}

type filtersRequest struct {
	OrderType     *string `json:"orderType"`
	PaymentStatus *string `json:"paymentStatus"`
	Confirmation  *string `json:"confirmation"`
	Search        *string `json:"search"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// ListOrders returns the filtered orders table. Query params override the
// session criteria for this request only; without them the session filters
// apply.
func (h *DashboardHandler) ListOrders(c *fiber.Ctx) error {
	criteria := h.store.Criteria()
	if v := c.Query("orderType"); v != "" {
		criteria.OrderType = v
	}
	if v := c.Query("paymentStatus"); v != "" {
		criteria.PaymentStatus = v
	}
	if v := c.Query("confirmation"); v != "" {
		criteria.Confirmation = v
	}
	if v := c.Query("search"); v != "" {
		criteria.Search = v
	}

	filtered := store.Filter(h.store.Orders(), criteria)

	pg := utils.ParsePagination(c)
	start, end := pg.Slice(len(filtered))

	rows := make([]orderRow, 0, end-start)
	for _, order := range filtered[start:end] {
		rows = append(rows, buildOrderRow(order))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    rows,
		"counts":  h.store.TypeCounts(),
		"filters": criteria,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    len(filtered),
		},
	})
}

// SetFilters updates the session filter criteria. Absent fields are left
// untouched.
func (h *DashboardHandler) SetFilters(c *fiber.Ctx) error {
	var req filtersRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.OrderType != nil {
		h.store.SetFilter(store.FilterKindOrderType, *req.OrderType)
	}
	if req.PaymentStatus != nil {
		h.store.SetFilter(store.FilterKindPaymentStatus, *req.PaymentStatus)
	}
	if req.Confirmation != nil {
		h.store.SetFilter(store.FilterKindConfirmation, *req.Confirmation)
	}
	if req.Search != nil {
		h.store.SetSearch(*req.Search)
	}

	return c.JSON(fiber.Map{"success": true, "data": h.store.Criteria()})
}

// GetOrder opens the detail view on an order and returns it.
func (h *DashboardHandler) GetOrder(c *fiber.Ctx) error {
	order, ok := h.store.SelectOrder(c.Params("orderId"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "order not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": buildOrderDetail(order)})
}

// CloseOrder closes the detail view.
func (h *DashboardHandler) CloseOrder(c *fiber.Ctx) error {
	h.store.ClearSelection()
	return c.JSON(fiber.Map{"success": true})
}

// UpdatePaymentStatus replaces the billing payment status of an order. The
// status string is stored as sent.
func (h *DashboardHandler) UpdatePaymentStatus(c *fiber.Ctx) error {
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	orderID := c.Params("orderId")
	h.store.UpdatePaymentStatus(orderID, req.Status)

	order, ok := h.store.Order(orderID)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "order not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": buildOrderRow(order)})
}

// UpdateConfirmationStatus replaces the form confirmation of an order.
// Confirming also forces the order status to confirmed; reverting to
// pending leaves the order status as is.
func (h *DashboardHandler) UpdateConfirmationStatus(c *fiber.Ctx) error {
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	orderID := c.Params("orderId")
	h.store.UpdateConfirmationStatus(orderID, req.Status)

	order, ok := h.store.Order(orderID)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "order not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": buildOrderRow(order)})
}

func buildOrderRow(order models.Order) orderRow {
	row := orderRow{
		OrderID:       order.OrderID,
		OrderType:     order.OrderType,
		TypeLabel:     models.OrderTypeLabel(order.OrderType),
		Total:         order.DisplayTotal(),
		PaymentStatus: order.Billing.PaymentStatus,
		Status:        order.Status,
		StatusClass:   models.StatusBadgeClass(order.Status),
		CreatedAt:     order.CreatedAt,
	}

	if row.PaymentStatus == "" {
		row.PaymentStatus = models.PaymentUnpaid
	}
	row.PaymentClass = models.PaymentStatusBadgeClass(row.PaymentStatus)

	if order.DineIn != nil {
		row.Customer = order.DineIn.TableNo
		row.Contact = order.DineIn.EmpName
	} else if order.FormData != nil {
		row.Customer = order.FormData.FullName
		row.Contact = order.FormData.Phone
	}

	// First two cart items are shown, the remainder is summarized.
	for i, item := range order.Cart {
		if i == 2 {
			row.MoreItems = len(order.Cart) - 2
			break
		}
		row.ItemsPreview = append(row.ItemsPreview, itemPreview(item))
	}

	return row
}

func itemPreview(item models.CartItem) string {
	return fmt.Sprintf("%dx %s", item.Quantity, item.Name)
}

func buildOrderDetail(order models.Order) orderDetail {
	paymentStatus := order.Billing.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentUnpaid
	}

	return orderDetail{
		Order:        order,
		Subtotal:     order.Subtotal(),
		DisplayTotal: order.DisplayTotal(),
		StatusClass:  models.StatusBadgeClass(order.Status),
		PaymentClass: models.PaymentStatusBadgeClass(paymentStatus),
	}
}
