package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/example/orderdash/internal/database"
	"github.com/example/orderdash/internal/models"
	"github.com/example/orderdash/internal/store"
)

func newDashboardApp() (*fiber.App, *store.Dashboard) {
	dash := store.New(database.DemoOrders())
	h := NewDashboardHandler(dash)

	app := fiber.New()
	api := app.Group("/api/dashboard")
	api.Get("/orders", h.ListOrders)
	api.Put("/filters", h.SetFilters)
	api.Get("/orders/:orderId", h.GetOrder)
	api.Post("/orders/:orderId/close", h.CloseOrder)
	api.Patch("/orders/:orderId/payment-status", h.UpdatePaymentStatus)
	api.Patch("/orders/:orderId/confirmation", h.UpdateConfirmationStatus)
	return app, dash
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

type listResponse struct {
	Success bool           `json:"success"`
	Data    []orderRow     `json:"data"`
	Counts  map[string]int `json:"counts"`
}

type rowResponse struct {
	Success bool     `json:"success"`
	Data    orderRow `json:"data"`
}

type detailResponse struct {
	Success bool        `json:"success"`
	Data    orderDetail `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, req *http.Request, wantStatus int, out any) {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("status = %d, want %d", resp.StatusCode, wantStatus)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
	}
}

func TestListOrdersReturnsAllRowsAndCounts(t *testing.T) {
	app, _ := newDashboardApp()

	var got listResponse
	doJSON(t, app, httptest.NewRequest(http.MethodGet, "/api/dashboard/orders", nil), http.StatusOK, &got)

	if !got.Success || len(got.Data) != 4 {
		t.Fatalf("got %d rows, want 4", len(got.Data))
	}
	if got.Counts[models.OrderTypeDelivery] != 2 || got.Counts[models.OrderTypeTakeaway] != 1 || got.Counts[models.OrderTypeDineIn] != 1 {
		t.Fatalf("counts = %v", got.Counts)
	}

	first := got.Data[0]
	if first.Customer != "Mubashir" || first.TypeLabel != "Delivery Orders" {
		t.Fatalf("first row = %+v", first)
	}
	if len(first.ItemsPreview) != 2 || first.MoreItems != 1 {
		t.Fatalf("items preview = %v, more = %d", first.ItemsPreview, first.MoreItems)
	}
	if first.ItemsPreview[0] != "1x Chicken Burger" {
		t.Fatalf("preview = %q", first.ItemsPreview[0])
	}
}

func TestListOrdersQueryFilters(t *testing.T) {
	app, _ := newDashboardApp()

	var got listResponse
	doJSON(t, app, httptest.NewRequest(http.MethodGet, "/api/dashboard/orders?orderType=delivery", nil), http.StatusOK, &got)
	if len(got.Data) != 2 {
		t.Fatalf("delivery rows = %d, want 2", len(got.Data))
	}
	for _, row := range got.Data {
		if row.OrderType != models.OrderTypeDelivery {
			t.Fatalf("unexpected row type %q", row.OrderType)
		}
	}

	doJSON(t, app, httptest.NewRequest(http.MethodGet, "/api/dashboard/orders?search=MUBASHIR", nil), http.StatusOK, &got)
	if len(got.Data) != 1 || got.Data[0].Customer != "Mubashir" {
		t.Fatalf("search rows = %+v", got.Data)
	}

	// A dine-in row shows table number and employee instead of a customer.
	doJSON(t, app, httptest.NewRequest(http.MethodGet, "/api/dashboard/orders?orderType=dinein", nil), http.StatusOK, &got)
	if len(got.Data) != 1 || got.Data[0].Customer != "T-05" || got.Data[0].Contact != "John Doe" {
		t.Fatalf("dinein rows = %+v", got.Data)
	}
}

func TestSetFiltersAffectsSession(t *testing.T) {
	app, dash := newDashboardApp()

	doJSON(t, app, jsonRequest(http.MethodPut, "/api/dashboard/filters", `{"orderType":"dinein","search":"t-05"}`), http.StatusOK, nil)

	criteria := dash.Criteria()
	if criteria.OrderType != models.OrderTypeDineIn || criteria.Search != "t-05" {
		t.Fatalf("criteria = %+v", criteria)
	}

	var got listResponse
	doJSON(t, app, httptest.NewRequest(http.MethodGet, "/api/dashboard/orders", nil), http.StatusOK, &got)
	// The search term only matches order ids and names, so nothing survives
	// both criteria.
	if len(got.Data) != 0 {
		t.Fatalf("rows = %+v, want none", got.Data)
	}

	doJSON(t, app, jsonRequest(http.MethodPut, "/api/dashboard/filters", `{"search":""}`), http.StatusOK, nil)
	doJSON(t, app, httptest.NewRequest(http.MethodGet, "/api/dashboard/orders", nil), http.StatusOK, &got)
	if len(got.Data) != 1 || got.Data[0].Customer != "T-05" {
		t.Fatalf("rows = %+v, want the dine-in order", got.Data)
	}
}

func TestUpdatePaymentStatusEndpoint(t *testing.T) {
	app, dash := newDashboardApp()

	var got rowResponse
	doJSON(t, app, jsonRequest(http.MethodPatch, "/api/dashboard/orders/ORD-1751970111557/payment-status", `{"status":"Paid"}`), http.StatusOK, &got)

	if got.Data.PaymentStatus != models.PaymentPaid {
		t.Fatalf("payment status = %q, want Paid", got.Data.PaymentStatus)
	}
	if got.Data.PaymentClass != models.PaymentStatusBadgeClass(models.PaymentPaid) {
		t.Fatalf("payment class = %q", got.Data.PaymentClass)
	}

	order, _ := dash.Order("ORD-1751970111557")
	if order.Billing.PaymentStatus != models.PaymentPaid {
		t.Fatal("store was not updated")
	}
}

func TestUpdatePaymentStatusUnknownOrder(t *testing.T) {
	app, dash := newDashboardApp()
	before := dash.Orders()

	doJSON(t, app, jsonRequest(http.MethodPatch, "/api/dashboard/orders/ORD-X/payment-status", `{"status":"Paid"}`), http.StatusNotFound, nil)

	if len(before) != len(dash.Orders()) {
		t.Fatal("order set changed")
	}
}

func TestUpdateConfirmationEndpointIsOneWay(t *testing.T) {
	app, _ := newDashboardApp()

	var got rowResponse
	doJSON(t, app, jsonRequest(http.MethodPatch, "/api/dashboard/orders/ORD-1751970111557/confirmation", `{"status":"confirmed"}`), http.StatusOK, &got)
	if got.Data.Status != models.StatusConfirmed {
		t.Fatalf("status = %q, want confirmed", got.Data.Status)
	}

	doJSON(t, app, jsonRequest(http.MethodPatch, "/api/dashboard/orders/ORD-1751970111557/confirmation", `{"status":"pending"}`), http.StatusOK, &got)
	if got.Data.Status != models.StatusConfirmed {
		t.Fatalf("status = %q, want confirmed to stick", got.Data.Status)
	}
}

func TestGetOrderDetailAndClose(t *testing.T) {
	app, dash := newDashboardApp()

	var got detailResponse
	doJSON(t, app, httptest.NewRequest(http.MethodGet, "/api/dashboard/orders/ORD-1751970111557", nil), http.StatusOK, &got)

	wantSubtotal := 9.98 + 3*26.97 + 17.99
	if math.Abs(got.Data.Subtotal-wantSubtotal) > 1e-6 {
		t.Fatalf("subtotal = %v, want %v", got.Data.Subtotal, wantSubtotal)
	}
	if math.Abs(got.Data.DisplayTotal-156.84) > 1e-6 {
		t.Fatalf("display total = %v, want 156.84", got.Data.DisplayTotal)
	}
	if !dash.IsDetailOpen() {
		t.Fatal("detail view should be open")
	}

	doJSON(t, app, httptest.NewRequest(http.MethodPost, "/api/dashboard/orders/ORD-1751970111557/close", nil), http.StatusOK, nil)
	if dash.IsDetailOpen() {
		t.Fatal("detail view should be closed")
	}
}

func TestGetOrderDetailUnknown(t *testing.T) {
	app, _ := newDashboardApp()
	doJSON(t, app, httptest.NewRequest(http.MethodGet, "/api/dashboard/orders/ORD-X", nil), http.StatusNotFound, nil)
}
