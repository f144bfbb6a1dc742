package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/orderdash/internal/config"
	"github.com/example/orderdash/internal/handlers"
	"github.com/example/orderdash/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, dash *store.Dashboard, cfg *config.Config) {
	dashboardHandler := handlers.NewDashboardHandler(dash)
	proxyHandler := handlers.NewProxyHandler(cfg.UpstreamOrdersURL)

	api := app.Group("/api")

	// Proxy to the upstream orders service.
	order := api.Group("/order")
	order.Get("/", proxyHandler.GetOrders)

	// Dashboard session.
	dashboard := api.Group("/dashboard")
	dashboard.Get("/orders", dashboardHandler.ListOrders)
	dashboard.Put("/filters", dashboardHandler.SetFilters)
	dashboard.Get("/orders/:orderId", dashboardHandler.GetOrder)
	dashboard.Post("/orders/:orderId/close", dashboardHandler.CloseOrder)
	dashboard.Patch("/orders/:orderId/payment-status", dashboardHandler.UpdatePaymentStatus)
	dashboard.Patch("/orders/:orderId/confirmation", dashboardHandler.UpdateConfirmationStatus)
}
