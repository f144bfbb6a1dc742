package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/orderdash/internal/services"
)

// ProxyHandler relays order listings from the upstream orders service.
type ProxyHandler struct {
	upstreamURL string
}

// NewProxyHandler builds a ProxyHandler for one upstream URL.
func NewProxyHandler(upstreamURL string) *ProxyHandler {
	return &ProxyHandler{upstreamURL: upstreamURL}
}

// GetOrders forwards one GET to the upstream and relays its JSON body
// verbatim. Only a failed fetch produces a 500; an upstream error status
// still comes back as 200 with whatever body the upstream sent.
func (h *ProxyHandler) GetOrders(c *fiber.Ctx) error {
	body, err := services.FetchUpstreamOrders(h.upstreamURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch orders"})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
