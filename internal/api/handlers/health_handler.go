package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brand-engine/internal/service"
)

type HealthHandler struct {
	s service.HealthService
}

func NewHealthHandler(health service.HealthService) *HealthHandler {
	return &HealthHandler{s: health}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	report := h.s.Check(c.Context())
	status := fiber.StatusOK
	if !report.Healthy {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(report)
}
