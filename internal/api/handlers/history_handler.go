package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brand-engine/internal/service"
	"go.uber.org/zap"
)

type HistoryHandler struct {
	s   service.HistoryService
	log *zap.Logger
}

func NewHistoryHandler(history service.HistoryService, log *zap.Logger) *HistoryHandler {
	return &HistoryHandler{s: history, log: log}
}

func (h *HistoryHandler) ListHistory(c *fiber.Ctx) error {
	entries, err := h.s.List(c.Context(), GetSession(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusOK).JSON(entries)
}
