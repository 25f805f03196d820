package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brand-engine/internal/service"
	"github.com/maheshrc27/brand-engine/internal/transfer"
	"go.uber.org/zap"
)

type AgentHandler struct {
	s   service.AgentService
	log *zap.Logger
}

func NewAgentHandler(agent service.AgentService, log *zap.Logger) *AgentHandler {
	return &AgentHandler{s: agent, log: log}
}

func (h *AgentHandler) Generate(c *fiber.Ctx) error {
	var brief transfer.AgentBrief
	if err := c.BodyParser(&brief); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse brief",
		})
	}

	v, err := h.s.Submit(c.Context(), GetSession(c), &brief)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusOK).JSON(v)
}

func (h *AgentHandler) State(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.s.State(GetSession(c)))
}
