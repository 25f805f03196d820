package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brand-engine/internal/service"
	"github.com/maheshrc27/brand-engine/internal/view"
	"go.uber.org/zap"
)

type CalendarHandler struct {
	s   service.CalendarService
	loc *time.Location
	log *zap.Logger
}

func NewCalendarHandler(calendar service.CalendarService, loc *time.Location, log *zap.Logger) *CalendarHandler {
	return &CalendarHandler{s: calendar, loc: loc, log: log}
}

func (h *CalendarHandler) Calendar(c *fiber.Ctx) error {
	cal, err := h.s.Refresh(c.Context(), GetSession(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusOK).JSON(cal)
}

func (h *CalendarHandler) Prefill(c *fiber.Ctx) error {
	day := c.Query("day")
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "day must be YYYY-MM-DD",
			"field": "day",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"scheduled_date": view.PrefillPlanDate(day),
	})
}

func (h *CalendarHandler) PostDetails(c *fiber.Ctx) error {
	details, err := h.s.Details(c.Context(), GetSession(c), c.Params("id"), viewerLocation(c, h.loc))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusOK).JSON(details)
}
