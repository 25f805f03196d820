package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brand-engine/internal/service"
	"github.com/maheshrc27/brand-engine/internal/transfer"
	"github.com/maheshrc27/brand-engine/internal/view"
	"go.uber.org/zap"
)

type BrandHandler struct {
	s        service.BrandService
	calendar service.CalendarService
	log      *zap.Logger
}

func NewBrandHandler(brands service.BrandService, calendar service.CalendarService, log *zap.Logger) *BrandHandler {
	return &BrandHandler{s: brands, calendar: calendar, log: log}
}

func (h *BrandHandler) ListBrands(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.s.List(c.Context(), GetSession(c)))
}

func (h *BrandHandler) CreateBrand(c *fiber.Ctx) error {
	var bc transfer.BrandCreation
	if err := c.BodyParser(&bc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse brand details",
		})
	}

	sess := GetSession(c)
	created, err := h.s.Create(c.Context(), sess, &bc)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"brand":     created,
		"directory": h.s.List(c.Context(), sess),
	})
}

func (h *BrandHandler) SelectBrand(c *fiber.Ctx) error {
	cal, err := h.calendar.Select(c.Context(), GetSession(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusOK).JSON(cal)
}

func (h *BrandHandler) DeleteBrand(c *fiber.Ctx) error {
	sess := GetSession(c)
	if err := h.s.Delete(c.Context(), sess, c.Params("id"), c.QueryBool("confirm", false)); err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"directory": h.s.List(c.Context(), sess),
		"calendar":  view.EmptyCalendar(),
	})
}
