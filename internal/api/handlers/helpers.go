package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brand-engine/internal/client"
	"github.com/maheshrc27/brand-engine/internal/models"
	"github.com/maheshrc27/brand-engine/internal/service"
	"github.com/maheshrc27/brand-engine/internal/view"
	"github.com/maheshrc27/brand-engine/pkg/utils"
	"go.uber.org/zap"
)

// SessionKey is the Locals key the session middleware stores the viewer
// session under.
const SessionKey = "session"

func GetSession(c *fiber.Ctx) *models.Session {
	if sess, ok := c.Locals(SessionKey).(*models.Session); ok && sess != nil {
		return sess
	}
	sess := &models.Session{}
	c.Locals(SessionKey, sess)
	return sess
}

// viewerLocation reads the tz query or form value, falling back to the
// configured zone.
func viewerLocation(c *fiber.Ctx, fallback *time.Location) *time.Location {
	name := c.Query("tz")
	if name == "" {
		name = c.FormValue("tz")
	}
	return utils.LoadLocation(name, fallback)
}

func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ve.Error(),
			"field": ve.Field,
		})
	}

	switch {
	case errors.Is(err, service.ErrInFlight):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, client.ErrUnreachable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": view.NoticeOffline})
	}

	var ae *service.ActionError
	if errors.As(err, &ae) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": ae.Message})
	}
	if _, ok := client.AsStatusError(err); ok {
		log.Warn("content api rejected request", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "content api request failed"})
	}

	log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong"})
}

// refreshed re-reads the calendar after a mutation. A failed refresh leaves
// the action result intact and omits the calendar.
func refreshed(c *fiber.Ctx, log *zap.Logger, calendar service.CalendarService, sess *models.Session) *view.CalendarView {
	cal, err := calendar.Refresh(c.Context(), sess)
	if err != nil {
		log.Warn("calendar refresh failed", zap.String("brand_id", sess.ActiveBrandID), zap.Error(err))
		return nil
	}
	return &cal
}
