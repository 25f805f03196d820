package handlers

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brand-engine/internal/service"
	"github.com/maheshrc27/brand-engine/internal/transfer"
	"github.com/maheshrc27/brand-engine/internal/view"
	"go.uber.org/zap"
)

type PostHandler struct {
	s        service.PostService
	calendar service.CalendarService
	loc      *time.Location
	log      *zap.Logger
}

func NewPostHandler(posts service.PostService, calendar service.CalendarService, loc *time.Location, log *zap.Logger) *PostHandler {
	return &PostHandler{s: posts, calendar: calendar, loc: loc, log: log}
}

func (h *PostHandler) PlanPost(c *fiber.Ctx) error {
	var form transfer.PlanForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse form",
		})
	}

	sess := GetSession(c)
	post, err := h.s.Plan(c.Context(), sess, form.Topic, form.ScheduledDate)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"post":     post,
		"calendar": refreshed(c, h.log, h.calendar, sess),
	})
}

func (h *PostHandler) GeneratePost(c *fiber.Ctx) error {
	sess := GetSession(c)
	post, err := h.s.Generate(c.Context(), sess, c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"details":  view.BuildDetails(post, viewerLocation(c, h.loc)),
		"calendar": refreshed(c, h.log, h.calendar, sess),
	})
}

func (h *PostHandler) GenerateMonth(c *fiber.Ctx) error {
	sess := GetSession(c)
	res, err := h.s.GenerateMonth(c.Context(), sess)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"result":   res,
		"calendar": refreshed(c, h.log, h.calendar, sess),
	})
}

func (h *PostHandler) ScheduleWeek(c *fiber.Ctx) error {
	var form transfer.WeekForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse form",
		})
	}

	sess := GetSession(c)
	res, err := h.s.ScheduleWeek(c.Context(), sess, form.WeekFocus, form.Topics)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"result":   res,
		"calendar": refreshed(c, h.log, h.calendar, sess),
	})
}

// ApprovePost takes a multipart form with the artwork in "image" and the
// viewer's local schedule time in "scheduled_date".
func (h *PostHandler) ApprovePost(c *fiber.Ctx) error {
	image, err := formImage(c)
	if err != nil {
		h.log.Warn("unreadable upload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to read image",
			"field": "image",
		})
	}

	sess := GetSession(c)
	approval, err := h.s.Approve(c.Context(), sess, c.Params("id"), image, c.FormValue("scheduled_date"), viewerLocation(c, h.loc))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"approval": approval,
		"calendar": refreshed(c, h.log, h.calendar, sess),
	})
}

// formImage returns nil when no file was attached.
func formImage(c *fiber.Ctx) ([]byte, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
