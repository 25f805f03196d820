package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	config "github.com/maheshrc27/brand-engine/configs"
	"github.com/maheshrc27/brand-engine/internal/api/handlers"
	"github.com/maheshrc27/brand-engine/internal/api/middleware"
	"github.com/maheshrc27/brand-engine/internal/service"
	"go.uber.org/zap"
)

type Services struct {
	Brands   service.BrandService
	Calendar service.CalendarService
	Posts    service.PostService
	Agent    service.AgentService
	History  service.HistoryService
	Health   service.HealthService
}

func NewServer(cfg config.Config, viewer *time.Location, s Services, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.AgentTimeout + 30*time.Second,
		WriteTimeout: cfg.AgentTimeout + 30*time.Second,
		BodyLimit:    25 * 1024 * 1024, // 25 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			log.Error("unhandled request error", zap.String("path", c.Path()), zap.Int("status", code), zap.Error(err))
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error("panic in handler", zap.String("path", c.Path()), zap.Any("panic", e))
		},
	}))
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	health := handlers.NewHealthHandler(s.Health)
	app.Get("/healthz", health.Health)

	sessions := middleware.NewSessionMiddleware(cfg, log)
	app.Use(sessions.SessionMiddleware())

	brand := handlers.NewBrandHandler(s.Brands, s.Calendar, log)
	app.Get("/brands", brand.ListBrands)
	app.Post("/brands", brand.CreateBrand)
	app.Post("/brands/:id/select", brand.SelectBrand)
	app.Delete("/brands/:id", brand.DeleteBrand)

	calendar := handlers.NewCalendarHandler(s.Calendar, viewer, log)
	app.Get("/calendar", calendar.Calendar)
	app.Get("/calendar/prefill", calendar.Prefill)

	post := handlers.NewPostHandler(s.Posts, s.Calendar, viewer, log)
	app.Post("/posts/plan", post.PlanPost)
	app.Post("/posts/generate_month", post.GenerateMonth)
	app.Post("/posts/schedule_week", post.ScheduleWeek)
	app.Get("/posts/:id", calendar.PostDetails)
	app.Post("/posts/:id/generate", post.GeneratePost)
	app.Post("/posts/:id/approve", post.ApprovePost)

	history := handlers.NewHistoryHandler(s.History, log)
	app.Get("/history", history.ListHistory)

	agent := handlers.NewAgentHandler(s.Agent, log)
	app.Post("/agent/generate", agent.Generate)
	app.Get("/agent/state", agent.State)

	return app
}
