package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/brand-engine/configs"
	"github.com/maheshrc27/brand-engine/internal/api/handlers"
	"github.com/maheshrc27/brand-engine/internal/models"
	"github.com/maheshrc27/brand-engine/pkg/utils"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

const sessionDuration = 30 * 24 * time.Hour

type SessionMiddleware struct {
	cfg config.Config
	log *zap.Logger
}

func NewSessionMiddleware(cfg config.Config, log *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{cfg: cfg, log: log}
}

// SessionMiddleware restores the viewer session from its cookie, or starts a
// fresh one, and writes the possibly updated session back after the handler.
func (m *SessionMiddleware) SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := m.restore(c.Cookies(m.cfg.CookieName))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unable to start session",
			})
		}
		c.Locals(handlers.SessionKey, sess)

		chainErr := c.Next()

		token, err := utils.GenerateSessionToken(m.cfg.SecretKey, *sess, sessionDuration)
		if err != nil {
			m.log.Error("failed to sign session", zap.String("session_id", sess.ID), zap.Error(err))
			return chainErr
		}
		c.Cookie(&fiber.Cookie{
			Name:     m.cfg.CookieName,
			Value:    token,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Path:     "/",
			Expires:  time.Now().Add(sessionDuration),
		})
		return chainErr
	}
}

func (m *SessionMiddleware) restore(token string) (*models.Session, error) {
	if token != "" {
		sess, err := utils.ValidateSessionToken(m.cfg.SecretKey, token)
		if err == nil {
			return sess, nil
		}
		m.log.Debug("discarding invalid session cookie", zap.Error(err))
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	return &models.Session{ID: id}, nil
}
