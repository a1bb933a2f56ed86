package middleware

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
	"github.com/cleaning-marketplace/internal/pkg/utils"
)

// UserIDKey - ключ identity вызывающего в fiber.Ctx.Locals
const UserIDKey = "userID"

// Auth - извлекает identity вызывающего из заголовка X-User-ID.
// Проверка подписи токена выполняется на API-шлюзе, сервис доверяет
// заголовку. Запросы без заголовка отклоняются.
func Auth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID == "" {
			return utils.SendError(c, apperrors.ErrUnauthorized)
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// CallerID возвращает identity, положенную Auth-middleware
func CallerID(c *fiber.Ctx) string {
	if id, ok := c.Locals(UserIDKey).(string); ok {
		return id
	}
	return ""
}
