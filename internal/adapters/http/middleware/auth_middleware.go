// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	svc "sharenote/internal/ports/services"
	"sharenote/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorTokenRejected      = "token verification failed"
)

// bearerPrefix - ожидаемый префикс заголовка Authorization.
const bearerPrefix = "Bearer "

// identityKey - ключ locals, под которым хранится аутентифицированная личность.
const identityKey = "identity"

// Identity - аутентифицированная личность запроса.
type Identity struct {
	UserID string
	Role   string
}

// IdentityFromCtx извлекает личность, сохраненную промежуточным ПО аутентификации.
func IdentityFromCtx(ctx fiber.Ctx) (Identity, bool) {
	identity, ok := ctx.Locals(identityKey).(Identity)
	return identity, ok
}

// NewAuthMiddleware создает промежуточное ПО, проверяющее bearer-токен
// на каждом защищенном запросе. Отсутствующий, искаженный или непроверяемый
// токен завершает запрос кодом 401 без деталей в теле ответа.
func NewAuthMiddleware(tokenSvc svc.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return ctx.SendStatus(fiber.StatusUnauthorized)
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return ctx.SendStatus(fiber.StatusUnauthorized)
		}

		claims, err := tokenSvc.Verify(requestCtx, strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			log.Debug(requestCtx, ErrorTokenRejected, zap.Error(err))
			return ctx.SendStatus(fiber.StatusUnauthorized)
		}

		ctx.Locals(identityKey, Identity{
			UserID: claims.UserID,
			Role:   claims.Role,
		})

		return ctx.Next()
	}
}
