// Package services определяет интерфейсы сервисов для бизнес-логики.
package services

import (
	"context"
	"time"

	"sharenote/internal/domain/services"
)

// TokenService определяет интерфейс для выпуска и проверки сессионных токенов.
type TokenService interface {
	// Issue выпускает подписанный токен с идентификатором и ролью пользователя.
	Issue(ctx context.Context, userID, role string) (string, time.Time, error)
	// Verify проверяет подпись и срок действия токена.
	// Возвращает services.ErrInvalidToken или services.ErrExpiredToken.
	Verify(ctx context.Context, token string) (*services.TokenClaims, error)
}
