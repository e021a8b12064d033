// Package services определяет доменные типы и ошибки сервисного слоя.
package services

import (
	"errors"
	"time"
)

// Ошибки, связанные с сессионными токенами.
var (
	ErrInvalidToken    = errors.New("invalid session token")
	ErrExpiredToken    = errors.New("session token has expired")
	ErrGeneratingToken = errors.New("failed to generate session token")
)

// TokenConfig содержит настройки для сервиса токенов.
type TokenConfig struct {
	SecretKey []byte
	TokenTTL  time.Duration
}

// TokenClaims определяет данные, переносимые сессионным токеном.
// Токен самодостаточен: сервер не хранит сессий и не умеет отзывать
// выданные токены, истечение срока - единственный механизм завершения.
type TokenClaims struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}
