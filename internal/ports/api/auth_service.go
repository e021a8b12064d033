// Package api определяет интерфейсы бизнес-логики сервиса заметок.
package api

import (
	"context"
	"time"
)

// AuthUseCase определяет операции регистрации и входа пользователей.
type AuthUseCase interface {
	// Register создает пользователя и возвращает его идентификатор.
	Register(ctx context.Context, name, email, password string) (string, error)
	// Login проверяет учетные данные и выпускает сессионный токен.
	// Неизвестный email и неверный пароль неразличимы для вызывающего.
	Login(ctx context.Context, email, password string) (string, time.Time, error)
}
