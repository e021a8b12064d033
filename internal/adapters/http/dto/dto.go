// Package dto содержит объекты передачи данных HTTP API.
package dto

import "time"

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse содержит идентификатор созданного пользователя.
type RegisterResponse struct {
	UserID string `json:"user_id"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse содержит выпущенный сессионный токен.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NoteRequest содержит данные для создания или обновления заметки.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// MessageResponse содержит текстовый результат операции.
type MessageResponse struct {
	Message string `json:"message"`
}

// ShareLinkResponse содержит публичную ссылку на заметку.
type ShareLinkResponse struct {
	ShareableLink string `json:"shareableLink"`
}
