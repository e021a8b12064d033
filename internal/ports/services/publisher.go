package services

import (
	"context"

	"sharenote/internal/domain/services"
)

// EventPublisher определяет интерфейс рассылки событий мутаций заметок.
// Публикация best-effort: ошибки логируются и никогда не влияют
// на результат основного запроса.
type EventPublisher interface {
	Publish(ctx context.Context, event *services.NoteEvent) error
	Close() error
}
