package repositories

import (
	"context"

	"sharenote/internal/domain/entities"
)

// NoteRepository определяет интерфейс для работы с хранилищем заметок.
// Все мутации принимают пару (noteID, ownerID): запрос структурно не может
// затронуть чужую заметку, отсутствие и чужое владение неразличимы.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Note, error)
	SearchByOwner(ctx context.Context, ownerID, query string) ([]*entities.Note, error)
	// Update возвращает entities.ErrNoteNotFound, если заметка не существует
	// или принадлежит другому пользователю.
	Update(ctx context.Context, noteID, ownerID, title, content string) (*entities.Note, error)
	Delete(ctx context.Context, noteID, ownerID string) error
	// SetShareToken перезаписывает публичный токен заметки; прежняя ссылка
	// при этом молча перестает действовать.
	SetShareToken(ctx context.Context, noteID, ownerID, token string) error
	FindByShareToken(ctx context.Context, token string) (*entities.Note, error)
}
