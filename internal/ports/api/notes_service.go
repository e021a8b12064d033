package api

import (
	"context"

	"sharenote/internal/domain/entities"
)

// NotesUseCase определяет операции над заметками аутентифицированного пользователя.
type NotesUseCase interface {
	Create(ctx context.Context, ownerID, title, content string) (*entities.Note, error)
	List(ctx context.Context, ownerID string) ([]*entities.Note, error)
	Search(ctx context.Context, ownerID, query string) ([]*entities.Note, error)
	Update(ctx context.Context, ownerID, noteID, title, content string) (*entities.Note, error)
	Delete(ctx context.Context, ownerID, noteID string) error
	ListActivity(ctx context.Context, userID string) ([]*entities.ActivityEntry, error)
}

// SharingUseCase определяет операции публичного доступа к заметкам.
type SharingUseCase interface {
	// CreateShareLink выпускает новый публичный токен для заметки и возвращает
	// абсолютную ссылку. Прежний токен заметки перестает действовать.
	CreateShareLink(ctx context.Context, ownerID, noteID string) (string, error)
	// ResolvePublic возвращает публичное представление заметки по токену
	// без какой-либо аутентификации.
	ResolvePublic(ctx context.Context, token string) (*entities.PublicNoteView, error)
}
