package entities

import (
	"errors"
	"time"
)

// Ошибки домена заметок. ErrNoteNotFound возвращается одинаково и для
// несуществующей, и для чужой заметки: принадлежность не раскрывается.
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrEmptyNote    = errors.New("note title and content cannot both be empty")
	ErrEmptyQuery   = errors.New("search query cannot be empty")
)

// Note представляет собой заметку пользователя.
type Note struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ShareToken *string   `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PublicNoteView - подмножество полей заметки, доступное по публичной ссылке.
type PublicNoteView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicView возвращает публичное представление заметки без токена и служебных полей.
func (n *Note) PublicView() *PublicNoteView {
	return &PublicNoteView{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		OwnerID:   n.OwnerID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
