package entities

import "time"

// Виды действий в журнале активности.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// ActivityEntry представляет запись журнала активности пользователя.
// Журнал append-only: записи никогда не изменяются и не удаляются.
type ActivityEntry struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	NoteID    string    `json:"note_id"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}
