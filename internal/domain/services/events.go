package services

// Виды событий, публикуемых при мутациях заметок.
const (
	EventNoteCreated = "noteCreated"
	EventNoteUpdated = "noteUpdated"
	EventNoteDeleted = "noteDeleted"
)

// NoteEvent представляет событие мутации заметки для рассылки слушателям.
// Доставка best-effort: событие может быть потеряно, порядок относительно
// ответа на основной запрос не гарантируется.
type NoteEvent struct {
	Kind    string           `json:"kind"`
	Payload NoteEventPayload `json:"payload"`
}

// NoteEventPayload зеркалирует измененные поля заметки.
// Для noteDeleted заполняются только ID и OwnerID.
type NoteEventPayload struct {
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	OwnerID string `json:"owner_id"`
}
