package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"sharenote/internal/domain/entities"
	"sharenote/internal/domain/services"
	"sharenote/internal/ports/api"
	"sharenote/internal/ports/repositories"
	svc "sharenote/internal/ports/services"
	"sharenote/pkg/logger"
)

// sideEffectTimeout ограничивает время записи журнала и публикации события.
const sideEffectTimeout = 5 * time.Second

const (
	msgCreatingNote       = "creating note"
	msgNoteCreated        = "note created"
	msgNoteUpdated        = "note updated"
	msgNoteDeleted        = "note deleted"
	msgErrLogActivity     = "failed to log activity, ignoring"
	msgErrPublishEvent    = "failed to publish note event, ignoring"
	errCtxCreatingNote    = "creating note"
	errCtxListingNotes    = "listing notes"
	errCtxSearchingNotes  = "searching notes"
	errCtxUpdatingNote    = "updating note"
	errCtxDeletingNote    = "deleting note"
	errCtxListingActivity = "listing activity"
)

// NoteUseCase реализует интерфейсы NotesUseCase.
type NoteUseCase struct {
	noteRepo     repositories.NoteRepository
	activityRepo repositories.ActivityRepository
	publisher    svc.EventPublisher
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(
	noteRepo repositories.NoteRepository,
	activityRepo repositories.ActivityRepository,
	publisher svc.EventPublisher,
) api.NotesUseCase {
	return &NoteUseCase{
		noteRepo:     noteRepo,
		activityRepo: activityRepo,
		publisher:    publisher,
	}
}

// Create создает новую заметку для пользователя.
func (uc *NoteUseCase) Create(ctx context.Context, ownerID, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.Create"), zap.String("ownerID", ownerID))
	log.Debug(ctx, msgCreatingNote)

	if strings.TrimSpace(title) == "" && strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, entities.ErrEmptyNote)
	}

	note, err := uc.noteRepo.Create(ctx, &entities.Note{
		OwnerID: ownerID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	log.Info(ctx, msgNoteCreated, zap.String("noteID", note.ID))

	uc.recordMutation(ctx, entities.ActionCreate, services.EventNoteCreated, &services.NoteEventPayload{
		ID:      note.ID,
		Title:   note.Title,
		Content: note.Content,
		OwnerID: note.OwnerID,
	})

	return note, nil
}

// List возвращает заметки пользователя, новые первыми.
func (uc *NoteUseCase) List(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}
	return notes, nil
}

// Search ищет заметки пользователя по подстроке. Пустой запрос - ошибка
// валидации, а не пустой результат.
func (uc *NoteUseCase) Search(ctx context.Context, ownerID, query string) ([]*entities.Note, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%s: %w", errCtxSearchingNotes, entities.ErrEmptyQuery)
	}

	notes, err := uc.noteRepo.SearchByOwner(ctx, ownerID, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxSearchingNotes, err)
	}
	return notes, nil
}

// Update обновляет заметку пользователя.
func (uc *NoteUseCase) Update(ctx context.Context, ownerID, noteID, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.Update"), zap.String("noteID", noteID))

	note, err := uc.noteRepo.Update(ctx, noteID, ownerID, title, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	log.Info(ctx, msgNoteUpdated, zap.String("noteID", note.ID))

	uc.recordMutation(ctx, entities.ActionUpdate, services.EventNoteUpdated, &services.NoteEventPayload{
		ID:      note.ID,
		Title:   note.Title,
		Content: note.Content,
		OwnerID: note.OwnerID,
	})

	return note, nil
}

// Delete удаляет заметку пользователя.
func (uc *NoteUseCase) Delete(ctx context.Context, ownerID, noteID string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.Delete"), zap.String("noteID", noteID))

	if err := uc.noteRepo.Delete(ctx, noteID, ownerID); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingNote, err)
	}

	log.Info(ctx, msgNoteDeleted, zap.String("noteID", noteID))

	uc.recordMutation(ctx, entities.ActionDelete, services.EventNoteDeleted, &services.NoteEventPayload{
		ID:      noteID,
		OwnerID: ownerID,
	})

	return nil
}

// ListActivity возвращает журнал активности пользователя.
func (uc *NoteUseCase) ListActivity(ctx context.Context, userID string) ([]*entities.ActivityEntry, error) {
	entries, err := uc.activityRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingActivity, err)
	}
	return entries, nil
}

// recordMutation асинхронно пишет журнал активности и публикует событие.
// Запускается после успешной мутации в отдельной горутине с собственным
// контекстом: ошибки побочных эффектов логируются и никогда не доходят
// до вызывающего.
func (uc *NoteUseCase) recordMutation(ctx context.Context, action, eventKind string, payload *services.NoteEventPayload) {
	log := logger.Log(ctx)

	go func() {
		bgCtx, cancel := context.WithTimeout(logger.NewContext(context.Background(), log), sideEffectTimeout)
		defer cancel()

		if err := uc.activityRepo.Append(bgCtx, payload.OwnerID, payload.ID, action); err != nil {
			log.Warn(bgCtx, msgErrLogActivity, zap.Error(err), zap.String("action", action))
		}

		if err := uc.publisher.Publish(bgCtx, &services.NoteEvent{Kind: eventKind, Payload: *payload}); err != nil {
			log.Warn(bgCtx, msgErrPublishEvent, zap.Error(err), zap.String("kind", eventKind))
		}
	}()
}
