package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sharenote/internal/app"
	"sharenote/internal/domain/entities"
	"sharenote/internal/domain/services"
)

const sideEffectWait = 2 * time.Second

// waitForSideEffects блокирует до завершения фоновой горутины побочных эффектов.
func waitForSideEffects(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(sideEffectWait):
		t.Fatal("timed out waiting for side effects")
	}
}

func TestNoteCreate(t *testing.T) {
	ownerID := "owner-123"

	createdNote := &entities.Note{
		ID:      "note-123",
		OwnerID: ownerID,
		Title:   "Title",
		Content: "Content",
	}

	t.Run("success - note created with activity log and event", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		activityRepo := new(mockActivityRepository)
		publisher := new(mockEventPublisher)

		done := make(chan struct{})

		noteRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
			return n.OwnerID == ownerID && n.Title == "Title" && n.Content == "Content"
		})).Return(createdNote, nil).Once()
		activityRepo.On("Append", mock.Anything, ownerID, "note-123", entities.ActionCreate).
			Return(nil).Once()
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *services.NoteEvent) bool {
			return e.Kind == services.EventNoteCreated && e.Payload.ID == "note-123"
		})).Run(func(_ mock.Arguments) { close(done) }).Return(nil).Once()

		uc := app.NewNoteUseCase(noteRepo, activityRepo, publisher)

		note, err := uc.Create(context.Background(), ownerID, "Title", "Content")

		require.NoError(t, err)
		require.NotNil(t, note)
		assert.Equal(t, "note-123", note.ID)

		waitForSideEffects(t, done)

		noteRepo.AssertExpectations(t)
		activityRepo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("error - both title and content empty", func(t *testing.T) {
		uc := app.NewNoteUseCase(new(mockNoteRepository), new(mockActivityRepository), new(mockEventPublisher))

		note, err := uc.Create(context.Background(), ownerID, "   ", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrEmptyNote)
		assert.Nil(t, note)
	})

	t.Run("success - side effect failures do not surface", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		activityRepo := new(mockActivityRepository)
		publisher := new(mockEventPublisher)

		done := make(chan struct{})

		noteRepo.On("Create", mock.Anything, mock.Anything).Return(createdNote, nil).Once()
		activityRepo.On("Append", mock.Anything, ownerID, "note-123", entities.ActionCreate).
			Return(errors.New("activity log unavailable")).Once()
		publisher.On("Publish", mock.Anything, mock.Anything).
			Run(func(_ mock.Arguments) { close(done) }).
			Return(errors.New("broker unavailable")).Once()

		uc := app.NewNoteUseCase(noteRepo, activityRepo, publisher)

		note, err := uc.Create(context.Background(), ownerID, "Title", "Content")

		require.NoError(t, err)
		require.NotNil(t, note)

		waitForSideEffects(t, done)

		activityRepo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("error - repository failure", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		noteRepo.On("Create", mock.Anything, mock.Anything).Return(nil, ErrDatabaseConnection).Once()

		uc := app.NewNoteUseCase(noteRepo, new(mockActivityRepository), new(mockEventPublisher))

		note, err := uc.Create(context.Background(), ownerID, "Title", "Content")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDatabaseConnection)
		assert.Nil(t, note)

		noteRepo.AssertExpectations(t)
	})
}

func TestNoteList(t *testing.T) {
	ownerID := "owner-123"

	t.Run("success - notes listed", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		noteRepo.On("ListByOwner", mock.Anything, ownerID).Return([]*entities.Note{
			{ID: "note-2", OwnerID: ownerID},
			{ID: "note-1", OwnerID: ownerID},
		}, nil).Once()

		uc := app.NewNoteUseCase(noteRepo, new(mockActivityRepository), new(mockEventPublisher))

		notes, err := uc.List(context.Background(), ownerID)

		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "note-2", notes[0].ID)

		noteRepo.AssertExpectations(t)
	})

	t.Run("error - repository failure", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		noteRepo.On("ListByOwner", mock.Anything, ownerID).Return(nil, ErrDatabaseConnection).Once()

		uc := app.NewNoteUseCase(noteRepo, new(mockActivityRepository), new(mockEventPublisher))

		notes, err := uc.List(context.Background(), ownerID)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDatabaseConnection)
		assert.Nil(t, notes)
	})
}

func TestNoteSearch(t *testing.T) {
	ownerID := "owner-123"

	t.Run("success - notes found", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		noteRepo.On("SearchByOwner", mock.Anything, ownerID, "groceries").Return([]*entities.Note{
			{ID: "note-1", OwnerID: ownerID, Title: "Groceries list"},
		}, nil).Once()

		uc := app.NewNoteUseCase(noteRepo, new(mockActivityRepository), new(mockEventPublisher))

		notes, err := uc.Search(context.Background(), ownerID, "groceries")

		require.NoError(t, err)
		require.Len(t, notes, 1)

		noteRepo.AssertExpectations(t)
	})

	t.Run("error - empty query", func(t *testing.T) {
		uc := app.NewNoteUseCase(new(mockNoteRepository), new(mockActivityRepository), new(mockEventPublisher))

		notes, err := uc.Search(context.Background(), ownerID, "   ")

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrEmptyQuery)
		assert.Nil(t, notes)
	})
}

func TestNoteUpdate(t *testing.T) {
	ownerID := "owner-123"

	updatedNote := &entities.Note{
		ID:      "note-123",
		OwnerID: ownerID,
		Title:   "New title",
		Content: "New content",
	}

	t.Run("success - note updated with activity log and event", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		activityRepo := new(mockActivityRepository)
		publisher := new(mockEventPublisher)

		done := make(chan struct{})

		noteRepo.On("Update", mock.Anything, "note-123", ownerID, "New title", "New content").
			Return(updatedNote, nil).Once()
		activityRepo.On("Append", mock.Anything, ownerID, "note-123", entities.ActionUpdate).
			Return(nil).Once()
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *services.NoteEvent) bool {
			return e.Kind == services.EventNoteUpdated && e.Payload.Title == "New title"
		})).Run(func(_ mock.Arguments) { close(done) }).Return(nil).Once()

		uc := app.NewNoteUseCase(noteRepo, activityRepo, publisher)

		note, err := uc.Update(context.Background(), ownerID, "note-123", "New title", "New content")

		require.NoError(t, err)
		assert.Equal(t, "New title", note.Title)

		waitForSideEffects(t, done)

		noteRepo.AssertExpectations(t)
		activityRepo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("error - note not found or foreign", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		noteRepo.On("Update", mock.Anything, "note-123", ownerID, "New title", "New content").
			Return(nil, entities.ErrNoteNotFound).Once()

		uc := app.NewNoteUseCase(noteRepo, new(mockActivityRepository), new(mockEventPublisher))

		note, err := uc.Update(context.Background(), ownerID, "note-123", "New title", "New content")

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
		assert.Nil(t, note)
	})
}

func TestNoteDelete(t *testing.T) {
	ownerID := "owner-123"

	t.Run("success - note deleted with activity log and event", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		activityRepo := new(mockActivityRepository)
		publisher := new(mockEventPublisher)

		done := make(chan struct{})

		noteRepo.On("Delete", mock.Anything, "note-123", ownerID).Return(nil).Once()
		activityRepo.On("Append", mock.Anything, ownerID, "note-123", entities.ActionDelete).
			Return(nil).Once()
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *services.NoteEvent) bool {
			return e.Kind == services.EventNoteDeleted && e.Payload.ID == "note-123" && e.Payload.Title == ""
		})).Run(func(_ mock.Arguments) { close(done) }).Return(nil).Once()

		uc := app.NewNoteUseCase(noteRepo, activityRepo, publisher)

		err := uc.Delete(context.Background(), ownerID, "note-123")

		require.NoError(t, err)

		waitForSideEffects(t, done)

		noteRepo.AssertExpectations(t)
		activityRepo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("error - note not found or foreign", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		noteRepo.On("Delete", mock.Anything, "note-123", ownerID).
			Return(entities.ErrNoteNotFound).Once()

		uc := app.NewNoteUseCase(noteRepo, new(mockActivityRepository), new(mockEventPublisher))

		err := uc.Delete(context.Background(), ownerID, "note-123")

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
	})
}

func TestListActivity(t *testing.T) {
	userID := "user-123"

	t.Run("success - activity listed", func(t *testing.T) {
		activityRepo := new(mockActivityRepository)
		activityRepo.On("ListByUser", mock.Anything, userID).Return([]*entities.ActivityEntry{
			{ID: 2, UserID: userID, NoteID: "note-1", Action: entities.ActionUpdate},
			{ID: 1, UserID: userID, NoteID: "note-1", Action: entities.ActionCreate},
		}, nil).Once()

		uc := app.NewNoteUseCase(new(mockNoteRepository), activityRepo, new(mockEventPublisher))

		entries, err := uc.ListActivity(context.Background(), userID)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, entities.ActionUpdate, entries[0].Action)

		activityRepo.AssertExpectations(t)
	})

	t.Run("error - repository failure", func(t *testing.T) {
		activityRepo := new(mockActivityRepository)
		activityRepo.On("ListByUser", mock.Anything, userID).Return(nil, ErrDatabaseConnection).Once()

		uc := app.NewNoteUseCase(new(mockNoteRepository), activityRepo, new(mockEventPublisher))

		entries, err := uc.ListActivity(context.Background(), userID)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDatabaseConnection)
		assert.Nil(t, entries)
	})
}
