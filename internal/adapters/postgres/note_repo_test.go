package postgres_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharenote/internal/adapters/postgres"
	"sharenote/internal/domain/entities"
)

var noteColumns = []string{"id", "owner_id", "title", "content", "share_token", "created_at", "updated_at"}

const (
	testNoteID  = "note-id-1"
	testOwnerID = "owner-id-1"
)

func noteRow(id, ownerID, title, content string, shareToken *string, createdAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(noteColumns).
		AddRow(id, ownerID, title, content, shareToken, createdAt, createdAt)
}

func TestNoteRepository_Create(t *testing.T) {
	ctx := testContext(t)

	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное создание заметки", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO notes .+").
			WithArgs(testOwnerID, "Title", "Content").
			WillReturnRows(noteRow(testNoteID, testOwnerID, "Title", "Content", nil, createdAt))

		repo := postgres.NewNoteRepository(mock)
		created, err := repo.Create(ctx, &entities.Note{
			OwnerID: testOwnerID,
			Title:   "Title",
			Content: "Content",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, testNoteID, created.ID)
		assert.Equal(t, testOwnerID, created.OwnerID)
		assert.Nil(t, created.ShareToken)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка БД при создании", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO notes .+").
			WithArgs(testOwnerID, "Title", "Content").
			WillReturnError(errors.New("database connection error"))

		repo := postgres.NewNoteRepository(mock)
		created, err := repo.Create(ctx, &entities.Note{
			OwnerID: testOwnerID,
			Title:   "Title",
			Content: "Content",
		})

		assert.Nil(t, created)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create note")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_ListByOwner(t *testing.T) {
	ctx := testContext(t)

	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Список заметок пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows(noteColumns).
			AddRow("note-2", testOwnerID, "Second", "b", nil, createdAt, createdAt).
			AddRow("note-1", testOwnerID, "First", "a", nil, createdAt.Add(-time.Hour), createdAt.Add(-time.Hour))

		mock.ExpectQuery("SELECT id, owner_id, title, content, share_token, created_at, updated_at").
			WithArgs(testOwnerID).
			WillReturnRows(rows)

		repo := postgres.NewNoteRepository(mock)
		notes, err := repo.ListByOwner(ctx, testOwnerID)

		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "note-2", notes[0].ID)
		assert.Equal(t, "note-1", notes[1].ID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пустой список вместо nil", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, owner_id, title, content, share_token, created_at, updated_at").
			WithArgs(testOwnerID).
			WillReturnRows(pgxmock.NewRows(noteColumns))

		repo := postgres.NewNoteRepository(mock)
		notes, err := repo.ListByOwner(ctx, testOwnerID)

		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_SearchByOwner(t *testing.T) {
	ctx := testContext(t)

	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Поиск по подстроке", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, owner_id, title, content, share_token, created_at, updated_at").
			WithArgs(testOwnerID, "groceries").
			WillReturnRows(noteRow(testNoteID, testOwnerID, "Groceries list", "milk", nil, createdAt))

		repo := postgres.NewNoteRepository(mock)
		notes, err := repo.SearchByOwner(ctx, testOwnerID, "groceries")

		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "Groceries list", notes[0].Title)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ничего не найдено", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, owner_id, title, content, share_token, created_at, updated_at").
			WithArgs(testOwnerID, "nothing").
			WillReturnRows(pgxmock.NewRows(noteColumns))

		repo := postgres.NewNoteRepository(mock)
		notes, err := repo.SearchByOwner(ctx, testOwnerID, "nothing")

		require.NoError(t, err)
		assert.Empty(t, notes)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_Update(t *testing.T) {
	ctx := testContext(t)

	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное обновление заметки", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE notes").
			WithArgs(testNoteID, testOwnerID, "New title", "New content").
			WillReturnRows(noteRow(testNoteID, testOwnerID, "New title", "New content", nil, createdAt))

		repo := postgres.NewNoteRepository(mock)
		updated, err := repo.Update(ctx, testNoteID, testOwnerID, "New title", "New content")

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, "New content", updated.Content)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Чужая или несуществующая заметка дает ErrNoteNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE notes").
			WithArgs(testNoteID, "other-owner", "New title", "New content").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewNoteRepository(mock)
		updated, err := repo.Update(ctx, testNoteID, "other-owner", "New title", "New content")

		assert.Nil(t, updated)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_Delete(t *testing.T) {
	ctx := testContext(t)

	t.Run("Успешное удаление заметки", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM notes").
			WithArgs(testNoteID, testOwnerID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := postgres.NewNoteRepository(mock)
		err = repo.Delete(ctx, testNoteID, testOwnerID)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Чужая или несуществующая заметка дает ErrNoteNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM notes").
			WithArgs(testNoteID, "other-owner").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewNoteRepository(mock)
		err = repo.Delete(ctx, testNoteID, "other-owner")

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_SetShareToken(t *testing.T) {
	ctx := testContext(t)

	token := "aabbccddeeff00112233445566778899"

	t.Run("Успешная запись токена", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE notes SET share_token").
			WithArgs(testNoteID, testOwnerID, token).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := postgres.NewNoteRepository(mock)
		err = repo.SetShareToken(ctx, testNoteID, testOwnerID, token)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Чужая или несуществующая заметка дает ErrNoteNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE notes SET share_token").
			WithArgs(testNoteID, "other-owner", token).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := postgres.NewNoteRepository(mock)
		err = repo.SetShareToken(ctx, testNoteID, "other-owner", token)

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_FindByShareToken(t *testing.T) {
	ctx := testContext(t)

	token := "aabbccddeeff00112233445566778899"
	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Заметка найдена по токену", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM notes WHERE share_token").
			WithArgs(token).
			WillReturnRows(noteRow(testNoteID, testOwnerID, "Shared", "content", &token, createdAt))

		repo := postgres.NewNoteRepository(mock)
		note, err := repo.FindByShareToken(ctx, token)

		require.NoError(t, err)
		require.NotNil(t, note)
		assert.Equal(t, testNoteID, note.ID)
		require.NotNil(t, note.ShareToken)
		assert.Equal(t, token, *note.ShareToken)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Неизвестный токен дает ErrNoteNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM notes WHERE share_token").
			WithArgs("unknown-token").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewNoteRepository(mock)
		note, err := repo.FindByShareToken(ctx, "unknown-token")

		assert.Nil(t, note)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
