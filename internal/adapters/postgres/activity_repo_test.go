package postgres_test

import (
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharenote/internal/adapters/postgres"
	"sharenote/internal/domain/entities"
)

var activityColumns = []string{"id", "user_id", "note_id", "action", "created_at"}

func TestActivityRepository_Append(t *testing.T) {
	ctx := testContext(t)

	t.Run("Успешная запись в журнал", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO activity_logs").
			WithArgs(testOwnerID, testNoteID, entities.ActionCreate).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := postgres.NewActivityRepository(mock)
		err = repo.Append(ctx, testOwnerID, testNoteID, entities.ActionCreate)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка БД при записи", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO activity_logs").
			WithArgs(testOwnerID, testNoteID, entities.ActionDelete).
			WillReturnError(errors.New("database connection error"))

		repo := postgres.NewActivityRepository(mock)
		err = repo.Append(ctx, testOwnerID, testNoteID, entities.ActionDelete)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to append activity entry")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestActivityRepository_ListByUser(t *testing.T) {
	ctx := testContext(t)

	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Журнал активности пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows(activityColumns).
			AddRow(int64(2), testOwnerID, testNoteID, entities.ActionUpdate, createdAt).
			AddRow(int64(1), testOwnerID, testNoteID, entities.ActionCreate, createdAt.Add(-time.Minute))

		mock.ExpectQuery("SELECT id, user_id, note_id, action, created_at").
			WithArgs(testOwnerID).
			WillReturnRows(rows)

		repo := postgres.NewActivityRepository(mock)
		entries, err := repo.ListByUser(ctx, testOwnerID)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, int64(2), entries[0].ID)
		assert.Equal(t, entities.ActionUpdate, entries[0].Action)
		assert.Equal(t, int64(1), entries[1].ID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пустой журнал", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, user_id, note_id, action, created_at").
			WithArgs("fresh-user").
			WillReturnRows(pgxmock.NewRows(activityColumns))

		repo := postgres.NewActivityRepository(mock)
		entries, err := repo.ListByUser(ctx, "fresh-user")

		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
