package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"sharenote/internal/domain/entities"
	"sharenote/internal/ports/repositories"
	"sharenote/pkg/logger"
)

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

const noteColumns = "id, owner_id, title, content, share_token, created_at, updated_at"

func scanNote(row pgx.Row) (*entities.Note, error) {
	var note entities.Note
	err := row.Scan(
		&note.ID,
		&note.OwnerID,
		&note.Title,
		&note.Content,
		&note.ShareToken,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Create сохраняет новую заметку.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("ownerID", note.OwnerID))

	created, err := scanNote(r.pool.QueryRow(ctx,
		`INSERT INTO notes (owner_id, title, content) VALUES ($1, $2, $3) RETURNING `+noteColumns,
		note.OwnerID, note.Title, note.Content,
	))
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return created, nil
}

// ListByOwner получает список заметок пользователя, новые первыми.
func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListByOwner"))
	log.Debug(ctx, "listing notes", zap.String("ownerID", ownerID))

	rows, err := r.pool.Query(ctx,
		`SELECT `+noteColumns+`
         FROM notes
         WHERE owner_id = $1
         ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	return collectNotes(ctx, rows)
}

// SearchByOwner ищет заметки пользователя по подстроке в заголовке или тексте
// без учета регистра, новые первыми.
func (r *NoteRepository) SearchByOwner(ctx context.Context, ownerID, query string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.SearchByOwner"))
	log.Debug(ctx, "searching notes", zap.String("ownerID", ownerID))

	rows, err := r.pool.Query(ctx,
		`SELECT `+noteColumns+`
         FROM notes
         WHERE owner_id = $1 AND (title ILIKE '%' || $2 || '%' OR content ILIKE '%' || $2 || '%')
         ORDER BY created_at DESC`,
		ownerID, query,
	)
	if err != nil {
		log.Error(ctx, "failed to search notes", zap.Error(err))
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}
	defer rows.Close()

	return collectNotes(ctx, rows)
}

// Update обновляет заметку пользователя. Чужая или несуществующая заметка
// дают одинаковый результат - ErrNoteNotFound.
func (r *NoteRepository) Update(ctx context.Context, noteID, ownerID, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", noteID))

	updated, err := scanNote(r.pool.QueryRow(ctx,
		`UPDATE notes
         SET title = $3, content = $4, updated_at = now()
         WHERE id = $1 AND owner_id = $2
         RETURNING `+noteColumns,
		noteID, ownerID, title, content,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found or not owned by user")
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return updated, nil
}

// Delete удаляет заметку пользователя.
func (r *NoteRepository) Delete(ctx context.Context, noteID, ownerID string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND owner_id = $2`,
		noteID, ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return entities.ErrNoteNotFound
	}

	return nil
}

// SetShareToken перезаписывает публичный токен заметки.
func (r *NoteRepository) SetShareToken(ctx context.Context, noteID, ownerID, token string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.SetShareToken"))
	log.Debug(ctx, "setting share token", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`UPDATE notes SET share_token = $3 WHERE id = $1 AND owner_id = $2`,
		noteID, ownerID, token,
	)
	if err != nil {
		log.Error(ctx, "failed to set share token", zap.Error(err))
		return fmt.Errorf("failed to set share token: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return entities.ErrNoteNotFound
	}

	return nil
}

// FindByShareToken находит заметку по публичному токену.
func (r *NoteRepository) FindByShareToken(ctx context.Context, token string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.FindByShareToken"))
	log.Debug(ctx, "resolving share token")

	note, err := scanNote(r.pool.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE share_token = $1`,
		token,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "share token not found")
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to resolve share token", zap.Error(err))
		return nil, fmt.Errorf("failed to resolve share token: %w", err)
	}

	return note, nil
}

// collectNotes вычитывает все строки результата в срез заметок.
func collectNotes(ctx context.Context, rows pgx.Rows) ([]*entities.Note, error) {
	log := logger.Log(ctx)

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}
