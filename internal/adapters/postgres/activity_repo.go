package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"sharenote/internal/domain/entities"
	"sharenote/internal/ports/repositories"
	"sharenote/pkg/logger"
)

// ActivityRepository реализует интерфейс repositories.ActivityRepository.
type ActivityRepository struct {
	pool PgxPoolInterface
}

// NewActivityRepository создает новый репозиторий журнала активности.
func NewActivityRepository(pool PgxPoolInterface) repositories.ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// Append добавляет запись в журнал активности.
func (r *ActivityRepository) Append(ctx context.Context, userID, noteID, action string) error {
	log := logger.Log(ctx).With(zap.String("method", "ActivityRepository.Append"))
	log.Debug(ctx, "appending activity entry",
		zap.String("userID", userID),
		zap.String("noteID", noteID),
		zap.String("action", action))

	_, err := r.pool.Exec(ctx,
		`INSERT INTO activity_logs (user_id, note_id, action) VALUES ($1, $2, $3)`,
		userID, noteID, action,
	)
	if err != nil {
		log.Error(ctx, "failed to append activity entry", zap.Error(err))
		return fmt.Errorf("failed to append activity entry: %w", err)
	}

	return nil
}

// ListByUser возвращает журнал активности пользователя, новые записи первыми.
func (r *ActivityRepository) ListByUser(ctx context.Context, userID string) ([]*entities.ActivityEntry, error) {
	log := logger.Log(ctx).With(zap.String("method", "ActivityRepository.ListByUser"))
	log.Debug(ctx, "listing activity entries", zap.String("userID", userID))

	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, note_id, action, created_at
         FROM activity_logs
         WHERE user_id = $1
         ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		log.Error(ctx, "failed to list activity entries", zap.Error(err))
		return nil, fmt.Errorf("failed to list activity entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*entities.ActivityEntry, 0)
	for rows.Next() {
		var entry entities.ActivityEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.NoteID, &entry.Action, &entry.CreatedAt); err != nil {
			log.Error(ctx, "failed to scan activity entry", zap.Error(err))
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}
