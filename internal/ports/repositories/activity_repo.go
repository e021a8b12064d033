package repositories

import (
	"context"

	"sharenote/internal/domain/entities"
)

// ActivityRepository определяет интерфейс журнала активности.
type ActivityRepository interface {
	Append(ctx context.Context, userID, noteID, action string) error
	ListByUser(ctx context.Context, userID string) ([]*entities.ActivityEntry, error)
}
