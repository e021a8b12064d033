// Package events содержит реализацию рассылки событий через Redis pub/sub.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	domain "sharenote/internal/domain/services"
	svc "sharenote/internal/ports/services"
	"sharenote/pkg/db/redis"
	"sharenote/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodPublish = "publish"

	ErrorFailedToMarshal = "failed to marshal note event"
	ErrorFailedToPublish = "failed to publish note event"
)

// RedisPublisher реализует интерфейс EventPublisher поверх Redis pub/sub.
// Подписчиков может не быть вовсе - публикация при этом не считается ошибкой.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher создает новый экземпляр RedisPublisher.
func NewRedisPublisher(client *redis.Client, channel string) svc.EventPublisher {
	return &RedisPublisher{
		client:  client,
		channel: channel,
	}
}

// Publish сериализует событие в JSON и отправляет его в канал.
func (p *RedisPublisher) Publish(ctx context.Context, event *domain.NoteEvent) error {
	log := logger.Log(ctx).With(
		zap.String("method", LogMethodPublish),
		zap.String("kind", event.Kind),
	)

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error(ctx, ErrorFailedToMarshal, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToMarshal, err)
	}

	if err := p.client.Publish(ctx, p.channel, payload); err != nil {
		log.Error(ctx, ErrorFailedToPublish, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToPublish, err)
	}

	return nil
}

// Close закрывает соединение с Redis.
func (p *RedisPublisher) Close() error {
	if err := p.client.Close(); err != nil {
		return fmt.Errorf("failed to close event publisher: %w", err)
	}
	return nil
}
