package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	capacityEventsQueueKey = "capacity_webhook_events"
)

// CapacityChangedEvent - структура для данных вебхука об изменении счетчика
type CapacityChangedEvent struct {
	AreaID    string    `json:"area_id"`
	Action    string    `json:"action"`
	Count     int       `json:"count"`
	NewCount  int       `json:"new_count"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации событий изменения заполняемости
type EventPublisher interface {
	Publish(ctx context.Context, event CapacityChangedEvent) error
}

// RedisEventPublisher - реализация EventPublisher, использующая очередь в Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish ставит событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event CapacityChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal capacity event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер читает справа
	if err := p.redisClient.LPush(ctx, capacityEventsQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish capacity event to Redis: %w", err)
	}
	return nil
}
