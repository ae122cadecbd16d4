package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/urec_capacity_tracker/internal/config"
	"github.com/shenikar/urec_capacity_tracker/internal/models"
	"github.com/shenikar/urec_capacity_tracker/internal/webhook"
	"github.com/sirupsen/logrus"
)

// Ошибки доменного уровня. Хендлер сопоставляет их с HTTP-кодами через errors.Is.
var (
	ErrAreaNotFound  = errors.New("area not found")
	ErrInvalidAction = errors.New("action must be 'enter' or 'exit'")
	ErrInvalidCount  = errors.New("count is out of range")
)

// Статусы заполняемости зоны
const (
	StatusClosed    = "closed"
	StatusAvailable = "available"
	StatusModerate  = "moderate"
	StatusBusy      = "busy"
)

// Допустимые действия и границы count
const (
	ActionEnter = "enter"
	ActionExit  = "exit"

	defaultUpdateCount = 1
	minUpdateCount     = 1
	maxUpdateCount     = 10
)

// AreaRepository определяет контракт для работы с хранилищем зон
type AreaRepository interface {
	GetByID(ctx context.Context, areaID string) (*models.Area, error)
	ListAll(ctx context.Context) ([]*models.Area, error)
	ApplyDelta(ctx context.Context, areaID string, delta int) (*models.Area, error)
	SetCount(ctx context.Context, areaID string, count int) (*models.Area, error)
	CreateArea(ctx context.Context, area *models.Area) error
	SaveCapacityEvent(ctx context.Context, event *models.CapacityEvent) error
	CountEventsSince(ctx context.Context, minutes int) (int, error)
	Ping(ctx context.Context) error
}

// CapacityService определяет контракт для бизнес-логики учета заполняемости
type CapacityService interface {
	GetAllAreas(ctx context.Context) ([]*models.Area, error)
	GetArea(ctx context.Context, areaID string) (*models.Area, error)
	UpdateCapacity(ctx context.Context, areaID, action string, count int, source string) (*models.Area, error)
	ResetArea(ctx context.Context, areaID string, count int) (*models.Area, error)
	GetStats(ctx context.Context) (int, error)
	HealthCheck(ctx context.Context) bool
}

type capacityService struct {
	repo      AreaRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.EventPublisher
}

func NewCapacityService(repo AreaRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.EventPublisher) CapacityService {
	return &capacityService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

// PercentFull возвращает заполненность зоны в процентах.
// 0, если max_capacity некорректен.
func PercentFull(area *models.Area) float64 {
	if area.MaxCapacity <= 0 {
		return 0
	}
	return float64(area.CurrentCount) / float64(area.MaxCapacity) * 100
}

// DeriveStatus классифицирует зону по порогам заполненности.
// Закрытая зона всегда имеет статус closed, независимо от счетчика.
func DeriveStatus(area *models.Area, availablePct, moderatePct int) string {
	if !area.IsOpen {
		return StatusClosed
	}
	pct := PercentFull(area)
	switch {
	case pct <= float64(availablePct):
		return StatusAvailable
	case pct <= float64(moderatePct):
		return StatusModerate
	default:
		return StatusBusy
	}
}

// GetAllAreas возвращает все отслеживаемые зоны
func (s *capacityService) GetAllAreas(ctx context.Context) ([]*models.Area, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "capacity",
		"method":  "GetAllAreas",
	})
	log.Debug("Fetching all areas")

	areas, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list areas from repository")
		return nil, fmt.Errorf("service: could not list areas: %w", err)
	}

	log.WithField("count", len(areas)).Debug("Areas listed successfully")
	return areas, nil
}

// GetArea возвращает зону по идентификатору
func (s *capacityService) GetArea(ctx context.Context, areaID string) (*models.Area, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "capacity",
		"method":  "GetArea",
		"area_id": areaID,
	})
	log.Debug("Fetching area")

	area, err := s.repo.GetByID(ctx, areaID)
	if err != nil {
		log.WithError(err).Warn("Failed to get area from repository")
		return nil, fmt.Errorf("service: could not get area %q: %w", areaID, err)
	}
	return area, nil
}

// UpdateCapacity применяет событие входа/выхода к счетчику зоны.
// Вся валидация выполняется до обращения к хранилищу: при неверном входе
// мутации не происходит.
func (s *capacityService) UpdateCapacity(ctx context.Context, areaID, action string, count int, source string) (*models.Area, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "capacity",
		"method":  "UpdateCapacity",
		"area_id": areaID,
		"action":  action,
	})

	action = strings.ToLower(strings.TrimSpace(action))
	if action != ActionEnter && action != ActionExit {
		log.Warn("Rejected update with unknown action")
		return nil, fmt.Errorf("service: action %q: %w", action, ErrInvalidAction)
	}

	// count == 0 означает "не передан" — применяется значение по умолчанию
	if count == 0 {
		count = defaultUpdateCount
	}
	if count < minUpdateCount || count > maxUpdateCount {
		log.WithField("count", count).Warn("Rejected update with out-of-range count")
		return nil, fmt.Errorf("service: count %d: %w", count, ErrInvalidCount)
	}

	delta := count
	if action == ActionExit {
		delta = -count
	}

	area, err := s.repo.ApplyDelta(ctx, areaID, delta)
	if err != nil {
		log.WithError(err).Warn("Failed to apply delta in repository")
		return nil, fmt.Errorf("service: could not update capacity for %q: %w", areaID, err)
	}
	log.WithField("new_count", area.CurrentCount).Info("Capacity updated")

	if source == "" {
		source = "ipad"
	}
	s.recordEvent(ctx, area, action, count, source)

	return area, nil
}

// recordEvent сохраняет событие в журнал и ставит его в очередь вебхуков.
// Мутация счетчика уже зафиксирована, поэтому сбои здесь не превращают
// принятое обновление в ошибку — иначе повторная отправка удвоила бы счетчик.
func (s *capacityService) recordEvent(ctx context.Context, area *models.Area, action string, count int, source string) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "capacity",
		"area_id": area.AreaID,
		"action":  action,
	})

	event := &models.CapacityEvent{
		AreaID:     area.AreaID,
		Action:     action,
		Count:      count,
		Source:     source,
		RecordedAt: time.Now().UTC(),
	}
	if err := s.repo.SaveCapacityEvent(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to save capacity event")
	}

	webhookEvent := webhook.CapacityChangedEvent{
		AreaID:    area.AreaID,
		Action:    action,
		Count:     count,
		NewCount:  area.CurrentCount,
		Status:    DeriveStatus(area, s.cfg.AvailableThresholdPct, s.cfg.ModerateThresholdPct),
		Timestamp: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, webhookEvent); err != nil {
		log.WithError(err).Warn("Failed to publish capacity webhook event")
	}
}

// ResetArea безусловно перезаписывает счетчик зоны (админская операция)
func (s *capacityService) ResetArea(ctx context.Context, areaID string, count int) (*models.Area, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "capacity",
		"method":  "ResetArea",
		"area_id": areaID,
		"count":   count,
	})

	if count < 0 {
		log.Warn("Rejected reset with negative count")
		return nil, fmt.Errorf("service: count %d: %w", count, ErrInvalidCount)
	}

	area, err := s.repo.SetCount(ctx, areaID, count)
	if err != nil {
		log.WithError(err).Warn("Failed to set count in repository")
		return nil, fmt.Errorf("service: could not reset area %q: %w", areaID, err)
	}

	log.Info("Area counter reset")
	return area, nil
}

// GetStats возвращает количество принятых обновлений за окно наблюдения
func (s *capacityService) GetStats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "capacity",
		"method":  "GetStats",
	})

	count, err := s.repo.CountEventsSince(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get update stats from repository")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}

// HealthCheck сообщает о доступности хранилища без мутации состояния
func (s *capacityService) HealthCheck(ctx context.Context) bool {
	if err := s.repo.Ping(ctx); err != nil {
		s.logger.WithError(err).Warn("Database ping failed")
		return false
	}
	return true
}
