package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shenikar/urec_capacity_tracker/internal/config"
	"github.com/shenikar/urec_capacity_tracker/internal/models"
	"github.com/shenikar/urec_capacity_tracker/internal/service/mocks"
	"github.com/shenikar/urec_capacity_tracker/internal/webhook"
	webhook_mocks "github.com/shenikar/urec_capacity_tracker/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestCapacityService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestCapacityService(t *testing.T) (*capacityService, *mocks.MockAreaRepository, *webhook_mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAreaRepository(ctrl)
	publisherMock := webhook_mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		AvailableThresholdPct:  60,
		ModerateThresholdPct:   85,
		StatsTimeWindowMinutes: 60,
	}

	service := NewCapacityService(repoMock, logger, cfg, publisherMock)
	return service.(*capacityService), repoMock, publisherMock
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		area     *models.Area
		expected string
	}{
		{
			name:     "на пороге available",
			area:     &models.Area{IsOpen: true, CurrentCount: 60, MaxCapacity: 100},
			expected: StatusAvailable,
		},
		{
			name:     "сразу за порогом available",
			area:     &models.Area{IsOpen: true, CurrentCount: 61, MaxCapacity: 100},
			expected: StatusModerate,
		},
		{
			name:     "на пороге moderate",
			area:     &models.Area{IsOpen: true, CurrentCount: 85, MaxCapacity: 100},
			expected: StatusModerate,
		},
		{
			name:     "за порогом moderate",
			area:     &models.Area{IsOpen: true, CurrentCount: 86, MaxCapacity: 100},
			expected: StatusBusy,
		},
		{
			name:     "закрытая зона игнорирует счетчик",
			area:     &models.Area{IsOpen: false, CurrentCount: 5, MaxCapacity: 100},
			expected: StatusClosed,
		},
		{
			name:     "пустая зона",
			area:     &models.Area{IsOpen: true, CurrentCount: 0, MaxCapacity: 100},
			expected: StatusAvailable,
		},
		{
			name:     "счетчик выше вместимости",
			area:     &models.Area{IsOpen: true, CurrentCount: 120, MaxCapacity: 100},
			expected: StatusBusy,
		},
		{
			name:     "некорректная вместимость дает 0 процентов",
			area:     &models.Area{IsOpen: true, CurrentCount: 10, MaxCapacity: 0},
			expected: StatusAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveStatus(tt.area, 60, 85))
		})
	}
}

func TestDeriveStatus_CustomThresholds(t *testing.T) {
	// Пороги берутся из конфигурации, а не зашиты в коде
	area := &models.Area{IsOpen: true, CurrentCount: 50, MaxCapacity: 100}

	assert.Equal(t, StatusModerate, DeriveStatus(area, 40, 70))
	assert.Equal(t, StatusBusy, DeriveStatus(area, 20, 40))
	assert.Equal(t, StatusAvailable, DeriveStatus(area, 50, 85))
}

func TestPercentFull(t *testing.T) {
	assert.InDelta(t, 45.0, PercentFull(&models.Area{CurrentCount: 45, MaxCapacity: 100}), 0.001)
	assert.InDelta(t, 30.0, PercentFull(&models.Area{CurrentCount: 12, MaxCapacity: 40}), 0.001)
	assert.Zero(t, PercentFull(&models.Area{CurrentCount: 10, MaxCapacity: 0}))
}

func TestUpdateCapacity_EnterDefaultCount(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestCapacityService(t)
	ctx := context.Background()
	updatedArea := &models.Area{
		AreaID:       "weight-room",
		Name:         "Weight Room",
		CurrentCount: 46,
		MaxCapacity:  100,
		IsOpen:       true,
	}

	// Ожидания
	// count не передан — применяется дельта +1
	repoMock.EXPECT().
		ApplyDelta(ctx, "weight-room", 1).
		Return(updatedArea, nil).
		Times(1)

	repoMock.EXPECT().
		SaveCapacityEvent(ctx, gomock.Any()).
		Do(func(ctx context.Context, event *models.CapacityEvent) {
			assert.Equal(t, "weight-room", event.AreaID)
			assert.Equal(t, ActionEnter, event.Action)
			assert.Equal(t, 1, event.Count)
			assert.Equal(t, "ipad", event.Source)
		}).Return(nil).Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.CapacityChangedEvent) {
			assert.Equal(t, "weight-room", event.AreaID)
			assert.Equal(t, 46, event.NewCount)
			assert.Equal(t, StatusAvailable, event.Status)
		}).Return(nil).Times(1)

	// Действие
	area, err := service.UpdateCapacity(ctx, "weight-room", "enter", 0, "")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 46, area.CurrentCount)
}

func TestUpdateCapacity_ExitNegativeDelta(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestCapacityService(t)
	ctx := context.Background()
	updatedArea := &models.Area{AreaID: "pool", CurrentCount: 9, MaxCapacity: 40, IsOpen: true}

	// Ожидания
	repoMock.EXPECT().ApplyDelta(ctx, "pool", -3).Return(updatedArea, nil).Times(1)
	repoMock.EXPECT().SaveCapacityEvent(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	area, err := service.UpdateCapacity(ctx, "pool", "exit", 3, "ipad")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 9, area.CurrentCount)
}

func TestUpdateCapacity_ActionCaseInsensitive(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestCapacityService(t)
	ctx := context.Background()
	updatedArea := &models.Area{AreaID: "track", CurrentCount: 1, MaxCapacity: 50, IsOpen: true}

	// Ожидания
	repoMock.EXPECT().ApplyDelta(ctx, "track", 1).Return(updatedArea, nil).Times(1)
	repoMock.EXPECT().SaveCapacityEvent(ctx, gomock.Any()).
		Do(func(ctx context.Context, event *models.CapacityEvent) {
			assert.Equal(t, ActionEnter, event.Action)
		}).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	_, err := service.UpdateCapacity(ctx, "track", "ENTER", 1, "")

	// Проверки
	require.NoError(t, err)
}

func TestUpdateCapacity_InvalidAction(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestCapacityService(t)
	ctx := context.Background()

	// Ожидания: неверное действие отклоняется до обращения к хранилищу
	repoMock.EXPECT().ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	repoMock.EXPECT().SaveCapacityEvent(gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	area, err := service.UpdateCapacity(ctx, "weight-room", "jump", 1, "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, area)
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestUpdateCapacity_CountOutOfRange(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCapacityService(t)
	ctx := context.Background()

	// Ожидания: неверный count отклоняется до обращения к хранилищу
	repoMock.EXPECT().ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, count := range []int{-1, 11, 100} {
		// Действие
		area, err := service.UpdateCapacity(ctx, "weight-room", "enter", count, "")

		// Проверки
		require.Error(t, err, "count=%d", count)
		assert.Nil(t, area)
		assert.ErrorIs(t, err, ErrInvalidCount)
	}
}

func TestUpdateCapacity_AreaNotFound(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestCapacityService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		ApplyDelta(ctx, "nonexistent", 1).
		Return(nil, fmt.Errorf("area %q: %w", "nonexistent", ErrAreaNotFound)).
		Times(1)
	// Событие не журналируется и не публикуется
	repoMock.EXPECT().SaveCapacityEvent(gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	area, err := service.UpdateCapacity(ctx, "nonexistent", "enter", 0, "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, area)
	assert.ErrorIs(t, err, ErrAreaNotFound)
}

func TestUpdateCapacity_EventFailuresDoNotFailUpdate(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestCapacityService(t)
	ctx := context.Background()
	updatedArea := &models.Area{AreaID: "cardio", CurrentCount: 5, MaxCapacity: 60, IsOpen: true}

	// Ожидания: мутация уже зафиксирована, сбои журнала и очереди не ошибка
	repoMock.EXPECT().ApplyDelta(ctx, "cardio", 1).Return(updatedArea, nil).Times(1)
	repoMock.EXPECT().SaveCapacityEvent(ctx, gomock.Any()).Return(errors.New("insert failed")).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	// Действие
	area, err := service.UpdateCapacity(ctx, "cardio", "enter", 1, "")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 5, area.CurrentCount)
}

func TestResetArea_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCapacityService(t)
	ctx := context.Background()
	resetArea := &models.Area{AreaID: "pool", CurrentCount: 7, MaxCapacity: 40, IsOpen: true}

	// Ожидания
	repoMock.EXPECT().SetCount(ctx, "pool", 7).Return(resetArea, nil).Times(1)

	// Действие
	area, err := service.ResetArea(ctx, "pool", 7)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 7, area.CurrentCount)
}

func TestResetArea_NegativeCount(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCapacityService(t)
	ctx := context.Background()

	// Ожидания: хранилище не вызывается
	repoMock.EXPECT().SetCount(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	area, err := service.ResetArea(ctx, "pool", -5)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, area)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestResetArea_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCapacityService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		SetCount(ctx, "nonexistent", 0).
		Return(nil, fmt.Errorf("area %q: %w", "nonexistent", ErrAreaNotFound)).
		Times(1)

	// Действие
	area, err := service.ResetArea(ctx, "nonexistent", 0)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, area)
	assert.ErrorIs(t, err, ErrAreaNotFound)
}

func TestGetArea_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCapacityService(t)
	ctx := context.Background()
	expectedArea := &models.Area{
		AreaID:       "climbing",
		Name:         "Climbing Wall",
		CurrentCount: 8,
		MaxCapacity:  15,
		IsOpen:       true,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, "climbing").Return(expectedArea, nil).Times(1)

	// Действие
	area, err := service.GetArea(ctx, "climbing")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedArea, area)
}

func TestGetArea_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCapacityService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, "nonexistent").
		Return(nil, fmt.Errorf("area %q: %w", "nonexistent", ErrAreaNotFound)).
		Times(1)

	// Действие
	area, err := service.GetArea(ctx, "nonexistent")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, area)
	assert.ErrorIs(t, err, ErrAreaNotFound)
}

func TestGetAllAreas_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCapacityService(t)
	ctx := context.Background()
	expectedAreas := []*models.Area{
		{AreaID: "cardio", Name: "Cardio Area", CurrentCount: 32, MaxCapacity: 60, IsOpen: true},
		{AreaID: "weight-room", Name: "Weight Room", CurrentCount: 45, MaxCapacity: 100, IsOpen: true},
	}

	// Ожидания
	repoMock.EXPECT().ListAll(ctx).Return(expectedAreas, nil).Times(1)

	// Действие
	areas, err := service.GetAllAreas(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedAreas, areas)
}

func TestGetAllAreas_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCapacityService(t)
	ctx := context.Background()
	repoError := errors.New("connection refused")

	// Ожидания
	repoMock.EXPECT().ListAll(ctx).Return(nil, repoError).Times(1)

	// Действие
	areas, err := service.GetAllAreas(ctx)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, areas)
	assert.ErrorContains(t, err, "could not list areas")
}

func TestGetStats_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCapacityService(t)
	ctx := context.Background()
	expectedCount := 42

	// Ожидания: окно наблюдения берется из конфигурации
	repoMock.EXPECT().CountEventsSince(ctx, service.cfg.StatsTimeWindowMinutes).Return(expectedCount, nil).Times(1)

	// Действие
	count, err := service.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedCount, count)
}

func TestHealthCheck(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCapacityService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().Ping(ctx).Return(nil).Times(1)
	assert.True(t, service.HealthCheck(ctx))

	repoMock.EXPECT().Ping(ctx).Return(errors.New("dial tcp: connection refused")).Times(1)
	assert.False(t, service.HealthCheck(ctx))
}
