package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/urec_capacity_tracker/internal/models"
	"github.com/shenikar/urec_capacity_tracker/internal/service"
)

const areaColumns = `area_id, name, current_count, max_capacity, is_open, last_updated, created_at`

type AreaRepository struct {
	db *pgxpool.Pool
}

func NewAreaRepository(db *pgxpool.Pool) service.AreaRepository {
	return &AreaRepository{
		db: db,
	}
}

// scanArea читает одну строку таблицы areas в модель
func scanArea(row pgx.Row) (*models.Area, error) {
	area := &models.Area{}
	err := row.Scan(
		&area.AreaID,
		&area.Name,
		&area.CurrentCount,
		&area.MaxCapacity,
		&area.IsOpen,
		&area.LastUpdated,
		&area.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return area, nil
}

// GetByID возвращает зону по ее идентификатору
func (r *AreaRepository) GetByID(ctx context.Context, areaID string) (*models.Area, error) {
	query := `
		SELECT ` + areaColumns + `
		FROM areas
		WHERE area_id = $1;
	`
	area, err := scanArea(r.db.QueryRow(ctx, query, areaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("area %q: %w", areaID, service.ErrAreaNotFound)
		}
		return nil, fmt.Errorf("failed to get area by id: %w", err)
	}
	return area, nil
}

// ListAll возвращает все зоны, отсортированные по имени для стабильного вывода
func (r *AreaRepository) ListAll(ctx context.Context) ([]*models.Area, error) {
	query := `
		SELECT ` + areaColumns + `
		FROM areas
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	defer rows.Close()

	areas := make([]*models.Area, 0)
	for rows.Next() {
		area, err := scanArea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan area row: %w", err)
		}
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return areas, nil
}

// ApplyDelta атомарно прибавляет delta к счетчику зоны с нижней границей 0
// и обновляет last_updated. Один UPDATE-стейтмент: Postgres сериализует
// конкурентные обновления одной строки, потерянных обновлений не бывает.
func (r *AreaRepository) ApplyDelta(ctx context.Context, areaID string, delta int) (*models.Area, error) {
	query := `
		UPDATE areas
		SET current_count = GREATEST(current_count + $2, 0),
		    last_updated = NOW()
		WHERE area_id = $1
		RETURNING ` + areaColumns + `;
	`
	area, err := scanArea(r.db.QueryRow(ctx, query, areaID, delta))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("area %q: %w", areaID, service.ErrAreaNotFound)
		}
		return nil, fmt.Errorf("failed to apply delta for %q: %w", areaID, err)
	}
	return area, nil
}

// SetCount безусловно перезаписывает счетчик зоны и обновляет last_updated
func (r *AreaRepository) SetCount(ctx context.Context, areaID string, count int) (*models.Area, error) {
	query := `
		UPDATE areas
		SET current_count = GREATEST($2, 0),
		    last_updated = NOW()
		WHERE area_id = $1
		RETURNING ` + areaColumns + `;
	`
	area, err := scanArea(r.db.QueryRow(ctx, query, areaID, count))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("area %q: %w", areaID, service.ErrAreaNotFound)
		}
		return nil, fmt.Errorf("failed to set count for %q: %w", areaID, err)
	}
	return area, nil
}

// CreateArea создает зону или обновляет ее метаданные при повторном посеве.
// Текущий счетчик существующей зоны сохраняется.
func (r *AreaRepository) CreateArea(ctx context.Context, area *models.Area) error {
	query := `
		INSERT INTO areas (area_id, name, current_count, max_capacity, is_open)
		VALUES ($1, $2, 0, $3, $4)
		ON CONFLICT (area_id) DO UPDATE
		SET name = EXCLUDED.name,
		    max_capacity = EXCLUDED.max_capacity
		RETURNING current_count, last_updated, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		area.AreaID,
		area.Name,
		area.MaxCapacity,
		area.IsOpen,
	).Scan(&area.CurrentCount, &area.LastUpdated, &area.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create area %q: %w", area.AreaID, err)
	}
	return nil
}

// SaveCapacityEvent сохраняет запись о принятом событии входа/выхода
func (r *AreaRepository) SaveCapacityEvent(ctx context.Context, event *models.CapacityEvent) error {
	query := `
		INSERT INTO capacity_events (area_id, action, count, source, recorded_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		event.AreaID,
		event.Action,
		event.Count,
		event.Source,
		event.RecordedAt,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("failed to save capacity event: %w", err)
	}
	return nil
}

// CountEventsSince возвращает количество событий за последние minutes минут
func (r *AreaRepository) CountEventsSince(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM capacity_events
		WHERE recorded_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count capacity events: %w", err)
	}
	return count, nil
}

// Ping проверяет доступность базы данных без мутации состояния
func (r *AreaRepository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("postgres ping failed: %w", err)
	}
	return nil
}
