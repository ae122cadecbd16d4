package v1

import (
	"time"
)

// UpdateCapacityRequest DTO для события входа/выхода со стойки регистрации
// @Description DTO для события входа/выхода
type UpdateCapacityRequest struct {
	AreaID string `json:"area_id" validate:"required"`
	Action string `json:"action" validate:"required"`
	// Указатель различает "не передан" (nil, применяется 1) и явный 0,
	// который отклоняется валидатором
	Count *int `json:"count,omitempty" validate:"omitempty,gte=1,lte=10"`
	// Клиентская метка времени; принимается, но источником истины
	// остается серверное время
	Timestamp string `json:"timestamp,omitempty"`
	Source    string `json:"source,omitempty"`
}

// AreaResponse DTO для ответа с данными заполняемости одной зоны
// @Description DTO для ответа с данными заполняемости зоны
type AreaResponse struct {
	AreaID       string    `json:"area_id"`
	Name         string    `json:"name"`
	CurrentCount int       `json:"current_count"`
	MaxCapacity  int       `json:"max_capacity"`
	IsOpen       bool      `json:"is_open"`
	Status       string    `json:"status"`
	PercentFull  float64   `json:"percent_full"`
	LastUpdated  time.Time `json:"last_updated"`
}

// CapacityListResponse DTO для ответа со списком всех зон
// @Description DTO для ответа со списком всех зон
type CapacityListResponse struct {
	Timestamp time.Time      `json:"timestamp"`
	Areas     []AreaResponse `json:"areas"`
}

// UpdateCapacityResponse DTO для ответа на событие входа/выхода
// @Description DTO для ответа на событие входа/выхода
type UpdateCapacityResponse struct {
	Success   bool      `json:"success"`
	AreaID    string    `json:"area_id"`
	Action    string    `json:"action"`
	NewCount  int       `json:"new_count"`
	Timestamp time.Time `json:"timestamp"`
}

// ResetCapacityResponse DTO для ответа на сброс счетчика
// @Description DTO для ответа на сброс счетчика
type ResetCapacityResponse struct {
	Success   bool      `json:"success"`
	AreaID    string    `json:"area_id"`
	NewCount  int       `json:"new_count"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse DTO для ответа health-check
// @Description DTO для ответа health-check
type HealthResponse struct {
	Status            string    `json:"status"`
	Timestamp         time.Time `json:"timestamp"`
	DatabaseConnected bool      `json:"database_connected"`
}

// StatsResponse DTO для ответа со статистикой обновлений
// @Description DTO для ответа со статистикой обновлений
type StatsResponse struct {
	UpdateCount int `json:"update_count"`
}

// ErrorResponse - единая форма тела ошибки
// @Description Единая форма тела ошибки
type ErrorResponse struct {
	Detail string `json:"detail"`
}
