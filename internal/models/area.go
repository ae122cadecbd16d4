package models

import (
	"time"
)

// Area представляет запись о заполняемости одной зоны комплекса
type Area struct {
	AreaID       string    `json:"area_id"`
	Name         string    `json:"name"`
	CurrentCount int       `json:"current_count"`
	MaxCapacity  int       `json:"max_capacity"`
	IsOpen       bool      `json:"is_open"`
	LastUpdated  time.Time `json:"last_updated"`
	CreatedAt    time.Time `json:"created_at"`
}
