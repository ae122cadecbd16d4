package models

import (
	"time"

	"github.com/google/uuid"
)

// CapacityEvent представляет запись о принятом событии входа/выхода
type CapacityEvent struct {
	ID         uuid.UUID `json:"id"`
	AreaID     string    `json:"area_id"`
	Action     string    `json:"action"`
	Count      int       `json:"count"`
	Source     string    `json:"source"`
	RecordedAt time.Time `json:"recorded_at"`
}
