package v1

import (
	"github.com/shenikar/urec_capacity_tracker/internal/models"
	"github.com/shenikar/urec_capacity_tracker/internal/service"
)

// ModelToAreaResponse преобразует доменную модель в DTO, добавляя
// вычисляемые статус и процент заполненности
func ModelToAreaResponse(model *models.Area, availablePct, moderatePct int) AreaResponse {
	return AreaResponse{
		AreaID:       model.AreaID,
		Name:         model.Name,
		CurrentCount: model.CurrentCount,
		MaxCapacity:  model.MaxCapacity,
		IsOpen:       model.IsOpen,
		Status:       service.DeriveStatus(model, availablePct, moderatePct),
		PercentFull:  service.PercentFull(model),
		LastUpdated:  model.LastUpdated,
	}
}

// ModelsToAreaResponses преобразует слайс моделей в слайс DTO
func ModelsToAreaResponses(areas []*models.Area, availablePct, moderatePct int) []AreaResponse {
	responses := make([]AreaResponse, len(areas))
	for i, area := range areas {
		responses[i] = ModelToAreaResponse(area, availablePct, moderatePct)
	}
	return responses
}
