package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты чтения для клиента-табло
	capacity := api.Group("/capacity")
	{
		capacity.GET("", h.getAllCapacity)
		capacity.GET("/stats", h.getStats)
		capacity.GET("/:area_id", h.getAreaCapacity)
	}

	// Маршрут обновления для устройств на стойках регистрации
	api.POST("/update", h.updateCapacity)

	// Админский сброс счетчика; защищается API-ключом, если ключи заданы
	reset := api.Group("/reset")
	if len(h.cfg.APIKeys) > 0 {
		reset.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	reset.POST("/:area_id", h.resetArea)

	// Маршрут Health-check
	api.GET("/health", h.healthCheck)
}
