package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/urec_capacity_tracker/internal/config"
	"github.com/shenikar/urec_capacity_tracker/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	capacityService service.CapacityService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(capacityService service.CapacityService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		capacityService: capacityService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Get capacity for all areas
// @Description Get current capacity data for all tracked UREC areas.
// @Tags Capacity
// @Accept json
// @Produce json
// @Success 200 {object} CapacityListResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /capacity [get]
func (h *Handler) getAllCapacity(c *gin.Context) {
	log := h.logger.WithField("method", "getAllCapacity")

	areas, err := h.capacityService.GetAllAreas(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list areas from service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to fetch capacity data"})
		return
	}

	c.JSON(http.StatusOK, CapacityListResponse{
		Timestamp: time.Now().UTC(),
		Areas:     ModelsToAreaResponses(areas, h.cfg.AvailableThresholdPct, h.cfg.ModerateThresholdPct),
	})
}

// @Summary Get capacity for a specific area
// @Description Get current capacity data for a single area by its identifier.
// @Tags Capacity
// @Accept json
// @Produce json
// @Param area_id path string true "Area identifier (e.g. weight-room)"
// @Success 200 {object} AreaResponse
// @Failure 404 {object} ErrorResponse "Area not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /capacity/{area_id} [get]
func (h *Handler) getAreaCapacity(c *gin.Context) {
	areaID := c.Param("area_id")
	log := h.logger.WithField("method", "getAreaCapacity").WithField("area_id", areaID)

	area, err := h.capacityService.GetArea(c.Request.Context(), areaID)
	if err != nil {
		if errors.Is(err, service.ErrAreaNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: "area '" + areaID + "' not found"})
			return
		}
		log.WithError(err).Error("Failed to get area from service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to fetch area capacity"})
		return
	}

	c.JSON(http.StatusOK, ModelToAreaResponse(area, h.cfg.AvailableThresholdPct, h.cfg.ModerateThresholdPct))
}

// @Summary Apply an enter/exit event
// @Description Update the current count of an area. Called by staff check-in devices.
// @Tags Capacity
// @Accept json
// @Produce json
// @Param update body UpdateCapacityRequest true "Enter/exit event"
// @Success 200 {object} UpdateCapacityResponse
// @Failure 400 {object} ErrorResponse "Invalid action or count"
// @Failure 404 {object} ErrorResponse "Area not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /update [post]
func (h *Handler) updateCapacity(c *gin.Context) {
	var input UpdateCapacityRequest
	log := h.logger.WithField("method", "updateCapacity")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: validationDetail(err)})
		return
	}

	// nil count означает "не передан" — сервис применит значение по умолчанию
	count := 0
	if input.Count != nil {
		count = *input.Count
	}
	action := strings.ToLower(strings.TrimSpace(input.Action))

	area, err := h.capacityService.UpdateCapacity(c.Request.Context(), input.AreaID, action, count, input.Source)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAreaNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: "area '" + input.AreaID + "' not found"})
		case errors.Is(err, service.ErrInvalidAction):
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: service.ErrInvalidAction.Error()})
		case errors.Is(err, service.ErrInvalidCount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "count must be an integer between 1 and 10"})
		default:
			log.WithError(err).Error("Failed to update capacity in service")
			c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to update capacity"})
		}
		return
	}

	c.JSON(http.StatusOK, UpdateCapacityResponse{
		Success:   true,
		AreaID:    area.AreaID,
		Action:    action,
		NewCount:  area.CurrentCount,
		Timestamp: time.Now().UTC(),
	})
}

// validationDetail сводит ошибки валидатора к короткому сообщению
// без внутренних имен Go-структур
func validationDetail(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "invalid request body"
	}
	switch fieldErrors[0].Field() {
	case "AreaID":
		return "area_id is required"
	case "Action":
		return "action is required"
	case "Count":
		return "count must be an integer between 1 and 10"
	default:
		return "invalid request body"
	}
}

// @Summary Reset the counter of an area
// @Description Set the current count of an area to an explicit value (admin operation). Requires API key when keys are configured.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param area_id path string true "Area identifier"
// @Param count query int false "New count value" default(0)
// @Success 200 {object} ResetCapacityResponse
// @Failure 400 {object} ErrorResponse "Invalid count"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Area not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /reset/{area_id} [post]
func (h *Handler) resetArea(c *gin.Context) {
	areaID := c.Param("area_id")
	log := h.logger.WithField("method", "resetArea").WithField("area_id", areaID)

	count, err := strconv.Atoi(c.DefaultQuery("count", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "count must be a non-negative integer"})
		return
	}

	area, err := h.capacityService.ResetArea(c.Request.Context(), areaID, count)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAreaNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: "area '" + areaID + "' not found"})
		case errors.Is(err, service.ErrInvalidCount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "count must be a non-negative integer"})
		default:
			log.WithError(err).Error("Failed to reset area in service")
			c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to reset capacity"})
		}
		return
	}

	c.JSON(http.StatusOK, ResetCapacityResponse{
		Success:   true,
		AreaID:    area.AreaID,
		NewCount:  area.CurrentCount,
		Timestamp: time.Now().UTC(),
	})
}

// @Summary Get update statistics
// @Description Get the number of accepted enter/exit events within the configured time window.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /capacity/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	updateCount, err := h.capacityService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{UpdateCount: updateCount})
}

// @Summary Get application health status
// @Description Health status of the API and its database connection
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	dbConnected := h.capacityService.HealthCheck(c.Request.Context())

	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:            status,
		Timestamp:         time.Now().UTC(),
		DatabaseConnected: dbConnected,
	})
}
