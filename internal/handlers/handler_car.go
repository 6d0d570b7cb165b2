package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/car_rental_app/internal/core/domain"
	portssvc "github.com/fleetops/car_rental_app/internal/core/ports/services"
	"github.com/fleetops/car_rental_app/internal/dto"
	"github.com/fleetops/car_rental_app/internal/middleware"
)

// carHandler handles HTTP requests related to the car registry.
type carHandler struct {
	carService portssvc.CarSvcFacade
}

func newCarHandler(cs portssvc.CarSvcFacade) *carHandler {
	return &carHandler{carService: cs}
}

// registerCarRoutes registers routes related to cars.
func registerCarRoutes(rg *gin.RouterGroup, carService portssvc.CarSvcFacade) {
	h := newCarHandler(carService)

	cars := rg.Group("/cars")
	{
		cars.GET("", h.listCars)
		cars.POST("", h.createCar)
		cars.GET("/status-summary", h.statusSummary)
		cars.PATCH("/:id/status", h.setStatus)
	}
}

// listCars godoc
// @Summary List cars
// @Description Retrieves all registered cars, newest first
// @Tags cars
// @Produce json
// @Success 200 {array} dto.CarResponse
// @Failure 500 {object} map[string]string "Failed to list cars"
// @Router /cars [get]
func (h *carHandler) listCars(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cars, err := h.carService.ListCars(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list cars")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCarResponse(cars))
}

// createCar godoc
// @Summary Register a new car
// @Description Registers a car with a unique plate number
// @Tags cars
// @Accept json
// @Produce json
// @Param car body dto.CreateCarRequest true "Car details"
// @Success 201 {object} dto.CarResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Plate already registered"
// @Failure 500 {object} map[string]string "Failed to create car"
// @Router /cars [post]
func (h *carHandler) createCar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCar", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	car, err := h.carService.CreateCar(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create car")
		return
	}

	logger.Info("Car created", slog.String("car_id", car.CarID), slog.String("plate", car.Plate))
	c.JSON(http.StatusCreated, dto.ToCarResponse(car))
}

// setStatus godoc
// @Summary Set a car's status
// @Description Moves a car into or out of maintenance; rental-state changes happen through the authorization lifecycle
// @Tags cars
// @Accept json
// @Produce json
// @Param id path string true "Car ID"
// @Param status body dto.UpdateCarStatusRequest true "New status"
// @Success 200 {object} dto.CarResponse
// @Failure 400 {object} map[string]string "Invalid input format or unknown status"
// @Failure 404 {object} map[string]string "Car not found"
// @Failure 500 {object} map[string]string "Failed to update car status"
// @Router /cars/{id}/status [patch]
func (h *carHandler) setStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	carID := c.Param("id")

	var req dto.UpdateCarStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for setStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	car, err := h.carService.SetCarStatus(c.Request.Context(), carID, req.Status)
	if err != nil {
		respondError(c, logger, err, "Failed to update car status")
		return
	}

	logger.Info("Car status updated", slog.String("car_id", car.CarID), slog.String("status", string(car.Status)))
	c.JSON(http.StatusOK, dto.ToCarResponse(car))
}

// statusSummary godoc
// @Summary Fleet status summary
// @Description Reports how many cars are available, rented and under maintenance
// @Tags cars
// @Produce json
// @Success 200 {object} dto.CarStatusSummaryResponse
// @Failure 500 {object} map[string]string "Failed to summarize fleet"
// @Router /cars/status-summary [get]
func (h *carHandler) statusSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	counts, err := h.carService.StatusSummary(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to summarize fleet")
		return
	}

	resp := dto.CarStatusSummaryResponse{
		Available:        counts[domain.CarAvailable],
		Rented:           counts[domain.CarRented],
		UnderMaintenance: counts[domain.CarUnderMaintenance],
	}
	resp.Total = resp.Available + resp.Rented + resp.UnderMaintenance
	c.JSON(http.StatusOK, resp)
}
