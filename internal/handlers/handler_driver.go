package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fleetops/car_rental_app/internal/core/ports/services"
	"github.com/fleetops/car_rental_app/internal/dto"
	"github.com/fleetops/car_rental_app/internal/middleware"
)

// driverHandler handles HTTP requests related to the driver registry.
type driverHandler struct {
	driverService portssvc.DriverSvcFacade
}

func newDriverHandler(ds portssvc.DriverSvcFacade) *driverHandler {
	return &driverHandler{driverService: ds}
}

// registerDriverRoutes registers routes related to drivers.
func registerDriverRoutes(rg *gin.RouterGroup, driverService portssvc.DriverSvcFacade) {
	h := newDriverHandler(driverService)

	drivers := rg.Group("/drivers")
	{
		drivers.GET("", h.listDrivers)
		drivers.POST("", h.createDriver)
	}
}

// listDrivers godoc
// @Summary List drivers
// @Description Retrieves all registered drivers, newest first
// @Tags drivers
// @Produce json
// @Success 200 {array} dto.DriverResponse
// @Failure 500 {object} map[string]string "Failed to list drivers"
// @Router /drivers [get]
func (h *driverHandler) listDrivers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	drivers, err := h.driverService.ListDrivers(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list drivers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDriverResponse(drivers))
}

// createDriver godoc
// @Summary Register a new driver
// @Description Registers a driver with a unique name
// @Tags drivers
// @Accept json
// @Produce json
// @Param driver body dto.CreateDriverRequest true "Driver details"
// @Success 201 {object} dto.DriverResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Driver name already registered"
// @Failure 500 {object} map[string]string "Failed to create driver"
// @Router /drivers [post]
func (h *driverHandler) createDriver(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createDriver", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	driver, err := h.driverService.CreateDriver(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create driver")
		return
	}

	logger.Info("Driver created", slog.String("driver_id", driver.DriverID))
	c.JSON(http.StatusCreated, dto.ToDriverResponse(driver))
}
