package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fleetops/car_rental_app/internal/core/ports/services"
	"github.com/fleetops/car_rental_app/internal/dto"
	"github.com/fleetops/car_rental_app/internal/middleware"
)

// authorizationHandler handles HTTP requests for the rental lifecycle.
type authorizationHandler struct {
	authService portssvc.AuthorizationSvcFacade
}

func newAuthorizationHandler(as portssvc.AuthorizationSvcFacade) *authorizationHandler {
	return &authorizationHandler{authService: as}
}

// registerAuthorizationRoutes registers routes related to authorizations.
func registerAuthorizationRoutes(rg *gin.RouterGroup, authService portssvc.AuthorizationSvcFacade) {
	h := newAuthorizationHandler(authService)

	auths := rg.Group("/authorizations")
	{
		auths.GET("", h.listAuthorizations)
		auths.GET("/rented", h.listOpen)
		auths.GET("/:id", h.getAuthorization)
		auths.POST("/issue", h.issue)
		auths.PATCH("/:id/end", h.end)
	}
}

// listAuthorizations godoc
// @Summary List authorizations
// @Description Retrieves authorizations newest first; pass open=1 to only see open ones
// @Tags authorizations
// @Produce json
// @Param open query bool false "Only open authorizations"
// @Success 200 {array} dto.AuthorizationResponse
// @Failure 500 {object} map[string]string "Failed to list authorizations"
// @Router /authorizations [get]
func (h *authorizationHandler) listAuthorizations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// The open flag is historically lenient: "1", "true", "yes" all count.
	openParam := c.Query("open")
	onlyOpen := openParam == "1" || openParam == "true" || openParam == "yes"

	auths, err := h.authService.ListAuthorizations(c.Request.Context(), onlyOpen)
	if err != nil {
		respondError(c, logger, err, "Failed to list authorizations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAuthorizationResponse(auths))
}

// listOpen godoc
// @Summary List currently rented cars
// @Description Retrieves the open authorizations, i.e. the cars currently out
// @Tags authorizations
// @Produce json
// @Success 200 {array} dto.AuthorizationResponse
// @Failure 500 {object} map[string]string "Failed to list open authorizations"
// @Router /authorizations/rented [get]
func (h *authorizationHandler) listOpen(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auths, err := h.authService.ListAuthorizations(c.Request.Context(), true)
	if err != nil {
		respondError(c, logger, err, "Failed to list open authorizations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAuthorizationResponse(auths))
}

// getAuthorization godoc
// @Summary Get an authorization by ID
// @Tags authorizations
// @Produce json
// @Param id path string true "Authorization ID"
// @Success 200 {object} dto.AuthorizationResponse
// @Failure 404 {object} map[string]string "Authorization not found"
// @Failure 500 {object} map[string]string "Failed to retrieve authorization"
// @Router /authorizations/{id} [get]
func (h *authorizationHandler) getAuthorization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	authorizationID := c.Param("id")

	auth, err := h.authService.GetAuthorization(c.Request.Context(), authorizationID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve authorization")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuthorizationResponse(auth))
}

// issue godoc
// @Summary Issue an authorization
// @Description Opens an authorization for an available car and marks the car rented
// @Tags authorizations
// @Accept json
// @Produce json
// @Param authorization body dto.IssueAuthorizationRequest true "Issue details"
// @Success 201 {object} dto.AuthorizationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Car already has an open authorization"
// @Failure 500 {object} map[string]string "Failed to issue authorization"
// @Router /authorizations/issue [post]
func (h *authorizationHandler) issue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.IssueAuthorizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for issue", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	auth, err := h.authService.Issue(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to issue authorization")
		return
	}

	logger.Info("Authorization issued",
		slog.String("authorization_id", auth.AuthorizationID),
		slog.String("car_number", auth.CarNumber),
	)
	c.JSON(http.StatusCreated, dto.ToAuthorizationResponse(auth))
}

// end godoc
// @Summary End an authorization
// @Description Closes an open authorization, optionally posting the revenue entry and renewing into the next billing week. Renew defaults to true.
// @Tags authorizations
// @Accept json
// @Produce json
// @Param id path string true "Authorization ID"
// @Param options body dto.EndAuthorizationRequest false "End options"
// @Success 200 {object} dto.EndAuthorizationResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Authorization not found"
// @Failure 409 {object} map[string]string "Authorization already closed"
// @Failure 500 {object} map[string]string "Failed to end authorization"
// @Router /authorizations/{id}/end [patch]
func (h *authorizationHandler) end(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	authorizationID := c.Param("id")

	// An empty body means "close with the defaults".
	var req dto.EndAuthorizationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for end", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	result, err := h.authService.End(c.Request.Context(), authorizationID, req.ToOptions())
	if err != nil {
		respondError(c, logger, err, "Failed to end authorization")
		return
	}

	logger.Info("Authorization ended",
		slog.String("authorization_id", authorizationID),
		slog.Bool("renewed", result.Renewal != nil),
	)
	c.JSON(http.StatusOK, dto.ToEndAuthorizationResponse(result))
}
