package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fleetops/car_rental_app/internal/core/ports/services"
	"github.com/fleetops/car_rental_app/internal/dto"
	"github.com/fleetops/car_rental_app/internal/middleware"
)

// receiptHandler handles HTTP requests for cash receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: rs}
}

// registerReceiptRoutes registers routes related to cash receipts.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := rg.Group("/receipts")
	{
		receipts.GET("", h.listReceipts)
		receipts.POST("", h.createReceipt)
	}
}

// listReceipts godoc
// @Summary List cash receipts
// @Description Retrieves all cash receipts, newest first
// @Tags receipts
// @Produce json
// @Success 200 {array} dto.ReceiptResponse
// @Failure 500 {object} map[string]string "Failed to list receipts"
// @Router /receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	receipts, err := h.receiptService.ListReceipts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list receipts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReceiptResponse(receipts))
}

// createReceipt godoc
// @Summary Record a cash receipt
// @Description Records a cash collection and posts its journal entry atomically
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipt body dto.CreateReceiptRequest true "Receipt details"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create receipt"
// @Router /receipts [post]
func (h *receiptHandler) createReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create receipt")
		return
	}

	logger.Info("Cash receipt recorded",
		slog.String("receipt_id", receipt.ReceiptID),
		slog.String("entry_id", receipt.EntryID),
	)
	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}
