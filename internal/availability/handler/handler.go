package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiranadev/inventory-billing-service/internal/availability"
	"github.com/kiranadev/inventory-billing-service/pkg/logger"
	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	uc     availability.UseCase
	logger logger.ZapLogger
}

func NewAvailabilityHandler(uc availability.UseCase, log logger.ZapLogger) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc, logger: log}
}

// Get returns the availability map used by billing forms to cap order
// quantities. The figure is a snapshot; see internal/availability.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	result, err := h.uc.Availability(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to compute availability", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute availability"})
		return
	}
	c.JSON(http.StatusOK, result)
}
