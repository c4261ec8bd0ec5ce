package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiranadev/inventory-billing-service/internal/apperr"
	"github.com/kiranadev/inventory-billing-service/internal/store"
	"github.com/kiranadev/inventory-billing-service/internal/store/dto"
	"github.com/kiranadev/inventory-billing-service/pkg/logger"
	"go.uber.org/zap"
)

type StoreHandler struct {
	uc     store.UseCase
	logger logger.ZapLogger
}

func NewStoreHandler(uc store.UseCase, log logger.ZapLogger) *StoreHandler {
	return &StoreHandler{uc: uc, logger: log}
}

func (h *StoreHandler) Get(c *gin.Context) {
	profile, err := h.uc.GetProfile(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to get store profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch store profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *StoreHandler) Save(c *gin.Context) {
	var input dto.SaveProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.uc.SaveProfile(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to save store profile", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}
