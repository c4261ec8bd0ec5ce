package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiranadev/inventory-billing-service/internal/apperr"
	"github.com/kiranadev/inventory-billing-service/internal/stock"
	"github.com/kiranadev/inventory-billing-service/internal/stock/dto"
	"github.com/kiranadev/inventory-billing-service/pkg/logger"
	"go.uber.org/zap"
)

type StockHandler struct {
	uc     stock.UseCase
	logger logger.ZapLogger
}

func NewStockHandler(uc stock.UseCase, log logger.ZapLogger) *StockHandler {
	return &StockHandler{uc: uc, logger: log}
}

func (h *StockHandler) List(c *gin.Context) {
	receipts, err := h.uc.ListReceipts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list stock receipts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stocks"})
		return
	}
	c.JSON(http.StatusOK, receipts)
}

func (h *StockHandler) Get(c *gin.Context) {
	receipt, err := h.uc.GetReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("failed to get stock receipt", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stock"})
		return
	}
	if receipt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *StockHandler) Create(c *gin.Context) {
	var input dto.CreateReceiptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt, err := h.uc.CreateReceipt(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create stock receipt", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

func (h *StockHandler) Update(c *gin.Context) {
	var input dto.UpdateReceiptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt, err := h.uc.UpdateReceipt(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		h.logger.Error("failed to update stock receipt", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *StockHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteReceipt(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed to delete stock receipt", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
