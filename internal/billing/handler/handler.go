package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiranadev/inventory-billing-service/internal/apperr"
	"github.com/kiranadev/inventory-billing-service/internal/billing"
	"github.com/kiranadev/inventory-billing-service/internal/billing/dto"
	"github.com/kiranadev/inventory-billing-service/pkg/logger"
	"go.uber.org/zap"
)

type BillingHandler struct {
	uc     billing.UseCase
	logger logger.ZapLogger
}

func NewBillingHandler(uc billing.UseCase, log logger.ZapLogger) *BillingHandler {
	return &BillingHandler{uc: uc, logger: log}
}

func (h *BillingHandler) List(c *gin.Context) {
	bills, err := h.uc.ListBills(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list bills", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (h *BillingHandler) Get(c *gin.Context) {
	bill, err := h.uc.GetBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("failed to get bill", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customer"})
		return
	}
	if bill == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, bill)
}

// Create runs the atomic generate-bill-number + insert flow. There is no
// update or delete: bills are immutable once created.
func (h *BillingHandler) Create(c *gin.Context) {
	var input dto.CreateBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bill, err := h.uc.CreateBill(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create bill", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, bill)
}
