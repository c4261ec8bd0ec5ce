package dto

import "time"

type CreateReceiptInput struct {
	ProductID          string    `json:"productId" binding:"required"`
	DealerName         string    `json:"dealerName"`
	BuyingPrice        float64   `json:"buyingPrice" binding:"gte=0"`
	Quantity           int       `json:"quantity" binding:"required,gt=0"`
	SupplierBillNumber string    `json:"billNumber"`
	LotNumber          string    `json:"lotNumber"`
	ReceivedDate       time.Time `json:"receivedDate"`
}

type UpdateReceiptInput struct {
	ProductID          string    `json:"productId" binding:"required"`
	DealerName         string    `json:"dealerName"`
	BuyingPrice        float64   `json:"buyingPrice" binding:"gte=0"`
	Quantity           int       `json:"quantity" binding:"required,gt=0"`
	SupplierBillNumber string    `json:"billNumber"`
	LotNumber          string    `json:"lotNumber"`
	ReceivedDate       time.Time `json:"receivedDate"`
}
