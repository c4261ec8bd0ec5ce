package dto

type CreateBillInput struct {
	CustomerName string          `json:"customerName" binding:"required"`
	Address      string          `json:"address"`
	MobileNumber string          `json:"mobileNumber"`
	PaymentMode  string          `json:"paymentMode" binding:"omitempty,oneof=CASH ONLINE"`
	Items        []BillItemInput `json:"products" binding:"required,min=1,dive"`
}

type BillItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}
