package dto

type CreateProductInput struct {
	ProductName        string  `json:"productName" binding:"required"`
	ManufactureCompany string  `json:"manufactureCompany"`
	Size               string  `json:"size"`
	SellingPrice       float64 `json:"sellingPrice" binding:"gte=0"`
}

type UpdateProductInput struct {
	ProductName        string  `json:"productName" binding:"required"`
	ManufactureCompany string  `json:"manufactureCompany"`
	Size               string  `json:"size"`
	SellingPrice       float64 `json:"sellingPrice" binding:"gte=0"`
}
