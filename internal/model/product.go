package model

// Product is a catalog entry. Deleting a product does not cascade to stock
// receipts or bills; historical records keep the dangling reference for audit.
type Product struct {
	BaseModel
	ProductName        string  `db:"product_name" json:"productName"`
	ManufactureCompany string  `db:"manufacture_company" json:"manufactureCompany"`
	Size               string  `db:"size" json:"size"`
	SellingPrice       float64 `db:"selling_price" json:"sellingPrice"`
}
