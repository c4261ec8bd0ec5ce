package model

import "time"

// StockReceipt records inventory received from a dealer. Receipts are never
// decremented; depletion is derived from bills (see internal/availability).
type StockReceipt struct {
	BaseModel
	ProductID          string    `db:"product_id" json:"productId"`
	DealerName         string    `db:"dealer_name" json:"dealerName"`
	BuyingPrice        float64   `db:"buying_price" json:"buyingPrice"`
	Quantity           int       `db:"quantity" json:"quantity"`
	SupplierBillNumber string    `db:"supplier_bill_number" json:"billNumber"`
	LotNumber          string    `db:"lot_number" json:"lotNumber"`
	ReceivedDate       time.Time `db:"received_date" json:"receivedDate"`
}
