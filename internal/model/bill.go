package model

import "time"

const (
	PaymentModeCash   = "CASH"
	PaymentModeOnline = "ONLINE"
)

// Bill is a customer invoice. Bills are immutable once created; there is no
// edit or void flow.
type Bill struct {
	ID           string     `db:"id" json:"id"`
	BillNumber   string     `db:"bill_number" json:"billNumber"`
	CustomerName string     `db:"customer_name" json:"customerName"`
	Address      string     `db:"address" json:"address"`
	MobileNumber string     `db:"mobile_number" json:"mobileNumber"`
	PaymentMode  string     `db:"payment_mode" json:"paymentMode"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	Items        []BillItem `db:"-" json:"products"`
}

type BillItem struct {
	ID        string `db:"id" json:"-"`
	BillID    string `db:"bill_id" json:"-"`
	ProductID string `db:"product_id" json:"productId"`
	Quantity  int    `db:"quantity" json:"quantity"`
}
