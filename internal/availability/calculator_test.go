package availability

import (
	"testing"

	"github.com/kiranadev/inventory-billing-service/internal/model"
)

func product(id string) model.Product {
	return model.Product{BaseModel: model.BaseModel{ID: id}}
}

func receipt(productID string, qty int) model.StockReceipt {
	return model.StockReceipt{ProductID: productID, Quantity: qty}
}

func bill(items ...model.BillItem) model.Bill {
	return model.Bill{Items: items}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		products []model.Product
		receipts []model.StockReceipt
		bills    []model.Bill
		want     map[string]int
	}{
		{
			name:     "received minus sold",
			products: []model.Product{product("p1")},
			receipts: []model.StockReceipt{receipt("p1", 50)},
			bills:    []model.Bill{bill(model.BillItem{ProductID: "p1", Quantity: 20})},
			want:     map[string]int{"p1": 30},
		},
		{
			name:     "oversold floors at zero",
			products: []model.Product{product("p1")},
			receipts: []model.StockReceipt{receipt("p1", 10)},
			bills:    []model.Bill{bill(model.BillItem{ProductID: "p1", Quantity: 25})},
			want:     map[string]int{"p1": 0},
		},
		{
			name:     "product with no receipts or sales gets an entry",
			products: []model.Product{product("p1"), product("p2")},
			receipts: []model.StockReceipt{receipt("p1", 5)},
			want:     map[string]int{"p1": 5, "p2": 0},
		},
		{
			name:     "receipts across multiple lots accumulate",
			products: []model.Product{product("p1")},
			receipts: []model.StockReceipt{receipt("p1", 10), receipt("p1", 15), receipt("p2", 99)},
			bills: []model.Bill{
				bill(model.BillItem{ProductID: "p1", Quantity: 3}),
				bill(model.BillItem{ProductID: "p1", Quantity: 4}, model.BillItem{ProductID: "p2", Quantity: 1}),
			},
			want: map[string]int{"p1": 18},
		},
		{
			name:     "negative stored quantities are ignored, not propagated",
			products: []model.Product{product("p1"), product("p2")},
			receipts: []model.StockReceipt{receipt("p1", -7), receipt("p2", 4)},
			bills:    []model.Bill{bill(model.BillItem{ProductID: "p2", Quantity: -2})},
			want:     map[string]int{"p1": 0, "p2": 4},
		},
		{
			name:     "flooring is per product",
			products: []model.Product{product("p1"), product("p2")},
			receipts: []model.StockReceipt{receipt("p1", 1), receipt("p2", 10)},
			bills:    []model.Bill{bill(model.BillItem{ProductID: "p1", Quantity: 100})},
			want:     map[string]int{"p1": 0, "p2": 10},
		},
		{
			name: "empty inputs",
			want: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.products, tt.receipts, tt.bills)
			if len(got) != len(tt.want) {
				t.Fatalf("Compute() = %v, want %v", got, tt.want)
			}
			for id, want := range tt.want {
				qty, ok := got[id]
				if !ok {
					t.Errorf("Compute() missing entry for %s", id)
					continue
				}
				if qty < 0 {
					t.Errorf("Compute() negative availability %d for %s", qty, id)
				}
				if qty != want {
					t.Errorf("Compute()[%s] = %d, want %d", id, qty, want)
				}
			}
		})
	}
}

// Adding one receipt and one bill must shift availability by exactly the
// delta between them, matching a full recompute.
func TestComputeDelta(t *testing.T) {
	products := []model.Product{product("p1")}
	receipts := []model.StockReceipt{receipt("p1", 40)}
	bills := []model.Bill{bill(model.BillItem{ProductID: "p1", Quantity: 10})}

	before := Compute(products, receipts, bills)

	receipts = append(receipts, receipt("p1", 8))
	bills = append(bills, bill(model.BillItem{ProductID: "p1", Quantity: 3}))

	after := Compute(products, receipts, bills)
	if want := before["p1"] + 8 - 3; after["p1"] != want {
		t.Errorf("availability after delta = %d, want %d", after["p1"], want)
	}
}
