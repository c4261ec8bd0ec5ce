// Package availability derives per-product sellable stock from receipts and
// bills. Nothing is persisted: the figure is recomputed from fresh
// collections on every read, so it is always a snapshot and read-skew against
// concurrent writes is expected.
package availability

import "github.com/kiranadev/inventory-billing-service/internal/model"

// Compute returns the available quantity for every known product:
// sum of receipt quantities minus sum of bill line-item quantities, floored
// at zero per product. Every product in products gets an entry, including
// those with no receipts or sales. Malformed negative quantities in stored
// records can never drive the result below zero.
func Compute(products []model.Product, receipts []model.StockReceipt, bills []model.Bill) map[string]int {
	received := make(map[string]int, len(products))
	for _, r := range receipts {
		if r.Quantity > 0 {
			received[r.ProductID] += r.Quantity
		}
	}

	sold := make(map[string]int)
	for _, b := range bills {
		for _, item := range b.Items {
			if item.Quantity > 0 {
				sold[item.ProductID] += item.Quantity
			}
		}
	}

	available := make(map[string]int, len(products))
	for _, p := range products {
		qty := received[p.ID] - sold[p.ID]
		if qty < 0 {
			qty = 0
		}
		available[p.ID] = qty
	}
	return available
}
