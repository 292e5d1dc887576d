package services

import (
	"github.com/billingbricks/app/internal/models"
)

// TaxRate is the flat invoice tax rate. It is intentionally a constant: the
// rate is not user-configurable anywhere in the product.
const TaxRate = 0.10

// BillingService encapsulates invoice total computation.
// Pure arithmetic; no store access.
type BillingService struct{}

func NewBillingService() *BillingService { return &BillingService{} }

// ItemTotal recomputes a line total from its snapshot price and quantity.
func (s *BillingService) ItemTotal(item models.InvoiceItem) float64 {
	return item.UnitPrice * float64(item.Quantity)
}

// ComputeTotals derives subtotal, tax, and grand total from the line items.
// No rounding is applied here; amounts are rounded only at display time.
func (s *BillingService) ComputeTotals(items []models.InvoiceItem) (subtotal, tax, total float64) {
	for _, it := range items {
		subtotal += s.ItemTotal(it)
	}
	tax = subtotal * TaxRate
	total = subtotal + tax
	return subtotal, tax, total
}

// Reprice stamps each item's Total and returns the items with the invoice
// totals. Descriptions and unit prices are assumed to be snapshots already.
func (s *BillingService) Reprice(items []models.InvoiceItem) ([]models.InvoiceItem, float64, float64, float64) {
	for i := range items {
		items[i].Total = s.ItemTotal(items[i])
	}
	subtotal, tax, total := s.ComputeTotals(items)
	return items, subtotal, tax, total
}
