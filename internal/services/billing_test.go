package services

import (
	"math"
	"testing"

	"github.com/billingbricks/app/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestItemTotal(t *testing.T) {
	svc := NewBillingService()
	item := models.InvoiceItem{Quantity: 100, UnitPrice: 12.99}
	if got := svc.ItemTotal(item); !almostEqual(got, 1299) {
		t.Fatalf("item total = %v, want 1299", got)
	}
}

func TestComputeTotalsMatchesFixtureInvoice(t *testing.T) {
	svc := NewBillingService()
	items := []models.InvoiceItem{
		{Quantity: 100, UnitPrice: 12.99},
		{Quantity: 50, UnitPrice: 15.50},
	}
	subtotal, tax, total := svc.ComputeTotals(items)
	if !almostEqual(subtotal, 2074) {
		t.Fatalf("subtotal = %v, want 2074", subtotal)
	}
	if !almostEqual(tax, 207.4) {
		t.Fatalf("tax = %v, want 207.4", tax)
	}
	if !almostEqual(total, 2281.4) {
		t.Fatalf("total = %v, want 2281.4", total)
	}
}

func TestComputeTotalsSumsAllItems(t *testing.T) {
	svc := NewBillingService()
	items := []models.InvoiceItem{
		{Quantity: 3, UnitPrice: 7.25},
		{Quantity: 1, UnitPrice: 100},
		{Quantity: 12, UnitPrice: 0.99},
	}
	var want float64
	for _, it := range items {
		want += float64(it.Quantity) * it.UnitPrice
	}
	subtotal, tax, total := svc.ComputeTotals(items)
	if !almostEqual(subtotal, want) {
		t.Fatalf("subtotal = %v, want %v", subtotal, want)
	}
	if !almostEqual(tax, want*TaxRate) {
		t.Fatalf("tax = %v, want %v", tax, want*TaxRate)
	}
	if !almostEqual(total, subtotal+tax) {
		t.Fatalf("total = %v, want subtotal+tax = %v", total, subtotal+tax)
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	svc := NewBillingService()
	subtotal, tax, total := svc.ComputeTotals(nil)
	if subtotal != 0 || tax != 0 || total != 0 {
		t.Fatalf("empty items should total zero, got %v/%v/%v", subtotal, tax, total)
	}
}

func TestRepriceStampsLineTotals(t *testing.T) {
	svc := NewBillingService()
	items := []models.InvoiceItem{
		{Quantity: 2, UnitPrice: 24.99, Total: -1},
		{Quantity: 5, UnitPrice: 9.99, Total: -1},
	}
	items, subtotal, _, _ := svc.Reprice(items)
	for _, it := range items {
		if !almostEqual(it.Total, float64(it.Quantity)*it.UnitPrice) {
			t.Fatalf("line total %v != quantity*unitPrice", it.Total)
		}
	}
	if !almostEqual(subtotal, items[0].Total+items[1].Total) {
		t.Fatalf("subtotal %v should equal sum of line totals", subtotal)
	}
}
