package ident

import (
	"regexp"
	"strings"
	"testing"
)

func TestNewIDFormat(t *testing.T) {
	re := regexp.MustCompile(`^p\d{4}$`)
	for i := 0; i < 50; i++ {
		id := NewID(ProductPrefix, nil)
		if !re.MatchString(id) {
			t.Fatalf("id %q does not match p + 4 digits", id)
		}
	}
}

func TestNewIDRejectsTakenIDs(t *testing.T) {
	taken := map[string]bool{}
	for i := 0; i < 200; i++ {
		id := NewID(ClientPrefix, func(id string) bool { return taken[id] })
		if taken[id] {
			t.Fatalf("generated id %q collides with the collection", id)
		}
		taken[id] = true
	}
}

func TestNewIDWidensWhenSpaceExhausted(t *testing.T) {
	// Reject every 4-digit draw; the generator must widen rather than spin.
	id := NewID(InvoicePrefix, func(id string) bool { return len(id) == 5 })
	if len(id) <= 5 {
		t.Fatalf("expected a widened id, got %q", id)
	}
}

func TestNewInvoiceNumberFormat(t *testing.T) {
	re := regexp.MustCompile(`^INV-2026-\d{4}$`)
	n := NewInvoiceNumber(2026, nil)
	if !re.MatchString(n) {
		t.Fatalf("invoice number %q does not match INV-<year>-<4 digits>", n)
	}
}

func TestNewSKUFormat(t *testing.T) {
	re := regexp.MustCompile(`^PRE-NAT-\d{3}$`)
	sku := NewSKU("Premium Cotton", "Natural Fibers")
	if !re.MatchString(sku) {
		t.Fatalf("sku %q does not match NAME3-CAT3-NNN", sku)
	}
}

func TestNewSKUFallsBackToOTH(t *testing.T) {
	for _, category := range []string{"", "Other"} {
		sku := NewSKU("Denim", category)
		if !strings.HasPrefix(sku, "DEN-OTH-") {
			t.Fatalf("sku %q should use the OTH fallback for category %q", sku, category)
		}
	}
}

func TestNewSKUShortName(t *testing.T) {
	sku := NewSKU("Ax", "Cotton Blends")
	if !strings.HasPrefix(sku, "AX-COT-") {
		t.Fatalf("sku %q should keep short names whole", sku)
	}
}

func TestNewItemIDUnique(t *testing.T) {
	a, b := NewItemID(), NewItemID()
	if a == b || a == "" {
		t.Fatalf("item ids should be unique and non-empty: %q, %q", a, b)
	}
}
