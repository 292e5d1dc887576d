package services

import (
	"math"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/billingbricks/app/internal/db"
	"github.com/billingbricks/app/internal/models"
	"github.com/billingbricks/app/internal/seed"
)

func setupStatsDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := seed.Load(conn); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return conn
}

func TestComputeAggregatesFixedInvoiceSet(t *testing.T) {
	svc := NewStatsService(setupStatsDB(t))
	stats, err := svc.Compute()
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	// Paid: i1 (2281.4) + i2 (2061.68)
	if math.Abs(stats.TotalRevenue-4343.08) > 1e-6 {
		t.Fatalf("totalRevenue = %v, want 4343.08", stats.TotalRevenue)
	}
	if math.Abs(stats.PendingRevenue-3076.7) > 1e-6 {
		t.Fatalf("pendingRevenue = %v, want 3076.7", stats.PendingRevenue)
	}
	if math.Abs(stats.OverdueRevenue-4123.35) > 1e-6 {
		t.Fatalf("overdueRevenue = %v, want 4123.35", stats.OverdueRevenue)
	}
	if stats.TotalInvoices != 4 {
		t.Fatalf("totalInvoices = %d, want 4", stats.TotalInvoices)
	}
	want := map[models.Status]int64{models.StatusPaid: 2, models.StatusPending: 1, models.StatusOverdue: 1}
	for status, count := range want {
		if stats.InvoicesByStatus[status] != count {
			t.Fatalf("invoicesByStatus[%s] = %d, want %d", status, stats.InvoicesByStatus[status], count)
		}
	}
	if stats.ClientCount != 4 || stats.ProductCount != 5 {
		t.Fatalf("client/product counts = %d/%d, want 4/5", stats.ClientCount, stats.ProductCount)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	svc := NewStatsService(setupStatsDB(t))
	first, err := svc.Compute()
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	second, err := svc.Compute()
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if first.TotalRevenue != second.TotalRevenue ||
		first.PendingRevenue != second.PendingRevenue ||
		first.OverdueRevenue != second.OverdueRevenue ||
		first.TotalInvoices != second.TotalInvoices {
		t.Fatalf("stats changed between identical computations: %+v vs %+v", first, second)
	}
}

func TestRecentInvoicesOrderedByDate(t *testing.T) {
	svc := NewStatsService(setupStatsDB(t))
	recent, err := svc.RecentInvoices(3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 recent invoices, got %d", len(recent))
	}
	// i3 (2023-06-10) is the newest fixture invoice.
	if recent[0].ID != "i3" {
		t.Fatalf("newest invoice = %s, want i3", recent[0].ID)
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Date > recent[i-1].Date {
			t.Fatalf("recent invoices not ordered by date desc")
		}
	}
	if recent[0].Client.ID == "" {
		t.Fatalf("recent invoices should embed the client snapshot")
	}
}
