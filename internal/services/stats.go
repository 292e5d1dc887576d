package services

import (
	"gorm.io/gorm"

	"github.com/billingbricks/app/internal/models"
)

// Stats is the dashboard aggregate report, recomputed from the fixed invoice
// set on every call. Per-screen working copies never feed into it.
type Stats struct {
	TotalRevenue     float64                 `json:"totalRevenue"`
	PendingRevenue   float64                 `json:"pendingRevenue"`
	OverdueRevenue   float64                 `json:"overdueRevenue"`
	TotalInvoices    int64                   `json:"totalInvoices"`
	InvoicesByStatus map[models.Status]int64 `json:"invoicesByStatus"`
	ClientCount      int64                   `json:"clientCount"`
	ProductCount     int64                   `json:"productCount"`
}

// StatsService computes dashboard aggregates from the seed store.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(conn *gorm.DB) *StatsService { return &StatsService{DB: conn} }

// Compute is a pure function of the store contents: calling it twice without
// intervening writes yields identical results.
func (s *StatsService) Compute() (Stats, error) {
	stats := Stats{InvoicesByStatus: map[models.Status]int64{}}

	if err := s.DB.Model(&models.Invoice{}).Count(&stats.TotalInvoices).Error; err != nil {
		return Stats{}, err
	}
	for _, status := range models.Statuses() {
		var revenue float64
		if err := s.DB.Model(&models.Invoice{}).
			Where("status = ?", status).
			Select("COALESCE(SUM(total), 0)").
			Scan(&revenue).Error; err != nil {
			return Stats{}, err
		}
		var count int64
		if err := s.DB.Model(&models.Invoice{}).Where("status = ?", status).Count(&count).Error; err != nil {
			return Stats{}, err
		}
		stats.InvoicesByStatus[status] = count
		switch status {
		case models.StatusPaid:
			stats.TotalRevenue = revenue
		case models.StatusPending:
			stats.PendingRevenue = revenue
		case models.StatusOverdue:
			stats.OverdueRevenue = revenue
		}
	}
	if err := s.DB.Model(&models.Client{}).Count(&stats.ClientCount).Error; err != nil {
		return Stats{}, err
	}
	if err := s.DB.Model(&models.Product{}).Count(&stats.ProductCount).Error; err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// RecentInvoices returns the most recent invoices by issue date.
func (s *StatsService) RecentInvoices(limit int) ([]models.Invoice, error) {
	var invs []models.Invoice
	err := s.DB.Preload("Client").Preload("Items").
		Order("date desc").Limit(limit).Find(&invs).Error
	return invs, err
}
