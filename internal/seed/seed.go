// Package seed holds the fixed mock dataset. It is written into the in-memory
// store exactly once at startup and treated as read-only afterwards: screens
// copy it into their own working collections and never write back.
package seed

import (
	"gorm.io/gorm"

	"github.com/billingbricks/app/internal/models"
)

// Clients returns the fixture client set.
func Clients() []models.Client {
	return []models.Client{
		{
			ID:                "c1",
			Name:              "Textile Traders Ltd",
			Email:             "contact@textiletraders.com",
			Phone:             "555-123-4567",
			Address:           "123 Fabric Ave, Textile District",
			Company:           "Textile Traders Ltd",
			OutstandingAmount: 2450,
			TotalBilled:       15750,
		},
		{
			ID:                "c2",
			Name:              "Fashion Fabrics Inc",
			Email:             "orders@fashionfabrics.com",
			Phone:             "555-987-6543",
			Address:           "456 Cotton Road, Design Quarter",
			Company:           "Fashion Fabrics Inc",
			OutstandingAmount: 0,
			TotalBilled:       8900,
		},
		{
			ID:                "c3",
			Name:              "Linen & Co.",
			Email:             "info@linenco.com",
			Phone:             "555-456-7890",
			Address:           "789 Thread Street, Material Park",
			Company:           "Linen & Co.",
			OutstandingAmount: 1230,
			TotalBilled:       4560,
		},
		{
			ID:                "c4",
			Name:              "Silk Solutions",
			Email:             "sales@silksolutions.com",
			Phone:             "555-789-0123",
			Address:           "321 Weaver Lane, Textile Town",
			Company:           "Silk Solutions",
			OutstandingAmount: 3800,
			TotalBilled:       12400,
		},
	}
}

// Products returns the fixture product catalog.
func Products() []models.Product {
	return []models.Product{
		{
			ID:          "p1",
			Name:        "Premium Cotton",
			Description: "High-quality cotton fabric, 300 thread count",
			SKU:         "COT-300",
			Price:       12.99,
			Unit:        models.UnitYard,
			InStock:     500,
			Category:    models.CategoryNaturalFibers,
		},
		{
			ID:          "p2",
			Name:        "Silk Charmeuse",
			Description: "Luxurious silk charmeuse fabric",
			SKU:         "SLK-CHR",
			Price:       24.99,
			Unit:        models.UnitYard,
			InStock:     200,
			Category:    models.CategoryLuxuryFabrics,
		},
		{
			ID:          "p3",
			Name:        "Denim",
			Description: "Heavy-duty denim fabric",
			SKU:         "DNM-002",
			Price:       9.99,
			Unit:        models.UnitYard,
			InStock:     800,
			Category:    models.CategoryDurableFabrics,
		},
		{
			ID:          "p4",
			Name:        "Linen Blend",
			Description: "Linen and cotton blend",
			SKU:         "LIN-BLD",
			Price:       15.50,
			Unit:        models.UnitYard,
			InStock:     350,
			Category:    models.CategoryNaturalFibers,
		},
		{
			ID:          "p5",
			Name:        "Polyester Blend",
			Description: "Polyester and cotton blend",
			SKU:         "PLY-BLD",
			Price:       7.99,
			Unit:        models.UnitYard,
			InStock:     1200,
			Category:    models.CategorySyntheticBlends,
		},
	}
}

// Invoices returns the fixture invoices. Totals are literal values that must
// agree with the invoice calculator (subtotal = sum of line totals, tax = 10%).
func Invoices() []models.Invoice {
	clients := clientsByID()
	return []models.Invoice{
		{
			ID:            "i1",
			ClientID:      "c1",
			Client:        clients["c1"],
			InvoiceNumber: "INV-2023-001",
			Date:          "2023-04-15",
			DueDate:       "2023-05-15",
			Items: []models.InvoiceItem{
				{ID: "item1", InvoiceID: "i1", ProductID: "p1", Description: "Premium Cotton", Quantity: 100, UnitPrice: 12.99, Total: 1299},
				{ID: "item2", InvoiceID: "i1", ProductID: "p4", Description: "Linen Blend", Quantity: 50, UnitPrice: 15.50, Total: 775},
			},
			Subtotal: 2074,
			Tax:      207.4,
			Total:    2281.4,
			Status:   models.StatusPaid,
		},
		{
			ID:            "i2",
			ClientID:      "c2",
			Client:        clients["c2"],
			InvoiceNumber: "INV-2023-002",
			Date:          "2023-04-20",
			DueDate:       "2023-05-20",
			Items: []models.InvoiceItem{
				{ID: "item3", InvoiceID: "i2", ProductID: "p2", Description: "Silk Charmeuse", Quantity: 75, UnitPrice: 24.99, Total: 1874.25},
			},
			Subtotal: 1874.25,
			Tax:      187.43,
			Total:    2061.68,
			Status:   models.StatusPaid,
		},
		{
			ID:            "i3",
			ClientID:      "c1",
			Client:        clients["c1"],
			InvoiceNumber: "INV-2023-003",
			Date:          "2023-06-10",
			DueDate:       "2023-07-10",
			Items: []models.InvoiceItem{
				{ID: "item4", InvoiceID: "i3", ProductID: "p3", Description: "Denim", Quantity: 200, UnitPrice: 9.99, Total: 1998},
				{ID: "item5", InvoiceID: "i3", ProductID: "p5", Description: "Polyester Blend", Quantity: 100, UnitPrice: 7.99, Total: 799},
			},
			Subtotal: 2797,
			Tax:      279.7,
			Total:    3076.7,
			Status:   models.StatusPending,
		},
		{
			ID:            "i4",
			ClientID:      "c4",
			Client:        clients["c4"],
			InvoiceNumber: "INV-2023-004",
			Date:          "2023-05-05",
			DueDate:       "2023-06-05",
			Items: []models.InvoiceItem{
				{ID: "item6", InvoiceID: "i4", ProductID: "p2", Description: "Silk Charmeuse", Quantity: 150, UnitPrice: 24.99, Total: 3748.5},
			},
			Subtotal: 3748.5,
			Tax:      374.85,
			Total:    4123.35,
			Status:   models.StatusOverdue,
		},
	}
}

func clientsByID() map[string]models.Client {
	m := map[string]models.Client{}
	for _, c := range Clients() {
		m[c.ID] = c
	}
	return m
}

// Load writes the fixture dataset into the store. Invoices are created with
// their items in one transaction so a half-seeded store is impossible.
func Load(conn *gorm.DB) error {
	return conn.Transaction(func(tx *gorm.DB) error {
		clients := Clients()
		if err := tx.Create(&clients).Error; err != nil {
			return err
		}
		products := Products()
		if err := tx.Create(&products).Error; err != nil {
			return err
		}
		for _, inv := range Invoices() {
			items := inv.Items
			inv.Items = nil
			inv.Client = models.Client{} // already present; keep the FK only
			if err := tx.Create(&inv).Error; err != nil {
				return err
			}
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
