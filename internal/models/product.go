package models

// Product domain model. SKU is unique by convention only; nothing enforces it.
type Product struct {
	ID          string   `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"not null;index" json:"name"`
	Description string   `json:"description"`
	SKU         string   `gorm:"index" json:"sku"`
	Price       float64  `gorm:"not null" json:"price"` // money > 0, canonical currency
	Unit        Unit     `gorm:"not null" json:"unit"`
	InStock     int      `json:"inStock"` // >= 0; invoicing does not decrement it
	Category    Category `json:"category"`
}

func (p Product) EntityID() string { return p.ID }

// LowStockThreshold is the stock level below which a product is flagged low.
const LowStockThreshold = 100

func (p Product) LowStock() bool { return p.InStock < LowStockThreshold }
