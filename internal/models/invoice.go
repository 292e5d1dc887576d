package models

// Invoicing models.
//
// InvoiceItem description and unit price are snapshots taken from the product at
// selection time; later product edits never reach back into existing invoices.
// The embedded Client on Invoice is likewise a snapshot of the client at creation.
type Invoice struct {
	ID            string        `gorm:"primaryKey" json:"id"`
	ClientID      string        `gorm:"not null;index" json:"clientId"`
	Client        Client        `gorm:"foreignKey:ClientID" json:"client"`
	InvoiceNumber string        `gorm:"not null" json:"invoiceNumber"`
	Date          string        `gorm:"not null" json:"date"`    // yyyy-mm-dd
	DueDate       string        `gorm:"not null" json:"dueDate"` // yyyy-mm-dd
	Items         []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Total         float64       `json:"total"`
	Status        Status        `gorm:"not null" json:"status"`
	Notes         string        `json:"notes,omitempty"`
}

func (i Invoice) EntityID() string { return i.ID }

type InvoiceItem struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	InvoiceID   string  `gorm:"index" json:"-"`
	ProductID   string  `gorm:"not null" json:"productId"`
	Description string  `json:"description"`
	Quantity    int     `gorm:"not null" json:"quantity"` // >= 1
	UnitPrice   float64 `gorm:"not null" json:"unitPrice"`
	Total       float64 `json:"total"` // always quantity * unitPrice
}
