package models

// Client entity
type Client struct {
	ID                string  `gorm:"primaryKey" json:"id"`
	Name              string  `gorm:"not null;index" json:"name"`
	Email             string  `gorm:"not null" json:"email"`
	Phone             string  `json:"phone"`
	Address           string  `json:"address"`
	Company           string  `json:"company"`
	OutstandingAmount float64 `json:"outstandingAmount"` // money >= 0
	TotalBilled       float64 `json:"totalBilled"`       // money >= 0
}

func (c Client) EntityID() string { return c.ID }
