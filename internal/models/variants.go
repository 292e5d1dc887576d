package models

// Closed variants. Declared once here and referenced by seed data, forms and
// validation so the allowed-value lists cannot drift between screens.

// Unit is the unit of measure a product is sold in.
type Unit string

const (
	UnitYard  Unit = "yard"
	UnitMeter Unit = "meter"
	UnitRoll  Unit = "roll"
	UnitPiece Unit = "piece"
)

// Units lists every valid unit, in display order.
func Units() []Unit {
	return []Unit{UnitYard, UnitMeter, UnitRoll, UnitPiece}
}

func (u Unit) Valid() bool {
	switch u {
	case UnitYard, UnitMeter, UnitRoll, UnitPiece:
		return true
	}
	return false
}

// Status is the invoice lifecycle state. It is free-standing: nothing derives it
// from due dates and no operation transitions an invoice between statuses.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
	StatusOverdue Status = "overdue"
)

func Statuses() []Status {
	return []Status{StatusPaid, StatusPending, StatusOverdue}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPaid, StatusPending, StatusOverdue:
		return true
	}
	return false
}

// Category is the product catalog category.
type Category string

const (
	CategoryNaturalFibers   Category = "Natural Fibers"
	CategorySyntheticBlends Category = "Synthetic Blends"
	CategoryLuxuryFabrics   Category = "Luxury Fabrics"
	CategoryDurableFabrics  Category = "Durable Fabrics"
	CategoryCottonBlends    Category = "Cotton Blends"
	CategoryOther           Category = "Other"
)

func Categories() []Category {
	return []Category{
		CategoryNaturalFibers,
		CategorySyntheticBlends,
		CategoryLuxuryFabrics,
		CategoryDurableFabrics,
		CategoryCottonBlends,
		CategoryOther,
	}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Canonical maps an empty category to Other so SKU generation and display have a
// single fallback value.
func (c Category) Canonical() Category {
	if c == "" {
		return CategoryOther
	}
	return c
}
