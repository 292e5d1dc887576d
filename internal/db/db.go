package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/billingbricks/app/internal/models"
)

// Open creates the process-wide mock data store: a shared in-memory sqlite
// database that lives for exactly one process. Nothing is ever persisted; a
// restart resets all data by construction.
func Open(name string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open in-memory store: %w", err)
	}
	if err := AutoMigrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// AutoMigrate creates the schema for all domain models.
func AutoMigrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&models.Client{},
		&models.Product{},
		&models.Invoice{},
		&models.InvoiceItem{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
