package entity

import (
	"time"

	"github.com/google/uuid"
)

// Inventory status labels, derived from stock against the reorder level.
const (
	InventoryStatusGood     = "Good"
	InventoryStatusLow      = "Low"
	InventoryStatusCritical = "Critical"
)

// InventoryItem represents a lab supply line. The status label is not
// stored: it is derived from the current stock so a restock that crosses a
// threshold is reflected immediately.
type InventoryItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Category     string    `gorm:"type:varchar(100);index" json:"category"`
	Stock        int       `gorm:"not null;default:0" json:"stock"`
	ReorderLevel int       `gorm:"not null;default:0" json:"reorder_level"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

// Status derives the display label: below half the reorder level is
// critical, below the reorder level is low, anything else is good.
func (i *InventoryItem) Status() string {
	if float64(i.Stock) < 0.5*float64(i.ReorderLevel) {
		return InventoryStatusCritical
	}
	if i.Stock < i.ReorderLevel {
		return InventoryStatusLow
	}
	return InventoryStatusGood
}
