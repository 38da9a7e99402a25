package repository

import (
	"context"

	"pathlab-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(ctx context.Context, db *gorm.DB, item *entity.InventoryItem) error
	CreateBatch(ctx context.Context, db *gorm.DB, items []entity.InventoryItem) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.InventoryItem, error)
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.InventoryItem, error)
	// IncrementStock atomically adds quantity to the item's stock.
	// Returns affected rows: 0 means the item does not exist.
	IncrementStock(ctx context.Context, db *gorm.DB, id uuid.UUID, quantity int) (int64, error)
	DeleteAll(ctx context.Context, db *gorm.DB) error
}
