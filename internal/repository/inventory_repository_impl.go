package repository

import (
	"context"
	"errors"

	"pathlab-booking/internal/domain/entity"
	domainRepo "pathlab-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type inventoryRepository struct{}

func NewInventoryRepository() domainRepo.InventoryRepository {
	return &inventoryRepository{}
}

func (r *inventoryRepository) Create(ctx context.Context, db *gorm.DB, item *entity.InventoryItem) error {
	return db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) CreateBatch(ctx context.Context, db *gorm.DB, items []entity.InventoryItem) error {
	return db.WithContext(ctx).Create(&items).Error
}

func (r *inventoryRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := db.WithContext(ctx).Order("name").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// IncrementStock adds quantity in a single UPDATE so concurrent restocks
// cannot lose increments.
func (r *inventoryRepository) IncrementStock(ctx context.Context, db *gorm.DB, id uuid.UUID, quantity int) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.InventoryItem{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", quantity))
	return result.RowsAffected, result.Error
}

func (r *inventoryRepository) DeleteAll(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Where("1 = 1").Delete(&entity.InventoryItem{}).Error
}
