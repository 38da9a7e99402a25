package usecase

import (
	"context"
	"errors"

	"pathlab-booking/internal/converter"
	"pathlab-booking/internal/delivery/dto"
	"pathlab-booking/internal/delivery/http/middleware"
	"pathlab-booking/internal/domain/entity"
	"pathlab-booking/internal/domain/repository"
	"pathlab-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInventoryItemNotFound = errors.New("inventory item not found")

type InventoryUsecase interface {
	GetAllItems(ctx context.Context) (*dto.InventoryListResponse, error)
	CreateItem(ctx context.Context, req *dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error)
	OrderStock(ctx context.Context, req *dto.OrderInventoryRequest) (*dto.InventoryItemResponse, error)
}

type inventoryUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	inventoryRepo repository.InventoryRepository
	auditService  service.AuditService
}

func NewInventoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	inventoryRepo repository.InventoryRepository,
	auditService service.AuditService,
) InventoryUsecase {
	return &inventoryUsecase{
		db:            db,
		log:           log,
		inventoryRepo: inventoryRepo,
		auditService:  auditService,
	}
}

func (u *inventoryUsecase) GetAllItems(ctx context.Context) (*dto.InventoryListResponse, error) {
	items, err := u.inventoryRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find inventory items: %+v", err)
		return nil, err
	}

	return &dto.InventoryListResponse{
		Items: converter.InventoryItemsToResponses(items),
		Total: len(items),
	}, nil
}

func (u *inventoryUsecase) CreateItem(ctx context.Context, req *dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item := &entity.InventoryItem{
		Name:         req.Name,
		Category:     req.Category,
		Stock:        req.Stock,
		ReorderLevel: req.ReorderLevel,
	}

	if err := u.inventoryRepo.Create(ctx, u.db, item); err != nil {
		u.log.Warnf("Failed to create inventory item: %+v", err)
		return nil, err
	}

	return converter.InventoryItemToResponse(item), nil
}

// OrderStock increments the item's stock by the ordered quantity. The
// returned status is derived from the new stock, so crossing a reorder
// threshold is reflected immediately.
func (u *inventoryUsecase) OrderStock(ctx context.Context, req *dto.OrderInventoryRequest) (*dto.InventoryItemResponse, error) {
	affected, err := u.inventoryRepo.IncrementStock(ctx, u.db, req.ItemID, req.Quantity)
	if err != nil {
		u.log.Warnf("Failed to restock item %s: %+v", req.ItemID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInventoryItemNotFound
	}

	item, err := u.inventoryRepo.FindByID(ctx, u.db, req.ItemID)
	if err != nil {
		u.log.Warnf("Failed to reload item %s: %+v", req.ItemID, err)
		return nil, err
	}
	if item == nil {
		return nil, ErrInventoryItemNotFound
	}

	var actorID *uuid.UUID
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		actorID = &userID
	}
	u.auditService.Record(ctx, u.db, actorID, entity.AuditActionInventoryRestock, entity.JSON{
		"item_id":  req.ItemID.String(),
		"quantity": req.Quantity,
	})

	return converter.InventoryItemToResponse(item), nil
}
