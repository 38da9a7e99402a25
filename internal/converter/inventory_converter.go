package converter

import (
	"pathlab-booking/internal/delivery/dto"
	"pathlab-booking/internal/domain/entity"
)

// InventoryItemToResponse converts an InventoryItem entity to its DTO.
// Status is derived from the current stock, never stored.
func InventoryItemToResponse(item *entity.InventoryItem) *dto.InventoryItemResponse {
	if item == nil {
		return nil
	}

	return &dto.InventoryItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Category:     item.Category,
		Stock:        item.Stock,
		ReorderLevel: item.ReorderLevel,
		Status:       item.Status(),
	}
}

// InventoryItemsToResponses converts a slice of InventoryItem entities
func InventoryItemsToResponses(items []entity.InventoryItem) []dto.InventoryItemResponse {
	responses := make([]dto.InventoryItemResponse, len(items))
	for i, item := range items {
		resp := InventoryItemToResponse(&item)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
