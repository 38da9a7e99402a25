package dto

import "github.com/google/uuid"

// Request DTOs

type CreateInventoryItemRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	Category     string `json:"category" validate:"omitempty"`
	Stock        int    `json:"stock" validate:"gte=0"`
	ReorderLevel int    `json:"reorderLevel" validate:"gte=0"`
}

type OrderInventoryRequest struct {
	ItemID   uuid.UUID `json:"itemId" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,min=1"`
}

// Response DTOs

type InventoryItemResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Stock        int       `json:"stock"`
	ReorderLevel int       `json:"reorderLevel"`
	Status       string    `json:"status"`
}

type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Total int                     `json:"total"`
}
