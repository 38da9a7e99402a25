package handler

import (
	"encoding/json"
	"net/http"

	"pathlab-booking/internal/delivery/dto"
	"pathlab-booking/internal/usecase"
	"pathlab-booking/pkg/response"
	"pathlab-booking/pkg/validator"
)

type InventoryHandler struct {
	inventoryUsecase usecase.InventoryUsecase
	validator        *validator.CustomValidator
}

func NewInventoryHandler(inventoryUsecase usecase.InventoryUsecase, validator *validator.CustomValidator) *InventoryHandler {
	return &InventoryHandler{
		inventoryUsecase: inventoryUsecase,
		validator:        validator,
	}
}

// GetAllItems lists lab supplies with their derived status. Admin only.
func (h *InventoryHandler) GetAllItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryUsecase.GetAllItems(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get inventory")
		return
	}

	response.Success(w, http.StatusOK, "Inventory retrieved successfully", items)
}

// CreateItem adds a supply line. Admin only.
func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.inventoryUsecase.CreateItem(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create inventory item")
		return
	}

	response.Success(w, http.StatusCreated, "Inventory item created successfully", item)
}

// OrderStock adds the ordered quantity to an item's stock. Admin only.
func (h *InventoryHandler) OrderStock(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.inventoryUsecase.OrderStock(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInventoryItemNotFound:
			response.NotFound(w, "Inventory item not found")
		default:
			response.InternalServerError(w, "Failed to order stock")
		}
		return
	}

	response.Success(w, http.StatusOK, "Stock ordered successfully", item)
}
