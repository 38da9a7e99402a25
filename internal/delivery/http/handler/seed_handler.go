package handler

import (
	"net/http"

	"pathlab-booking/internal/usecase"
	"pathlab-booking/pkg/response"
)

// SeedHandler exposes the demo reseed endpoint. The endpoint wipes and
// restores the demo dataset, so it stays disabled unless explicitly enabled
// through configuration.
type SeedHandler struct {
	seedUsecase usecase.SeedUsecase
	enabled     bool
}

func NewSeedHandler(seedUsecase usecase.SeedUsecase, enabled bool) *SeedHandler {
	return &SeedHandler{
		seedUsecase: seedUsecase,
		enabled:     enabled,
	}
}

// SeedAll restores the fixed demo dataset.
func (h *SeedHandler) SeedAll(w http.ResponseWriter, r *http.Request) {
	if !h.enabled {
		response.NotFound(w, "")
		return
	}

	result, err := h.seedUsecase.SeedAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to seed database")
		return
	}

	response.Success(w, http.StatusOK, "Database restored", result)
}
