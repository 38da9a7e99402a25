package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDoctorRequest struct {
	Code            string          `json:"code" validate:"required"`
	Name            string          `json:"name" validate:"required,min=2"`
	Specialty       string          `json:"specialty" validate:"required"`
	Location        string          `json:"location" validate:"required"`
	LocationID      string          `json:"locationId" validate:"omitempty"`
	Rating          float64         `json:"rating" validate:"gte=0,lte=5"`
	Reviews         int             `json:"reviews" validate:"gte=0"`
	Available       *bool           `json:"available" validate:"omitempty"`
	ConsultationFee decimal.Decimal `json:"consultationFee" validate:"required"`
	About           string          `json:"about" validate:"omitempty"`
}

type UpdateDoctorRequest struct {
	Name            string           `json:"name" validate:"omitempty,min=2"`
	Specialty       string           `json:"specialty" validate:"omitempty"`
	Location        string           `json:"location" validate:"omitempty"`
	LocationID      string           `json:"locationId" validate:"omitempty"`
	Rating          *float64         `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Reviews         *int             `json:"reviews" validate:"omitempty,gte=0"`
	Available       *bool            `json:"available" validate:"omitempty"`
	ConsultationFee *decimal.Decimal `json:"consultationFee" validate:"omitempty"`
	About           string           `json:"about" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID       `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Specialty       string          `json:"specialty"`
	Location        string          `json:"location"`
	LocationID      string          `json:"locationId"`
	Rating          float64         `json:"rating"`
	Reviews         int             `json:"reviews"`
	Available       bool            `json:"available"`
	ConsultationFee decimal.Decimal `json:"consultationFee"`
	About           string          `json:"about,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
