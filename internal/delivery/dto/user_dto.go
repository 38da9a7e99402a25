package dto

import "pathlab-booking/internal/domain/entity"

// Request DTOs

type UpdateUserRequest struct {
	Name              string            `json:"name" validate:"omitempty,min=2"`
	Email             string            `json:"email" validate:"omitempty,email"`
	Password          string            `json:"password" validate:"omitempty,min=6"`
	Status            string            `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Phone             string            `json:"phone" validate:"omitempty"`
	CountryCode       string            `json:"countryCode" validate:"omitempty"`
	DateOfBirth       string            `json:"dateOfBirth" validate:"omitempty"`
	Address           string            `json:"address" validate:"omitempty"`
	MedicalNumber     string            `json:"medicalNumber" validate:"omitempty"`
	InsuranceProvider string            `json:"insuranceProvider" validate:"omitempty"`
	InsuranceNumber   string            `json:"insuranceNumber" validate:"omitempty"`
	EmergencyContact  string            `json:"emergencyContact" validate:"omitempty"`
	EmergencyPhone    string            `json:"emergencyPhone" validate:"omitempty"`
	SavedCards        entity.SavedCards `json:"savedCards" validate:"omitempty,dive"`
}

// Response DTOs

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
