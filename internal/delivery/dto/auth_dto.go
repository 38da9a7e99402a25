package dto

import (
	"time"

	"pathlab-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=Admin Customer"`
	Phone    string `json:"phone" validate:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID                uuid.UUID         `json:"id"`
	DisplayID         int               `json:"display_id"`
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	Role              string            `json:"role"`
	Status            string            `json:"status"`
	Phone             string            `json:"phone,omitempty"`
	CountryCode       string            `json:"country_code,omitempty"`
	DateOfBirth       string            `json:"date_of_birth,omitempty"`
	Address           string            `json:"address,omitempty"`
	MedicalNumber     string            `json:"medical_number,omitempty"`
	InsuranceProvider string            `json:"insurance_provider,omitempty"`
	InsuranceNumber   string            `json:"insurance_number,omitempty"`
	EmergencyContact  string            `json:"emergency_contact,omitempty"`
	EmergencyPhone    string            `json:"emergency_phone,omitempty"`
	JoinedDate        string            `json:"joined_date,omitempty"`
	SavedCards        entity.SavedCards `json:"saved_cards,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *UserResponse `json:"user,omitempty"`
}
