package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID    string          `json:"doctorId" validate:"required"`
	Date        string          `json:"date" validate:"required"`
	Time        string          `json:"time" validate:"required"`
	PatientName string          `json:"patientName" validate:"omitempty,min=2"`
	Notes       string          `json:"notes" validate:"omitempty"`
	Amount      decimal.Decimal `json:"amount" validate:"omitempty"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" validate:"required"`
	Time string `json:"time" validate:"required"`
}

// UpdateAppointmentRequest merges non-lifecycle fields only. Status and
// slot are changed through the named transition and reschedule endpoints.
type UpdateAppointmentRequest struct {
	PatientName *string `json:"patientName" validate:"omitempty,min=2"`
	Notes       *string `json:"notes" validate:"omitempty"`
	Location    *string `json:"location" validate:"omitempty"`
}

type DeliverResultsRequest struct {
	FileName string `json:"fileName" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID            uuid.UUID       `json:"id"`
	DoctorID      string          `json:"doctorId"`
	DoctorName    string          `json:"doctorName"`
	Specialty     string          `json:"specialty"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	Location      string          `json:"location,omitempty"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	Amount        decimal.Decimal `json:"amount"`
	Notes         string          `json:"notes,omitempty"`
	PatientName   string          `json:"patientName,omitempty"`
	ResultFile    string          `json:"resultFile,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type BookedSlotsResponse struct {
	DoctorID string   `json:"doctorId"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
}
