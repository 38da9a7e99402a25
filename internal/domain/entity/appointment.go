package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle stage of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending      AppointmentStatus = "Pending"
	AppointmentStatusConfirmed    AppointmentStatus = "Confirmed"
	AppointmentStatusCompleted    AppointmentStatus = "Completed"
	AppointmentStatusResultsReady AppointmentStatus = "ResultsReady"
	AppointmentStatusCancelled    AppointmentStatus = "Cancelled"
)

// PaymentStatus represents the payment stage of an appointment
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

// ErrIllegalTransition is returned when a lifecycle operation is applied to an
// appointment whose current status does not permit it.
var ErrIllegalTransition = errors.New("illegal appointment status transition")

// Appointment represents a booked slot with a pathology doctor.
// Doctor code, name and specialty are denormalized at booking time so the
// appointment record stays readable even if the catalog entry changes later.
type Appointment struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DoctorCode  string     `gorm:"type:varchar(20);not null;index" json:"doctor_code"`
	DoctorName  string     `gorm:"type:varchar(255);not null" json:"doctor_name"`
	Specialty   string     `gorm:"type:varchar(100)" json:"specialty"`
	VisitDate   time.Time  `gorm:"type:date;not null" json:"visit_date"`
	SlotMinutes int        `gorm:"not null" json:"slot_minutes"`
	SlotLabel   string     `gorm:"type:varchar(20);not null" json:"slot_label"`
	Location    string     `gorm:"type:varchar(255)" json:"location"`
	PatientID   *uuid.UUID `gorm:"type:uuid;index" json:"patient_id,omitempty"`
	PatientName string     `gorm:"type:varchar(255)" json:"patient_name,omitempty"`

	Status        AppointmentStatus `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	PaymentStatus PaymentStatus     `gorm:"type:varchar(20);not null;default:'Pending'" json:"payment_status"`
	Amount        decimal.Decimal   `gorm:"type:decimal(10,2)" json:"amount"`
	Notes         string            `gorm:"type:text" json:"notes,omitempty"`
	ResultFile    string            `gorm:"type:varchar(255)" json:"result_file,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsActive reports whether the appointment still occupies its slot.
func (a *Appointment) IsActive() bool {
	return !a.IsCancelled()
}

// CanReschedule reports whether the visit date/slot may still be rewritten.
func (a *Appointment) CanReschedule() bool {
	return a.Status == AppointmentStatusPending || a.Status == AppointmentStatusConfirmed
}

// Confirm moves a pending appointment to confirmed.
func (a *Appointment) Confirm() error {
	if a.Status != AppointmentStatusPending {
		return ErrIllegalTransition
	}
	a.Status = AppointmentStatusConfirmed
	return nil
}

// Complete marks a confirmed appointment as examined.
func (a *Appointment) Complete() error {
	if a.Status != AppointmentStatusConfirmed {
		return ErrIllegalTransition
	}
	a.Status = AppointmentStatusCompleted
	return nil
}

// DeliverResults attaches a result file name to a completed appointment and
// moves it to results-ready. Only the file name is recorded, the file itself
// is never transferred.
func (a *Appointment) DeliverResults(fileName string) error {
	if a.Status != AppointmentStatusCompleted {
		return ErrIllegalTransition
	}
	a.Status = AppointmentStatusResultsReady
	a.ResultFile = fileName
	return nil
}

// Cancel soft-cancels an appointment. Completed and results-ready
// appointments can no longer be cancelled; cancelling twice is illegal.
func (a *Appointment) Cancel() error {
	if a.Status != AppointmentStatusPending && a.Status != AppointmentStatusConfirmed {
		return ErrIllegalTransition
	}
	a.Status = AppointmentStatusCancelled
	return nil
}
