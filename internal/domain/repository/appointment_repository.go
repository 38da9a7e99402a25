package repository

import (
	"context"
	"time"

	"pathlab-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	// FindActiveByDoctorAndDate returns non-cancelled appointments occupying
	// slots of the given doctor on the given visit date.
	FindActiveByDoctorAndDate(ctx context.Context, db *gorm.DB, doctorCode string, visitDate time.Time) ([]entity.Appointment, error)
	// FindActiveFromDate streams active appointments on or after the date,
	// used for the slot guard startup re-sync.
	FindActiveFromDate(ctx context.Context, db *gorm.DB, from time.Time, limit, offset int) ([]entity.Appointment, error)
	Save(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	DeleteAll(ctx context.Context, db *gorm.DB) error
}
