package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pathlab-booking/internal/delivery/dto"
	"pathlab-booking/internal/delivery/http/middleware"
	"pathlab-booking/internal/domain/entity"
	"pathlab-booking/internal/service"
	"pathlab-booking/pkg/timeslot"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func customerContext(userID uuid.UUID) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	return context.WithValue(ctx, middleware.RoleKey, entity.RoleCustomer)
}

func adminContext(userID uuid.UUID) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	return context.WithValue(ctx, middleware.RoleKey, entity.RoleAdmin)
}

func tomorrow() string {
	return timeslot.Today().Time().AddDate(0, 0, 1).Format("2006-01-02")
}

func availableDoctor() *entity.Doctor {
	return &entity.Doctor{
		ID:              uuid.New(),
		Code:            "doc1",
		Name:            "Dr. Sarah Johnson",
		Specialty:       "Pathologist",
		Location:        "Sydney CBD",
		Available:       true,
		ConsultationFee: decimal.NewFromInt(150),
	}
}

func doctorRepoWith(doctor *entity.Doctor) *mockDoctorRepository {
	return &mockDoctorRepository{
		FindByCodeFunc: func(ctx context.Context, db *gorm.DB, code string) (*entity.Doctor, error) {
			if doctor != nil && code == doctor.Code {
				return doctor, nil
			}
			return nil, nil
		},
	}
}

func newBookingUsecase(
	apptRepo *mockAppointmentRepository,
	doctorRepo *mockDoctorRepository,
	guard *mockSlotGuard,
	audit *mockAuditService,
) BookingUsecase {
	return NewBookingUsecase(nil, logrus.New(), apptRepo, doctorRepo, guard, audit)
}

func TestCreateAppointmentSuccess(t *testing.T) {
	userID := uuid.New()
	doctor := availableDoctor()

	var inserted *entity.Appointment
	apptRepo := &mockAppointmentRepository{
		CreateFunc: func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
			inserted = appointment
			return nil
		},
	}
	guard := &mockSlotGuard{}
	audit := &mockAuditService{}

	uc := newBookingUsecase(apptRepo, doctorRepoWith(doctor), guard, audit)
	resp, err := uc.CreateAppointment(customerContext(userID), &dto.CreateAppointmentRequest{
		DoctorID: "doc1",
		Date:     tomorrow(),
		Time:     "10:00 AM",
	})

	assert.NoError(t, err)
	assert.Equal(t, "doc1", resp.DoctorID)
	assert.Equal(t, "Dr. Sarah Johnson", resp.DoctorName)
	assert.Equal(t, "10:00 AM", resp.Time)
	assert.Equal(t, string(entity.AppointmentStatusConfirmed), resp.Status)
	assert.True(t, resp.Amount.Equal(doctor.ConsultationFee), "amount defaults to the consultation fee")

	assert.NotNil(t, inserted)
	assert.Equal(t, doctor.ID, inserted.DoctorID)
	assert.Equal(t, userID, *inserted.PatientID)
	assert.Equal(t, 600, inserted.SlotMinutes)
	assert.Equal(t, "10:00 AM", inserted.SlotLabel)

	assert.Len(t, guard.Reserved, 1)
	assert.Empty(t, guard.Released)
	assert.Contains(t, audit.Actions, entity.AuditActionAppointmentBook)
}

func TestCreateAppointmentNormalizesSlotSpelling(t *testing.T) {
	doctor := availableDoctor()
	var inserted *entity.Appointment
	apptRepo := &mockAppointmentRepository{
		CreateFunc: func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
			inserted = appointment
			return nil
		},
	}

	uc := newBookingUsecase(apptRepo, doctorRepoWith(doctor), &mockSlotGuard{}, &mockAuditService{})
	_, err := uc.CreateAppointment(customerContext(uuid.New()), &dto.CreateAppointmentRequest{
		DoctorID: "doc1",
		Date:     tomorrow(),
		Time:     "14:30",
	})

	assert.NoError(t, err)
	assert.Equal(t, "02:30 PM", inserted.SlotLabel)
}

func TestCreateAppointmentValidation(t *testing.T) {
	doctor := availableDoctor()
	unavailable := availableDoctor()
	unavailable.Available = false

	tests := []struct {
		name    string
		doctor  *entity.Doctor
		req     *dto.CreateAppointmentRequest
		wantErr error
	}{
		{
			name:    "unknown doctor",
			doctor:  nil,
			req:     &dto.CreateAppointmentRequest{DoctorID: "doc99", Date: tomorrow(), Time: "10:00 AM"},
			wantErr: ErrDoctorNotFound,
		},
		{
			name:    "unavailable doctor",
			doctor:  unavailable,
			req:     &dto.CreateAppointmentRequest{DoctorID: "doc1", Date: tomorrow(), Time: "10:00 AM"},
			wantErr: ErrDoctorUnavailable,
		},
		{
			name:    "past date",
			doctor:  doctor,
			req:     &dto.CreateAppointmentRequest{DoctorID: "doc1", Date: "2020-01-01", Time: "10:00 AM"},
			wantErr: ErrDateInPast,
		},
		{
			name:    "invalid date",
			doctor:  doctor,
			req:     &dto.CreateAppointmentRequest{DoctorID: "doc1", Date: "next tuesday", Time: "10:00 AM"},
			wantErr: timeslot.ErrInvalidDate,
		},
		{
			name:    "invalid slot",
			doctor:  doctor,
			req:     &dto.CreateAppointmentRequest{DoctorID: "doc1", Date: tomorrow(), Time: "morning"},
			wantErr: timeslot.ErrInvalidSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := &mockSlotGuard{}
			uc := newBookingUsecase(&mockAppointmentRepository{}, doctorRepoWith(tt.doctor), guard, &mockAuditService{})

			_, err := uc.CreateAppointment(customerContext(uuid.New()), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, guard.Reserved, "no slot may be held on a rejected booking")
		})
	}
}

func TestCreateAppointmentSlotHeldByGuard(t *testing.T) {
	guard := &mockSlotGuard{
		ReserveFunc: func(ctx context.Context, doctorCode string, date timeslot.Date, slot timeslot.Slot) error {
			return service.ErrSlotTaken
		},
	}
	created := false
	apptRepo := &mockAppointmentRepository{
		CreateFunc: func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
			created = true
			return nil
		},
	}

	uc := newBookingUsecase(apptRepo, doctorRepoWith(availableDoctor()), guard, &mockAuditService{})
	_, err := uc.CreateAppointment(customerContext(uuid.New()), &dto.CreateAppointmentRequest{
		DoctorID: "doc1", Date: tomorrow(), Time: "10:00 AM",
	})

	assert.ErrorIs(t, err, service.ErrSlotTaken)
	assert.False(t, created, "conflicting booking must not reach the database")
}

func TestCreateAppointmentDuplicateKeyMapsToSlotTaken(t *testing.T) {
	// The partial unique index is the authoritative conflict signal; a
	// constraint violation surfaces as the same slot-taken error and the
	// Redis hold is compensated away.
	apptRepo := &mockAppointmentRepository{
		CreateFunc: func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uniq_appointments_active_slot"}
		},
	}
	guard := &mockSlotGuard{}

	uc := newBookingUsecase(apptRepo, doctorRepoWith(availableDoctor()), guard, &mockAuditService{})
	_, err := uc.CreateAppointment(customerContext(uuid.New()), &dto.CreateAppointmentRequest{
		DoctorID: "doc1", Date: tomorrow(), Time: "10:00 AM",
	})

	assert.ErrorIs(t, err, service.ErrSlotTaken)
	assert.Len(t, guard.Released, 1, "the hold must be released after the failed insert")
}

func TestCreateAppointmentInsertFailureReleasesHold(t *testing.T) {
	dbErr := errors.New("connection reset")
	apptRepo := &mockAppointmentRepository{
		CreateFunc: func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
			return dbErr
		},
	}
	guard := &mockSlotGuard{}

	uc := newBookingUsecase(apptRepo, doctorRepoWith(availableDoctor()), guard, &mockAuditService{})
	_, err := uc.CreateAppointment(customerContext(uuid.New()), &dto.CreateAppointmentRequest{
		DoctorID: "doc1", Date: tomorrow(), Time: "10:00 AM",
	})

	assert.ErrorIs(t, err, dbErr)
	assert.Len(t, guard.Released, 1)
}

func TestCancelAppointment(t *testing.T) {
	userID := uuid.New()
	appt := &entity.Appointment{
		ID:          uuid.New(),
		DoctorCode:  "doc1",
		VisitDate:   timeslot.Today().Time().AddDate(0, 0, 1),
		SlotMinutes: 600,
		PatientID:   &userID,
		Status:      entity.AppointmentStatusConfirmed,
	}

	var saved *entity.Appointment
	apptRepo := &mockAppointmentRepository{
		FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return appt, nil
		},
		SaveFunc: func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
			saved = appointment
			return nil
		},
	}
	guard := &mockSlotGuard{}
	audit := &mockAuditService{}

	uc := newBookingUsecase(apptRepo, &mockDoctorRepository{}, guard, audit)
	err := uc.CancelAppointment(customerContext(userID), appt.ID)

	assert.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCancelled, saved.Status)
	assert.Len(t, guard.Released, 1)
	assert.Contains(t, audit.Actions, entity.AuditActionAppointmentCancel)
}

func TestCancelAppointmentAlreadyCancelled(t *testing.T) {
	userID := uuid.New()
	appt := &entity.Appointment{ID: uuid.New(), PatientID: &userID, Status: entity.AppointmentStatusCancelled}
	apptRepo := &mockAppointmentRepository{
		FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return appt, nil
		},
	}

	uc := newBookingUsecase(apptRepo, &mockDoctorRepository{}, &mockSlotGuard{}, &mockAuditService{})
	err := uc.CancelAppointment(customerContext(userID), appt.ID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancelAppointmentOwnership(t *testing.T) {
	owner := uuid.New()
	appt := &entity.Appointment{ID: uuid.New(), PatientID: &owner, Status: entity.AppointmentStatusConfirmed}
	apptRepo := &mockAppointmentRepository{
		FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return appt, nil
		},
	}

	uc := newBookingUsecase(apptRepo, &mockDoctorRepository{}, &mockSlotGuard{}, &mockAuditService{})

	// another customer is rejected
	err := uc.CancelAppointment(customerContext(uuid.New()), appt.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotOwned)

	// an admin may cancel anyone's appointment
	err = uc.CancelAppointment(adminContext(uuid.New()), appt.ID)
	assert.NoError(t, err)
}

func TestCancelAppointmentNotFound(t *testing.T) {
	uc := newBookingUsecase(&mockAppointmentRepository{}, &mockDoctorRepository{}, &mockSlotGuard{}, &mockAuditService{})
	err := uc.CancelAppointment(customerContext(uuid.New()), uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRescheduleAppointment(t *testing.T) {
	userID := uuid.New()
	appt := &entity.Appointment{
		ID:          uuid.New(),
		DoctorCode:  "doc1",
		VisitDate:   timeslot.Today().Time().AddDate(0, 0, 1),
		SlotMinutes: 600,
		SlotLabel:   "10:00 AM",
		PatientID:   &userID,
		Status:      entity.AppointmentStatusConfirmed,
	}
	apptRepo := &mockAppointmentRepository{
		FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return appt, nil
		},
	}
	guard := &mockSlotGuard{}
	audit := &mockAuditService{}

	newDate := timeslot.Today().Time().AddDate(0, 0, 2).Format("2006-01-02")
	uc := newBookingUsecase(apptRepo, &mockDoctorRepository{}, guard, audit)
	resp, err := uc.RescheduleAppointment(customerContext(userID), appt.ID, &dto.RescheduleAppointmentRequest{
		Date: newDate,
		Time: "11:30 AM",
	})

	assert.NoError(t, err)
	assert.Equal(t, newDate, resp.Date)
	assert.Equal(t, "11:30 AM", resp.Time)
	assert.Len(t, guard.Reserved, 1, "new slot is reserved")
	assert.Len(t, guard.Released, 1, "old slot is released")
	assert.Contains(t, audit.Actions, entity.AuditActionAppointmentReschedule)
}

func TestRescheduleAppointmentConflict(t *testing.T) {
	userID := uuid.New()
	appt := &entity.Appointment{
		ID:          uuid.New(),
		DoctorCode:  "doc1",
		VisitDate:   timeslot.Today().Time().AddDate(0, 0, 1),
		SlotMinutes: 600,
		PatientID:   &userID,
		Status:      entity.AppointmentStatusConfirmed,
	}
	apptRepo := &mockAppointmentRepository{
		FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return appt, nil
		},
	}
	guard := &mockSlotGuard{
		ReserveFunc: func(ctx context.Context, doctorCode string, date timeslot.Date, slot timeslot.Slot) error {
			return service.ErrSlotTaken
		},
	}

	uc := newBookingUsecase(apptRepo, &mockDoctorRepository{}, guard, &mockAuditService{})
	_, err := uc.RescheduleAppointment(customerContext(userID), appt.ID, &dto.RescheduleAppointmentRequest{
		Date: timeslot.Today().Time().AddDate(0, 0, 2).Format("2006-01-02"),
		Time: "11:30 AM",
	})

	assert.ErrorIs(t, err, service.ErrSlotTaken)
	assert.Equal(t, 600, appt.SlotMinutes, "appointment keeps its original slot")
}

func TestRescheduleCancelledAppointment(t *testing.T) {
	userID := uuid.New()
	appt := &entity.Appointment{ID: uuid.New(), PatientID: &userID, Status: entity.AppointmentStatusCancelled}
	apptRepo := &mockAppointmentRepository{
		FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return appt, nil
		},
	}

	uc := newBookingUsecase(apptRepo, &mockDoctorRepository{}, &mockSlotGuard{}, &mockAuditService{})
	_, err := uc.RescheduleAppointment(customerContext(userID), appt.ID, &dto.RescheduleAppointmentRequest{
		Date: tomorrow(),
		Time: "11:30 AM",
	})
	assert.ErrorIs(t, err, entity.ErrIllegalTransition)
}

func TestListAppointmentsScopedByRole(t *testing.T) {
	userID := uuid.New()
	all := []entity.Appointment{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}
	mine := all[:1]

	apptRepo := &mockAppointmentRepository{
		FindAllFunc: func(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
			return all, nil
		},
		FindByPatientIDFunc: func(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
			assert.Equal(t, userID, patientID)
			return mine, nil
		},
	}
	uc := newBookingUsecase(apptRepo, &mockDoctorRepository{}, &mockSlotGuard{}, &mockAuditService{})

	asCustomer, err := uc.ListAppointments(customerContext(userID))
	assert.NoError(t, err)
	assert.Equal(t, 1, asCustomer.Total)

	asAdmin, err := uc.ListAppointments(adminContext(userID))
	assert.NoError(t, err)
	assert.Equal(t, 3, asAdmin.Total)
}

func TestGetBookedSlotsReturnsCanonicalLabels(t *testing.T) {
	apptRepo := &mockAppointmentRepository{
		FindActiveByDoctorAndDateFunc: func(ctx context.Context, db *gorm.DB, doctorCode string, visitDate time.Time) ([]entity.Appointment, error) {
			return []entity.Appointment{
				{SlotMinutes: 600},
				{SlotMinutes: 870},
			}, nil
		},
	}

	uc := newBookingUsecase(apptRepo, &mockDoctorRepository{}, &mockSlotGuard{}, &mockAuditService{})
	resp, err := uc.GetBookedSlots(context.Background(), "doc1", "Mar 14, 2026")

	assert.NoError(t, err)
	assert.Equal(t, "doc1", resp.DoctorID)
	assert.Equal(t, "2026-03-14", resp.Date, "date is normalized to the canonical form")
	assert.Equal(t, []string{"10:00 AM", "02:30 PM"}, resp.Slots)
}

func TestGetBookedSlotsInvalidDate(t *testing.T) {
	uc := newBookingUsecase(&mockAppointmentRepository{}, &mockDoctorRepository{}, &mockSlotGuard{}, &mockAuditService{})
	_, err := uc.GetBookedSlots(context.Background(), "doc1", "soon")
	assert.ErrorIs(t, err, timeslot.ErrInvalidDate)
}
