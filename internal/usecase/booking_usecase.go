package usecase

import (
	"context"
	"errors"

	"pathlab-booking/internal/converter"
	"pathlab-booking/internal/delivery/dto"
	"pathlab-booking/internal/delivery/http/middleware"
	"pathlab-booking/internal/domain/entity"
	"pathlab-booking/internal/domain/repository"
	"pathlab-booking/internal/service"
	"pathlab-booking/pkg/timeslot"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorUnavailable   = errors.New("doctor is not accepting bookings")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentNotOwned = errors.New("appointment does not belong to you")
	ErrAlreadyCancelled    = errors.New("appointment is already cancelled")
	ErrDateInPast          = errors.New("cannot book a past date")
)

// SlotReserver is the slot guard surface the booking flow needs.
// Satisfied by service.SlotGuard.
type SlotReserver interface {
	Reserve(ctx context.Context, doctorCode string, date timeslot.Date, slot timeslot.Slot) error
	Release(ctx context.Context, doctorCode string, date timeslot.Date, slot timeslot.Slot) error
}

type BookingUsecase interface {
	ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	RescheduleAppointment(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, id uuid.UUID) error
	GetBookedSlots(ctx context.Context, doctorCode, date string) (*dto.BookedSlotsResponse, error)
}

type bookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	slotGuard       SlotReserver
	auditService    service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	slotGuard SlotReserver,
	auditService service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		slotGuard:       slotGuard,
		auditService:    auditService,
	}
}

// ListAppointments returns all appointments for admins, and only the
// caller's own for customers.
func (u *bookingUsecase) ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	var appointments []entity.Appointment
	var err error
	if role, _ := middleware.GetRoleFromContext(ctx); role == entity.RoleAdmin {
		appointments, err = u.appointmentRepo.FindAll(ctx, u.db)
	} else {
		appointments, err = u.appointmentRepo.FindByPatientID(ctx, u.db, userID)
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// CreateAppointment books a slot.
//
// Flow:
// 1. Normalize date and slot label to their canonical value types
// 2. Validate the doctor exists and is available
// 3. Reserve the slot in Redis (atomic, absorbs concurrent bookings)
// 4. Insert the appointment; the partial unique index on active
//    (doctor, date, slot) rows is the authoritative conflict signal
// 5. If the insert fails -> compensate: release the Redis hold
func (u *bookingUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	date, err := timeslot.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	slot, err := timeslot.ParseSlot(req.Time)
	if err != nil {
		return nil, err
	}
	if date.Before(timeslot.Today()) {
		return nil, ErrDateInPast
	}

	doctor, err := u.doctorRepo.FindByCode(ctx, u.db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !doctor.Available {
		return nil, ErrDoctorUnavailable
	}

	if err := u.slotGuard.Reserve(ctx, doctor.Code, date, slot); err != nil {
		if errors.Is(err, service.ErrSlotTaken) {
			return nil, service.ErrSlotTaken
		}
		u.log.Warnf("Failed slot reservation for %s %s %s: %+v", doctor.Code, date, slot.Label(), err)
		return nil, err
	}

	amount := req.Amount
	if amount.IsZero() {
		amount = doctor.ConsultationFee
	}

	appointment := &entity.Appointment{
		DoctorID:      doctor.ID,
		DoctorCode:    doctor.Code,
		DoctorName:    doctor.Name,
		Specialty:     doctor.Specialty,
		VisitDate:     date.Time(),
		SlotMinutes:   slot.MinuteOfDay,
		SlotLabel:     slot.Label(),
		Location:      doctor.Location,
		PatientID:     &userID,
		PatientName:   req.PatientName,
		Status:        entity.AppointmentStatusConfirmed,
		PaymentStatus: entity.PaymentStatusPaid,
		Amount:        amount,
		Notes:         req.Notes,
	}

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		// Compensate: the hold must not outlive a failed insert.
		if releaseErr := u.slotGuard.Release(ctx, doctor.Code, date, slot); releaseErr != nil {
			u.log.Errorf("Failed to release slot hold after DB failure for %s %s: %+v", doctor.Code, date, releaseErr)
		}
		if isDuplicateKeyError(err, "active_slot") {
			return nil, service.ErrSlotTaken
		}
		u.log.Warnf("Failed to insert appointment: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, u.db, &userID, entity.AuditActionAppointmentBook, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"doctor":         doctor.Code,
		"date":           date.String(),
		"slot":           slot.Label(),
	})

	u.log.Infof("Appointment booked: id=%s, doctor=%s, date=%s, slot=%s", appointment.ID, doctor.Code, date, slot.Label())
	return converter.AppointmentToResponse(appointment), nil
}

// RescheduleAppointment rewrites the visit date and slot. The conflict
// check runs again against the new slot, so a reschedule can no longer
// stack two bookings on the same triple.
func (u *bookingUsecase) RescheduleAppointment(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointment, err := u.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !appointment.CanReschedule() {
		return nil, entity.ErrIllegalTransition
	}

	date, err := timeslot.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	slot, err := timeslot.ParseSlot(req.Time)
	if err != nil {
		return nil, err
	}
	if date.Before(timeslot.Today()) {
		return nil, ErrDateInPast
	}

	oldDate := timeslot.Date{Year: appointment.VisitDate.Year(), Month: appointment.VisitDate.Month(), Day: appointment.VisitDate.Day()}
	oldSlot := timeslot.Slot{MinuteOfDay: appointment.SlotMinutes}

	if date == oldDate && slot == oldSlot {
		return converter.AppointmentToResponse(appointment), nil
	}

	if err := u.slotGuard.Reserve(ctx, appointment.DoctorCode, date, slot); err != nil {
		if errors.Is(err, service.ErrSlotTaken) {
			return nil, service.ErrSlotTaken
		}
		return nil, err
	}

	appointment.VisitDate = date.Time()
	appointment.SlotMinutes = slot.MinuteOfDay
	appointment.SlotLabel = slot.Label()

	if err := u.appointmentRepo.Save(ctx, u.db, appointment); err != nil {
		if releaseErr := u.slotGuard.Release(ctx, appointment.DoctorCode, date, slot); releaseErr != nil {
			u.log.Errorf("Failed to release slot hold after DB failure for %s %s: %+v", appointment.DoctorCode, date, releaseErr)
		}
		if isDuplicateKeyError(err, "active_slot") {
			return nil, service.ErrSlotTaken
		}
		u.log.Warnf("Failed to reschedule appointment %s: %+v", id, err)
		return nil, err
	}

	// The old slot is free again; losing this release is non-fatal, the
	// hold expires with the visit day.
	if err := u.slotGuard.Release(ctx, appointment.DoctorCode, oldDate, oldSlot); err != nil {
		u.log.Warnf("Failed to release old slot hold for %s %s (non-fatal): %+v", appointment.DoctorCode, oldDate, err)
	}

	u.auditService.Record(ctx, u.db, &userID, entity.AuditActionAppointmentReschedule, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"from":           oldDate.String() + " " + oldSlot.Label(),
		"to":             date.String() + " " + slot.Label(),
	})

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointment merges non-lifecycle fields. Status and slot cannot be
// written through this path.
func (u *bookingUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointment, err := u.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.PatientName != nil {
		appointment.PatientName = *req.PatientName
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}
	if req.Location != nil {
		appointment.Location = *req.Location
	}

	if err := u.appointmentRepo.Save(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment soft-cancels, keeping the record for audit history.
func (u *bookingUsecase) CancelAppointment(ctx context.Context, id uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	appointment, err := u.findOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if appointment.IsCancelled() {
		return ErrAlreadyCancelled
	}
	if err := appointment.Cancel(); err != nil {
		return err
	}

	if err := u.appointmentRepo.Save(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
		return err
	}

	date := timeslot.Date{Year: appointment.VisitDate.Year(), Month: appointment.VisitDate.Month(), Day: appointment.VisitDate.Day()}
	slot := timeslot.Slot{MinuteOfDay: appointment.SlotMinutes}
	if err := u.slotGuard.Release(ctx, appointment.DoctorCode, date, slot); err != nil {
		u.log.Warnf("Failed to release slot hold for %s %s (non-fatal): %+v", appointment.DoctorCode, date, err)
	}

	u.auditService.Record(ctx, u.db, &userID, entity.AuditActionAppointmentCancel, entity.JSON{
		"appointment_id": appointment.ID.String(),
	})

	u.log.Infof("Appointment cancelled: id=%s", id)
	return nil
}

// GetBookedSlots returns the canonical labels of slots already held by
// non-cancelled appointments for a doctor on a date.
func (u *bookingUsecase) GetBookedSlots(ctx context.Context, doctorCode, date string) (*dto.BookedSlotsResponse, error) {
	day, err := timeslot.ParseDate(date)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindActiveByDoctorAndDate(ctx, u.db, doctorCode, day.Time())
	if err != nil {
		u.log.Warnf("Failed to find booked slots for %s %s: %+v", doctorCode, day, err)
		return nil, err
	}

	slots := make([]string, 0, len(appointments))
	for _, appointment := range appointments {
		slots = append(slots, timeslot.Slot{MinuteOfDay: appointment.SlotMinutes}.Label())
	}

	return &dto.BookedSlotsResponse{
		DoctorID: doctorCode,
		Date:     day.String(),
		Slots:    slots,
	}, nil
}

// findOwned loads an appointment and enforces ownership for customers.
// Admins may touch any appointment.
func (u *bookingUsecase) findOwned(ctx context.Context, id, userID uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if role, _ := middleware.GetRoleFromContext(ctx); role != entity.RoleAdmin {
		if appointment.PatientID == nil || *appointment.PatientID != userID {
			return nil, ErrAppointmentNotOwned
		}
	}
	return appointment, nil
}
