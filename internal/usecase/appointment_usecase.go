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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AppointmentUsecase covers the administrative lifecycle transitions.
// Each operation validates the current status; anything outside the
// transition table fails with entity.ErrIllegalTransition.
type AppointmentUsecase interface {
	ConfirmAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	CompleteAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	DeliverResults(ctx context.Context, id uuid.UUID, req *dto.DeliverResultsRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) ConfirmAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AuditActionAppointmentConfirm, func(a *entity.Appointment) error {
		return a.Confirm()
	})
}

func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AuditActionAppointmentComplete, func(a *entity.Appointment) error {
		return a.Complete()
	})
}

func (u *appointmentUsecase) DeliverResults(ctx context.Context, id uuid.UUID, req *dto.DeliverResultsRequest) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AuditActionAppointmentResultsSent, func(a *entity.Appointment) error {
		return a.DeliverResults(req.FileName)
	})
}

func (u *appointmentUsecase) transition(ctx context.Context, id uuid.UUID, action string, apply func(*entity.Appointment) error) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	from := appointment.Status
	if err := apply(appointment); err != nil {
		if errors.Is(err, entity.ErrIllegalTransition) {
			u.log.Warnf("Rejected transition %s for appointment %s in status %s", action, id, from)
		}
		return nil, err
	}

	if err := u.appointmentRepo.Save(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to save appointment %s: %+v", id, err)
		return nil, err
	}

	var actorID *uuid.UUID
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		actorID = &userID
	}
	u.auditService.Record(ctx, u.db, actorID, action, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"from":           string(from),
		"to":             string(appointment.Status),
	})

	return converter.AppointmentToResponse(appointment), nil
}
