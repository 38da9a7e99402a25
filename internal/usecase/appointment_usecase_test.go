package usecase

import (
	"context"
	"testing"

	"pathlab-booking/internal/delivery/dto"
	"pathlab-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newAppointmentUsecase(apptRepo *mockAppointmentRepository, audit *mockAuditService) AppointmentUsecase {
	return NewAppointmentUsecase(nil, logrus.New(), apptRepo, audit)
}

func repoWithAppointment(appt *entity.Appointment) *mockAppointmentRepository {
	return &mockAppointmentRepository{
		FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			if appt != nil && id == appt.ID {
				return appt, nil
			}
			return nil, nil
		},
	}
}

func TestConfirmAppointment(t *testing.T) {
	appt := &entity.Appointment{ID: uuid.New(), Status: entity.AppointmentStatusPending}
	audit := &mockAuditService{}

	uc := newAppointmentUsecase(repoWithAppointment(appt), audit)
	resp, err := uc.ConfirmAppointment(adminContext(uuid.New()), appt.ID)

	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusConfirmed), resp.Status)
	assert.Contains(t, audit.Actions, entity.AuditActionAppointmentConfirm)
}

func TestCompleteAppointment(t *testing.T) {
	appt := &entity.Appointment{ID: uuid.New(), Status: entity.AppointmentStatusConfirmed}

	uc := newAppointmentUsecase(repoWithAppointment(appt), &mockAuditService{})
	resp, err := uc.CompleteAppointment(adminContext(uuid.New()), appt.ID)

	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCompleted), resp.Status)
}

func TestDeliverResults(t *testing.T) {
	appt := &entity.Appointment{ID: uuid.New(), Status: entity.AppointmentStatusCompleted}
	audit := &mockAuditService{}

	uc := newAppointmentUsecase(repoWithAppointment(appt), audit)
	resp, err := uc.DeliverResults(adminContext(uuid.New()), appt.ID, &dto.DeliverResultsRequest{FileName: "cbc-panel.pdf"})

	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusResultsReady), resp.Status)
	assert.Equal(t, "cbc-panel.pdf", resp.ResultFile)
	assert.Contains(t, audit.Actions, entity.AuditActionAppointmentResultsSent)
}

func TestTransitionRejectsWrongStatus(t *testing.T) {
	appt := &entity.Appointment{ID: uuid.New(), Status: entity.AppointmentStatusCancelled}
	saved := false
	apptRepo := repoWithAppointment(appt)
	apptRepo.SaveFunc = func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
		saved = true
		return nil
	}

	uc := newAppointmentUsecase(apptRepo, &mockAuditService{})
	_, err := uc.ConfirmAppointment(adminContext(uuid.New()), appt.ID)

	assert.ErrorIs(t, err, entity.ErrIllegalTransition)
	assert.False(t, saved, "a rejected transition must not be persisted")
	assert.Equal(t, entity.AppointmentStatusCancelled, appt.Status)
}

func TestTransitionUnknownAppointment(t *testing.T) {
	uc := newAppointmentUsecase(&mockAppointmentRepository{}, &mockAuditService{})
	_, err := uc.CompleteAppointment(adminContext(uuid.New()), uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
