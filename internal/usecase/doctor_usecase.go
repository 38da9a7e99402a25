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

var ErrDoctorCodeExists = errors.New("doctor code already exists")

type DoctorUsecase interface {
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, code string) (*dto.DoctorResponse, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, code string, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, code string) error
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, code string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByCode(ctx, u.db, code)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", code, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	doctor := &entity.Doctor{
		Code:            req.Code,
		Name:            req.Name,
		Specialty:       req.Specialty,
		Location:        req.Location,
		LocationID:      req.LocationID,
		Rating:          req.Rating,
		Reviews:         req.Reviews,
		Available:       available,
		ConsultationFee: req.ConsultationFee,
		About:           req.About,
	}

	if err := u.doctorRepo.Create(ctx, u.db, doctor); err != nil {
		if isDuplicateKeyError(err, "code") {
			return nil, ErrDoctorCodeExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	u.recordAudit(ctx, entity.AuditActionDoctorCreate, doctor.Code)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, code string, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByCode(ctx, u.db, code)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", code, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Name != "" {
		doctor.Name = req.Name
	}
	if req.Specialty != "" {
		doctor.Specialty = req.Specialty
	}
	if req.Location != "" {
		doctor.Location = req.Location
	}
	if req.LocationID != "" {
		doctor.LocationID = req.LocationID
	}
	if req.Rating != nil {
		doctor.Rating = *req.Rating
	}
	if req.Reviews != nil {
		doctor.Reviews = *req.Reviews
	}
	if req.Available != nil {
		doctor.Available = *req.Available
	}
	if req.ConsultationFee != nil {
		doctor.ConsultationFee = *req.ConsultationFee
	}
	if req.About != "" {
		doctor.About = req.About
	}

	if err := u.doctorRepo.Update(ctx, u.db, doctor); err != nil {
		u.log.Warnf("Failed to update doctor %s: %+v", code, err)
		return nil, err
	}

	u.recordAudit(ctx, entity.AuditActionDoctorUpdate, doctor.Code)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, code string) error {
	affected, err := u.doctorRepo.DeleteByCode(ctx, u.db, code)
	if err != nil {
		u.log.Warnf("Failed to delete doctor %s: %+v", code, err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}

	u.recordAudit(ctx, entity.AuditActionDoctorDelete, code)
	return nil
}

func (u *doctorUsecase) recordAudit(ctx context.Context, action, code string) {
	var actorID *uuid.UUID
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		actorID = &userID
	}
	u.auditService.Record(ctx, u.db, actorID, action, entity.JSON{"doctor": code})
}
