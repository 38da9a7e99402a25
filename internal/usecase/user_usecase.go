package usecase

import (
	"context"

	"pathlab-booking/internal/converter"
	"pathlab-booking/internal/delivery/dto"
	"pathlab-booking/internal/domain/entity"
	"pathlab-booking/internal/domain/repository"
	"pathlab-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserUsecase interface {
	GetAllUsers(ctx context.Context) (*dto.UserListResponse, error)
	GetUserByEmail(ctx context.Context, email string) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *userUsecase) GetAllUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

// GetUserByEmail looks up an account; the address is normalized first so
// the lookup is case and whitespace insensitive.
func (u *userUsecase) GetUserByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, u.db, NormalizeEmail(email))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

// UpdateUser merges profile fields. An email change is renormalized and a
// password change is re-hashed; neither is ever stored raw.
func (u *userUsecase) UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = NormalizeEmail(req.Email)
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashed)
	}
	if req.Status != "" {
		user.Status = req.Status
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.CountryCode != "" {
		user.CountryCode = req.CountryCode
	}
	if req.DateOfBirth != "" {
		user.DateOfBirth = req.DateOfBirth
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.MedicalNumber != "" {
		user.MedicalNumber = req.MedicalNumber
	}
	if req.InsuranceProvider != "" {
		user.InsuranceProvider = req.InsuranceProvider
	}
	if req.InsuranceNumber != "" {
		user.InsuranceNumber = req.InsuranceNumber
	}
	if req.EmergencyContact != "" {
		user.EmergencyContact = req.EmergencyContact
	}
	if req.EmergencyPhone != "" {
		user.EmergencyPhone = req.EmergencyPhone
	}
	if req.SavedCards != nil {
		user.SavedCards = req.SavedCards
	}

	if err := u.userRepo.Update(ctx, u.db, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user %s: %+v", id, err)
		return nil, err
	}

	u.auditService.Record(ctx, u.db, &user.ID, entity.AuditActionProfileUpdate, entity.JSON{
		"user_id": user.ID.String(),
	})

	return converter.UserToResponse(user), nil
}
