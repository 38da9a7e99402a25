package usecase

import (
	"context"
	"testing"

	"pathlab-booking/internal/delivery/dto"
	"pathlab-booking/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// memoryUserStore wires a mockUserRepository to an in-memory map keyed by
// normalized email, so signup tests exercise the real dedupe flow.
func memoryUserStore() (*mockUserRepository, map[string]*entity.User) {
	store := make(map[string]*entity.User)
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
			return store[email], nil
		},
		CreateFunc: func(ctx context.Context, db *gorm.DB, user *entity.User) error {
			store[user.Email] = user
			return nil
		},
	}
	return repo, store
}

func newSignupUsecase(userRepo *mockUserRepository, seqRepo *mockSequenceRepository) *authUsecase {
	return NewAuthUsecase(nil, logrus.New(), userRepo, seqRepo, nil, nil, &mockAuditService{}).(*authUsecase)
}

func TestSignupDuplicateEmailCaseAndSpaceInsensitive(t *testing.T) {
	userRepo, store := memoryUserStore()
	uc := newSignupUsecase(userRepo, &mockSequenceRepository{})

	first, err := uc.signup(context.Background(), nil, &dto.SignupRequest{
		Name:     "John Doe",
		Email:    "a@b.com",
		Password: "secret1",
	})
	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", first.Email)

	_, err = uc.signup(context.Background(), nil, &dto.SignupRequest{
		Name:     "John Again",
		Email:    "A@B.com ",
		Password: "secret2",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Len(t, store, 1)
}

func TestSignupDisplayIDAllocation(t *testing.T) {
	userRepo, store := memoryUserStore()
	uc := newSignupUsecase(userRepo, &mockSequenceRepository{})

	c1, err := uc.signup(context.Background(), nil, &dto.SignupRequest{
		Name: "First Customer", Email: "c1@example.com", Password: "secret1",
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.CustomerDisplayIDFloor, c1.DisplayID)
	assert.Equal(t, entity.RoleCustomer, c1.Role, "role defaults to customer")

	c2, err := uc.signup(context.Background(), nil, &dto.SignupRequest{
		Name: "Second Customer", Email: "c2@example.com", Password: "secret1",
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.CustomerDisplayIDFloor+1, c2.DisplayID)

	a1, err := uc.signup(context.Background(), nil, &dto.SignupRequest{
		Name: "First Admin", Email: "a1@example.com", Password: "secret1", Role: entity.RoleAdmin,
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.AdminDisplayIDFloor, a1.DisplayID, "admin partition starts at its own floor")

	assert.Len(t, store, 3)
}

func TestSignupStoresPasswordHash(t *testing.T) {
	userRepo, _ := memoryUserStore()
	uc := newSignupUsecase(userRepo, &mockSequenceRepository{})

	user, err := uc.signup(context.Background(), nil, &dto.SignupRequest{
		Name: "John Doe", Email: "john@example.com", Password: "secret1",
	})

	assert.NoError(t, err)
	assert.NotEqual(t, "secret1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))
}

func TestSignupConcurrentDuplicateConvergesOnUniqueIndex(t *testing.T) {
	userRepo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, db *gorm.DB, user *entity.User) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uniq_users_email"}
		},
	}
	uc := newSignupUsecase(userRepo, &mockSequenceRepository{})

	_, err := uc.signup(context.Background(), nil, &dto.SignupRequest{
		Name: "John Doe", Email: "john@example.com", Password: "secret1",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}
