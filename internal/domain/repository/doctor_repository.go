package repository

import (
	"context"

	"pathlab-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	CreateBatch(ctx context.Context, db *gorm.DB, doctors []entity.Doctor) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error)
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*entity.Doctor, error)
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	DeleteByCode(ctx context.Context, db *gorm.DB, code string) (int64, error)
	DeleteAll(ctx context.Context, db *gorm.DB) error
}
