package repository

import (
	"context"
	"errors"

	"pathlab-booking/internal/domain/entity"
	domainRepo "pathlab-booking/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sequenceRepository struct{}

func NewSequenceRepository() domainRepo.SequenceRepository {
	return &sequenceRepository{}
}

// NextDisplayID locks the partition's sequence row, computes the next value
// with the partition floor applied, and persists it. The row is created on
// first use.
func (r *sequenceRepository) NextDisplayID(ctx context.Context, tx *gorm.DB, role string) (int, error) {
	var seq entity.RoleSequence
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("role = ?", role).
		First(&seq).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
		seq = entity.RoleSequence{Role: role}
		next := seq.Next()
		seq.LastValue = next
		if err := tx.WithContext(ctx).Create(&seq).Error; err != nil {
			return 0, err
		}
		return next, nil
	}

	next := seq.Next()
	seq.LastValue = next
	if err := tx.WithContext(ctx).Save(&seq).Error; err != nil {
		return 0, err
	}
	return next, nil
}
