package repository

import (
	"context"

	"gorm.io/gorm"
)

type SequenceRepository interface {
	// NextDisplayID allocates the next display id within the role partition.
	// Must be called inside a transaction; the sequence row is row-locked so
	// concurrent signups cannot observe the same value.
	NextDisplayID(ctx context.Context, tx *gorm.DB, role string) (int, error)
}
