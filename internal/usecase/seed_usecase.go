package usecase

import (
	"context"
	"fmt"
	"time"

	"pathlab-booking/internal/domain/entity"
	"pathlab-booking/internal/domain/repository"
	"pathlab-booking/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Shared password for the demo accounts created by SeedAll.
const seedPassword = "123"

type SeedResult struct {
	Doctors        int `json:"doctors"`
	Users          int `json:"users"`
	InventoryItems int `json:"inventory_items"`
}

// SeedUsecase restores the fixed demo dataset. Everything runs in one
// transaction; a half-seeded database is never observable.
type SeedUsecase interface {
	SeedAll(ctx context.Context) (*SeedResult, error)
}

// SlotFlusher clears every held slot, implemented by service.SlotGuard.
type SlotFlusher interface {
	FlushHolds(ctx context.Context) error
}

type seedUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	userRepo        repository.UserRepository
	appointmentRepo repository.AppointmentRepository
	inventoryRepo   repository.InventoryRepository
	slotFlusher     SlotFlusher
	auditService    service.AuditService
}

func NewSeedUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
	inventoryRepo repository.InventoryRepository,
	slotFlusher SlotFlusher,
	auditService service.AuditService,
) SeedUsecase {
	return &seedUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
		inventoryRepo:   inventoryRepo,
		slotFlusher:     slotFlusher,
		auditService:    auditService,
	}
}

// SeedAll wipes doctors, users, appointments and inventory and reinserts the
// demo fixture. The display id sequences are rewound to just past the seeded
// accounts so the next signup continues from there. Audit logs are kept.
func (u *seedUsecase) SeedAll(ctx context.Context) (*SeedResult, error) {
	// All demo accounts share one password, so one hash covers them all.
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	doctors := seedDoctors()
	items := seedInventory()
	users := seedUsers()
	now := time.Now()
	for i := range users {
		users[i].Password = string(hash)
		users[i].JoinedDate = now
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	if err := u.appointmentRepo.DeleteAll(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to clear appointments: %w", err)
	}
	if err := u.doctorRepo.DeleteAll(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to clear doctors: %w", err)
	}
	if err := u.userRepo.DeleteAll(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to clear users: %w", err)
	}
	if err := u.inventoryRepo.DeleteAll(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to clear inventory: %w", err)
	}
	if err := tx.Where("1 = 1").Delete(&entity.RoleSequence{}).Error; err != nil {
		return nil, fmt.Errorf("failed to clear role sequences: %w", err)
	}

	if err := u.doctorRepo.CreateBatch(ctx, tx, doctors); err != nil {
		return nil, fmt.Errorf("failed to seed doctors: %w", err)
	}
	if err := u.userRepo.CreateBatch(ctx, tx, users); err != nil {
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}
	if err := u.inventoryRepo.CreateBatch(ctx, tx, items); err != nil {
		return nil, fmt.Errorf("failed to seed inventory: %w", err)
	}
	for _, seq := range seedSequences() {
		if err := tx.Create(&seq).Error; err != nil {
			return nil, fmt.Errorf("failed to seed %s sequence: %w", seq.Role, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	// Stale Redis holds would block slots of the appointments just deleted.
	if u.slotFlusher != nil {
		if err := u.slotFlusher.FlushHolds(ctx); err != nil {
			u.log.Warnf("Failed to flush slot holds after seed: %+v", err)
		}
	}

	result := &SeedResult{
		Doctors:        len(doctors),
		Users:          len(users),
		InventoryItems: len(items),
	}
	u.log.Infof("Database reseeded: %d doctors, %d users, %d inventory items", result.Doctors, result.Users, result.InventoryItems)
	u.auditService.Record(ctx, u.db, nil, entity.AuditActionSeedRun, entity.JSON{
		"doctors":   result.Doctors,
		"users":     result.Users,
		"inventory": result.InventoryItems,
	})
	return result, nil
}
