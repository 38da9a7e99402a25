package usecase

import (
	"context"
	"errors"
	"time"

	"pathlab-booking/internal/domain/entity"
	"pathlab-booking/internal/domain/repository"
	"pathlab-booking/pkg/timeslot"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Function-field mocks. Each method delegates to its Func field when set and
// falls back to a harmless default otherwise, so individual tests only wire
// the calls they care about.

var _ repository.DoctorRepository = (*mockDoctorRepository)(nil)

type mockDoctorRepository struct {
	CreateFunc       func(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	CreateBatchFunc  func(ctx context.Context, db *gorm.DB, doctors []entity.Doctor) error
	FindAllFunc      func(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error)
	FindByCodeFunc   func(ctx context.Context, db *gorm.DB, code string) (*entity.Doctor, error)
	FindByIDFunc     func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	UpdateFunc       func(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	DeleteByCodeFunc func(ctx context.Context, db *gorm.DB, code string) (int64, error)
	DeleteAllFunc    func(ctx context.Context, db *gorm.DB) error
}

func (m *mockDoctorRepository) Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, doctor)
	}
	return nil
}

func (m *mockDoctorRepository) CreateBatch(ctx context.Context, db *gorm.DB, doctors []entity.Doctor) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, db, doctors)
	}
	return nil
}

func (m *mockDoctorRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, db)
	}
	return nil, nil
}

func (m *mockDoctorRepository) FindByCode(ctx context.Context, db *gorm.DB, code string) (*entity.Doctor, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, db, code)
	}
	return nil, nil
}

func (m *mockDoctorRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, db, id)
	}
	return nil, nil
}

func (m *mockDoctorRepository) Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, db, doctor)
	}
	return nil
}

func (m *mockDoctorRepository) DeleteByCode(ctx context.Context, db *gorm.DB, code string) (int64, error) {
	if m.DeleteByCodeFunc != nil {
		return m.DeleteByCodeFunc(ctx, db, code)
	}
	return 0, nil
}

func (m *mockDoctorRepository) DeleteAll(ctx context.Context, db *gorm.DB) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx, db)
	}
	return nil
}

var _ repository.UserRepository = (*mockUserRepository)(nil)

type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, db *gorm.DB, user *entity.User) error
	CreateBatchFunc func(ctx context.Context, db *gorm.DB, users []entity.User) error
	FindByEmailFunc func(ctx context.Context, db *gorm.DB, email string) (*entity.User, error)
	FindByIDFunc    func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindAllFunc     func(ctx context.Context, db *gorm.DB) ([]entity.User, error)
	UpdateFunc      func(ctx context.Context, db *gorm.DB, user *entity.User) error
	DeleteAllFunc   func(ctx context.Context, db *gorm.DB) error
}

func (m *mockUserRepository) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, user)
	}
	return nil
}

func (m *mockUserRepository) CreateBatch(ctx context.Context, db *gorm.DB, users []entity.User) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, db, users)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, db, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, db, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, db)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, db *gorm.DB, user *entity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, db, user)
	}
	return nil
}

func (m *mockUserRepository) DeleteAll(ctx context.Context, db *gorm.DB) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx, db)
	}
	return nil
}

var _ repository.SequenceRepository = (*mockSequenceRepository)(nil)

// mockSequenceRepository allocates display ids from an in-memory sequence
// table, mirroring the floor semantics of the real allocator.
type mockSequenceRepository struct {
	NextDisplayIDFunc func(ctx context.Context, tx *gorm.DB, role string) (int, error)

	last map[string]int
}

func (m *mockSequenceRepository) NextDisplayID(ctx context.Context, tx *gorm.DB, role string) (int, error) {
	if m.NextDisplayIDFunc != nil {
		return m.NextDisplayIDFunc(ctx, tx, role)
	}
	if m.last == nil {
		m.last = make(map[string]int)
	}
	seq := entity.RoleSequence{Role: role, LastValue: m.last[role]}
	next := seq.Next()
	m.last[role] = next
	return next, nil
}

var _ repository.AppointmentRepository = (*mockAppointmentRepository)(nil)

type mockAppointmentRepository struct {
	CreateFunc                    func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByIDFunc                  func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAllFunc                   func(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
	FindByPatientIDFunc           func(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindActiveByDoctorAndDateFunc func(ctx context.Context, db *gorm.DB, doctorCode string, visitDate time.Time) ([]entity.Appointment, error)
	FindActiveFromDateFunc        func(ctx context.Context, db *gorm.DB, from time.Time, limit, offset int) ([]entity.Appointment, error)
	SaveFunc                      func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	DeleteAllFunc                 func(ctx context.Context, db *gorm.DB) error
}

func (m *mockAppointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, appointment)
	}
	return nil
}

func (m *mockAppointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, db, id)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, db)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	if m.FindByPatientIDFunc != nil {
		return m.FindByPatientIDFunc(ctx, db, patientID)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) FindActiveByDoctorAndDate(ctx context.Context, db *gorm.DB, doctorCode string, visitDate time.Time) ([]entity.Appointment, error) {
	if m.FindActiveByDoctorAndDateFunc != nil {
		return m.FindActiveByDoctorAndDateFunc(ctx, db, doctorCode, visitDate)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) FindActiveFromDate(ctx context.Context, db *gorm.DB, from time.Time, limit, offset int) ([]entity.Appointment, error) {
	if m.FindActiveFromDateFunc != nil {
		return m.FindActiveFromDateFunc(ctx, db, from, limit, offset)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) Save(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, db, appointment)
	}
	return nil
}

func (m *mockAppointmentRepository) DeleteAll(ctx context.Context, db *gorm.DB) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx, db)
	}
	return nil
}

var _ repository.InventoryRepository = (*mockInventoryRepository)(nil)

type mockInventoryRepository struct {
	CreateFunc         func(ctx context.Context, db *gorm.DB, item *entity.InventoryItem) error
	CreateBatchFunc    func(ctx context.Context, db *gorm.DB, items []entity.InventoryItem) error
	FindAllFunc        func(ctx context.Context, db *gorm.DB) ([]entity.InventoryItem, error)
	FindByIDFunc       func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.InventoryItem, error)
	IncrementStockFunc func(ctx context.Context, db *gorm.DB, id uuid.UUID, quantity int) (int64, error)
	DeleteAllFunc      func(ctx context.Context, db *gorm.DB) error
}

func (m *mockInventoryRepository) Create(ctx context.Context, db *gorm.DB, item *entity.InventoryItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, item)
	}
	return nil
}

func (m *mockInventoryRepository) CreateBatch(ctx context.Context, db *gorm.DB, items []entity.InventoryItem) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, db, items)
	}
	return nil
}

func (m *mockInventoryRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.InventoryItem, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, db)
	}
	return nil, nil
}

func (m *mockInventoryRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.InventoryItem, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, db, id)
	}
	return nil, nil
}

func (m *mockInventoryRepository) IncrementStock(ctx context.Context, db *gorm.DB, id uuid.UUID, quantity int) (int64, error) {
	if m.IncrementStockFunc != nil {
		return m.IncrementStockFunc(ctx, db, id, quantity)
	}
	return 0, errors.New("IncrementStockFunc not set")
}

func (m *mockInventoryRepository) DeleteAll(ctx context.Context, db *gorm.DB) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx, db)
	}
	return nil
}

// mockSlotGuard records reserve/release calls so tests can assert the
// compensation path.
type mockSlotGuard struct {
	ReserveFunc func(ctx context.Context, doctorCode string, date timeslot.Date, slot timeslot.Slot) error
	ReleaseFunc func(ctx context.Context, doctorCode string, date timeslot.Date, slot timeslot.Slot) error

	Reserved []string
	Released []string
}

func (m *mockSlotGuard) Reserve(ctx context.Context, doctorCode string, date timeslot.Date, slot timeslot.Slot) error {
	if m.ReserveFunc != nil {
		if err := m.ReserveFunc(ctx, doctorCode, date, slot); err != nil {
			return err
		}
	}
	m.Reserved = append(m.Reserved, doctorCode+":"+date.String()+":"+slot.Label())
	return nil
}

func (m *mockSlotGuard) Release(ctx context.Context, doctorCode string, date timeslot.Date, slot timeslot.Slot) error {
	if m.ReleaseFunc != nil {
		if err := m.ReleaseFunc(ctx, doctorCode, date, slot); err != nil {
			return err
		}
	}
	m.Released = append(m.Released, doctorCode+":"+date.String()+":"+slot.Label())
	return nil
}

// mockAuditService collects recorded actions.
type mockAuditService struct {
	Actions []string
}

func (m *mockAuditService) Record(ctx context.Context, db *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) {
	m.Actions = append(m.Actions, action)
}
