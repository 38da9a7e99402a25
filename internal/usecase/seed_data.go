package usecase

import (
	"pathlab-booking/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Fixed demo dataset. Reseeding always restores exactly these records, so
// demo environments can be reset to a known state at any time.

func seedDoctors() []entity.Doctor {
	fee := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	return []entity.Doctor{
		{Code: "doc1", Name: "Dr. Sarah Johnson", Specialty: "Pathologist", Location: "Sydney CBD", LocationID: "loc1", Rating: 4.9, Reviews: 124, Available: true, ConsultationFee: fee(150)},
		{Code: "doc2", Name: "Dr. Michael Chen", Specialty: "Lab Director", Location: "Parramatta", LocationID: "loc2", Rating: 4.8, Reviews: 98, Available: true, ConsultationFee: fee(180)},
		{Code: "doc3", Name: "Dr. Emily Watson", Specialty: "Cardiologist", Location: "Wollongong", LocationID: "loc3", Rating: 4.7, Reviews: 215, Available: false, ConsultationFee: fee(200)},
		{Code: "doc4", Name: "Dr. James Wilson", Specialty: "General Practitioner", Location: "Sydney CBD", LocationID: "loc1", Rating: 4.6, Reviews: 89, Available: true, ConsultationFee: fee(120)},
		{Code: "doc5", Name: "Dr. Linda Brown", Specialty: "Dermatologist", Location: "Parramatta", LocationID: "loc2", Rating: 4.9, Reviews: 310, Available: true, ConsultationFee: fee(160)},
		{Code: "doc6", Name: "Dr. Robert Davis", Specialty: "Pediatrician", Location: "Wollongong", LocationID: "loc3", Rating: 5.0, Reviews: 150, Available: true, ConsultationFee: fee(140)},
		{Code: "doc7", Name: "Dr. William Miller", Specialty: "Neurologist", Location: "Sydney CBD", LocationID: "loc1", Rating: 4.8, Reviews: 75, Available: false, ConsultationFee: fee(220)},
		{Code: "doc8", Name: "Dr. Elizabeth Taylor", Specialty: "Psychiatrist", Location: "Parramatta", LocationID: "loc2", Rating: 4.7, Reviews: 90, Available: true, ConsultationFee: fee(190)},
		{Code: "doc9", Name: "Dr. David Anderson", Specialty: "Orthopedic Surgeon", Location: "Wollongong", LocationID: "loc3", Rating: 4.9, Reviews: 200, Available: true, ConsultationFee: fee(250)},
		{Code: "doc10", Name: "Dr. Jennifer Thomas", Specialty: "Ophthalmologist", Location: "Sydney CBD", LocationID: "loc1", Rating: 4.6, Reviews: 112, Available: true, ConsultationFee: fee(170)},
		{Code: "doc11", Name: "Dr. Christopher Martinez", Specialty: "Dentist", Location: "Parramatta", LocationID: "loc2", Rating: 4.8, Reviews: 300, Available: true, ConsultationFee: fee(130)},
		{Code: "doc12", Name: "Dr. Jessica Jackson", Specialty: "ENT Specialist", Location: "Wollongong", LocationID: "loc3", Rating: 4.7, Reviews: 85, Available: true, ConsultationFee: fee(160)},
		{Code: "doc13", Name: "Dr. Daniel White", Specialty: "Gynecologist", Location: "Sydney CBD", LocationID: "loc1", Rating: 4.9, Reviews: 180, Available: true, ConsultationFee: fee(175)},
		{Code: "doc14", Name: "Dr. Matthew Harris", Specialty: "Urologist", Location: "Parramatta", LocationID: "loc2", Rating: 4.5, Reviews: 60, Available: true, ConsultationFee: fee(190)},
		{Code: "doc15", Name: "Dr. Ashley Martin", Specialty: "Oncologist", Location: "Sydney CBD", LocationID: "loc1", Rating: 4.9, Reviews: 95, Available: false, ConsultationFee: fee(300)},
	}
}

func seedInventory() []entity.InventoryItem {
	return []entity.InventoryItem{
		{Name: "Blood Collection Tubes", Category: "Supplies", Stock: 150, ReorderLevel: 50},
		{Name: "Test Reagents - CBC", Category: "Reagents", Stock: 25, ReorderLevel: 30},
		{Name: "Sterile Gloves (Box)", Category: "PPE", Stock: 80, ReorderLevel: 40},
		{Name: "Microscope Slides", Category: "Equipment", Stock: 10, ReorderLevel: 20},
	}
}

// seedUsers returns the demo accounts without password hashes; the seed
// usecase hashes the shared demo password at insert time.
func seedUsers() []entity.User {
	return []entity.User{
		{DisplayID: 1, Name: "Admin User", Email: "admin123@gmail.com", Role: entity.RoleAdmin, Status: "Active", Phone: "0412345678"},
		{DisplayID: 10, Name: "John Doe", Email: "john@example.com", Role: entity.RoleCustomer, Status: "Active", Phone: "0487654321", Address: "123 Sydney St", DateOfBirth: "1990-01-01"},
		{DisplayID: 11, Name: "Jane Smith", Email: "jane@example.com", Role: entity.RoleCustomer, Status: "Active", Phone: "0411223344"},
	}
}

// seedSequences resumes display id allocation after the seeded accounts.
func seedSequences() []entity.RoleSequence {
	return []entity.RoleSequence{
		{Role: entity.RoleAdmin, LastValue: 1},
		{Role: entity.RoleCustomer, LastValue: 11},
	}
}
