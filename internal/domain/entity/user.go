package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role names
const (
	RoleAdmin    = "Admin"
	RoleCustomer = "Customer"
)

// Display id floors per role partition. Admins count up from 1,
// customers from 10.
const (
	AdminDisplayIDFloor    = 1
	CustomerDisplayIDFloor = 10
)

// DisplayIDFloor returns the first display id of a role partition.
func DisplayIDFloor(role string) int {
	if role == RoleAdmin {
		return AdminDisplayIDFloor
	}
	return CustomerDisplayIDFloor
}

// SavedCard holds a display-only reference to a stored payment card.
// No real card data beyond brand, last four digits and expiry is kept.
type SavedCard struct {
	Brand  string `json:"brand"`
	Last4  string `json:"last4"`
	Expiry string `json:"expiry"`
}

// SavedCards is stored as a JSONB column
type SavedCards []SavedCard

// Value implements driver.Valuer
func (c SavedCards) Value() (driver.Value, error) {
	if len(c) == 0 {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner
func (c *SavedCards) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("failed to unmarshal saved cards value:", value))
	}

	var result SavedCards
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*c = result
	return nil
}

// User represents an account of the booking application. Email is stored
// lower-cased and trimmed; DisplayID is the human-readable sequential id
// allocated per role partition.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DisplayID int       `gorm:"not null;index" json:"display_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;default:'Customer';index" json:"role"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone,omitempty"`

	CountryCode       string `gorm:"type:varchar(10);default:'+61'" json:"country_code,omitempty"`
	DateOfBirth       string `gorm:"type:varchar(20)" json:"date_of_birth,omitempty"`
	Address           string `gorm:"type:text" json:"address,omitempty"`
	MedicalNumber     string `gorm:"type:varchar(50)" json:"medical_number,omitempty"`
	InsuranceProvider string `gorm:"type:varchar(100)" json:"insurance_provider,omitempty"`
	InsuranceNumber   string `gorm:"type:varchar(50)" json:"insurance_number,omitempty"`
	EmergencyContact  string `gorm:"type:varchar(255)" json:"emergency_contact,omitempty"`
	EmergencyPhone    string `gorm:"type:varchar(30)" json:"emergency_phone,omitempty"`

	JoinedDate time.Time  `gorm:"type:date" json:"joined_date"`
	SavedCards SavedCards `gorm:"type:jsonb" json:"saved_cards,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
