package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor represents a catalog entry for a clinic doctor.
// Code is the public identifier used by clients (doc1, doc2, ...).
type Doctor struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code            string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Specialty       string          `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Location        string          `gorm:"type:varchar(255);not null" json:"location"`
	LocationID      string          `gorm:"type:varchar(20);index" json:"location_id"`
	Rating          float64         `gorm:"type:decimal(3,1)" json:"rating"`
	Reviews         int             `gorm:"default:0" json:"reviews"`
	Available       bool            `gorm:"not null;default:true" json:"available"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"consultation_fee"`
	About           string          `gorm:"type:text" json:"about,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}
