package entity

// RoleSequence holds the last display id handed out within a role
// partition. Rows are updated under a row lock so two concurrent signups
// can never read the same value.
type RoleSequence struct {
	Role      string `gorm:"type:varchar(20);primaryKey" json:"role"`
	LastValue int    `gorm:"not null" json:"last_value"`
}

func (RoleSequence) TableName() string {
	return "role_sequences"
}

// Next returns the display id that follows the current sequence state,
// respecting the partition floor.
func (s *RoleSequence) Next() int {
	floor := DisplayIDFloor(s.Role)
	if s.LastValue < floor {
		return floor
	}
	return s.LastValue + 1
}
