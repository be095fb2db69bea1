package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is a record owned by exactly one user. OwnerEmail is keyed on the
// owning user's email, is set only from verified claims, and never changes
// after creation.
type Contact struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerEmail  string    `gorm:"column:owner_email;type:text;not null;index:idx_contacts_owner_email"`
	FirstName   string    `gorm:"column:first_name;not null"`
	LastName    string    `gorm:"column:last_name;not null"`
	PhoneNumber string    `gorm:"column:phone_number;not null"`
	Address     *string   `gorm:"column:address"`
	Email       *string   `gorm:"column:email"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
