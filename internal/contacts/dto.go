package contacts

import (
	"time"

	"github.com/google/uuid"

	"github.com/rolodexhq/rolodex-backend/pkg/db/models"
)

// ContactRequest is the create/update payload. The owner is never part of
// the body; it always comes from the caller's verified claims.
type ContactRequest struct {
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	PhoneNumber string  `json:"phone_number" validate:"required"`
	Address     *string `json:"address,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
}

// ContactDTO is the transport shape of a contact record.
type ContactDTO struct {
	ID          uuid.UUID `json:"id"`
	OwnerEmail  string    `json:"owner_email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Address     *string   `json:"address,omitempty"`
	Email       *string   `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DeleteResponse acknowledges a removed contact.
type DeleteResponse struct {
	Message string `json:"message"`
}

func FromModel(c *models.Contact) *ContactDTO {
	if c == nil {
		return nil
	}

	return &ContactDTO{
		ID:          c.ID,
		OwnerEmail:  c.OwnerEmail,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		Email:       c.Email,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func fromModels(records []models.Contact) []ContactDTO {
	out := make([]ContactDTO, 0, len(records))
	for i := range records {
		out = append(out, *FromModel(&records[i]))
	}
	return out
}
