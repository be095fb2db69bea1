package contacts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rolodexhq/rolodex-backend/pkg/db/models"
)

// Repository exposes contact persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a contacts repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new contact and returns the persisted model.
func (r *Repository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	if err := r.db.WithContext(ctx).Create(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

// ListByOwner returns every contact owned by the given email, newest first.
func (r *Repository) ListByOwner(ctx context.Context, ownerEmail string) ([]models.Contact, error) {
	var records []models.Contact
	if err := r.db.WithContext(ctx).
		Where("owner_email = ?", ownerEmail).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetByID loads a contact regardless of owner. The ownership decision is the
// service's, so existence and authorization can map to different failures.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.WithContext(ctx).First(&contact, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// Update overwrites the mutable fields of a contact and returns the
// refreshed model. OwnerEmail is deliberately not part of the update set.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Contact, error) {
	delete(fields, "owner_email")
	if err := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a contact by id and reports whether a row was deleted.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Contact{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
