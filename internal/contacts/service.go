package contacts

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rolodexhq/rolodex-backend/pkg/db/models"
	pkgerrors "github.com/rolodexhq/rolodex-backend/pkg/errors"
)

const (
	notFoundMessage      = "contact not found"
	notAuthorizedMessage = "not authorized"
	removedMessage       = "Contact removed"
)

// Service defines the behavior needed by the contacts controller. Every
// operation takes the caller's email from verified claims; a contact is only
// visible to its owner.
type Service interface {
	Create(ctx context.Context, ownerEmail string, req ContactRequest) (*ContactDTO, error)
	List(ctx context.Context, ownerEmail string) ([]ContactDTO, error)
	Get(ctx context.Context, ownerEmail string, id uuid.UUID) (*ContactDTO, error)
	Update(ctx context.Context, ownerEmail string, id uuid.UUID, req ContactRequest) (*ContactDTO, error)
	Delete(ctx context.Context, ownerEmail string, id uuid.UUID) (*DeleteResponse, error)
}

type contactRepository interface {
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]models.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type service struct {
	contacts contactRepository
}

// ServiceParams bundles the dependencies required to build a contacts service.
type ServiceParams struct {
	ContactRepo contactRepository
}

// NewService constructs a contacts service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.ContactRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "contact repository required")
	}
	return &service{contacts: params.ContactRepo}, nil
}

func (s *service) Create(ctx context.Context, ownerEmail string, req ContactRequest) (*ContactDTO, error) {
	owner := strings.ToLower(strings.TrimSpace(ownerEmail))
	if owner == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing caller identity")
	}

	contact, err := s.contacts.Create(ctx, &models.Contact{
		OwnerEmail:  owner,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Email:       req.Email,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create contact")
	}
	return FromModel(contact), nil
}

func (s *service) List(ctx context.Context, ownerEmail string) ([]ContactDTO, error) {
	owner := strings.ToLower(strings.TrimSpace(ownerEmail))
	if owner == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing caller identity")
	}

	records, err := s.contacts.ListByOwner(ctx, owner)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list contacts")
	}
	return fromModels(records), nil
}

func (s *service) Get(ctx context.Context, ownerEmail string, id uuid.UUID) (*ContactDTO, error) {
	contact, err := s.authorize(ctx, ownerEmail, id)
	if err != nil {
		return nil, err
	}
	return FromModel(contact), nil
}

func (s *service) Update(ctx context.Context, ownerEmail string, id uuid.UUID, req ContactRequest) (*ContactDTO, error) {
	if _, err := s.authorize(ctx, ownerEmail, id); err != nil {
		return nil, err
	}

	updated, err := s.contacts.Update(ctx, id, map[string]any{
		"first_name":   req.FirstName,
		"last_name":    req.LastName,
		"phone_number": req.PhoneNumber,
		"address":      req.Address,
		"email":        req.Email,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update contact")
	}
	return FromModel(updated), nil
}

func (s *service) Delete(ctx context.Context, ownerEmail string, id uuid.UUID) (*DeleteResponse, error) {
	if _, err := s.authorize(ctx, ownerEmail, id); err != nil {
		return nil, err
	}

	deleted, err := s.contacts.Delete(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete contact")
	}
	if !deleted {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	return &DeleteResponse{Message: removedMessage}, nil
}

// authorize resolves the contact and enforces ownership. Existence is
// checked first so a caller probing someone else's contact still learns
// whether the id exists; the denial itself never reveals the owner.
func (s *service) authorize(ctx context.Context, ownerEmail string, id uuid.UUID) (*models.Contact, error) {
	owner := strings.ToLower(strings.TrimSpace(ownerEmail))
	if owner == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing caller identity")
	}

	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup contact")
	}
	if !strings.EqualFold(contact.OwnerEmail, owner) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, notAuthorizedMessage)
	}
	return contact, nil
}
