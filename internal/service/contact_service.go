package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/siaga-go-api/internal/dto"
	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/repository"
)

// ErrContactNotFound indicates an unknown emergency-contact identifier.
var ErrContactNotFound = errors.New("emergency contact not found")

// ContactService manages the emergency-contact directory.
type ContactService interface {
	List(ctx context.Context) ([]models.EmergencyContact, error)
	Create(ctx context.Context, payload dto.ContactRequest) (models.EmergencyContact, error)
	Update(ctx context.Context, id string, payload dto.ContactRequest) (models.EmergencyContact, error)
}

type contactService struct {
	contacts repository.ContactRepository
	logger   zerolog.Logger
	now      func() time.Time
}

// NewContactService constructs a contact service.
func NewContactService(contacts repository.ContactRepository, logger zerolog.Logger) ContactService {
	return &contactService{
		contacts: contacts,
		logger:   logger.With().Str("component", "contact_service").Logger(),
		now:      time.Now,
	}
}

func (s *contactService) List(ctx context.Context) ([]models.EmergencyContact, error) {
	return s.contacts.List(ctx)
}

func (s *contactService) Create(ctx context.Context, payload dto.ContactRequest) (models.EmergencyContact, error) {
	contact := models.EmergencyContact{
		Name:        payload.Name,
		Phone:       payload.Phone,
		Type:        payload.Type,
		Description: payload.Description,
		UpdatedAt:   s.now().UTC(),
	}

	if err := s.contacts.Create(ctx, &contact); err != nil {
		return models.EmergencyContact{}, err
	}

	return contact, nil
}

func (s *contactService) Update(ctx context.Context, id string, payload dto.ContactRequest) (models.EmergencyContact, error) {
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.EmergencyContact{}, ErrContactNotFound
		}
		return models.EmergencyContact{}, err
	}

	contact.Name = payload.Name
	contact.Phone = payload.Phone
	contact.Type = payload.Type
	contact.Description = payload.Description
	contact.UpdatedAt = s.now().UTC()

	if err := s.contacts.Update(ctx, &contact); err != nil {
		return models.EmergencyContact{}, err
	}

	return contact, nil
}
