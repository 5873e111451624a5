package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/siaga-go-api/internal/models"
)

// ContactRepository provides access to the emergency-contact directory.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.EmergencyContact) error
	Update(ctx context.Context, contact *models.EmergencyContact) error
	GetByID(ctx context.Context, id string) (models.EmergencyContact, error)
	List(ctx context.Context) ([]models.EmergencyContact, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository constructs a contact repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.EmergencyContact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) Update(ctx context.Context, contact *models.EmergencyContact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (models.EmergencyContact, error) {
	var contact models.EmergencyContact
	if err := r.db.WithContext(ctx).First(&contact, "id = ?", id).Error; err != nil {
		return models.EmergencyContact{}, err
	}

	return contact, nil
}

func (r *contactRepository) List(ctx context.Context) ([]models.EmergencyContact, error) {
	var contacts []models.EmergencyContact
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&contacts).Error; err != nil {
		return nil, err
	}

	return contacts, nil
}
