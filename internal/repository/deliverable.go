package repository

import (
	"context"
	"errors"

	"collabhub/internal/models"

	"gorm.io/gorm"
)

// DeliverableRepository defines the interface for deliverable data operations
type DeliverableRepository interface {
	Create(ctx context.Context, deliverable *models.Deliverable) error
	GetByID(ctx context.Context, id uint) (*models.Deliverable, error)
	GetByProposalID(ctx context.Context, proposalID uint) ([]models.Deliverable, error)
	Update(ctx context.Context, deliverable *models.Deliverable) error
}

type deliverableRepository struct {
	db *gorm.DB
}

// NewDeliverableRepository creates a new deliverable repository
func NewDeliverableRepository(db *gorm.DB) DeliverableRepository {
	return &deliverableRepository{db: db}
}

func (r *deliverableRepository) Create(ctx context.Context, deliverable *models.Deliverable) error {
	return r.db.WithContext(ctx).Create(deliverable).Error
}

func (r *deliverableRepository) GetByID(ctx context.Context, id uint) (*models.Deliverable, error) {
	var deliverable models.Deliverable
	err := r.db.WithContext(ctx).
		Preload("Proposal").
		Preload("Proposal.Listing").
		First(&deliverable, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Deliverable", id)
		}
		return nil, err
	}
	return &deliverable, nil
}

func (r *deliverableRepository) GetByProposalID(ctx context.Context, proposalID uint) ([]models.Deliverable, error) {
	var deliverables []models.Deliverable
	err := r.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Order("created_at ASC").
		Find(&deliverables).Error
	if err != nil {
		return nil, err
	}
	return deliverables, nil
}

func (r *deliverableRepository) Update(ctx context.Context, deliverable *models.Deliverable) error {
	return r.db.WithContext(ctx).Save(deliverable).Error
}
