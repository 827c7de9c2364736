package repository

import (
	"context"
	"errors"

	"collabhub/internal/models"

	"gorm.io/gorm"
)

// ProposalRepository defines the interface for proposal data operations
type ProposalRepository interface {
	Create(ctx context.Context, proposal *models.Proposal) error
	GetByID(ctx context.Context, id uint) (*models.Proposal, error)
	GetByListingID(ctx context.Context, listingID uint, limit, offset int) ([]models.Proposal, error)
	GetByInfluencerID(ctx context.Context, influencerID uint, limit, offset int) ([]models.Proposal, error)
	ExistsForListingAndInfluencer(ctx context.Context, listingID, influencerID uint) (bool, error)
	GetByListingAndInfluencer(ctx context.Context, listingID, influencerID uint) (*models.Proposal, error)
	Update(ctx context.Context, proposal *models.Proposal) error
}

type proposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository creates a new proposal repository
func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

func (r *proposalRepository) Create(ctx context.Context, proposal *models.Proposal) error {
	err := r.db.WithContext(ctx).Create(proposal).Error
	if isUniqueViolation(err) {
		// The composite index on (listing_id, influencer_id) backstops the
		// service-level duplicate check against concurrent submissions.
		return models.NewDuplicateProposalError(proposal.ListingID)
	}
	return err
}

func (r *proposalRepository) GetByID(ctx context.Context, id uint) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.WithContext(ctx).
		Preload("Listing").
		First(&proposal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Proposal", id)
		}
		return nil, err
	}
	return &proposal, nil
}

func (r *proposalRepository) GetByListingID(ctx context.Context, listingID uint, limit, offset int) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := r.db.WithContext(ctx).
		Preload("Influencer").
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&proposals).Error
	if err != nil {
		return nil, err
	}
	return proposals, nil
}

func (r *proposalRepository) GetByInfluencerID(ctx context.Context, influencerID uint, limit, offset int) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := r.db.WithContext(ctx).
		Preload("Listing").
		Where("influencer_id = ?", influencerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&proposals).Error
	if err != nil {
		return nil, err
	}
	return proposals, nil
}

func (r *proposalRepository) ExistsForListingAndInfluencer(ctx context.Context, listingID, influencerID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Proposal{}).
		Where("listing_id = ? AND influencer_id = ?", listingID, influencerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByListingAndInfluencer returns the influencer's proposal on a listing,
// or nil when they have not applied.
func (r *proposalRepository) GetByListingAndInfluencer(ctx context.Context, listingID, influencerID uint) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.WithContext(ctx).
		Where("listing_id = ? AND influencer_id = ?", listingID, influencerID).
		First(&proposal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &proposal, nil
}

func (r *proposalRepository) Update(ctx context.Context, proposal *models.Proposal) error {
	return r.db.WithContext(ctx).Save(proposal).Error
}
