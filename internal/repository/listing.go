package repository

import (
	"context"
	"errors"

	"collabhub/internal/models"

	"gorm.io/gorm"
)

// ListingFilters narrows the browse feed. Zero values mean "no filter".
type ListingFilters struct {
	Category string
	Status   string
	Limit    int
	Offset   int
}

// ListingRepository defines the interface for listing data operations
type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	GetByID(ctx context.Context, id uint) (*models.Listing, error)
	List(ctx context.Context, filters ListingFilters) ([]models.Listing, error)
	GetByBrandID(ctx context.Context, brandID uint, limit, offset int) ([]models.Listing, error)
	Update(ctx context.Context, listing *models.Listing) error
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

// proposalsCountSelect annotates each row with its live proposal count so the
// feed can render demand without an N+1.
const proposalsCountSelect = "listings.*, (SELECT COUNT(*) FROM proposals WHERE proposals.listing_id = listings.id AND proposals.deleted_at IS NULL) AS proposals_count"

func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) GetByID(ctx context.Context, id uint) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.WithContext(ctx).
		Select(proposalsCountSelect).
		First(&listing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Listing", id)
		}
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) List(ctx context.Context, filters ListingFilters) ([]models.Listing, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Select(proposalsCountSelect).
		Order("created_at DESC")

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var listings []models.Listing
	if err := query.Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) GetByBrandID(ctx context.Context, brandID uint, limit, offset int) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Select(proposalsCountSelect).
		Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) Update(ctx context.Context, listing *models.Listing) error {
	return r.db.WithContext(ctx).Save(listing).Error
}
