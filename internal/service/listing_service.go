package service

import (
	"context"
	"time"

	"collabhub/internal/cache"
	"collabhub/internal/lifecycle"
	"collabhub/internal/models"
	"collabhub/internal/repository"
	"collabhub/internal/validation"
)

type ListingService struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

type CreateListingInput struct {
	BrandID          uint
	Title            string
	Description      string
	Category         string
	Budget           int64
	Deadline         time.Time
	CampaignDeadline *time.Time
	Requirements     string
	Deliverables     string
}

type ListListingsInput struct {
	Category string
	Status   string
	Limit    int
	Offset   int
}

type UpdateListingInput struct {
	BrandID          uint
	ListingID        uint
	Title            string
	Description      string
	Category         string
	Budget           int64
	Deadline         *time.Time
	CampaignDeadline *time.Time
	Requirements     string
	Deliverables     string
}

type UpdateListingStatusInput struct {
	BrandID   uint
	ListingID uint
	Status    models.ListingStatus
}

func NewListingService(listingRepo repository.ListingRepository, userRepo repository.UserRepository) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

// CreateListing posts a new campaign. Only brand accounts may post; the
// listing starts active.
func (s *ListingService) CreateListing(ctx context.Context, in CreateListingInput) (*models.Listing, error) {
	brand, err := s.userRepo.GetByID(ctx, in.BrandID)
	if err != nil {
		return nil, err
	}
	if brand.UserType != models.UserTypeBrand {
		return nil, models.NewUnauthorizedError("Only brand accounts can create listings")
	}

	violations := validation.ValidateListing(validation.ListingInput{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Budget:      in.Budget,
		Deadline:    in.Deadline,
	}, s.now())
	if len(violations) > 0 {
		return nil, models.NewValidationErrors(violations)
	}

	listing := &models.Listing{
		BrandID:          in.BrandID,
		Title:            validation.Sanitize(in.Title),
		Description:      validation.Sanitize(in.Description),
		Category:         validation.Sanitize(in.Category),
		Budget:           in.Budget,
		Deadline:         in.Deadline,
		CampaignDeadline: in.CampaignDeadline,
		Requirements:     validation.Sanitize(in.Requirements),
		Deliverables:     validation.Sanitize(in.Deliverables),
		Status:           models.ListingStatusActive,
	}
	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	cache.InvalidateListingsFeed(ctx)
	return listing, nil
}

// GetListing returns a single listing, cache-aside. Listings are publicly
// readable.
func (s *ListingService) GetListing(ctx context.Context, listingID uint) (*models.Listing, error) {
	var listing *models.Listing
	err := cache.Aside(ctx, cache.ListingKey(listingID), &listing, cache.ListingTTL, func() error {
		var fetchErr error
		listing, fetchErr = s.listingRepo.GetByID(ctx, listingID)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// ListListings returns the browse feed. The unfiltered first page is served
// cache-aside; filtered or paginated queries go straight to the database.
func (s *ListingService) ListListings(ctx context.Context, in ListListingsInput) ([]models.Listing, error) {
	if in.Limit <= 0 || in.Limit > 100 {
		in.Limit = 20
	}

	if in.Category == "" && in.Status == "" && in.Offset == 0 && in.Limit <= 20 {
		var listings []models.Listing
		err := cache.Aside(ctx, cache.ListingsFeedKey(), &listings, cache.ListingsFeedTTL, func() error {
			var fetchErr error
			listings, fetchErr = s.listingRepo.List(ctx, repository.ListingFilters{Limit: in.Limit})
			return fetchErr
		})
		if err != nil {
			return nil, err
		}
		return listings, nil
	}

	if in.Status != "" && !lifecycle.ValidListingStatus(models.ListingStatus(in.Status)) {
		return nil, models.NewValidationError("Invalid listing status filter")
	}
	return s.listingRepo.List(ctx, repository.ListingFilters{
		Category: in.Category,
		Status:   in.Status,
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
}

// GetBrandListings returns the listings owned by a brand.
func (s *ListingService) GetBrandListings(ctx context.Context, brandID uint, limit, offset int) ([]models.Listing, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.listingRepo.GetByBrandID(ctx, brandID, limit, offset)
}

// UpdateListing edits a listing's content fields. Only the owning brand may
// edit, and only while the listing is active.
func (s *ListingService) UpdateListing(ctx context.Context, in UpdateListingInput) (*models.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, in.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.BrandID != in.BrandID {
		return nil, models.NewUnauthorizedError("You can only update your own listings")
	}
	if listing.Status != models.ListingStatusActive {
		return nil, models.NewConflictError("Only active listings can be edited")
	}

	if in.Title != "" {
		listing.Title = validation.Sanitize(in.Title)
	}
	if in.Description != "" {
		listing.Description = validation.Sanitize(in.Description)
	}
	if in.Category != "" {
		listing.Category = validation.Sanitize(in.Category)
	}
	if in.Budget != 0 {
		listing.Budget = in.Budget
	}
	if in.Deadline != nil {
		listing.Deadline = *in.Deadline
	}
	if in.CampaignDeadline != nil {
		listing.CampaignDeadline = in.CampaignDeadline
	}
	if in.Requirements != "" {
		listing.Requirements = validation.Sanitize(in.Requirements)
	}
	if in.Deliverables != "" {
		listing.Deliverables = validation.Sanitize(in.Deliverables)
	}

	violations := validation.ValidateListingEdit(validation.ListingInput{
		Title:       listing.Title,
		Description: listing.Description,
		Category:    listing.Category,
		Budget:      listing.Budget,
		Deadline:    listing.Deadline,
	}, s.now(), in.Deadline != nil)
	if len(violations) > 0 {
		return nil, models.NewValidationErrors(violations)
	}

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	cache.InvalidateListing(ctx, listing.ID)
	return listing, nil
}

// UpdateListingStatus moves a listing along its lifecycle. Only the owning
// brand may change status; the transition table rejects everything else and
// the listing is left unchanged on failure.
func (s *ListingService) UpdateListingStatus(ctx context.Context, in UpdateListingStatusInput) (*models.Listing, error) {
	if !lifecycle.ValidListingStatus(in.Status) {
		return nil, models.NewValidationError("Invalid listing status")
	}

	listing, err := s.listingRepo.GetByID(ctx, in.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.BrandID != in.BrandID {
		return nil, models.NewUnauthorizedError("You can only update your own listings")
	}
	if !lifecycle.CanTransitionListing(listing.Status, in.Status) {
		return nil, models.NewInvalidTransitionError(string(listing.Status), string(in.Status))
	}

	listing.Status = in.Status
	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	cache.InvalidateListing(ctx, listing.ID)
	return listing, nil
}
