package service

import (
	"context"
	"testing"
	"time"

	"collabhub/internal/models"
	"collabhub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testClock }

func brandUserRepo() *userRepoStub {
	repo := noopUserRepo()
	repo.getByIDFn = func(_ context.Context, userID uint) (*models.User, error) {
		return &models.User{ID: userID, UserType: models.UserTypeBrand}, nil
	}
	return repo
}

func influencerUserRepo() *userRepoStub {
	repo := noopUserRepo()
	repo.getByIDFn = func(_ context.Context, userID uint) (*models.User, error) {
		return &models.User{ID: userID, UserType: models.UserTypeInfluencer}, nil
	}
	return repo
}

func validListingInput(brandID uint) CreateListingInput {
	return CreateListingInput{
		BrandID:     brandID,
		Title:       "Summer Launch",
		Description: "Promote our summer line",
		Category:    "fashion",
		Budget:      100000,
		Deadline:    testClock.Add(14 * 24 * time.Hour),
	}
}

func TestListingService_CreateListing(t *testing.T) {
	t.Parallel()

	t.Run("brand creates active listing", func(t *testing.T) {
		var created *models.Listing
		listingRepo := noopListingRepo()
		listingRepo.createFn = func(_ context.Context, l *models.Listing) error {
			l.ID = 1
			created = l
			return nil
		}

		svc := NewListingService(listingRepo, brandUserRepo())
		svc.now = fixedClock

		listing, err := svc.CreateListing(context.Background(), validListingInput(7))
		require.NoError(t, err)
		assert.Equal(t, models.ListingStatusActive, listing.Status)
		assert.Equal(t, uint(7), listing.BrandID)
		require.NotNil(t, created)
	})

	t.Run("influencer cannot create listings", func(t *testing.T) {
		svc := NewListingService(noopListingRepo(), influencerUserRepo())
		svc.now = fixedClock

		_, err := svc.CreateListing(context.Background(), validListingInput(2))
		assertUnauthorizedError(t, err)
	})

	t.Run("past deadline is rejected", func(t *testing.T) {
		svc := NewListingService(noopListingRepo(), brandUserRepo())
		svc.now = fixedClock

		in := validListingInput(7)
		in.Deadline = testClock.Add(-time.Hour)
		_, err := svc.CreateListing(context.Background(), in)
		assertValidationError(t, err)
	})

	t.Run("all violations reported together", func(t *testing.T) {
		svc := NewListingService(noopListingRepo(), brandUserRepo())
		svc.now = fixedClock

		_, err := svc.CreateListing(context.Background(), CreateListingInput{BrandID: 7})

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeValidation, appErr.Code)
		assert.Len(t, appErr.Violations, 5)
	})

	t.Run("script tags are stripped from text fields", func(t *testing.T) {
		listingRepo := noopListingRepo()
		svc := NewListingService(listingRepo, brandUserRepo())
		svc.now = fixedClock

		in := validListingInput(7)
		in.Description = `Great campaign <script>alert("x")</script> details`
		listing, err := svc.CreateListing(context.Background(), in)
		require.NoError(t, err)
		assert.NotContains(t, listing.Description, "<script>")
		assert.Contains(t, listing.Description, "Great campaign")
	})
}

func TestListingService_UpdateListing(t *testing.T) {
	t.Parallel()

	ownedActiveListing := func() *listingRepoStub {
		repo := noopListingRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Listing, error) {
			return &models.Listing{
				ID:          id,
				BrandID:     7,
				Title:       "Summer Launch",
				Description: "Promote our summer line",
				Category:    "fashion",
				Budget:      100000,
				Deadline:    testClock.Add(14 * 24 * time.Hour),
				Status:      models.ListingStatusActive,
			}, nil
		}
		return repo
	}

	t.Run("owner edits fields", func(t *testing.T) {
		repo := ownedActiveListing()
		svc := NewListingService(repo, brandUserRepo())
		svc.now = fixedClock

		listing, err := svc.UpdateListing(context.Background(), UpdateListingInput{
			BrandID:   7,
			ListingID: 1,
			Title:     "Autumn Launch",
		})
		require.NoError(t, err)
		assert.Equal(t, "Autumn Launch", listing.Title)
		assert.Equal(t, "fashion", listing.Category)
	})

	t.Run("content edit survives a passed deadline", func(t *testing.T) {
		repo := ownedActiveListing()
		base := repo.getByIDFn
		repo.getByIDFn = func(ctx context.Context, id uint) (*models.Listing, error) {
			listing, err := base(ctx, id)
			if err != nil {
				return nil, err
			}
			listing.Deadline = testClock.Add(-24 * time.Hour)
			return listing, nil
		}
		svc := NewListingService(repo, brandUserRepo())
		svc.now = fixedClock

		listing, err := svc.UpdateListing(context.Background(), UpdateListingInput{
			BrandID:     7,
			ListingID:   1,
			Description: "Updated brief for the shortlisted creators",
		})
		require.NoError(t, err)
		assert.Contains(t, listing.Description, "Updated brief")
	})

	t.Run("changing the deadline to the past is rejected", func(t *testing.T) {
		svc := NewListingService(ownedActiveListing(), brandUserRepo())
		svc.now = fixedClock

		past := testClock.Add(-time.Hour)
		_, err := svc.UpdateListing(context.Background(), UpdateListingInput{
			BrandID:   7,
			ListingID: 1,
			Deadline:  &past,
		})
		assertValidationError(t, err)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		svc := NewListingService(ownedActiveListing(), brandUserRepo())
		svc.now = fixedClock

		_, err := svc.UpdateListing(context.Background(), UpdateListingInput{
			BrandID:   8,
			ListingID: 1,
			Title:     "Hijacked",
		})
		assertUnauthorizedError(t, err)
	})

	t.Run("closed listing cannot be edited", func(t *testing.T) {
		repo := ownedActiveListing()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Listing, error) {
			return &models.Listing{ID: id, BrandID: 7, Status: models.ListingStatusClosed}, nil
		}
		svc := NewListingService(repo, brandUserRepo())
		svc.now = fixedClock

		_, err := svc.UpdateListing(context.Background(), UpdateListingInput{
			BrandID:   7,
			ListingID: 1,
			Title:     "New title",
		})
		assertConflictError(t, err)
	})
}

func TestListingService_UpdateListingStatus(t *testing.T) {
	t.Parallel()

	listingInStatus := func(status models.ListingStatus) *listingRepoStub {
		repo := noopListingRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Listing, error) {
			return &models.Listing{ID: id, BrandID: 7, Status: status}, nil
		}
		return repo
	}

	tests := []struct {
		name      string
		from      models.ListingStatus
		to        models.ListingStatus
		wantError func(*testing.T, error)
	}{
		{name: "active to closed", from: models.ListingStatusActive, to: models.ListingStatusClosed},
		{name: "active to completed", from: models.ListingStatusActive, to: models.ListingStatusCompleted},
		{name: "closed to completed", from: models.ListingStatusClosed, to: models.ListingStatusCompleted},
		{name: "closed back to active", from: models.ListingStatusClosed, to: models.ListingStatusActive, wantError: assertInvalidTransitionError},
		{name: "completed is terminal", from: models.ListingStatusCompleted, to: models.ListingStatusClosed, wantError: assertInvalidTransitionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewListingService(listingInStatus(tt.from), brandUserRepo())
			svc.now = fixedClock

			listing, err := svc.UpdateListingStatus(context.Background(), UpdateListingStatusInput{
				BrandID:   7,
				ListingID: 1,
				Status:    tt.to,
			})
			if tt.wantError != nil {
				tt.wantError(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, listing.Status)
		})
	}

	t.Run("non-owner cannot change status", func(t *testing.T) {
		svc := NewListingService(listingInStatus(models.ListingStatusActive), brandUserRepo())
		svc.now = fixedClock

		_, err := svc.UpdateListingStatus(context.Background(), UpdateListingStatusInput{
			BrandID:   9,
			ListingID: 1,
			Status:    models.ListingStatusClosed,
		})
		assertUnauthorizedError(t, err)
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		svc := NewListingService(listingInStatus(models.ListingStatusActive), brandUserRepo())
		svc.now = fixedClock

		_, err := svc.UpdateListingStatus(context.Background(), UpdateListingStatusInput{
			BrandID:   7,
			ListingID: 1,
			Status:    "archived",
		})
		assertValidationError(t, err)
	})
}

func TestListingService_ListListings_Filters(t *testing.T) {
	t.Parallel()

	var gotFilters repository.ListingFilters
	repo := noopListingRepo()
	repo.listFn = func(_ context.Context, filters repository.ListingFilters) ([]models.Listing, error) {
		gotFilters = filters
		return []models.Listing{{ID: 1}}, nil
	}

	svc := NewListingService(repo, noopUserRepo())
	svc.now = fixedClock

	listings, err := svc.ListListings(context.Background(), ListListingsInput{
		Category: "fashion",
		Status:   "active",
		Limit:    10,
		Offset:   20,
	})
	require.NoError(t, err)
	assert.Len(t, listings, 1)
	assert.Equal(t, "fashion", gotFilters.Category)
	assert.Equal(t, "active", gotFilters.Status)
	assert.Equal(t, 10, gotFilters.Limit)
	assert.Equal(t, 20, gotFilters.Offset)
}

func TestListingService_ListListings_InvalidStatusFilter(t *testing.T) {
	t.Parallel()

	svc := NewListingService(noopListingRepo(), noopUserRepo())
	_, err := svc.ListListings(context.Background(), ListListingsInput{Status: "bogus"})
	assertValidationError(t, err)
}
