package service

import (
	"context"
	"errors"
	"testing"

	"collabhub/internal/models"
	"collabhub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn     func(context.Context, *models.User) error
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	updateFn     func(context.Context, *models.User) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.User) error { return nil },
	}
}

// listingRepoStub is a stub for repository.ListingRepository.
type listingRepoStub struct {
	createFn       func(context.Context, *models.Listing) error
	getByIDFn      func(context.Context, uint) (*models.Listing, error)
	listFn         func(context.Context, repository.ListingFilters) ([]models.Listing, error)
	getByBrandIDFn func(context.Context, uint, int, int) ([]models.Listing, error)
	updateFn       func(context.Context, *models.Listing) error
}

func (s *listingRepoStub) Create(ctx context.Context, listing *models.Listing) error {
	return s.createFn(ctx, listing)
}
func (s *listingRepoStub) GetByID(ctx context.Context, id uint) (*models.Listing, error) {
	return s.getByIDFn(ctx, id)
}
func (s *listingRepoStub) List(ctx context.Context, filters repository.ListingFilters) ([]models.Listing, error) {
	return s.listFn(ctx, filters)
}
func (s *listingRepoStub) GetByBrandID(ctx context.Context, brandID uint, limit, offset int) ([]models.Listing, error) {
	return s.getByBrandIDFn(ctx, brandID, limit, offset)
}
func (s *listingRepoStub) Update(ctx context.Context, listing *models.Listing) error {
	return s.updateFn(ctx, listing)
}

func noopListingRepo() *listingRepoStub {
	return &listingRepoStub{
		createFn: func(_ context.Context, _ *models.Listing) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Listing, error) {
			return &models.Listing{ID: id}, nil
		},
		listFn: func(_ context.Context, _ repository.ListingFilters) ([]models.Listing, error) {
			return nil, nil
		},
		getByBrandIDFn: func(_ context.Context, _ uint, _, _ int) ([]models.Listing, error) { return nil, nil },
		updateFn:       func(_ context.Context, _ *models.Listing) error { return nil },
	}
}

// proposalRepoStub is a stub for repository.ProposalRepository.
type proposalRepoStub struct {
	createFn            func(context.Context, *models.Proposal) error
	getByIDFn           func(context.Context, uint) (*models.Proposal, error)
	getByListingIDFn    func(context.Context, uint, int, int) ([]models.Proposal, error)
	getByInfluencerIDFn func(context.Context, uint, int, int) ([]models.Proposal, error)
	existsFn            func(context.Context, uint, uint) (bool, error)
	getForPairFn        func(context.Context, uint, uint) (*models.Proposal, error)
	updateFn            func(context.Context, *models.Proposal) error
}

func (s *proposalRepoStub) Create(ctx context.Context, proposal *models.Proposal) error {
	return s.createFn(ctx, proposal)
}
func (s *proposalRepoStub) GetByID(ctx context.Context, id uint) (*models.Proposal, error) {
	return s.getByIDFn(ctx, id)
}
func (s *proposalRepoStub) GetByListingID(ctx context.Context, listingID uint, limit, offset int) ([]models.Proposal, error) {
	return s.getByListingIDFn(ctx, listingID, limit, offset)
}
func (s *proposalRepoStub) GetByInfluencerID(ctx context.Context, influencerID uint, limit, offset int) ([]models.Proposal, error) {
	return s.getByInfluencerIDFn(ctx, influencerID, limit, offset)
}
func (s *proposalRepoStub) ExistsForListingAndInfluencer(ctx context.Context, listingID, influencerID uint) (bool, error) {
	return s.existsFn(ctx, listingID, influencerID)
}
func (s *proposalRepoStub) GetByListingAndInfluencer(ctx context.Context, listingID, influencerID uint) (*models.Proposal, error) {
	return s.getForPairFn(ctx, listingID, influencerID)
}
func (s *proposalRepoStub) Update(ctx context.Context, proposal *models.Proposal) error {
	return s.updateFn(ctx, proposal)
}

func noopProposalRepo() *proposalRepoStub {
	return &proposalRepoStub{
		createFn: func(_ context.Context, _ *models.Proposal) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Proposal, error) {
			return &models.Proposal{ID: id}, nil
		},
		getByListingIDFn:    func(_ context.Context, _ uint, _, _ int) ([]models.Proposal, error) { return nil, nil },
		getByInfluencerIDFn: func(_ context.Context, _ uint, _, _ int) ([]models.Proposal, error) { return nil, nil },
		existsFn:            func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		getForPairFn:        func(_ context.Context, _, _ uint) (*models.Proposal, error) { return nil, nil },
		updateFn:            func(_ context.Context, _ *models.Proposal) error { return nil },
	}
}

// deliverableRepoStub is a stub for repository.DeliverableRepository.
type deliverableRepoStub struct {
	createFn          func(context.Context, *models.Deliverable) error
	getByIDFn         func(context.Context, uint) (*models.Deliverable, error)
	getByProposalIDFn func(context.Context, uint) ([]models.Deliverable, error)
	updateFn          func(context.Context, *models.Deliverable) error
}

func (s *deliverableRepoStub) Create(ctx context.Context, deliverable *models.Deliverable) error {
	return s.createFn(ctx, deliverable)
}
func (s *deliverableRepoStub) GetByID(ctx context.Context, id uint) (*models.Deliverable, error) {
	return s.getByIDFn(ctx, id)
}
func (s *deliverableRepoStub) GetByProposalID(ctx context.Context, proposalID uint) ([]models.Deliverable, error) {
	return s.getByProposalIDFn(ctx, proposalID)
}
func (s *deliverableRepoStub) Update(ctx context.Context, deliverable *models.Deliverable) error {
	return s.updateFn(ctx, deliverable)
}

func noopDeliverableRepo() *deliverableRepoStub {
	return &deliverableRepoStub{
		createFn: func(_ context.Context, _ *models.Deliverable) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Deliverable, error) {
			return &models.Deliverable{ID: id}, nil
		},
		getByProposalIDFn: func(_ context.Context, _ uint) ([]models.Deliverable, error) { return nil, nil },
		updateFn:          func(_ context.Context, _ *models.Deliverable) error { return nil },
	}
}

// messageRepoStub is a stub for repository.MessageRepository.
type messageRepoStub struct {
	createFn                 func(context.Context, *models.Message) error
	getByConversationIDFn    func(context.Context, string, int, int) ([]models.Message, error)
	getAfterFn               func(context.Context, string, uint, int) ([]models.Message, error)
	conversationIDsForUserFn func(context.Context, uint) ([]string, error)
}

func (s *messageRepoStub) Create(ctx context.Context, message *models.Message) error {
	return s.createFn(ctx, message)
}
func (s *messageRepoStub) GetByConversationID(ctx context.Context, conversationID string, limit, offset int) ([]models.Message, error) {
	return s.getByConversationIDFn(ctx, conversationID, limit, offset)
}
func (s *messageRepoStub) GetAfter(ctx context.Context, conversationID string, afterID uint, limit int) ([]models.Message, error) {
	return s.getAfterFn(ctx, conversationID, afterID, limit)
}
func (s *messageRepoStub) ConversationIDsForUser(ctx context.Context, userID uint) ([]string, error) {
	return s.conversationIDsForUserFn(ctx, userID)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		createFn:                 func(_ context.Context, _ *models.Message) error { return nil },
		getByConversationIDFn:    func(_ context.Context, _ string, _, _ int) ([]models.Message, error) { return nil, nil },
		getAfterFn:               func(_ context.Context, _ string, _ uint, _ int) ([]models.Message, error) { return nil, nil },
		conversationIDsForUserFn: func(_ context.Context, _ uint) ([]string, error) { return nil, nil },
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeValidation)
}

// assertUnauthorizedError asserts that err is an AppError with code UNAUTHORIZED.
func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeUnauthorized)
}

// assertInvalidTransitionError asserts that err is an AppError with code INVALID_TRANSITION.
func assertInvalidTransitionError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeInvalidTransition)
}

// assertConflictError asserts that err is an AppError with code CONFLICT.
func assertConflictError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeConflict)
}
