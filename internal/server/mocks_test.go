package server

import (
	"context"

	"collabhub/internal/config"
	"collabhub/internal/models"
	"collabhub/internal/repository"
	"collabhub/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockListingRepository is a mock of the ListingRepository interface
type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Create(ctx context.Context, listing *models.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingRepository) GetByID(ctx context.Context, id uint) (*models.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Listing), args.Error(1)
}

func (m *MockListingRepository) List(ctx context.Context, filters repository.ListingFilters) ([]models.Listing, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Listing), args.Error(1)
}

func (m *MockListingRepository) GetByBrandID(ctx context.Context, brandID uint, limit, offset int) ([]models.Listing, error) {
	args := m.Called(ctx, brandID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Listing), args.Error(1)
}

func (m *MockListingRepository) Update(ctx context.Context, listing *models.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

// MockProposalRepository is a mock of the ProposalRepository interface
type MockProposalRepository struct {
	mock.Mock
}

func (m *MockProposalRepository) Create(ctx context.Context, proposal *models.Proposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *MockProposalRepository) GetByID(ctx context.Context, id uint) (*models.Proposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Proposal), args.Error(1)
}

func (m *MockProposalRepository) GetByListingID(ctx context.Context, listingID uint, limit, offset int) ([]models.Proposal, error) {
	args := m.Called(ctx, listingID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Proposal), args.Error(1)
}

func (m *MockProposalRepository) GetByInfluencerID(ctx context.Context, influencerID uint, limit, offset int) ([]models.Proposal, error) {
	args := m.Called(ctx, influencerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Proposal), args.Error(1)
}

func (m *MockProposalRepository) ExistsForListingAndInfluencer(ctx context.Context, listingID, influencerID uint) (bool, error) {
	args := m.Called(ctx, listingID, influencerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProposalRepository) GetByListingAndInfluencer(ctx context.Context, listingID, influencerID uint) (*models.Proposal, error) {
	args := m.Called(ctx, listingID, influencerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Proposal), args.Error(1)
}

func (m *MockProposalRepository) Update(ctx context.Context, proposal *models.Proposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

// MockDeliverableRepository is a mock of the DeliverableRepository interface
type MockDeliverableRepository struct {
	mock.Mock
}

func (m *MockDeliverableRepository) Create(ctx context.Context, deliverable *models.Deliverable) error {
	args := m.Called(ctx, deliverable)
	return args.Error(0)
}

func (m *MockDeliverableRepository) GetByID(ctx context.Context, id uint) (*models.Deliverable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deliverable), args.Error(1)
}

func (m *MockDeliverableRepository) GetByProposalID(ctx context.Context, proposalID uint) ([]models.Deliverable, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Deliverable), args.Error(1)
}

func (m *MockDeliverableRepository) Update(ctx context.Context, deliverable *models.Deliverable) error {
	args := m.Called(ctx, deliverable)
	return args.Error(0)
}

// MockMessageRepository is a mock of the MessageRepository interface
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, message *models.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) GetByConversationID(ctx context.Context, conversationID string, limit, offset int) ([]models.Message, error) {
	args := m.Called(ctx, conversationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageRepository) GetAfter(ctx context.Context, conversationID string, afterID uint, limit int) ([]models.Message, error) {
	args := m.Called(ctx, conversationID, afterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageRepository) ConversationIDsForUser(ctx context.Context, userID uint) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// testServerDeps bundles the mock repositories used to build a test server.
type testServerDeps struct {
	userRepo        *MockUserRepository
	listingRepo     *MockListingRepository
	proposalRepo    *MockProposalRepository
	deliverableRepo *MockDeliverableRepository
	messageRepo     *MockMessageRepository
}

// testApp builds a Fiber app that injects the given user ID, standing in
// for the AuthRequired middleware.
func testApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	return app
}

// newTestServer wires a Server over mock repositories, skipping DB and Redis.
func newTestServer() (*Server, *testServerDeps) {
	deps := &testServerDeps{
		userRepo:        new(MockUserRepository),
		listingRepo:     new(MockListingRepository),
		proposalRepo:    new(MockProposalRepository),
		deliverableRepo: new(MockDeliverableRepository),
		messageRepo:     new(MockMessageRepository),
	}

	cfg := &config.Config{
		JWTSecret: "test-secret-key-used-only-in-tests",
		Port:      "8460",
		Env:       "test",
	}

	s := &Server{
		config:          cfg,
		userRepo:        deps.userRepo,
		listingRepo:     deps.listingRepo,
		proposalRepo:    deps.proposalRepo,
		deliverableRepo: deps.deliverableRepo,
		messageRepo:     deps.messageRepo,
	}
	s.userService = service.NewUserService(deps.userRepo)
	s.listingService = service.NewListingService(deps.listingRepo, deps.userRepo)
	s.proposalService = service.NewProposalService(deps.proposalRepo, deps.listingRepo, deps.userRepo)
	s.deliverableService = service.NewDeliverableService(deps.deliverableRepo, deps.proposalRepo)
	s.messageService = service.NewMessageService(deps.messageRepo, deps.userRepo, deps.proposalRepo)

	return s, deps
}
