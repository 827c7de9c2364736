package service

import (
	"context"
	"time"

	"collabhub/internal/cache"
	"collabhub/internal/lifecycle"
	"collabhub/internal/middleware"
	"collabhub/internal/models"
	"collabhub/internal/repository"
	"collabhub/internal/validation"
)

type ProposalService struct {
	proposalRepo repository.ProposalRepository
	listingRepo  repository.ListingRepository
	userRepo     repository.UserRepository
	now          func() time.Time
}

type CreateProposalInput struct {
	InfluencerID   uint
	ListingID      uint
	Message        string
	ProposedBudget int64
	Timeline       string
}

type UpdateProposalInput struct {
	InfluencerID   uint
	ProposalID     uint
	Message        string
	ProposedBudget int64
	Timeline       string
}

// UpdateProposalStatusInput moves a proposal along its lifecycle. The actor's
// relationship to the proposal decides which transitions are permitted: the
// listing's brand accepts or rejects, the owning influencer withdraws.
type UpdateProposalStatusInput struct {
	ActorID    uint
	ProposalID uint
	Status     models.ProposalStatus
}

func NewProposalService(
	proposalRepo repository.ProposalRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
) *ProposalService {
	return &ProposalService{
		proposalRepo: proposalRepo,
		listingRepo:  listingRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

// CreateProposal submits an influencer's bid on a listing. Each influencer
// may hold at most one proposal per listing, regardless of its status.
func (s *ProposalService) CreateProposal(ctx context.Context, in CreateProposalInput) (*models.Proposal, error) {
	influencer, err := s.userRepo.GetByID(ctx, in.InfluencerID)
	if err != nil {
		return nil, err
	}
	if influencer.UserType != models.UserTypeInfluencer {
		return nil, models.NewUnauthorizedError("Only influencer accounts can submit proposals")
	}

	listing, err := s.listingRepo.GetByID(ctx, in.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.Status != models.ListingStatusActive {
		return nil, models.NewConflictError("Listing is no longer accepting proposals")
	}
	if !s.now().Before(listing.Deadline) {
		return nil, models.NewConflictError("The application deadline for this listing has passed")
	}

	violations := validation.ValidateProposal(validation.ProposalInput{
		Message:        in.Message,
		ProposedBudget: in.ProposedBudget,
		Timeline:       in.Timeline,
	})
	if len(violations) > 0 {
		return nil, models.NewValidationErrors(violations)
	}

	exists, err := s.proposalRepo.ExistsForListingAndInfluencer(ctx, in.ListingID, in.InfluencerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewDuplicateProposalError(in.ListingID)
	}

	proposal := &models.Proposal{
		ListingID:      in.ListingID,
		InfluencerID:   in.InfluencerID,
		Message:        validation.Sanitize(in.Message),
		ProposedBudget: in.ProposedBudget,
		Timeline:       validation.Sanitize(in.Timeline),
		Status:         models.ProposalStatusUnderReview,
	}
	if err := s.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, err
	}
	cache.InvalidateListing(ctx, in.ListingID)
	return proposal, nil
}

// GetProposal returns a proposal visible only to its two parties: the owning
// influencer and the listing's brand.
func (s *ProposalService) GetProposal(ctx context.Context, proposalID, requesterID uint) (*models.Proposal, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if !isProposalParty(proposal, requesterID) {
		return nil, models.NewUnauthorizedError("You are not a party to this proposal")
	}
	return proposal, nil
}

// ListProposalsForListing returns a listing's proposals. The owning brand
// sees every proposal; an influencer sees only their own.
func (s *ProposalService) ListProposalsForListing(ctx context.Context, listingID, requesterID uint, limit, offset int) ([]models.Proposal, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.BrandID == requesterID {
		if limit <= 0 || limit > 100 {
			limit = 20
		}
		return s.proposalRepo.GetByListingID(ctx, listingID, limit, offset)
	}

	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester.UserType != models.UserTypeInfluencer {
		return nil, models.NewUnauthorizedError("You can only view proposals on your own listings")
	}
	own, err := s.proposalRepo.GetByListingAndInfluencer(ctx, listingID, requesterID)
	if err != nil {
		return nil, err
	}
	if own == nil {
		return []models.Proposal{}, nil
	}
	return []models.Proposal{*own}, nil
}

// ListMyProposals returns the caller's own proposals.
func (s *ProposalService) ListMyProposals(ctx context.Context, influencerID uint, limit, offset int) ([]models.Proposal, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.proposalRepo.GetByInfluencerID(ctx, influencerID, limit, offset)
}

// UpdateProposal edits the bid's content. Only the owning influencer may
// edit, and only while the proposal is still under review.
func (s *ProposalService) UpdateProposal(ctx context.Context, in UpdateProposalInput) (*models.Proposal, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, in.ProposalID)
	if err != nil {
		return nil, err
	}
	if proposal.InfluencerID != in.InfluencerID {
		return nil, models.NewUnauthorizedError("You can only update your own proposals")
	}
	if proposal.Status != models.ProposalStatusUnderReview {
		return nil, models.NewConflictError("Only proposals under review can be edited")
	}

	if in.Message != "" {
		proposal.Message = validation.Sanitize(in.Message)
	}
	if in.ProposedBudget != 0 {
		proposal.ProposedBudget = in.ProposedBudget
	}
	if in.Timeline != "" {
		proposal.Timeline = validation.Sanitize(in.Timeline)
	}

	violations := validation.ValidateProposal(validation.ProposalInput{
		Message:        proposal.Message,
		ProposedBudget: proposal.ProposedBudget,
		Timeline:       proposal.Timeline,
	})
	if len(violations) > 0 {
		return nil, models.NewValidationErrors(violations)
	}

	if err := s.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

// UpdateProposalStatus applies a lifecycle transition. Invalid transitions
// leave the proposal unchanged.
func (s *ProposalService) UpdateProposalStatus(ctx context.Context, in UpdateProposalStatusInput) (*models.Proposal, error) {
	if !lifecycle.ValidProposalStatus(in.Status) {
		return nil, models.NewValidationError("Invalid proposal status")
	}

	proposal, err := s.proposalRepo.GetByID(ctx, in.ProposalID)
	if err != nil {
		return nil, err
	}

	switch in.Status {
	case models.ProposalStatusAccepted, models.ProposalStatusRejected:
		if proposal.Listing.BrandID != in.ActorID {
			return nil, models.NewUnauthorizedError("Only the listing's brand can accept or reject proposals")
		}
	case models.ProposalStatusWithdrawn:
		if proposal.InfluencerID != in.ActorID {
			return nil, models.NewUnauthorizedError("Only the proposal's influencer can withdraw it")
		}
	default:
		return nil, models.NewValidationError("Invalid proposal status")
	}

	if !lifecycle.CanTransitionProposal(proposal.Status, in.Status) {
		return nil, models.NewInvalidTransitionError(string(proposal.Status), string(in.Status))
	}

	proposal.Status = in.Status
	if err := s.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, err
	}
	middleware.ProposalTransitions.WithLabelValues(string(in.Status)).Inc()
	return proposal, nil
}

func isProposalParty(p *models.Proposal, userID uint) bool {
	return p.InfluencerID == userID || p.Listing.BrandID == userID
}
