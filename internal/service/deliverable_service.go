package service

import (
	"context"
	"strings"
	"time"

	"collabhub/internal/lifecycle"
	"collabhub/internal/middleware"
	"collabhub/internal/models"
	"collabhub/internal/repository"
	"collabhub/internal/validation"
)

type DeliverableService struct {
	deliverableRepo repository.DeliverableRepository
	proposalRepo    repository.ProposalRepository
	now             func() time.Time
}

type CreateDeliverableInput struct {
	BrandID     uint
	ProposalID  uint
	Title       string
	Description string
	Type        models.DeliverableType
	DueDate     *time.Time
}

type SubmitDeliverableInput struct {
	InfluencerID    uint
	DeliverableID   uint
	FileURL         string
	SubmissionNotes string
}

type ReviewDeliverableInput struct {
	BrandID       uint
	DeliverableID uint
	Status        models.DeliverableStatus
	ReviewNotes   string
}

func NewDeliverableService(
	deliverableRepo repository.DeliverableRepository,
	proposalRepo repository.ProposalRepository,
) *DeliverableService {
	return &DeliverableService{
		deliverableRepo: deliverableRepo,
		proposalRepo:    proposalRepo,
		now:             time.Now,
	}
}

// CreateDeliverable assigns a unit of work under an accepted proposal. Only
// the listing's brand may assign; deliverables never exist under a
// non-accepted proposal.
func (s *DeliverableService) CreateDeliverable(ctx context.Context, in CreateDeliverableInput) (*models.Deliverable, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, in.ProposalID)
	if err != nil {
		return nil, err
	}
	if proposal.Listing.BrandID != in.BrandID {
		return nil, models.NewUnauthorizedError("Only the listing's brand can create deliverables")
	}
	if proposal.Status != models.ProposalStatusAccepted {
		return nil, models.NewConflictError("Deliverables can only be created under an accepted proposal")
	}

	violations := validation.ValidateDeliverable(validation.DeliverableInput{
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		DueDate:     in.DueDate,
	}, s.now())
	if len(violations) > 0 {
		return nil, models.NewValidationErrors(violations)
	}

	deliverable := &models.Deliverable{
		ProposalID:  in.ProposalID,
		Title:       validation.Sanitize(in.Title),
		Description: validation.Sanitize(in.Description),
		Type:        in.Type,
		DueDate:     in.DueDate,
		Status:      models.DeliverableStatusPending,
	}
	if err := s.deliverableRepo.Create(ctx, deliverable); err != nil {
		return nil, err
	}
	return deliverable, nil
}

// GetDeliverable returns a deliverable visible only to the proposal's two
// parties.
func (s *DeliverableService) GetDeliverable(ctx context.Context, deliverableID, requesterID uint) (*models.Deliverable, error) {
	deliverable, err := s.deliverableRepo.GetByID(ctx, deliverableID)
	if err != nil {
		return nil, err
	}
	if !isProposalParty(&deliverable.Proposal, requesterID) {
		return nil, models.NewUnauthorizedError("You are not a party to this deliverable")
	}
	return deliverable, nil
}

// ListDeliverables returns a proposal's deliverables to either party.
func (s *DeliverableService) ListDeliverables(ctx context.Context, proposalID, requesterID uint) ([]models.Deliverable, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if !isProposalParty(proposal, requesterID) {
		return nil, models.NewUnauthorizedError("You are not a party to this proposal")
	}
	return s.deliverableRepo.GetByProposalID(ctx, proposalID)
}

// SubmitDeliverable records the influencer's work. Submission is allowed from
// pending and revision_requested only; the file URL is mandatory.
func (s *DeliverableService) SubmitDeliverable(ctx context.Context, in SubmitDeliverableInput) (*models.Deliverable, error) {
	deliverable, err := s.deliverableRepo.GetByID(ctx, in.DeliverableID)
	if err != nil {
		return nil, err
	}
	if deliverable.Proposal.InfluencerID != in.InfluencerID {
		return nil, models.NewUnauthorizedError("Only the proposal's influencer can submit this deliverable")
	}
	if !lifecycle.SubmittableFrom(deliverable.Status) {
		return nil, models.NewInvalidTransitionError(string(deliverable.Status), string(models.DeliverableStatusSubmitted))
	}
	if deliverable.DueDate != nil && s.now().After(*deliverable.DueDate) {
		return nil, models.NewConflictError("The due date for this deliverable has passed")
	}

	var violations []string
	if strings.TrimSpace(in.FileURL) == "" {
		violations = append(violations, "file_url is required")
	}
	violations = append(violations, validation.ValidateSubmission(in.FileURL, in.SubmissionNotes)...)
	if len(violations) > 0 {
		return nil, models.NewValidationErrors(violations)
	}

	deliverable.Status = models.DeliverableStatusSubmitted
	deliverable.FileURL = in.FileURL
	deliverable.SubmissionNotes = validation.Sanitize(in.SubmissionNotes)
	if err := s.deliverableRepo.Update(ctx, deliverable); err != nil {
		return nil, err
	}
	return deliverable, nil
}

// ReviewDeliverable applies the brand's verdict. Rejections and revision
// requests must carry review notes; approval needs none.
func (s *DeliverableService) ReviewDeliverable(ctx context.Context, in ReviewDeliverableInput) (*models.Deliverable, error) {
	if !lifecycle.ReviewOutcome(in.Status) {
		return nil, models.NewValidationError("Invalid review status")
	}

	deliverable, err := s.deliverableRepo.GetByID(ctx, in.DeliverableID)
	if err != nil {
		return nil, err
	}
	if deliverable.Proposal.Listing.BrandID != in.BrandID {
		return nil, models.NewUnauthorizedError("Only the listing's brand can review this deliverable")
	}
	if !lifecycle.ReviewableFrom(deliverable.Status) ||
		!lifecycle.CanTransitionDeliverable(deliverable.Status, in.Status) {
		return nil, models.NewInvalidTransitionError(string(deliverable.Status), string(in.Status))
	}

	violations := validation.ValidateReviewNotes(in.ReviewNotes, lifecycle.ReviewRequiresNotes(in.Status))
	if len(violations) > 0 {
		return nil, models.NewValidationErrors(violations)
	}

	deliverable.Status = in.Status
	deliverable.ReviewNotes = validation.Sanitize(in.ReviewNotes)
	if err := s.deliverableRepo.Update(ctx, deliverable); err != nil {
		return nil, err
	}
	middleware.DeliverableReviews.WithLabelValues(string(in.Status)).Inc()
	return deliverable, nil
}
