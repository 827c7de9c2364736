package server

import (
	"collabhub/internal/models"
	"collabhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

type proposalRequest struct {
	Message        string `json:"message"`
	ProposedBudget int64  `json:"proposed_budget"`
	Timeline       string `json:"timeline"`
}

// CreateProposal handles POST /api/listings/:id/proposals
func (s *Server) CreateProposal(c *fiber.Ctx) error {
	listingID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req proposalRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	proposal, err := s.proposalService.CreateProposal(c.Context(), service.CreateProposalInput{
		InfluencerID:   currentUserID(c),
		ListingID:      listingID,
		Message:        req.Message,
		ProposedBudget: req.ProposedBudget,
		Timeline:       req.Timeline,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(proposal)
}

// GetListingProposals handles GET /api/listings/:id/proposals
func (s *Server) GetListingProposals(c *fiber.Ctx) error {
	listingID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)

	proposals, err := s.proposalService.ListProposalsForListing(
		c.Context(), listingID, currentUserID(c), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(proposals)
}

// GetMyProposals handles GET /api/proposals/mine
func (s *Server) GetMyProposals(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	proposals, err := s.proposalService.ListMyProposals(
		c.Context(), currentUserID(c), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(proposals)
}

// GetProposal handles GET /api/proposals/:id
func (s *Server) GetProposal(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	proposal, err := s.proposalService.GetProposal(c.Context(), id, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(proposal)
}

// UpdateProposal handles PUT /api/proposals/:id
func (s *Server) UpdateProposal(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req proposalRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	proposal, err := s.proposalService.UpdateProposal(c.Context(), service.UpdateProposalInput{
		InfluencerID:   currentUserID(c),
		ProposalID:     id,
		Message:        req.Message,
		ProposedBudget: req.ProposedBudget,
		Timeline:       req.Timeline,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(proposal)
}

// UpdateProposalStatus handles PATCH /api/proposals/:id/status
func (s *Server) UpdateProposalStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	proposal, err := s.proposalService.UpdateProposalStatus(c.Context(), service.UpdateProposalStatusInput{
		ActorID:    currentUserID(c),
		ProposalID: id,
		Status:     models.ProposalStatus(req.Status),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(proposal)
}
