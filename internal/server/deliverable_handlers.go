package server

import (
	"time"

	"collabhub/internal/models"
	"collabhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateDeliverable handles POST /api/proposals/:id/deliverables
func (s *Server) CreateDeliverable(c *fiber.Ctx) error {
	proposalID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Type        string     `json:"type"`
		DueDate     *time.Time `json:"due_date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	deliverable, err := s.deliverableService.CreateDeliverable(c.Context(), service.CreateDeliverableInput{
		BrandID:     currentUserID(c),
		ProposalID:  proposalID,
		Title:       req.Title,
		Description: req.Description,
		Type:        models.DeliverableType(req.Type),
		DueDate:     req.DueDate,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(deliverable)
}

// GetProposalDeliverables handles GET /api/proposals/:id/deliverables
func (s *Server) GetProposalDeliverables(c *fiber.Ctx) error {
	proposalID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	deliverables, err := s.deliverableService.ListDeliverables(c.Context(), proposalID, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(deliverables)
}

// GetDeliverable handles GET /api/deliverables/:id
func (s *Server) GetDeliverable(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	deliverable, err := s.deliverableService.GetDeliverable(c.Context(), id, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(deliverable)
}

// SubmitDeliverable handles POST /api/deliverables/:id/submit
func (s *Server) SubmitDeliverable(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		FileURL         string `json:"file_url"`
		SubmissionNotes string `json:"submission_notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	deliverable, err := s.deliverableService.SubmitDeliverable(c.Context(), service.SubmitDeliverableInput{
		InfluencerID:    currentUserID(c),
		DeliverableID:   id,
		FileURL:         req.FileURL,
		SubmissionNotes: req.SubmissionNotes,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(deliverable)
}

// ReviewDeliverable handles POST /api/deliverables/:id/review
func (s *Server) ReviewDeliverable(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Status      string `json:"status"`
		ReviewNotes string `json:"review_notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	deliverable, err := s.deliverableService.ReviewDeliverable(c.Context(), service.ReviewDeliverableInput{
		BrandID:       currentUserID(c),
		DeliverableID: id,
		Status:        models.DeliverableStatus(req.Status),
		ReviewNotes:   req.ReviewNotes,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(deliverable)
}
