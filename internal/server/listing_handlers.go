package server

import (
	"time"

	"collabhub/internal/models"
	"collabhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

type listingRequest struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         string     `json:"category"`
	Budget           int64      `json:"budget"`
	Deadline         *time.Time `json:"deadline"`
	CampaignDeadline *time.Time `json:"campaign_deadline"`
	Requirements     string     `json:"requirements"`
	Deliverables     string     `json:"deliverables"`
}

// CreateListing handles POST /api/listings
func (s *Server) CreateListing(c *fiber.Ctx) error {
	var req listingRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	in := service.CreateListingInput{
		BrandID:          currentUserID(c),
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Budget:           req.Budget,
		CampaignDeadline: req.CampaignDeadline,
		Requirements:     req.Requirements,
		Deliverables:     req.Deliverables,
	}
	if req.Deadline != nil {
		in.Deadline = *req.Deadline
	}

	listing, err := s.listingService.CreateListing(c.Context(), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(listing)
}

// GetListings handles GET /api/listings?category=&status=&limit=&offset=
func (s *Server) GetListings(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	listings, err := s.listingService.ListListings(c.Context(), service.ListListingsInput{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(listings)
}

// GetListing handles GET /api/listings/:id
func (s *Server) GetListing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	listing, err := s.listingService.GetListing(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(listing)
}

// GetMyListings handles GET /api/listings/mine/all
func (s *Server) GetMyListings(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	listings, err := s.listingService.GetBrandListings(c.Context(), currentUserID(c), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(listings)
}

// UpdateListing handles PUT /api/listings/:id
func (s *Server) UpdateListing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req listingRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	listing, err := s.listingService.UpdateListing(c.Context(), service.UpdateListingInput{
		BrandID:          currentUserID(c),
		ListingID:        id,
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Budget:           req.Budget,
		Deadline:         req.Deadline,
		CampaignDeadline: req.CampaignDeadline,
		Requirements:     req.Requirements,
		Deliverables:     req.Deliverables,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(listing)
}

// UpdateListingStatus handles PATCH /api/listings/:id/status
func (s *Server) UpdateListingStatus(c *fiber.Ctx) error {
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

	listing, err := s.listingService.UpdateListingStatus(c.Context(), service.UpdateListingStatusInput{
		BrandID:   currentUserID(c),
		ListingID: id,
		Status:    models.ListingStatus(req.Status),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(listing)
}
