package server

import (
	"collabhub/internal/models"
	"collabhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SendMessage handles POST /api/messages
func (s *Server) SendMessage(c *fiber.Ctx) error {
	var req struct {
		RecipientID uint   `json:"recipient_id"`
		Content     string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, err := s.messageService.SendMessage(c.Context(), service.SendMessageInput{
		SenderID:    currentUserID(c),
		RecipientID: req.RecipientID,
		Content:     req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetMessagesWithUser handles GET /api/messages/with/:userId?after_id=&limit=&offset=
// Clients poll this endpoint with after_id to pick up new messages.
func (s *Server) GetMessagesWithUser(c *fiber.Ctx) error {
	otherID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 50)

	afterID := c.QueryInt("after_id", 0)
	if afterID < 0 {
		afterID = 0
	}

	messages, err := s.messageService.GetMessages(c.Context(), service.GetMessagesInput{
		UserID:      currentUserID(c),
		OtherUserID: otherID,
		AfterID:     uint(afterID),
		Limit:       page.Limit,
		Offset:      page.Offset,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(messages)
}

// SendProposalMessage handles POST /api/proposals/:id/messages
func (s *Server) SendProposalMessage(c *fiber.Ctx) error {
	proposalID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, err := s.messageService.SendProposalMessage(c.Context(), service.SendProposalMessageInput{
		SenderID:   currentUserID(c),
		ProposalID: proposalID,
		Content:    req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetProposalMessages handles GET /api/proposals/:id/messages?after_id=&limit=&offset=
func (s *Server) GetProposalMessages(c *fiber.Ctx) error {
	proposalID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 50)

	afterID := c.QueryInt("after_id", 0)
	if afterID < 0 {
		afterID = 0
	}

	messages, err := s.messageService.GetProposalMessages(
		c.Context(), currentUserID(c), proposalID, uint(afterID), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(messages)
}

// GetConversations handles GET /api/conversations
func (s *Server) GetConversations(c *fiber.Ctx) error {
	conversations, err := s.messageService.ListConversations(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"conversations": conversations})
}
