package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"collabhub/internal/models"
	"collabhub/internal/repository"
	"collabhub/internal/validation"
)

const maxMessageLen = 5000

type MessageService struct {
	messageRepo  repository.MessageRepository
	userRepo     repository.UserRepository
	proposalRepo repository.ProposalRepository
}

type SendMessageInput struct {
	SenderID    uint
	RecipientID uint
	Content     string
}

type SendProposalMessageInput struct {
	SenderID   uint
	ProposalID uint
	Content    string
}

// GetMessagesInput fetches a page of a pair conversation. AfterID > 0 turns
// the call into a poll for messages newer than the client's last seen ID.
type GetMessagesInput struct {
	UserID      uint
	OtherUserID uint
	AfterID     uint
	Limit       int
	Offset      int
}

func NewMessageService(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	proposalRepo repository.ProposalRepository,
) *MessageService {
	return &MessageService{
		messageRepo:  messageRepo,
		userRepo:     userRepo,
		proposalRepo: proposalRepo,
	}
}

// SendMessage delivers a direct message between two users.
func (s *MessageService) SendMessage(ctx context.Context, in SendMessageInput) (*models.Message, error) {
	if in.RecipientID == in.SenderID {
		return nil, models.NewValidationError("You cannot message yourself")
	}
	if err := validateContent(in.Content); err != nil {
		return nil, err
	}

	// Confirm the recipient exists before writing.
	if _, err := s.userRepo.GetByID(ctx, in.RecipientID); err != nil {
		return nil, err
	}

	message := &models.Message{
		ConversationID: models.PairConversationID(in.SenderID, in.RecipientID),
		SenderID:       in.SenderID,
		RecipientID:    in.RecipientID,
		Content:        validation.Sanitize(in.Content),
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// SendProposalMessage delivers a message in the conversation scoped to a
// proposal. Only the proposal's two parties may write there; the recipient is
// always the other party.
func (s *MessageService) SendProposalMessage(ctx context.Context, in SendProposalMessageInput) (*models.Message, error) {
	if err := validateContent(in.Content); err != nil {
		return nil, err
	}

	proposal, err := s.proposalRepo.GetByID(ctx, in.ProposalID)
	if err != nil {
		return nil, err
	}
	if !isProposalParty(proposal, in.SenderID) {
		return nil, models.NewUnauthorizedError("You are not a party to this proposal")
	}
	if proposal.Status != models.ProposalStatusAccepted {
		return nil, models.NewConflictError("Proposal messaging opens once the proposal is accepted")
	}

	recipientID := proposal.InfluencerID
	if in.SenderID == proposal.InfluencerID {
		recipientID = proposal.Listing.BrandID
	}

	message := &models.Message{
		ConversationID: models.ProposalConversationID(in.ProposalID),
		SenderID:       in.SenderID,
		RecipientID:    recipientID,
		Content:        validation.Sanitize(in.Content),
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// GetMessages returns a pair conversation's messages in arrival order.
func (s *MessageService) GetMessages(ctx context.Context, in GetMessagesInput) ([]models.Message, error) {
	if in.Limit <= 0 || in.Limit > 100 {
		in.Limit = 50
	}
	conversationID := models.PairConversationID(in.UserID, in.OtherUserID)
	if in.AfterID > 0 {
		return s.messageRepo.GetAfter(ctx, conversationID, in.AfterID, in.Limit)
	}
	return s.messageRepo.GetByConversationID(ctx, conversationID, in.Limit, in.Offset)
}

// GetProposalMessages returns a proposal conversation's messages to either
// party.
func (s *MessageService) GetProposalMessages(ctx context.Context, userID, proposalID, afterID uint, limit, offset int) ([]models.Message, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if !isProposalParty(proposal, userID) {
		return nil, models.NewUnauthorizedError("You are not a party to this proposal")
	}
	if proposal.Status != models.ProposalStatusAccepted {
		return nil, models.NewConflictError("Proposal messaging opens once the proposal is accepted")
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	conversationID := models.ProposalConversationID(proposalID)
	if afterID > 0 {
		return s.messageRepo.GetAfter(ctx, conversationID, afterID, limit)
	}
	return s.messageRepo.GetByConversationID(ctx, conversationID, limit, offset)
}

// ListConversations returns the conversation keys the user participates in.
func (s *MessageService) ListConversations(ctx context.Context, userID uint) ([]string, error) {
	return s.messageRepo.ConversationIDsForUser(ctx, userID)
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("Message content is required")
	}
	if utf8.RuneCountInString(content) > maxMessageLen {
		return models.NewValidationError("Message content too long (max 5000 characters)")
	}
	return nil
}
