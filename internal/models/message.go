package models

import (
	"fmt"
	"time"
)

// Message represents a single message inside a conversation.
// ConversationID is a deterministic string key, not a foreign key: either a
// sorted user pair ("3-17") for general messaging or "proposal-42" for
// proposal-scoped chat. Clients poll for new messages; there is no push
// transport.
type Message struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ConversationID string    `gorm:"not null;index" json:"conversation_id"`
	SenderID       uint      `gorm:"not null;index" json:"sender_id"`
	Sender         User      `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	RecipientID    uint      `gorm:"not null;index" json:"recipient_id"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// PairConversationID returns the deterministic conversation key for two users.
func PairConversationID(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d-%d", a, b)
}

// ProposalConversationID returns the conversation key scoped to a proposal.
func ProposalConversationID(proposalID uint) string {
	return fmt.Sprintf("proposal-%d", proposalID)
}
