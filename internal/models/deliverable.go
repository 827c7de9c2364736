package models

import (
	"time"

	"gorm.io/gorm"
)

// DeliverableStatus represents the submit/review lifecycle of a deliverable.
type DeliverableStatus string

const (
	// DeliverableStatusPending awaits the influencer's first submission.
	DeliverableStatusPending DeliverableStatus = "pending"
	// DeliverableStatusSubmitted awaits the brand's review.
	DeliverableStatusSubmitted DeliverableStatus = "submitted"
	// DeliverableStatusUnderReview is an optional explicit triage state.
	DeliverableStatusUnderReview DeliverableStatus = "under_review"
	// DeliverableStatusApproved is terminal.
	DeliverableStatusApproved DeliverableStatus = "approved"
	// DeliverableStatusRejected is terminal.
	DeliverableStatusRejected DeliverableStatus = "rejected"
	// DeliverableStatusRevisionRequested sends the work back to the influencer.
	DeliverableStatusRevisionRequested DeliverableStatus = "revision_requested"
)

// DeliverableType enumerates the kinds of content work a brand can assign.
type DeliverableType string

const (
	DeliverableTypeImage DeliverableType = "image"
	DeliverableTypeVideo DeliverableType = "video"
	DeliverableTypePost  DeliverableType = "post"
	DeliverableTypeStory DeliverableType = "story"
	DeliverableTypeReel  DeliverableType = "reel"
	DeliverableTypeOther DeliverableType = "other"
)

// Valid reports whether t is a known deliverable type.
func (t DeliverableType) Valid() bool {
	switch t {
	case DeliverableTypeImage, DeliverableTypeVideo, DeliverableTypePost,
		DeliverableTypeStory, DeliverableTypeReel, DeliverableTypeOther:
		return true
	}
	return false
}

// Deliverable represents a unit of content work assigned to an influencer
// after a proposal is accepted. It never exists under a non-accepted proposal.
type Deliverable struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	ProposalID      uint              `gorm:"not null;index" json:"proposal_id"`
	Proposal        Proposal          `gorm:"foreignKey:ProposalID" json:"proposal,omitempty"`
	Title           string            `gorm:"not null" json:"title"`
	Description     string            `gorm:"type:text" json:"description"`
	Type            DeliverableType   `gorm:"type:varchar(20);not null" json:"type"`
	DueDate         *time.Time        `json:"due_date,omitempty"`
	Status          DeliverableStatus `gorm:"type:varchar(30);not null;default:'pending';index" json:"status"`
	FileURL         string            `json:"file_url"`
	SubmissionNotes string            `gorm:"type:text" json:"submission_notes"`
	ReviewNotes     string            `gorm:"type:text" json:"review_notes"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	DeletedAt       gorm.DeletedAt    `gorm:"index" json:"-"`
}
