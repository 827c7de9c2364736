package models

import (
	"time"

	"gorm.io/gorm"
)

// ProposalStatus represents the lifecycle state of an influencer's bid.
type ProposalStatus string

const (
	// ProposalStatusUnderReview is the initial state of every proposal.
	ProposalStatusUnderReview ProposalStatus = "under_review"
	// ProposalStatusAccepted means the brand accepted the bid.
	ProposalStatusAccepted ProposalStatus = "accepted"
	// ProposalStatusRejected is terminal.
	ProposalStatusRejected ProposalStatus = "rejected"
	// ProposalStatusWithdrawn is terminal.
	ProposalStatusWithdrawn ProposalStatus = "withdrawn"
)

// Proposal represents an influencer's bid on a listing.
// InfluencerID is immutable once created. At most one proposal may exist per
// (listing, influencer) pair; the composite unique index backs the
// service-level duplicate check against concurrent creations.
type Proposal struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	ListingID      uint           `gorm:"not null;uniqueIndex:idx_proposal_listing_influencer" json:"listing_id"`
	Listing        Listing        `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
	InfluencerID   uint           `gorm:"not null;uniqueIndex:idx_proposal_listing_influencer" json:"influencer_id"`
	Influencer     User           `gorm:"foreignKey:InfluencerID" json:"influencer,omitempty"`
	Message        string         `gorm:"type:text;not null" json:"message"`
	ProposedBudget int64          `gorm:"not null" json:"proposed_budget"`
	Timeline       string         `gorm:"not null" json:"timeline"`
	Status         ProposalStatus `gorm:"type:varchar(20);not null;default:'under_review';index" json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Deliverables []Deliverable `gorm:"foreignKey:ProposalID" json:"deliverables,omitempty"`
}
