package models

import (
	"time"

	"gorm.io/gorm"
)

// ListingStatus represents the lifecycle state of a campaign listing.
type ListingStatus string

const (
	// ListingStatusActive accepts new proposals.
	ListingStatusActive ListingStatus = "active"
	// ListingStatusClosed no longer accepts proposals.
	ListingStatusClosed ListingStatus = "closed"
	// ListingStatusCompleted marks a finished campaign.
	ListingStatusCompleted ListingStatus = "completed"
)

// Listing represents a brand's campaign posting accepting proposals from influencers.
type Listing struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	BrandID     uint   `gorm:"not null;index" json:"brand_id"`
	Brand       User   `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Category    string `gorm:"not null;index" json:"category"`
	Budget      int64  `gorm:"not null" json:"budget"`
	// Deadline is the application cutoff for proposals.
	Deadline time.Time `gorm:"not null" json:"deadline"`
	// CampaignDeadline is the optional execution cutoff for the campaign itself.
	CampaignDeadline *time.Time     `json:"campaign_deadline,omitempty"`
	Requirements     string         `gorm:"type:text" json:"requirements"`
	Deliverables     string         `gorm:"type:text" json:"deliverables"`
	Status           ListingStatus  `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	Proposals []Proposal `gorm:"foreignKey:ListingID" json:"proposals,omitempty"`
	// ProposalsCount is not persisted; computed at query time
	ProposalsCount int `gorm:"->" json:"proposals_count"`
}
