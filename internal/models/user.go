// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// UserType distinguishes the two sides of the marketplace.
type UserType string

const (
	// UserTypeBrand posts listings and reviews work.
	UserTypeBrand UserType = "brand"
	// UserTypeInfluencer submits proposals and delivers content.
	UserTypeInfluencer UserType = "influencer"
)

// Valid reports whether t is a known user type.
func (t UserType) Valid() bool {
	return t == UserTypeBrand || t == UserTypeInfluencer
}

// User represents a registered brand or influencer account.
// UserType is fixed at registration and never changes afterwards.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Email       string         `gorm:"unique;not null" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	UserType    UserType       `gorm:"type:varchar(20);not null;index" json:"user_type"`
	Bio         string         `json:"bio"`
	Website     string         `json:"website"`
	SocialMedia string         `json:"social_media"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Listings []Listing `gorm:"foreignKey:BrandID" json:"listings,omitempty"`
}
