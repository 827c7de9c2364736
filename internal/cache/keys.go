package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	listingKeyPrefix  = "listing:%d"
	listingsFeedKey   = "listings:feed"
	userKeyPrefix     = "user:%d"
	proposalKeyPrefix = "proposal:%d"
)

const (
	ListingTTL      = 10 * time.Minute
	ListingsFeedTTL = 2 * time.Minute
	UserTTL         = 5 * time.Minute
)

// ListingKey returns the cache key for a single listing.
func ListingKey(listingID uint) string {
	return fmt.Sprintf(listingKeyPrefix, listingID)
}

// ListingsFeedKey returns the cache key for the public listings feed
// (first page, no filters).
func ListingsFeedKey() string {
	return listingsFeedKey
}

// UserKey returns the cache key for a public user profile.
func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

// InvalidateListing drops a listing and the public feed.
func InvalidateListing(ctx context.Context, listingID uint) {
	Invalidate(ctx, ListingKey(listingID))
	Invalidate(ctx, listingsFeedKey)
}

// InvalidateListingsFeed drops only the public feed.
func InvalidateListingsFeed(ctx context.Context) {
	Invalidate(ctx, listingsFeedKey)
}

// InvalidateUser drops a cached user profile.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}
