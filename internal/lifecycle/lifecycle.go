// Package lifecycle is the single source of truth for status transitions on
// proposals, deliverables and listings. Services consult these tables instead
// of re-deriving conditions from status strings at each call site.
package lifecycle

import "collabhub/internal/models"

var proposalTransitions = map[models.ProposalStatus][]models.ProposalStatus{
	models.ProposalStatusUnderReview: {
		models.ProposalStatusAccepted,
		models.ProposalStatusRejected,
		models.ProposalStatusWithdrawn,
	},
	// No path back to under_review once accepted.
	models.ProposalStatusAccepted: {
		models.ProposalStatusWithdrawn,
	},
	models.ProposalStatusRejected:  nil,
	models.ProposalStatusWithdrawn: nil,
}

var deliverableTransitions = map[models.DeliverableStatus][]models.DeliverableStatus{
	models.DeliverableStatusPending: {
		models.DeliverableStatusSubmitted,
	},
	// Direct approval/rejection from submitted is allowed; under_review is an
	// optional triage step, not a mandatory one.
	models.DeliverableStatusSubmitted: {
		models.DeliverableStatusUnderReview,
		models.DeliverableStatusApproved,
		models.DeliverableStatusRejected,
		models.DeliverableStatusRevisionRequested,
	},
	models.DeliverableStatusUnderReview: {
		models.DeliverableStatusApproved,
		models.DeliverableStatusRejected,
		models.DeliverableStatusRevisionRequested,
	},
	models.DeliverableStatusRevisionRequested: {
		models.DeliverableStatusSubmitted,
		models.DeliverableStatusRejected,
	},
	models.DeliverableStatusApproved: nil,
	models.DeliverableStatusRejected: nil,
}

var listingTransitions = map[models.ListingStatus][]models.ListingStatus{
	models.ListingStatusActive: {
		models.ListingStatusClosed,
		models.ListingStatusCompleted,
	},
	models.ListingStatusClosed: {
		models.ListingStatusCompleted,
	},
	models.ListingStatusCompleted: nil,
}

// CanTransitionProposal reports whether a proposal may move from one status to
// another.
func CanTransitionProposal(from, to models.ProposalStatus) bool {
	for _, next := range proposalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransitionDeliverable reports whether a deliverable may move from one
// status to another.
func CanTransitionDeliverable(from, to models.DeliverableStatus) bool {
	for _, next := range deliverableTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransitionListing reports whether a listing may move from one status to
// another.
func CanTransitionListing(from, to models.ListingStatus) bool {
	for _, next := range listingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidProposalStatus reports whether s names a known proposal status.
func ValidProposalStatus(s models.ProposalStatus) bool {
	_, ok := proposalTransitions[s]
	return ok
}

// ValidDeliverableStatus reports whether s names a known deliverable status.
func ValidDeliverableStatus(s models.DeliverableStatus) bool {
	_, ok := deliverableTransitions[s]
	return ok
}

// ValidListingStatus reports whether s names a known listing status.
func ValidListingStatus(s models.ListingStatus) bool {
	_, ok := listingTransitions[s]
	return ok
}

// ReviewRequiresNotes reports whether a review moving a deliverable to the
// given status must carry non-empty review notes. Approval never requires
// notes; rejection and revision requests always do.
func ReviewRequiresNotes(to models.DeliverableStatus) bool {
	return to == models.DeliverableStatusRejected ||
		to == models.DeliverableStatusRevisionRequested
}

// ReviewOutcome reports whether the given status is a state a brand review
// may set (as opposed to submission-side states).
func ReviewOutcome(to models.DeliverableStatus) bool {
	switch to {
	case models.DeliverableStatusUnderReview,
		models.DeliverableStatusApproved,
		models.DeliverableStatusRejected,
		models.DeliverableStatusRevisionRequested:
		return true
	}
	return false
}

// SubmittableFrom reports whether an influencer may submit work for a
// deliverable currently in the given status.
func SubmittableFrom(from models.DeliverableStatus) bool {
	return from == models.DeliverableStatusPending ||
		from == models.DeliverableStatusRevisionRequested
}

// ReviewableFrom reports whether a brand may review a deliverable currently
// in the given status.
func ReviewableFrom(from models.DeliverableStatus) bool {
	return from == models.DeliverableStatusSubmitted ||
		from == models.DeliverableStatusUnderReview
}
