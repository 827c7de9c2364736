package validation

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"collabhub/internal/models"
)

const (
	maxTitleLen   = 200
	maxNotesLen   = 1000
	maxFileURLLen = 500
)

// ListingInput carries the fields checked before a listing is persisted.
type ListingInput struct {
	Title       string
	Description string
	Category    string
	Budget      int64
	Deadline    time.Time
}

// ValidateListing collects all field violations for a new listing.
// now is injected so deadline checks stay deterministic in tests.
func ValidateListing(in ListingInput, now time.Time) []string {
	return validateListingFields(in, now, true)
}

// ValidateListingEdit revalidates an edited listing. The deadline is only
// rechecked when the edit changes it, so a content-only edit to a listing
// whose application window has already closed still goes through.
func ValidateListingEdit(in ListingInput, now time.Time, deadlineChanged bool) []string {
	return validateListingFields(in, now, deadlineChanged)
}

func validateListingFields(in ListingInput, now time.Time, checkDeadline bool) []string {
	var violations []string

	if strings.TrimSpace(in.Title) == "" {
		violations = append(violations, "title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		violations = append(violations, "description is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		violations = append(violations, "category is required")
	}
	if in.Budget <= 0 {
		violations = append(violations, "budget must be a positive integer")
	}
	if checkDeadline {
		if in.Deadline.IsZero() {
			violations = append(violations, "deadline is required")
		} else if !in.Deadline.After(now) {
			violations = append(violations, "deadline must be in the future")
		}
	}

	return violations
}

// ProposalInput carries the fields checked before a proposal is persisted.
type ProposalInput struct {
	Message        string
	ProposedBudget int64
	Timeline       string
}

// ValidateProposal collects all field violations for a new or edited proposal.
func ValidateProposal(in ProposalInput) []string {
	var violations []string

	if strings.TrimSpace(in.Message) == "" {
		violations = append(violations, "message is required")
	}
	if in.ProposedBudget <= 0 {
		violations = append(violations, "proposed_budget must be a positive integer")
	}
	if strings.TrimSpace(in.Timeline) == "" {
		violations = append(violations, "timeline is required")
	}

	return violations
}

// DeliverableInput carries the fields checked before a deliverable is created.
type DeliverableInput struct {
	Title       string
	Description string
	Type        models.DeliverableType
	DueDate     *time.Time
}

// ValidateDeliverable collects all field violations for a new deliverable.
func ValidateDeliverable(in DeliverableInput, now time.Time) []string {
	var violations []string

	if strings.TrimSpace(in.Title) == "" {
		violations = append(violations, "title is required")
	}
	if utf8.RuneCountInString(in.Title) > maxTitleLen {
		violations = append(violations, fmt.Sprintf("title must not exceed %d characters", maxTitleLen))
	}
	if !in.Type.Valid() {
		violations = append(violations, "type must be one of image, video, post, story, reel, other")
	}
	if utf8.RuneCountInString(in.Description) > maxNotesLen {
		violations = append(violations, fmt.Sprintf("description must not exceed %d characters", maxNotesLen))
	}
	if in.DueDate != nil && in.DueDate.Before(now) {
		violations = append(violations, "due_date must not be in the past")
	}

	return violations
}

// ValidateSubmission checks the influencer-supplied submission fields.
func ValidateSubmission(fileURL, submissionNotes string) []string {
	var violations []string

	if fileURL != "" {
		violations = append(violations, validateFileURL(fileURL)...)
	}
	if utf8.RuneCountInString(submissionNotes) > maxNotesLen {
		violations = append(violations, fmt.Sprintf("submission_notes must not exceed %d characters", maxNotesLen))
	}

	return violations
}

// ValidateReviewNotes checks the brand-supplied review justification.
// requireNotes reflects the lifecycle rule: rejections and revision requests
// must carry notes, approvals need none.
func ValidateReviewNotes(reviewNotes string, requireNotes bool) []string {
	var violations []string

	if requireNotes && strings.TrimSpace(reviewNotes) == "" {
		violations = append(violations, "review_notes are required for rejections and revision requests")
	}
	if utf8.RuneCountInString(reviewNotes) > maxNotesLen {
		violations = append(violations, fmt.Sprintf("review_notes must not exceed %d characters", maxNotesLen))
	}

	return violations
}

func validateFileURL(fileURL string) []string {
	var violations []string

	if utf8.RuneCountInString(fileURL) > maxFileURLLen {
		violations = append(violations, fmt.Sprintf("file_url must not exceed %d characters", maxFileURLLen))
	}
	parsed, err := url.ParseRequestURI(fileURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		violations = append(violations, "file_url must be a well-formed absolute URL")
	}

	return violations
}
