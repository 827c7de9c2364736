// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"collabhub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the login password for every seeded account.
const DefaultPassword = "Password123Demo"

var categories = []string{
	"fashion", "beauty", "fitness", "food", "travel",
	"tech", "gaming", "lifestyle", "music", "parenting",
}

var timelines = []string{
	"1 week", "2 weeks", "3 weeks", "1 month", "6 weeks",
}

var deliverableTypes = []models.DeliverableType{
	models.DeliverableTypeImage, models.DeliverableTypeVideo,
	models.DeliverableTypePost, models.DeliverableTypeStory,
	models.DeliverableTypeReel,
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db: db,
		//nolint:gosec // weak randomness is fine for seed data
		r: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateBrand constructs and persists a brand account.
func (f *Factory) CreateBrand(overrides ...func(*models.User)) (*models.User, error) {
	company := gofakeit.Company()
	user := &models.User{
		Name:        company,
		Email:       gofakeit.Email(),
		Password:    hashedDefaultPassword(),
		UserType:    models.UserTypeBrand,
		Bio:         gofakeit.Sentence(12),
		Website:     gofakeit.URL(),
		SocialMedia: fmt.Sprintf("@%s", gofakeit.Username()),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateInfluencer constructs and persists an influencer account.
func (f *Factory) CreateInfluencer(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Name:        gofakeit.Name(),
		Email:       gofakeit.Email(),
		Password:    hashedDefaultPassword(),
		UserType:    models.UserTypeInfluencer,
		Bio:         gofakeit.Sentence(15),
		Website:     gofakeit.URL(),
		SocialMedia: fmt.Sprintf("@%s", gofakeit.Username()),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateListing constructs and persists an active listing owned by the brand.
func (f *Factory) CreateListing(brand *models.User, overrides ...func(*models.Listing)) (*models.Listing, error) {
	deadline := time.Now().AddDate(0, 0, 7+f.r.Intn(30))
	campaignDeadline := deadline.AddDate(0, 0, 14+f.r.Intn(30))

	listing := &models.Listing{
		BrandID:          brand.ID,
		Title:            gofakeit.Sentence(5),
		Description:      gofakeit.Paragraph(1, 3, 8, "\n"),
		Category:         categories[f.r.Intn(len(categories))],
		Budget:           int64(gofakeit.Number(500, 50000)) * 100,
		Deadline:         deadline,
		CampaignDeadline: &campaignDeadline,
		Requirements:     gofakeit.Sentence(10),
		Deliverables:     gofakeit.Sentence(8),
		Status:           models.ListingStatusActive,
	}
	listing.CreatedAt = f.pastTime(30)
	for _, override := range overrides {
		override(listing)
	}
	if err := f.db.Create(listing).Error; err != nil {
		return nil, err
	}
	return listing, nil
}

// CreateProposal constructs and persists a proposal from the influencer on the
// listing. The (listing, influencer) pair must not already hold a proposal.
func (f *Factory) CreateProposal(listing *models.Listing, influencer *models.User, overrides ...func(*models.Proposal)) (*models.Proposal, error) {
	proposal := &models.Proposal{
		ListingID:      listing.ID,
		InfluencerID:   influencer.ID,
		Message:        gofakeit.Paragraph(1, 2, 10, "\n"),
		ProposedBudget: listing.Budget - int64(f.r.Intn(int(listing.Budget/4)+1)),
		Timeline:       timelines[f.r.Intn(len(timelines))],
		Status:         models.ProposalStatusUnderReview,
	}
	proposal.CreatedAt = f.pastTime(20)
	for _, override := range overrides {
		override(proposal)
	}
	if err := f.db.Create(proposal).Error; err != nil {
		return nil, err
	}
	return proposal, nil
}

// CreateDeliverable constructs and persists a deliverable under the proposal.
// Callers are responsible for only passing accepted proposals.
func (f *Factory) CreateDeliverable(proposal *models.Proposal, overrides ...func(*models.Deliverable)) (*models.Deliverable, error) {
	dueDate := time.Now().AddDate(0, 0, 7+f.r.Intn(21))
	deliverable := &models.Deliverable{
		ProposalID:  proposal.ID,
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Sentence(12),
		Type:        deliverableTypes[f.r.Intn(len(deliverableTypes))],
		DueDate:     &dueDate,
		Status:      models.DeliverableStatusPending,
	}
	for _, override := range overrides {
		override(deliverable)
	}
	if err := f.db.Create(deliverable).Error; err != nil {
		return nil, err
	}
	return deliverable, nil
}

// CreatePairMessage persists a direct message between two users.
func (f *Factory) CreatePairMessage(senderID, recipientID uint, overrides ...func(*models.Message)) (*models.Message, error) {
	message := &models.Message{
		ConversationID: models.PairConversationID(senderID, recipientID),
		SenderID:       senderID,
		RecipientID:    recipientID,
		Content:        gofakeit.Sentence(10),
	}
	message.CreatedAt = f.pastTime(10)
	for _, override := range overrides {
		override(message)
	}
	if err := f.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// CreateProposalMessage persists a message in a proposal's conversation.
func (f *Factory) CreateProposalMessage(proposal *models.Proposal, senderID, recipientID uint, overrides ...func(*models.Message)) (*models.Message, error) {
	message := &models.Message{
		ConversationID: models.ProposalConversationID(proposal.ID),
		SenderID:       senderID,
		RecipientID:    recipientID,
		Content:        gofakeit.Sentence(12),
	}
	message.CreatedAt = f.pastTime(10)
	for _, override := range overrides {
		override(message)
	}
	if err := f.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// pastTime returns a timestamp spread over the last maxDays days so seeded
// feeds look organic.
func (f *Factory) pastTime(maxDays int) time.Time {
	return time.Now().
		Add(-time.Duration(f.r.Intn(maxDays*24)) * time.Hour).
		Add(-time.Duration(f.r.Intn(60)) * time.Minute)
}

var cachedPasswordHash string

func hashedDefaultPassword() string {
	if cachedPasswordHash == "" {
		hashed, _ := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
		cachedPasswordHash = string(hashed)
	}
	return cachedPasswordHash
}
