package seed

import (
	"fmt"
	"log"

	"collabhub/internal/models"

	"gorm.io/gorm"
)

// Options configures how much data the seeder generates.
type Options struct {
	NumBrands      int
	NumInfluencers int
	NumListings    int
	ShouldClean    bool
}

// Seed populates the database with a realistic marketplace: brands with
// listings, influencers with proposals in every lifecycle state, deliverables
// under the accepted ones, and message traffic between the parties.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d brands, %d influencers, %d listings...",
		opts.NumBrands, opts.NumInfluencers, opts.NumListings)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db)

	brands := make([]*models.User, 0, opts.NumBrands)
	for i := 0; i < opts.NumBrands; i++ {
		brand, err := f.CreateBrand()
		if err != nil {
			return fmt.Errorf("failed to create brand: %w", err)
		}
		brands = append(brands, brand)
	}
	log.Printf("created %d brands", len(brands))

	influencers := make([]*models.User, 0, opts.NumInfluencers)
	for i := 0; i < opts.NumInfluencers; i++ {
		influencer, err := f.CreateInfluencer()
		if err != nil {
			return fmt.Errorf("failed to create influencer: %w", err)
		}
		influencers = append(influencers, influencer)
	}
	log.Printf("created %d influencers", len(influencers))

	if len(brands) == 0 || len(influencers) == 0 {
		return nil
	}

	listings := make([]*models.Listing, 0, opts.NumListings)
	for i := 0; i < opts.NumListings; i++ {
		brand := brands[f.r.Intn(len(brands))]
		listing, err := f.CreateListing(brand)
		if err != nil {
			return fmt.Errorf("failed to create listing: %w", err)
		}
		listings = append(listings, listing)
	}
	log.Printf("created %d listings", len(listings))

	if err := seedEngagement(f, listings, influencers); err != nil {
		return err
	}

	log.Println("Seeding complete. All accounts use the password:", DefaultPassword)
	return nil
}

// seedEngagement attaches proposals to listings, walks a share of them through
// accept/reject, and builds deliverables and conversations under the accepted
// ones.
func seedEngagement(f *Factory, listings []*models.Listing, influencers []*models.User) error {
	proposalStatuses := []models.ProposalStatus{
		models.ProposalStatusUnderReview,
		models.ProposalStatusAccepted,
		models.ProposalStatusRejected,
		models.ProposalStatusWithdrawn,
	}

	var accepted []*models.Proposal
	for _, listing := range listings {
		// each listing gets proposals from a random subset of influencers
		count := 1 + f.r.Intn(3)
		if count > len(influencers) {
			count = len(influencers)
		}
		for _, idx := range f.r.Perm(len(influencers))[:count] {
			status := proposalStatuses[f.r.Intn(len(proposalStatuses))]
			proposal, err := f.CreateProposal(listing, influencers[idx], func(p *models.Proposal) {
				p.Status = status
			})
			if err != nil {
				return fmt.Errorf("failed to create proposal: %w", err)
			}
			if status == models.ProposalStatusAccepted {
				proposal.Listing = *listing
				accepted = append(accepted, proposal)
			}
		}
	}
	log.Printf("created proposals, %d accepted", len(accepted))

	deliverableStatuses := []models.DeliverableStatus{
		models.DeliverableStatusPending,
		models.DeliverableStatusSubmitted,
		models.DeliverableStatusApproved,
		models.DeliverableStatusRevisionRequested,
	}

	for _, proposal := range accepted {
		for i := 0; i < 1+f.r.Intn(3); i++ {
			status := deliverableStatuses[f.r.Intn(len(deliverableStatuses))]
			_, err := f.CreateDeliverable(proposal, func(d *models.Deliverable) {
				d.Status = status
				if status != models.DeliverableStatusPending {
					d.FileURL = fmt.Sprintf("https://cdn.collabhub.example/uploads/%d-%d.mp4", proposal.ID, i)
				}
				if status == models.DeliverableStatusRevisionRequested {
					d.ReviewNotes = "Please adjust the opening shot to match the brief"
				}
			})
			if err != nil {
				return fmt.Errorf("failed to create deliverable: %w", err)
			}
		}

		// a short back-and-forth in the proposal conversation
		brandID := proposal.Listing.BrandID
		if _, err := f.CreateProposalMessage(proposal, proposal.InfluencerID, brandID); err != nil {
			return fmt.Errorf("failed to create message: %w", err)
		}
		if _, err := f.CreateProposalMessage(proposal, brandID, proposal.InfluencerID); err != nil {
			return fmt.Errorf("failed to create message: %w", err)
		}
	}

	return nil
}

// clearData wipes all seeded tables. Ordered children-first so foreign keys
// hold on databases that enforce them.
func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	for _, model := range []any{
		&models.Message{},
		&models.Deliverable{},
		&models.Proposal{},
		&models.Listing{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
