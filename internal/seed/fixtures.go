package seed

import (
	"fmt"
	"os"
	"time"

	"collabhub/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Fixtures describes deterministic demo data loaded from a YAML file. Unlike
// the random mesh, fixtures produce stable named accounts useful for demos
// and manual testing.
type Fixtures struct {
	Brands []struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Bio      string `yaml:"bio"`
		Website  string `yaml:"website"`
		Listings []struct {
			Title        string `yaml:"title"`
			Description  string `yaml:"description"`
			Category     string `yaml:"category"`
			Budget       int64  `yaml:"budget"`
			DeadlineDays int    `yaml:"deadline_days"`
		} `yaml:"listings"`
	} `yaml:"brands"`
	Influencers []struct {
		Name        string `yaml:"name"`
		Email       string `yaml:"email"`
		Bio         string `yaml:"bio"`
		SocialMedia string `yaml:"social_media"`
	} `yaml:"influencers"`
}

// LoadFixtures parses a fixtures YAML file.
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures file: %w", err)
	}
	var fixtures Fixtures
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures file: %w", err)
	}
	return &fixtures, nil
}

// Apply creates the fixture accounts and listings. Existing rows with the
// same email are left untouched.
func (fx *Fixtures) Apply(db *gorm.DB) error {
	f := NewFactory(db)

	for _, b := range fx.Brands {
		var existing models.User
		err := db.Where("email = ?", b.Email).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		brand, err := f.CreateBrand(func(u *models.User) {
			u.Name = b.Name
			u.Email = b.Email
			u.Bio = b.Bio
			u.Website = b.Website
		})
		if err != nil {
			return fmt.Errorf("failed to create fixture brand %s: %w", b.Email, err)
		}

		for _, l := range b.Listings {
			deadlineDays := l.DeadlineDays
			if deadlineDays <= 0 {
				deadlineDays = 14
			}
			deadline := time.Now().AddDate(0, 0, deadlineDays)
			_, err := f.CreateListing(brand, func(listing *models.Listing) {
				listing.Title = l.Title
				listing.Description = l.Description
				listing.Category = l.Category
				listing.Budget = l.Budget
				listing.Deadline = deadline
			})
			if err != nil {
				return fmt.Errorf("failed to create fixture listing %q: %w", l.Title, err)
			}
		}
	}

	for _, i := range fx.Influencers {
		var existing models.User
		err := db.Where("email = ?", i.Email).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		_, err = f.CreateInfluencer(func(u *models.User) {
			u.Name = i.Name
			u.Email = i.Email
			u.Bio = i.Bio
			u.SocialMedia = i.SocialMedia
		})
		if err != nil {
			return fmt.Errorf("failed to create fixture influencer %s: %w", i.Email, err)
		}
	}

	return nil
}
