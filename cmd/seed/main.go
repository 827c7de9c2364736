// Command main runs the database seeder for CollabHub.
package main

import (
	"flag"
	"log"

	"collabhub/internal/config"
	"collabhub/internal/database"
	"collabhub/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	numBrands := flag.Int("brands", 10, "Number of brand accounts to create")
	numInfluencers := flag.Int("influencers", 40, "Number of influencer accounts to create")
	numListings := flag.Int("listings", 30, "Number of listings to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	fixturesPath := flag.String("fixtures", "", "Optional YAML fixtures file with named demo accounts")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumBrands:      *numBrands,
		NumInfluencers: *numInfluencers,
		NumListings:    *numListings,
		ShouldClean:    *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	if *fixturesPath != "" {
		fixtures, err := seed.LoadFixtures(*fixturesPath)
		if err != nil {
			log.Fatalf("Failed to load fixtures: %v", err)
		}
		if err := fixtures.Apply(db); err != nil {
			log.Fatalf("Failed to apply fixtures: %v", err)
		}
		log.Printf("Applied fixtures from %s", *fixturesPath)
	}
}
