package main

import (
	"fmt"
	"log"
	"time"

	"playbox/internal/shared/config"
	"playbox/internal/shared/database"
	"playbox/internal/sports"
	"playbox/internal/users"
	"playbox/internal/venues"

	"github.com/google/uuid"
)

type Seeder struct {
	db *database.DB

	admin  users.User
	owners []users.User
	sports []sports.Sport
}

func main() {
	fmt.Println("Starting PlayBox database seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	fmt.Println("Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("Seeding completed. Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"bookings",
		"courts",
		"sport_prices",
		"venues",
		"sports",
		"users",
	}

	for _, table := range tables {
		if err := s.db.GetPostgreSQL().Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

func (s *Seeder) SeedAll() error {
	if err := s.seedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	if err := s.seedSports(); err != nil {
		return fmt.Errorf("failed to seed sports: %w", err)
	}
	if err := s.seedVenues(); err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}
	return nil
}

func (s *Seeder) seedUsers() error {
	db := s.db.GetPostgreSQL()

	s.admin = users.User{
		ID:    uuid.New(),
		Name:  "PlayBox Admin",
		Phone: "+919800000001",
		Email: "admin@playbox.app",
		Role:  users.RoleAdmin,
	}
	if err := db.Create(&s.admin).Error; err != nil {
		return err
	}

	ownerSeeds := []struct {
		name  string
		phone string
		email string
	}{
		{"Rohit Sharma", "+919800000002", "rohit@turfarena.in"},
		{"Priya Nair", "+919800000003", "priya@smashcourts.in"},
	}
	for _, o := range ownerSeeds {
		owner := users.User{
			ID:    uuid.New(),
			Name:  o.name,
			Phone: o.phone,
			Email: o.email,
			Role:  users.RoleOwner,
		}
		if err := db.Create(&owner).Error; err != nil {
			return err
		}
		s.owners = append(s.owners, owner)
	}

	playerSeeds := []struct {
		name  string
		phone string
	}{
		{"Arjun Mehta", "+919800000010"},
		{"Sneha Kulkarni", "+919800000011"},
		{"Vikram Singh", "+919800000012"},
	}
	for _, p := range playerSeeds {
		player := users.User{
			ID:    uuid.New(),
			Name:  p.name,
			Phone: p.phone,
			Role:  users.RoleUser,
		}
		if err := db.Create(&player).Error; err != nil {
			return err
		}
	}

	fmt.Printf("  Seeded %d users\n", 1+len(ownerSeeds)+len(playerSeeds))
	return nil
}

func (s *Seeder) seedSports() error {
	db := s.db.GetPostgreSQL()

	catalog := []struct {
		name string
		slug string
		icon string
	}{
		{"Football", "football", "football"},
		{"Cricket", "cricket", "cricket-bat"},
		{"Badminton", "badminton", "shuttlecock"},
		{"Tennis", "tennis", "tennis-ball"},
		{"Basketball", "basketball", "basketball"},
	}

	for _, c := range catalog {
		sport := sports.Sport{
			ID:        uuid.New(),
			Name:      c.name,
			Slug:      c.slug,
			Icon:      c.icon,
			IsActive:  true,
			CreatedBy: s.admin.ID,
		}
		if err := db.Create(&sport).Error; err != nil {
			return err
		}
		s.sports = append(s.sports, sport)
	}

	fmt.Printf("  Seeded %d sports\n", len(catalog))
	return nil
}

func (s *Seeder) seedVenues() error {
	db := s.db.GetPostgreSQL()

	venueSeeds := []struct {
		owner     users.User
		name      string
		city      string
		openHour  int
		closeHour int
		prices    map[string]float64
		courts    map[string][]string
	}{
		{
			owner:     s.owners[0],
			name:      "Turf Arena Andheri",
			city:      "Mumbai",
			openHour:  6,
			closeHour: 23,
			prices:    map[string]float64{"football": 1200, "cricket": 1500},
			courts: map[string][]string{
				"football": {"Turf 1", "Turf 2"},
				"cricket":  {"Net 1"},
			},
		},
		{
			owner:     s.owners[1],
			name:      "Smash Courts Koramangala",
			city:      "Bengaluru",
			openHour:  7,
			closeHour: 22,
			prices:    map[string]float64{"badminton": 400, "tennis": 600},
			courts: map[string][]string{
				"badminton": {"Court A", "Court B", "Court C"},
				"tennis":    {"Court 1"},
			},
		},
	}

	totalCourts := 0
	for _, vs := range venueSeeds {
		venue := venues.Venue{
			ID:        uuid.New(),
			OwnerID:   vs.owner.ID,
			Name:      vs.name,
			Address:   fmt.Sprintf("%s, %s", vs.name, vs.city),
			City:      vs.city,
			Timezone:  "Asia/Kolkata",
			OpenHour:  vs.openHour,
			CloseHour: vs.closeHour,
			IsActive:  true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := db.Create(&venue).Error; err != nil {
			return err
		}

		for sport, price := range vs.prices {
			sp := venues.SportPrice{
				ID:           uuid.New(),
				VenueID:      venue.ID,
				Sport:        sport,
				PricePerHour: price,
			}
			if err := db.Create(&sp).Error; err != nil {
				return err
			}
		}

		for sport, names := range vs.courts {
			for _, name := range names {
				court := venues.Court{
					ID:       uuid.New(),
					VenueID:  venue.ID,
					Sport:    sport,
					Name:     name,
					IsActive: true,
				}
				if err := db.Create(&court).Error; err != nil {
					return err
				}
				totalCourts++
			}
		}
	}

	fmt.Printf("  Seeded %d venues with %d courts\n", len(venueSeeds), totalCourts)
	return nil
}
