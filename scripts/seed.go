package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"event-portal-backend/internal/auth"
	"event-portal-backend/internal/config"
	"event-portal-backend/internal/database"
	"event-portal-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Seed data structures matching the YAML layout

type UserData struct {
	Email            string `yaml:"email"`
	Password         string `yaml:"password"`
	Role             string `yaml:"role"`
	FirstName        string `yaml:"first_name,omitempty"`
	LastName         string `yaml:"last_name,omitempty"`
	CollegeName      string `yaml:"college_name,omitempty"`
	OrganizationName string `yaml:"organization_name,omitempty"`
	Category         string `yaml:"category,omitempty"`
	Description      string `yaml:"description,omitempty"`
}

type EventData struct {
	Name              string   `yaml:"name"`
	Description       string   `yaml:"description,omitempty"`
	Type              string   `yaml:"type"`
	Eligibility       string   `yaml:"eligibility,omitempty"`
	OrganizerEmail    string   `yaml:"organizer_email"`
	DeadlineInDays    int      `yaml:"deadline_in_days"`
	StartInDays       int      `yaml:"start_in_days"`
	EndInDays         int      `yaml:"end_in_days"`
	RegistrationLimit int      `yaml:"registration_limit"`
	RegistrationFee   float64  `yaml:"registration_fee,omitempty"`
	TeamBased         bool     `yaml:"team_based,omitempty"`
	MinTeamSize       int      `yaml:"min_team_size,omitempty"`
	MaxTeamSize       int      `yaml:"max_team_size,omitempty"`
	StockQuantity     int      `yaml:"stock_quantity,omitempty"`
	PurchaseLimit     int      `yaml:"purchase_limit,omitempty"`
	Tags              []string `yaml:"tags,omitempty"`
	Publish           bool     `yaml:"publish"`
}

type SeedFile struct {
	Users  []UserData  `yaml:"users"`
	Events []EventData `yaml:"events"`
}

func main() {
	path := flag.String("file", "scripts/seed_data.yaml", "path to the seed YAML file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("failed to read seed file %s: %v", *path, err)
	}
	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("failed to parse seed file: %v", err)
	}

	if err := loadUsers(db, seed.Users); err != nil {
		log.Fatalf("failed to load users: %v", err)
	}
	if err := loadEvents(db, seed.Events); err != nil {
		log.Fatalf("failed to load events: %v", err)
	}
	log.Printf("seeded %d users and %d events", len(seed.Users), len(seed.Events))
}

// loadUsers upserts accounts by email; existing accounts are left untouched
func loadUsers(db *gorm.DB, users []UserData) error {
	for _, data := range users {
		var count int64
		if err := db.Model(&models.User{}).Where("email = ?", data.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Printf("user %s already exists, skipping", data.Email)
			continue
		}

		role := models.UserRole(data.Role)
		if !role.IsValid() {
			return fmt.Errorf("user %s: invalid role %q", data.Email, data.Role)
		}
		hash, err := auth.HashPassword(data.Password)
		if err != nil {
			return err
		}
		user := &models.User{
			Email:            data.Email,
			PasswordHash:     hash,
			Role:             role,
			FirstName:        data.FirstName,
			LastName:         data.LastName,
			CollegeName:      data.CollegeName,
			OrganizationName: data.OrganizationName,
			Category:         data.Category,
			Description:      data.Description,
			IsActive:         true,
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("user %s: %w", data.Email, err)
		}
	}
	return nil
}

// loadEvents creates events owned by previously seeded organizers. Dates are
// relative to now so a fresh seed is always registrable.
func loadEvents(db *gorm.DB, events []EventData) error {
	now := time.Now()
	for _, data := range events {
		var organizer models.User
		err := db.Where("email = ? AND role = ?", data.OrganizerEmail, models.UserRoleOrganizer).
			First(&organizer).Error
		if err != nil {
			return fmt.Errorf("event %s: organizer %s not found", data.Name, data.OrganizerEmail)
		}

		var count int64
		if err := db.Model(&models.Event{}).
			Where("name = ? AND organizer_id = ?", data.Name, organizer.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Printf("event %s already exists, skipping", data.Name)
			continue
		}

		eventType := models.EventType(data.Type)
		if !eventType.IsValid() {
			return fmt.Errorf("event %s: invalid type %q", data.Name, data.Type)
		}
		eligibility := models.Eligibility(data.Eligibility)
		if data.Eligibility == "" {
			eligibility = models.EligibilityAll
		}
		purchaseLimit := data.PurchaseLimit
		if purchaseLimit == 0 {
			purchaseLimit = 1
		}

		event := &models.Event{
			Name:                 data.Name,
			Description:          data.Description,
			Type:                 eventType,
			Status:               models.EventStatusDraft,
			Eligibility:          eligibility,
			RegistrationDeadline: now.AddDate(0, 0, data.DeadlineInDays),
			StartDate:            now.AddDate(0, 0, data.StartInDays),
			EndDate:              now.AddDate(0, 0, data.EndInDays),
			RegistrationLimit:    data.RegistrationLimit,
			RegistrationFee:      data.RegistrationFee,
			OrganizerID:          organizer.ID,
			TeamBased:            data.TeamBased,
			MinTeamSize:          data.MinTeamSize,
			MaxTeamSize:          data.MaxTeamSize,
			StockQuantity:        data.StockQuantity,
			PurchaseLimit:        purchaseLimit,
			Tags:                 data.Tags,
		}
		if data.Publish {
			published := now
			event.Status = models.EventStatusPublished
			event.PublishedAt = &published
		}
		if err := db.Create(event).Error; err != nil {
			return fmt.Errorf("event %s: %w", data.Name, err)
		}
	}
	return nil
}
