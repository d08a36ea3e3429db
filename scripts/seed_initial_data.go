package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hackathon-portal-backend/internal/config"
	"hackathon-portal-backend/internal/database"
	"hackathon-portal-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type HackathonData struct {
	Title               string                 `yaml:"title"`
	Description         string                 `yaml:"description"`
	StartDate           time.Time              `yaml:"start_date"`
	EndDate             time.Time              `yaml:"end_date"`
	SubmissionStartDate time.Time              `yaml:"submission_start_date"`
	SubmissionEndDate   time.Time              `yaml:"submission_end_date"`
	TeamCreationMode    string                 `yaml:"team_creation_mode"`
	MinTeamSize         int                    `yaml:"min_team_size"`
	MaxTeamSize         int                    `yaml:"max_team_size"`
	ProblemStatements   []ProblemStatementData `yaml:"problem_statements"`
}

type ProblemStatementData struct {
	Track       string `yaml:"track"`
	Description string `yaml:"description"`
	Difficulty  string `yaml:"difficulty"`
}

type UserData struct {
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Role      string `yaml:"role"`
	Password  string `yaml:"password,omitempty"`
}

// File structures
type HackathonsFile struct {
	Hackathons []HackathonData `yaml:"hackathons"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	hackathons, err := loadHackathons(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load hackathons: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	// Create hackathons first
	hackathonCreated := 0
	for _, hackathonData := range hackathons {
		_, created, err := createHackathon(db, hackathonData)
		if err != nil {
			return fmt.Errorf("failed to create hackathon %s: %w", hackathonData.Title, err)
		}
		if created {
			hackathonCreated++
		}
	}
	log.Printf("📋 Hackathons: %d created, %d total", hackathonCreated, len(hackathons))

	// Create users
	userCreated := 0
	for _, userData := range users {
		_, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	return nil
}

func loadHackathons(dataDir string) ([]HackathonData, error) {
	var allHackathons []HackathonData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "hackathons") {
			var file HackathonsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allHackathons = append(allHackathons, file.Hackathons...)
		}
		return nil
	})

	return allHackathons, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func createHackathon(db *gorm.DB, hackathonData HackathonData) (*models.Hackathon, bool, error) {
	var hackathon models.Hackathon
	if err := db.Where("title = ?", hackathonData.Title).First(&hackathon).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			statements := make([]models.ProblemStatement, 0, len(hackathonData.ProblemStatements))
			for _, ps := range hackathonData.ProblemStatements {
				statements = append(statements, models.ProblemStatement{
					Track:       ps.Track,
					Description: ps.Description,
					Difficulty:  models.Difficulty(ps.Difficulty),
				})
			}
			statementsJSON, _ := json.Marshal(statements)

			mode := models.TeamCreationModeBoth
			if hackathonData.TeamCreationMode != "" {
				mode = models.TeamCreationMode(hackathonData.TeamCreationMode)
			}

			hackathon = models.Hackathon{
				Title:               hackathonData.Title,
				Description:         hackathonData.Description,
				StartDate:           hackathonData.StartDate,
				EndDate:             hackathonData.EndDate,
				SubmissionStartDate: hackathonData.SubmissionStartDate,
				SubmissionEndDate:   hackathonData.SubmissionEndDate,
				TeamCreationMode:    mode,
				MinTeamSize:         hackathonData.MinTeamSize,
				MaxTeamSize:         hackathonData.MaxTeamSize,
				ProblemStatements:   statementsJSON,
			}

			if err := db.Create(&hackathon).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create hackathon: %w", err)
			}
			return &hackathon, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query hackathon: %w", err)
		}
	}

	return &hackathon, false, nil // created = false (existing)
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(userData.Email))

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			role := models.UserRoleMember
			if userData.Role != "" {
				role = models.UserRole(userData.Role)
			}

			var passwordHash string
			if role == models.UserRoleAdmin {
				if userData.Password == "" {
					return nil, false, fmt.Errorf("admin user %s requires a password", email)
				}
				hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
				if err != nil {
					return nil, false, fmt.Errorf("failed to hash password: %w", err)
				}
				passwordHash = string(hash)
			}

			user = models.User{
				Email:        email,
				FirstName:    userData.FirstName,
				LastName:     userData.LastName,
				Role:         role,
				PasswordHash: passwordHash,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}
