package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"serving-scheduler-backend/internal/config"
	"serving-scheduler-backend/internal/database"
	"serving-scheduler-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type MinistryData struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
}

type PositionData struct {
	Name         string   `yaml:"name"`
	MinistryName string   `yaml:"ministry_name"`
	Description  string   `yaml:"description,omitempty"`
	DisplayOrder int      `yaml:"display_order"`
	Capabilities []string `yaml:"capabilities,omitempty"`
	IsActive     *bool    `yaml:"is_active,omitempty"`
}

type ProfileData struct {
	VolunteerID        string   `yaml:"volunteer_id"`
	MinistryName       string   `yaml:"ministry_name"`
	QualifiedPositions []string `yaml:"qualified_positions,omitempty"`
	Status             string   `yaml:"status,omitempty"`
	RotationWeight     float64  `yaml:"rotation_weight,omitempty"`
}

type ServiceData struct {
	MinistryName string    `yaml:"ministry_name"`
	Title        string    `yaml:"title"`
	StartsAt     time.Time `yaml:"starts_at"`
	Location     string    `yaml:"location,omitempty"`
}

// File structures
type MinistriesFile struct {
	Ministries []MinistryData `yaml:"ministries"`
}

type PositionsFile struct {
	Positions []PositionData `yaml:"positions"`
}

type ProfilesFile struct {
	Profiles []ProfileData `yaml:"profiles"`
}

type ServicesFile struct {
	Services []ServiceData `yaml:"services"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var ministriesFile MinistriesFile
	if err := readYAML(filepath.Join(dataDir, "ministries.yaml"), &ministriesFile); err != nil {
		return fmt.Errorf("failed to load ministries: %w", err)
	}

	var positionsFile PositionsFile
	if err := readYAML(filepath.Join(dataDir, "positions.yaml"), &positionsFile); err != nil {
		return fmt.Errorf("failed to load positions: %w", err)
	}

	var profilesFile ProfilesFile
	if err := readYAML(filepath.Join(dataDir, "profiles.yaml"), &profilesFile); err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	var servicesFile ServicesFile
	if err := readYAML(filepath.Join(dataDir, "services.yaml"), &servicesFile); err != nil {
		return fmt.Errorf("failed to load services: %w", err)
	}

	ministryIDs, err := upsertMinistries(db, ministriesFile.Ministries)
	if err != nil {
		return err
	}
	if err := upsertPositions(db, positionsFile.Positions, ministryIDs); err != nil {
		return err
	}
	if err := upsertProfiles(db, profilesFile.Profiles, ministryIDs); err != nil {
		return err
	}
	return upsertServices(db, servicesFile.Services, ministryIDs)
}

func readYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing file means nothing of that kind to seed
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, target)
}

func upsertMinistries(db *gorm.DB, ministries []MinistryData) (map[string]models.Ministry, error) {
	byName := make(map[string]models.Ministry, len(ministries))
	for _, data := range ministries {
		var ministry models.Ministry
		err := db.Where("name = ?", data.Name).First(&ministry).Error
		if err == gorm.ErrRecordNotFound {
			ministry = models.Ministry{
				Name:        data.Name,
				Title:       data.Title,
				Description: data.Description,
			}
			if err := db.Create(&ministry).Error; err != nil {
				return nil, fmt.Errorf("failed to create ministry %s: %w", data.Name, err)
			}
			log.Printf("Created ministry: %s", data.Name)
		} else if err != nil {
			return nil, err
		}
		byName[data.Name] = ministry
	}
	return byName, nil
}

func upsertPositions(db *gorm.DB, positions []PositionData, ministries map[string]models.Ministry) error {
	for _, data := range positions {
		ministry, ok := ministries[data.MinistryName]
		if !ok {
			return fmt.Errorf("position %s references unknown ministry %s", data.Name, data.MinistryName)
		}

		var existing models.PositionDefinition
		err := db.Where("ministry_id = ? AND name = ?", ministry.ID, data.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		capabilities := make(models.CapabilityList, len(data.Capabilities))
		for i, c := range data.Capabilities {
			capabilities[i] = models.Capability(c)
		}
		if len(capabilities) == 0 {
			capabilities = models.CapabilityList{models.Capability(data.Name)}
		}

		active := true
		if data.IsActive != nil {
			active = *data.IsActive
		}

		position := models.PositionDefinition{
			MinistryID:           ministry.ID,
			Name:                 data.Name,
			Description:          data.Description,
			DisplayOrder:         data.DisplayOrder,
			RequiredCapabilities: capabilities,
			IsActive:             active,
		}
		if err := db.Create(&position).Error; err != nil {
			return fmt.Errorf("failed to create position %s: %w", data.Name, err)
		}
		log.Printf("Created position: %s/%s", data.MinistryName, data.Name)
	}
	return nil
}

func upsertProfiles(db *gorm.DB, profiles []ProfileData, ministries map[string]models.Ministry) error {
	for _, data := range profiles {
		ministry, ok := ministries[data.MinistryName]
		if !ok {
			return fmt.Errorf("profile %s references unknown ministry %s", data.VolunteerID, data.MinistryName)
		}

		var existing models.VolunteerServingProfile
		err := db.Where("volunteer_id = ? AND ministry_id = ?", data.VolunteerID, ministry.ID).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		qualified := make(models.CapabilityList, len(data.QualifiedPositions))
		for i, p := range data.QualifiedPositions {
			qualified[i] = models.Capability(p)
		}

		status := models.ProfileStatusActive
		if data.Status != "" {
			status = models.ProfileStatus(data.Status)
		}
		weight := data.RotationWeight
		if weight == 0 {
			weight = 1.0
		}

		profile := models.VolunteerServingProfile{
			VolunteerID:        data.VolunteerID,
			MinistryID:         ministry.ID,
			QualifiedPositions: qualified,
			Status:             status,
			RotationWeight:     weight,
			Version:            1,
		}
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to create profile %s: %w", data.VolunteerID, err)
		}
		log.Printf("Created profile: %s in %s", data.VolunteerID, data.MinistryName)
	}
	return nil
}

func upsertServices(db *gorm.DB, services []ServiceData, ministries map[string]models.Ministry) error {
	for _, data := range services {
		ministry, ok := ministries[data.MinistryName]
		if !ok {
			return fmt.Errorf("service %s references unknown ministry %s", data.Title, data.MinistryName)
		}

		var existing models.ServiceInstance
		err := db.Where("ministry_id = ? AND starts_at = ?", ministry.ID, data.StartsAt).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		instance := models.ServiceInstance{
			MinistryID: ministry.ID,
			Title:      data.Title,
			StartsAt:   data.StartsAt,
			Location:   data.Location,
		}
		if err := db.Create(&instance).Error; err != nil {
			return fmt.Errorf("failed to create service %s: %w", data.Title, err)
		}
		log.Printf("Created service: %s/%s at %s", data.MinistryName, data.Title, data.StartsAt.Format(time.RFC3339))
	}
	return nil
}
