package main

import (
	"encoding/json"
	"log"
	"strings"

	"scholarnest/config"
	"scholarnest/database"
	"scholarnest/models"

	"github.com/go-resty/resty/v2"
	"gorm.io/datatypes"
)

// feedRecord mirrors one entry of the partner scholarship feed.
type feedRecord struct {
	UniversityName string `json:"university_name"`
	Country        string `json:"country"`
	UniversityLogo string `json:"university_logo"`
	Description    string `json:"description"`

	Level               string `json:"level"`
	Duration            string `json:"duration"`
	TuitionFee          string `json:"tuition_fee"`
	Eligibility         string `json:"eligibility"`
	ApplicationDeadline string `json:"application_deadline"`
	LanguageRequirement string `json:"language_requirement"`
	AdditionalInfo      string `json:"additional_info"`
	FeeStructure        string `json:"fee_structure"`
	ScholarshipCover    string `json:"scholarship_cover"`

	Majors       []string `json:"majors"`
	Website      string   `json:"website"`
	ContactEmail string   `json:"contact_email"`
	VideoURL     string   `json:"video_url"`
	WorldRanking string   `json:"world_ranking"`
}

func main() {
	config.LoadConfig()
	database.ConnectDb()

	feedURL := config.AppConfig.ScholarshipFeedURL
	if feedURL == "" {
		log.Fatal("SCHOLARSHIP_FEED_URL is not configured")
	}

	client := resty.New()
	var records []feedRecord
	resp, err := client.R().
		SetHeader("Accept", "application/json").
		SetResult(&records).
		Get(feedURL)
	if err != nil {
		log.Fatalf("Failed to fetch scholarship feed: %v", err)
	}
	if resp.IsError() {
		log.Fatalf("Scholarship feed returned status %d", resp.StatusCode())
	}

	log.Printf("Total records to import: %d", len(records))

	inserted := 0
	updated := 0
	skipped := 0

	for i, record := range records {
		if i%100 == 0 && i > 0 {
			log.Printf("Processing record %d...", i)
		}

		if strings.TrimSpace(record.UniversityName) == "" || strings.TrimSpace(record.Level) == "" {
			skipped++
			continue
		}

		majors, _ := json.Marshal(record.Majors)
		scholarship := models.Scholarship{
			UniversityName:      strings.TrimSpace(record.UniversityName),
			Country:             record.Country,
			UniversityLogo:      record.UniversityLogo,
			Description:         record.Description,
			Level:               record.Level,
			Duration:            record.Duration,
			TuitionFee:          record.TuitionFee,
			Eligibility:         record.Eligibility,
			ApplicationDeadline: record.ApplicationDeadline,
			LanguageRequirement: record.LanguageRequirement,
			AdditionalInfo:      record.AdditionalInfo,
			FeeStructure:        record.FeeStructure,
			ScholarshipCover:    record.ScholarshipCover,
			Majors:              datatypes.JSON(majors),
			Website:             record.Website,
			ContactEmail:        strings.ToLower(record.ContactEmail),
			VideoURL:            record.VideoURL,
			WorldRanking:        record.WorldRanking,
		}

		// Match an existing program by university and level
		var existing models.Scholarship
		err := database.Database.Db.
			Where("university_name = ? AND level = ?", scholarship.UniversityName, scholarship.Level).
			First(&existing).Error
		if err == nil {
			scholarship.ID = existing.ID
			scholarship.CreatedAt = existing.CreatedAt
			if err := database.Database.Db.Save(&scholarship).Error; err != nil {
				log.Printf("Failed to update %s (%s): %v", scholarship.UniversityName, scholarship.Level, err)
				skipped++
				continue
			}
			updated++
			continue
		}

		if err := database.Database.Db.Create(&scholarship).Error; err != nil {
			log.Printf("Failed to insert %s (%s): %v", scholarship.UniversityName, scholarship.Level, err)
			skipped++
			continue
		}
		inserted++
	}

	log.Printf("Import complete: %d inserted, %d updated, %d skipped", inserted, updated, skipped)
}
