package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Scholarship describes a single university program and the scholarship
// attached to it. The portal models exactly one program per record.
type Scholarship struct {
	gorm.Model
	UniversityName string `json:"university_name" gorm:"not null"`
	Country        string `json:"country" gorm:"not null;index"` // China, Malaysia, USA, UK, Canada, Australia
	UniversityLogo string `json:"university_logo"`               // image URL
	Description    string `json:"description" gorm:"type:text;not null"`

	// Program-level fields
	Level               string `json:"level" gorm:"not null;index"` // Diploma, Bachelor, Master, PhD
	Duration            string `json:"duration" gorm:"not null"`
	TuitionFee          string `json:"tuition_fee" gorm:"not null"`
	Eligibility         string `json:"eligibility" gorm:"not null"`
	ApplicationDeadline string `json:"application_deadline" gorm:"not null"` // YYYY-MM-DD
	LanguageRequirement string `json:"language_requirement"`
	AdditionalInfo      string `json:"additional_info"`
	FeeStructure        string `json:"fee_structure"`
	ScholarshipCover    string `json:"scholarship_cover"`

	// University-level fields
	Majors       datatypes.JSON `json:"majors"` // array of major names
	Website      string         `json:"website"`
	ContactEmail string         `json:"contact_email"`
	VideoURL     string         `json:"video_url"`
	WorldRanking string         `json:"world_ranking"`
}
