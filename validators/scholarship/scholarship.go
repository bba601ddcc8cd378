package scholarshipValidator

import (
	"strings"

	"scholarnest/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateScholarshipRequest is the validated payload for scholarship creation.
type CreateScholarshipRequest struct {
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

// UpdateScholarshipRequest carries a partial scholarship update.
type UpdateScholarshipRequest struct {
	UniversityName *string `json:"university_name"`
	Country        *string `json:"country"`
	UniversityLogo *string `json:"university_logo"`
	Description    *string `json:"description"`

	Level               *string `json:"level"`
	Duration            *string `json:"duration"`
	TuitionFee          *string `json:"tuition_fee"`
	Eligibility         *string `json:"eligibility"`
	ApplicationDeadline *string `json:"application_deadline"`
	LanguageRequirement *string `json:"language_requirement"`
	AdditionalInfo      *string `json:"additional_info"`
	FeeStructure        *string `json:"fee_structure"`
	ScholarshipCover    *string `json:"scholarship_cover"`

	Majors       []string `json:"majors"`
	Website      *string  `json:"website"`
	ContactEmail *string  `json:"contact_email"`
	VideoURL     *string  `json:"video_url"`
	WorldRanking *string  `json:"world_ranking"`
}

var allowedCountries = map[string]bool{
	"China": true, "Malaysia": true, "USA": true, "UK": true, "Canada": true, "Australia": true,
}

var allowedLevels = map[string]bool{
	"Diploma": true, "Bachelor": true, "Master": true, "PhD": true,
}

func CreateScholarship() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateScholarshipRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.UniversityName) == "" {
			errors["university_name"] = "University name is required!"
		}
		if !allowedCountries[reqData.Country] {
			errors["country"] = "Country must be one of China, Malaysia, USA, UK, Canada, Australia!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if !allowedLevels[reqData.Level] {
			errors["level"] = "Level must be one of Diploma, Bachelor, Master, PhD!"
		}
		if strings.TrimSpace(reqData.Duration) == "" {
			errors["duration"] = "Duration is required!"
		}
		if strings.TrimSpace(reqData.TuitionFee) == "" {
			errors["tuition_fee"] = "Tuition fee is required!"
		}
		if strings.TrimSpace(reqData.Eligibility) == "" {
			errors["eligibility"] = "Eligibility is required!"
		}
		if strings.TrimSpace(reqData.ApplicationDeadline) == "" {
			errors["application_deadline"] = "Application deadline is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedScholarship", reqData)
		return c.Next()
	}
}

func UpdateScholarship() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateScholarshipRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Country != nil && !allowedCountries[*reqData.Country] {
			errors["country"] = "Country must be one of China, Malaysia, USA, UK, Canada, Australia!"
		}
		if reqData.Level != nil && !allowedLevels[*reqData.Level] {
			errors["level"] = "Level must be one of Diploma, Bachelor, Master, PhD!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedScholarshipUpdate", reqData)
		return c.Next()
	}
}
