package scholarshipController

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"scholarnest/database"
	"scholarnest/middleware"
	"scholarnest/models"
	validators "scholarnest/validators/scholarship"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/datatypes"
)

const deadlineLayout = "2006-01-02"

func toJSON(values []string) datatypes.JSON {
	if len(values) == 0 {
		return datatypes.JSON([]byte("[]"))
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

// CreateScholarship stores a new scholarship program.
func CreateScholarship(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedScholarship").(*validators.CreateScholarshipRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	scholarship := models.Scholarship{
		UniversityName:      strings.TrimSpace(reqData.UniversityName),
		Country:             reqData.Country,
		UniversityLogo:      reqData.UniversityLogo,
		Description:         reqData.Description,
		Level:               reqData.Level,
		Duration:            reqData.Duration,
		TuitionFee:          reqData.TuitionFee,
		Eligibility:         reqData.Eligibility,
		ApplicationDeadline: reqData.ApplicationDeadline,
		LanguageRequirement: reqData.LanguageRequirement,
		AdditionalInfo:      reqData.AdditionalInfo,
		FeeStructure:        reqData.FeeStructure,
		ScholarshipCover:    reqData.ScholarshipCover,
		Majors:              toJSON(reqData.Majors),
		Website:             reqData.Website,
		ContactEmail:        strings.ToLower(reqData.ContactEmail),
		VideoURL:            reqData.VideoURL,
		WorldRanking:        reqData.WorldRanking,
	}

	if err := database.Database.Db.Create(&scholarship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create scholarship!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Scholarship created successfully!", scholarship)
}

// GetScholarships lists scholarships with optional level/country/major
// filters and pagination. Programs with upcoming deadlines come first,
// ordered by nearest deadline; expired programs follow.
func GetScholarships(c *fiber.Ctx) error {
	db := database.Database.Db

	if level := c.Query("level"); level != "" {
		db = db.Where("level = ?", level)
	}
	if country := c.Query("country"); country != "" {
		db = db.Where("country = ?", country)
	}
	if major := c.Query("major"); major != "" {
		db = db.Where("majors LIKE ?", "%"+major+"%")
	}

	var scholarships []models.Scholarship
	if err := db.Find(&scholarships).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch scholarships!", nil)
	}

	today := now.BeginningOfDay()
	sort.SliceStable(scholarships, func(i, j int) bool {
		di, okI := parseDeadline(scholarships[i].ApplicationDeadline)
		dj, okJ := parseDeadline(scholarships[j].ApplicationDeadline)

		expiredI := !okI || di.Before(today)
		expiredJ := !okJ || dj.Before(today)
		if expiredI != expiredJ {
			return !expiredI
		}
		if okI && okJ {
			return di.Before(dj)
		}
		return okI
	})

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	total := len(scholarships)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scholarships fetched successfully!", fiber.Map{
		"total":        total,
		"page":         page,
		"limit":        limit,
		"scholarships": scholarships[start:end],
	})
}

func parseDeadline(deadline string) (time.Time, bool) {
	t, err := time.ParseInLocation(deadlineLayout, deadline, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func findScholarship(c *fiber.Ctx) (*models.Scholarship, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return nil, err
	}
	var scholarship models.Scholarship
	if err := database.Database.Db.First(&scholarship, uint(id)).Error; err != nil {
		return nil, err
	}
	return &scholarship, nil
}

// GetScholarship returns a single scholarship by id.
func GetScholarship(c *fiber.Ctx) error {
	scholarship, err := findScholarship(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Scholarship not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scholarship fetched successfully!", scholarship)
}

// UpdateScholarship applies the provided fields only.
func UpdateScholarship(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedScholarshipUpdate").(*validators.UpdateScholarshipRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	scholarship, err := findScholarship(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Scholarship not found", nil)
	}

	if reqData.UniversityName != nil {
		scholarship.UniversityName = strings.TrimSpace(*reqData.UniversityName)
	}
	if reqData.Country != nil {
		scholarship.Country = *reqData.Country
	}
	if reqData.UniversityLogo != nil {
		scholarship.UniversityLogo = *reqData.UniversityLogo
	}
	if reqData.Description != nil {
		scholarship.Description = *reqData.Description
	}
	if reqData.Level != nil {
		scholarship.Level = *reqData.Level
	}
	if reqData.Duration != nil {
		scholarship.Duration = *reqData.Duration
	}
	if reqData.TuitionFee != nil {
		scholarship.TuitionFee = *reqData.TuitionFee
	}
	if reqData.Eligibility != nil {
		scholarship.Eligibility = *reqData.Eligibility
	}
	if reqData.ApplicationDeadline != nil {
		scholarship.ApplicationDeadline = *reqData.ApplicationDeadline
	}
	if reqData.LanguageRequirement != nil {
		scholarship.LanguageRequirement = *reqData.LanguageRequirement
	}
	if reqData.AdditionalInfo != nil {
		scholarship.AdditionalInfo = *reqData.AdditionalInfo
	}
	if reqData.FeeStructure != nil {
		scholarship.FeeStructure = *reqData.FeeStructure
	}
	if reqData.ScholarshipCover != nil {
		scholarship.ScholarshipCover = *reqData.ScholarshipCover
	}
	if reqData.Majors != nil {
		scholarship.Majors = toJSON(reqData.Majors)
	}
	if reqData.Website != nil {
		scholarship.Website = *reqData.Website
	}
	if reqData.ContactEmail != nil {
		scholarship.ContactEmail = strings.ToLower(*reqData.ContactEmail)
	}
	if reqData.VideoURL != nil {
		scholarship.VideoURL = *reqData.VideoURL
	}
	if reqData.WorldRanking != nil {
		scholarship.WorldRanking = *reqData.WorldRanking
	}

	if err := database.Database.Db.Save(scholarship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update scholarship!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scholarship updated successfully!", scholarship)
}

// DeleteScholarship removes the scholarship.
func DeleteScholarship(c *fiber.Ctx) error {
	scholarship, err := findScholarship(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Scholarship not found", nil)
	}

	if err := database.Database.Db.Unscoped().Delete(scholarship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete scholarship!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scholarship deleted successfully!", nil)
}
