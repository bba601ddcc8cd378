package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"scholarnest/config"
	"scholarnest/database"
	"scholarnest/middleware"
	"scholarnest/models"
	courseModels "scholarnest/models/course"
	"scholarnest/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestApp wires a fiber app and an in-memory database behind the global
// connection the handlers use.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Section{},
		&courseModels.Lecture{},
		&courseModels.Enrollment{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/courses/:ref/watch", middleware.JWTMiddleware, WatchCourse)
	return app, db
}

func watchRequest(t *testing.T, app *fiber.App, ref, token string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", "/courses/"+ref+"/watch", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestWatchCourseEndpoint(t *testing.T) {
	app, db := newTestApp(t)

	user := models.User{Name: "Asha", Email: "asha@example.com", Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	course, err := store.NewCourseStore(db).Create(store.CourseInput{
		Title:        "Go Fundamentals",
		Description:  "From zero to modules",
		Price:        19.99,
		ThumbnailURL: "https://cdn.example.com/go.png",
		Category:     "Programming",
	})
	require.NoError(t, err)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	// No token at all
	status, body := watchRequest(t, app, course.Slug, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])

	// Authenticated but not enrolled
	status, body = watchRequest(t, app, course.Slug, token)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, false, body["success"])

	// Pending enrollment still denied
	ledger := store.NewEnrollmentLedger(db)
	enrollment, err := ledger.Enroll(user.ID, course.Slug)
	require.NoError(t, err)

	status, _ = watchRequest(t, app, course.Slug, token)
	assert.Equal(t, fiber.StatusForbidden, status)

	// Approval opens the gate
	_, err = ledger.SetStatus(enrollment.ID, courseModels.EnrollmentApproved)
	require.NoError(t, err)

	status, body = watchRequest(t, app, course.Slug, token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Go Fundamentals", data["title"])

	// Missing course stays a 404, not a 403
	status, _ = watchRequest(t, app, "no-such-course", token)
	assert.Equal(t, fiber.StatusNotFound, status)
}
