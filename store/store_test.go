package store

import (
	"strings"
	"testing"

	"scholarnest/models"
	courseModels "scholarnest/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory database migrated with the course domain.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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
	return db
}

func validCourseInput(title string) CourseInput {
	return CourseInput{
		Title:        title,
		Description:  "A course about " + title,
		Price:        49.99,
		ThumbnailURL: "https://cdn.example.com/thumb.png",
		Category:     "Programming",
	}
}

func mustCreateCourse(t *testing.T, s *CourseStore, title string) *courseModels.Course {
	t.Helper()
	course, err := s.Create(validCourseInput(title))
	require.NoError(t, err)
	return course
}

func mustCreateUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Password: "hashed", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)
	return &user
}
