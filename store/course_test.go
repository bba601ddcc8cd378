package store

import (
	"strconv"
	"testing"

	courseModels "scholarnest/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourseDerivesSlug(t *testing.T) {
	s := NewCourseStore(newTestDB(t))

	course := mustCreateCourse(t, s, "Intro to X")
	assert.Equal(t, "intro-to-x", course.Slug)
	assert.NotZero(t, course.ID)
}

func TestCreateCourseExplicitSlugKept(t *testing.T) {
	s := NewCourseStore(newTestDB(t))

	in := validCourseInput("Learn React JS")
	in.Slug = "react-course"
	course, err := s.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "react-course", course.Slug)
}

func TestCreateCourseMissingFields(t *testing.T) {
	s := NewCourseStore(newTestDB(t))

	_, err := s.Create(CourseInput{Title: "Only a title"})

	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Fields, "description")
	assert.Contains(t, invalid.Fields, "thumbnail_url")
	assert.Contains(t, invalid.Fields, "category")
}

func TestCreateCourseDuplicateTitleConflict(t *testing.T) {
	db := newTestDB(t)
	s := NewCourseStore(db)

	first := mustCreateCourse(t, s, "Intro to X")

	_, err := s.Create(validCourseInput("Intro to X"))
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	// The first course is unaffected.
	var count int64
	db.Model(&courseModels.Course{}).Count(&count)
	assert.EqualValues(t, 1, count)

	kept, err := s.Get(first.Slug)
	require.NoError(t, err)
	assert.Equal(t, first.ID, kept.ID)
}

func TestResolveBySlugAndByID(t *testing.T) {
	s := NewCourseStore(newTestDB(t))

	created := mustCreateCourse(t, s, "Intro to X")
	_, err := s.AddSection(created.Slug, "Getting Started")
	require.NoError(t, err)

	bySlug, err := s.Get("intro-to-x")
	require.NoError(t, err)

	byID, err := s.Get(strconv.FormatUint(uint64(created.ID), 10))
	require.NoError(t, err)

	assert.Equal(t, bySlug.ID, byID.ID)
	assert.Equal(t, bySlug.Title, byID.Title)
	require.Len(t, bySlug.Sections, 1)
	require.Len(t, byID.Sections, 1)
	assert.Equal(t, bySlug.Sections[0].ID, byID.Sections[0].ID)
}

func TestResolveUnknownReference(t *testing.T) {
	s := NewCourseStore(newTestDB(t))
	mustCreateCourse(t, s, "Intro to X")

	var notFound *NotFoundError
	// Unknown slug, unknown id and malformed id all fold into not-found.
	_, err := s.Get("no-such-course")
	require.ErrorAs(t, err, &notFound)

	_, err = s.Get("999999")
	require.ErrorAs(t, err, &notFound)

	_, err = s.Get("!!not-an-id!!")
	require.ErrorAs(t, err, &notFound)
}

func TestUpdateCourseRederivesSlug(t *testing.T) {
	s := NewCourseStore(newTestDB(t))
	created := mustCreateCourse(t, s, "Intro to X")

	title := "Advanced X"
	updated, err := s.Update(created.Slug, CourseUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Advanced X", updated.Title)
	assert.Equal(t, "advanced-x", updated.Slug)
	// Untouched fields survive the partial update.
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Price, updated.Price)
}

func TestUpdateCourseExplicitSlugWins(t *testing.T) {
	s := NewCourseStore(newTestDB(t))
	created := mustCreateCourse(t, s, "Intro to X")

	title := "Advanced X"
	slug := "x-advanced"
	updated, err := s.Update(created.Slug, CourseUpdate{Title: &title, Slug: &slug})
	require.NoError(t, err)
	assert.Equal(t, "x-advanced", updated.Slug)
}

func TestUpdateCourseSlugCollision(t *testing.T) {
	s := NewCourseStore(newTestDB(t))
	mustCreateCourse(t, s, "Intro to X")
	second := mustCreateCourse(t, s, "Intro to Y")

	title := "Intro to X"
	_, err := s.Update(second.Slug, CourseUpdate{Title: &title})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestListOmitsContentTree(t *testing.T) {
	s := NewCourseStore(newTestDB(t))
	created := mustCreateCourse(t, s, "Intro to X")
	_, err := s.AddSection(created.Slug, "Getting Started")
	require.NoError(t, err)

	courses, err := s.List()
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Empty(t, courses[0].Sections)
}

func TestSectionLectureLifecycle(t *testing.T) {
	s := NewCourseStore(newTestDB(t))
	created := mustCreateCourse(t, s, "Intro to X")

	withSection, err := s.AddSection(created.Slug, "S1")
	require.NoError(t, err)
	require.Len(t, withSection.Sections, 1)
	sectionID := withSection.Sections[0].ID

	withLecture, err := s.AddLecture(created.Slug, sectionID, LectureInput{
		Title:    "L1",
		VideoURL: "https://videos.example.com/l1.mp4",
		Duration: 600,
	})
	require.NoError(t, err)
	require.Len(t, withLecture.Sections[0].Lectures, 1)
	lectureID := withLecture.Sections[0].Lectures[0].ID

	// Update the title only; video URL and duration must stay put.
	newTitle := "L1 (renamed)"
	updated, err := s.UpdateLecture(created.Slug, sectionID, lectureID, LectureUpdate{Title: &newTitle})
	require.NoError(t, err)

	lecture := updated.Sections[0].Lectures[0]
	assert.Equal(t, lectureID, lecture.ID)
	assert.Equal(t, "L1 (renamed)", lecture.Title)
	assert.Equal(t, "https://videos.example.com/l1.mp4", lecture.VideoURL)
	assert.EqualValues(t, 600, lecture.Duration)

	// The section identifier is unchanged across the whole sequence.
	assert.Equal(t, sectionID, updated.Sections[0].ID)
}

func TestSectionOrderIsInsertionOrder(t *testing.T) {
	s := NewCourseStore(newTestDB(t))
	created := mustCreateCourse(t, s, "Intro to X")

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := s.AddSection(created.Slug, title)
		require.NoError(t, err)
	}

	course, err := s.Get(created.Slug)
	require.NoError(t, err)
	require.Len(t, course.Sections, 3)
	assert.Equal(t, "One", course.Sections[0].Title)
	assert.Equal(t, "Two", course.Sections[1].Title)
	assert.Equal(t, "Three", course.Sections[2].Title)
}

func TestDeleteMissingSection(t *testing.T) {
	s := NewCourseStore(newTestDB(t))
	created := mustCreateCourse(t, s, "Intro to X")
	_, err := s.AddSection(created.Slug, "S1")
	require.NoError(t, err)

	_, err = s.DeleteSection(created.Slug, 4242)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Section", notFound.Entity)

	// The course is unchanged.
	course, err := s.Get(created.Slug)
	require.NoError(t, err)
	assert.Len(t, course.Sections, 1)
}

func TestUpdateMissingLecture(t *testing.T) {
	s := NewCourseStore(newTestDB(t))
	created := mustCreateCourse(t, s, "Intro to X")
	withSection, err := s.AddSection(created.Slug, "S1")
	require.NoError(t, err)

	title := "nope"
	_, err = s.UpdateLecture(created.Slug, withSection.Sections[0].ID, 4242, LectureUpdate{Title: &title})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Lecture", notFound.Entity)
}

func TestDeleteCourseCascades(t *testing.T) {
	db := newTestDB(t)
	s := NewCourseStore(db)
	ledger := NewEnrollmentLedger(db)

	created := mustCreateCourse(t, s, "Intro to X")
	withSection, err := s.AddSection(created.Slug, "S1")
	require.NoError(t, err)
	_, err = s.AddLecture(created.Slug, withSection.Sections[0].ID, LectureInput{
		Title: "L1", VideoURL: "https://videos.example.com/l1.mp4", Duration: 60,
	})
	require.NoError(t, err)

	user := mustCreateUser(t, db, "student@example.com")
	_, err = ledger.Enroll(user.ID, created.Slug)
	require.NoError(t, err)

	require.NoError(t, s.Delete(created.Slug))

	var courses, sections, lectures, enrollments int64
	db.Model(&courseModels.Course{}).Count(&courses)
	db.Model(&courseModels.Section{}).Count(&sections)
	db.Model(&courseModels.Lecture{}).Count(&lectures)
	db.Model(&courseModels.Enrollment{}).Count(&enrollments)
	assert.Zero(t, courses)
	assert.Zero(t, sections)
	assert.Zero(t, lectures)
	assert.Zero(t, enrollments)
}
