package store

import (
	"errors"
	"strings"

	courseModels "scholarnest/models/course"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// CourseStore owns the Course aggregate: the course row plus its sections and
// lectures. All tree mutations resolve the course first, locate sub-entities
// by identifier, and fail with NotFoundError at the level that missed.
type CourseStore struct {
	db *gorm.DB
}

func NewCourseStore(db *gorm.DB) *CourseStore {
	return &CourseStore{db: db}
}

// CourseInput carries the fields accepted on course creation.
type CourseInput struct {
	Title        string
	Slug         string // derived from Title when empty
	Description  string
	InstructorID *uint
	Price        float64
	ThumbnailURL string
	Category     string
	IsPublished  bool
}

// CourseUpdate carries a partial update; nil fields are left untouched.
type CourseUpdate struct {
	Title        *string
	Slug         *string
	Description  *string
	InstructorID *uint
	Price        *float64
	ThumbnailURL *string
	Category     *string
	IsPublished  *bool
}

// LectureInput carries the fields accepted on lecture creation.
type LectureInput struct {
	Title         string
	VideoURL      string
	Duration      int64 // seconds
	Description   string
	IsPreviewable bool
}

// LectureUpdate carries a partial lecture update; nil fields are left untouched.
type LectureUpdate struct {
	Title         *string
	VideoURL      *string
	Duration      *int64
	Description   *string
	IsPreviewable *bool
}

func validateCourse(course *courseModels.Course) error {
	fields := make(map[string]string)

	if strings.TrimSpace(course.Title) == "" {
		fields["title"] = "Title is required!"
	}
	if strings.TrimSpace(course.Description) == "" {
		fields["description"] = "Description is required!"
	}
	if strings.TrimSpace(course.ThumbnailURL) == "" {
		fields["thumbnail_url"] = "Thumbnail URL is required!"
	}
	if strings.TrimSpace(course.Category) == "" {
		fields["category"] = "Category is required!"
	}
	if course.Price < 0 {
		fields["price"] = "Price must not be negative!"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// checkCourseConflicts reports a ConflictError when another course already
// holds the title or slug. excludeID skips the course itself on updates.
func (s *CourseStore) checkCourseConflicts(title, courseSlug string, excludeID uint) error {
	var count int64
	query := s.db.Model(&courseModels.Course{}).Where("title = ? OR slug = ?", title, courseSlug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &ConflictError{Message: "A course with this title or slug already exists!"}
	}
	return nil
}

// Create inserts a new course. The slug is derived from the title when not
// supplied explicitly.
func (s *CourseStore) Create(in CourseInput) (*courseModels.Course, error) {
	courseSlug := strings.TrimSpace(in.Slug)
	if courseSlug == "" {
		courseSlug = slug.Make(in.Title)
	}

	course := courseModels.Course{
		Title:        strings.TrimSpace(in.Title),
		Slug:         courseSlug,
		Description:  in.Description,
		InstructorID: in.InstructorID,
		Price:        in.Price,
		ThumbnailURL: in.ThumbnailURL,
		Category:     in.Category,
		IsPublished:  in.IsPublished,
	}

	if err := validateCourse(&course); err != nil {
		return nil, err
	}
	if err := s.checkCourseConflicts(course.Title, course.Slug, 0); err != nil {
		return nil, err
	}

	if err := s.db.Create(&course).Error; err != nil {
		// The unique indexes are the real guard; the pre-check above only
		// produces the friendlier message.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "A course with this title or slug already exists!"}
		}
		return nil, err
	}
	return &course, nil
}

// List returns all courses without their section/lecture trees — the
// lightweight listing projection.
func (s *CourseStore) List() ([]courseModels.Course, error) {
	var courses []courseModels.Course
	if err := s.db.Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// Get resolves ref and returns the full aggregate with sections and lectures
// in display order.
func (s *CourseStore) Get(ref string) (*courseModels.Course, error) {
	course, err := ResolveCourse(s.db, ref)
	if err != nil {
		return nil, err
	}
	return s.loadTree(course.ID)
}

// loadTree fetches a course with its ordered content tree.
func (s *CourseStore) loadTree(courseID uint) (*courseModels.Course, error) {
	var course courseModels.Course
	err := s.db.
		Preload("Sections", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index asc, id asc")
		}).
		Preload("Sections.Lectures", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index asc, id asc")
		}).
		First(&course, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Course"}
		}
		return nil, err
	}
	return &course, nil
}

// Update applies the supplied fields to the resolved course. A title change
// re-derives the slug unless the update carries an explicit slug.
func (s *CourseStore) Update(ref string, up CourseUpdate) (*courseModels.Course, error) {
	course, err := ResolveCourse(s.db, ref)
	if err != nil {
		return nil, err
	}

	if up.Title != nil {
		course.Title = strings.TrimSpace(*up.Title)
		if up.Slug == nil {
			course.Slug = slug.Make(course.Title)
		}
	}
	if up.Slug != nil {
		course.Slug = strings.TrimSpace(*up.Slug)
	}
	if up.Description != nil {
		course.Description = *up.Description
	}
	if up.InstructorID != nil {
		course.InstructorID = up.InstructorID
	}
	if up.Price != nil {
		course.Price = *up.Price
	}
	if up.ThumbnailURL != nil {
		course.ThumbnailURL = *up.ThumbnailURL
	}
	if up.Category != nil {
		course.Category = *up.Category
	}
	if up.IsPublished != nil {
		course.IsPublished = *up.IsPublished
	}

	if err := validateCourse(course); err != nil {
		return nil, err
	}
	if err := s.checkCourseConflicts(course.Title, course.Slug, course.ID); err != nil {
		return nil, err
	}

	if err := s.db.Save(course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "A course with this title or slug already exists!"}
		}
		return nil, err
	}
	return s.loadTree(course.ID)
}

// Delete removes the course and everything hanging off it: sections, lectures
// and enrollments, all in one transaction.
func (s *CourseStore) Delete(ref string) error {
	course, err := ResolveCourse(s.db, ref)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		sectionIDs := tx.Model(&courseModels.Section{}).Select("id").Where("course_id = ?", course.ID)
		if err := tx.Unscoped().Where("section_id IN (?)", sectionIDs).Delete(&courseModels.Lecture{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", course.ID).Delete(&courseModels.Section{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", course.ID).Delete(&courseModels.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&courseModels.Course{}, course.ID).Error
	})
}

// AddSection appends a new section to the resolved course and returns the
// refreshed aggregate.
func (s *CourseStore) AddSection(ref, title string) (*courseModels.Course, error) {
	course, err := ResolveCourse(s.db, ref)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(title) == "" {
		return nil, &ValidationError{Fields: map[string]string{"title": "Section title is required!"}}
	}

	var maxOrder int
	s.db.Model(&courseModels.Section{}).Where("course_id = ?", course.ID).
		Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	section := courseModels.Section{
		CourseID:   course.ID,
		Title:      strings.TrimSpace(title),
		OrderIndex: maxOrder + 1,
	}
	if err := s.db.Create(&section).Error; err != nil {
		return nil, err
	}
	return s.loadTree(course.ID)
}

func (s *CourseStore) findSection(courseID uint, sectionID uint) (*courseModels.Section, error) {
	var section courseModels.Section
	err := s.db.Where("id = ? AND course_id = ?", sectionID, courseID).First(&section).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Section"}
		}
		return nil, err
	}
	return &section, nil
}

// UpdateSection replaces the section title.
func (s *CourseStore) UpdateSection(ref string, sectionID uint, title string) (*courseModels.Course, error) {
	course, err := ResolveCourse(s.db, ref)
	if err != nil {
		return nil, err
	}
	section, err := s.findSection(course.ID, sectionID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(title) == "" {
		return nil, &ValidationError{Fields: map[string]string{"title": "Section title is required!"}}
	}

	section.Title = strings.TrimSpace(title)
	if err := s.db.Save(section).Error; err != nil {
		return nil, err
	}
	return s.loadTree(course.ID)
}

// DeleteSection removes the section and its lectures. An absent section is
// not-found, never a silent no-op.
func (s *CourseStore) DeleteSection(ref string, sectionID uint) (*courseModels.Course, error) {
	course, err := ResolveCourse(s.db, ref)
	if err != nil {
		return nil, err
	}
	section, err := s.findSection(course.ID, sectionID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("section_id = ?", section.ID).Delete(&courseModels.Lecture{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&courseModels.Section{}, section.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return s.loadTree(course.ID)
}

func validateLectureInput(in LectureInput) error {
	fields := make(map[string]string)
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "Lecture title is required!"
	}
	if strings.TrimSpace(in.VideoURL) == "" {
		fields["video_url"] = "Lecture video URL is required!"
	}
	if in.Duration < 0 {
		fields["duration"] = "Duration must not be negative!"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// AddLecture appends a new lecture to the located section.
func (s *CourseStore) AddLecture(ref string, sectionID uint, in LectureInput) (*courseModels.Course, error) {
	course, err := ResolveCourse(s.db, ref)
	if err != nil {
		return nil, err
	}
	section, err := s.findSection(course.ID, sectionID)
	if err != nil {
		return nil, err
	}
	if err := validateLectureInput(in); err != nil {
		return nil, err
	}

	var maxOrder int
	s.db.Model(&courseModels.Lecture{}).Where("section_id = ?", section.ID).
		Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	lecture := courseModels.Lecture{
		SectionID:     section.ID,
		Title:         strings.TrimSpace(in.Title),
		VideoURL:      in.VideoURL,
		Duration:      in.Duration,
		Description:   in.Description,
		IsPreviewable: in.IsPreviewable,
		OrderIndex:    maxOrder + 1,
	}
	if err := s.db.Create(&lecture).Error; err != nil {
		return nil, err
	}
	return s.loadTree(course.ID)
}

func (s *CourseStore) findLecture(sectionID, lectureID uint) (*courseModels.Lecture, error) {
	var lecture courseModels.Lecture
	err := s.db.Where("id = ? AND section_id = ?", lectureID, sectionID).First(&lecture).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Lecture"}
		}
		return nil, err
	}
	return &lecture, nil
}

// UpdateLecture merges the supplied fields into the located lecture; fields
// not supplied keep their stored values.
func (s *CourseStore) UpdateLecture(ref string, sectionID, lectureID uint, up LectureUpdate) (*courseModels.Course, error) {
	course, err := ResolveCourse(s.db, ref)
	if err != nil {
		return nil, err
	}
	section, err := s.findSection(course.ID, sectionID)
	if err != nil {
		return nil, err
	}
	lecture, err := s.findLecture(section.ID, lectureID)
	if err != nil {
		return nil, err
	}

	if up.Title != nil {
		lecture.Title = strings.TrimSpace(*up.Title)
	}
	if up.VideoURL != nil {
		lecture.VideoURL = *up.VideoURL
	}
	if up.Duration != nil {
		lecture.Duration = *up.Duration
	}
	if up.Description != nil {
		lecture.Description = *up.Description
	}
	if up.IsPreviewable != nil {
		lecture.IsPreviewable = *up.IsPreviewable
	}

	if err := validateLectureInput(LectureInput{
		Title:    lecture.Title,
		VideoURL: lecture.VideoURL,
		Duration: lecture.Duration,
	}); err != nil {
		return nil, err
	}

	if err := s.db.Save(lecture).Error; err != nil {
		return nil, err
	}
	return s.loadTree(course.ID)
}

// DeleteLecture removes the located lecture.
func (s *CourseStore) DeleteLecture(ref string, sectionID, lectureID uint) (*courseModels.Course, error) {
	course, err := ResolveCourse(s.db, ref)
	if err != nil {
		return nil, err
	}
	section, err := s.findSection(course.ID, sectionID)
	if err != nil {
		return nil, err
	}
	lecture, err := s.findLecture(section.ID, lectureID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Unscoped().Delete(&courseModels.Lecture{}, lecture.ID).Error; err != nil {
		return nil, err
	}
	return s.loadTree(course.ID)
}
