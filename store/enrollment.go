package store

import (
	"errors"

	courseModels "scholarnest/models/course"

	"gorm.io/gorm"
)

// EnrollmentLedger is the authoritative record of who asked to join which
// course and where the approval stands. Records move pending → approved or
// pending → rejected and never back to pending; they are not deleted in-band.
type EnrollmentLedger struct {
	db *gorm.DB
}

func NewEnrollmentLedger(db *gorm.DB) *EnrollmentLedger {
	return &EnrollmentLedger{db: db}
}

// Enroll creates a pending enrollment for the user on the resolved course.
// A second enrollment for the same pair is a conflict regardless of status.
func (l *EnrollmentLedger) Enroll(userID uint, ref string) (*courseModels.Enrollment, error) {
	course, err := ResolveCourse(l.db, ref)
	if err != nil {
		return nil, err
	}

	var existing courseModels.Enrollment
	err = l.db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&existing).Error
	if err == nil {
		return nil, &ConflictError{Message: "Already enrolled in this course!"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := courseModels.Enrollment{
		UserID:   userID,
		CourseID: course.ID,
		Status:   courseModels.EnrollmentPending,
	}
	if err := l.db.Create(&enrollment).Error; err != nil {
		// The composite unique index catches concurrent enrolls the
		// existence check above raced past.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "Already enrolled in this course!"}
		}
		return nil, err
	}
	return &enrollment, nil
}

// ListAll returns every enrollment with user and course summaries attached.
func (l *EnrollmentLedger) ListAll() ([]courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	err := l.db.Preload("User").Preload("Course").
		Order("created_at desc").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	for i := range enrollments {
		enrollments[i].User.Password = ""
	}
	return enrollments, nil
}

// SetStatus moves an enrollment to approved or rejected. Setting pending is
// rejected: pending is the birth state, never a destination.
func (l *EnrollmentLedger) SetStatus(enrollmentID uint, status string) (*courseModels.Enrollment, error) {
	if status != courseModels.EnrollmentApproved && status != courseModels.EnrollmentRejected {
		return nil, &ValidationError{Fields: map[string]string{
			"status": "Status must be 'approved' or 'rejected'!",
		}}
	}

	var enrollment courseModels.Enrollment
	err := l.db.Preload("User").Preload("Course").First(&enrollment, enrollmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Enrollment"}
		}
		return nil, err
	}

	enrollment.Status = status
	if err := l.db.Model(&courseModels.Enrollment{}).Where("id = ?", enrollment.ID).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	enrollment.User.Password = ""
	return &enrollment, nil
}

// CheckStatus reports the enrollment status of the user on the resolved
// course; a missing record is the synthetic not_enrolled status, not an
// error, and nothing is created.
func (l *EnrollmentLedger) CheckStatus(userID uint, ref string) (string, *courseModels.Enrollment, error) {
	course, err := ResolveCourse(l.db, ref)
	if err != nil {
		return "", nil, err
	}

	var enrollment courseModels.Enrollment
	err = l.db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return courseModels.EnrollmentNone, nil, nil
		}
		return "", nil, err
	}
	return enrollment.Status, &enrollment, nil
}

// ListMine returns the caller's enrollments with course summaries attached.
func (l *EnrollmentLedger) ListMine(userID uint) ([]courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	err := l.db.Where("user_id = ?", userID).Preload("Course").
		Order("created_at desc").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}
