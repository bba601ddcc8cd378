package store

import (
	"errors"

	courseModels "scholarnest/models/course"

	"gorm.io/gorm"
)

// AccessGate decides whether a user may watch a course's full content tree.
// The decision is derived from the enrollment ledger on every call, never
// cached or stored on the course.
type AccessGate struct {
	db *gorm.DB
}

func NewAccessGate(db *gorm.DB) *AccessGate {
	return &AccessGate{db: db}
}

// CanWatch resolves ref and allows access only when an approved enrollment
// exists for the pair. On allow it returns the full aggregate; a pending,
// rejected or missing enrollment is an AccessDeniedError, while an unresolved
// course stays a NotFoundError so the boundary can keep 403 and 404 apart.
func (g *AccessGate) CanWatch(userID uint, ref string) (*courseModels.Course, error) {
	course, err := ResolveCourse(g.db, ref)
	if err != nil {
		return nil, err
	}

	var enrollment courseModels.Enrollment
	err = g.db.Where("user_id = ? AND course_id = ? AND status = ?",
		userID, course.ID, courseModels.EnrollmentApproved).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &AccessDeniedError{Message: "Access denied. You are not enrolled or approved for this course."}
		}
		return nil, err
	}

	return NewCourseStore(g.db).loadTree(course.ID)
}
