package course

import (
	"scholarnest/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enrollment statuses
const (
	EnrollmentPending  = "pending"
	EnrollmentApproved = "approved"
	EnrollmentRejected = "rejected"

	// Synthetic status reported when no enrollment record exists.
	EnrollmentNone = "not_enrolled"
)

// Enrollment joins a user to a course. The composite unique index is the
// authoritative guard against double enrollment; application-level checks only
// improve the error message.
type Enrollment struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID uint `json:"course_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`

	CompletedLectures  datatypes.JSON `json:"completed_lectures"` // array of lecture ids
	ProgressPercentage float64        `json:"progress_percentage" gorm:"default:0"`
	Status             string         `json:"status" gorm:"default:'pending'"` // pending, approved, rejected

	User   models.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Course Course      `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
