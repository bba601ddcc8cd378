package models

import "gorm.io/gorm"

// User roles
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	Name           string `json:"name" gorm:"not null"`
	Email          string `json:"email" gorm:"uniqueIndex;not null"`
	Password       string `json:"-" gorm:"not null"`
	Role           string `json:"role" gorm:"default:'student'"` // student, admin
	Phone          string `json:"phone" gorm:"default:''"`
	Country        string `json:"country" gorm:"default:''"`
	EducationLevel string `json:"education_level" gorm:"default:''"` // High School, Diploma, Bachelor, Master, PhD, Other
	FieldOfStudy   string `json:"field_of_study" gorm:"default:''"`
	ProfileImage   string `json:"profile_image" gorm:"default:''"` // URL
	Bio            string `json:"bio"`
	IsVerified     bool   `json:"is_verified" gorm:"default:false"`
}
