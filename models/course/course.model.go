package course

import "gorm.io/gorm"

// Course is the root of the content tree. Sections and lectures live in their
// own tables with parent keys rather than inside the course row, so partial
// mutations touch single rows and identifiers stay stable across updates.
type Course struct {
	gorm.Model
	Title        string  `json:"title" gorm:"uniqueIndex;not null"`
	Slug         string  `json:"slug" gorm:"uniqueIndex;not null"` // URL-safe, derived from title unless overridden
	Description  string  `json:"description" gorm:"type:text"`
	InstructorID *uint   `json:"instructor_id" gorm:"index"` // reference to a User, optional
	Price        float64 `json:"price" gorm:"default:0"`
	ThumbnailURL string  `json:"thumbnail_url"`
	Category     string  `json:"category"`
	IsPublished  bool    `json:"is_published" gorm:"default:false"`

	Sections []Section `json:"sections,omitempty" gorm:"foreignKey:CourseID"`
}

// Section groups lectures within a course. OrderIndex preserves insertion
// order, which is the display order.
type Section struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Title      string `json:"title" gorm:"not null"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`

	Lectures []Lecture `json:"lectures" gorm:"foreignKey:SectionID"`
}

type Lecture struct {
	gorm.Model
	SectionID     uint   `json:"section_id" gorm:"index;not null"`
	Title         string `json:"title" gorm:"not null"`
	VideoURL      string `json:"video_url" gorm:"not null"`
	Duration      int64  `json:"duration" gorm:"not null"` // seconds
	Description   string `json:"description"`
	IsPreviewable bool   `json:"is_previewable" gorm:"default:false"` // viewable without enrollment
	OrderIndex    int    `json:"order_index" gorm:"default:0"`
}
