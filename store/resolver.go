package store

import (
	"errors"
	"strconv"

	courseModels "scholarnest/models/course"

	"gorm.io/gorm"
)

// ResolveCourse resolves a caller-supplied course reference to its row. The
// reference is probed as a slug first, then as a numeric identifier. Malformed
// identifiers fold into not-found; callers cannot tell which namespace missed.
//
// Every operation that accepts a course reference goes through here — the
// slug-or-id probe must not be reimplemented at call sites.
func ResolveCourse(db *gorm.DB, ref string) (*courseModels.Course, error) {
	var course courseModels.Course

	err := db.Where("slug = ?", ref).First(&course).Error
	if err == nil {
		return &course, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	id, convErr := strconv.ParseUint(ref, 10, 64)
	if convErr != nil {
		return nil, &NotFoundError{Entity: "Course"}
	}

	err = db.Where("id = ?", uint(id)).First(&course).Error
	if err == nil {
		return &course, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "Course"}
	}
	return nil, err
}
