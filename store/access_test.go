package store

import (
	"testing"

	courseModels "scholarnest/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanWatchLifecycle(t *testing.T) {
	db := newTestDB(t)
	s := NewCourseStore(db)
	ledger := NewEnrollmentLedger(db)
	gate := NewAccessGate(db)

	course := mustCreateCourse(t, s, "Intro to X")
	withSection, err := s.AddSection(course.Slug, "S1")
	require.NoError(t, err)
	_, err = s.AddLecture(course.Slug, withSection.Sections[0].ID, LectureInput{
		Title: "L1", VideoURL: "https://videos.example.com/l1.mp4", Duration: 60,
	})
	require.NoError(t, err)

	user := mustCreateUser(t, db, "student@example.com")
	var denied *AccessDeniedError

	// No enrollment: deny.
	_, err = gate.CanWatch(user.ID, course.Slug)
	require.ErrorAs(t, err, &denied)

	// Pending: still deny.
	enrollment, err := ledger.Enroll(user.ID, course.Slug)
	require.NoError(t, err)
	_, err = gate.CanWatch(user.ID, course.Slug)
	require.ErrorAs(t, err, &denied)

	// Approved: allow, with the full content tree.
	_, err = ledger.SetStatus(enrollment.ID, courseModels.EnrollmentApproved)
	require.NoError(t, err)
	tree, err := gate.CanWatch(user.ID, course.Slug)
	require.NoError(t, err)
	require.Len(t, tree.Sections, 1)
	require.Len(t, tree.Sections[0].Lectures, 1)
	assert.Equal(t, "https://videos.example.com/l1.mp4", tree.Sections[0].Lectures[0].VideoURL)

	// Rejected afterward: deny again.
	_, err = ledger.SetStatus(enrollment.ID, courseModels.EnrollmentRejected)
	require.NoError(t, err)
	_, err = gate.CanWatch(user.ID, course.Slug)
	require.ErrorAs(t, err, &denied)
}

func TestCanWatchChecksExactPair(t *testing.T) {
	db := newTestDB(t)
	s := NewCourseStore(db)
	ledger := NewEnrollmentLedger(db)
	gate := NewAccessGate(db)

	courseA := mustCreateCourse(t, s, "Intro to X")
	courseB := mustCreateCourse(t, s, "Intro to Y")
	user := mustCreateUser(t, db, "student@example.com")

	enrollment, err := ledger.Enroll(user.ID, courseA.Slug)
	require.NoError(t, err)
	_, err = ledger.SetStatus(enrollment.ID, courseModels.EnrollmentApproved)
	require.NoError(t, err)

	_, err = gate.CanWatch(user.ID, courseA.Slug)
	require.NoError(t, err)

	// Approval on A grants nothing on B.
	var denied *AccessDeniedError
	_, err = gate.CanWatch(user.ID, courseB.Slug)
	require.ErrorAs(t, err, &denied)
}

func TestCanWatchUnknownCourseStaysNotFound(t *testing.T) {
	db := newTestDB(t)
	gate := NewAccessGate(db)
	user := mustCreateUser(t, db, "student@example.com")

	_, err := gate.CanWatch(user.ID, "no-such-course")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}
